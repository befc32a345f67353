package cli

import (
	"fmt"
	"io"
)

// PrintUsage prints the command overview shown when no command is given.
func PrintUsage(out io.Writer) {
	fmt.Fprintln(out, "Baseball Statistics Tool")
	fmt.Fprintln(out, "========================")
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Available commands:")
	fmt.Fprintln(out, "  homeruns  - Show home run records (single season and career)")
	fmt.Fprintln(out, "  seasons   - Show single season records")
	fmt.Fprintln(out, "  careers   - Show career records")
	fmt.Fprintln(out, "  rank      - Rank seasons or careers by any metric")
	fmt.Fprintln(out, "  check     - Report rows dropped while loading")
	fmt.Fprintln(out, "  init      - Write a default config file")
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Usage: ballstats <command>")
	fmt.Fprintln(out, "For more help: ballstats --help")
}
