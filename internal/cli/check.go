package cli

import (
	"github.com/spf13/cobra"

	cliadapter "github.com/example/ballstats/internal/adapters/cli"
)

// CheckCmd returns the check command
func CheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Load the data source and report dropped rows",
		Long: `Load and clean the configured data source without ranking anything.

Prints row counts, the number of players found and the first few rows
that could not be parsed.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReport(cmd.OutOrStdout(), func(a *cliadapter.ReportAdapter) error {
				return a.Summary(cmd.Context())
			})
		},
	}
}
