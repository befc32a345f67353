package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/ballstats/internal/cli"
	"github.com/example/ballstats/internal/version"
	"github.com/example/ballstats/internal/wire"
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "ballstats",
		Short:   "Baseball season and career leaderboards",
		Version: version.String(),
		Long: `ballstats loads a per-season batting export (CSV, Excel or SQLite),
drops rows it cannot parse, rolls seasons up into careers and prints
top-N leaderboards.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			data, _ := cmd.Flags().GetString("data")
			format, _ := cmd.Flags().GetString("format")
			wire.SetOverrides(wire.Overrides{DataPath: data, Format: format})
		},
		Run: func(cmd *cobra.Command, args []string) {
			cli.PrintUsage(cmd.OutOrStdout())
		},
	}

	rootCmd.PersistentFlags().String("data", "", "Path to the season data file (overrides config)")
	rootCmd.PersistentFlags().String("format", "", "Data format: auto, csv, xlsx or sqlite (overrides config)")

	// Reports
	rootCmd.AddCommand(cli.HomerunsCmd())
	rootCmd.AddCommand(cli.SeasonsCmd())
	rootCmd.AddCommand(cli.CareersCmd())
	rootCmd.AddCommand(cli.RankCmd())

	// Setup and diagnostics
	rootCmd.AddCommand(cli.CheckCmd())
	rootCmd.AddCommand(cli.InitCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
