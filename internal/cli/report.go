package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	cliadapter "github.com/example/ballstats/internal/adapters/cli"
	"github.com/example/ballstats/internal/core/ranking"
	"github.com/example/ballstats/internal/ports/primary"
	"github.com/example/ballstats/internal/ports/secondary"
	"github.com/example/ballstats/internal/wire"
)

// HomerunsCmd returns the homeruns report command
func HomerunsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "homeruns",
		Short: "Show home run records (single season and career)",
		RunE: func(cmd *cobra.Command, args []string) error {
			top, _ := cmd.Flags().GetInt("top")
			return runReport(cmd.OutOrStdout(), func(a *cliadapter.ReportAdapter) error {
				if err := a.Seasons(cmd.Context(), primary.RankSeasonsRequest{Metric: ranking.SeasonHomeruns, Count: top}); err != nil {
					return err
				}
				return a.Careers(cmd.Context(), primary.RankCareersRequest{Metric: ranking.CareerHomeruns, Count: top})
			})
		},
	}
	addTopFlag(cmd)
	return cmd
}

// SeasonsCmd returns the seasons report command
func SeasonsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seasons",
		Short: "Show single season records",
		RunE: func(cmd *cobra.Command, args []string) error {
			top, _ := cmd.Flags().GetInt("top")
			return runReport(cmd.OutOrStdout(), func(a *cliadapter.ReportAdapter) error {
				return a.Seasons(cmd.Context(), primary.RankSeasonsRequest{Metric: ranking.SeasonHits, Count: top})
			})
		},
	}
	addTopFlag(cmd)
	return cmd
}

// CareersCmd returns the careers report command
func CareersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "careers",
		Short: "Show career records",
		RunE: func(cmd *cobra.Command, args []string) error {
			top, _ := cmd.Flags().GetInt("top")
			return runReport(cmd.OutOrStdout(), func(a *cliadapter.ReportAdapter) error {
				return a.Careers(cmd.Context(), primary.RankCareersRequest{Metric: ranking.CareerGamesPlayed, Count: top})
			})
		},
	}
	addTopFlag(cmd)
	return cmd
}

// RankCmd returns the rank command for ad-hoc rankings on any metric
func RankCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rank",
		Short: "Rank seasons or careers by a single metric",
		Long: fmt.Sprintf(`Rank seasons or careers by one metric.

Season metrics: %v
Career metrics: %v

Examples:
  ballstats rank --view season --metric hits --top 5
  ballstats rank --view career --metric games --ascending`, ranking.SeasonMetrics, ranking.CareerMetrics),
		RunE: func(cmd *cobra.Command, args []string) error {
			view, _ := cmd.Flags().GetString("view")
			metric, _ := cmd.Flags().GetString("metric")
			top, _ := cmd.Flags().GetInt("top")
			ascending, _ := cmd.Flags().GetBool("ascending")

			switch view {
			case "season":
				return runReport(cmd.OutOrStdout(), func(a *cliadapter.ReportAdapter) error {
					return a.Seasons(cmd.Context(), primary.RankSeasonsRequest{
						Metric:    ranking.SeasonMetric(metric),
						Count:     top,
						Ascending: ascending,
					})
				})
			case "career":
				return runReport(cmd.OutOrStdout(), func(a *cliadapter.ReportAdapter) error {
					return a.Careers(cmd.Context(), primary.RankCareersRequest{
						Metric:    ranking.CareerMetric(metric),
						Count:     top,
						Ascending: ascending,
					})
				})
			default:
				return fmt.Errorf("invalid view %q: must be season or career", view)
			}
		},
	}

	cmd.Flags().String("view", "season", "What to rank: season or career")
	cmd.Flags().String("metric", "homeruns", "Metric to rank by")
	cmd.Flags().Bool("ascending", false, "Rank lowest first")
	addTopFlag(cmd)

	return cmd
}

func addTopFlag(cmd *cobra.Command) {
	cmd.Flags().Int("top", 0, "Number of records to show (default from config)")
}

// runReport builds the report adapter and runs fn. A missing data source is
// reported on out and is not an error.
func runReport(out io.Writer, fn func(*cliadapter.ReportAdapter) error) error {
	return handleMissingSource(out, wire.Config().DataPath, fn(wire.ReportAdapterWithOutput(out)))
}

func handleMissingSource(out io.Writer, path string, err error) error {
	if errors.Is(err, secondary.ErrSourceNotFound) {
		fmt.Fprintf(out, "Error: %s not found. Please put your CSV file in the project root folder.\n", path)
		return nil
	}
	return err
}
