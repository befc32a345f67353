// Package cli provides thin CLI adapters that translate between CLI concerns
// and application services. Adapters handle output formatting,
// but delegate business logic to services.
package cli

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"

	"github.com/example/ballstats/internal/core/ranking"
	"github.com/example/ballstats/internal/ports/primary"
)

const (
	seasonRow = "%-4s %-15s %-15s %-6s %-8s %s\n"
	careerRow = "%-4s %-15s %-15s %-6s %-6s %-6s %s\n"
)

// ReportAdapter renders rankings produced by a StatsService as text tables.
// It depends only on the StatsService interface, enabling easy testing with mocks.
type ReportAdapter struct {
	service primary.StatsService
	out     io.Writer
}

// NewReportAdapter creates a new ReportAdapter with the given service.
func NewReportAdapter(service primary.StatsService, out io.Writer) *ReportAdapter {
	return &ReportAdapter{
		service: service,
		out:     out,
	}
}

// Summary prints load counts and the surfaced row diagnostics.
func (a *ReportAdapter) Summary(ctx context.Context) error {
	summary, err := a.service.Load(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Source:   %s\n", summary.Source)
	fmt.Fprintf(a.out, "Raw rows: %d\n", summary.RawRows)
	fmt.Fprintf(a.out, "Cleaned:  %d\n", summary.CleanRecords)
	fmt.Fprintf(a.out, "Players:  %d\n", summary.Players)

	if summary.ErrorCount == 0 {
		fmt.Fprintf(a.out, "%s no rows dropped\n", color.New(color.FgGreen).Sprint("✓"))
		return nil
	}

	fmt.Fprintf(a.out, "%s %d rows dropped\n", color.New(color.FgYellow).Sprint("!"), summary.ErrorCount)
	for _, d := range summary.Diagnostics {
		fmt.Fprintf(a.out, "  Error on line %d: %s\n", d.Line, d.Reason)
	}
	if hidden := summary.ErrorCount - len(summary.Diagnostics); hidden > 0 {
		fmt.Fprintf(a.out, "  ... and %d more\n", hidden)
	}
	return nil
}

// Seasons prints a single-season ranking.
func (a *ReportAdapter) Seasons(ctx context.Context, req primary.RankSeasonsRequest) error {
	entries, err := a.service.RankSeasons(ctx, req)
	if err != nil {
		return fmt.Errorf("failed to rank seasons: %w", err)
	}

	a.title(fmt.Sprintf("Top %d %s in a season:", len(entries), seasonPhrase(req.Metric)))
	fmt.Fprintf(a.out, seasonRow, "Rank", "First Name", "Last Name", "Team", "Season", req.Metric.Label())
	fmt.Fprintln(a.out, strings.Repeat("-", 60))
	for _, e := range entries {
		fmt.Fprintf(a.out, seasonRow,
			strconv.Itoa(e.Rank), e.FirstName, e.LastName, e.Team,
			strconv.Itoa(e.Season), strconv.Itoa(e.Value))
	}
	fmt.Fprintln(a.out)

	return nil
}

// Careers prints a career ranking.
func (a *ReportAdapter) Careers(ctx context.Context, req primary.RankCareersRequest) error {
	entries, err := a.service.RankCareers(ctx, req)
	if err != nil {
		return fmt.Errorf("failed to rank careers: %w", err)
	}

	a.title(fmt.Sprintf("Top %d %s in a career:", len(entries), careerPhrase(req.Metric)))
	fmt.Fprintf(a.out, careerRow, "Rank", "First Name", "Last Name", "From", "To", "Total", req.Metric.Label())
	fmt.Fprintln(a.out, strings.Repeat("-", 67))
	for _, e := range entries {
		fmt.Fprintf(a.out, careerRow,
			strconv.Itoa(e.Rank), e.FirstName, e.LastName,
			strconv.Itoa(e.FirstSeason), strconv.Itoa(e.LastSeason),
			strconv.Itoa(e.SeasonsPlayed), strconv.Itoa(e.Value))
	}
	fmt.Fprintln(a.out)

	return nil
}

func (a *ReportAdapter) title(text string) {
	fmt.Fprintf(a.out, "\n%s\n", color.New(color.FgCyan, color.Bold).Sprint(text))
}

// Helper methods

func seasonPhrase(m ranking.SeasonMetric) string {
	switch m {
	case ranking.SeasonHomeruns:
		return "home runs"
	case ranking.SeasonHits:
		return "hits"
	default:
		return string(m)
	}
}

func careerPhrase(m ranking.CareerMetric) string {
	switch m {
	case ranking.CareerHomeruns:
		return "homeruns"
	case ranking.CareerGamesPlayed:
		return "games played"
	default:
		return string(m)
	}
}
