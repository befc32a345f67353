package cli

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/fatih/color"

	"github.com/example/ballstats/internal/core/ranking"
	"github.com/example/ballstats/internal/ports/primary"
)

// mockStatsService implements primary.StatsService for testing
type mockStatsService struct {
	loadFn        func(ctx context.Context) (*primary.LoadSummary, error)
	rankSeasonsFn func(ctx context.Context, req primary.RankSeasonsRequest) ([]*primary.SeasonEntry, error)
	rankCareersFn func(ctx context.Context, req primary.RankCareersRequest) ([]*primary.CareerEntry, error)

	// Track calls for verification
	lastSeasonsReq primary.RankSeasonsRequest
	lastCareersReq primary.RankCareersRequest
}

func (m *mockStatsService) Load(ctx context.Context) (*primary.LoadSummary, error) {
	if m.loadFn != nil {
		return m.loadFn(ctx)
	}
	return &primary.LoadSummary{Source: "test.csv"}, nil
}

func (m *mockStatsService) RankSeasons(ctx context.Context, req primary.RankSeasonsRequest) ([]*primary.SeasonEntry, error) {
	m.lastSeasonsReq = req
	if m.rankSeasonsFn != nil {
		return m.rankSeasonsFn(ctx, req)
	}
	return []*primary.SeasonEntry{}, nil
}

func (m *mockStatsService) RankCareers(ctx context.Context, req primary.RankCareersRequest) ([]*primary.CareerEntry, error) {
	m.lastCareersReq = req
	if m.rankCareersFn != nil {
		return m.rankCareersFn(ctx, req)
	}
	return []*primary.CareerEntry{}, nil
}

func newTestAdapter(service *mockStatsService) (*ReportAdapter, *bytes.Buffer) {
	color.NoColor = true
	out := &bytes.Buffer{}
	return NewReportAdapter(service, out), out
}

// ============================================================================
// Summary Tests
// ============================================================================

func TestReportAdapter_Summary_Clean(t *testing.T) {
	service := &mockStatsService{
		loadFn: func(ctx context.Context) (*primary.LoadSummary, error) {
			return &primary.LoadSummary{Source: "mlb.csv", RawRows: 3, CleanRecords: 3, Players: 2}, nil
		},
	}
	adapter, out := newTestAdapter(service)

	if err := adapter.Summary(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	output := out.String()
	for _, want := range []string{"Source:   mlb.csv", "Raw rows: 3", "Players:  2", "no rows dropped"} {
		if !strings.Contains(output, want) {
			t.Errorf("expected output to contain %q, got: %s", want, output)
		}
	}
}

func TestReportAdapter_Summary_Diagnostics(t *testing.T) {
	service := &mockStatsService{
		loadFn: func(ctx context.Context) (*primary.LoadSummary, error) {
			return &primary.LoadSummary{
				Source:       "mlb.csv",
				RawRows:      10,
				CleanRecords: 3,
				ErrorCount:   7,
				Diagnostics: []primary.RowDiagnostic{
					{Line: 4, Reason: `field hits: invalid value "x"`},
					{Line: 9, Reason: "found 3 fields, expected 22"},
				},
			}, nil
		},
	}
	adapter, out := newTestAdapter(service)

	if err := adapter.Summary(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	output := out.String()
	for _, want := range []string{"7 rows dropped", "Error on line 4:", "Error on line 9:", "... and 5 more"} {
		if !strings.Contains(output, want) {
			t.Errorf("expected output to contain %q, got: %s", want, output)
		}
	}
}

func TestReportAdapter_Summary_Error(t *testing.T) {
	service := &mockStatsService{
		loadFn: func(ctx context.Context) (*primary.LoadSummary, error) {
			return nil, errors.New("disk on fire")
		},
	}
	adapter, _ := newTestAdapter(service)

	if err := adapter.Summary(context.Background()); err == nil {
		t.Fatal("expected error")
	}
}

// ============================================================================
// Seasons Tests
// ============================================================================

func TestReportAdapter_Seasons(t *testing.T) {
	service := &mockStatsService{
		rankSeasonsFn: func(ctx context.Context, req primary.RankSeasonsRequest) ([]*primary.SeasonEntry, error) {
			return []*primary.SeasonEntry{
				{Rank: 1, FirstName: "Barry", LastName: "Bonds", Team: "SFG", Season: 2001, Value: 73},
				{Rank: 2, FirstName: "N/A", LastName: "McGwire", Team: "STL", Season: 1998, Value: 70},
			}, nil
		},
	}
	adapter, out := newTestAdapter(service)

	req := primary.RankSeasonsRequest{Metric: ranking.SeasonHomeruns, Count: 2}
	if err := adapter.Seasons(context.Background(), req); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if service.lastSeasonsReq != req {
		t.Errorf("expected request %+v, got %+v", req, service.lastSeasonsReq)
	}

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 5 {
		t.Fatalf("expected 5 lines, got %d: %q", len(lines), lines)
	}
	if lines[0] != "Top 2 home runs in a season:" {
		t.Errorf("unexpected title %q", lines[0])
	}
	if want := "Rank First Name      Last Name       Team   Season   HR"; lines[1] != want {
		t.Errorf("expected header %q, got %q", want, lines[1])
	}
	if lines[2] != strings.Repeat("-", 60) {
		t.Errorf("unexpected rule %q", lines[2])
	}
	if want := "1    Barry           Bonds           SFG    2001     73"; lines[3] != want {
		t.Errorf("expected row %q, got %q", want, lines[3])
	}
	if !strings.HasPrefix(lines[4], "2    N/A") {
		t.Errorf("expected N/A first name, got %q", lines[4])
	}
}

func TestReportAdapter_Seasons_Error(t *testing.T) {
	service := &mockStatsService{
		rankSeasonsFn: func(ctx context.Context, req primary.RankSeasonsRequest) ([]*primary.SeasonEntry, error) {
			return nil, &ranking.InsufficientDataError{Requested: 10, Available: 3}
		},
	}
	adapter, out := newTestAdapter(service)

	err := adapter.Seasons(context.Background(), primary.RankSeasonsRequest{Metric: ranking.SeasonHits})
	if err == nil {
		t.Fatal("expected error")
	}
	var insufficient *ranking.InsufficientDataError
	if !errors.As(err, &insufficient) {
		t.Errorf("expected InsufficientDataError in chain, got %v", err)
	}
	if out.Len() != 0 {
		t.Errorf("expected no output, got %q", out.String())
	}
}

// ============================================================================
// Careers Tests
// ============================================================================

func TestReportAdapter_Careers(t *testing.T) {
	service := &mockStatsService{
		rankCareersFn: func(ctx context.Context, req primary.RankCareersRequest) ([]*primary.CareerEntry, error) {
			return []*primary.CareerEntry{
				{Rank: 1, FirstName: "Pete", LastName: "Rose", FirstSeason: 1963, LastSeason: 1986, SeasonsPlayed: 24, Value: 3562},
			}, nil
		},
	}
	adapter, out := newTestAdapter(service)

	req := primary.RankCareersRequest{Metric: ranking.CareerGamesPlayed, Count: 1}
	if err := adapter.Careers(context.Background(), req); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if service.lastCareersReq != req {
		t.Errorf("expected request %+v, got %+v", req, service.lastCareersReq)
	}

	output := out.String()
	if !strings.Contains(output, "Top 1 games played in a career:") {
		t.Errorf("expected title, got: %s", output)
	}
	if !strings.Contains(output, "Games Played") {
		t.Errorf("expected metric column, got: %s", output)
	}
	if !strings.Contains(output, "1    Pete            Rose            1963   1986   24     3562") {
		t.Errorf("expected row, got: %s", output)
	}
}

func TestReportAdapter_Careers_Empty(t *testing.T) {
	adapter, out := newTestAdapter(&mockStatsService{})

	err := adapter.Careers(context.Background(), primary.RankCareersRequest{Metric: ranking.CareerHomeruns})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out.String(), "Top 0 homeruns in a career:") {
		t.Errorf("unexpected output: %s", out.String())
	}
}
