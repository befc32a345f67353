package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"

	"github.com/example/ballstats/internal/core/career"
	"github.com/example/ballstats/internal/core/ranking"
	"github.com/example/ballstats/internal/core/season"
	"github.com/example/ballstats/internal/logging"
	"github.com/example/ballstats/internal/ports/primary"
	"github.com/example/ballstats/internal/ports/secondary"
)

// DefaultDiagnosticLimit is how many dropped rows are described individually.
const DefaultDiagnosticLimit = 5

// StatsOptions configures ranking behaviour for a StatsServiceImpl.
type StatsOptions struct {
	DefaultCount    int
	Policy          ranking.Policy
	DiagnosticLimit int
}

// StatsServiceImpl implements the StatsService interface.
type StatsServiceImpl struct {
	source secondary.SeasonSource
	opts   StatsOptions
	logger *slog.Logger

	summary *primary.LoadSummary
	seasons *season.Store
	careers *career.Ledger
}

// NewStatsService creates a new StatsService with injected dependencies.
func NewStatsService(source secondary.SeasonSource, opts StatsOptions, logger *slog.Logger) *StatsServiceImpl {
	if opts.DefaultCount <= 0 {
		opts.DefaultCount = ranking.DefaultCount
	}
	if opts.Policy == "" {
		opts.Policy = ranking.PolicyStrict
	}
	if opts.DiagnosticLimit <= 0 {
		opts.DiagnosticLimit = DefaultDiagnosticLimit
	}
	return &StatsServiceImpl{
		source: source,
		opts:   opts,
		logger: logger,
	}
}

// Load reads, normalizes and aggregates the source once.
func (s *StatsServiceImpl) Load(ctx context.Context) (*primary.LoadSummary, error) {
	if s.summary != nil {
		return s.summary, nil
	}

	logging.Info(s.logger, "loading season data", "source", s.source.Name())
	batch, err := s.source.Rows(ctx)
	if err != nil {
		if errors.Is(err, secondary.ErrSourceNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to read %s: %w", s.source.Name(), err)
	}

	var diagnostics []primary.RowDiagnostic
	for _, f := range batch.Failures {
		diagnostics = append(diagnostics, primary.RowDiagnostic{Line: f.Line, Reason: f.Err.Error()})
	}
	logging.Info(s.logger, "loaded raw rows", "rows", len(batch.Rows), "unreadable", len(batch.Failures))

	clean := make([]season.Record, 0, len(batch.Rows))
	for _, raw := range batch.Rows {
		rec, err := season.Normalize(raw)
		if err != nil {
			diagnostics = append(diagnostics, primary.RowDiagnostic{Line: raw.Line, Reason: err.Error()})
			continue
		}
		clean = append(clean, rec)
	}
	logging.Info(s.logger, "cleaned records", "records", len(clean))

	s.seasons = season.NewStore(clean)
	s.careers = career.Aggregate(s.seasons.Records())
	logging.Info(s.logger, "grouped players", "players", s.careers.Len())

	sort.SliceStable(diagnostics, func(i, j int) bool {
		return diagnostics[i].Line < diagnostics[j].Line
	})
	errorCount := len(diagnostics)
	if len(diagnostics) > s.opts.DiagnosticLimit {
		diagnostics = diagnostics[:s.opts.DiagnosticLimit]
	}
	for _, d := range diagnostics {
		logging.Warn(s.logger, "dropped row", "line", d.Line, "reason", d.Reason)
	}

	s.summary = &primary.LoadSummary{
		Source:       s.source.Name(),
		RawRows:      len(batch.Rows) + len(batch.Failures),
		CleanRecords: s.seasons.Len(),
		Players:      s.careers.Len(),
		ErrorCount:   errorCount,
		Diagnostics:  diagnostics,
	}
	return s.summary, nil
}

// RankSeasons returns the top season records for a metric.
func (s *StatsServiceImpl) RankSeasons(ctx context.Context, req primary.RankSeasonsRequest) ([]*primary.SeasonEntry, error) {
	if _, err := ranking.ParseSeasonMetric(string(req.Metric)); err != nil {
		return nil, err
	}
	if _, err := s.Load(ctx); err != nil {
		return nil, err
	}

	ranked, err := ranking.Seasons(s.seasons.Records(), req.Metric, s.count(req.Count), s.rankOptions(req.Ascending)...)
	if err != nil {
		return nil, fmt.Errorf("failed to rank seasons by %s: %w", req.Metric, err)
	}

	entries := make([]*primary.SeasonEntry, len(ranked))
	for i, r := range ranked {
		entries[i] = &primary.SeasonEntry{
			Rank:      i + 1,
			Link:      r.Link,
			FirstName: r.DisplayFirstName(),
			LastName:  r.LastName,
			Team:      r.Team,
			Position:  r.Position,
			Season:    r.Season,
			Value:     req.Metric.Value(r),
		}
	}
	return entries, nil
}

// RankCareers returns the top career records for a metric.
func (s *StatsServiceImpl) RankCareers(ctx context.Context, req primary.RankCareersRequest) ([]*primary.CareerEntry, error) {
	if _, err := ranking.ParseCareerMetric(string(req.Metric)); err != nil {
		return nil, err
	}
	if _, err := s.Load(ctx); err != nil {
		return nil, err
	}

	ranked, err := ranking.Careers(s.careers.Records(), req.Metric, s.count(req.Count), s.rankOptions(req.Ascending)...)
	if err != nil {
		return nil, fmt.Errorf("failed to rank careers by %s: %w", req.Metric, err)
	}

	entries := make([]*primary.CareerEntry, len(ranked))
	for i, r := range ranked {
		entries[i] = &primary.CareerEntry{
			Rank:          i + 1,
			Link:          r.Link,
			FirstName:     r.FirstName,
			LastName:      r.LastName,
			FirstSeason:   r.FirstSeason,
			LastSeason:    r.LastSeason,
			SeasonsPlayed: r.SeasonsPlayed,
			Positions:     r.PositionList(),
			Teams:         r.TeamList(),
			Value:         req.Metric.Value(r),
		}
	}
	return entries, nil
}

// Helper methods

func (s *StatsServiceImpl) count(requested int) int {
	if requested == 0 {
		return s.opts.DefaultCount
	}
	return requested
}

func (s *StatsServiceImpl) rankOptions(ascending bool) []ranking.Option {
	opts := []ranking.Option{ranking.WithPolicy(s.opts.Policy)}
	if ascending {
		opts = append(opts, ranking.Ascending())
	}
	return opts
}

// Ensure StatsServiceImpl implements the interface.
var _ primary.StatsService = (*StatsServiceImpl)(nil)
