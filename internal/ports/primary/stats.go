// Package primary defines the primary ports (driving adapters) for the application.
// These are the interfaces through which the CLI drives the application.
package primary

import (
	"context"

	"github.com/example/ballstats/internal/core/ranking"
)

// StatsService defines the primary port for season and career rankings.
type StatsService interface {
	// Load ingests and normalizes the data source. Calling it again is a no-op
	// that returns the same summary.
	Load(ctx context.Context) (*LoadSummary, error)

	// RankSeasons returns the top season records for a metric.
	RankSeasons(ctx context.Context, req RankSeasonsRequest) ([]*SeasonEntry, error)

	// RankCareers returns the top career records for a metric.
	RankCareers(ctx context.Context, req RankCareersRequest) ([]*CareerEntry, error)
}

// LoadSummary describes the outcome of ingesting the data source.
type LoadSummary struct {
	Source       string
	RawRows      int
	CleanRecords int
	Players      int
	ErrorCount   int
	Diagnostics  []RowDiagnostic
}

// RowDiagnostic identifies one dropped row and why.
type RowDiagnostic struct {
	Line   int
	Reason string
}

// RankSeasonsRequest contains parameters for a season ranking.
type RankSeasonsRequest struct {
	Metric    ranking.SeasonMetric
	Count     int // 0 means the configured default
	Ascending bool
}

// RankCareersRequest contains parameters for a career ranking.
type RankCareersRequest struct {
	Metric    ranking.CareerMetric
	Count     int // 0 means the configured default
	Ascending bool
}

// SeasonEntry is one ranked season at the port boundary.
type SeasonEntry struct {
	Rank      int
	Link      string
	FirstName string
	LastName  string
	Team      string
	Position  string
	Season    int
	Value     int
}

// CareerEntry is one ranked career at the port boundary.
type CareerEntry struct {
	Rank          int
	Link          string
	FirstName     string
	LastName      string
	FirstSeason   int
	LastSeason    int
	SeasonsPlayed int
	Positions     string
	Teams         string
	Value         int
}
