package ranking

import (
	"fmt"

	"github.com/example/ballstats/internal/core/career"
	"github.com/example/ballstats/internal/core/season"
)

// SeasonMetric is a rankable statistic of a season record.
type SeasonMetric string

// CareerMetric is a rankable statistic of a career record.
type CareerMetric string

const (
	SeasonHomeruns SeasonMetric = "homeruns"
	SeasonHits     SeasonMetric = "hits"

	CareerHomeruns    CareerMetric = "homeruns"
	CareerGamesPlayed CareerMetric = "games"
)

// SeasonMetrics lists the supported season metrics.
var SeasonMetrics = []SeasonMetric{SeasonHomeruns, SeasonHits}

// CareerMetrics lists the supported career metrics.
var CareerMetrics = []CareerMetric{CareerHomeruns, CareerGamesPlayed}

// Value returns the metric for a season record.
func (m SeasonMetric) Value(r season.Record) int {
	switch m {
	case SeasonHomeruns:
		return r.Homeruns
	case SeasonHits:
		return r.Hits
	}
	return 0
}

// Label is the column heading for the metric.
func (m SeasonMetric) Label() string {
	switch m {
	case SeasonHomeruns:
		return "HR"
	case SeasonHits:
		return "Hits"
	}
	return string(m)
}

// Value returns the metric for a career record.
func (m CareerMetric) Value(r career.Record) int {
	switch m {
	case CareerHomeruns:
		return r.TotalHomeruns
	case CareerGamesPlayed:
		return r.TotalGamesPlayed
	}
	return 0
}

// Label is the column heading for the metric.
func (m CareerMetric) Label() string {
	switch m {
	case CareerHomeruns:
		return "Home runs"
	case CareerGamesPlayed:
		return "Games Played"
	}
	return string(m)
}

// ParseSeasonMetric resolves a season metric by name.
func ParseSeasonMetric(name string) (SeasonMetric, error) {
	for _, m := range SeasonMetrics {
		if string(m) == name {
			return m, nil
		}
	}
	return "", fmt.Errorf("unknown season metric %q (want one of %v)", name, SeasonMetrics)
}

// ParseCareerMetric resolves a career metric by name.
func ParseCareerMetric(name string) (CareerMetric, error) {
	for _, m := range CareerMetrics {
		if string(m) == name {
			return m, nil
		}
	}
	return "", fmt.Errorf("unknown career metric %q (want one of %v)", name, CareerMetrics)
}

// Seasons ranks season records by a metric.
func Seasons(records []season.Record, m SeasonMetric, k int, opts ...Option) ([]season.Record, error) {
	return TopK(records, m.Value, k, opts...)
}

// Careers ranks career records by a metric.
func Careers(records []career.Record, m CareerMetric, k int, opts ...Option) ([]career.Record, error) {
	return TopK(records, m.Value, k, opts...)
}
