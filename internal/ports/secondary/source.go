// Package secondary defines the secondary ports (driven adapters) for the application.
// These are the interfaces through which the application drives external systems.
package secondary

import (
	"context"
	"errors"

	"github.com/example/ballstats/internal/core/season"
)

// ErrSourceNotFound is returned when the configured data source does not exist.
var ErrSourceNotFound = errors.New("data source not found")

// SeasonSource defines the secondary port for reading raw season rows.
type SeasonSource interface {
	// Name describes the source for messages, typically its path.
	Name() string

	// Rows reads every data row. Rows that cannot be mapped to fields
	// (wrong cell count and similar) are reported as failures, not errors.
	Rows(ctx context.Context) (*RowBatch, error)
}

// RowBatch is the result of reading a source.
type RowBatch struct {
	Rows     []season.RawRow
	Failures []RowFailure
}

// RowFailure is a source row that could not be read into a RawRow.
type RowFailure struct {
	Line int
	Err  error
}
