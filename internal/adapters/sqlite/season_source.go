// Package sqlite contains SQLite implementations of secondary ports.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/example/ballstats/internal/adapters/tabular"
	"github.com/example/ballstats/internal/db"
	"github.com/example/ballstats/internal/ports/secondary"
)

// SeasonSource implements secondary.SeasonSource over the seasons table.
// The row id stands in for the line number in diagnostics.
type SeasonSource struct {
	path string
}

// NewSeasonSource creates a source reading the database file at path.
func NewSeasonSource(path string) *SeasonSource {
	return &SeasonSource{path: path}
}

// Name returns the database path.
func (s *SeasonSource) Name() string {
	return s.path
}

// Rows reads every row of the seasons table in id order.
func (s *SeasonSource) Rows(ctx context.Context) (*secondary.RowBatch, error) {
	if _, err := os.Stat(s.path); errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", secondary.ErrSourceNotFound, s.path)
	}

	database, err := db.Open(s.path)
	if err != nil {
		return nil, err
	}
	defer database.Close()

	return ReadSeasons(ctx, database)
}

// ReadSeasons reads the seasons table from an open database.
func ReadSeasons(ctx context.Context, database *sql.DB) (*secondary.RowBatch, error) {
	query := fmt.Sprintf("SELECT id, %s FROM seasons ORDER BY id ASC", strings.Join(tabular.Columns, ", "))
	rows, err := database.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query seasons: %w", err)
	}
	defer rows.Close()

	mapper, err := tabular.NewMapper(tabular.Columns)
	if err != nil {
		return nil, err
	}

	batch := &secondary.RowBatch{}
	for rows.Next() {
		var (
			id    int
			cells = make([]sql.NullString, len(tabular.Columns))
		)
		dest := make([]any, 0, len(cells)+1)
		dest = append(dest, &id)
		for i := range cells {
			dest = append(dest, &cells[i])
		}

		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("failed to scan season: %w", err)
		}

		values := make([]string, len(cells))
		for i, c := range cells {
			values[i] = c.String
		}
		row, err := mapper.Row(id, values, true)
		if err != nil {
			batch.Failures = append(batch.Failures, secondary.RowFailure{Line: id, Err: err})
			continue
		}
		batch.Rows = append(batch.Rows, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate seasons: %w", err)
	}

	return batch, nil
}

// Ensure SeasonSource implements the interface.
var _ secondary.SeasonSource = (*SeasonSource)(nil)
