// Package csvfile reads season rows from a CSV file with a header row.
package csvfile

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/example/ballstats/internal/adapters/tabular"
	"github.com/example/ballstats/internal/ports/secondary"
)

// Source implements secondary.SeasonSource for CSV files.
type Source struct {
	path string
}

// NewSource creates a CSV source for path.
func NewSource(path string) *Source {
	return &Source{path: path}
}

// Name returns the file path.
func (s *Source) Name() string {
	return s.path
}

// Rows reads every data row. A missing file yields secondary.ErrSourceNotFound.
func (s *Source) Rows(ctx context.Context) (*secondary.RowBatch, error) {
	f, err := os.Open(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", secondary.ErrSourceNotFound, s.path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", s.path, err)
	}
	defer f.Close()

	return Read(ctx, f)
}

// Read parses CSV content from r.
func Read(ctx context.Context, r io.Reader) (*secondary.RowBatch, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("empty file: no header row")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	mapper, err := tabular.NewMapper(header)
	if err != nil {
		return nil, fmt.Errorf("invalid header: %w", err)
	}

	batch := &secondary.RowBatch{}
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		cells, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			var perr *csv.ParseError
			if errors.As(err, &perr) {
				batch.Failures = append(batch.Failures, secondary.RowFailure{Line: perr.StartLine, Err: perr.Err})
				continue
			}
			return nil, fmt.Errorf("failed to read row: %w", err)
		}
		line, _ := reader.FieldPos(0)

		row, err := mapper.Row(line, cells, true)
		if err != nil {
			batch.Failures = append(batch.Failures, secondary.RowFailure{Line: line, Err: err})
			continue
		}
		batch.Rows = append(batch.Rows, row)
	}

	return batch, nil
}

// Ensure Source implements the interface.
var _ secondary.SeasonSource = (*Source)(nil)
