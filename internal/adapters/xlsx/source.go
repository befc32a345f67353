// Package xlsx reads season rows from an Excel workbook.
package xlsx

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/example/ballstats/internal/adapters/tabular"
	"github.com/example/ballstats/internal/ports/secondary"
)

// Source implements secondary.SeasonSource for .xlsx workbooks.
// The first row of the sheet is the header.
type Source struct {
	path  string
	sheet string
}

// NewSource creates a workbook source. An empty sheet selects the first sheet.
func NewSource(path, sheet string) *Source {
	return &Source{path: path, sheet: sheet}
}

// Name returns the file path.
func (s *Source) Name() string {
	return s.path
}

// Rows reads every data row of the sheet. Blank rows are skipped.
func (s *Source) Rows(ctx context.Context) (*secondary.RowBatch, error) {
	if _, err := os.Stat(s.path); errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", secondary.ErrSourceNotFound, s.path)
	}

	f, err := excelize.OpenFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheet := s.sheet
	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, fmt.Errorf("workbook %s has no sheets", s.path)
		}
		sheet = sheets[0]
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheet, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("sheet %q is empty: no header row", sheet)
	}

	mapper, err := tabular.NewMapper(rows[0])
	if err != nil {
		return nil, fmt.Errorf("invalid header: %w", err)
	}

	batch := &secondary.RowBatch{}
	for i, cells := range rows[1:] {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if blank(cells) {
			continue
		}

		line := i + 2
		row, err := mapper.Row(line, cells, false)
		if err != nil {
			batch.Failures = append(batch.Failures, secondary.RowFailure{Line: line, Err: err})
			continue
		}
		batch.Rows = append(batch.Rows, row)
	}

	return batch, nil
}

func blank(cells []string) bool {
	for _, c := range cells {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

// Ensure Source implements the interface.
var _ secondary.SeasonSource = (*Source)(nil)
