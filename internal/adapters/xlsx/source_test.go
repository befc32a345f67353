package xlsx

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/example/ballstats/internal/adapters/tabular"
	"github.com/example/ballstats/internal/core/season"
	"github.com/example/ballstats/internal/ports/secondary"
)

func toCells(values []string) *[]any {
	cells := make([]any, len(values))
	for i, v := range values {
		cells[i] = v
	}
	return &cells
}

func writeWorkbook(t *testing.T, sheet string, rows ...[]string) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	if sheet != "Sheet1" {
		require.NoError(t, f.SetSheetName("Sheet1", sheet))
	}
	for i, r := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, toCells(r)))
	}

	path := filepath.Join(t.TempDir(), "seasons.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func mantle() season.RawRow {
	return season.RawRow{
		Season: "1956", FirstName: "Mickey", LastName: "Mantle", Link: "mantle-mickey",
		Position: "CF", Team: "NYY", GamesPlayed: "150", AtBats: "533", Runs: "132",
		Hits: "188", Doubles: "22", Triples: "5", Homeruns: "52", RBI: "130", Walks: "112",
		Strikeouts: "99", StolenBases: "10", CaughtStealing: "1", BattingAverage: "0.353",
		OnBasePercentage: "0.464", SluggingPercentage: "0.705", OnBasePlusSlugging: "1.169",
	}
}

func TestSource_ReadsFirstSheet(t *testing.T) {
	sparse := mantle()
	sparse.Season = "1951"
	sparse.OnBasePlusSlugging = ""

	path := writeWorkbook(t, "Batting",
		tabular.Columns,
		tabular.Values(mantle()),
		[]string{"", ""},
		tabular.Values(sparse),
	)

	batch, err := NewSource(path, "").Rows(context.Background())
	require.NoError(t, err)
	require.Len(t, batch.Rows, 2)
	assert.Empty(t, batch.Failures)

	assert.Equal(t, 2, batch.Rows[0].Line)
	assert.Equal(t, "52", batch.Rows[0].Homeruns)
	assert.Equal(t, 4, batch.Rows[1].Line)
	assert.Equal(t, "", batch.Rows[1].OnBasePlusSlugging)
}

func TestSource_NamedSheet(t *testing.T) {
	path := writeWorkbook(t, "Sheet1", tabular.Columns, tabular.Values(mantle()))

	_, err := NewSource(path, "Pitching").Rows(context.Background())
	require.Error(t, err)

	batch, err := NewSource(path, "Sheet1").Rows(context.Background())
	require.NoError(t, err)
	assert.Len(t, batch.Rows, 1)
}

func TestSource_TooManyCellsIsARowFailure(t *testing.T) {
	wide := append(tabular.Values(mantle()), "extra")
	path := writeWorkbook(t, "Sheet1", tabular.Columns, wide)

	batch, err := NewSource(path, "").Rows(context.Background())
	require.NoError(t, err)
	assert.Empty(t, batch.Rows)
	require.Len(t, batch.Failures, 1)
	assert.Equal(t, 2, batch.Failures[0].Line)
}

func TestSource_MissingFile(t *testing.T) {
	_, err := NewSource(filepath.Join(t.TempDir(), "nope.xlsx"), "").Rows(context.Background())
	require.ErrorIs(t, err, secondary.ErrSourceNotFound)
}
