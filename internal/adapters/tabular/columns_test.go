package tabular

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/ballstats/internal/core/season"
)

func TestNewMapper_MissingColumns(t *testing.T) {
	_, err := NewMapper([]string{"season", "last_name"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing columns")
	assert.Contains(t, err.Error(), "homeruns")
}

func TestNewMapper_DuplicateColumn(t *testing.T) {
	header := append([]string{}, Columns...)
	header = append(header, "HITS")

	_, err := NewMapper(header)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `duplicate column "hits"`)
}

func TestMapper_RowByHeaderPosition(t *testing.T) {
	// Reverse the header to prove mapping is by name, not position.
	header := make([]string, len(Columns))
	for i, c := range Columns {
		header[len(Columns)-1-i] = "  " + c + " "
	}
	m, err := NewMapper(append(header, "notes"))
	require.NoError(t, err)

	want := season.RawRow{
		Line: 9, Season: "1961", FirstName: "Roger", LastName: "Maris", Link: "maris-roger",
		Position: "RF", Team: "NYY", GamesPlayed: "161", AtBats: "590", Runs: "132",
		Hits: "159", Doubles: "16", Triples: "4", Homeruns: "61", RBI: "141", Walks: "94",
		Strikeouts: "67", StolenBases: "0", CaughtStealing: "0", BattingAverage: "0.269",
		OnBasePercentage: "0.372", SluggingPercentage: "0.620", OnBasePlusSlugging: "0.993",
	}
	values := Values(want)
	cells := make([]string, len(values))
	for i, v := range values {
		cells[len(values)-1-i] = v
	}
	cells = append(cells, "MVP")

	got, err := m.Row(9, cells, true)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestMapper_RowWidth(t *testing.T) {
	m, err := NewMapper(Columns)
	require.NoError(t, err)

	short := []string{"1961", "Roger", "Maris"}

	_, err = m.Row(3, short, true)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "found 3 fields, expected 22")

	row, err := m.Row(3, short, false)
	require.NoError(t, err)
	assert.Equal(t, "Maris", row.LastName)
	assert.Equal(t, "", row.OnBasePlusSlugging)

	_, err = m.Row(3, make([]string, 30), false)
	require.Error(t, err)
}
