// Package tabular maps header-labelled cells onto raw season rows.
// It is shared by the file-backed season sources.
package tabular

import (
	"fmt"
	"strings"

	"github.com/example/ballstats/internal/core/season"
)

// Columns lists the expected header names in source order.
var Columns = []string{
	"season",
	"first_name",
	"last_name",
	"link",
	"position",
	"team",
	"games_played",
	"at_bats",
	"runs",
	"hits",
	"doubles",
	"triples",
	"homeruns",
	"rbi",
	"walks",
	"strikeouts",
	"stolen_bases",
	"caught_stealing",
	"batting_average",
	"on_base_percentage",
	"slugging_percentage",
	"on_base_plus_slugging",
}

// setters assigns a cell to its RawRow field by column name.
var setters = map[string]func(*season.RawRow, string){
	"season":                func(r *season.RawRow, v string) { r.Season = v },
	"first_name":            func(r *season.RawRow, v string) { r.FirstName = v },
	"last_name":             func(r *season.RawRow, v string) { r.LastName = v },
	"link":                  func(r *season.RawRow, v string) { r.Link = v },
	"position":              func(r *season.RawRow, v string) { r.Position = v },
	"team":                  func(r *season.RawRow, v string) { r.Team = v },
	"games_played":          func(r *season.RawRow, v string) { r.GamesPlayed = v },
	"at_bats":               func(r *season.RawRow, v string) { r.AtBats = v },
	"runs":                  func(r *season.RawRow, v string) { r.Runs = v },
	"hits":                  func(r *season.RawRow, v string) { r.Hits = v },
	"doubles":               func(r *season.RawRow, v string) { r.Doubles = v },
	"triples":               func(r *season.RawRow, v string) { r.Triples = v },
	"homeruns":              func(r *season.RawRow, v string) { r.Homeruns = v },
	"rbi":                   func(r *season.RawRow, v string) { r.RBI = v },
	"walks":                 func(r *season.RawRow, v string) { r.Walks = v },
	"strikeouts":            func(r *season.RawRow, v string) { r.Strikeouts = v },
	"stolen_bases":          func(r *season.RawRow, v string) { r.StolenBases = v },
	"caught_stealing":       func(r *season.RawRow, v string) { r.CaughtStealing = v },
	"batting_average":       func(r *season.RawRow, v string) { r.BattingAverage = v },
	"on_base_percentage":    func(r *season.RawRow, v string) { r.OnBasePercentage = v },
	"slugging_percentage":   func(r *season.RawRow, v string) { r.SluggingPercentage = v },
	"on_base_plus_slugging": func(r *season.RawRow, v string) { r.OnBasePlusSlugging = v },
}

// Mapper converts cell slices into RawRows using a header row.
type Mapper struct {
	width   int
	indexes map[string]int
}

// NewMapper builds a Mapper from a header row. Header names are matched
// case-insensitively after trimming; unknown columns are ignored, missing
// ones are an error.
func NewMapper(header []string) (*Mapper, error) {
	indexes := make(map[string]int, len(header))
	for i, h := range header {
		name := strings.ToLower(strings.TrimSpace(h))
		if name == "" {
			continue
		}
		if _, dup := indexes[name]; dup {
			return nil, fmt.Errorf("duplicate column %q", name)
		}
		indexes[name] = i
	}

	var missing []string
	for _, c := range Columns {
		if _, ok := indexes[c]; !ok {
			missing = append(missing, c)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing columns: %s", strings.Join(missing, ", "))
	}

	return &Mapper{width: len(header), indexes: indexes}, nil
}

// Row maps one data row. With strict set, the cell count must match the
// header; otherwise short rows are padded with empty cells (spreadsheets
// drop trailing blanks).
func (m *Mapper) Row(line int, cells []string, strict bool) (season.RawRow, error) {
	if strict && len(cells) != m.width {
		return season.RawRow{}, fmt.Errorf("found %d fields, expected %d", len(cells), m.width)
	}
	if len(cells) > m.width {
		return season.RawRow{}, fmt.Errorf("found %d fields, expected at most %d", len(cells), m.width)
	}

	row := season.RawRow{Line: line}
	for _, c := range Columns {
		idx := m.indexes[c]
		var v string
		if idx < len(cells) {
			v = cells[idx]
		}
		setters[c](&row, v)
	}
	return row, nil
}

// Values renders a RawRow's column values in Columns order.
func Values(r season.RawRow) []string {
	return []string{
		r.Season, r.FirstName, r.LastName, r.Link, r.Position, r.Team,
		r.GamesPlayed, r.AtBats, r.Runs, r.Hits, r.Doubles, r.Triples,
		r.Homeruns, r.RBI, r.Walks, r.Strikeouts, r.StolenBases, r.CaughtStealing,
		r.BattingAverage, r.OnBasePercentage, r.SluggingPercentage, r.OnBasePlusSlugging,
	}
}
