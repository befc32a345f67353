// Package season contains the pure normalization logic for season rows.
// This is part of the Functional Core - no I/O, only pure functions.
package season

import (
	"strconv"

	"github.com/shopspring/decimal"
)

// RawRow is one season row as ingested, before any type coercion.
// Line is the 1-based position of the row in its source (header included).
type RawRow struct {
	Line int

	Season             string
	FirstName          string
	LastName           string
	Link               string
	Position           string
	Team               string
	GamesPlayed        string
	AtBats             string
	Runs               string
	Hits               string
	Doubles            string
	Triples            string
	Homeruns           string
	RBI                string
	Walks              string
	Strikeouts         string
	StolenBases        string
	CaughtStealing     string
	BattingAverage     string
	OnBasePercentage   string
	SluggingPercentage string
	OnBasePlusSlugging string
}

// Record is one player's normalized statistics for one season.
type Record struct {
	Link   string
	Season int

	FirstName OptionalString
	LastName  string
	Position  string
	Team      string

	GamesPlayed int
	AtBats      int
	Runs        int
	Hits        int
	Doubles     int
	Triples     int
	Homeruns    int
	Walks       int

	RBI                OptionalInt
	Strikeouts         OptionalDecimal
	StolenBases        OptionalInt
	CaughtStealing     OptionalInt
	OnBasePercentage   OptionalDecimal
	OnBasePlusSlugging OptionalDecimal

	BattingAverage     decimal.Decimal
	SluggingPercentage decimal.Decimal
}

// DisplayFirstName returns the first name, or "N/A" when it was not recorded.
func (r Record) DisplayFirstName() string {
	return r.FirstName.Or(MissingName)
}

// MissingName stands in for an unrecorded first name.
const MissingName = "N/A"

// Raw renders the record back into its string form. Absent optional values
// render as the sentinel, so Normalize(r.Raw()) reproduces r.
func (r Record) Raw() RawRow {
	return RawRow{
		Season:             strconv.Itoa(r.Season),
		FirstName:          r.FirstName.Or(""),
		LastName:           r.LastName,
		Link:               r.Link,
		Position:           r.Position,
		Team:               r.Team,
		GamesPlayed:        strconv.Itoa(r.GamesPlayed),
		AtBats:             strconv.Itoa(r.AtBats),
		Runs:               strconv.Itoa(r.Runs),
		Hits:               strconv.Itoa(r.Hits),
		Doubles:            strconv.Itoa(r.Doubles),
		Triples:            strconv.Itoa(r.Triples),
		Homeruns:           strconv.Itoa(r.Homeruns),
		RBI:                r.RBI.String(),
		Walks:              strconv.Itoa(r.Walks),
		Strikeouts:         r.Strikeouts.String(),
		StolenBases:        r.StolenBases.String(),
		CaughtStealing:     r.CaughtStealing.String(),
		BattingAverage:     r.BattingAverage.String(),
		OnBasePercentage:   r.OnBasePercentage.String(),
		SluggingPercentage: r.SluggingPercentage.String(),
		OnBasePlusSlugging: r.OnBasePlusSlugging.String(),
	}
}

// Equal reports whether two records hold the same values.
// Decimals compare by numeric value, not representation.
func (r Record) Equal(o Record) bool {
	return r.Link == o.Link &&
		r.Season == o.Season &&
		r.FirstName == o.FirstName &&
		r.LastName == o.LastName &&
		r.Position == o.Position &&
		r.Team == o.Team &&
		r.GamesPlayed == o.GamesPlayed &&
		r.AtBats == o.AtBats &&
		r.Runs == o.Runs &&
		r.Hits == o.Hits &&
		r.Doubles == o.Doubles &&
		r.Triples == o.Triples &&
		r.Homeruns == o.Homeruns &&
		r.Walks == o.Walks &&
		r.RBI == o.RBI &&
		r.Strikeouts.Equal(o.Strikeouts) &&
		r.StolenBases == o.StolenBases &&
		r.CaughtStealing == o.CaughtStealing &&
		r.OnBasePercentage.Equal(o.OnBasePercentage) &&
		r.OnBasePlusSlugging.Equal(o.OnBasePlusSlugging) &&
		r.BattingAverage.Equal(o.BattingAverage) &&
		r.SluggingPercentage.Equal(o.SluggingPercentage)
}
