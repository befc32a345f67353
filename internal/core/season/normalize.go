package season

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// NormalizationError describes why a raw row could not become a Record.
type NormalizationError struct {
	Line  int
	Field string
	Value string
	Err   error
}

func (e *NormalizationError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: field %s: invalid value %q: %v", e.Line, e.Field, e.Value, e.Err)
	}
	return fmt.Sprintf("field %s: invalid value %q: %v", e.Field, e.Value, e.Err)
}

func (e *NormalizationError) Unwrap() error {
	return e.Err
}

var (
	errRequired = errors.New("value is required")
	errNegative = errors.New("value must not be negative")
)

// Normalize converts a raw row into a Record.
//
// Optional statistics (rbi, strikeouts, stolen_bases, caught_stealing,
// on_base_percentage, on_base_plus_slugging) become absent when the trimmed
// value is empty or the sentinel; any other unparseable text fails the row.
// Required fields fail the row when empty or malformed.
func Normalize(raw RawRow) (Record, error) {
	p := parser{line: raw.Line}

	rec := Record{
		Season:    p.integer("season", raw.Season),
		FirstName: optionalText(raw.FirstName),
		LastName:  p.text("last_name", raw.LastName),
		Link:      p.text("link", raw.Link),
		Position:  p.text("position", raw.Position),
		Team:      p.text("team", raw.Team),

		GamesPlayed: p.count("games_played", raw.GamesPlayed),
		AtBats:      p.count("at_bats", raw.AtBats),
		Runs:        p.count("runs", raw.Runs),
		Hits:        p.count("hits", raw.Hits),
		Doubles:     p.count("doubles", raw.Doubles),
		Triples:     p.count("triples", raw.Triples),
		Homeruns:    p.count("homeruns", raw.Homeruns),
		Walks:       p.count("walks", raw.Walks),

		RBI:                p.optionalInt("rbi", raw.RBI),
		Strikeouts:         p.optionalDecimal("strikeouts", raw.Strikeouts),
		StolenBases:        p.optionalInt("stolen_bases", raw.StolenBases),
		CaughtStealing:     p.optionalInt("caught_stealing", raw.CaughtStealing),
		OnBasePercentage:   p.optionalDecimal("on_base_percentage", raw.OnBasePercentage),
		OnBasePlusSlugging: p.optionalDecimal("on_base_plus_slugging", raw.OnBasePlusSlugging),

		BattingAverage:     p.decimal("batting_average", raw.BattingAverage),
		SluggingPercentage: p.decimal("slugging_percentage", raw.SluggingPercentage),
	}

	if p.err != nil {
		return Record{}, p.err
	}
	return rec, nil
}

// IsMissing reports whether a raw value encodes "not recorded".
func IsMissing(value string) bool {
	v := strings.TrimSpace(value)
	return v == "" || v == Sentinel
}

// ParseOptionalInt applies the sentinel policy to an integer field.
func ParseOptionalInt(value string) (OptionalInt, error) {
	if IsMissing(value) {
		return NoInt(), nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return NoInt(), err
	}
	return SomeInt(n), nil
}

// ParseOptionalDecimal applies the sentinel policy to a decimal field.
func ParseOptionalDecimal(value string) (OptionalDecimal, error) {
	if IsMissing(value) {
		return NoDecimal(), nil
	}
	d, err := decimal.NewFromString(strings.TrimSpace(value))
	if err != nil {
		return NoDecimal(), err
	}
	return SomeDecimal(d), nil
}

func optionalText(value string) OptionalString {
	v := strings.TrimSpace(value)
	if v == "" {
		return NoString()
	}
	return SomeString(v)
}

// parser keeps the first field failure so Normalize reads as one literal.
type parser struct {
	line int
	err  error
}

func (p *parser) fail(field, value string, err error) {
	if p.err == nil {
		p.err = &NormalizationError{Line: p.line, Field: field, Value: value, Err: err}
	}
}

func (p *parser) text(field, value string) string {
	v := strings.TrimSpace(value)
	if v == "" {
		p.fail(field, value, errRequired)
	}
	return v
}

func (p *parser) integer(field, value string) int {
	v := strings.TrimSpace(value)
	if v == "" {
		p.fail(field, value, errRequired)
		return 0
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		p.fail(field, value, err)
		return 0
	}
	return n
}

func (p *parser) count(field, value string) int {
	n := p.integer(field, value)
	if n < 0 {
		p.fail(field, value, errNegative)
		return 0
	}
	return n
}

func (p *parser) decimal(field, value string) decimal.Decimal {
	v := strings.TrimSpace(value)
	if v == "" {
		p.fail(field, value, errRequired)
		return decimal.Zero
	}
	d, err := decimal.NewFromString(v)
	if err != nil {
		p.fail(field, value, err)
		return decimal.Zero
	}
	return d
}

func (p *parser) optionalInt(field, value string) OptionalInt {
	o, err := ParseOptionalInt(value)
	if err != nil {
		p.fail(field, value, err)
	}
	return o
}

func (p *parser) optionalDecimal(field, value string) OptionalDecimal {
	o, err := ParseOptionalDecimal(value)
	if err != nil {
		p.fail(field, value, err)
	}
	return o
}
