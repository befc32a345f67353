// Package career folds season records into per-player career summaries.
// This is part of the Functional Core - no I/O, only pure functions.
package career

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/example/ballstats/internal/core/season"
)

// Record is one player's statistics summed across all their seasons.
type Record struct {
	Link      string
	FirstName string
	LastName  string

	FirstSeason   int
	LastSeason    int
	SeasonsPlayed int

	Positions []string
	Teams     []string

	TotalGamesPlayed    int
	TotalAtBats         int
	TotalRuns           int
	TotalHits           int
	TotalDoubles        int
	TotalTriples        int
	TotalHomeruns       int
	TotalWalks          int
	TotalRBI            int
	TotalStrikeouts     decimal.Decimal
	TotalStolenBases    int
	TotalCaughtStealing int
}

// PositionList returns the positions joined for display.
func (r Record) PositionList() string {
	return strings.Join(r.Positions, ", ")
}

// TeamList returns the teams joined for display.
func (r Record) TeamList() string {
	return strings.Join(r.Teams, ", ")
}

// Ledger is an insertion-ordered mapping of player link to career record.
type Ledger struct {
	links  []string
	byLink map[string]Record
}

// Len returns the number of players.
func (l *Ledger) Len() int {
	return len(l.links)
}

// Links returns player links in first-seen order.
func (l *Ledger) Links() []string {
	out := make([]string, len(l.links))
	copy(out, l.links)
	return out
}

// Get returns the career for a player link.
func (l *Ledger) Get(link string) (Record, bool) {
	r, ok := l.byLink[link]
	return r, ok
}

// Records returns career records in first-seen order.
func (l *Ledger) Records() []Record {
	out := make([]Record, 0, len(l.links))
	for _, link := range l.links {
		out = append(out, l.byLink[link])
	}
	return out
}

// Aggregate groups seasons by player link and folds each group into a Record.
// Groups keep the order in which their link first appears. Absent optional
// statistics count as zero in the totals; the input records are not modified.
func Aggregate(seasons []season.Record) *Ledger {
	var links []string
	groups := make(map[string][]season.Record)
	for _, s := range seasons {
		if _, ok := groups[s.Link]; !ok {
			links = append(links, s.Link)
		}
		groups[s.Link] = append(groups[s.Link], s)
	}

	ledger := &Ledger{
		links:  links,
		byLink: make(map[string]Record, len(links)),
	}
	for _, link := range links {
		ledger.byLink[link] = fold(groups[link])
	}
	return ledger
}

// fold summarises one non-empty group of seasons belonging to a single player.
func fold(group []season.Record) Record {
	head := group[0]
	rec := Record{
		Link:            head.Link,
		FirstName:       head.DisplayFirstName(),
		LastName:        head.LastName,
		FirstSeason:     head.Season,
		LastSeason:      head.Season,
		SeasonsPlayed:   len(group),
		TotalStrikeouts: decimal.Zero,
	}

	positions := newOrderedSet()
	teams := newOrderedSet()

	for _, s := range group {
		rec.FirstSeason = min(rec.FirstSeason, s.Season)
		rec.LastSeason = max(rec.LastSeason, s.Season)

		positions.add(s.Position)
		teams.add(s.Team)

		rec.TotalGamesPlayed += s.GamesPlayed
		rec.TotalAtBats += s.AtBats
		rec.TotalRuns += s.Runs
		rec.TotalHits += s.Hits
		rec.TotalDoubles += s.Doubles
		rec.TotalTriples += s.Triples
		rec.TotalHomeruns += s.Homeruns
		rec.TotalWalks += s.Walks

		rec.TotalRBI += s.RBI.OrZero()
		rec.TotalStrikeouts = rec.TotalStrikeouts.Add(s.Strikeouts.OrZero())
		rec.TotalStolenBases += s.StolenBases.OrZero()
		rec.TotalCaughtStealing += s.CaughtStealing.OrZero()
	}

	rec.Positions = positions.values()
	rec.Teams = teams.values()
	return rec
}
