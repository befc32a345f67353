// Package sqlite_test contains integration tests for the SQLite season source.
//
// # Schema Protection
//
// This file is the SINGLE POINT where the database schema is loaded for tests.
// All test setup functions use db.GetSchemaSQL() so tests run against the
// authoritative schema. Do not hardcode CREATE TABLE statements in test files.
package sqlite_test

import (
	"database/sql"
	"path/filepath"
	"strings"
	"testing"

	_ "github.com/mattn/go-sqlite3"

	"github.com/example/ballstats/internal/adapters/tabular"
	"github.com/example/ballstats/internal/core/season"
	"github.com/example/ballstats/internal/db"
)

// setupTestDB creates a database file with the authoritative schema and
// returns its path together with a writable handle for seeding.
func setupTestDB(t *testing.T) (string, *sql.DB) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "seasons.db")
	testDB, err := sql.Open("sqlite3", path)
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}

	if _, err := testDB.Exec(db.GetSchemaSQL()); err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}

	t.Cleanup(func() {
		testDB.Close()
	})

	return path, testDB
}

// seedSeason inserts a raw season row.
func seedSeason(t *testing.T, database *sql.DB, row season.RawRow) {
	t.Helper()

	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(tabular.Columns)), ", ")
	query := "INSERT INTO seasons (" + strings.Join(tabular.Columns, ", ") + ") VALUES (" + placeholders + ")"

	values := tabular.Values(row)
	args := make([]any, len(values))
	for i, v := range values {
		args[i] = v
	}
	if _, err := database.Exec(query, args...); err != nil {
		t.Fatalf("failed to seed season: %v", err)
	}
}

// testSeason returns a fully populated raw row for link and year.
func testSeason(link string, year string) season.RawRow {
	return season.RawRow{
		Season: year, FirstName: "Hank", LastName: "Aaron", Link: link,
		Position: "RF", Team: "ATL", GamesPlayed: "139", AtBats: "502", Runs: "103",
		Hits: "160", Doubles: "22", Triples: "3", Homeruns: "47", RBI: "118", Walks: "71",
		Strikeouts: "58", StolenBases: "21", CaughtStealing: "--", BattingAverage: "0.327",
		OnBasePercentage: "0.410", SluggingPercentage: "0.669", OnBasePlusSlugging: "1.079",
	}
}
