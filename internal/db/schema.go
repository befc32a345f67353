package db

// SchemaSQL is the layout of a season database.
//
// Statistic columns are TEXT on purpose: the table mirrors the raw export,
// including the "--" placeholder, and normalization happens in the core.
// Column names match the CSV header so every source maps the same way.
const SchemaSQL = `
CREATE TABLE IF NOT EXISTS seasons (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	season TEXT NOT NULL,
	first_name TEXT,
	last_name TEXT,
	link TEXT,
	position TEXT,
	team TEXT,
	games_played TEXT,
	at_bats TEXT,
	runs TEXT,
	hits TEXT,
	doubles TEXT,
	triples TEXT,
	homeruns TEXT,
	rbi TEXT,
	walks TEXT,
	strikeouts TEXT,
	stolen_bases TEXT,
	caught_stealing TEXT,
	batting_average TEXT,
	on_base_percentage TEXT,
	slugging_percentage TEXT,
	on_base_plus_slugging TEXT
);

CREATE INDEX IF NOT EXISTS idx_seasons_link ON seasons(link);
`

// GetSchemaSQL returns the schema used by production databases and tests.
func GetSchemaSQL() string {
	return SchemaSQL
}
