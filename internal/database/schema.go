package database

const schema = `
-- Imported catalog, one row per movie in catalog order
CREATE TABLE movies (
	position INTEGER PRIMARY KEY,
	movie_id TEXT NOT NULL,
	title TEXT NOT NULL DEFAULT '',
	trailer_url TEXT NOT NULL DEFAULT '',
	thumbnail TEXT NOT NULL DEFAULT '',
	banner TEXT NOT NULL DEFAULT '',
	subtitle TEXT NOT NULL DEFAULT '',
	bio TEXT NOT NULL DEFAULT '',
	year TEXT NOT NULL DEFAULT '',
	genres TEXT NOT NULL DEFAULT '',
	imported_at TIMESTAMP NOT NULL,
	created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX idx_movies_movie_id ON movies(movie_id);
CREATE INDEX idx_movies_year ON movies(year);

-- One row per catalog import
CREATE TABLE imports (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	source TEXT NOT NULL,
	movie_count INTEGER NOT NULL,
	imported_at TIMESTAMP NOT NULL
);
`

// migrations contains incremental schema changes
// Each migration is applied in order based on the current user_version
// migrations[0] is empty because version 0 uses the base schema
var migrations = []string{
	"",
	`CREATE TABLE IF NOT EXISTS imports (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		source TEXT NOT NULL,
		movie_count INTEGER NOT NULL,
		imported_at TIMESTAMP NOT NULL
	);`,
}
