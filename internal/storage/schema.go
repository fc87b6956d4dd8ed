// ABOUTME: SQLite schema definition and initialization.
// ABOUTME: Defines tables for metric definitions and per-day entries.
package storage

// initSchema creates or updates the database schema.
// Entries are keyed by (user, metric, date) so a rewrite of the same
// day is an overwrite, never a duplicate. Deleting a metric cascades
// to its entries.
func (s *Store) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS metrics (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		name TEXT NOT NULL,
		kind TEXT NOT NULL CHECK (kind IN ('quantitative', 'qualitative')),
		min_value REAL,
		max_value REAL,
		scale_min INTEGER NOT NULL DEFAULT 0,
		scale_max INTEGER NOT NULL DEFAULT 0,
		category TEXT NOT NULL DEFAULT '',
		description TEXT NOT NULL DEFAULT '',
		example TEXT,
		example_low TEXT,
		example_high TEXT,
		created_at DATETIME NOT NULL,
		UNIQUE (user_id, name)
	);

	CREATE TABLE IF NOT EXISTS entries (
		user_id TEXT NOT NULL,
		metric_id TEXT NOT NULL,
		entry_date TEXT NOT NULL,
		value REAL NOT NULL,
		note TEXT,
		created_at DATETIME NOT NULL,
		updated_at DATETIME NOT NULL,
		PRIMARY KEY (user_id, metric_id, entry_date),
		FOREIGN KEY (metric_id) REFERENCES metrics(id) ON DELETE CASCADE
	);

	CREATE INDEX IF NOT EXISTS idx_metrics_user_name ON metrics(user_id, name);
	CREATE INDEX IF NOT EXISTS idx_entries_metric_date ON entries(user_id, metric_id, entry_date);
	`

	_, err := s.db.Exec(schema)
	return err
}
