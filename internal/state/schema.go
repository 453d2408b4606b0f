package state

import (
	"database/sql"
)

const currentSchemaVersion = 1

func initSchema(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_version (
			version INTEGER PRIMARY KEY
		);

		CREATE TABLE IF NOT EXISTS recent_dirs (
			path TEXT PRIMARY KEY,
			opened_at INTEGER NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_recent_dirs_opened_at ON recent_dirs(opened_at);
	`)
	if err != nil {
		return err
	}

	_, err = db.Exec(`INSERT OR IGNORE INTO schema_version (version) VALUES (?)`, currentSchemaVersion)
	return err
}
