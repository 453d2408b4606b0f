package state

import (
	"database/sql"
	"time"

	dbutil "github.com/llehouerou/tagbatch/internal/db"
)

// RecentDir is a directory opened in an earlier session.
type RecentDir struct {
	Path     string
	OpenedAt time.Time
}

// AddRecent records path as opened now and keeps only the newest limit entries.
func (m *Manager) AddRecent(path string, limit int) error {
	return addRecent(m.db, path, time.Now(), limit)
}

// Recent returns up to limit directories, most recently opened first.
func (m *Manager) Recent(limit int) ([]RecentDir, error) {
	return listRecent(m.db, limit)
}

func addRecent(db *sql.DB, path string, openedAt time.Time, limit int) error {
	return dbutil.WithTx(db, func(tx *sql.Tx) error {
		_, err := tx.Exec(`
			INSERT INTO recent_dirs (path, opened_at) VALUES (?, ?)
			ON CONFLICT(path) DO UPDATE SET opened_at = excluded.opened_at
		`, path, openedAt.UnixNano())
		if err != nil {
			return err
		}

		_, err = tx.Exec(`
			DELETE FROM recent_dirs WHERE path NOT IN (
				SELECT path FROM recent_dirs ORDER BY opened_at DESC LIMIT ?
			)
		`, limit)
		return err
	})
}

func listRecent(db *sql.DB, limit int) ([]RecentDir, error) {
	rows, err := db.Query(`
		SELECT path, opened_at FROM recent_dirs
		ORDER BY opened_at DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var dirs []RecentDir
	for rows.Next() {
		var d RecentDir
		var openedAt int64
		if err := rows.Scan(&d.Path, &openedAt); err != nil {
			return nil, err
		}
		d.OpenedAt = time.Unix(0, openedAt)
		dirs = append(dirs, d)
	}
	return dirs, rows.Err()
}
