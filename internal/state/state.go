// Package state remembers the directories opened in previous runs.
// Only the directory paths are kept: the records of an edit session are
// never persisted.
package state

import (
	"database/sql"
	"path/filepath"

	"github.com/adrg/xdg"

	dbutil "github.com/llehouerou/tagbatch/internal/db"
)

const (
	appName    = "tagbatch"
	dbFileName = "tagbatch.db"
)

type Manager struct {
	db *sql.DB
}

// Open opens the state database under the XDG data directory.
func Open() (*Manager, error) {
	dbPath, err := getDBPath()
	if err != nil {
		return nil, err
	}
	return OpenAt(dbPath)
}

// OpenAt opens the state database at path.
func OpenAt(path string) (*Manager, error) {
	db, err := dbutil.Open(path)
	if err != nil {
		return nil, err
	}

	if err := initSchema(db); err != nil {
		db.Close()
		return nil, err
	}

	return &Manager{db: db}, nil
}

func (m *Manager) Close() error {
	return m.db.Close()
}

func getDBPath() (string, error) {
	// xdg.DataFile creates the parent directory
	return xdg.DataFile(filepath.Join(appName, dbFileName))
}
