package state

import "time"

// Mock is a test double for Manager.
type Mock struct {
	dirs   []RecentDir
	closed bool
}

// NewMock creates a new mock state manager for testing.
func NewMock(paths ...string) *Mock {
	m := &Mock{}
	for _, p := range paths {
		m.dirs = append(m.dirs, RecentDir{Path: p, OpenedAt: time.Now()})
	}
	return m
}

func (m *Mock) AddRecent(path string, limit int) error {
	kept := []RecentDir{{Path: path, OpenedAt: time.Now()}}
	for _, d := range m.dirs {
		if d.Path != path {
			kept = append(kept, d)
		}
	}
	if len(kept) > limit {
		kept = kept[:limit]
	}
	m.dirs = kept
	return nil
}

func (m *Mock) Recent(limit int) ([]RecentDir, error) {
	if len(m.dirs) > limit {
		return m.dirs[:limit], nil
	}
	return m.dirs, nil
}

func (m *Mock) Close() error {
	m.closed = true
	return nil
}

// Closed reports whether Close was called.
func (m *Mock) Closed() bool {
	return m.closed
}

var _ Interface = (*Mock)(nil)
