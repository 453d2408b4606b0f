package state

// Interface defines the state manager contract for dependency injection and testing.
type Interface interface {
	AddRecent(path string, limit int) error
	Recent(limit int) ([]RecentDir, error)
	Close() error
}

// Verify Manager implements Interface at compile time.
var _ Interface = (*Manager)(nil)
