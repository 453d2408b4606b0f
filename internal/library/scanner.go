// Package library lists the MP3 files of a directory.
package library

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/llehouerou/tagbatch/internal/tags"
)

// ScanError reports a directory that could not be listed.
type ScanError struct {
	Dir string
	Err error
}

func (e *ScanError) Error() string {
	return fmt.Sprintf("scan %s: %v", e.Dir, e.Err)
}

func (e *ScanError) Unwrap() error { return e.Err }

// Scan returns the names of the MP3 files directly inside dir.
// Names are relative to dir and sorted by filename, as os.ReadDir returns
// them. Only regular files are kept; a symlink counts when its target is a
// regular file. Subdirectories are not descended into.
func Scan(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, &ScanError{Dir: dir, Err: err}
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if !tags.IsMP3(entry.Name()) {
			continue
		}
		if !isRegular(dir, entry) {
			continue
		}
		names = append(names, entry.Name())
	}
	return names, nil
}

// isRegular reports whether entry is a regular file, following symlinks.
// FIFOs, sockets and devices would block or fail on open.
func isRegular(dir string, entry os.DirEntry) bool {
	mode := entry.Type()
	if mode&os.ModeSymlink == 0 {
		return mode.IsRegular()
	}
	info, err := os.Stat(filepath.Join(dir, entry.Name()))
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}
