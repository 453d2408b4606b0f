package tags

import (
	"fmt"
	"path/filepath"
)

// Encode writes the record's title, artist, album and lyrics into the file at path.
// Other frames already present in the tag are kept.
// The file must already exist; it is modified in place.
func Encode(path string, r Record) error {
	if !IsMP3(path) {
		return &EncodeError{Path: path, Err: fmt.Errorf("unsupported file format: %s", filepath.Ext(path))}
	}
	if err := writeMP3Tags(path, r); err != nil {
		return &EncodeError{Path: path, Err: err}
	}
	return nil
}
