// Package tags decodes and encodes the editable tag fields of MP3 files.
// Reading goes through dhowden/tag with bogem/id3v2 and TagLib fallbacks;
// writing always goes through bogem/id3v2 and produces ID3v2.3 tags.
package tags

import (
	"fmt"
	"strings"
)

// ExtMP3 is the only file extension handled by the codec.
const ExtMP3 = ".mp3"

// LyricsLanguage is the ISO-639-2 code every written lyrics frame carries.
const LyricsLanguage = "eng"

// id3Magic is the magic bytes for ID3v2 header detection.
const id3Magic = "ID3"

// writeVersion is the ID3v2 major revision used when saving.
const writeVersion = 3

// Record holds the editable tag fields of one file.
// Filename is the file's base name and identifies the record within a directory.
type Record struct {
	Filename string
	Title    string
	Artist   string
	Album    string
	Lyrics   string
}

// IsMP3 reports whether name has an .mp3 extension, ignoring case.
func IsMP3(name string) bool {
	return len(name) >= len(ExtMP3) && strings.EqualFold(name[len(name)-len(ExtMP3):], ExtMP3)
}

// DecodeError reports a file whose tag container could not be read.
// A file without any tag is not a DecodeError.
type DecodeError struct {
	Path string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode tags of %s: %v", e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// EncodeError reports a file whose tags could not be written.
type EncodeError struct {
	Path string
	Err  error
}

func (e *EncodeError) Error() string {
	return fmt.Sprintf("encode tags of %s: %v", e.Path, e.Err)
}

func (e *EncodeError) Unwrap() error { return e.Err }

// Codec exposes Decode and Encode as methods so callers can swap it out.
type Codec struct{}

// Decode calls the package-level Decode.
func (Codec) Decode(path string) (Record, error) { return Decode(path) }

// Encode calls the package-level Encode.
func (Codec) Encode(path string, r Record) error { return Encode(path, r) }

// taglibTags wraps a taglib result map with helper methods.
type taglibTags map[string][]string

// get returns the first value for any of the given keys, or empty string if not found.
func (t taglibTags) get(keys ...string) string {
	for _, key := range keys {
		if values, ok := t[key]; ok && len(values) > 0 {
			return values[0]
		}
	}
	return ""
}
