package table

import (
	"errors"
	"fmt"
	"strings"

	"github.com/llehouerou/tagbatch/internal/tags"
)

// Column identifies one field of a record.
type Column int

const (
	ColFilename Column = iota
	ColTitle
	ColArtist
	ColAlbum
	ColLyrics
)

// Columns lists every column in display order.
var Columns = []Column{ColFilename, ColTitle, ColArtist, ColAlbum, ColLyrics}

var columnNames = [...]string{"Filename", "Title", "Artist", "Album", "Lyrics"}

// ErrUnknownColumn is returned by ParseColumn for names that match no column.
var ErrUnknownColumn = errors.New("unknown column")

// String returns the column header.
func (c Column) String() string {
	if c < 0 || int(c) >= len(columnNames) {
		return fmt.Sprintf("Column(%d)", int(c))
	}
	return columnNames[c]
}

// Valid reports whether c is one of the defined columns.
func (c Column) Valid() bool {
	return c >= ColFilename && c <= ColLyrics
}

// Editable reports whether users may change the column's value.
func (c Column) Editable() bool {
	return c.Valid() && c != ColFilename
}

// ParseColumn resolves a column header, ignoring case.
func ParseColumn(name string) (Column, error) {
	for i, n := range columnNames {
		if strings.EqualFold(n, strings.TrimSpace(name)) {
			return Column(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownColumn, name)
}

// Value returns the column's field of r.
func (c Column) Value(r tags.Record) string {
	switch c {
	case ColFilename:
		return r.Filename
	case ColTitle:
		return r.Title
	case ColArtist:
		return r.Artist
	case ColAlbum:
		return r.Album
	case ColLyrics:
		return r.Lyrics
	}
	return ""
}

// set stores value into the column's field of r.
func (c Column) set(r *tags.Record, value string) {
	switch c {
	case ColTitle:
		r.Title = value
	case ColArtist:
		r.Artist = value
	case ColAlbum:
		r.Album = value
	case ColLyrics:
		r.Lyrics = value
	case ColFilename:
	}
}
