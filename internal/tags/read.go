package tags

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/dhowden/tag"
)

// Decode reads the editable fields of the MP3 file at path.
// A file with no tag yields a Record with only Filename set and a nil error.
// Only I/O and container failures return a *DecodeError.
func Decode(path string) (Record, error) {
	rec := Record{Filename: filepath.Base(path)}

	f, err := os.Open(path)
	if err != nil {
		return rec, &DecodeError{Path: path, Err: err}
	}
	defer f.Close()

	m, err := tag.ReadFrom(f)
	if errors.Is(err, tag.ErrNoTagsFound) {
		return rec, nil
	}
	if err != nil {
		// dhowden/tag has issues with some UTF-16 encoded ID3 tags
		return decodeWithID3v2(path, rec)
	}

	rec.Title = m.Title()
	rec.Artist = m.Artist()
	rec.Album = m.Album()

	switch m.Format() {
	case tag.ID3v2_3, tag.ID3v2_4:
		lyrics, ok := readMP3Lyrics(path)
		if !ok {
			lyrics = m.Lyrics()
		}
		rec.Lyrics = lyrics
	case tag.ID3v2_2:
		rec.Lyrics = m.Lyrics()
	}

	return rec, nil
}
