package tags

import (
	"errors"

	"github.com/bogem/id3v2/v2"
)

// lyricsFrameName is the id3v2 common name of the USLT frame.
const lyricsFrameName = "Unsynchronised lyrics/text transcription"

// readMP3Lyrics returns the text of the first USLT frame.
// ok is false when the tag cannot be opened by the id3v2 library.
func readMP3Lyrics(path string) (lyrics string, ok bool) {
	id3tag, err := id3v2.Open(path, id3v2.Options{
		Parse:       true,
		ParseFrames: []string{lyricsFrameName},
	})
	if err != nil {
		return "", false
	}
	defer id3tag.Close()

	return firstLyrics(id3tag), true
}

// decodeWithID3v2 reads the record using only the id3v2 library.
// This is used as a fallback when dhowden/tag fails.
func decodeWithID3v2(path string, rec Record) (Record, error) {
	id3tag, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if errors.Is(err, id3v2.ErrUnsupportedVersion) {
		// ID3v2.2 and older are not supported by id3v2
		return decodeWithTaglib(path, rec)
	}
	if err != nil {
		return rec, &DecodeError{Path: path, Err: err}
	}
	defer id3tag.Close()

	rec.Title = id3tag.Title()
	rec.Artist = id3tag.Artist()
	rec.Album = id3tag.Album()
	rec.Lyrics = firstLyrics(id3tag)

	return rec, nil
}

// firstLyrics returns the text of the first USLT frame, or empty string.
func firstLyrics(id3tag *id3v2.Tag) string {
	for _, frame := range id3tag.GetFrames(id3tag.CommonID(lyricsFrameName)) {
		if uslt, ok := frame.(id3v2.UnsynchronisedLyricsFrame); ok {
			return uslt.Lyrics
		}
	}
	return ""
}
