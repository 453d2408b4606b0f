package tags

import (
	"go.senan.xyz/taglib"
)

// decodeWithTaglib reads the record using TagLib as the last resort,
// for containers neither dhowden/tag nor id3v2 can parse.
func decodeWithTaglib(path string, rec Record) (Record, error) {
	rawTags, err := taglib.ReadTags(path)
	if err != nil {
		return rec, &DecodeError{Path: path, Err: err}
	}
	tags := taglibTags(rawTags)

	rec.Title = tags.get(taglib.Title)
	rec.Artist = tags.get(taglib.Artist)
	rec.Album = tags.get(taglib.Album)
	rec.Lyrics = tags.get("LYRICS", "UNSYNCEDLYRICS")

	return rec, nil
}
