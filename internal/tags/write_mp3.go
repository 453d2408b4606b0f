package tags

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/bogem/id3v2/v2"
)

// writeMP3Tags writes the record into the file's ID3v2 tag, creating one if absent.
func writeMP3Tags(path string, r Record) error {
	tag, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if errors.Is(err, id3v2.ErrUnsupportedVersion) {
		// ID3v2.2 or older tags - strip them and retry
		if stripErr := stripID3v2Tag(path); stripErr != nil {
			return fmt.Errorf("strip unsupported ID3v2.2 tag: %w", stripErr)
		}
		tag, err = id3v2.Open(path, id3v2.Options{Parse: true})
	}
	if err != nil {
		return fmt.Errorf("open file: %w", err)
	}
	defer tag.Close()

	// ID3v2.3 is read by every player; it has no UTF-8 so text goes out as UTF-16
	tag.SetVersion(writeVersion)
	tag.SetDefaultEncoding(id3v2.EncodingUTF16)
	downgradeFrames(tag)

	tag.SetTitle(r.Title)
	tag.SetArtist(r.Artist)
	tag.SetAlbum(r.Album)

	// Exactly one lyrics frame; whitespace-only lyrics become an explicit empty frame
	tag.DeleteFrames(tag.CommonID(lyricsFrameName))
	tag.AddUnsynchronisedLyricsFrame(id3v2.UnsynchronisedLyricsFrame{
		Encoding:          id3v2.EncodingUTF16,
		Language:          LyricsLanguage,
		ContentDescriptor: "",
		Lyrics:            strings.TrimSpace(r.Lyrics),
	})

	if err := tag.Save(); err != nil {
		return fmt.Errorf("save tags: %w", err)
	}

	return nil
}

// v23IDs maps frame IDs that only exist in ID3v2.4 to their v2.3 counterpart.
// An empty value means the frame has no v2.3 equivalent and is dropped.
var v23IDs = map[string]string{
	"TDRC": "TYER",
	"TDOR": "TORY",
	"TSOA": "XSOA",
	"TSOP": "XSOP",
	"TSOT": "XSOT",
	"TDEN": "",
	"TDRL": "",
	"TDTG": "",
	"TIPL": "",
	"TMCL": "",
	"TMOO": "",
	"TPRO": "",
	"TSST": "",
	"ASPI": "",
	"EQU2": "",
	"RVA2": "",
	"SEIS": "",
	"SIGN": "",
}

// downgradeFrames makes frames parsed from a v2.4 tag valid in v2.3:
// text is re-encoded as UTF-16 (v2.3 has no UTF-8) and v2.4-only frame IDs
// are renamed or dropped. A renamed frame never replaces one already present.
func downgradeFrames(tag *id3v2.Tag) {
	all := tag.AllFrames()
	for id, frames := range all {
		target, v24Only := v23IDs[id]
		if !v24Only {
			target = id
		}

		tag.DeleteFrames(id)
		if target == "" {
			continue
		}
		if _, exists := all[target]; exists && target != id {
			continue
		}

		for _, f := range frames {
			if converted, ok := reencodeFrame(target, f); ok {
				tag.AddFrame(target, converted)
			}
		}
	}
}

// reencodeFrame returns f with UTF-16 text, adapted to the v2.3 frame id.
// ok is false when the value cannot be expressed under id.
func reencodeFrame(id string, f id3v2.Framer) (id3v2.Framer, bool) {
	switch fr := f.(type) {
	case id3v2.TextFrame:
		fr.Encoding = id3v2.EncodingUTF16
		// v2.4 separates multiple values with NUL, v2.3 with a slash
		fr.Text = strings.ReplaceAll(strings.TrimRight(fr.Text, "\x00"), "\x00", "/")
		if id == "TYER" || id == "TORY" {
			year, ok := yearOf(fr.Text)
			if !ok {
				return nil, false
			}
			fr.Text = year
		}
		return fr, true
	case id3v2.UserDefinedTextFrame:
		fr.Encoding = id3v2.EncodingUTF16
		return fr, true
	case id3v2.CommentFrame:
		fr.Encoding = id3v2.EncodingUTF16
		return fr, true
	case id3v2.UnsynchronisedLyricsFrame:
		fr.Encoding = id3v2.EncodingUTF16
		return fr, true
	case id3v2.PictureFrame:
		fr.Encoding = id3v2.EncodingUTF16
		return fr, true
	default:
		return f, true
	}
}

// yearOf extracts the leading four-digit year of an ISO 8601 timestamp.
func yearOf(timestamp string) (string, bool) {
	if len(timestamp) < 4 {
		return "", false
	}
	for _, c := range timestamp[:4] {
		if c < '0' || c > '9' {
			return "", false
		}
	}
	return timestamp[:4], true
}

// stripID3v2Tag removes the ID3v2 tag from an MP3 file.
// This is used to handle ID3v2.2 tags which the id3v2 library doesn't support.
func stripID3v2Tag(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read file: %w", err)
	}

	if len(data) < 10 || string(data[:3]) != id3Magic {
		return nil
	}

	// Synchsafe size in bytes 6-9, plus the 10-byte header
	size := int(data[6])<<21 | int(data[7])<<14 | int(data[8])<<7 | int(data[9])
	tagSize := size + 10
	if data[5]&0x10 != 0 {
		tagSize += 10 // footer
	}

	if tagSize >= len(data) {
		return fmt.Errorf("ID3v2 tag size (%d) exceeds file size (%d)", tagSize, len(data))
	}

	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("stat file: %w", err)
	}

	if err := os.WriteFile(path, data[tagSize:], info.Mode()); err != nil {
		return fmt.Errorf("write file: %w", err)
	}

	return nil
}
