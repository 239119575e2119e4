package audio

import (
	"github.com/bogem/id3v2"
	"github.com/handiism/flacmeta/internal/model"
)

// ID3Reader reads ID3v2 tags from MP3 files.
//
// The frames are mapped to the generic tag names:
//   - TCON -> genre
//   - TIT2 -> title
//   - TPE1 -> artist
//   - TALB -> album
//   - TYER, or TDRC when TYER is absent -> year
//
// Empty frames are treated as missing.
type ID3Reader struct{}

// NewID3Reader creates a new ID3Reader.
func NewID3Reader() *ID3Reader {
	return &ID3Reader{}
}

// ReadTags opens path and returns its ID3v2 text frames as Tags.
//
// A file without an ID3v2 header yields empty Tags.
func (r *ID3Reader) ReadTags(path string) (Tags, error) {
	tag, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		return nil, err
	}
	defer tag.Close()

	tags := Tags{}
	add := func(name, value string) {
		if value != "" {
			tags.Add(name, value)
		}
	}

	add(model.TagGenre, tag.Genre())
	add(model.TagTitle, tag.Title())
	add(model.TagArtist, tag.Artist())
	add(model.TagAlbum, tag.Album())

	year := tag.GetTextFrame("TYER").Text
	if year == "" {
		year = tag.GetTextFrame("TDRC").Text
	}
	add(model.TagYear, year)

	return tags, nil
}
