package audio

import (
	"errors"
	"os"
	"strconv"

	"github.com/dhowden/tag"
	"github.com/handiism/flacmeta/internal/model"
)

// ErrNoPicture is returned by ReadPicture when a file has no embedded picture.
var ErrNoPicture = errors.New("no embedded picture")

// GenericReader reads tags from any container supported by dhowden/tag
// (MP4/M4A, OGG, DSF and others).
//
// String values of the raw tag map are returned under their lower-cased
// names, and the common fields are also exposed under the generic names
// genre, title, artist, album and year.
type GenericReader struct{}

// NewGenericReader creates a new GenericReader.
func NewGenericReader() *GenericReader {
	return &GenericReader{}
}

// ReadTags opens path and returns its tags.
func (r *GenericReader) ReadTags(path string) (Tags, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	m, err := tag.ReadFrom(f)
	if err != nil {
		return nil, err
	}

	tags := Tags{}
	for name, value := range m.Raw() {
		if s, ok := value.(string); ok {
			tags.Add(name, s)
		}
	}

	setCommon := func(name, value string) {
		if value == "" {
			return
		}
		if _, ok := tags.First(name); !ok {
			tags.Add(name, value)
		}
	}
	setCommon(model.TagGenre, m.Genre())
	setCommon(model.TagTitle, m.Title())
	setCommon(model.TagArtist, m.Artist())
	setCommon(model.TagAlbum, m.Album())
	if year := m.Year(); year > 0 {
		setCommon(model.TagYear, strconv.Itoa(year))
	}

	return tags, nil
}

// Picture is an embedded cover image.
type Picture struct {
	MIMEType string
	Data     []byte
}

// ReadPicture returns the embedded picture of an audio file.
//
// Returns ErrNoPicture if the file has tags but no picture.
//
// Example:
//
//	pic, err := ReadPicture("/music/a_1.flac")
//	if errors.Is(err, ErrNoPicture) {
//	    // fall back to the next track of the group
//	}
func ReadPicture(path string) (*Picture, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	m, err := tag.ReadFrom(f)
	if err != nil {
		return nil, err
	}

	pic := m.Picture()
	if pic == nil || len(pic.Data) == 0 {
		return nil, ErrNoPicture
	}

	return &Picture{MIMEType: pic.MIMEType, Data: pic.Data}, nil
}
