package model

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Tag names looked up when building a Record.
const (
	TagGenre  = "genre"
	TagTitle  = "title"
	TagArtist = "artist"
	TagAlbum  = "album"
	TagYear   = "year"
)

// yearLength is the number of leading characters kept from a year tag.
const yearLength = 4

// Record is the normalized metadata of one audio file.
//
// The JSON field names are consumed by downstream tools and must not change.
type Record struct {
	// AudioPath is the asset reference of the audio file, e.g. "Albums/a_1.flac".
	AudioPath string `json:"archivo_musica"`

	// Description is the group key derived from the file name.
	Description string `json:"descripcion"`

	// ImagePath is the asset reference of the group cover, e.g. "Albums/a.jpg".
	ImagePath string `json:"imagen"`

	Genre  string `json:"genero"`
	Title  string `json:"titulo"`
	Artist string `json:"artista"`
	Album  string `json:"album"`

	// TrackLabel is "<track token>/<group size>".
	TrackLabel string `json:"numero_de_pista"`

	// Year holds at most the first four characters of the year tag.
	Year string `json:"Año"`

	// Source is the path of the file the record was read from.
	// It is not part of the JSON output.
	Source string `json:"-"`
}

// TagDefaults holds the values substituted for missing tags.
type TagDefaults struct {
	Genre  string
	Title  string
	Artist string
	Album  string
	Year   string
}

// RecordConfig holds the settings used to build Records.
//
// Example:
//
//	cfg := &RecordConfig{
//	    AssetRoot:      "Albums",
//	    ImageExtension: ".jpg",
//	    Defaults:       DefaultTagDefaults(),
//	}
type RecordConfig struct {
	// AssetRoot is the directory prefix of audio and image references.
	AssetRoot string

	// ImageExtension is appended to the group key to name the cover image.
	ImageExtension string

	// Defaults are used for tags that are absent.
	Defaults TagDefaults
}

// DefaultTagDefaults returns the standard placeholder values for missing tags.
func DefaultTagDefaults() TagDefaults {
	return TagDefaults{
		Genre:  "Unknown",
		Title:  "Untitled",
		Artist: "Unknown",
		Album:  "No album",
		Year:   "Unknown",
	}
}

// DefaultRecordConfig returns the configuration used when none is given.
func DefaultRecordConfig() *RecordConfig {
	return &RecordConfig{
		AssetRoot:      "Albums",
		ImageExtension: ".jpg",
		Defaults:       DefaultTagDefaults(),
	}
}

// TagLookup returns the first value of a tag and whether the tag exists.
type TagLookup func(name string) (string, bool)

// NewRecord builds the Record for an entry.
//
// Parameters:
//   - entry: The parsed file name
//   - groupSize: The value computed by GroupSize for entry.GroupKey
//   - lookup: Tag access for the file; missing tags take cfg.Defaults
//   - cfg: Asset paths and default values
func NewRecord(entry Entry, groupSize int, lookup TagLookup, cfg *RecordConfig) Record {
	if cfg == nil {
		cfg = DefaultRecordConfig()
	}

	get := func(name, fallback string) string {
		if v, ok := lookupTag(lookup, name); ok {
			return v
		}
		return fallback
	}

	year := cfg.Defaults.Year
	if v, ok := lookupTag(lookup, TagYear); ok {
		year = truncateRunes(v, yearLength)
	}

	return Record{
		AudioPath:   assetPath(cfg.AssetRoot, entry.Name),
		Description: entry.GroupKey,
		ImagePath:   assetPath(cfg.AssetRoot, entry.GroupKey+cfg.ImageExtension),
		Genre:       get(TagGenre, cfg.Defaults.Genre),
		Title:       get(TagTitle, cfg.Defaults.Title),
		Artist:      get(TagArtist, cfg.Defaults.Artist),
		Album:       get(TagAlbum, cfg.Defaults.Album),
		TrackLabel:  fmt.Sprintf("%s/%d", entry.TrackToken, groupSize),
		Year:        year,
	}
}

func lookupTag(lookup TagLookup, name string) (string, bool) {
	if lookup == nil {
		return "", false
	}
	return lookup(name)
}

// assetPath joins root and name into a forward-slash reference.
func assetPath(root, name string) string {
	return strings.ReplaceAll(filepath.Join(root, name), `\`, "/")
}

func truncateRunes(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}

// RecordGroup is a run of records sharing a description.
type RecordGroup struct {
	Description string
	Records     []Record
}

// GroupRecords groups records by description, in order of first appearance.
func GroupRecords(records []Record) []RecordGroup {
	var groups []RecordGroup
	index := make(map[string]int)
	for _, rec := range records {
		i, ok := index[rec.Description]
		if !ok {
			i = len(groups)
			index[rec.Description] = i
			groups = append(groups, RecordGroup{Description: rec.Description})
		}
		groups[i].Records = append(groups[i].Records, rec)
	}
	return groups
}
