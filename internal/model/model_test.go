package model

import (
	"strings"
	"testing"
)

func TestParseFileName(t *testing.T) {
	tests := []struct {
		input     string
		wantGroup string
		wantToken string
	}{
		{"a_10.flac", "a", "10"},
		{"AB12_live_03.flac", "AB12", "03"},
		{"track5.flac", "track5", "0"},
		{"x_y_7.FLAC", "x", "7"},
		{"_4.flac", "", "4"},
		{"a_1.live.flac", "a", "1.live"},
		{"noext", "noext", "0"},
		{".flac", ".flac", "0"},
		{"..flac", "..flac", "0"},
		{".hidden_2.flac", ".hidden", "2"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := ParseFileName(tt.input)
			if got.Name != tt.input {
				t.Errorf("Name = %q, want %q", got.Name, tt.input)
			}
			if got.GroupKey != tt.wantGroup {
				t.Errorf("GroupKey = %q, want %q", got.GroupKey, tt.wantGroup)
			}
			if got.TrackToken != tt.wantToken {
				t.Errorf("TrackToken = %q, want %q", got.TrackToken, tt.wantToken)
			}
		})
	}
}

func TestEntry_TrackNumber(t *testing.T) {
	tests := []struct {
		token string
		want  string
	}{
		{"10", "10"},
		{"03", "3"},
		{"0", "0"},
		{"1.live", "1"},
		{"bonus", "0"},
		{"", "0"},
		{"-2", "-2"},
		{"99999999999999999999", "99999999999999999999"},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			e := Entry{TrackToken: tt.token}
			if got := e.TrackNumber().String(); got != tt.want {
				t.Errorf("TrackNumber() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestSortEntries(t *testing.T) {
	entries := parseAll("b_2.flac", "a_10.flac", "a_2.flac")
	SortEntries(entries)

	want := []string{"a_2.flac", "a_10.flac", "b_2.flac"}
	if got := names(entries); strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("SortEntries() = %v, want %v", got, want)
	}
}

func TestSortEntries_LargeTrackNumbers(t *testing.T) {
	entries := parseAll("a_99999999999999999999.flac", "a_5.flac", "a_100000000000000000000.flac")
	SortEntries(entries)

	want := []string{"a_5.flac", "a_99999999999999999999.flac", "a_100000000000000000000.flac"}
	if got := names(entries); strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("SortEntries() = %v, want %v", got, want)
	}
}

func TestSortEntries_Stable(t *testing.T) {
	// "a_x" and "a_0" both order as track 0 and must keep input order.
	entries := parseAll("a_x.flac", "a_0.flac", "a_1.flac")
	SortEntries(entries)

	want := []string{"a_x.flac", "a_0.flac", "a_1.flac"}
	if got := names(entries); strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("SortEntries() = %v, want %v", got, want)
	}
}

func TestGroupSize_Substring(t *testing.T) {
	entries := parseAll("a_2.flac", "alpha_1.flac", "b_1.flac")

	tests := []struct {
		key  string
		want int
	}{
		// The extension takes part in the match: "flac" contains "a".
		{"a", 3},
		{"alpha", 1},
		{"b", 1},
		{"_1", 2},
		{"zzz", 0},
		{"", 3},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			if got := GroupSize(entries, tt.key); got != tt.want {
				t.Errorf("GroupSize(%q) = %d, want %d", tt.key, got, tt.want)
			}
		})
	}
}

func TestNewRecord_Defaults(t *testing.T) {
	e := ParseFileName("a_2.flac")
	rec := NewRecord(e, 3, func(string) (string, bool) { return "", false }, nil)

	want := Record{
		AudioPath:   "Albums/a_2.flac",
		Description: "a",
		ImagePath:   "Albums/a.jpg",
		Genre:       "Unknown",
		Title:       "Untitled",
		Artist:      "Unknown",
		Album:       "No album",
		TrackLabel:  "2/3",
		Year:        "Unknown",
	}
	if rec != want {
		t.Errorf("NewRecord() = %+v, want %+v", rec, want)
	}
}

func TestNewRecord_Tags(t *testing.T) {
	tags := map[string]string{
		TagGenre:  "Jazz",
		TagTitle:  "Señora",
		TagArtist: "Artist",
		TagAlbum:  "Álbum",
		TagYear:   "2023-05-01",
	}
	lookup := func(name string) (string, bool) {
		v, ok := tags[name]
		return v, ok
	}

	rec := NewRecord(ParseFileName("disc_07.flac"), 12, lookup, DefaultRecordConfig())

	if rec.Year != "2023" {
		t.Errorf("Year = %q, want %q", rec.Year, "2023")
	}
	if rec.Title != "Señora" || rec.Album != "Álbum" {
		t.Errorf("unexpected title/album: %q / %q", rec.Title, rec.Album)
	}
	if rec.TrackLabel != "07/12" {
		t.Errorf("TrackLabel = %q, want %q", rec.TrackLabel, "07/12")
	}
}

func TestNewRecord_ShortYearAndEmptyValues(t *testing.T) {
	lookup := func(name string) (string, bool) {
		if name == TagYear {
			return "99", true
		}
		if name == TagGenre {
			return "", true
		}
		return "", false
	}

	rec := NewRecord(ParseFileName("a_1.flac"), 1, lookup, nil)

	if rec.Year != "99" {
		t.Errorf("Year = %q, want %q", rec.Year, "99")
	}
	// A present but empty tag is kept as is.
	if rec.Genre != "" {
		t.Errorf("Genre = %q, want empty", rec.Genre)
	}
}

func TestNewRecord_AssetPaths(t *testing.T) {
	cfg := &RecordConfig{
		AssetRoot:      `media\Albums`,
		ImageExtension: ".png",
		Defaults:       DefaultTagDefaults(),
	}

	rec := NewRecord(ParseFileName("track5.flac"), 1, nil, cfg)

	if rec.AudioPath != "media/Albums/track5.flac" {
		t.Errorf("AudioPath = %q", rec.AudioPath)
	}
	if rec.ImagePath != "media/Albums/track5.png" {
		t.Errorf("ImagePath = %q", rec.ImagePath)
	}
	if rec.TrackLabel != "0/1" {
		t.Errorf("TrackLabel = %q, want %q", rec.TrackLabel, "0/1")
	}
}

func TestNewRecord_DotOnlyName(t *testing.T) {
	rec := NewRecord(ParseFileName(".flac"), 1, nil, nil)

	if rec.Description != ".flac" {
		t.Errorf("Description = %q, want %q", rec.Description, ".flac")
	}
	if rec.ImagePath != "Albums/.flac.jpg" {
		t.Errorf("ImagePath = %q, want %q", rec.ImagePath, "Albums/.flac.jpg")
	}
}

func TestMarshalRecords(t *testing.T) {
	rec := Record{
		AudioPath:   "Albums/a_1.flac",
		Description: "a",
		ImagePath:   "Albums/a.jpg",
		Genre:       "Rock & Roll",
		Title:       "Canción <1>",
		Artist:      "Unknown",
		Album:       "No album",
		TrackLabel:  "1/1",
		Year:        "2023",
		Source:      "/tmp/a_1.flac",
	}

	data, err := MarshalRecords([]Record{rec})
	if err != nil {
		t.Fatalf("MarshalRecords failed: %v", err)
	}

	want := `[
    {
        "archivo_musica": "Albums/a_1.flac",
        "descripcion": "a",
        "imagen": "Albums/a.jpg",
        "genero": "Rock & Roll",
        "titulo": "Canción <1>",
        "artista": "Unknown",
        "album": "No album",
        "numero_de_pista": "1/1",
        "Año": "2023"
    }
]`
	if string(data) != want {
		t.Errorf("MarshalRecords() =\n%s\nwant\n%s", data, want)
	}
}

func TestMarshalRecords_Empty(t *testing.T) {
	for _, records := range [][]Record{nil, {}} {
		data, err := MarshalRecords(records)
		if err != nil {
			t.Fatalf("MarshalRecords failed: %v", err)
		}
		if string(data) != "[]" {
			t.Errorf("MarshalRecords(%v) = %q, want %q", records, data, "[]")
		}
	}
}

func parseAll(names ...string) []Entry {
	entries := make([]Entry, len(names))
	for i, n := range names {
		entries[i] = ParseFileName(n)
	}
	return entries
}

func names(entries []Entry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Name
	}
	return out
}
