package model

import (
	"math/big"
	"path/filepath"
	"sort"
	"strings"
)

// fallbackTrackToken is used when a file stem has no "_"-separated track part.
const fallbackTrackToken = "0"

// Entry represents one audio file found in a scanned folder.
//
// The group key and track token are derived from the file name using
// the "<group>_..._<track>.<ext>" convention:
//
//	e := ParseFileName("AB12_live_03.flac")
//	// e.GroupKey = "AB12", e.TrackToken = "03"
//
// Files that do not follow the convention never fail to parse; they
// degrade to documented fallbacks (see ParseFileName).
type Entry struct {
	// Name is the file name, including extension, without directory.
	Name string

	// GroupKey is the text of the stem before the first "_".
	// For a stem without "_" it is the whole stem.
	GroupKey string

	// TrackToken is the text of the stem after the last "_".
	// It is "0" when the stem has fewer than two "_"-delimited parts.
	TrackToken string
}

// ParseFileName splits a file name into its group key and track token.
//
// The extension (text from the last ".") is removed before splitting.
// Leading dots do not start an extension, so ".flac" is all stem:
//
//	ParseFileName("a_10.flac")   // GroupKey "a", TrackToken "10"
//	ParseFileName("x_y_7.FLAC")  // GroupKey "x", TrackToken "7"
//	ParseFileName("track5.flac") // GroupKey "track5", TrackToken "0"
//	ParseFileName(".flac")       // GroupKey ".flac", TrackToken "0"
func ParseFileName(name string) Entry {
	stem := name
	if trimmed := strings.TrimSuffix(name, filepath.Ext(name)); strings.TrimLeft(trimmed, ".") != "" {
		stem = trimmed
	}
	parts := strings.Split(stem, "_")

	token := fallbackTrackToken
	if len(parts) >= 2 {
		token = parts[len(parts)-1]
	}

	return Entry{
		Name:       name,
		GroupKey:   parts[0],
		TrackToken: token,
	}
}

// TrackNumber returns the numeric value of the track token used for ordering.
//
// Only the part of the token before its first "." is considered. Tokens
// that are not integers order as 0. The value is not bounded, so
// "99999999999999999999" orders after "5".
func (e Entry) TrackNumber() *big.Int {
	token, _, _ := strings.Cut(e.TrackToken, ".")
	n, ok := new(big.Int).SetString(token, 10)
	if !ok {
		return new(big.Int)
	}
	return n
}

// SortEntries orders entries by group key, then by ascending track number.
//
// The sort is stable, so entries with equal keys keep their input order.
//
//	["b_2.flac", "a_10.flac", "a_2.flac"] -> ["a_2.flac", "a_10.flac", "b_2.flac"]
func SortEntries(entries []Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].GroupKey != entries[j].GroupKey {
			return entries[i].GroupKey < entries[j].GroupKey
		}
		return entries[i].TrackNumber().Cmp(entries[j].TrackNumber()) < 0
	})
}

// GroupSize counts the entries whose file name contains key as a substring.
//
// This is a substring match over the whole set, not a group key equality:
// the key "a" counts both "a_2.flac" and "alpha_1.flac".
func GroupSize(entries []Entry, key string) int {
	count := 0
	for _, e := range entries {
		if strings.Contains(e.Name, key) {
			count++
		}
	}
	return count
}
