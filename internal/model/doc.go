// Package model defines the core data structures used throughout
// the flacmeta application.
//
// # Entry
//
// Entry is a scanned audio file with the fields derived from its name:
//
//	e := model.ParseFileName("AB12_03.flac")
//	fmt.Println(e.GroupKey)      // "AB12"
//	fmt.Println(e.TrackToken)    // "03"
//	fmt.Println(e.TrackNumber()) // 3
//
// SortEntries orders a folder's entries by group key and track number,
// and GroupSize counts the entries a group key appears in.
//
// # Record
//
// Record is the normalized output for one file:
//
//	rec := model.NewRecord(e, model.GroupSize(entries, e.GroupKey), tags.First, cfg)
//	fmt.Println(rec.AudioPath)  // "Albums/AB12_03.flac"
//	fmt.Println(rec.TrackLabel) // "03/12"
//
// # JSON
//
// MarshalRecords renders a record list as the JSON document consumed
// downstream (4-space indent, non-ASCII kept literal).
package model
