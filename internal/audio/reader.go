package audio

import (
	"path/filepath"
	"strings"
)

// Tags maps lower-cased tag names to their values, in file order.
//
// Lookups are case-insensitive:
//
//	tags := Tags{}
//	tags.Add("TITLE", "Intro")
//	title, ok := tags.First("title") // "Intro", true
type Tags map[string][]string

// Add appends a value to the named tag.
func (t Tags) Add(name, value string) {
	key := strings.ToLower(name)
	t[key] = append(t[key], value)
}

// First returns the first value of the named tag and whether it exists.
// A tag with no values is reported as missing.
func (t Tags) First(name string) (string, bool) {
	values := t[strings.ToLower(name)]
	if len(values) == 0 {
		return "", false
	}
	return values[0], true
}

// TagReader reads the embedded tags of an audio file.
//
// Implementations open and close the file within the call, including
// when decoding fails. A decode failure is returned as an error; absent
// tags are simply missing from the returned Tags.
type TagReader interface {
	ReadTags(path string) (Tags, error)
}

// TagReaderFunc adapts a function to the TagReader interface.
type TagReaderFunc func(path string) (Tags, error)

// ReadTags calls f(path).
func (f TagReaderFunc) ReadTags(path string) (Tags, error) {
	return f(path)
}

// Registry selects a TagReader by file extension.
//
// Example:
//
//	reg := NewRegistry()
//	tags, err := reg.ReadTags("/music/a_1.flac") // uses VorbisReader
//	tags, err = reg.ReadTags("/music/a_1.mp3")   // uses ID3Reader
//	tags, err = reg.ReadTags("/music/a_1.m4a")   // uses GenericReader
type Registry struct {
	readers  map[string]TagReader
	fallback TagReader
}

// NewRegistry creates a Registry with the built-in readers registered.
//
// FLAC files use VorbisReader, MP3 files use ID3Reader and every other
// extension falls back to GenericReader.
func NewRegistry() *Registry {
	r := &Registry{
		readers:  make(map[string]TagReader),
		fallback: NewGenericReader(),
	}
	r.Register(".flac", NewVorbisReader())
	r.Register(".mp3", NewID3Reader())
	return r
}

// Register sets the reader used for files with the given extension.
// The extension match is case-insensitive and must include the dot.
func (r *Registry) Register(ext string, reader TagReader) {
	r.readers[strings.ToLower(ext)] = reader
}

// ReaderFor returns the reader registered for path's extension.
func (r *Registry) ReaderFor(path string) TagReader {
	if reader, ok := r.readers[strings.ToLower(filepath.Ext(path))]; ok {
		return reader
	}
	return r.fallback
}

// ReadTags implements TagReader by delegating to ReaderFor(path).
func (r *Registry) ReadTags(path string) (Tags, error) {
	return r.ReaderFor(path).ReadTags(path)
}
