package audio

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-flac/flacvorbis"
	"github.com/go-flac/go-flac"
)

// VorbisReader reads Vorbis comments from FLAC files.
//
// Only the metadata blocks are parsed; audio frames are never decoded.
// ID3v2 tags written in front of the stream by some taggers are skipped.
// Every comment field is returned, so tags such as YEAR, DATE or
// custom fields are all available by name:
//
//	reader := NewVorbisReader()
//	tags, err := reader.ReadTags("/music/a_1.flac")
//	if err != nil {
//	    log.Printf("unreadable FLAC: %v", err)
//	}
//	year, ok := tags.First("year")
type VorbisReader struct{}

// NewVorbisReader creates a new VorbisReader.
func NewVorbisReader() *VorbisReader {
	return &VorbisReader{}
}

// ReadTags parses the FLAC metadata of path and returns its Vorbis comments.
//
// Returns an error if:
//   - The file cannot be opened
//   - The file is not a FLAC stream or a metadata block is truncated
//   - A comment block is malformed
//
// A valid FLAC file without a comment block yields empty Tags.
func (r *VorbisReader) ReadTags(path string) (Tags, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if err := skipID3v2(f); err != nil {
		return nil, fmt.Errorf("failed to skip ID3v2 header: %w", err)
	}

	file, err := flac.ParseMetadata(f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse FLAC metadata: %w", err)
	}

	tags := Tags{}
	for _, meta := range file.Meta {
		if meta.Type != flac.VorbisComment {
			continue
		}

		cmts, err := flacvorbis.ParseFromMetaDataBlock(*meta)
		if err != nil {
			return nil, fmt.Errorf("failed to parse vorbis comment: %w", err)
		}

		for _, cmt := range cmts.Comments {
			name, value, ok := strings.Cut(cmt, "=")
			if !ok {
				continue
			}
			tags.Add(name, value)
		}
	}

	return tags, nil
}

// id3v2HeaderSize is the size of an ID3v2 header, and of its optional footer.
const id3v2HeaderSize = 10

// skipID3v2 positions r after any ID3v2 tags that precede the FLAC stream.
// Without a tag, r is left at the start of the file.
func skipID3v2(r io.ReadSeeker) error {
	var offset int64
	for {
		header := make([]byte, id3v2HeaderSize)
		if _, err := io.ReadFull(r, header); err != nil || !bytes.HasPrefix(header, []byte("ID3")) {
			_, err := r.Seek(offset, io.SeekStart)
			return err
		}

		// Syncsafe integer: 7 significant bits per byte.
		size := int64(header[6]&0x7f)<<21 | int64(header[7]&0x7f)<<14 |
			int64(header[8]&0x7f)<<7 | int64(header[9]&0x7f)
		offset += id3v2HeaderSize + size
		if header[5]&0x10 != 0 {
			offset += id3v2HeaderSize
		}

		if _, err := r.Seek(offset, io.SeekStart); err != nil {
			return err
		}
	}
}
