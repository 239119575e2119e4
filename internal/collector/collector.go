package collector

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/handiism/flacmeta/internal/audio"
	"github.com/handiism/flacmeta/internal/config"
	"github.com/handiism/flacmeta/internal/model"
)

var (
	// ErrDirectoryNotFound is returned when the scanned directory does not exist.
	ErrDirectoryNotFound = errors.New("directory does not exist")

	// ErrNoAudioFiles is returned when the directory holds no file with the
	// configured audio extension. It is informational: nothing failed.
	ErrNoAudioFiles = errors.New("no audio files found")
)

// ProgressLevel indicates the severity/type of a progress message.
type ProgressLevel int

const (
	LevelInfo ProgressLevel = iota
	LevelVerbose
	LevelWarning
	LevelError
	LevelSuccess
)

// ProgressEvent represents a collection progress update.
type ProgressEvent struct {
	Message string
	Level   ProgressLevel
}

// Failure describes a file whose tags could not be read.
type Failure struct {
	Name string
	Path string
	Err  error
}

// Error implements error.
func (f Failure) Error() string {
	return fmt.Sprintf("could not read metadata from %s: %v", f.Path, f.Err)
}

// Unwrap returns the underlying read error.
func (f Failure) Unwrap() error {
	return f.Err
}

// Result is the outcome of a successful collection.
type Result struct {
	// Records holds one record per readable file, in sorted order.
	Records []model.Record

	// Failures lists the skipped files, in sorted order.
	Failures []Failure
}

// JSON renders the records as the output document.
func (r *Result) JSON() ([]byte, error) {
	return model.MarshalRecords(r.Records)
}

// Collector builds metadata records for the audio files of a directory.
type Collector struct {
	extension string
	recordCfg *model.RecordConfig
	reader    audio.TagReader

	onProgress func(ProgressEvent)
}

// NewCollector creates a new Collector.
//
// If reader is nil, an audio.Registry with the built-in readers is used.
func NewCollector(settings *config.Settings, reader audio.TagReader, onProgress func(ProgressEvent)) *Collector {
	if reader == nil {
		reader = audio.NewRegistry()
	}
	return &Collector{
		extension:  strings.ToLower(settings.AudioExtension),
		recordCfg:  settings.ToRecordConfig(),
		reader:     reader,
		onProgress: onProgress,
	}
}

// Collect reads the audio files in dir and returns their records.
//
// Returns an error wrapping:
//   - ErrDirectoryNotFound if dir does not exist
//   - ErrNoAudioFiles if dir has no file with the audio extension
//
// In both cases no result is produced. A file whose tags cannot be read
// is reported with a LevelError event, listed in Result.Failures and
// left out of Result.Records; the remaining files are still processed.
func (c *Collector) Collect(dir string) (*Result, error) {
	if _, err := os.Stat(dir); err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrDirectoryNotFound, dir)
		}
		return nil, err
	}

	entries, err := c.listEntries(dir)
	if err != nil {
		return nil, err
	}

	if len(entries) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoAudioFiles, dir)
	}

	model.SortEntries(entries)
	c.progress(ProgressEvent{Message: fmt.Sprintf("Found %d audio file(s) in %s", len(entries), dir), Level: LevelInfo})

	result := &Result{Records: make([]model.Record, 0, len(entries))}
	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name)
		groupSize := model.GroupSize(entries, entry.GroupKey)

		tags, err := c.reader.ReadTags(path)
		if err != nil {
			failure := Failure{Name: entry.Name, Path: path, Err: err}
			result.Failures = append(result.Failures, failure)
			c.progress(ProgressEvent{Message: failure.Error(), Level: LevelError})
			continue
		}

		record := model.NewRecord(entry, groupSize, tags.First, c.recordCfg)
		record.Source = path
		result.Records = append(result.Records, record)

		c.progress(ProgressEvent{Message: fmt.Sprintf("Read: %s", entry.Name), Level: LevelVerbose})
	}

	if len(result.Failures) == 0 {
		c.progress(ProgressEvent{Message: fmt.Sprintf("Collected %d record(s)", len(result.Records)), Level: LevelSuccess})
	} else {
		c.progress(ProgressEvent{Message: fmt.Sprintf("Collected %d record(s), %d file(s) skipped", len(result.Records), len(result.Failures)), Level: LevelWarning})
	}

	return result, nil
}

// listEntries returns the regular files of dir with the audio extension.
func (c *Collector) listEntries(dir string) ([]model.Entry, error) {
	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", dir, err)
	}

	var entries []model.Entry
	for _, de := range dirEntries {
		if de.IsDir() {
			continue
		}
		if !strings.HasSuffix(strings.ToLower(de.Name()), c.extension) {
			continue
		}
		entries = append(entries, model.ParseFileName(de.Name()))
	}

	return entries, nil
}

func (c *Collector) progress(event ProgressEvent) {
	if c.onProgress != nil {
		c.onProgress(event)
	}
}
