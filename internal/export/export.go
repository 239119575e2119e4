package export

import (
	"context"
	"errors"
	"fmt"
	"path"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/handiism/flacmeta/internal/audio"
	"github.com/handiism/flacmeta/internal/collector"
	"github.com/handiism/flacmeta/internal/config"
	ioutils "github.com/handiism/flacmeta/internal/io"
	"github.com/handiism/flacmeta/internal/model"
	"golang.org/x/sync/errgroup"
)

// Exporter writes the side outputs of a collection: cover images,
// playlists and the JSON document.
type Exporter struct {
	settings     *config.Settings
	imageService *ioutils.ImageService
	playlist     *audio.PlaylistCreator
	readPicture  func(path string) (*audio.Picture, error)

	onProgress func(collector.ProgressEvent)
	mu         sync.Mutex
}

// NewExporter creates a new Exporter.
//
// onProgress may be nil. Calls to it are serialized even when covers
// are exported concurrently.
func NewExporter(settings *config.Settings, onProgress func(collector.ProgressEvent)) *Exporter {
	return &Exporter{
		settings:     settings,
		imageService: ioutils.NewImageService(),
		playlist:     audio.NewPlaylistCreator(audio.ParsePlaylistFormat(settings.PlaylistFormat), settings.M3UExtended),
		readPicture:  audio.ReadPicture,
		onProgress:   onProgress,
	}
}

// WriteJSON writes a rendered record document to path.
func (e *Exporter) WriteJSON(ctx context.Context, path string, data []byte) error {
	if err := ioutils.WriteFile(ctx, path, data); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	e.progress(collector.ProgressEvent{Message: fmt.Sprintf("Wrote %s", path), Level: LevelSuccess})
	return nil
}

// ExportCovers writes one cover image per description group into outDir.
//
// The image is taken from the first record of the group whose source file
// has an embedded picture, and is written under the base name of the
// group's image reference (e.g. "a.jpg" for "Albums/a.jpg"). JPEG covers
// are resized and re-encoded according to the settings; a CoverMaxSize
// below 1 only re-encodes. Other image extensions receive the embedded
// bytes unchanged.
//
// Groups are processed concurrently, bounded by MaxConcurrentCovers.
// A group without any picture is reported as a warning. Write errors
// abort the export.
func (e *Exporter) ExportCovers(ctx context.Context, outDir string, records []model.Record) error {
	if err := ioutils.EnsureDir(outDir); err != nil {
		return err
	}

	limit := e.settings.MaxConcurrentCovers
	if limit < 1 {
		limit = 1
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	var written int32
	for _, group := range model.GroupRecords(records) {
		group := group // capture
		g.Go(func() error {
			ok, err := e.exportCover(ctx, outDir, group)
			if err != nil {
				return err
			}
			if ok {
				atomic.AddInt32(&written, 1)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	e.progress(collector.ProgressEvent{Message: fmt.Sprintf("Exported %d cover(s) to %s", written, outDir), Level: LevelSuccess})
	return nil
}

func (e *Exporter) exportCover(ctx context.Context, outDir string, group model.RecordGroup) (bool, error) {
	var pic *audio.Picture
	for _, rec := range group.Records {
		if err := ctx.Err(); err != nil {
			return false, err
		}

		p, err := e.readPicture(rec.Source)
		if err != nil {
			if !errors.Is(err, audio.ErrNoPicture) {
				e.progress(collector.ProgressEvent{Message: fmt.Sprintf("Could not read picture from %s: %v", rec.Source, err), Level: LevelVerbose})
			}
			continue
		}
		pic = p
		break
	}

	if pic == nil {
		e.progress(collector.ProgressEvent{Message: fmt.Sprintf("No embedded cover for group %q", group.Description), Level: LevelWarning})
		return false, nil
	}

	name := path.Base(group.Records[0].ImagePath)
	data := pic.Data

	if isJPEGName(name) {
		var err error
		if e.settings.CoverResize && e.settings.CoverMaxSize > 0 {
			data, err = e.imageService.ResizeImage(ctx, data, e.settings.CoverMaxSize, e.settings.CoverMaxSize)
		} else {
			data, err = e.imageService.ConvertToJPEG(ctx, data)
		}
		if err != nil {
			e.progress(collector.ProgressEvent{Message: fmt.Sprintf("Could not convert cover for group %q: %v", group.Description, err), Level: LevelWarning})
			return false, nil
		}
	}

	dest := filepath.Join(outDir, name)
	if err := ioutils.WriteFile(ctx, dest, data); err != nil {
		return false, fmt.Errorf("failed to write cover %s: %w", dest, err)
	}

	e.progress(collector.ProgressEvent{Message: fmt.Sprintf("Wrote cover: %s", dest), Level: LevelVerbose})
	return true, nil
}

// WritePlaylists writes one playlist per description group into outDir.
//
// File names come from PlaylistFileNameFormat, which supports the
// {description}, {album} and {artist} placeholders (taken from the first
// record of the group), and are sanitized for the file system.
func (e *Exporter) WritePlaylists(ctx context.Context, outDir string, records []model.Record) error {
	groups := model.GroupRecords(records)
	for _, group := range groups {
		name := e.playlistFileName(group) + e.playlist.Format().Extension()
		content := e.playlist.CreatePlaylist(group.Description, group.Records)

		dest := filepath.Join(outDir, name)
		if err := ioutils.WriteFile(ctx, dest, []byte(content)); err != nil {
			return fmt.Errorf("failed to write playlist %s: %w", dest, err)
		}
		e.progress(collector.ProgressEvent{Message: fmt.Sprintf("Wrote playlist: %s", dest), Level: LevelVerbose})
	}

	e.progress(collector.ProgressEvent{Message: fmt.Sprintf("Created %d playlist(s) in %s", len(groups), outDir), Level: LevelSuccess})
	return nil
}

func (e *Exporter) playlistFileName(group model.RecordGroup) string {
	first := group.Records[0]
	name := e.settings.PlaylistFileNameFormat
	if name == "" {
		name = "{description}"
	}
	name = strings.ReplaceAll(name, "{description}", group.Description)
	name = strings.ReplaceAll(name, "{album}", first.Album)
	name = strings.ReplaceAll(name, "{artist}", first.Artist)

	name = ioutils.SanitizeFileName(name)
	if name == "" {
		name = "playlist"
	}
	return name
}

func isJPEGName(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".jpg", ".jpeg":
		return true
	}
	return false
}

func (e *Exporter) progress(event collector.ProgressEvent) {
	if e.onProgress == nil {
		return
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.onProgress(event)
}

// Level aliases keep call sites short.
const (
	LevelVerbose = collector.LevelVerbose
	LevelWarning = collector.LevelWarning
	LevelSuccess = collector.LevelSuccess
)
