package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/handiism/flacmeta/internal/model"
)

// Settings holds all configuration options.
type Settings struct {
	// Scan settings
	AudioExtension string `json:"audio_extension"`

	// Record settings
	AssetRoot      string `json:"asset_root"`
	ImageExtension string `json:"image_extension"`
	DefaultGenre   string `json:"default_genre"`
	DefaultTitle   string `json:"default_title"`
	DefaultArtist  string `json:"default_artist"`
	DefaultAlbum   string `json:"default_album"`
	DefaultYear    string `json:"default_year"`

	// Cover export settings
	CoverResize         bool `json:"cover_resize"`
	CoverMaxSize        int  `json:"cover_max_size"`
	MaxConcurrentCovers int  `json:"max_concurrent_covers"`

	// Playlist settings
	PlaylistFormat         string `json:"playlist_format"` // m3u, pls, wpl
	M3UExtended            bool   `json:"m3u_extended"`
	PlaylistFileNameFormat string `json:"playlist_file_name_format"`

	// Output settings
	CopyToClipboard bool `json:"copy_to_clipboard"`
}

// DefaultSettings returns settings with default values.
func DefaultSettings() *Settings {
	defaults := model.DefaultTagDefaults()
	return &Settings{
		AudioExtension: ".flac",

		AssetRoot:      "Albums",
		ImageExtension: ".jpg",
		DefaultGenre:   defaults.Genre,
		DefaultTitle:   defaults.Title,
		DefaultArtist:  defaults.Artist,
		DefaultAlbum:   defaults.Album,
		DefaultYear:    defaults.Year,

		CoverResize:         true,
		CoverMaxSize:        1000,
		MaxConcurrentCovers: 4,

		PlaylistFormat:         "m3u",
		M3UExtended:            true,
		PlaylistFileNameFormat: "{description}",

		CopyToClipboard: false,
	}
}

// DefaultPath returns the settings file location under the user config directory.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "flacmeta.json"
	}
	return filepath.Join(dir, "flacmeta", "settings.json")
}

// Load reads settings from a JSON file.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultSettings(), nil
		}
		return nil, err
	}

	settings := DefaultSettings()
	if err := json.Unmarshal(data, settings); err != nil {
		return nil, err
	}
	settings.normalize()

	return settings, nil
}

// normalize replaces values that cannot be used with their defaults.
func (s *Settings) normalize() {
	defaults := DefaultSettings()
	if strings.TrimSpace(s.AudioExtension) == "" {
		s.AudioExtension = defaults.AudioExtension
	}
	if s.MaxConcurrentCovers < 1 {
		s.MaxConcurrentCovers = defaults.MaxConcurrentCovers
	}
}

// Save writes settings to a JSON file.
func (s *Settings) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// ToRecordConfig converts settings to RecordConfig.
func (s *Settings) ToRecordConfig() *model.RecordConfig {
	return &model.RecordConfig{
		AssetRoot:      s.AssetRoot,
		ImageExtension: s.ImageExtension,
		Defaults: model.TagDefaults{
			Genre:  s.DefaultGenre,
			Title:  s.DefaultTitle,
			Artist: s.DefaultArtist,
			Album:  s.DefaultAlbum,
			Year:   s.DefaultYear,
		},
	}
}
