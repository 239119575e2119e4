// Package config provides configuration management for flacmeta.
//
// This package handles:
//   - Loading and saving settings from JSON files
//   - Default configuration values
//   - Conversion to RecordConfig for the model package
//
// # Default Settings
//
// Use DefaultSettings() to get sensible defaults:
//
//	settings := config.DefaultSettings()
//	// Scans *.flac files
//	// Asset references under "Albums/"
//	// Covers resized to 1000px
//
// # Loading from File
//
//	settings, err := config.Load(config.DefaultPath())
//	if err != nil {
//	    // Uses defaults if file doesn't exist
//	}
//
// # Saving Settings
//
//	settings.AssetRoot = "static/Albums"
//	err := settings.Save("/path/to/settings.json")
package config
