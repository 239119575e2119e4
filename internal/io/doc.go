// Package ioutils provides file system and image processing utilities.
//
// This package contains functions for:
//   - File writing with parent directory creation
//   - Filename sanitization for cross-platform compatibility
//   - Image resizing and format conversion for cover art
//
// # File Operations
//
//	// Write data to file, creating parent directories
//	err := ioutils.WriteFile(ctx, "/site/Albums/a.m3u", []byte("content"))
//
//	// Ensure directory exists
//	err := ioutils.EnsureDir("/site/Albums")
//
// # Filename Sanitization
//
//	safe := ioutils.SanitizeFileName("Song: Part 1/2") // Returns "Song_ Part 1_2"
//
// # Image Processing
//
// The ImageService turns embedded pictures into cover files:
//
//	svc := ioutils.NewImageService()
//
//	// Resize image to fit within 500x500 (JPEG output)
//	resized, _ := svc.ResizeImage(ctx, imageData, 500, 500)
//
//	// Convert to JPEG
//	jpeg, _ := svc.ConvertToJPEG(ctx, pngData)
package ioutils
