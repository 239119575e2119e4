// Package audio provides tag reading and playlist generation for
// audio files.
//
// # Tag Reading
//
// Use a Registry to read tags from any supported file:
//
//	reg := audio.NewRegistry()
//	tags, err := reg.ReadTags("/music/a_1.flac")
//	title, ok := tags.First("title")
//
// The registry supports:
//   - FLAC Vorbis comments (VorbisReader)
//   - MP3 ID3v2 frames (ID3Reader)
//   - MP4/M4A, OGG and others (GenericReader)
//
// Embedded cover art is available through ReadPicture.
//
// # Playlist Generation
//
// Generate a playlist for each description group:
//
//	creator := audio.NewPlaylistCreator(audio.FormatM3U, true) // extended M3U
//	content := creator.CreatePlaylist(group.Description, group.Records)
//
// Supported formats:
//   - M3U (with optional extended info)
//   - PLS
//   - WPL (Windows Media Player)
package audio
