// Package export writes the files derived from a collection.
//
// An Exporter produces three kinds of output:
//   - The JSON record document (WriteJSON)
//   - One cover image per description group, taken from the first track
//     that embeds a picture (ExportCovers)
//   - One playlist per description group (WritePlaylists)
//
// Covers are exported concurrently with an errgroup bounded by
// config.Settings.MaxConcurrentCovers. Progress is reported through the
// same collector.ProgressEvent callback the collector uses.
//
// Example:
//
//	exp := export.NewExporter(settings, onProgress)
//	if err := exp.ExportCovers(ctx, "site/Albums", result.Records); err != nil {
//	    return err
//	}
package export
