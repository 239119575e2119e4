// Package collector turns a directory of audio files into metadata records.
//
// # Collector
//
// The Collector performs one scan:
//
//  1. Check that the directory exists
//  2. List the files with the configured audio extension
//  3. Sort them by group key and track number
//  4. Read each file's tags and build its record
//
// # Basic Usage
//
//	c := collector.NewCollector(settings, nil, func(event collector.ProgressEvent) {
//	    fmt.Println(event.Message)
//	})
//
//	result, err := c.Collect("/music/albums")
//	switch {
//	case errors.Is(err, collector.ErrDirectoryNotFound):
//	    // report an error
//	case errors.Is(err, collector.ErrNoAudioFiles):
//	    // report that nothing was found
//	case err != nil:
//	    // listing failed
//	}
//
//	data, _ := result.JSON()
//
// # Failures
//
// A file whose tags cannot be read does not stop the scan. It is
// reported through the progress callback with LevelError and listed
// in Result.Failures.
//
// Collection is sequential and keeps no state between calls, so the
// same directory always gives the same JSON.
package collector
