package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/atotto/clipboard"
	"github.com/handiism/flacmeta/internal/collector"
	"github.com/handiism/flacmeta/internal/config"
	"github.com/handiism/flacmeta/internal/export"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the CLI and returns the process exit code:
// 1 on errors, 2 when the directory has no audio files, 0 otherwise.
func run(args []string, stdout, stderr io.Writer) int {
	flags := flag.NewFlagSet("flacmeta", flag.ContinueOnError)
	flags.SetOutput(stderr)

	// Command line flags
	var (
		dirFlag       = flags.String("dir", "", "Directory containing the audio files")
		configFlag    = flags.String("config", "", "Path to config file (default: user config dir)")
		outputFlag    = flags.String("output", "", "Write JSON to this file instead of stdout")
		copyFlag      = flags.Bool("copy", false, "Copy JSON to the clipboard")
		coversFlag    = flags.String("covers", "", "Export one cover image per group into this directory")
		playlistsFlag = flags.String("playlists", "", "Write one playlist per group into this directory")
		extFlag       = flags.String("ext", "", "Audio file extension (overrides config)")
		verboseFlag   = flags.Bool("verbose", false, "Show verbose output")
	)

	if err := flags.Parse(args); err != nil {
		return 1
	}

	dir := *dirFlag
	if dir == "" && flags.NArg() > 0 {
		dir = flags.Arg(0)
	}

	if dir == "" {
		fmt.Fprintln(stderr, "flacmeta - Collect audio metadata as JSON")
		fmt.Fprintln(stderr)
		fmt.Fprintln(stderr, "Usage:")
		fmt.Fprintln(stderr, "  flacmeta -dir <DIR> [options]")
		fmt.Fprintln(stderr, "  flacmeta <DIR> [options]")
		fmt.Fprintln(stderr)
		fmt.Fprintln(stderr, "For interactive mode, use: flacmeta-tui")
		fmt.Fprintln(stderr)
		flags.PrintDefaults()
		return 1
	}

	// Load config
	configPath := *configFlag
	if configPath == "" {
		configPath = config.DefaultPath()
	}
	settings, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(stderr, "Error loading config: %v\n", err)
		return 1
	}

	// Apply flags
	if *extFlag != "" {
		settings.AudioExtension = *extFlag
	}
	if *copyFlag {
		settings.CopyToClipboard = true
	}

	// Handle interrupts
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Progress goes to stderr so stdout carries only the JSON document
	onProgress := func(event collector.ProgressEvent) {
		if event.Level == collector.LevelVerbose && !*verboseFlag {
			return
		}

		prefix := ""
		switch event.Level {
		case collector.LevelError:
			prefix = "✗ "
		case collector.LevelWarning:
			prefix = "! "
		case collector.LevelSuccess:
			prefix = "✓ "
		case collector.LevelInfo:
			prefix = "› "
		default:
			prefix = "  "
		}

		fmt.Fprintln(stderr, prefix+event.Message)
	}

	result, err := collector.NewCollector(settings, nil, onProgress).Collect(dir)
	if err != nil {
		if errors.Is(err, collector.ErrNoAudioFiles) {
			fmt.Fprintf(stderr, "%v\n", err)
			return 2
		}
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	data, err := result.JSON()
	if err != nil {
		fmt.Fprintf(stderr, "Error rendering JSON: %v\n", err)
		return 1
	}

	exp := export.NewExporter(settings, onProgress)

	if *outputFlag != "" {
		if err := exp.WriteJSON(ctx, *outputFlag, data); err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return 1
		}
	} else {
		fmt.Fprintln(stdout, string(data))
	}

	if settings.CopyToClipboard {
		if err := clipboard.WriteAll(string(data)); err != nil {
			onProgress(collector.ProgressEvent{Message: fmt.Sprintf("Could not copy to clipboard: %v", err), Level: collector.LevelWarning})
		} else {
			onProgress(collector.ProgressEvent{Message: "Copied JSON to clipboard", Level: collector.LevelSuccess})
		}
	}

	if *coversFlag != "" {
		if err := exp.ExportCovers(ctx, *coversFlag, result.Records); err != nil {
			fmt.Fprintf(stderr, "Error exporting covers: %v\n", err)
			return 1
		}
	}

	if *playlistsFlag != "" {
		if err := exp.WritePlaylists(ctx, *playlistsFlag, result.Records); err != nil {
			fmt.Fprintf(stderr, "Error writing playlists: %v\n", err)
			return 1
		}
	}

	return 0
}
