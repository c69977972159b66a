package commands

import (
	"github.com/arthur-debert/dot/pkg/errors"
	"github.com/arthur-debert/dot/pkg/logging"
	"github.com/arthur-debert/dot/pkg/manifest"
)

// TrackOptions holds options for the track command
type TrackOptions struct {
	Manifest *manifest.Manifest
	Name     string
	Path     string
}

// TrackResult reports the entry for the name after tracking.
type TrackResult struct {
	Entry manifest.Entry
	// Added is false when the name was already tracked and nothing changed.
	Added bool
}

// Track copies Path into the storage directory and records it under Name.
func Track(opts TrackOptions) (*TrackResult, error) {
	logger := logging.GetLogger("commands.track")
	logger.Debug().
		Str("name", opts.Name).
		Str("path", opts.Path).
		Msg("Tracking file")

	if opts.Manifest == nil {
		return nil, errors.New(errors.ErrInternal, "track: no manifest loaded")
	}

	added, err := opts.Manifest.AddEntry(opts.Name, opts.Path)
	if err != nil {
		return nil, err
	}

	entry, _ := opts.Manifest.Entry(opts.Name)
	if !added {
		logger.Info().
			Str("name", opts.Name).
			Str("tracked_path", entry.OriginalPath).
			Msg("Name already tracked, nothing changed")
	}

	return &TrackResult{Entry: entry, Added: added}, nil
}
