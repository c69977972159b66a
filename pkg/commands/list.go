package commands

import (
	"io"

	"github.com/arthur-debert/dot/pkg/errors"
	"github.com/arthur-debert/dot/pkg/logging"
	"github.com/arthur-debert/dot/pkg/manifest"
	"github.com/arthur-debert/dot/pkg/output"
)

// ListOptions defines the options for the List command.
type ListOptions struct {
	Manifest *manifest.Manifest
	// Writer receives the listing.
	Writer io.Writer
	// Format is one of the output formats; empty means text.
	Format string
	// Color is one of the output color modes; empty means auto.
	Color string
}

// List writes the tracked entries in the requested format.
func List(opts ListOptions) error {
	log := logging.GetLogger("commands.list")
	log.Debug().Str("command", "List").Str("format", opts.Format).Msg("Executing command")

	if opts.Manifest == nil {
		return errors.New(errors.ErrInternal, "list: no manifest loaded")
	}

	w := opts.Writer
	if w == nil {
		w = io.Discard
	}
	color := opts.Color
	if color == "" {
		color = output.ColorAuto
	}

	if err := output.NewRenderer(w, color).RenderList(opts.Manifest, opts.Format); err != nil {
		return err
	}

	log.Info().Str("command", "List").Int("entryCount", opts.Manifest.Len()).Msg("Command finished")
	return nil
}
