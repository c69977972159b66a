package commands

import (
	"github.com/arthur-debert/dot/pkg/errors"
	"github.com/arthur-debert/dot/pkg/logging"
	"github.com/arthur-debert/dot/pkg/manifest"
)

// UntrackOptions holds options for the untrack command
type UntrackOptions struct {
	Manifest *manifest.Manifest
	Name     string
	// Purge also deletes the stored copy.
	Purge bool
}

// UntrackResult reports what untrack removed.
type UntrackResult struct {
	Entry  manifest.Entry
	Found  bool
	Purged bool
}

// Untrack removes Name from the manifest. Untracking a name that is not
// tracked succeeds without changes.
func Untrack(opts UntrackOptions) (*UntrackResult, error) {
	logger := logging.GetLogger("commands.untrack")
	logger.Debug().
		Str("name", opts.Name).
		Bool("purge", opts.Purge).
		Msg("Untracking entry")

	m := opts.Manifest
	if m == nil {
		return nil, errors.New(errors.ErrInternal, "untrack: no manifest loaded")
	}

	entry, found := m.Entry(opts.Name)
	result := &UntrackResult{Entry: entry, Found: found}
	if !found {
		logger.Info().Str("name", opts.Name).Msg("Name not tracked, nothing to do")
		return result, nil
	}

	if opts.Purge {
		if err := m.PurgeEntry(opts.Name); err != nil {
			return nil, err
		}
		result.Purged = true
		return result, nil
	}

	if err := m.DropEntry(opts.Name); err != nil {
		return nil, err
	}
	return result, nil
}
