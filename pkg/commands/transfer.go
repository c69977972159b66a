package commands

import (
	"github.com/arthur-debert/dot/pkg/errors"
	"github.com/arthur-debert/dot/pkg/logging"
	"github.com/arthur-debert/dot/pkg/manifest"
)

// TransferOptions holds options for the export and import commands
type TransferOptions struct {
	Manifest *manifest.Manifest
	Name     string
	// Copier overrides the manifest's copier.
	Copier manifest.Copier
}

// Export copies the stored copy of Name back to its original location.
func Export(opts TransferOptions) (*manifest.Entry, error) {
	return runTransfer("export", opts, func(e manifest.Entry) (string, string) {
		return e.StoredPath, e.OriginalPath
	})
}

// Import refreshes the stored copy of Name from its original location.
func Import(opts TransferOptions) (*manifest.Entry, error) {
	return runTransfer("import", opts, func(e manifest.Entry) (string, string) {
		return e.OriginalPath, e.StoredPath
	})
}

func runTransfer(op string, opts TransferOptions, direction func(manifest.Entry) (string, string)) (*manifest.Entry, error) {
	logger := logging.GetLogger("commands." + op)
	done := logging.LogOperationStart(logger, op)
	defer done()

	if opts.Manifest == nil {
		return nil, errors.Newf(errors.ErrInternal, "%s: no manifest loaded", op)
	}

	entry, err := opts.Manifest.Get(opts.Name)
	if err != nil {
		return nil, err
	}

	copier := opts.Copier
	if copier == nil {
		copier = opts.Manifest.Copier()
	}

	src, dest := direction(entry)
	if err := copier.Copy(src, dest, entry.IsDirectory); err != nil {
		return nil, err
	}

	logger.Info().
		Str("name", entry.Name).
		Str("src", src).
		Str("dest", dest).
		Msg("Transfer complete")
	return &entry, nil
}
