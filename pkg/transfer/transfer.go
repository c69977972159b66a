package transfer

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/arthur-debert/dot/pkg/errors"
	"github.com/arthur-debert/dot/pkg/filesystem"
	"github.com/arthur-debert/dot/pkg/logging"
	"github.com/arthur-debert/dot/pkg/paths"
	"github.com/rs/zerolog"
)

// Transferer copies files on a filesystem and reports each transfer on Out.
type Transferer struct {
	fs     filesystem.FS
	out    io.Writer
	logger zerolog.Logger
}

// New creates a Transferer. A nil fs defaults to the OS filesystem and a
// nil out discards the transfer lines.
func New(fs filesystem.FS, out io.Writer) *Transferer {
	if fs == nil {
		fs = filesystem.NewOS()
	}
	if out == nil {
		out = io.Discard
	}
	return &Transferer{
		fs:     fs,
		out:    out,
		logger: logging.GetLogger("transfer"),
	}
}

// Copy copies the contents of src to dest, creating or truncating dest.
// When isDirectory is set, or src turns out to be a directory, nothing is
// copied and an ErrNotImplemented error is returned.
func (t *Transferer) Copy(src, dest string, isDirectory bool) error {
	if isDirectory {
		return unsupported(src)
	}

	srcPath := paths.ExpandHome(src)
	destPath := paths.ExpandHome(dest)

	info, err := t.fs.Stat(srcPath)
	if err != nil {
		if os.IsNotExist(err) {
			return errors.Wrapf(err, errors.ErrFileNotFound, "source does not exist: %s", srcPath).
				WithDetail("path", srcPath)
		}
		return errors.Wrapf(err, errors.ErrFileAccess, "failed to stat %s", srcPath)
	}
	if info.IsDir() {
		return unsupported(src)
	}

	fmt.Fprintf(t.out, "%q -> %q\n", src, dest)

	if err := t.fs.MkdirAll(filepath.Dir(destPath), 0755); err != nil {
		return errors.Wrapf(err, errors.ErrDirCreate, "failed to create directory for %s", destPath)
	}

	n, err := t.copyContents(srcPath, destPath, info.Mode().Perm())
	if err != nil {
		return err
	}

	t.logger.Debug().
		Str("src", srcPath).
		Str("dest", destPath).
		Int64("bytes", n).
		Msg("File transferred")
	return nil
}

func (t *Transferer) copyContents(src, dest string, perm os.FileMode) (int64, error) {
	in, err := t.fs.Open(src)
	if err != nil {
		return 0, errors.Wrapf(err, errors.ErrFileAccess, "failed to open %s", src)
	}
	defer func() { _ = in.Close() }()

	out, err := t.fs.OpenFile(dest, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, perm)
	if err != nil {
		return 0, errors.Wrapf(err, errors.ErrFileWrite, "failed to open %s for writing", dest)
	}

	n, err := io.Copy(out, in)
	if err != nil {
		_ = out.Close()
		return n, errors.Wrapf(err, errors.ErrFileWrite, "failed to copy %s to %s", src, dest)
	}
	if err := out.Close(); err != nil {
		return n, errors.Wrapf(err, errors.ErrFileWrite, "failed to close %s", dest)
	}
	return n, nil
}

func unsupported(path string) error {
	return errors.Newf(errors.ErrNotImplemented, "directory transfer is not supported: %s", path).
		WithDetail("path", path)
}
