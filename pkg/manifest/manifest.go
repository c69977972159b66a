package manifest

import (
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/rs/zerolog"

	"github.com/arthur-debert/dot/pkg/errors"
	"github.com/arthur-debert/dot/pkg/filesystem"
	"github.com/arthur-debert/dot/pkg/logging"
	"github.com/arthur-debert/dot/pkg/paths"
	"github.com/arthur-debert/dot/pkg/transfer"
)

// Copier copies a single file. transfer.Transferer implements it.
type Copier interface {
	Copy(src, dest string, isDirectory bool) error
}

// Options configures Load.
type Options struct {
	// Path is the manifest file. Defaults to BaseDir/.dot.toml.
	Path string

	// BaseDir is the storage directory for tracked copies. Defaults to
	// paths.DefaultBaseDir().
	BaseDir string

	// FileSystem allows injecting a filesystem for testing.
	FileSystem filesystem.FS

	// Copier performs file transfers. Defaults to a transfer.Transferer
	// on FileSystem writing its report to Out.
	Copier Copier

	// Out receives the transfer report lines of the default Copier.
	Out io.Writer

	// Reserved lists files an entry's stored copy must never replace,
	// such as the user config. The manifest file itself is always
	// reserved.
	Reserved []string
}

// Manifest is the in-memory manifest store.
type Manifest struct {
	path    string
	baseDir string
	entries map[string]Entry
	// reserved holds cleaned paths that stored copies may not use.
	reserved map[string]bool

	fs     filesystem.FS
	copier Copier
	logger zerolog.Logger
}

// Load reads the manifest at the resolved path, creating the file and its
// parent directories if needed. Unreadable or unparsable content yields an
// empty manifest. Only a failure to create the parent directories is
// returned.
func Load(opts Options) (*Manifest, error) {
	m := newManifest(opts)
	done := logging.LogOperationStart(m.logger, "load")
	defer done()

	if err := m.ensureExists(); err != nil {
		return nil, err
	}

	data, err := m.fs.ReadFile(m.path)
	if err != nil {
		m.logger.Warn().Err(err).Str("path", m.path).Msg("Could not read manifest, starting empty")
		return m, nil
	}

	entries, err := decodeEntries(data)
	if err != nil {
		m.logger.Warn().Err(err).Str("path", m.path).Msg("Could not parse manifest, starting empty")
		return m, nil
	}
	m.entries = entries

	m.logger.Debug().
		Str("path", m.path).
		Int("entries", len(m.entries)).
		Msg("Manifest loaded")
	return m, nil
}

func newManifest(opts Options) *Manifest {
	fs := opts.FileSystem
	if fs == nil {
		fs = filesystem.NewOS()
	}

	baseDir := opts.BaseDir
	if baseDir == "" {
		baseDir = paths.DefaultBaseDir()
	}
	baseDir = paths.ExpandHome(baseDir)

	path := opts.Path
	if path == "" {
		path = paths.DefaultManifestPath(baseDir)
	}
	path = paths.ExpandHome(path)

	copier := opts.Copier
	if copier == nil {
		copier = transfer.New(fs, opts.Out)
	}

	reserved := map[string]bool{filepath.Clean(path): true}
	for _, p := range opts.Reserved {
		if p != "" {
			reserved[filepath.Clean(paths.ExpandHome(p))] = true
		}
	}

	return &Manifest{
		path:     path,
		baseDir:  baseDir,
		entries:  make(map[string]Entry),
		reserved: reserved,
		fs:       fs,
		copier:   copier,
		logger:   logging.GetLogger("manifest"),
	}
}

// Path returns the file the manifest was loaded from and saves to.
func (m *Manifest) Path() string {
	return m.path
}

// BaseDir returns the storage directory for new entries.
func (m *Manifest) BaseDir() string {
	return m.baseDir
}

// Copier returns the copier used for tracking, for callers that transfer
// files of existing entries.
func (m *Manifest) Copier() Copier {
	return m.copier
}

// Len returns the number of entries.
func (m *Manifest) Len() int {
	return len(m.entries)
}

// Entry looks up name with an exact, case-sensitive match.
func (m *Manifest) Entry(name string) (Entry, bool) {
	e, ok := m.entries[name]
	return e, ok
}

// Get is Entry with an ErrNotFound error for unknown names.
func (m *Manifest) Get(name string) (Entry, error) {
	e, ok := m.entries[name]
	if !ok {
		return Entry{}, errors.Newf(errors.ErrNotFound, "no entry named %q", name).
			WithDetail("name", name)
	}
	return e, nil
}

// Names returns all entry names sorted case-insensitively.
func (m *Manifest) Names() []string {
	names := make([]string, 0, len(m.entries))
	for name := range m.entries {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		li, lj := strings.ToLower(names[i]), strings.ToLower(names[j])
		if li != lj {
			return li < lj
		}
		return names[i] < names[j]
	})
	return names
}

// Entries returns all entries in Names order.
func (m *Manifest) Entries() []Entry {
	names := m.Names()
	entries := make([]Entry, len(names))
	for i, name := range names {
		entries[i] = m.entries[name]
	}
	return entries
}

// AddEntry tracks originalPath under name. The file is copied into the
// base directory before the entry is recorded and the manifest saved, so a
// failed copy leaves the manifest untouched. Adding a name that is already
// tracked does nothing and reports false.
func (m *Manifest) AddEntry(name, originalPath string) (bool, error) {
	if _, ok := m.entries[name]; ok {
		m.logger.Debug().Str("name", name).Msg("Entry already tracked, ignoring")
		return false, nil
	}

	if err := paths.ValidateEntryName(name); err != nil {
		return false, err
	}
	if err := paths.ValidatePath(originalPath); err != nil {
		return false, err
	}

	isDir := false
	if info, err := m.fs.Stat(paths.ExpandHome(originalPath)); err == nil {
		isDir = info.IsDir()
	}

	stored := filepath.Join(m.baseDir, name)
	if m.reserved[stored] {
		return false, errors.Newf(errors.ErrInvalidInput, "entry name %q would overwrite %s", name, stored).
			WithDetail("name", name)
	}

	if err := m.copier.Copy(originalPath, stored, isDir); err != nil {
		return false, err
	}

	m.entries[name] = Entry{
		Name:         name,
		StoredPath:   stored,
		OriginalPath: originalPath,
		IsDirectory:  isDir,
	}

	m.logger.Info().
		Str("name", name).
		Str("path", originalPath).
		Str("stored", stored).
		Msg("Entry added")

	return true, m.Save()
}

// DropEntry removes name from the manifest and saves it. The stored copy
// is left on disk. Dropping an unknown name only rewrites the file.
func (m *Manifest) DropEntry(name string) error {
	delete(m.entries, name)
	m.logger.Info().Str("name", name).Msg("Entry dropped")
	return m.Save()
}

// PurgeEntry drops name and then deletes its stored copy. Unknown names
// are a no-op.
func (m *Manifest) PurgeEntry(name string) error {
	entry, ok := m.entries[name]
	if !ok {
		return nil
	}

	if err := m.DropEntry(name); err != nil {
		return err
	}

	if err := m.fs.Remove(entry.StoredPath); err != nil && !os.IsNotExist(err) {
		return errors.Wrapf(err, errors.ErrFileAccess, "failed to remove stored copy %s", entry.StoredPath).
			WithDetail("name", name)
	}

	m.logger.Info().Str("name", name).Str("stored", entry.StoredPath).Msg("Stored copy removed")
	return nil
}

// Save rewrites the whole manifest file.
func (m *Manifest) Save() error {
	if err := m.ensureExists(); err != nil {
		return err
	}

	data, err := encodeEntries(m.entries)
	if err != nil {
		return err
	}

	if err := m.fs.WriteFile(m.path, data, 0644); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "failed to save manifest %s", m.path)
	}

	m.logger.Debug().Str("path", m.path).Int("entries", len(m.entries)).Msg("Manifest saved")
	return nil
}

// Marshal renders the manifest in its on-disk format.
func (m *Manifest) Marshal() ([]byte, error) {
	return encodeEntries(m.entries)
}

// ensureExists creates the manifest's parent directories and an empty
// manifest file if none exists.
func (m *Manifest) ensureExists() error {
	dir := filepath.Dir(m.path)
	if err := m.fs.MkdirAll(dir, 0755); err != nil {
		return errors.Wrapf(err, errors.ErrDirCreate, "failed to create manifest directory %s", dir)
	}

	if _, err := m.fs.Stat(m.path); os.IsNotExist(err) {
		if err := m.fs.WriteFile(m.path, nil, 0644); err != nil {
			m.logger.Warn().Err(err).Str("path", m.path).Msg("Could not create manifest file")
		}
	}
	return nil
}
