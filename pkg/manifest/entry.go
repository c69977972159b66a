package manifest

// Entry is one tracked file.
type Entry struct {
	// Name is the manifest key. It is not part of the serialized table.
	Name string `toml:"-" yaml:"name"`

	// StoredPath is the canonical copy under the base directory.
	StoredPath string `toml:"local_file" yaml:"local_file"`

	// OriginalPath is where the file lives on this machine, as given by
	// the user.
	OriginalPath string `toml:"path" yaml:"path"`

	// IsDirectory is recorded at creation from the original path.
	IsDirectory bool `toml:"dir" yaml:"dir"`
}

// storedEntry is the on-disk table. Every field must be present; empty
// strings are accepted.
type storedEntry struct {
	StoredPath   *string `toml:"local_file" validate:"required"`
	OriginalPath *string `toml:"path" validate:"required"`
	IsDirectory  *bool   `toml:"dir" validate:"required"`
}
