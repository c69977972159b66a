package config

import (
	"github.com/arthur-debert/dot/pkg/paths"
)

// Config is dot's resolved configuration.
type Config struct {
	Storage  Storage  `koanf:"storage"`
	Manifest Manifest `koanf:"manifest"`
	Untrack  Untrack  `koanf:"untrack"`
	Output   Output   `koanf:"output"`
}

// Storage holds where stored copies live.
type Storage struct {
	BaseDir string `koanf:"base_dir" validate:"required"`
}

// Manifest holds the manifest file location. An empty Path means
// <base_dir>/.dot.toml.
type Manifest struct {
	Path string `koanf:"path"`
}

// Untrack holds defaults for the untrack command.
type Untrack struct {
	// Purge deletes the stored copy when an entry is untracked.
	Purge bool `koanf:"purge"`
}

// Output holds rendering preferences.
type Output struct {
	Format string `koanf:"format" validate:"oneof=text long yaml toml"`
	Color  string `koanf:"color" validate:"oneof=auto always never"`
}

// ManifestPath resolves the manifest file for this configuration.
func (c *Config) ManifestPath() string {
	return paths.ResolveManifestPath("", c.Manifest.Path, c.Storage.BaseDir)
}
