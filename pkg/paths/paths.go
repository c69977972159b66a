package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

// Environment variable names
const (
	// EnvDotConfigDir overrides the XDG config directory for dot
	EnvDotConfigDir = "DOT_CONFIG_DIR"

	// EnvHome is the standard home directory variable
	EnvHome = "HOME"
)

// Default directories and files
const (
	// DotDirName is the directory name for dot-specific files
	DotDirName = "dot"

	// ManifestFileName is the name of the manifest file inside the base dir
	ManifestFileName = ".dot.toml"

	// ConfigFileName is the name of the optional user configuration file
	ConfigFileName = "config.toml"
)

// ConfigDir returns the directory holding dot's configuration, manifest
// and stored copies.
func ConfigDir() string {
	if configDir := os.Getenv(EnvDotConfigDir); configDir != "" {
		return ExpandHome(configDir)
	}
	return filepath.Join(xdg.ConfigHome, DotDirName)
}

// DefaultBaseDir returns the default storage directory for tracked files.
func DefaultBaseDir() string {
	return ConfigDir()
}

// DefaultManifestPath returns the manifest location under the given base
// directory, or under the default base directory when baseDir is empty.
func DefaultManifestPath(baseDir string) string {
	if baseDir == "" {
		baseDir = DefaultBaseDir()
	}
	return filepath.Join(baseDir, ManifestFileName)
}

// UserConfigPath returns the location of the optional config.toml.
func UserConfigPath() string {
	return filepath.Join(ConfigDir(), ConfigFileName)
}

// ResolveManifestPath picks the manifest location: an explicit override
// wins, then a configured path, then the default under baseDir.
func ResolveManifestPath(explicit, configured, baseDir string) string {
	switch {
	case explicit != "":
		return ExpandHome(explicit)
	case configured != "":
		return ExpandHome(configured)
	default:
		return DefaultManifestPath(ExpandHome(baseDir))
	}
}

// ExpandHome expands a leading ~ or ~/ to the user's home directory.
// Paths of the form ~user are returned unchanged.
func ExpandHome(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = os.Getenv(EnvHome)
		if homeDir == "" {
			return path
		}
	}

	if len(path) == 1 {
		return homeDir
	}

	if path[1] == '/' || path[1] == filepath.Separator {
		return filepath.Join(homeDir, path[2:])
	}

	return path
}
