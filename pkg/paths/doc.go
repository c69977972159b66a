// Package paths provides centralized path handling for dot.
//
// It resolves where the manifest file and the storage directory live,
// following the XDG Base Directory specification through adrg/xdg, and
// validates entry names before they are used as file names.
//
// # Environment Variables
//
//   - DOT_CONFIG_DIR: Override the dot config directory (default: $XDG_CONFIG_HOME/dot)
//
// # Layout
//
//   - Storage: $XDG_CONFIG_HOME/dot/<entry name>
//   - Manifest: $XDG_CONFIG_HOME/dot/.dot.toml
//   - User config: $XDG_CONFIG_HOME/dot/config.toml
//
// # Usage
//
//	manifestPath := paths.ResolveManifestPath(flagValue, cfg.Manifest.Path, cfg.Storage.BaseDir)
//	if err := paths.ValidateEntryName(name); err != nil {
//	    return err
//	}
package paths
