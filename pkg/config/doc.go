// Package config handles configuration management for dot.
//
// Configuration is layered with koanf, later layers overriding earlier ones:
//
//  1. Embedded defaults (embedded/defaults.toml)
//  2. Runtime defaults (the XDG based storage directory)
//  3. The user file, $XDG_CONFIG_HOME/dot/config.toml, if present
//  4. DOT_* environment variables (DOT_UNTRACK_PURGE=true sets untrack.purge)
//  5. Command line overrides
//
// The merged result is decoded into Config and validated.
package config
