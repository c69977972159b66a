// Package output renders dot's command results for the terminal.
//
// List output comes in four formats: text (names only, one per line),
// long (name, original path and stored path), yaml and toml. Styling is
// applied only when color is enabled: "auto" enables it for terminals
// unless NO_COLOR is set, "always" and "never" force it.
package output
