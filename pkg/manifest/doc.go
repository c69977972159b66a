// Package manifest implements dot's manifest store: the persisted mapping
// from entry names to tracked files.
//
// The manifest is a TOML document with one top-level table per entry:
//
//	[bashrc]
//	local_file = "/home/u/.config/dot/bashrc"
//	path = "~/.bashrc"
//	dir = false
//
// A Manifest is loaded once per invocation. A missing or unreadable file
// loads as an empty manifest; the reason is logged, not returned. Every
// mutation rewrites the whole file. Stored copies live directly under the
// base directory, named after their entry, and the stored path is fixed
// when the entry is created.
package manifest
