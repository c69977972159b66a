// Package commands implements dot's user-facing operations on a loaded
// manifest: track, untrack, export, import and list.
//
// Each operation takes an Options struct and returns a result or an error.
// Commands never print on their own except through the writers they are
// given; the CLI layer owns process output and exit status.
package commands
