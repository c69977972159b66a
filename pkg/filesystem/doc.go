// Package filesystem provides filesystem implementations for dot.
//
// This package defines the FS interface used by the manifest store and
// the file transfer, with an implementation backed by the OS and one
// backed by afero (used with an in-memory filesystem in tests).
package filesystem
