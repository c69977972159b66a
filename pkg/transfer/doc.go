// Package transfer copies a single tracked file between its original
// location and the storage directory.
//
// The same primitive serves every direction: track and import copy from
// the original path into storage, export copies from storage back to the
// original path. Directory transfers are not supported and are reported
// with an ErrNotImplemented error before anything is written.
package transfer
