// Package testutil provides test environments and helpers shared by dot's
// package tests.
//
// Two environment types are available:
//
//   - EnvMemoryOnly: an afero in-memory filesystem with virtual home,
//     config and state directories. Fast and hermetic; use it for store
//     and command logic.
//   - EnvIsolated: a real temp directory with HOME, DOT_CONFIG_DIR and
//     XDG_STATE_HOME pointed inside it. Use it when the code under test
//     resolves paths from the environment, such as the CLI.
package testutil
