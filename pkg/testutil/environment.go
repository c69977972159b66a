// pkg/testutil/environment.go
// DEPENDENCIES: None (base test utilities)
// PURPOSE: Orchestrate test environments with proper dependencies

package testutil

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/dot/pkg/filesystem"
	"github.com/arthur-debert/dot/pkg/manifest"
	"github.com/arthur-debert/dot/pkg/paths"
	"github.com/arthur-debert/dot/pkg/transfer"
)

// EnvType defines the type of test environment
type EnvType int

const (
	EnvMemoryOnly EnvType = iota // Pure in-memory, no real filesystem
	EnvIsolated                  // Real filesystem in temp directory
)

// TestEnvironment provides a complete test environment with all dependencies
type TestEnvironment struct {
	// Core paths
	HomeDir  string
	BaseDir  string // storage directory, also the dot config dir
	StateDir string

	// Core dependencies
	FS filesystem.FS

	// Out collects transfer report lines written by Transferer()
	Out *bytes.Buffer

	// Environment type
	Type EnvType

	t *testing.T
}

// NewTestEnvironment creates a new test environment
func NewTestEnvironment(t *testing.T, envType EnvType) *TestEnvironment {
	t.Helper()

	env := &TestEnvironment{
		t:    t,
		Type: envType,
		Out:  &bytes.Buffer{},
	}

	switch envType {
	case EnvMemoryOnly:
		env.HomeDir = "/virtual/home"
		env.FS = filesystem.NewMemory()
	case EnvIsolated:
		env.HomeDir = filepath.Join(t.TempDir(), "home")
		env.FS = filesystem.NewOS()
	}
	env.BaseDir = filepath.Join(env.HomeDir, ".config", paths.DotDirName)
	env.StateDir = filepath.Join(env.HomeDir, ".local", "state")

	for _, dir := range []string{env.HomeDir, env.BaseDir, env.StateDir} {
		if err := env.FS.MkdirAll(dir, 0755); err != nil {
			t.Fatalf("Failed to create %s: %v", dir, err)
		}
	}

	t.Setenv(paths.EnvHome, env.HomeDir)
	t.Setenv(paths.EnvDotConfigDir, env.BaseDir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(env.HomeDir, ".config"))
	t.Setenv("XDG_STATE_HOME", env.StateDir)

	return env
}

// ManifestPath returns the default manifest location in this environment.
func (env *TestEnvironment) ManifestPath() string {
	return paths.DefaultManifestPath(env.BaseDir)
}

// Transferer returns a transfer.Transferer on the environment's filesystem
// reporting into env.Out.
func (env *TestEnvironment) Transferer() *transfer.Transferer {
	return transfer.New(env.FS, env.Out)
}

// LoadManifest loads the default manifest on the environment's filesystem.
func (env *TestEnvironment) LoadManifest() *manifest.Manifest {
	env.t.Helper()

	m, err := manifest.Load(manifest.Options{
		Path:       env.ManifestPath(),
		BaseDir:    env.BaseDir,
		FileSystem: env.FS,
		Copier:     env.Transferer(),
	})
	if err != nil {
		env.t.Fatalf("Failed to load manifest: %v", err)
	}
	return m
}

// HomePath joins rel onto the environment's home directory.
func (env *TestEnvironment) HomePath(rel string) string {
	return filepath.Join(env.HomeDir, rel)
}
