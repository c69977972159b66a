package testutil

import (
	"path/filepath"
	"testing"

	"github.com/arthur-debert/dot/pkg/filesystem"
)

// FileTree maps paths to file contents.
type FileTree map[string]string

// WriteFile creates path with content, including parent directories.
func WriteFile(t *testing.T, fs filesystem.FS, path, content string) {
	t.Helper()

	if err := fs.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("Failed to create directory for %s: %v", path, err)
	}
	if err := fs.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write file %s: %v", path, err)
	}
}

// ReadFile returns the content of path, failing the test if unreadable.
func ReadFile(t *testing.T, fs filesystem.FS, path string) string {
	t.Helper()

	data, err := fs.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read file %s: %v", path, err)
	}
	return string(data)
}

// WithFileTree creates every file of tree under the home directory and
// returns the absolute paths keyed like tree.
func (env *TestEnvironment) WithFileTree(tree FileTree) map[string]string {
	env.t.Helper()

	created := make(map[string]string, len(tree))
	for rel, content := range tree {
		full := env.HomePath(rel)
		WriteFile(env.t, env.FS, full, content)
		created[rel] = full
	}
	return created
}
