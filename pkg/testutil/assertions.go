package testutil

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arthur-debert/dot/pkg/filesystem"
)

// AssertFileContent checks that path exists on fs with exactly want.
func AssertFileContent(t *testing.T, fs filesystem.FS, path, want string, msgAndArgs ...interface{}) bool {
	t.Helper()

	data, err := fs.ReadFile(path)
	if !assert.NoError(t, err, msgAndArgs...) {
		return false
	}
	return assert.Equal(t, want, string(data), msgAndArgs...)
}

// AssertNoFile checks that nothing exists at path on fs.
func AssertNoFile(t *testing.T, fs filesystem.FS, path string, msgAndArgs ...interface{}) bool {
	t.Helper()

	_, err := fs.Stat(path)
	return assert.True(t, os.IsNotExist(err), msgAndArgs...)
}
