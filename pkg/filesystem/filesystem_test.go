package filesystem

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImplementations(t *testing.T) {
	impls := map[string]func(t *testing.T) (FS, string){
		"os": func(t *testing.T) (FS, string) {
			return NewOS(), t.TempDir()
		},
		"memory": func(t *testing.T) (FS, string) {
			return NewMemory(), "/work"
		},
	}

	for name, build := range impls {
		t.Run(name, func(t *testing.T) {
			fsys, root := build(t)

			subDir := filepath.Join(root, "sub", "dir")
			require.NoError(t, fsys.MkdirAll(subDir, 0755))

			info, err := fsys.Stat(subDir)
			require.NoError(t, err)
			assert.True(t, info.IsDir())

			testFile := filepath.Join(subDir, "test.txt")
			require.NoError(t, fsys.WriteFile(testFile, []byte("hello world"), 0644))

			content, err := fsys.ReadFile(testFile)
			require.NoError(t, err)
			assert.Equal(t, []byte("hello world"), content)

			w, err := fsys.OpenFile(testFile, os.O_WRONLY|os.O_TRUNC, 0644)
			require.NoError(t, err)
			_, err = io.WriteString(w, "bye")
			require.NoError(t, err)
			require.NoError(t, w.Close())

			r, err := fsys.Open(testFile)
			require.NoError(t, err)
			data, err := io.ReadAll(r)
			require.NoError(t, err)
			require.NoError(t, r.Close())
			assert.Equal(t, "bye", string(data))

			require.NoError(t, fsys.Remove(testFile))
			_, err = fsys.Stat(testFile)
			assert.True(t, os.IsNotExist(err))
		})
	}
}

func TestAferoReadFile_Directory(t *testing.T) {
	fsys := NewMemory()
	require.NoError(t, fsys.MkdirAll("/d", 0755))

	_, err := fsys.ReadFile("/d")
	assert.Error(t, err)
}
