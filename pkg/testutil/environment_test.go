// pkg/testutil/environment_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: Memory FS, temp directories
// PURPOSE: Test environment setup for both environment types

package testutil_test

import (
	"os"
	"strings"
	"testing"

	"github.com/arthur-debert/dot/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTestEnvironment_MemoryOnly(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly)

	assert.Equal(t, "/virtual/home", env.HomeDir)
	assert.Equal(t, "/virtual/home/.config/dot", env.BaseDir)
	assert.Equal(t, env.BaseDir+"/.dot.toml", env.ManifestPath())
	assert.Equal(t, env.HomeDir, os.Getenv("HOME"))
	assert.Equal(t, env.BaseDir, os.Getenv("DOT_CONFIG_DIR"))

	info, err := env.FS.Stat(env.BaseDir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	// Nothing leaks onto the real disk
	_, err = os.Stat(env.BaseDir)
	assert.True(t, os.IsNotExist(err))
}

func TestTestEnvironment_Isolated(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvIsolated)

	assert.False(t, strings.HasPrefix(env.HomeDir, "/virtual"))
	info, err := os.Stat(env.BaseDir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
	assert.Equal(t, env.StateDir, os.Getenv("XDG_STATE_HOME"))
}

func TestTestEnvironment_WithFileTree(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly)

	files := env.WithFileTree(testutil.FileTree{
		".bashrc":               "export PS1='$ '",
		".config/nvim/init.lua": "vim.o.number = true",
	})

	assert.Equal(t, "/virtual/home/.bashrc", files[".bashrc"])
	testutil.AssertFileContent(t, env.FS, files[".config/nvim/init.lua"], "vim.o.number = true")
	testutil.AssertNoFile(t, env.FS, env.HomePath(".zshrc"))
}

func TestTestEnvironment_LoadManifest(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly)
	files := env.WithFileTree(testutil.FileTree{".bashrc": "alias ll='ls -l'"})

	m := env.LoadManifest()
	added, err := m.AddEntry("bashrc", files[".bashrc"])
	require.NoError(t, err)
	require.True(t, added)

	testutil.AssertFileContent(t, env.FS, env.BaseDir+"/bashrc", "alias ll='ls -l'")
	assert.Contains(t, env.Out.String(), "-> \""+env.BaseDir+"/bashrc\"")
	assert.Equal(t, 1, env.LoadManifest().Len())
}
