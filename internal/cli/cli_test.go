// internal/cli/cli_test.go
// TEST TYPE: CLI Integration
// DEPENDENCIES: Isolated temp filesystem
// PURPOSE: Test the dot command tree end to end against a real directory

package cli_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/arthur-debert/dot/internal/cli"
	"github.com/arthur-debert/dot/pkg/errors"
	"github.com/arthur-debert/dot/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	cmd := cli.NewRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestTrackAndList(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvIsolated)
	files := env.WithFileTree(testutil.FileTree{
		".bashrc":    "alias ll='ls -l'\n",
		".gitconfig": "[user]\n",
	})

	stdout, _, err := run(t, "track", "shellrc", files[".bashrc"])
	require.NoError(t, err)
	stored := filepath.Join(env.BaseDir, "shellrc")
	assert.Equal(t, `"`+files[".bashrc"]+`" -> "`+stored+`"`+"\n", stdout)
	testutil.AssertFileContent(t, env.FS, stored, "alias ll='ls -l'\n")

	_, _, err = run(t, "t", "Git", files[".gitconfig"])
	require.NoError(t, err)

	stdout, _, err = run(t, "list")
	require.NoError(t, err)
	assert.Equal(t, "Git\nshellrc\n", stdout)

	stdout, _, err = run(t, "ls", "-o", "long")
	require.NoError(t, err)
	assert.Contains(t, stdout, "shellrc  "+files[".bashrc"]+" -> "+stored)
}

func TestTrack_AlreadyTrackedWarns(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvIsolated)
	files := env.WithFileTree(testutil.FileTree{".vimrc": "set nu", ".nvimrc": "set rnu"})

	_, _, err := run(t, "track", "vim", files[".vimrc"])
	require.NoError(t, err)

	stdout, stderr, err := run(t, "track", "vim", files[".nvimrc"])
	require.NoError(t, err)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "vim is already tracked from "+files[".vimrc"])
}

func TestTrack_DirectoryFails(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvIsolated)
	dir := env.HomePath(".config/nvim")
	require.NoError(t, os.MkdirAll(dir, 0755))

	_, _, err := run(t, "track", "nvim", dir)

	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrNotImplemented))
	stdout, _, err := run(t, "list")
	require.NoError(t, err)
	assert.Empty(t, stdout)
}

func TestExportAndImport(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvIsolated)
	files := env.WithFileTree(testutil.FileTree{".tmux.conf": "v1"})
	stored := filepath.Join(env.BaseDir, "tmux")

	_, _, err := run(t, "track", "tmux", files[".tmux.conf"])
	require.NoError(t, err)

	testutil.WriteFile(t, env.FS, files[".tmux.conf"], "v2")
	_, _, err = run(t, "import", "tmux")
	require.NoError(t, err)
	testutil.AssertFileContent(t, env.FS, stored, "v2")

	require.NoError(t, os.Remove(files[".tmux.conf"]))
	stdout, _, err := run(t, "e", "tmux")
	require.NoError(t, err)
	assert.Equal(t, `"`+stored+`" -> "`+files[".tmux.conf"]+`"`+"\n", stdout)
	testutil.AssertFileContent(t, env.FS, files[".tmux.conf"], "v2")
}

func TestExport_UnknownNameFails(t *testing.T) {
	testutil.NewTestEnvironment(t, testutil.EnvIsolated)

	_, _, err := run(t, "export", "missing")

	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrNotFound))
}

func TestUntrack(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvIsolated)
	files := env.WithFileTree(testutil.FileTree{".profile": "x", ".inputrc": "y"})
	_, _, err := run(t, "track", "profile", files[".profile"])
	require.NoError(t, err)
	_, _, err = run(t, "track", "inputrc", files[".inputrc"])
	require.NoError(t, err)

	_, _, err = run(t, "untrack", "profile")
	require.NoError(t, err)
	testutil.AssertFileContent(t, env.FS, filepath.Join(env.BaseDir, "profile"), "x")

	_, _, err = run(t, "u", "inputrc", "--purge")
	require.NoError(t, err)
	testutil.AssertNoFile(t, env.FS, filepath.Join(env.BaseDir, "inputrc"))

	stdout, _, err := run(t, "list")
	require.NoError(t, err)
	assert.Empty(t, stdout)

	_, stderr, err := run(t, "untrack", "profile")
	require.NoError(t, err)
	assert.Contains(t, stderr, "profile is not tracked")
}

func TestUntrack_PurgeFromConfig(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvIsolated)
	testutil.WriteFile(t, env.FS, filepath.Join(env.BaseDir, "config.toml"), "[untrack]\npurge = true\n")
	files := env.WithFileTree(testutil.FileTree{".zshrc": "z"})
	_, _, err := run(t, "track", "zshrc", files[".zshrc"])
	require.NoError(t, err)

	_, _, err = run(t, "untrack", "zshrc")

	require.NoError(t, err)
	testutil.AssertNoFile(t, env.FS, filepath.Join(env.BaseDir, "zshrc"))
}

func TestManifestFlag(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvIsolated)
	files := env.WithFileTree(testutil.FileTree{".bashrc": "b"})
	custom := env.HomePath("alt/manifest.toml")

	_, _, err := run(t, "--manifest", custom, "track", "bashrc", files[".bashrc"])
	require.NoError(t, err)

	data := testutil.ReadFile(t, env.FS, custom)
	assert.Contains(t, data, "[bashrc]")

	stdout, _, err := run(t, "list")
	require.NoError(t, err)
	assert.Empty(t, stdout, "default manifest should be untouched")

	stdout, _, err = run(t, "-m", custom, "list")
	require.NoError(t, err)
	assert.Equal(t, "bashrc\n", stdout)
}

func TestManifestLoadFailureFails(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvIsolated)
	blocker := env.HomePath("blocker")
	testutil.WriteFile(t, env.FS, blocker, "")

	_, _, err := run(t, "-m", filepath.Join(blocker, "sub", ".dot.toml"), "list")

	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrDirCreate))
}

func TestList_InvalidFormat(t *testing.T) {
	testutil.NewTestEnvironment(t, testutil.EnvIsolated)

	_, _, err := run(t, "list", "-o", "xml")
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigValid))

	t.Setenv("DOT_OUTPUT_FORMAT", "csv")
	_, _, err = run(t, "list")
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigValid))
}

func TestArgumentValidation(t *testing.T) {
	testutil.NewTestEnvironment(t, testutil.EnvIsolated)

	_, _, err := run(t, "track", "only-name")
	assert.Error(t, err)

	_, _, err = run(t, "export")
	assert.Error(t, err)

	_, _, err = run(t, "list", "extra")
	assert.Error(t, err)
}

func TestVersionAndCompletion(t *testing.T) {
	testutil.NewTestEnvironment(t, testutil.EnvIsolated)

	stdout, _, err := run(t, "--version")
	require.NoError(t, err)
	assert.Contains(t, stdout, "dot version")

	stdout, _, err = run(t, "completion", "bash")
	require.NoError(t, err)
	assert.Contains(t, stdout, "bash completion")

	_, _, err = run(t, "completion", "tcsh")
	assert.Error(t, err)
}

func TestTrack_ReservedNamesAreRejected(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvIsolated)
	configPath := filepath.Join(env.BaseDir, "config.toml")
	testutil.WriteFile(t, env.FS, configPath, "[untrack]\npurge = false\n")
	files := env.WithFileTree(testutil.FileTree{".bashrc": "alias ll='ls -l'\n"})

	for _, name := range []string{"config.toml", ".dot.toml"} {
		stdout, _, err := run(t, "track", name, files[".bashrc"])
		require.Error(t, err, "name %q", name)
		assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
		assert.Empty(t, stdout, "nothing should be copied")
	}

	testutil.AssertFileContent(t, env.FS, configPath, "[untrack]\npurge = false\n")
	stdout, _, err := run(t, "list")
	require.NoError(t, err)
	assert.Empty(t, stdout)

	_, _, err = run(t, "export", ".dot.toml")
	assert.True(t, errors.IsErrorCode(err, errors.ErrNotFound))
	testutil.AssertFileContent(t, env.FS, files[".bashrc"], "alias ll='ls -l'\n")
}

func TestStatusMessages(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvIsolated)
	files := env.WithFileTree(testutil.FileTree{".vimrc": "v", ".zshrc": "z"})
	vimStored := filepath.Join(env.BaseDir, "vim")
	zshStored := filepath.Join(env.BaseDir, "zsh")

	_, stderr, err := run(t, "track", "vim", files[".vimrc"])
	require.NoError(t, err)
	assert.Contains(t, stderr, "Tracked vim as "+vimStored)

	_, _, err = run(t, "track", "zsh", files[".zshrc"])
	require.NoError(t, err)

	_, stderr, err = run(t, "untrack", "vim")
	require.NoError(t, err)
	assert.Contains(t, stderr, "Untracked vim, stored copy kept at "+vimStored)

	_, stderr, err = run(t, "untrack", "--purge", "zsh")
	require.NoError(t, err)
	assert.Contains(t, stderr, "Untracked zsh and removed "+zshStored)
}

func TestReportError(t *testing.T) {
	prevLogger, prevLevel := log.Logger, zerolog.GlobalLevel()
	t.Cleanup(func() {
		log.Logger = prevLogger
		zerolog.SetGlobalLevel(prevLevel)
	})
	var logBuf bytes.Buffer
	log.Logger = zerolog.New(&logBuf)
	zerolog.SetGlobalLevel(zerolog.DebugLevel)

	var out bytes.Buffer
	err := errors.New(errors.ErrNotFound, `no entry named "vim"`).WithDetail("name", "vim")

	cli.ReportError(&out, err)

	assert.Equal(t, "Error: [NOT_FOUND] no entry named \"vim\"\n", out.String())
	assert.Contains(t, logBuf.String(), `"code":"NOT_FOUND"`)
	assert.Contains(t, logBuf.String(), `"name":"vim"`)
	assert.Contains(t, logBuf.String(), `"component":"cli"`)
}
