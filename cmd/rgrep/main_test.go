package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gubarz/rgrep/internal/search"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	stdout, _, err := executeSplit(t, args...)
	return stdout, err
}

func executeSplit(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)
	t.Setenv("HOME", t.TempDir())

	cmd := newRootCmd()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

// stubPage replaces the pager for the duration of the test
func stubPage(t *testing.T, fn func(title, content string) error) {
	t.Helper()
	orig := page
	page = fn
	t.Cleanup(func() { page = orig })
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestRunSearch(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "src"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "src", "main.rs"), []byte("hello world!\nhey Wei!"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "src", "lib.rs"), []byte("nothing\n"), 0o644))
	chdir(t, dir)

	out, err := execute(t, `he\w+`, "**/*.rs")

	require.NoError(t, err)
	assert.Equal(t, filepath.Join("src", "main.rs")+"\n     1:1   hello world!\n     2:1   hey Wei!\n", out)
}

func TestRunSearchNoFiles(t *testing.T) {
	chdir(t, t.TempDir())

	out, err := execute(t, "foo", "*.nothing")

	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestRunSearchWorkersFlag(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), []byte("needle\n"), 0o644))
	chdir(t, dir)

	out, err := execute(t, "-j", "1", "--color", "never", "needle", "*.txt")

	require.NoError(t, err)
	assert.Equal(t, "a.txt\n     1:1   needle\n", out)
}

func TestRunSearchErrors(t *testing.T) {
	chdir(t, t.TempDir())

	t.Run("invalid pattern", func(t *testing.T) {
		_, err := execute(t, "(", "*.rs")
		require.Error(t, err)
		assert.ErrorIs(t, err, search.ErrInvalidPattern)
		assert.Contains(t, err.Error(), "invalid pattern")
	})

	t.Run("invalid glob", func(t *testing.T) {
		_, err := execute(t, "foo", "[a-")
		require.Error(t, err)
		assert.ErrorIs(t, err, search.ErrInvalidGlob)
		assert.Contains(t, err.Error(), "invalid glob")
	})

	t.Run("missing arguments", func(t *testing.T) {
		_, err := execute(t, "foo")
		require.Error(t, err)
	})
}

func TestVersionFlag(t *testing.T) {
	chdir(t, t.TempDir())

	out, err := execute(t, "--version")

	require.NoError(t, err)
	assert.Contains(t, out, "version "+version)
}

func TestRunSearchConfigFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.txt"), "needle\n")
	writeFile(t, filepath.Join(dir, "rgrep.yaml"), "color: always\ncolor_match: \"35\"\n")
	chdir(t, dir)

	out, err := execute(t, "needle", "*.txt")

	require.NoError(t, err)
	assert.Contains(t, out, "\x1b[35mneedle")
}

func TestRunSearchTraceLogging(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.txt"), "needle\n")
	chdir(t, dir)

	out, err := execute(t, "--log-level", "trace", "needle", "*.txt")

	require.NoError(t, err)
	assert.Contains(t, out, "[TRACE] config: ")
	assert.Contains(t, out, "[TRACE] scanning a.txt")
	assert.Contains(t, out, "a.txt\n     1:1   needle\n")
}

func TestRunSearchPager(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.txt"), "needle\n")
	chdir(t, dir)

	var gotTitle, gotContent string
	stubPage(t, func(title, content string) error {
		gotTitle, gotContent = title, content
		return nil
	})

	stdout, stderr, err := executeSplit(t, "--pager", "needle", "*.txt")

	require.NoError(t, err)
	assert.Empty(t, stdout)
	assert.Empty(t, stderr)
	assert.Equal(t, "rgrep needle *.txt", gotTitle)
	assert.Equal(t, "a.txt\n     1:1   needle\n", gotContent)
}

func TestRunSearchPagerNoMatches(t *testing.T) {
	chdir(t, t.TempDir())

	called := false
	stubPage(t, func(title, content string) error {
		called = true
		return nil
	})

	stdout, stderr, err := executeSplit(t, "--pager", "needle", "*.txt")

	require.NoError(t, err)
	assert.False(t, called)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "[INFO] no matches, pager not opened")
}

func TestRunSearchPagerFailure(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.txt"), "needle\n")
	chdir(t, dir)

	stubPage(t, func(title, content string) error {
		return errors.New("could not open a new TTY")
	})

	stdout, stderr, err := executeSplit(t, "--pager", "needle", "*.txt")

	require.NoError(t, err)
	assert.Equal(t, "a.txt\n     1:1   needle\n", stdout)
	assert.Contains(t, stderr, "[WARN] pager unavailable: could not open a new TTY")
}
