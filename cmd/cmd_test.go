package cmd

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"srcbundle/pkg/collect"
	"srcbundle/pkg/logging"
	"srcbundle/pkg/version"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// execute runs the command tree with args and captures both output streams.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	previous := logging.Logger
	t.Cleanup(func() {
		logging.Logger = previous
		zap.ReplaceGlobals(zap.NewNop())
	})

	var stdout, stderr bytes.Buffer
	root := NewRootCmd()
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)
	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func withRoot(t *testing.T, dir string, err error) {
	t.Helper()
	previous := resolveRoot
	resolveRoot = func() (string, error) { return dir, err }
	t.Cleanup(func() { resolveRoot = previous })
}

func TestVersionCommand(t *testing.T) {
	stdout, _, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, version.Get().String()+"\n", stdout)

	stdout, _, err = execute(t, "version", "--short")
	require.NoError(t, err)
	assert.Equal(t, version.Version+"\n", stdout)
}

func TestRootCommandCollects(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "pom.xml"), []byte("<project/>"), 0o644))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "src", "main"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "src", "main", "App.java"), []byte("class App {}"), 0o644))
	withRoot(t, dir, nil)

	stdout, _, err := execute(t)
	require.NoError(t, err)

	assert.Contains(t, stdout, "Project root assumed to be: "+dir)
	assert.Contains(t, stdout, "Source code collection complete. 2 files (0 unreadable, ")
	assert.Contains(t, stdout, "saved into '"+collect.OutputName+"'")

	data, err := os.ReadFile(filepath.Join(dir, collect.OutputName))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "--- pom.xml ---\n<project/>\n"))
	assert.Contains(t, string(data), "class App {}")
}

func TestRootCommandReportsOutputFailure(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, collect.OutputName), 0o755))
	withRoot(t, dir, nil)

	_, stderr, err := execute(t)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "source code collection failed")
	assert.Contains(t, stderr, "An error occurred while writing to the output file")
}

func TestRootCommandRootResolutionFailure(t *testing.T) {
	withRoot(t, "", errors.New("no executable"))

	_, _, err := execute(t)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no executable")
}

func TestRootCommandRejectsArguments(t *testing.T) {
	_, _, err := execute(t, "some/dir")
	require.Error(t, err)
}
