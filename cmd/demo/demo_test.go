package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() { rootCmd.SetArgs(nil) })
	err := rootCmd.Execute()
	return out.String(), err
}

func TestListboxCommand(t *testing.T) {
	out, err := execute(t, "listbox", "-c", "testdata/listbox.yaml", "-k", "down,down", "--dump", "json", "--dot")
	require.NoError(t, err)
	assert.Contains(t, out, "Apple")
	assert.Contains(t, out, "Cherry")
	assert.Contains(t, out, `"machine": "list-navigation+active-descendant+selection-follows-focus+typeahead"`)
	assert.Contains(t, out, "digraph Behavior")
}

func TestGridCommand(t *testing.T) {
	out, err := execute(t, "grid", "-c", "testdata/grid.yaml", "-k", "right,right,down", "--dump", "yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "Notes")

	i := bytes.LastIndex([]byte(out), []byte("machine: grid"))
	require.GreaterOrEqual(t, i, 0)
	var snap struct {
		Properties map[string]any `yaml:"properties"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(out[i:]), &snap))
	assert.Equal(t, "Edit", snap.Properties["cell"])
	assert.Equal(t, 1, snap.Properties["row"])
	assert.Equal(t, 2, snap.Properties["col"])
}

func TestCommandErrors(t *testing.T) {
	dir := t.TempDir()
	empty := filepath.Join(dir, "grid-only.yaml")
	require.NoError(t, os.WriteFile(empty, []byte("grid:\n  rows: []\n"), 0o644))

	_, err := execute(t, "listbox", "-c", empty, "-k", "down", "--dump", "")
	assert.ErrorContains(t, err, "no listbox section")

	_, err = execute(t, "listbox", "-c", "testdata/listbox.yaml", "-k", "pagedown", "--dump", "")
	assert.ErrorIs(t, err, errUnknownKey)

	_, err = execute(t, "grid", "-c", "testdata/grid.yaml", "-k", "", "--dump", "")
	assert.ErrorIs(t, err, errNothingToRun)

	_, err = execute(t, "grid", "-c", "testdata/grid.yaml", "-k", "down", "--dump", "xml")
	assert.Error(t, err)
}
