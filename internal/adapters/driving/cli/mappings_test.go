package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func executeMappings(t *testing.T, args ...string) (string, error) {
	t.Helper()
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	defer func() {
		rootCmd.SetArgs(nil)
		flagConfig = ""
		flagMappings = ""
		mappingsForce = false
	}()
	err := rootCmd.Execute()
	return buf.String(), err
}

func TestMappingsCmd_Use(t *testing.T) {
	assert.Equal(t, "mappings", mappingsCmd.Use)
}

// TestMappingsShow_PrintsDefaults verifies the effective mapping dump
// includes the built-in vocabulary.
func TestMappingsShow_PrintsDefaults(t *testing.T) {
	out, err := executeMappings(t, "mappings", "show", "--config", t.TempDir())

	require.NoError(t, err)
	assert.Contains(t, out, "[firmness]")
	assert.Contains(t, out, "[sleep_position]")
	assert.Contains(t, out, "couples")
}

// TestMappingsInit_WritesFile verifies init seeds an editable file.
func TestMappingsInit_WritesFile(t *testing.T) {
	dir := t.TempDir()

	out, err := executeMappings(t, "mappings", "init", "--config", dir)

	require.NoError(t, err)
	path := filepath.Join(dir, "mappings.toml")
	assert.Contains(t, out, path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "[firmness]")
}

// TestMappingsInit_RefusesOverwrite verifies existing files are kept
// without --force.
func TestMappingsInit_RefusesOverwrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "mappings.toml")
	require.NoError(t, os.WriteFile(path, []byte("single = [\"solo\"]\n"), 0o644))

	_, err := executeMappings(t, "mappings", "init", "--config", dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	_, err = executeMappings(t, "mappings", "init", "--config", dir, "--force")
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "solo")
}

// TestMappingsShow_ReflectsOverride verifies a custom file shows up in
// the effective mapping.
func TestMappingsShow_ReflectsOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.toml")
	require.NoError(t, os.WriteFile(path, []byte("single = [\"solo\"]\n"), 0o644))

	out, err := executeMappings(t, "mappings", "show", "--config", dir, "--mappings", path)

	require.NoError(t, err)
	assert.Contains(t, out, "solo")
}
