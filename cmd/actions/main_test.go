package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testCatalogYAML = `namespace: [user]
actions:
  - name: LOGIN
    kind: fetch
  - name: LOGOUT
`

// writeConfig lays out a config directory whose file source points at a
// catalog in the same directory.
func writeConfig(t *testing.T, catalogYAML string) string {
	t.Helper()
	dir := t.TempDir()
	catalogPath := filepath.Join(dir, "catalog.yaml")

	files := map[string]string{
		"base.yaml":    "catalog:\n  source: file\n  path: " + catalogPath + "\n",
		"local.yaml":   "log:\n  level: error\n",
		"catalog.yaml": catalogYAML,
	}
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600))
	}
	return dir
}

func TestRun_Text(t *testing.T) {
	t.Parallel()
	dir := writeConfig(t, testCatalogYAML)

	var stdout, stderr bytes.Buffer
	err := run(context.Background(), []string{"-profile", "local", "-config", dir}, &stdout, &stderr)
	require.NoError(t, err, stderr.String())

	want := []string{
		"user LOGIN/TRIGGER",
		"user LOGIN/REQUEST",
		"user LOGIN/SUCCESS",
		"user LOGIN/FAILURE",
		"user LOGIN/FULFILL",
		"user LOGOUT",
	}
	assert.Equal(t, want, strings.Split(strings.TrimSpace(stdout.String()), "\n"))
}

func TestRun_JSON(t *testing.T) {
	t.Parallel()
	dir := writeConfig(t, testCatalogYAML)

	var stdout, stderr bytes.Buffer
	err := run(context.Background(), []string{"-profile", "local", "-config", dir, "-format", "json"}, &stdout, &stderr)
	require.NoError(t, err, stderr.String())

	var got struct {
		Namespace []string `json:"namespace"`
		Count     int      `json:"count"`
		Actions   []struct {
			Type  string `json:"type"`
			Kind  string `json:"kind"`
			Stage string `json:"stage"`
		} `json:"actions"`
	}
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &got))
	assert.Equal(t, []string{"user"}, got.Namespace)
	assert.Equal(t, 6, got.Count)
	assert.Equal(t, "fetch", got.Actions[0].Kind)
	assert.Equal(t, "TRIGGER", got.Actions[0].Stage)
}

func TestRun_Errors(t *testing.T) {
	t.Parallel()

	t.Run("unknown format", func(t *testing.T) {
		t.Parallel()
		var stdout, stderr bytes.Buffer
		err := run(context.Background(), []string{"-format", "xml"}, &stdout, &stderr)
		assert.ErrorIs(t, err, errUsage)
		assert.Contains(t, stderr.String(), `unknown format "xml"`)
	})

	t.Run("duplicate identifiers", func(t *testing.T) {
		t.Parallel()
		dir := writeConfig(t, "namespace: [user]\nactions:\n  - name: LOGOUT\n  - name: LOGOUT\n")

		var stdout, stderr bytes.Buffer
		err := run(context.Background(), []string{"-profile", "local", "-config", dir}, &stdout, &stderr)
		assert.ErrorContains(t, err, "declared more than once")
		assert.Empty(t, stdout.String())
	})

	t.Run("missing config directory", func(t *testing.T) {
		t.Parallel()
		var stdout, stderr bytes.Buffer
		err := run(context.Background(), []string{"-profile", "local", "-config", filepath.Join(t.TempDir(), "nope")}, &stdout, &stderr)
		assert.ErrorContains(t, err, "loading config")
	})
}
