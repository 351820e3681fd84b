package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRun_ShouldExit(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	// The "-h" (help) flag should cause cli.Parse to return `shouldExit=true`.
	args := []string{"-h"}
	out := &bytes.Buffer{}

	// --- Act ---
	// The run function should see `shouldExit=true` and return a nil error.
	err := run(out, args)

	// --- Assert ---
	require.NoError(t, err, "run() should return a nil error when shouldExit is true")
	require.Contains(t, out.String(), "Usage:", "Expected help text to be printed to the output buffer")
}

func TestRun_NoPathPrintsUsage(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	// No graph path at all is the other clean-exit path: usage is printed
	// and run returns nil.
	out := &bytes.Buffer{}

	// --- Act ---
	err := run(out, nil)

	// --- Assert ---
	require.NoError(t, err, "run() should return a nil error when no graph path is given")
	require.Contains(t, out.String(), "Usage:", "Expected help text to be printed to the output buffer")
}

func TestRun_ParseError(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	// Providing an unknown flag will cause cli.Parse to return an error.
	args := []string{"--this-is-not-a-valid-flag"}
	out := &bytes.Buffer{}

	// --- Act ---
	err := run(out, args)

	// --- Assert ---
	require.Error(t, err, "run() should return an error when argument parsing fails")
	require.Contains(t, err.Error(), "flag provided but not defined: -this-is-not-a-valid-flag")
}

func TestRun_ComputesGraph(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	// A minimal JSON document that names its own target.
	doc := `{
		"nodes": [
			{"id": "a", "value": "hello"},
			{"id": "b", "op": "reverse", "inputs": ["a"]}
		],
		"target_node": "b"
	}`
	tempDir := t.TempDir()
	filePath := filepath.Join(tempDir, "graph.json")
	require.NoError(t, os.WriteFile(filePath, []byte(doc), 0600), "failed to set up test file")

	args := []string{"-log-level", "error", filePath}
	out := &bytes.Buffer{}

	// --- Act ---
	err := run(out, args)

	// --- Assert ---
	require.NoError(t, err, "run() should compute the document's target")
	require.Contains(t, out.String(), "olleh", "Expected the computed value on the output buffer")
}

func TestRun_LoadFailure(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	// A path that does not exist fails during description loading.
	args := []string{filepath.Join(t.TempDir(), "absent.json")}
	out := &bytes.Buffer{}

	// --- Act ---
	err := run(out, args)

	// --- Assert ---
	require.Error(t, err, "run() should propagate description loading failures")
	require.Contains(t, err.Error(), "failed to load graph description")
}
