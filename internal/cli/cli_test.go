package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePositionalPath(t *testing.T) {
	var out bytes.Buffer
	cfg, exit, err := Parse([]string{"graph.json"}, &out)
	require.NoError(t, err)
	require.False(t, exit)
	assert.Equal(t, "graph.json", cfg.GraphPath)
	assert.Equal(t, "auto", cfg.Strategy)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestParseAllFlags(t *testing.T) {
	var out bytes.Buffer
	cfg, exit, err := Parse([]string{
		"-graph", "g.hcl",
		"-target", "out:1",
		"-strategy", "parallel",
		"-feed", "a=hello",
		"-feed", "b=world",
		"-ops-port", "8080",
		"-log-format", "json",
		"-log-level", "debug",
	}, &out)
	require.NoError(t, err)
	require.False(t, exit)
	assert.Equal(t, "g.hcl", cfg.GraphPath)
	assert.Equal(t, "out:1", cfg.Target)
	assert.Equal(t, "parallel", cfg.Strategy)
	assert.Equal(t, map[string]string{"a": "hello", "b": "world"}, cfg.Feed)
	assert.Equal(t, 8080, cfg.OpsPort)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestParseShorthandPath(t *testing.T) {
	var out bytes.Buffer
	cfg, _, err := Parse([]string{"-g", "graph.json"}, &out)
	require.NoError(t, err)
	assert.Equal(t, "graph.json", cfg.GraphPath)
}

func TestParseNoPathPrintsUsage(t *testing.T) {
	var out bytes.Buffer
	cfg, exit, err := Parse(nil, &out)
	require.NoError(t, err)
	assert.True(t, exit)
	assert.Nil(t, cfg)
	assert.Contains(t, out.String(), "Usage:")
}

func TestParseRejectsBadValues(t *testing.T) {
	cases := [][]string{
		{"-log-format", "xml", "graph.json"},
		{"-log-level", "verbose", "graph.json"},
		{"-strategy", "quantum", "graph.json"},
		{"-feed", "missing-equals", "graph.json"},
	}
	for _, args := range cases {
		var out bytes.Buffer
		_, _, err := Parse(args, &out)
		require.Error(t, err, "args %v", args)

		var exitErr *ExitError
		require.ErrorAs(t, err, &exitErr)
		assert.Equal(t, 2, exitErr.Code)
	}
}
