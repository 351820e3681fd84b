package hclgraph

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/strgraphgo/internal/schema"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadSingleFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "graph.hcl", `
node "a" {
  value = "hello"
}

node "b" {
  op     = "concat"
  inputs = ["a"]
  constants = [" ", "world"]
}

target = "b"
`)

	desc, err := NewLoader().Load(context.Background(), path)
	require.NoError(t, err)

	hello := "hello"
	want := &schema.Description{
		Nodes: []schema.NodeDescription{
			{ID: "a", Value: &hello},
			{ID: "b", Op: "concat", Inputs: []string{"a"}, Constants: []string{" ", "world"}},
		},
		TargetNode: "b",
	}
	if diff := cmp.Diff(want, desc); diff != "" {
		t.Fatalf("description mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadConvertsPrimitiveConstants(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "graph.hcl", `
node "s" {
  value = "a,b,c"
}

node "sub" {
  op        = "substring"
  inputs    = ["s"]
  constants = [0, 3]
}
`)

	desc, err := NewLoader().Load(context.Background(), path)
	require.NoError(t, err)
	require.Len(t, desc.Nodes, 2)
	assert.Equal(t, []string{"0", "3"}, desc.Nodes[1].Constants)
}

func TestLoadNumericValue(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "graph.hcl", `
node "n" {
  value = 42
}
`)

	desc, err := NewLoader().Load(context.Background(), path)
	require.NoError(t, err)
	require.NotNil(t, desc.Nodes[0].Value)
	assert.Equal(t, "42", *desc.Nodes[0].Value)
}

func TestLoadDirectoryMergesFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a_nodes.hcl", `
node "a" {
  value = "x"
}
`)
	writeFile(t, dir, "b_target.hcl", `
node "b" {
  op     = "reverse"
  inputs = ["a"]
}

target = "b"
`)

	desc, err := NewLoader().Load(context.Background(), dir)
	require.NoError(t, err)
	require.Len(t, desc.Nodes, 2)
	assert.Equal(t, "b", desc.TargetNode)
}

func TestLoadRejectsInvalidHCL(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "broken.hcl", `node "a" {`)

	_, err := NewLoader().Load(context.Background(), path)
	require.Error(t, err)
}

func TestLoadMissingPath(t *testing.T) {
	_, err := NewLoader().Load(context.Background(), filepath.Join(t.TempDir(), "absent.hcl"))
	require.Error(t, err)
}
