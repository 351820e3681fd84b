package schema

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON(t *testing.T) {
	doc := `{
		"nodes": [
			{"id": "a", "value": "hello"},
			{"id": "b", "op": "concat", "inputs": ["a"], "constants": [" ", "world"]},
			{"id": "p", "type": "placeholder"}
		],
		"target_node": "b"
	}`

	desc, err := ParseJSON([]byte(doc))
	require.NoError(t, err)

	hello := "hello"
	want := &Description{
		Nodes: []NodeDescription{
			{ID: "a", Value: &hello},
			{ID: "b", Op: "concat", Inputs: []string{"a"}, Constants: []string{" ", "world"}},
			{ID: "p", Type: "placeholder"},
		},
		TargetNode: "b",
	}
	if diff := cmp.Diff(want, desc); diff != "" {
		t.Fatalf("description mismatch (-want +got):\n%s", diff)
	}
}

func TestParseJSONIgnoresUnknownFields(t *testing.T) {
	doc := `{
		"nodes": [{"id": "a", "value": "x", "comment": "ignored"}],
		"target_node": "a",
		"version": 3
	}`

	desc, err := ParseJSON([]byte(doc))
	require.NoError(t, err)
	require.Len(t, desc.Nodes, 1)
	assert.Equal(t, "a", desc.Nodes[0].ID)
}

func TestParseJSONMalformed(t *testing.T) {
	_, err := ParseJSON([]byte(`{"nodes": [`))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrSchema))
}

func TestParseJSONMissingNodes(t *testing.T) {
	_, err := ParseJSON([]byte(`{"target_node": "a"}`))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrSchema))
}

func TestParseJSONMissingID(t *testing.T) {
	_, err := ParseJSON([]byte(`{"nodes": [{"value": "x"}]}`))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrSchema))
}

func TestErrorNamesNode(t *testing.T) {
	err := Errorf("b", "bad shape")
	assert.Equal(t, "node 'b': bad shape", err.Error())
}
