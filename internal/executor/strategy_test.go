package executor_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/strgraphgo/internal/executor"
	"github.com/vk/strgraphgo/internal/testutil"
)

func TestCycleDetectedUnderAllStrategies(t *testing.T) {
	doc := `{"nodes": [
		{"id": "a", "op": "reverse", "inputs": ["b"]},
		{"id": "b", "op": "reverse", "inputs": ["a"]}
	]}`
	for strat, res := range testutil.RunAllStrategies(t, doc, "a", nil) {
		require.Error(t, res.Err, "strategy %s", strat)
		assert.True(t, errors.Is(res.Err, executor.ErrCycleDetected), "strategy %s: %v", strat, res.Err)
	}
}

func TestSelfReferenceIsACycle(t *testing.T) {
	doc := `{"nodes": [
		{"id": "a", "op": "reverse", "inputs": ["a"]}
	]}`
	for strat, res := range testutil.RunAllStrategies(t, doc, "a", nil) {
		require.Error(t, res.Err, "strategy %s", strat)
		assert.True(t, errors.Is(res.Err, executor.ErrCycleDetected), "strategy %s: %v", strat, res.Err)
	}
}

func TestCycleOutsideReachableSubgraphIsIgnored(t *testing.T) {
	doc := `{"nodes": [
		{"id": "x", "op": "reverse", "inputs": ["y"]},
		{"id": "y", "op": "reverse", "inputs": ["x"]},
		{"id": "a", "value": "ok"},
		{"id": "b", "op": "to_upper", "inputs": ["a"]}
	]}`
	testutil.RequireAllStrategies(t, doc, "b", nil, "OK")
}

// chainDoc builds x -> n1 -> ... -> n<length>, each node reversing its
// predecessor.
func chainDoc(length int) string {
	var sb strings.Builder
	sb.WriteString(`{"nodes": [{"id": "x", "value": "x"}`)
	prev := "x"
	for i := 1; i <= length; i++ {
		id := fmt.Sprintf("n%d", i)
		fmt.Fprintf(&sb, `,{"id": %q, "op": "reverse", "inputs": [%q]}`, id, prev)
		prev = id
	}
	sb.WriteString(`]}`)
	return sb.String()
}

func TestDeepChainIterative(t *testing.T) {
	exec := testutil.MustCompile(t, chainDoc(5000)).Executor()
	value, err := exec.ComputeIterative(context.Background(), "n5000", nil)
	require.NoError(t, err)
	assert.Equal(t, "x", value)
}

func TestDeepChainParallel(t *testing.T) {
	exec := testutil.MustCompile(t, chainDoc(5000)).Executor()
	value, err := exec.ComputeParallel(context.Background(), "n5000", nil)
	require.NoError(t, err)
	assert.Equal(t, "x", value)
}

func TestDeepChainAuto(t *testing.T) {
	// Depth far beyond the recursion cap; auto must not pick recursive.
	exec := testutil.MustCompile(t, chainDoc(5000)).Executor()
	value, err := exec.ComputeAuto(context.Background(), "n5000", nil)
	require.NoError(t, err)
	assert.Equal(t, "x", value)
}

// wideDoc builds one root, width leaves transforming it, and a join node
// concatenating all leaves.
func wideDoc(width int) string {
	var sb strings.Builder
	sb.WriteString(`{"nodes": [{"id": "root", "value": "ab"}`)
	inputs := make([]string, 0, width)
	for i := 0; i < width; i++ {
		id := fmt.Sprintf("leaf%04d", i)
		fmt.Fprintf(&sb, `,{"id": %q, "op": "to_upper", "inputs": ["root"]}`, id)
		inputs = append(inputs, fmt.Sprintf("%q", id))
	}
	fmt.Fprintf(&sb, `,{"id": "join", "op": "concat", "inputs": [%s]}`, strings.Join(inputs, ","))
	sb.WriteString(`]}`)
	return sb.String()
}

func TestWideGraphAllStrategiesAgree(t *testing.T) {
	doc := wideDoc(300)
	want := strings.Repeat("AB", 300)
	testutil.RequireAllStrategies(t, doc, "join", nil, want)
}

func TestDeterminismAcrossStrategies(t *testing.T) {
	docs := map[string]struct {
		doc    string
		target string
		feed   map[string]string
	}{
		"chain":    {chainDoc(120), "n120", nil},
		"wide":     {wideDoc(250), "join", nil},
		"indexed":  {splitDoc, "p:1", nil},
		"placefed": {`{"nodes": [{"id": "t", "type": "placeholder"}, {"id": "r", "op": "reverse", "inputs": ["t"]}]}`, "r", map[string]string{"t": "abc"}},
	}

	for name, tc := range docs {
		t.Run(name, func(t *testing.T) {
			results := testutil.RunAllStrategies(t, tc.doc, tc.target, tc.feed)
			reference := results["iterative"]
			require.NoError(t, reference.Err)
			for strat, res := range results {
				require.NoError(t, res.Err, "strategy %s", strat)
				assert.Equal(t, reference.Value, res.Value, "strategy %s", strat)
			}
		})
	}
}
