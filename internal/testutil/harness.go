// Package testutil provides shared helpers for engine tests: a registry
// with the built-in operations, description compilation, and a harness
// that runs a target under every execution strategy.
package testutil

import (
	"bytes"
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vk/strgraphgo/internal/compiled"
	"github.com/vk/strgraphgo/internal/op"
	"github.com/vk/strgraphgo/modules/coreops"
	"github.com/vk/strgraphgo/modules/listops"
	"github.com/vk/strgraphgo/modules/textops"
)

// SafeBuffer is a thread-safe buffer for capturing log output in tests.
type SafeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

// Write implements the io.Writer interface for SafeBuffer.
func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

// String implements the fmt.Stringer interface for SafeBuffer.
func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

// Registry returns a fresh registry with all built-in operation packs
// registered.
func Registry() *op.Registry {
	r := op.NewRegistry()
	for _, mod := range []op.Module{&coreops.Module{}, &textops.Module{}, &listops.Module{}} {
		mod.Register(r)
	}
	return r
}

// MustCompile compiles a JSON graph description or fails the test.
func MustCompile(t *testing.T, doc string) *compiled.CompiledGraph {
	t.Helper()
	cg, err := compiled.FromJSON(context.Background(), []byte(doc), Registry())
	require.NoError(t, err)
	return cg
}

// StrategyResult holds one strategy's outcome for a target.
type StrategyResult struct {
	Value string
	Err   error
}

// RunAllStrategies compiles the document once per strategy and computes
// the target under each, so strategies cannot contaminate each other's
// node state.
func RunAllStrategies(t *testing.T, doc, target string, feed map[string]string) map[string]StrategyResult {
	t.Helper()
	ctx := context.Background()

	results := make(map[string]StrategyResult)
	for _, strat := range []string{"recursive", "iterative", "parallel", "auto"} {
		exec := MustCompile(t, doc).Executor()

		var value string
		var err error
		switch strat {
		case "recursive":
			value, err = exec.Compute(ctx, target, feed)
		case "iterative":
			value, err = exec.ComputeIterative(ctx, target, feed)
		case "parallel":
			value, err = exec.ComputeParallel(ctx, target, feed)
		case "auto":
			value, err = exec.ComputeAuto(ctx, target, feed)
		}
		results[strat] = StrategyResult{Value: value, Err: err}
	}
	return results
}

// RequireAllStrategies asserts every strategy succeeds with the expected
// value.
func RequireAllStrategies(t *testing.T, doc, target string, feed map[string]string, want string) {
	t.Helper()
	for strat, res := range RunAllStrategies(t, doc, target, feed) {
		require.NoError(t, res.Err, "strategy %s", strat)
		require.Equal(t, want, res.Value, "strategy %s", strat)
	}
}
