// Package compiled pairs a parsed Graph with a reusable Executor, so a
// description is parsed once and executed many times.
package compiled

import (
	"context"
	"errors"
	"fmt"

	"github.com/vk/strgraphgo/internal/executor"
	"github.com/vk/strgraphgo/internal/graph"
	"github.com/vk/strgraphgo/internal/op"
	"github.com/vk/strgraphgo/internal/schema"
)

// ErrInvalidGraph marks runs against a compiled graph whose construction
// failed.
var ErrInvalidGraph = errors.New("compiled graph is not valid")

// InvalidGraphError reports a run against an invalid compiled graph,
// carrying the construction failure when one is known.
type InvalidGraphError struct {
	Cause error
}

func (e *InvalidGraphError) Error() string {
	if e.Cause == nil {
		return "compiled graph is not valid"
	}
	return fmt.Sprintf("compiled graph is not valid: %v", e.Cause)
}

func (e *InvalidGraphError) Unwrap() error { return ErrInvalidGraph }

// CompiledGraph holds a constructed Graph and its Executor. VARIABLE state
// persists across runs of the same CompiledGraph.
type CompiledGraph struct {
	graph    *graph.Graph
	executor *executor.Executor
	buildErr error
}

// New compiles a graph description. A nil registry selects the
// process-wide default.
func New(ctx context.Context, desc *schema.Description, registry *op.Registry) (*CompiledGraph, error) {
	g, err := graph.FromDescription(ctx, desc)
	if err != nil {
		return &CompiledGraph{buildErr: err}, err
	}
	return &CompiledGraph{
		graph:    g,
		executor: executor.New(g, registry),
	}, nil
}

// FromJSON compiles a JSON graph description document. On failure the
// returned handle is retained but invalid: Run fails with InvalidGraph.
func FromJSON(ctx context.Context, data []byte, registry *op.Registry) (*CompiledGraph, error) {
	desc, err := schema.ParseJSON(data)
	if err != nil {
		return &CompiledGraph{buildErr: err}, err
	}
	return New(ctx, desc, registry)
}

// Valid reports whether the compiled graph is ready for execution.
func (c *CompiledGraph) Valid() bool { return c.buildErr == nil }

// Err returns the construction failure, if any.
func (c *CompiledGraph) Err() error { return c.buildErr }

// Graph returns the underlying graph for inspection; nil when invalid.
func (c *CompiledGraph) Graph() *graph.Graph { return c.graph }

// Executor returns the paired executor; nil when invalid.
func (c *CompiledGraph) Executor() *executor.Executor { return c.executor }

// Run computes the target with the default (recursive) strategy.
func (c *CompiledGraph) Run(ctx context.Context, target string, feed map[string]string) (string, error) {
	if !c.Valid() {
		return "", &InvalidGraphError{Cause: c.buildErr}
	}
	return c.executor.Compute(ctx, target, feed)
}

// RunAuto computes the target with automatic strategy selection.
func (c *CompiledGraph) RunAuto(ctx context.Context, target string, feed map[string]string) (string, error) {
	if !c.Valid() {
		return "", &InvalidGraphError{Cause: c.buildErr}
	}
	return c.executor.ComputeAuto(ctx, target, feed)
}

// ExecuteDocument is the one-shot entry point: parse a JSON document that
// names its own target_node, execute it once, and return the resolved
// output.
func ExecuteDocument(ctx context.Context, data []byte, registry *op.Registry) (string, error) {
	desc, err := schema.ParseJSON(data)
	if err != nil {
		return "", err
	}
	if desc.TargetNode == "" {
		return "", &schema.Error{Msg: "document missing 'target_node' field"}
	}
	cg, err := New(ctx, desc, registry)
	if err != nil {
		return "", err
	}
	return cg.Run(ctx, desc.TargetNode, nil)
}
