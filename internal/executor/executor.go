package executor

import (
	"context"
	"fmt"
	"time"

	"github.com/vk/strgraphgo/internal/ctxlog"
	"github.com/vk/strgraphgo/internal/graph"
	"github.com/vk/strgraphgo/internal/metrics"
	"github.com/vk/strgraphgo/internal/node"
	"github.com/vk/strgraphgo/internal/op"
	"github.com/vk/strgraphgo/internal/ref"
)

// strategy identifies one of the execution strategies.
type strategy int

const (
	strategyRecursive strategy = iota
	strategyIterative
	strategyParallel
)

func (s strategy) String() string {
	switch s {
	case strategyRecursive:
		return "recursive"
	case strategyIterative:
		return "iterative"
	case strategyParallel:
		return "parallel"
	default:
		return "unknown"
	}
}

// Executor owns one graph's mutable node state for the duration of a
// compute call.
//
// VARIABLE nodes keep their computed result across calls on the same
// Executor; they are seeded from their initial value only while no result
// is stored. All other node state is reset at the start of every call.
type Executor struct {
	graph    *graph.Graph
	registry *op.Registry
	feed     map[string]string
}

// New creates an Executor over g. A nil registry selects the process-wide
// default.
func New(g *graph.Graph, registry *op.Registry) *Executor {
	if registry == nil {
		registry = op.Default()
	}
	return &Executor{graph: g, registry: registry}
}

// Compute resolves the target with the depth-first recursive strategy.
// The target may carry an output index suffix (":<n>").
func (e *Executor) Compute(ctx context.Context, target string, feed map[string]string) (string, error) {
	return e.run(ctx, target, feed, strategyRecursive)
}

// ComputeIterative resolves the target by walking a topological order of
// the reachable subgraph.
func (e *Executor) ComputeIterative(ctx context.Context, target string, feed map[string]string) (string, error) {
	return e.run(ctx, target, feed, strategyIterative)
}

// ComputeParallel resolves the target by walking topological layers,
// executing large layers concurrently.
func (e *Executor) ComputeParallel(ctx context.Context, target string, feed map[string]string) (string, error) {
	return e.run(ctx, target, feed, strategyParallel)
}

// ResetVariables clears the persisted results of all VARIABLE nodes, so
// the next run re-seeds them from their initial values.
func (e *Executor) ResetVariables() {
	e.graph.Each(func(n *node.Node) {
		if n.Type == node.TypeVariable {
			n.Reset()
		}
	})
}

// run is the shared skeleton of every strategy: parse the target, prepare
// node state, dispatch, extract the selected output.
func (e *Executor) run(ctx context.Context, target string, feed map[string]string, strat strategy) (value string, err error) {
	start := time.Now()
	defer func() {
		metrics.ObserveRun(strat.String(), err, time.Since(start))
	}()

	logger := ctxlog.FromContext(ctx)

	targetRef, err := ref.Parse(target)
	if err != nil {
		return "", err
	}
	targetNode, err := e.graph.Node(targetRef.NodeID)
	if err != nil {
		return "", err
	}

	e.feed = feed
	e.prepare()
	logger.Debug("Compute run starting.", "target", target, "strategy", strat.String())

	switch strat {
	case strategyRecursive:
		err = e.computeRecursive(ctx, targetNode, make(map[string]struct{}))
	case strategyIterative:
		err = e.runOrdered(ctx, targetRef.NodeID, false)
	case strategyParallel:
		err = e.runOrdered(ctx, targetRef.NodeID, true)
	}
	if err != nil {
		logger.Debug("Compute run failed.", "target", target, "strategy", strat.String(), "error", err)
		return "", err
	}

	value, err = e.extractTarget(targetRef)
	if err != nil {
		return "", err
	}
	logger.Debug("Compute run finished.", "target", target, "strategy", strat.String())
	return value, nil
}

// extractTarget pulls the selected output from the computed target node.
func (e *Executor) extractTarget(targetRef ref.Ref) (string, error) {
	n, err := e.graph.Node(targetRef.NodeID)
	if err != nil {
		return "", err
	}
	res, ok := n.Result()
	if !ok {
		return "", fmt.Errorf("node '%s' produced no result", n.ID)
	}
	return extractOutput(targetRef, res)
}

// extractOutput dispatches on the result variant: a bare reference
// requires single output, an indexed reference requires multi output with
// the index in bounds.
func extractOutput(r ref.Ref, res op.Result) (string, error) {
	if r.HasIndex() {
		values, ok := res.Values()
		if !ok {
			return "", &TypeMismatchError{
				NodeID: r.NodeID,
				Ref:    r.String(),
				Msg:    "indexed reference requires a multi-output producer",
			}
		}
		if r.Index >= len(values) {
			return "", &IndexOutOfBoundsError{NodeID: r.NodeID, Ref: r.String(), Index: r.Index, Len: len(values)}
		}
		return values[r.Index], nil
	}

	value, ok := res.Value()
	if !ok {
		return "", &TypeMismatchError{
			NodeID: r.NodeID,
			Ref:    r.String(),
			Msg:    "bare reference requires a single-output producer; select an output with ':<n>'",
		}
	}
	return value, nil
}

// executeNode computes one node whose inputs are already computed.
func (e *Executor) executeNode(ctx context.Context, n *node.Node) error {
	switch n.Type {
	case node.TypeConstant:
		// Seeded during preparation.
		return nil

	case node.TypePlaceholder:
		value, ok := e.feed[n.ID]
		if !ok {
			return &MissingPlaceholderError{NodeID: n.ID}
		}
		n.SetResult(op.SingleResult(value))
		return nil

	case node.TypeVariable:
		if n.Computed() {
			return nil
		}
		return &op.OperationError{
			Name:   n.OpName,
			NodeID: n.ID,
			Err:    fmt.Errorf("variable has neither a stored result nor an initial value"),
		}

	case node.TypeOperation:
		inputs, err := e.resolveInputs(n)
		if err != nil {
			return err
		}
		fn, err := e.registry.Get(n.OpName)
		if err != nil {
			return fmt.Errorf("node '%s': %w", n.ID, err)
		}
		res, err := fn(inputs, n.Constants)
		if err != nil {
			return &op.OperationError{Name: n.OpName, NodeID: n.ID, Err: err}
		}
		n.SetResult(res)
		metrics.NodeExecuted()
		return nil

	default:
		return fmt.Errorf("node '%s': unhandled node type %v", n.ID, n.Type)
	}
}

// resolveInputs parses each input reference and gathers the referenced
// output values in order.
func (e *Executor) resolveInputs(n *node.Node) ([]string, error) {
	if len(n.InputIDs) == 0 {
		return nil, nil
	}
	inputs := make([]string, 0, len(n.InputIDs))
	for _, raw := range n.InputIDs {
		r, err := ref.Parse(raw)
		if err != nil {
			return nil, fmt.Errorf("node '%s': %w", n.ID, err)
		}
		producer, err := e.graph.Node(r.NodeID)
		if err != nil {
			return nil, fmt.Errorf("node '%s': %w", n.ID, err)
		}
		res, ok := producer.Result()
		if !ok {
			return nil, fmt.Errorf("node '%s': input '%s' has no computed result", n.ID, r.NodeID)
		}
		value, err := extractOutput(r, res)
		if err != nil {
			return nil, err
		}
		inputs = append(inputs, value)
	}
	return inputs, nil
}
