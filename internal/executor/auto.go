package executor

import (
	"context"

	"github.com/vk/strgraphgo/internal/ctxlog"
	"github.com/vk/strgraphgo/internal/node"
	"github.com/vk/strgraphgo/internal/ref"
)

// Thresholds for automatic strategy selection.
const (
	// MaxRecursionDepth bounds the estimated dependency depth the
	// recursive strategy is trusted with.
	MaxRecursionDepth = 100
	// MaxRecursionNodes bounds the reachable-set size for the recursive
	// strategy.
	MaxRecursionNodes = 500
	// MinParallelNodes is the smallest reachable set worth parallelizing.
	MinParallelNodes = 500
	// MinParallelWidth is the smallest widest-layer size worth
	// parallelizing.
	MinParallelWidth = 100
)

// ComputeAuto selects a strategy from the shape of the reachable subgraph
// and runs it: recursive for small shallow graphs, parallel for large wide
// ones, iterative otherwise.
func (e *Executor) ComputeAuto(ctx context.Context, target string, feed map[string]string) (string, error) {
	strat := e.selectStrategy(ctx, target)
	return e.run(ctx, target, feed, strat)
}

// selectStrategy applies the selection rule. Targets that cannot be
// inspected (bad reference, missing node, cycle) fall back to iterative,
// which reports the underlying error with full context.
func (e *Executor) selectStrategy(ctx context.Context, target string) strategy {
	logger := ctxlog.FromContext(ctx)

	targetRef, err := ref.Parse(target)
	if err != nil {
		return strategyIterative
	}

	depth := e.estimateDepth(targetRef.NodeID, MaxRecursionDepth)

	reach, err := e.reachableFrom(targetRef.NodeID)
	if err != nil {
		return strategyIterative
	}
	order, err := e.orderOf(reach)
	if err != nil {
		return strategyIterative
	}

	wantParallel := parallelAvailable() &&
		len(reach) >= MinParallelNodes &&
		widestLayer(reach, order) >= MinParallelWidth

	var strat strategy
	switch {
	case depth <= MaxRecursionDepth && len(reach) <= MaxRecursionNodes:
		strat = strategyRecursive
	case wantParallel:
		strat = strategyParallel
	default:
		strat = strategyIterative
	}
	logger.Debug("Strategy selected.",
		"strategy", strat.String(), "depth", depth, "reachable", len(reach))
	return strat
}

// widestLayer returns the cardinality of the largest layer.
func widestLayer(reach map[string]*node.Node, order []*node.Node) int {
	widest := 0
	for _, layer := range layersOf(reach, order) {
		if len(layer) > widest {
			widest = len(layer)
		}
	}
	return widest
}

// estimateDepth estimates the dependency depth below id with a memoized
// depth-first walk that short-circuits once the cap is exceeded. Nodes on
// a cycle and unresolvable references report as deeper than the cap; the
// selected strategy surfaces the real error.
func (e *Executor) estimateDepth(id string, depthCap int) int {
	memo := make(map[string]int)
	onPath := make(map[string]struct{})

	var visit func(id string) int
	visit = func(id string) int {
		if d, ok := memo[id]; ok {
			return d
		}
		if _, cycling := onPath[id]; cycling {
			return depthCap + 1
		}
		n, err := e.graph.Node(id)
		if err != nil {
			return depthCap + 1
		}

		onPath[id] = struct{}{}
		depth := 1
		for _, raw := range n.InputIDs {
			r, err := ref.Parse(raw)
			if err != nil {
				depth = depthCap + 1
				break
			}
			if d := 1 + visit(r.NodeID); d > depth {
				depth = d
			}
			if depth > depthCap {
				break
			}
		}
		delete(onPath, id)
		memo[id] = depth
		return depth
	}

	return visit(id)
}
