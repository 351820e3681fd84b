package executor

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/vk/strgraphgo/internal/ctxlog"
	"github.com/vk/strgraphgo/internal/node"
	"github.com/vk/strgraphgo/internal/ref"
)

// MinParallelLayerSize is the smallest layer that is worth fanning out
// across goroutines; smaller layers run sequentially.
const MinParallelLayerSize = 200

// parallelAvailable reports whether concurrent layer execution can beat
// the sequential walk on this process.
func parallelAvailable() bool {
	return runtime.GOMAXPROCS(0) > 1
}

// layersOf partitions a topological order into levels: a node's level is
// one plus the maximum level among its producers, and zero when it has
// none. Producers outside the reachable set are ignored.
func layersOf(reach map[string]*node.Node, order []*node.Node) [][]*node.Node {
	levels := make(map[string]int, len(order))
	maxLevel := 0
	for _, n := range order {
		level := 0
		for _, raw := range n.InputIDs {
			r, err := ref.Parse(raw)
			if err != nil {
				continue // rejected later by the per-node execution
			}
			if _, ok := reach[r.NodeID]; !ok {
				continue
			}
			if l := levels[r.NodeID] + 1; l > level {
				level = l
			}
		}
		levels[n.ID] = level
		if level > maxLevel {
			maxLevel = level
		}
	}

	layers := make([][]*node.Node, maxLevel+1)
	for _, n := range order {
		level := levels[n.ID]
		layers[level] = append(layers[level], n)
	}
	return layers
}

// executeLayers walks the layers in ascending level order. Each layer is a
// barrier: all of its nodes complete before the next layer starts. Within
// a layer there is no ordering; layers at or above MinParallelLayerSize
// run concurrently with dynamic work assignment.
func (e *Executor) executeLayers(ctx context.Context, reach map[string]*node.Node, order []*node.Node) error {
	logger := ctxlog.FromContext(ctx)
	layers := layersOf(reach, order)
	logger.Debug("Layer partition built.", "layers", len(layers))

	for level, layer := range layers {
		if len(layer) >= MinParallelLayerSize && parallelAvailable() {
			logger.Debug("Executing layer concurrently.", "level", level, "size", len(layer))
			g, gctx := errgroup.WithContext(ctx)
			g.SetLimit(runtime.GOMAXPROCS(0))
			for _, n := range layer {
				if n.Computed() {
					continue
				}
				g.Go(func() error {
					return e.executeNode(gctx, n)
				})
			}
			if err := g.Wait(); err != nil {
				return err
			}
			continue
		}

		for _, n := range layer {
			if n.Computed() {
				continue
			}
			if err := e.executeNode(ctx, n); err != nil {
				return err
			}
		}
	}
	return nil
}
