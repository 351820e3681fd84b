package executor

import (
	"context"

	"github.com/vk/strgraphgo/internal/ctxlog"
)

// runOrdered executes the subgraph reachable from targetID in topological
// order, either node by node or in layers.
func (e *Executor) runOrdered(ctx context.Context, targetID string, layered bool) error {
	logger := ctxlog.FromContext(ctx)

	reach, err := e.reachableFrom(targetID)
	if err != nil {
		return err
	}
	order, err := e.orderOf(reach)
	if err != nil {
		return err
	}
	logger.Debug("Topological order built.", "reachable", len(reach), "layered", layered)

	if layered {
		return e.executeLayers(ctx, reach, order)
	}

	for _, n := range order {
		if n.Computed() {
			continue
		}
		if err := e.executeNode(ctx, n); err != nil {
			return err
		}
	}
	return nil
}
