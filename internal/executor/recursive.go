package executor

import (
	"context"
	"fmt"

	"github.com/vk/strgraphgo/internal/node"
	"github.com/vk/strgraphgo/internal/ref"
)

// computeRecursive descends depth-first from n, computing dependencies
// before the node itself. The visiting set holds the ids on the current
// descent path; meeting one again is a back-edge.
func (e *Executor) computeRecursive(ctx context.Context, n *node.Node, visiting map[string]struct{}) error {
	if n.Computed() {
		return nil
	}
	if _, onPath := visiting[n.ID]; onPath {
		return &CycleError{NodeID: n.ID}
	}
	visiting[n.ID] = struct{}{}

	if n.Type == node.TypeOperation {
		for _, raw := range n.InputIDs {
			r, err := ref.Parse(raw)
			if err != nil {
				return fmt.Errorf("node '%s': %w", n.ID, err)
			}
			producer, err := e.graph.Node(r.NodeID)
			if err != nil {
				return err
			}
			if err := e.computeRecursive(ctx, producer, visiting); err != nil {
				return err
			}
		}
	}

	if err := e.executeNode(ctx, n); err != nil {
		return err
	}

	delete(visiting, n.ID)
	return nil
}
