package executor

import (
	"github.com/vk/strgraphgo/internal/node"
	"github.com/vk/strgraphgo/internal/op"
)

// prepare resets node state for a new run: every non-VARIABLE node returns
// to pending with its result cleared, constants are seeded from their
// initial values, and variables without a stored result are seeded from
// theirs. Placeholders are not validated here; a missing feed entry only
// matters if the node is actually reached.
func (e *Executor) prepare() {
	e.graph.Each(func(n *node.Node) {
		switch n.Type {
		case node.TypeConstant:
			n.Reset()
			n.SetResult(op.SingleResult(*n.InitialValue))
		case node.TypeVariable:
			if !n.Computed() && n.InitialValue != nil {
				n.SetResult(op.SingleResult(*n.InitialValue))
			}
		default:
			n.Reset()
		}
	})
}
