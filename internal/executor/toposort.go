package executor

import (
	"fmt"
	"sort"

	"github.com/vk/strgraphgo/internal/node"
	"github.com/vk/strgraphgo/internal/ref"
)

// reachableFrom collects the subgraph reachable from targetID by following
// input references.
func (e *Executor) reachableFrom(targetID string) (map[string]*node.Node, error) {
	reach := make(map[string]*node.Node)
	stack := []string{targetID}

	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if _, seen := reach[id]; seen {
			continue
		}
		n, err := e.graph.Node(id)
		if err != nil {
			return nil, err
		}
		reach[id] = n

		for _, raw := range n.InputIDs {
			r, err := ref.Parse(raw)
			if err != nil {
				return nil, fmt.Errorf("node '%s': %w", id, err)
			}
			stack = append(stack, r.NodeID)
		}
	}
	return reach, nil
}

// orderOf runs Kahn's algorithm over the reachable set. The returned order
// is deterministic: the queue is seeded in node-id order and each node's
// dependents are released in node-id order. A produced order shorter than
// the set means a cycle.
func (e *Executor) orderOf(reach map[string]*node.Node) ([]*node.Node, error) {
	ids := make([]string, 0, len(reach))
	for id := range reach {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	indegree := make(map[string]int, len(reach))
	dependents := make(map[string][]string, len(reach))
	for _, id := range ids {
		indegree[id] += 0
		for _, raw := range reach[id].InputIDs {
			r, err := ref.Parse(raw)
			if err != nil {
				return nil, fmt.Errorf("node '%s': %w", id, err)
			}
			if _, ok := reach[r.NodeID]; !ok {
				continue
			}
			indegree[id]++
			dependents[r.NodeID] = append(dependents[r.NodeID], id)
		}
	}

	var queue []string
	for _, id := range ids {
		if indegree[id] == 0 {
			queue = append(queue, id)
		}
	}

	order := make([]*node.Node, 0, len(reach))
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		order = append(order, reach[id])
		for _, dep := range dependents[id] {
			indegree[dep]--
			if indegree[dep] == 0 {
				queue = append(queue, dep)
			}
		}
	}

	if len(order) != len(reach) {
		// Some node never reached zero in-degree; name the smallest for a
		// stable error.
		for _, id := range ids {
			if indegree[id] > 0 {
				return nil, &CycleError{NodeID: id}
			}
		}
		return nil, &CycleError{NodeID: ids[0]}
	}
	return order, nil
}

// TopologicalSort returns a topological order of the whole graph's node
// ids, for tools that want to inspect the graph. It fails with a cycle
// error if the graph contains one.
func (e *Executor) TopologicalSort() ([]string, error) {
	all := make(map[string]*node.Node, e.graph.Len())
	e.graph.Each(func(n *node.Node) {
		all[n.ID] = n
	})
	order, err := e.orderOf(all)
	if err != nil {
		return nil, err
	}
	ids := make([]string, len(order))
	for i, n := range order {
		ids[i] = n.ID
	}
	return ids, nil
}
