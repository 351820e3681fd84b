package graph

import (
	"github.com/vk/strgraphgo/internal/node"
)

// Graph is a keyed collection of nodes. Insertion order is irrelevant;
// node ids are unique.
type Graph struct {
	nodes map[string]*node.Node
}

// New creates an empty Graph.
func New() *Graph {
	return &Graph{nodes: make(map[string]*node.Node)}
}

// Add inserts a node. The caller guarantees the id is not already present;
// construction from a description enforces that.
func (g *Graph) Add(n *node.Node) {
	g.nodes[n.ID] = n
}

// Node returns the node with the given id.
func (g *Graph) Node(id string) (*node.Node, error) {
	n, ok := g.nodes[id]
	if !ok {
		return nil, &NodeNotFoundError{ID: id}
	}
	return n, nil
}

// Contains reports whether a node with the given id exists.
func (g *Graph) Contains(id string) bool {
	_, ok := g.nodes[id]
	return ok
}

// Len returns the number of nodes.
func (g *Graph) Len() int { return len(g.nodes) }

// Each calls fn for every node, in unspecified order.
func (g *Graph) Each(fn func(n *node.Node)) {
	for _, n := range g.nodes {
		fn(n)
	}
}

// IDs returns all node ids, in unspecified order.
func (g *Graph) IDs() []string {
	ids := make([]string, 0, len(g.nodes))
	for id := range g.nodes {
		ids = append(ids, id)
	}
	return ids
}
