package graph

import (
	"context"

	"github.com/vk/strgraphgo/internal/ctxlog"
	"github.com/vk/strgraphgo/internal/node"
	"github.com/vk/strgraphgo/internal/schema"
)

// FromDescription validates a graph description and constructs the Graph.
//
// Node types may be explicit or inferred: a 'value' implies CONSTANT, an
// 'op' implies OPERATION, anything else must name its type (typically
// placeholder). A CONSTANT without a value, a PLACEHOLDER with one, an
// unknown type spelling, and a duplicate id are all schema errors.
// Dangling input references are not resolved here; they surface during
// execution as NodeNotFound.
func FromDescription(ctx context.Context, desc *schema.Description) (*Graph, error) {
	logger := ctxlog.FromContext(ctx)
	g := New()

	for _, nd := range desc.Nodes {
		if nd.ID == "" {
			return nil, &schema.Error{Msg: "node missing required 'id' field"}
		}
		if g.Contains(nd.ID) {
			return nil, schema.Errorf(nd.ID, "duplicate node id")
		}

		n, err := buildNode(nd)
		if err != nil {
			return nil, err
		}
		g.Add(n)
	}

	logger.Debug("Graph constructed from description.", "node_count", g.Len())
	return g, nil
}

// buildNode translates and validates a single node description.
func buildNode(nd schema.NodeDescription) (*node.Node, error) {
	n := &node.Node{
		ID:     nd.ID,
		OpName: node.IdentityOp,
	}

	explicitType := nd.Type != ""
	if explicitType {
		t, ok := parseType(nd.Type)
		if !ok {
			return nil, schema.Errorf(nd.ID, "unknown node type %q", nd.Type)
		}
		n.Type = t
	}

	switch {
	case nd.Value != nil:
		if !explicitType {
			n.Type = node.TypeConstant
		}
		value := *nd.Value
		n.InitialValue = &value
	case nd.Op != "":
		if !explicitType {
			n.Type = node.TypeOperation
		}
	default:
		if !explicitType {
			return nil, schema.Errorf(nd.ID, "node has neither 'value' nor 'op', and no 'type' specified")
		}
	}

	if n.Type == node.TypeOperation {
		n.OpName = nd.Op
		if n.OpName == "" {
			n.OpName = node.IdentityOp
		}
		n.InputIDs = nd.Inputs
		n.Constants = nd.Constants
	}

	if n.Type == node.TypeConstant && n.InitialValue == nil {
		return nil, schema.Errorf(nd.ID, "constant node must have an initial 'value'")
	}
	if n.Type == node.TypePlaceholder && n.InitialValue != nil {
		return nil, schema.Errorf(nd.ID, "placeholder node must not have an initial 'value' (use the feed dictionary)")
	}

	return n, nil
}

// parseType maps the external type spelling to a node.Type.
func parseType(s string) (node.Type, bool) {
	switch s {
	case "constant":
		return node.TypeConstant, true
	case "placeholder":
		return node.TypePlaceholder, true
	case "variable":
		return node.TypeVariable, true
	case "operation":
		return node.TypeOperation, true
	default:
		return 0, false
	}
}
