// Package node defines the passive node record of the computation graph:
// its type, operation binding, inputs, constants, and computed state.
// Nodes are created once from an external description and mutate only
// under the owning executor's control.
package node

import "github.com/vk/strgraphgo/internal/op"

// IdentityOp is the operation name bound to non-OPERATION nodes.
const IdentityOp = "identity"

// Type classifies a node's role in the graph.
type Type int

const (
	// TypeConstant holds a fixed value seeded before every execution.
	TypeConstant Type = iota
	// TypePlaceholder is resolved from the feed dictionary at run time.
	TypePlaceholder
	// TypeVariable keeps its computed value across executions.
	TypeVariable
	// TypeOperation applies a registered operation to its inputs.
	TypeOperation
)

// String returns the external (description) spelling of the type.
func (t Type) String() string {
	switch t {
	case TypeConstant:
		return "constant"
	case TypePlaceholder:
		return "placeholder"
	case TypeVariable:
		return "variable"
	case TypeOperation:
		return "operation"
	default:
		return "unknown"
	}
}

// State tracks whether a node has been computed in the current run.
type State int

const (
	StatePending State = iota
	StateComputed
)

// Node is a single vertex of the computation graph.
type Node struct {
	ID string
	// Type decides the node's lifecycle during execution.
	Type Type
	// OpName names the operation to apply; IdentityOp for non-OPERATION nodes.
	OpName string
	// InputIDs are ordered input references, each "<id>" or "<id>:<index>".
	InputIDs []string
	// Constants are bound at graph construction time.
	Constants []string
	// InitialValue seeds CONSTANT nodes every run and VARIABLE nodes on
	// first use. Nil when absent.
	InitialValue *string

	state  State
	result *op.Result
}

// Computed reports whether the node holds a result for the current run.
func (n *Node) Computed() bool { return n.state == StateComputed }

// State returns the node's computation state.
func (n *Node) State() State { return n.state }

// Result returns the stored result. ok is false while the node is pending.
func (n *Node) Result() (res op.Result, ok bool) {
	if n.result == nil {
		return op.Result{}, false
	}
	return *n.result, true
}

// SetResult stores a result and marks the node computed.
func (n *Node) SetResult(res op.Result) {
	n.result = &res
	n.state = StateComputed
}

// Reset clears the stored result and returns the node to pending.
func (n *Node) Reset() {
	n.result = nil
	n.state = StatePending
}
