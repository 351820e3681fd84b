// Package graph holds the keyed node collection of a computation graph
// and its construction from an external description.
//
// A Graph exclusively owns its nodes and is structurally immutable after
// construction; only node state and results mutate, and only under the
// executor that borrows the graph for the duration of one compute call.
package graph
