// Package executor computes target nodes of a string computation graph.
//
// Three strategies are provided: depth-first recursive (Compute),
// iterative over a Kahn topological order (ComputeIterative), and a
// layered walk that fans large layers out across goroutines
// (ComputeParallel). ComputeAuto picks among them from the shape of the
// reachable subgraph.
//
// An Executor borrows its graph's mutable node state for the duration of
// one compute call. Concurrent compute calls on the same Executor are not
// allowed; concurrent calls on different Executors over different Graphs
// are safe.
package executor
