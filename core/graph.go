package core

import "iter"

// Graph is the abstract edge-enumeration contract the Dijkstra driver
// consumes. Implementations are borrowed read-only during a search: Edges
// must not retain the iterator's arguments beyond its own return, and must
// not be called concurrently with a mutation of the underlying graph.
//
// Edge weights must be strictly positive; the driver never checks this, so
// an implementation that yields a zero or negative weight violates the
// contract silently. Edge order is unspecified but must be deterministic for
// a given graph, so that repeated searches are reproducible.
type Graph interface {
	// NumNodes returns the graph's node count N. Valid NodeId values for
	// this graph lie in [0, N).
	NumNodes() int

	// Edges returns an iterator over the outgoing edges of u: each yielded
	// pair is a neighbour NodeId and the strictly-positive weight of the
	// edge from u to that neighbour.
	Edges(u NodeId) iter.Seq2[NodeId, Cost32]
}
