// Package heappq implements HeapPQ, an indexed binary min-heap with true
// decrease-key.
//
// Layout: a dense slice of (NodeId, Key) entries forming an implicit binary
// min-heap, plus a position map from NodeId to heap index (-1 for absent).
//
// Complexity: O(log n) Push, Decrease, Pop; O(1) Top, Contains, KeyOf.
//
// Metrics: each heap swap counts two core.PQMetrics.Moves (both entries
// relocate). Scans is never incremented — heap comparisons are implicit in
// the sift operations and intentionally excluded, so the counter stays
// meaningful for queues whose dominant cost is comparison-based sorting.
// Pushes, Pops, and Decreases each increment exactly once per successful
// call.
package heappq
