// Package dijkstra implements the single-source shortest-path driver that
// sits on top of a core.Graph and any core.PQ implementation.
//
// The driver is deliberately thin: it owns the dist/parent arrays and the
// tie-breaking counter, and delegates all ordering decisions to the PQ. It
// is polymorphic over the core.Graph contract and over the PQ's capability
// set (Clear, Reserve, Empty, Push, Decrease, Pop, Contains, Metrics), so
// the same Run call works identically whether pq is a *heappq.HeapPQ, a
// *bucketpq.BucketPQ, or a *stocpq.STOCPQ.
//
// Complexity:
//
//   - Time: O((V + E) log V) with HeapPQ, O(V + E) amortised with BucketPQ
//     under bounded integer weights, and workload-dependent with STOCPQ.
//   - Space: O(V) for dist/parent plus whatever the chosen PQ allocates.
//
// Determinism: HeapPQ and BucketPQ yield identical pop sequences for a
// given graph and source; STOCPQ may differ in pop order among equal keys,
// which does not affect the resulting dist vector.
package dijkstra
