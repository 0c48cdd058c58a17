// Package core defines the foundational types shared by every pathlab
// priority queue and by the Dijkstra driver: NodeId, Cost32, Key, the
// metrics record PQMetrics, and the two small contracts —
// Graph and PQ — that let the driver stay generic over its collaborators.
//
// Nothing in this package performs I/O, logs, or allocates beyond the types
// themselves; it exists purely to give the rest of pathlab a single,
// consistent vocabulary.
package core
