package core

// PQMetrics counts the internal work a PQ performs, for comparing
// implementations on identical workloads. Attribution is defined per
// operation in each PQ's package doc; the counters here are the uniform
// shape every PQ reports through.
//
//   - Pushes     — successful Push calls.
//   - Pops       — successful Pop calls.
//   - Decreases  — Decrease calls that actually lowered a stored key.
//   - Moves      — internal relocations (heap swaps, bucket relinks, block
//     transfers, stale discards — defined per implementation).
//   - Scans      — internal probes and comparisons (empty-bucket skips,
//     sort comparisons — defined per implementation).
type PQMetrics struct {
	Pushes    uint64
	Pops      uint64
	Decreases uint64
	Moves     uint64
	Scans     uint64
}

// DijkstraMetrics counts algorithm-level work performed by the driver,
// independent of which PQ backs it.
type DijkstraMetrics struct {
	Relaxations uint64
	Improved    uint64
	Settled     uint64
}
