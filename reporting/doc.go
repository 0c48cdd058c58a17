// Package reporting turns a dijkstra.Result into the per-case and
// aggregate figures the bench_single CLI prints: path length in cells,
// its straight/diagonal decomposition under the 10/14 octile cost scale,
// and the PQ/driver counters for that case.
package reporting
