// Package pathlab is a single-source shortest-path research harness for grid
// worlds in the MovingAI benchmark format.
//
// It measures and compares three priority-queue implementations under one
// reference Dijkstra driver running over an 8-connected grid graph with
// integer edge costs:
//
//	heappq/   — indexed binary min-heap with true decrease-key
//	bucketpq/ — Dial's circular bucket queue for monotone integer keys
//	stocpq/   — batch/deferred queue with lazy decrease-key
//
// The contribution is not Dijkstra itself — it is the three priority-queue
// implementations and the strict metrics contract (core.PQMetrics) that makes
// their internal work observable and comparable on identical workloads.
//
// Package layout:
//
//	core/         — NodeId, Cost32, Key, PQMetrics, the Graph and PQ contracts
//	heappq/       — HeapPQ
//	bucketpq/     — BucketPQ
//	stocpq/       — STOCPQ
//	dijkstra/     — the driver that ties a Graph and a PQ together
//	gridgraph/    — MovingAI-style 4/8-connected grid adapter + synthetic grids
//	movingai/     — .map / .scen file readers
//	reporting/    — path reconstruction and the 10/14 straight/diagonal split
//	pathlabconfig/  — CLI and file/env configuration
//	pathlabmetrics/ — Prometheus projection of the core's counters
//	obslog/       — structured logging
//	cmd/bench_single/ — the benchmark CLI
//
// See the package-level docs under each of these for the full contract.
package pathlab
