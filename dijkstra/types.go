package dijkstra

import (
	"errors"

	"pathlab/core"
)

// Sentinel errors returned by Run.
var (
	// ErrNilGraph indicates a nil core.Graph was passed to Run.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrNilPQ indicates a nil core.PQ was passed to Run.
	ErrNilPQ = errors.New("dijkstra: pq is nil")

	// ErrSourceOutOfRange indicates the source NodeId is not in [0, N) for
	// the graph's node count N.
	ErrSourceOutOfRange = errors.New("dijkstra: source node out of range")
)

// Result holds everything a single Run call produces: the driver owns dist
// and parent exclusively for the duration of the search and hands them to
// the caller on return.
type Result struct {
	// Dist is the per-node shortest distance from the source, core.InfCost
	// for unreached nodes.
	Dist core.DistanceArray

	// Parent is the per-node predecessor on the shortest path,
	// core.InvalidNode for the source and for unreached nodes.
	Parent core.ParentArray

	// Algo carries the driver's own counters (relaxations, improved,
	// settled), distinct from the PQ's internal metrics.
	Algo core.DijkstraMetrics

	// PQ is a snapshot of the PQ's metrics at the end of the search.
	PQ core.PQMetrics
}
