package dijkstra

import (
	"pathlab/core"
)

// Run computes single-source shortest distances from source over g using pq
// as the extraction order. pq is cleared and reserved for g's node count
// before the search begins, so callers may freely reuse the same PQ value
// across multiple Run calls.
//
// Preconditions (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. pq must be non-nil (ErrNilPQ).
//  3. source must lie in [0, g.NumNodes()) (ErrSourceOutOfRange).
//
// Run does not itself validate edge weights; a graph that yields a
// non-positive weight violates core.Graph's contract silently.
func Run(g core.Graph, source core.NodeId, pq core.PQ) (Result, error) {
	if g == nil {
		return Result{}, ErrNilGraph
	}
	if pq == nil {
		return Result{}, ErrNilPQ
	}
	n := g.NumNodes()
	if int(source) < 0 || int(source) >= n {
		return Result{}, ErrSourceOutOfRange
	}

	pq.Clear()
	pq.Reserve(n)

	dist := core.NewDistanceArray(n)
	parent := core.NewParentArray(n)

	var algo core.DijkstraMetrics
	var tie uint32

	dist[source] = 0
	pq.Push(source, core.Key{Primary: 0, Tie: tie})
	tie++

	for !pq.Empty() {
		u, _ := pq.Pop()
		algo.Settled++

		for v, w := range g.Edges(u) {
			algo.Relaxations++

			candidate := dist[u] + w
			if candidate < dist[v] {
				dist[v] = candidate
				parent[v] = u
				algo.Improved++

				newKey := core.Key{Primary: candidate, Tie: tie}
				tie++
				if pq.Contains(v) {
					pq.Decrease(v, newKey)
				} else {
					pq.Push(v, newKey)
				}
			}
		}
	}

	return Result{
		Dist:   dist,
		Parent: parent,
		Algo:   algo,
		PQ:     pq.Metrics(),
	}, nil
}
