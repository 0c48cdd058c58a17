package reporting

import "pathlab/core"

// Steps walks parent from g back to s and counts the number of edges
// traversed. It returns 0 if g is unreached (dist[g] == core.InfCost) or if
// the parent chain does not lead back to s.
func Steps(dist core.DistanceArray, parent core.ParentArray, s, g core.NodeId) uint32 {
	if int(g) >= len(dist) || dist[g] == core.InfCost {
		return 0
	}
	var steps uint32
	v := g
	for v != core.InvalidNode && v != s {
		v = parent[v]
		steps++
	}
	if v == core.InvalidNode {
		return 0
	}
	return steps
}

// SplitSteps10x14 decomposes a step count and total distance, computed
// under the 10 (straight) / 14 (diagonal) octile cost scale, into the
// number of straight and diagonal moves that produced them.
//
// steps = straight + diag, dist = 10*straight + 14*diag, so
// 4*diag = dist - 10*steps. A negative or over-large result is clamped
// rather than treated as an error, since it can only arise from a dist/steps
// pair that was not actually produced by the 10/14 scale (e.g. an unreached
// goal, where steps is 0 and dist is core.InfCost).
func SplitSteps10x14(steps uint32, dist core.Cost32) (straight, diag uint32) {
	tmp := int64(dist) - 10*int64(steps)
	if tmp < 0 {
		return steps, 0
	}
	diag = uint32(tmp / 4)
	if diag > steps {
		diag = steps
	}
	straight = steps - diag
	return straight, diag
}
