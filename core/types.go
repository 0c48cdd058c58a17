package core

import "math"

// NodeId identifies a graph vertex in [0, N) for some node count N.
type NodeId uint32

// InvalidNode marks "no parent" in a ParentArray. Real node ids are expected
// to lie far below this sentinel.
const InvalidNode NodeId = math.MaxUint32

// Cost32 is an unsigned edge or path cost.
type Cost32 uint32

// InfCost means "unreached" in a DistanceArray and is the key primary a PQ
// uses for sentinel pop results on an empty queue.
const InfCost Cost32 = math.MaxUint32

// Key orders PQ entries: smaller Primary first, ties broken by smaller Tie.
// Tie is owned by the caller (the Dijkstra driver seeds and increments it) so
// that comparisons are total and extraction order is deterministic.
type Key struct {
	Primary Cost32
	Tie     uint32
}

// Less reports whether k sorts strictly before other under Key ordering.
func (k Key) Less(other Key) bool {
	if k.Primary != other.Primary {
		return k.Primary < other.Primary
	}
	return k.Tie < other.Tie
}

// DistanceArray is a dense per-node distance vector, InfCost for unreached
// nodes.
type DistanceArray []Cost32

// ParentArray is a dense per-node predecessor vector, InvalidNode for
// unreached nodes and for the source.
type ParentArray []NodeId

// NewDistanceArray returns a DistanceArray of length n initialized to
// InfCost.
func NewDistanceArray(n int) DistanceArray {
	d := make(DistanceArray, n)
	for i := range d {
		d[i] = InfCost
	}
	return d
}

// NewParentArray returns a ParentArray of length n initialized to
// InvalidNode.
func NewParentArray(n int) ParentArray {
	p := make(ParentArray, n)
	for i := range p {
		p[i] = InvalidNode
	}
	return p
}
