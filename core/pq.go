package core

// PQ is the uniform contract every pathlab priority queue satisfies. The
// driver is polymorphic over this interface; it never type-switches on the
// concrete PQ.
//
// Uniqueness: after Push(u, k), Contains(u) is true and KeyOf(u) returns k.
// Pushing a node already present behaves as Decrease with the new key.
//
// Monotone improvement: Decrease(u, k) stores k iff k is strictly less than
// the current key under Key.Less; otherwise it is a no-op and Decreases is
// not incremented.
//
// Ordering: Top and Pop return a node whose key is minimal under Key.Less
// among all currently-present nodes.
//
// Removal: after Pop returns u, Contains(u) is false until the next Push(u, ...).
//
// Capacity: Reserve(n) ensures later operations on any u < n do not fail or
// reallocate node-indexed metadata; implementations also tolerate
// opportunistic growth when a caller pushes a node beyond the reserved
// range.
//
// Calling Top or Pop on an empty queue is a programming error and the
// driver never does it. No implementation returns a recoverable error for
// it: HeapPQ and BucketPQ panic, and STOCPQ returns the sentinel
// (0, Key{Primary: InfCost}).
type PQ interface {
	Reserve(n int)
	Clear()
	Empty() bool
	Size() int

	Push(u NodeId, k Key)
	Decrease(u NodeId, k Key)

	Top() (NodeId, Key)
	Pop() (NodeId, Key)

	Contains(u NodeId) bool
	KeyOf(u NodeId) (Key, bool)

	Metrics() PQMetrics
	ResetMetrics()
}
