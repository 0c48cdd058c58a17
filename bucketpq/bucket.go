package bucketpq

import (
	"container/list"

	"pathlab/core"
)

// BucketPQ is Dial's bucket priority queue implementing core.PQ.
//
// BucketPQ is not safe for concurrent use.
type BucketPQ struct {
	curMin core.Cost32
	w      uint32
	k      uint32 // k = w + 1

	buckets []*list.List

	inQueue []bool
	keys    []core.Key
	bidx    []uint32
	elems   []*list.Element

	count int
	m     core.PQMetrics
}

// New returns a BucketPQ sized for edge weights in [1, maxW]. maxW must be
// the maximum possible edge weight in the graph the queue will serve; for
// the MovingAI 4/8-neighbour grid this is 10 or 14. A maxW of 0 is treated
// as 1.
func New(maxW uint32) *BucketPQ {
	if maxW == 0 {
		maxW = 1
	}
	k := maxW + 1
	buckets := make([]*list.List, k)
	for i := range buckets {
		buckets[i] = list.New()
	}
	return &BucketPQ{w: maxW, k: k, buckets: buckets}
}

func (b *BucketPQ) bucketIndexFor(primary core.Cost32) uint32 {
	return uint32(primary) % b.k
}

func (b *BucketPQ) ensureCap(u int) {
	if u < len(b.inQueue) {
		return
	}
	n := u + 1
	inQueue := make([]bool, n)
	keys := make([]core.Key, n)
	bidx := make([]uint32, n)
	elems := make([]*list.Element, n)
	copy(inQueue, b.inQueue)
	copy(keys, b.keys)
	copy(bidx, b.bidx)
	copy(elems, b.elems)
	b.inQueue, b.keys, b.bidx, b.elems = inQueue, keys, bidx, elems
}

// Reserve ensures node-indexed metadata can address any u < n without
// reallocating on the next Push/Decrease.
func (b *BucketPQ) Reserve(n int) {
	if n > 0 {
		b.ensureCap(n - 1)
	}
}

// Clear empties every bucket, resets the cursor, and resets all metrics.
func (b *BucketPQ) Clear() {
	for _, bucket := range b.buckets {
		bucket.Init()
	}
	for i := range b.inQueue {
		b.inQueue[i] = false
	}
	b.curMin = 0
	b.count = 0
	b.m = core.PQMetrics{}
}

// Empty reports whether the queue holds no entries.
func (b *BucketPQ) Empty() bool { return b.count == 0 }

// Size returns the number of entries currently queued.
func (b *BucketPQ) Size() int { return b.count }

// Push inserts u with key k, or delegates to Decrease if u is already
// present.
func (b *BucketPQ) Push(u core.NodeId, k core.Key) {
	b.ensureCap(int(u))
	if b.inQueue[u] {
		b.Decrease(u, k)
		return
	}
	bi := b.bucketIndexFor(k.Primary)
	elem := b.buckets[bi].PushBack(u)
	b.keys[u] = k
	b.bidx[u] = bi
	b.elems[u] = elem
	b.inQueue[u] = true
	b.count++
	b.m.Pushes++
}

// Decrease unlinks u from its current bucket and relinks it under k, iff k
// is strictly smaller than u's stored key; otherwise it is a no-op. An
// absent u is delegated to Push.
func (b *BucketPQ) Decrease(u core.NodeId, k core.Key) {
	b.ensureCap(int(u))
	if !b.inQueue[u] {
		b.Push(u, k)
		return
	}
	if !k.Less(b.keys[u]) {
		return
	}
	b.buckets[b.bidx[u]].Remove(b.elems[u])

	bi := b.bucketIndexFor(k.Primary)
	elem := b.buckets[bi].PushBack(u)
	b.keys[u] = k
	b.bidx[u] = bi
	b.elems[u] = elem

	b.m.Decreases++
	b.m.Moves++
}

// Top peeks the front of the first non-empty bucket at or after the cursor
// without advancing the cursor or touching metrics. Panics if the queue is
// empty.
func (b *BucketPQ) Top() (core.NodeId, core.Key) {
	if b.count == 0 {
		panic("bucketpq: Top on empty queue")
	}
	cur := b.curMin
	idx := uint32(cur) % b.k
	for b.buckets[idx].Len() == 0 {
		cur++
		idx = uint32(cur) % b.k
	}
	u := b.buckets[idx].Front().Value.(core.NodeId)
	return u, b.keys[u]
}

// Pop advances the cursor past empty buckets until it finds a non-empty one,
// then removes and returns its front entry. Panics if the queue is empty.
func (b *BucketPQ) Pop() (core.NodeId, core.Key) {
	if b.count == 0 {
		panic("bucketpq: Pop on empty queue")
	}
	idx := uint32(b.curMin) % b.k
	for b.buckets[idx].Len() == 0 {
		b.curMin++
		b.m.Scans++
		idx = uint32(b.curMin) % b.k
	}
	front := b.buckets[idx].Front()
	u := front.Value.(core.NodeId)
	b.buckets[idx].Remove(front)
	b.inQueue[u] = false
	b.count--
	b.m.Pops++
	return u, b.keys[u]
}

// Contains reports whether u currently has a live entry.
func (b *BucketPQ) Contains(u core.NodeId) bool {
	return int(u) < len(b.inQueue) && b.inQueue[u]
}

// KeyOf returns u's stored key and true, or the zero Key and false if u is
// absent.
func (b *BucketPQ) KeyOf(u core.NodeId) (core.Key, bool) {
	if !b.Contains(u) {
		return core.Key{}, false
	}
	return b.keys[u], true
}

// Metrics returns a snapshot of the accumulated PQMetrics.
func (b *BucketPQ) Metrics() core.PQMetrics { return b.m }

// ResetMetrics zeroes all counters without touching queue contents.
func (b *BucketPQ) ResetMetrics() { b.m = core.PQMetrics{} }
