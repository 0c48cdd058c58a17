package heappq

import "pathlab/core"

const absent int32 = -1

type entry struct {
	node core.NodeId
	key  core.Key
}

// HeapPQ is an indexed binary min-heap implementing core.PQ.
//
// HeapPQ is not safe for concurrent use; pathlab's PQs are single-threaded by
// design (see spec §5).
type HeapPQ struct {
	heap []entry
	pos  []int32 // node -> heap index, absent if not present
	m    core.PQMetrics
}

// New returns an empty HeapPQ, optionally pre-sized to hold nHint nodes
// without early reallocation.
func New(nHint int) *HeapPQ {
	h := &HeapPQ{}
	if nHint > 0 {
		h.heap = make([]entry, 0, nHint)
		h.pos = make([]int32, nHint)
		for i := range h.pos {
			h.pos[i] = absent
		}
	}
	return h
}

// Reserve ensures node-indexed metadata can address any u < n without
// reallocating on the next Push/Decrease.
func (h *HeapPQ) Reserve(n int) {
	if cap(h.heap) < n {
		grown := make([]entry, len(h.heap), n)
		copy(grown, h.heap)
		h.heap = grown
	}
	h.ensurePos(n - 1)
}

// Clear empties the heap and resets all metrics.
func (h *HeapPQ) Clear() {
	h.heap = h.heap[:0]
	for i := range h.pos {
		h.pos[i] = absent
	}
	h.m = core.PQMetrics{}
}

// Empty reports whether the heap holds no entries.
func (h *HeapPQ) Empty() bool { return len(h.heap) == 0 }

// Size returns the number of entries currently in the heap.
func (h *HeapPQ) Size() int { return len(h.heap) }

func (h *HeapPQ) ensurePos(u int) {
	if u < len(h.pos) {
		return
	}
	grown := make([]int32, u+1)
	copy(grown, h.pos)
	for i := len(h.pos); i <= u; i++ {
		grown[i] = absent
	}
	h.pos = grown
}

// Push inserts u with key k, or delegates to Decrease if u is already
// present.
func (h *HeapPQ) Push(u core.NodeId, k core.Key) {
	h.ensurePos(int(u))
	if h.pos[u] != absent {
		h.Decrease(u, k)
		return
	}
	idx := len(h.heap)
	h.heap = append(h.heap, entry{node: u, key: k})
	h.pos[u] = int32(idx)
	h.siftUp(idx)
	h.m.Pushes++
}

// Decrease lowers u's stored key to k iff k is strictly smaller, or
// delegates to Push if u is absent.
func (h *HeapPQ) Decrease(u core.NodeId, k core.Key) {
	h.ensurePos(int(u))
	idx := h.pos[u]
	if idx == absent {
		h.Push(u, k)
		return
	}
	if !k.Less(h.heap[idx].key) {
		return
	}
	h.heap[idx].key = k
	h.siftUp(int(idx))
	h.m.Decreases++
}

// Top returns the minimum-key entry without removing it. Panics if the heap
// is empty.
func (h *HeapPQ) Top() (core.NodeId, core.Key) {
	if len(h.heap) == 0 {
		panic("heappq: Top on empty queue")
	}
	e := h.heap[0]
	return e.node, e.key
}

// Pop removes and returns the minimum-key entry. Panics if the heap is
// empty.
func (h *HeapPQ) Pop() (core.NodeId, core.Key) {
	if len(h.heap) == 0 {
		panic("heappq: Pop on empty queue")
	}
	out := h.heap[0]
	h.pos[out.node] = absent
	n := len(h.heap)
	if n == 1 {
		h.heap = h.heap[:0]
	} else {
		h.heap[0] = h.heap[n-1]
		h.pos[h.heap[0].node] = 0
		h.heap = h.heap[:n-1]
		h.siftDown(0)
	}
	h.m.Pops++
	return out.node, out.key
}

// Contains reports whether u currently has a live entry.
func (h *HeapPQ) Contains(u core.NodeId) bool {
	return int(u) < len(h.pos) && h.pos[u] != absent
}

// KeyOf returns u's stored key and true, or the zero Key and false if u is
// absent.
func (h *HeapPQ) KeyOf(u core.NodeId) (core.Key, bool) {
	if !h.Contains(u) {
		return core.Key{}, false
	}
	return h.heap[h.pos[u]].key, true
}

// Metrics returns a snapshot of the accumulated PQMetrics.
func (h *HeapPQ) Metrics() core.PQMetrics { return h.m }

// ResetMetrics zeroes all counters without touching queue contents.
func (h *HeapPQ) ResetMetrics() { h.m = core.PQMetrics{} }

func (h *HeapPQ) less(a, b int) bool {
	return h.heap[a].key.Less(h.heap[b].key)
}

func (h *HeapPQ) swap(a, b int) {
	h.heap[a], h.heap[b] = h.heap[b], h.heap[a]
	h.pos[h.heap[a].node] = int32(a)
	h.pos[h.heap[b].node] = int32(b)
	h.m.Moves += 2
}

func (h *HeapPQ) siftUp(i int) {
	for i > 0 {
		p := (i - 1) >> 1
		if !h.less(i, p) {
			break
		}
		h.swap(i, p)
		i = p
	}
}

func (h *HeapPQ) siftDown(i int) {
	n := len(h.heap)
	for {
		l, r, m := i<<1+1, i<<1+2, i
		if l < n && h.less(l, m) {
			m = l
		}
		if r < n && h.less(r, m) {
			m = r
		}
		if m == i {
			break
		}
		h.swap(i, m)
		i = m
	}
}
