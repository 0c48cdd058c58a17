package stocpq

import (
	"sort"

	"pathlab/core"
)

const defaultBlockSize uint32 = 256

type item struct {
	node core.NodeId
	key  core.Key
}

type optKey struct {
	key core.Key
	ok  bool
}

// Option configures a STOCPQ at construction time.
type Option func(*STOCPQ)

// WithBlockSize sets the maximum size of an unsorted block before a new one
// is allocated. The default is 256.
func WithBlockSize(b uint32) Option {
	return func(s *STOCPQ) {
		if b > 0 {
			s.blockSize = b
		}
	}
}

// WithBound sets a silent-drop filter: any Push or Decrease whose key
// Primary is >= bound is ignored. The default is core.InfCost (inactive).
// The Dijkstra driver never sets this; it exists for direct STOCPQ callers.
func WithBound(bound core.Cost32) Option {
	return func(s *STOCPQ) {
		s.bound = bound
	}
}

// STOCPQ is a block-structured, lazily-decreasing priority queue
// implementing core.PQ.
//
// STOCPQ is not safe for concurrent use.
type STOCPQ struct {
	batchBlocks  [][]item // front-consumed, FIFO across blocks
	sortedBlocks [][]item // back-consumed, LIFO

	active    []item
	activePos int

	best []optKey

	blockSize uint32
	bound     core.Cost32
	live      int
	m         core.PQMetrics
}

// New returns an empty STOCPQ configured by opts.
func New(opts ...Option) *STOCPQ {
	s := &STOCPQ{blockSize: defaultBlockSize, bound: core.InfCost}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *STOCPQ) ensureBestSize(n int) {
	if n < len(s.best) {
		return
	}
	grown := make([]optKey, n+1)
	copy(grown, s.best)
	s.best = grown
}

// Reserve ensures node-indexed metadata can address any u < n without
// reallocating on the next Push/Decrease.
func (s *STOCPQ) Reserve(n int) {
	if n > 0 {
		s.ensureBestSize(n - 1)
	}
}

// Clear discards every block, resets the best table, and resets all
// metrics.
func (s *STOCPQ) Clear() {
	s.batchBlocks = nil
	s.sortedBlocks = nil
	s.active = nil
	s.activePos = 0
	for i := range s.best {
		s.best[i] = optKey{}
	}
	s.live = 0
	s.m = core.PQMetrics{}
}

// Empty reports whether no live entry remains. Like Top, it activates the
// next block and discards stale entries at the cursor, so stale physical
// entries alone leave the queue empty and a false result means Pop returns
// a live entry.
func (s *STOCPQ) Empty() bool {
	for {
		if !s.ensureActive() {
			return true
		}
		if s.skipStaleForward() {
			return false
		}
	}
}

// Size returns the approximate number of live entries. It may transiently
// over-count because stale physical entries are not eagerly removed.
func (s *STOCPQ) Size() int { return s.live }

func (s *STOCPQ) appendUnsorted(it item) {
	if len(s.sortedBlocks) == 0 || uint32(len(s.sortedBlocks[len(s.sortedBlocks)-1])) >= s.blockSize {
		s.sortedBlocks = append(s.sortedBlocks, make([]item, 0, s.blockSize))
		s.m.Moves++ // new block allocation
	}
	last := len(s.sortedBlocks) - 1
	s.sortedBlocks[last] = append(s.sortedBlocks[last], it)
	s.m.Moves++ // append
}

// Push inserts u with key k, or delegates to Decrease if u is already
// present. Dropped silently if k.Primary >= bound.
func (s *STOCPQ) Push(u core.NodeId, k core.Key) {
	if k.Primary >= s.bound {
		return
	}
	s.ensureBestSize(int(u))
	if s.best[u].ok {
		s.Decrease(u, k)
		return
	}
	s.best[u] = optKey{key: k, ok: true}
	s.appendUnsorted(item{node: u, key: k})
	s.live++
	s.m.Pushes++
}

// Decrease records k as u's new best key iff k is strictly smaller than the
// current best (or u is absent), appending a fresh physical entry and
// leaving any prior entry to be discarded later as stale. Dropped silently
// if k.Primary >= bound.
func (s *STOCPQ) Decrease(u core.NodeId, k core.Key) {
	if k.Primary >= s.bound {
		return
	}
	s.ensureBestSize(int(u))
	b := s.best[u]
	if !b.ok || k.Less(b.key) {
		s.best[u] = optKey{key: k, ok: true}
		s.appendUnsorted(item{node: u, key: k})
		s.live++
		s.m.Decreases++
	}
}

// ensureActive makes sure there is a sorted active block to consume from,
// pulling the batch front, else the unsorted stack's top, sorting it in
// place. Returns false if no block remains.
func (s *STOCPQ) ensureActive() bool {
	if s.activePos < len(s.active) {
		return true
	}
	s.active = nil
	s.activePos = 0

	switch {
	case len(s.batchBlocks) > 0:
		s.active = s.batchBlocks[0]
		s.batchBlocks = s.batchBlocks[1:]
		s.m.Moves++
	case len(s.sortedBlocks) > 0:
		last := len(s.sortedBlocks) - 1
		s.active = s.sortedBlocks[last]
		s.sortedBlocks = s.sortedBlocks[:last]
		s.m.Moves++
	default:
		return false
	}

	sort.Slice(s.active, func(i, j int) bool {
		s.m.Scans++
		return s.active[i].key.Less(s.active[j].key)
	})
	if len(s.active) > 1 {
		s.m.Moves += uint64(len(s.active) - 1)
	}
	return true
}

// skipStaleForward advances activePos past entries whose stored key no
// longer matches best[u], discarding each as stale.
func (s *STOCPQ) skipStaleForward() bool {
	for s.activePos < len(s.active) {
		it := s.active[s.activePos]
		b := s.best[it.node]
		if b.ok && !b.key.Less(it.key) && !it.key.Less(b.key) {
			return true // it.key == best[u]: live
		}
		s.activePos++
		if s.live > 0 {
			s.live--
		}
		s.m.Moves++ // stale discard
	}
	return false
}

// Top repeatedly prepares the active block and skips stale entries, then
// returns the live entry at the front without consuming it. Returns the
// sentinel (0, Key{Primary: core.InfCost}) if the queue is empty.
func (s *STOCPQ) Top() (core.NodeId, core.Key) {
	for {
		if !s.ensureActive() {
			return 0, core.Key{Primary: core.InfCost}
		}
		if s.skipStaleForward() {
			it := s.active[s.activePos]
			return it.node, it.key
		}
	}
}

// Pop behaves as Top, then consumes the entry: the cursor advances, best[u]
// is cleared, and live decrements. Returns the sentinel (0, Key{Primary:
// core.InfCost}) if the queue is empty.
func (s *STOCPQ) Pop() (core.NodeId, core.Key) {
	for {
		if !s.ensureActive() {
			return 0, core.Key{Primary: core.InfCost}
		}
		if s.skipStaleForward() {
			it := s.active[s.activePos]
			s.activePos++
			if s.live > 0 {
				s.live--
			}
			s.best[it.node] = optKey{}
			s.m.Pops++
			s.m.Moves++ // consume
			return it.node, it.key
		}
	}
}

// Contains reports whether u currently has a non-empty best entry.
func (s *STOCPQ) Contains(u core.NodeId) bool {
	return int(u) < len(s.best) && s.best[u].ok
}

// KeyOf returns u's current best key and true, or the zero Key and false if
// u is absent.
func (s *STOCPQ) KeyOf(u core.NodeId) (core.Key, bool) {
	if !s.Contains(u) {
		return core.Key{}, false
	}
	return s.best[u].key, true
}

// Metrics returns a snapshot of the accumulated PQMetrics.
func (s *STOCPQ) Metrics() core.PQMetrics { return s.m }

// ResetMetrics zeroes all counters without touching queue contents.
func (s *STOCPQ) ResetMetrics() { s.m = core.PQMetrics{} }
