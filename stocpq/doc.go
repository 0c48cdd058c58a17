// Package stocpq implements STOCPQ, a block-structured queue that defers
// sorting until extraction and resolves decrease-key lazily via a per-node
// "current best" table.
//
// Layout:
//
//   - A front-consumed queue of "batch blocks" (FIFO across blocks). Nothing
//     in this package adds blocks to it, since partially-consumed blocks are
//     never re-queued (see Partial consumption below), so in practice every
//     block is taken from the unsorted-blocks stack.
//   - A back-consumed stack of "unsorted blocks" that Push/Decrease append
//     new items to. A block's maximum size is B (configurable, default 256).
//   - An "active block" — the one currently being consumed — with a position
//     cursor.
//   - A per-node best table mapping NodeId to either "absent" or the most
//     recent Key assigned for it. This table is the sole source of truth for
//     logical membership (Contains).
//   - An optional bound: any key with Primary >= bound is silently dropped.
//
// Decrease-key is lazy: the previous physical entry for a node is left in
// place and discarded later as stale, once extraction reaches it and finds
// it no longer matches best[u].
//
// Partial consumption: when a Pop leaves the active block non-empty,
// subsequent pops continue from the cursor; the partially-consumed block is
// never returned to the queue. When fully consumed, the next block comes
// from the batch front, else the unsorted-blocks stack.
//
// Metrics: each block allocation, each append, and each block-to-active
// transfer counts one Moves; each comparison performed while sorting a
// newly activated block counts one Scans, and the sort additionally
// contributes roughly size-1 Moves as a conservative approximation of
// element placements (this makes Scans implementation-relative — see
// DESIGN.md). Stale discards and consumed pops each count one Moves.
package stocpq
