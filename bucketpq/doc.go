// Package bucketpq implements BucketPQ, a Dial-style circular bucket queue
// for monotone integer keys bounded by a maximum edge weight.
//
// Layout: a circular array of K = W+1 buckets, where W is the maximum
// possible edge weight in the graph (for the MovingAI 4/8-neighbour grid,
// W is 10 or 14). Each bucket holds a sequence of NodeIds in arrival order.
// A cursor, curMin, tracks the smallest key that could still be present;
// the bucket index for a key is Primary mod K.
//
// Monotone-extraction contract: the caller must never re-insert a key
// strictly smaller than the last key returned by Pop. Dijkstra with
// non-negative weights satisfies this; BucketPQ does not itself verify it.
// Pop returns the front of the first non-empty bucket at or after curMin,
// so entries come out in key order only while every live key lies within W
// of the smallest one; keys further apart share buckets modulo K and are
// not told apart.
//
// Metrics: Decrease counts one Decreases and one Moves (the unlink+relink).
// Pop's cursor advance counts one Scans per empty bucket it skips. Top never
// touches metrics.
//
// Complexity: O(1) amortised Push/Pop (cursor advance amortised against the
// key range actually swept); Decrease is O(bucket length).
package bucketpq
