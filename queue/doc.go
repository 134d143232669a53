// Package queue provides bucket-array priority queues for nearest-neighbor
// search in Hamming space.
//
// Hamming distances between n-bit keys are integers in [0, n], so a queue
// over them needs only n+1 buckets, one per distance. Both queues in this
// package index a bucket array directly by distance instead of maintaining
// a comparison-based heap, giving amortized O(1) operations.
//
//   - MinQueue is an unbounded min-priority queue. It yields items in
//     non-decreasing distance order and drives the frontier of a
//     best-first search.
//   - TopK keeps the k smallest-distance items pushed so far. Its Worst
//     distance is the pruning threshold of the same search.
//
// # Distances
//
// Both queues are configured with the number of distinct distances D.
// For an n-bit key this is n+1:
//
//	q := queue.NewMinQueue[uint32](129) // 128-bit codes
//
// Pushing a distance outside [0, D) panics with a *RangeError. Distances are
// never clamped.
//
// # Ordering
//
// Items at the same distance are removed last-in-first-out. The order of
// equal-distance items, and which of several equally worst items TopK
// evicts, is unspecified.
//
// # Memory
//
// Buckets grow lazily and keep their capacity across Clear, so a queue can
// be reused for every query without steady-state allocation.
//
// Queues are not safe for concurrent use.
package queue
