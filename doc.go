// Package hammingheap provides bucket-array priority queues and exact
// nearest-neighbor search for binary codes in Hamming space.
//
// The Hamming distance between two n-bit codes is an integer in [0, n].
// Because there are only n+1 possible distances, the queues in package queue
// replace a comparison-based heap with one bucket per distance:
//
//   - queue.MinQueue yields items in non-decreasing distance order and drives
//     the frontier of a best-first search.
//   - queue.TopK keeps the k closest items seen so far; its worst distance is
//     the pruning threshold of the search.
//
// Package searcher wires both into a reusable best-first graph search, and
// Flat in this package uses queue.TopK for exact k-NN over a flat list of
// codes.
//
// # Quick Start
//
//	ctx := context.Background()
//	f, _ := hammingheap.New(128)  // 128-bit codes, 16 bytes each
//	id, _ := f.Add(ctx, code)
//	results, _ := f.Search(ctx, query, 10)
//	for _, r := range results {
//	    fmt.Println(r.ID, r.Distance)
//	}
//
// Restrict a search to a subset of IDs with a roaring bitmap:
//
//	allow := roaring.BitmapOf(1, 2, 3)
//	results, _ := f.Search(ctx, query, 10, hammingheap.WithFilter(allow))
//
// Search many queries concurrently:
//
//	batch, _ := f.SearchBatch(ctx, queries, 10)
//
// # Observability
//
// Use WithLogger and WithMetricsCollector to plug in structured logging
// (log/slog) and metrics.
package hammingheap
