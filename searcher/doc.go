// Package searcher runs best-first k-nearest-neighbor searches over a
// neighbor graph in Hamming space.
//
// A Searcher owns the scratch state of one search: a queue.MinQueue frontier
// ordered by distance to the query, a queue.TopK result set whose Worst
// distance bounds further exploration, and a visited set. Searchers are
// reused across queries through AcquireSearcher and ReleaseSearcher, so the
// bucket memory of both queues survives between searches.
//
// The graph itself and the distance function are supplied by the caller.
package searcher
