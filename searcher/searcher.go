package searcher

import (
	"sync"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/hupe1980/hammingheap/queue"
)

// DefaultDistances is the number of distances a pooled Searcher starts with
// (128-bit codes).
const DefaultDistances = 129

// Searcher is a reusable execution context for best-first search.
// It owns all scratch memory required for search, eliminating heap allocations
// in the steady state.
//
// Searcher is NOT thread-safe. It is intended to be owned by a single goroutine
// during a search operation.
type Searcher struct {
	// Frontier holds the nodes still to be expanded, closest first.
	Frontier *queue.MinQueue[uint32]

	// Results keeps the k closest nodes found so far.
	Results *queue.TopK[uint32]

	// Visited tracks nodes whose distance has been evaluated.
	Visited *roaring.Bitmap

	// Expanded counts nodes popped from the frontier and expanded.
	Expanded int

	// Evaluated counts distance evaluations.
	Evaluated int
}

var searcherPool = sync.Pool{
	New: func() any {
		return NewSearcher(DefaultDistances)
	},
}

// AcquireSearcher retrieves a Searcher from the pool configured for the
// given number of distances.
func AcquireSearcher(distances int) *Searcher {
	s := searcherPool.Get().(*Searcher)
	s.SetDistances(distances)
	return s
}

// ReleaseSearcher resets the Searcher and returns it to the pool.
func ReleaseSearcher(s *Searcher) {
	s.Reset()
	searcherPool.Put(s)
}

// NewSearcher creates a new Searcher for distances in [0, distances).
func NewSearcher(distances int) *Searcher {
	return &Searcher{
		Frontier: queue.NewMinQueue[uint32](distances),
		Results:  queue.NewTopK[uint32](distances, 1),
		Visited:  roaring.New(),
	}
}

// Distances returns the number of distances the Searcher accepts.
func (s *Searcher) Distances() int {
	return s.Frontier.Distances()
}

// SetDistances reconfigures both queues if the number of distances changed.
// Reconfiguring drops the retained bucket memory.
func (s *Searcher) SetDistances(distances int) {
	if s.Frontier.Distances() == distances {
		return
	}
	s.Frontier.SetDistances(distances)
	s.Results.SetDistances(distances)
}

// Reset clears the searcher state for reuse without freeing memory.
func (s *Searcher) Reset() {
	s.Frontier.Clear()
	s.Results.Clear()
	s.Visited.Clear()
	s.Expanded = 0
	s.Evaluated = 0
}
