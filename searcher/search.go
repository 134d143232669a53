package searcher

import (
	"context"
	"errors"
	"log/slog"

	"github.com/hupe1980/hammingheap/queue"
)

// ErrInvalidK is returned when k is not positive.
var ErrInvalidK = errors.New("searcher: k must be positive")

// Graph provides the out-edges of each node.
type Graph interface {
	Neighbors(id uint32) []uint32
}

// AdjacencyList is a Graph stored as one neighbor slice per node.
type AdjacencyList [][]uint32

// Neighbors implements Graph. Unknown nodes have no neighbors.
func (a AdjacencyList) Neighbors(id uint32) []uint32 {
	if int(id) >= len(a) {
		return nil
	}
	return a[id]
}

// DistanceFunc returns the distance from the query to node id.
type DistanceFunc func(id uint32) int

// Options tunes a search.
type Options struct {
	// ExpandLimit caps the number of expanded nodes. Zero means no limit.
	ExpandLimit int

	// CheckInterval is the number of expansions between context checks.
	// Zero disables the checks.
	CheckInterval int

	// Logger receives a debug record per completed search. Nil disables logging.
	Logger *slog.Logger
}

// DefaultOptions are used by Search and SearchBatch when no options are given.
var DefaultOptions = Options{
	CheckInterval: 64,
}

// Search finds the k nodes closest to the query, starting from entries.
// The results are left in s.Results.
//
// Expansion stops once the frontier's best distance exceeds the worst
// retained result, since a best-first frontier cannot improve on it.
func (s *Searcher) Search(ctx context.Context, g Graph, entries []uint32, dist DistanceFunc, k int, opts Options) error {
	if k <= 0 {
		return ErrInvalidK
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	s.Reset()
	s.Results.SetCapacity(k)

	for _, id := range entries {
		if err := s.visit(id, dist); err != nil {
			return err
		}
	}

	for {
		d, id, ok := s.Frontier.Pop()
		if !ok {
			break
		}
		if s.Results.AtCapacity() && d > s.Results.Worst() {
			break
		}
		if opts.ExpandLimit > 0 && s.Expanded >= opts.ExpandLimit {
			break
		}
		s.Expanded++
		if opts.CheckInterval > 0 && s.Expanded%opts.CheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}

		for _, n := range g.Neighbors(id) {
			if err := s.visit(n, dist); err != nil {
				return err
			}
		}
	}

	if opts.Logger != nil {
		opts.Logger.DebugContext(ctx, "search completed",
			"k", k,
			"expanded", s.Expanded,
			"evaluated", s.Evaluated,
			"results", s.Results.Len(),
			"worst", s.Results.Worst(),
		)
	}
	return nil
}

// visit evaluates an unvisited node and offers it to both queues. Nodes no
// better than a full result set's worst distance are not explored further.
func (s *Searcher) visit(id uint32, dist DistanceFunc) error {
	if !s.Visited.CheckedAdd(id) {
		return nil
	}
	d := dist(id)
	s.Evaluated++
	if d < 0 || d >= s.Distances() {
		return &queue.RangeError{Distance: d, Distances: s.Distances()}
	}
	if s.Results.AtCapacity() && d > s.Results.Worst() {
		return nil
	}
	s.Frontier.Push(d, id)
	s.Results.Push(d, id)
	return nil
}

// Search runs a single search on a pooled Searcher and returns the results
// in ascending distance order.
func Search(ctx context.Context, g Graph, distances int, entries []uint32, dist DistanceFunc, k int, opts ...Options) ([]queue.Result[uint32], error) {
	if distances <= 0 {
		return nil, queue.ErrZeroDistances
	}
	o := DefaultOptions
	if len(opts) > 0 {
		o = opts[0]
	}

	s := AcquireSearcher(distances)
	defer ReleaseSearcher(s)

	if err := s.Search(ctx, g, entries, dist, k, o); err != nil {
		return nil, err
	}
	return s.Results.AppendResults(nil), nil
}
