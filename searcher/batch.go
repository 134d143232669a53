package searcher

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/hammingheap/queue"
)

// Query is one search of a batch.
type Query struct {
	Entries  []uint32
	Distance DistanceFunc
}

// SearchBatch runs the queries concurrently, each on its own pooled
// Searcher, with at most workers searches in flight (GOMAXPROCS if
// workers <= 0). Results are returned in query order. The first error
// cancels the remaining searches.
func SearchBatch(ctx context.Context, g Graph, distances int, queries []Query, k, workers int, opts ...Options) ([][]queue.Result[uint32], error) {
	if k <= 0 {
		return nil, ErrInvalidK
	}
	if distances <= 0 {
		return nil, queue.ErrZeroDistances
	}
	o := DefaultOptions
	if len(opts) > 0 {
		o = opts[0]
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	results := make([][]queue.Result[uint32], len(queries))

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)

	for i, q := range queries {
		eg.Go(func() error {
			s := AcquireSearcher(distances)
			defer ReleaseSearcher(s)

			if err := s.Search(ctx, g, q.Entries, q.Distance, k, o); err != nil {
				return err
			}
			results[i] = s.Results.AppendResults(make([]queue.Result[uint32], 0, s.Results.Len()))
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
