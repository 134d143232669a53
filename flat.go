package hammingheap

import (
	"context"
	"fmt"
	"runtime"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/hammingheap/distance"
	"github.com/hupe1980/hammingheap/queue"
)

// ctxCheckInterval is the number of scanned codes between context checks.
const ctxCheckInterval = 1024

// Result is a single search hit.
type Result struct {
	ID       uint32
	Distance int
}

// Flat stores fixed-width binary codes and answers exact k-nearest-neighbor
// queries by scanning every code into a queue.TopK.
//
// Flat is safe for concurrent use. Searches run in parallel with each other
// and are serialized with Add.
type Flat struct {
	mu      sync.RWMutex
	bits    int
	codeLen int
	data    []byte // codes back to back, ID i at data[i*codeLen:]

	topPool sync.Pool // *queue.TopK[uint32], one per in-flight search

	logger  *Logger
	metrics MetricsCollector
	workers int
}

// New creates an empty Flat for codes of the given bit width.
func New(bits int, opts ...Option) (*Flat, error) {
	if bits <= 0 || bits%8 != 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidBits, bits)
	}

	o := options{
		logger:           NoopLogger(),
		metricsCollector: NoopMetricsCollector{},
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.workers <= 0 {
		o.workers = runtime.GOMAXPROCS(0)
	}

	codeLen := bits / 8
	f := &Flat{
		bits:    bits,
		codeLen: codeLen,
		data:    make([]byte, 0, max(o.initialCapacity, 0)*codeLen),
		logger:  o.logger.WithBits(bits),
		metrics: o.metricsCollector,
		workers: o.workers,
	}
	distances := distance.Distances(bits)
	f.topPool.New = func() any {
		return queue.NewTopK[uint32](distances, 1)
	}
	return f, nil
}

// Bits returns the code width in bits.
func (f *Flat) Bits() int { return f.bits }

// Distances returns the number of distinct distances between codes.
func (f *Flat) Distances() int { return distance.Distances(f.bits) }

// Len returns the number of stored codes.
func (f *Flat) Len() int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return len(f.data) / f.codeLen
}

// Add stores a copy of code and returns its ID. IDs are assigned sequentially.
func (f *Flat) Add(ctx context.Context, code []byte) (uint32, error) {
	start := time.Now()
	id, err := f.add(code)
	f.metrics.RecordAdd(time.Since(start), err)
	f.logger.LogAdd(ctx, id, err)
	return id, err
}

func (f *Flat) add(code []byte) (uint32, error) {
	if len(code) != f.codeLen {
		return 0, &ErrCodeLengthMismatch{Expected: f.codeLen, Actual: len(code)}
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	id := uint32(len(f.data) / f.codeLen)
	f.data = append(f.data, code...)
	return id, nil
}

// Code returns a copy of the code stored under id.
func (f *Flat) Code(id uint32) ([]byte, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	if int(id) >= len(f.data)/f.codeLen {
		return nil, fmt.Errorf("%w: id %d", ErrNotFound, id)
	}
	out := make([]byte, f.codeLen)
	copy(out, f.code(id))
	return out, nil
}

func (f *Flat) code(id uint32) []byte {
	off := int(id) * f.codeLen
	return f.data[off : off+f.codeLen]
}

// Search returns the k codes closest to query in ascending distance order.
// Codes at equal distance are returned in unspecified order.
func (f *Flat) Search(ctx context.Context, query []byte, k int, opts ...SearchOption) ([]Result, error) {
	start := time.Now()
	res, err := f.search(ctx, query, k, opts...)
	f.metrics.RecordSearch(k, time.Since(start), err)
	f.logger.LogSearch(ctx, k, len(res), err)
	return res, err
}

func (f *Flat) search(ctx context.Context, query []byte, k int, opts ...SearchOption) ([]Result, error) {
	if k <= 0 {
		return nil, ErrInvalidK
	}
	if len(query) != f.codeLen {
		return nil, &ErrCodeLengthMismatch{Expected: f.codeLen, Actual: len(query)}
	}

	var so searchOptions
	for _, opt := range opts {
		opt(&so)
	}

	top := f.topPool.Get().(*queue.TopK[uint32])
	defer func() {
		top.Clear()
		f.topPool.Put(top)
	}()
	top.Clear()
	top.SetCapacity(k)

	f.mu.RLock()
	defer f.mu.RUnlock()

	n := uint32(len(f.data) / f.codeLen)
	for id := range n {
		if id%ctxCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		if so.filter != nil && !so.filter.Contains(id) {
			continue
		}
		d := distance.Hamming(query, f.code(id))
		if top.AtCapacity() {
			top.PushAtCapacity(d, id)
		} else {
			top.Push(d, id)
		}
	}

	results := make([]Result, 0, top.Len())
	for d, id := range top.All() {
		results = append(results, Result{ID: id, Distance: d})
	}
	return results, nil
}

// SearchBatch runs Search for every query concurrently, bounded by
// WithWorkers. Results are returned in query order. The first failing
// query cancels the rest and its error is returned.
func (f *Flat) SearchBatch(ctx context.Context, queries [][]byte, k int, opts ...SearchOption) ([][]Result, error) {
	start := time.Now()
	results, err := f.searchBatch(ctx, queries, k, opts...)

	failed := 0
	if err != nil {
		failed = 1
	}
	f.metrics.RecordBatchSearch(len(queries), failed, time.Since(start))
	f.logger.LogBatchSearch(ctx, len(queries), k, err)
	return results, err
}

func (f *Flat) searchBatch(ctx context.Context, queries [][]byte, k int, opts ...SearchOption) ([][]Result, error) {
	if k <= 0 {
		return nil, ErrInvalidK
	}

	results := make([][]Result, len(queries))

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(f.workers)

	for i, q := range queries {
		eg.Go(func() error {
			res, err := f.search(ctx, q, k, opts...)
			if err != nil {
				return fmt.Errorf("query %d: %w", i, err)
			}
			results[i] = res
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
