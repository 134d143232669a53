package hammingheap

import (
	"github.com/RoaringBitmap/roaring/v2"
)

type options struct {
	logger           *Logger
	metricsCollector MetricsCollector
	workers          int
	initialCapacity  int
}

// Option configures a Flat.
type Option func(*options)

// WithLogger sets the logger. If nil is passed, logging is disabled.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}

// WithMetricsCollector sets the metrics collector.
// If nil is passed, NoopMetricsCollector is used.
func WithMetricsCollector(m MetricsCollector) Option {
	return func(o *options) {
		if m == nil {
			m = NoopMetricsCollector{}
		}
		o.metricsCollector = m
	}
}

// WithWorkers limits the number of concurrent searches in SearchBatch.
// Values <= 0 use GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}

// WithInitialCapacity preallocates storage for n codes.
func WithInitialCapacity(n int) Option {
	return func(o *options) {
		o.initialCapacity = n
	}
}

type searchOptions struct {
	filter *roaring.Bitmap
}

// SearchOption configures a single search.
type SearchOption func(*searchOptions)

// WithFilter restricts the search to IDs contained in allow.
// A nil bitmap disables filtering.
func WithFilter(allow *roaring.Bitmap) SearchOption {
	return func(o *searchOptions) {
		o.filter = allow
	}
}
