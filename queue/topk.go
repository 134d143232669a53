package queue

import (
	"iter"
	"slices"
)

// Result pairs an item with its distance.
type Result[T any] struct {
	Distance int
	Item     T
}

// TopK keeps the capacity smallest-distance items pushed so far.
//
// TopK is not meant to be popped. Push items while searching, use Worst as
// the pruning threshold, then extract the survivors with Fill, AppendTo or
// All. Until the first time it holds capacity items, every push is accepted
// and Worst reports the largest possible distance.
//
// When several items share the worst distance, the one evicted is the most
// recently pushed of them. Callers must not rely on which tied item survives.
//
// The zero value must be configured with SetDistances and SetCapacity.
type TopK[T any] struct {
	buckets  buckets[T]
	capacity int
	size     int
	worst    int // at capacity, every bucket above worst is empty
}

// NewTopK returns an empty TopK accepting distances in [0, distances) and
// holding at most capacity items.
func NewTopK[T any](distances, capacity int) *TopK[T] {
	q := &TopK[T]{}
	q.SetDistances(distances)
	q.SetCapacity(capacity)
	return q
}

// SetDistances reconfigures the number of distances and discards all items.
// For n-bit keys pass n+1, since n itself is a possible distance.
//
// It panics with ErrZeroDistances if distances <= 0.
func (q *TopK[T]) SetDistances(distances int) {
	q.buckets = newBuckets[T](distances)
	q.worst = q.buckets.last()
	q.size = 0
}

// SetCapacity sets the maximum number of items. Lowering it below Len
// evicts the worst items so that Len equals the new capacity.
//
// It panics with ErrZeroCapacity if capacity <= 0.
func (q *TopK[T]) SetCapacity(capacity int) {
	if capacity <= 0 {
		panic(ErrZeroCapacity)
	}
	q.SetLen(capacity)
	q.capacity = capacity
	// A full queue needs the real worst distance, not the placeholder.
	q.worst = q.buckets.last()
	if q.size == q.capacity {
		q.updateWorst()
	}
}

// SetLen evicts the worst items until at most n remain. It does nothing if
// n >= Len. After a removal the queue accepts every push until it is full
// again.
func (q *TopK[T]) SetLen(n int) {
	if n <= 0 {
		q.buckets.reset(0, q.end())
		q.size = 0
		q.worst = q.buckets.last()
		return
	}
	if n >= q.size {
		return
	}
	remaining := q.size - n
	for d := q.end(); d >= 0 && remaining > 0; d-- {
		l := len(q.buckets[d])
		if l > remaining {
			q.buckets.truncate(d, l-remaining)
			break
		}
		remaining -= l
		q.buckets.truncate(d, 0)
	}
	q.size = n
	q.worst = q.buckets.last()
}

// Clear removes all items while keeping the allocated bucket memory.
//
// It panics with ErrNotConfigured if SetDistances was never called.
func (q *TopK[T]) Clear() {
	if len(q.buckets) == 0 {
		panic(ErrNotConfigured)
	}
	q.buckets.reset(0, q.end())
	q.size = 0
	q.worst = q.buckets.last()
}

// Len returns the number of items held.
func (q *TopK[T]) Len() int { return q.size }

// IsEmpty reports whether no items are held.
func (q *TopK[T]) IsEmpty() bool { return q.size == 0 }

// Cap returns the capacity.
func (q *TopK[T]) Cap() int { return q.capacity }

// Distances returns the number of distinct distances accepted.
func (q *TopK[T]) Distances() int { return len(q.buckets) }

// Worst returns the current eviction threshold. Until the queue is full
// this is Distances()-1, the worst possible distance.
func (q *TopK[T]) Worst() int { return q.worst }

// AtCapacity reports whether Len equals Cap.
func (q *TopK[T]) AtCapacity() bool { return q.size == q.capacity }

// Push offers item at distance and reports whether it was kept. Once the
// queue is full, an item is kept only if it is strictly better than Worst,
// in which case one worst item is evicted.
//
// It panics with a *RangeError if distance is outside [0, Distances()),
// even when the item would have been rejected.
func (q *TopK[T]) Push(distance int, item T) bool {
	q.buckets.check(distance)
	if q.size < q.capacity {
		q.buckets.push(distance, item)
		q.size++
		if q.size == q.capacity {
			q.updateWorst()
		}
		return true
	}
	return q.pushFull(distance, item)
}

// PushAtCapacity is Push for callers that already know AtCapacity is true,
// e.g. in a hot loop after the queue filled up. It skips the fill check on
// the common path. Calling it on a queue that is not full is a misuse but
// still behaves like Push.
func (q *TopK[T]) PushAtCapacity(distance int, item T) bool {
	q.buckets.check(distance)
	if q.size < q.capacity {
		return q.Push(distance, item)
	}
	return q.pushFull(distance, item)
}

func (q *TopK[T]) pushFull(distance int, item T) bool {
	if q.capacity == 0 {
		panic(ErrZeroCapacity)
	}
	if distance >= q.worst {
		return false
	}
	q.buckets.push(distance, item)
	q.removeWorst()
	return true
}

// Fill copies up to len(dst) items into dst in ascending distance order and
// returns the written prefix. The queue is not modified.
func (q *TopK[T]) Fill(dst []T) []T {
	n := min(len(dst), q.size)
	i := 0
	for _, item := range q.All() {
		if i == n {
			break
		}
		dst[i] = item
		i++
	}
	return dst[:n]
}

// AppendTo appends all items to dst in ascending distance order.
func (q *TopK[T]) AppendTo(dst []T) []T {
	dst = slices.Grow(dst, q.size)
	for _, item := range q.All() {
		dst = append(dst, item)
	}
	return dst
}

// AppendResults appends all items and their distances to dst in ascending
// distance order.
func (q *TopK[T]) AppendResults(dst []Result[T]) []Result[T] {
	dst = slices.Grow(dst, q.size)
	for d, item := range q.All() {
		dst = append(dst, Result[T]{Distance: d, Item: item})
	}
	return dst
}

// All iterates over the held items in ascending distance order.
func (q *TopK[T]) All() iter.Seq2[int, T] {
	return q.buckets.all(0, q.end())
}

// AllMut is like All but yields pointers so items can be modified in place.
func (q *TopK[T]) AllMut() iter.Seq2[int, *T] {
	return q.buckets.allMut(0, q.end())
}

func (q *TopK[T]) String() string {
	return q.buckets.format("TopK")
}

// end is the largest distance that may hold an item.
func (q *TopK[T]) end() int {
	if q.AtCapacity() {
		return q.worst
	}
	return q.buckets.last()
}

// updateWorst moves worst down to the largest non-empty bucket. If every
// bucket is empty it resets to the placeholder.
func (q *TopK[T]) updateWorst() {
	if d, ok := q.buckets.lastFrom(q.worst); ok {
		q.worst = d
		return
	}
	q.worst = q.buckets.last()
}

func (q *TopK[T]) removeWorst() {
	q.buckets.pop(q.worst)
	q.updateWorst()
}
