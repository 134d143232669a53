package queue

import "iter"

// MinQueue is an unbounded min-priority queue over bounded integer distances.
//
// Items are popped in non-decreasing distance order. The cursor best only
// moves forward while popping, so a sequence of pops costs O(D) in total on
// top of O(1) per item. A push below best moves the cursor back, which keeps
// the queue correct for non-monotonic callers at the cost of rescanning.
//
// The zero value has no buckets; call SetDistances or use NewMinQueue.
type MinQueue[T any] struct {
	buckets buckets[T]
	best    int // every bucket below best is empty
	size    int
}

// NewMinQueue returns an empty queue accepting distances in [0, distances).
func NewMinQueue[T any](distances int) *MinQueue[T] {
	q := &MinQueue[T]{}
	q.SetDistances(distances)
	return q
}

// SetDistances reconfigures the queue with the given number of distances
// and discards all items. It does not keep the allocated memory, so do not
// call it per search; use Clear instead.
//
// It panics with ErrZeroDistances if distances <= 0.
func (q *MinQueue[T]) SetDistances(distances int) {
	q.buckets = newBuckets[T](distances)
	q.best = 0
	q.size = 0
}

// Distances returns the number of distinct distances the queue accepts.
func (q *MinQueue[T]) Distances() int { return len(q.buckets) }

// Len returns the number of items in the queue.
func (q *MinQueue[T]) Len() int { return q.size }

// IsEmpty reports whether the queue holds no items.
func (q *MinQueue[T]) IsEmpty() bool { return q.size == 0 }

// Push inserts item at distance. It panics with a *RangeError if distance
// is outside [0, Distances()).
func (q *MinQueue[T]) Push(distance int, item T) {
	q.buckets.check(distance)
	if distance < q.best {
		q.best = distance
	}
	q.buckets.push(distance, item)
	q.size++
}

// Pop removes an item with the smallest distance. ok is false when the
// queue is empty.
func (q *MinQueue[T]) Pop() (distance int, item T, ok bool) {
	if len(q.buckets) == 0 {
		return 0, item, false
	}
	for {
		if item, ok = q.buckets.pop(q.best); ok {
			q.size--
			return q.best, item, true
		}
		if q.best == len(q.buckets)-1 {
			return 0, item, false
		}
		q.best++
	}
}

// Best returns the smallest distance holding an item without modifying the queue.
func (q *MinQueue[T]) Best() (int, bool) {
	return q.buckets.firstFrom(q.best)
}

// Clear removes all items while keeping the allocated bucket memory.
func (q *MinQueue[T]) Clear() {
	q.buckets.reset(q.best, q.buckets.last())
	q.best = 0
	q.size = 0
}

// All iterates over the queued items in ascending distance order without
// removing them.
func (q *MinQueue[T]) All() iter.Seq2[int, T] {
	return q.buckets.all(q.best, q.buckets.last())
}

// AllMut is like All but yields pointers so items can be modified in place.
func (q *MinQueue[T]) AllMut() iter.Seq2[int, *T] {
	return q.buckets.allMut(q.best, q.buckets.last())
}

func (q *MinQueue[T]) String() string {
	return q.buckets.format("MinQueue")
}
