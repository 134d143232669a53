package queue

import (
	"fmt"
	"iter"
	"strings"
)

// buckets holds one slice of items per distance.
type buckets[T any] [][]T

func newBuckets[T any](distances int) buckets[T] {
	if distances <= 0 {
		panic(ErrZeroDistances)
	}
	return make(buckets[T], distances)
}

// last returns the largest valid distance, or 0 when unconfigured.
func (b buckets[T]) last() int {
	if len(b) == 0 {
		return 0
	}
	return len(b) - 1
}

func (b buckets[T]) check(distance int) {
	if uint(distance) >= uint(len(b)) {
		panic(&RangeError{Distance: distance, Distances: len(b)})
	}
}

func (b buckets[T]) push(distance int, item T) {
	b[distance] = append(b[distance], item)
}

// pop removes the most recently pushed item at distance.
func (b buckets[T]) pop(distance int) (T, bool) {
	var zero T
	s := b[distance]
	n := len(s)
	if n == 0 {
		return zero, false
	}
	item := s[n-1]
	s[n-1] = zero // release for GC
	b[distance] = s[:n-1]
	return item, true
}

// truncate keeps the first n items at distance.
func (b buckets[T]) truncate(distance, n int) {
	s := b[distance]
	clear(s[n:])
	b[distance] = s[:n]
}

// reset empties buckets [lo, hi] while keeping their capacity.
func (b buckets[T]) reset(lo, hi int) {
	if len(b) == 0 {
		return
	}
	for d := lo; d <= hi; d++ {
		b.truncate(d, 0)
	}
}

// firstFrom returns the smallest non-empty distance >= from.
func (b buckets[T]) firstFrom(from int) (int, bool) {
	for d := from; d < len(b); d++ {
		if len(b[d]) > 0 {
			return d, true
		}
	}
	return 0, false
}

// lastFrom returns the largest non-empty distance <= from.
func (b buckets[T]) lastFrom(from int) (int, bool) {
	for d := min(from, len(b)-1); d >= 0; d-- {
		if len(b[d]) > 0 {
			return d, true
		}
	}
	return 0, false
}

func (b buckets[T]) all(lo, hi int) iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for d := lo; d <= hi && d < len(b); d++ {
			for _, item := range b[d] {
				if !yield(d, item) {
					return
				}
			}
		}
	}
}

func (b buckets[T]) allMut(lo, hi int) iter.Seq2[int, *T] {
	return func(yield func(int, *T) bool) {
		for d := lo; d <= hi && d < len(b); d++ {
			s := b[d]
			for i := range s {
				if !yield(d, &s[i]) {
					return
				}
			}
		}
	}
}

// format renders the non-empty buckets as "name{d:[items] ...}".
func (b buckets[T]) format(name string) string {
	var sb strings.Builder
	sb.WriteString(name)
	sb.WriteByte('{')
	first := true
	for d, s := range b {
		if len(s) == 0 {
			continue
		}
		if !first {
			sb.WriteByte(' ')
		}
		first = false
		fmt.Fprintf(&sb, "%d:%v", d, s)
	}
	sb.WriteByte('}')
	return sb.String()
}
