package queue

import (
	"testing"

	"github.com/hupe1980/hammingheap/testutil"
)

func BenchmarkMinQueue_PushPop(b *testing.B) {
	distances := testutil.NewRNG(1).Distances(1024, 129)
	q := NewMinQueue[uint32](129)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for j, d := range distances {
			q.Push(d, uint32(j))
		}
		for {
			if _, _, ok := q.Pop(); !ok {
				break
			}
		}
		q.Clear()
	}
}

func BenchmarkTopK_Push(b *testing.B) {
	distances := testutil.NewRNG(1).Distances(1024, 129)
	q := NewTopK[uint32](129, 10)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for j, d := range distances {
			q.Push(d, uint32(j))
		}
		q.Clear()
	}
}

func BenchmarkTopK_PushAtCapacity(b *testing.B) {
	distances := testutil.NewRNG(1).Distances(1024, 129)
	q := NewTopK[uint32](129, 10)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		j := 0
		for ; j < len(distances) && !q.AtCapacity(); j++ {
			q.Push(distances[j], uint32(j))
		}
		for ; j < len(distances); j++ {
			q.PushAtCapacity(distances[j], uint32(j))
		}
		q.Clear()
	}
}
