package testutil

import (
	"math/rand"
	"sort"
	"sync"

	"github.com/hupe1980/hammingheap/distance"
)

// SearchResult represents a search result.
type SearchResult struct {
	ID       uint32
	Distance int
}

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Uint64 returns a pseudo-random uint64.
func (r *RNG) Uint64() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Uint64()
}

// Distances returns n pseudo-random distances in [0, distances).
func (r *RNG) Distances(n, distances int) []int {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]int, n)
	for i := range out {
		out[i] = r.rand.Intn(distances)
	}
	return out
}

// Code returns a random code of codeLen bytes.
func (r *RNG) Code(codeLen int) []byte {
	r.mu.Lock()
	defer r.mu.Unlock()

	code := make([]byte, codeLen)
	_, _ = r.rand.Read(code)
	return code
}

// Codes generates num random codes of codeLen bytes.
// Uses a single backing array for efficiency.
func (r *RNG) Codes(num, codeLen int) [][]byte {
	r.mu.Lock()
	defer r.mu.Unlock()

	data := make([]byte, num*codeLen)
	_, _ = r.rand.Read(data)

	codes := make([][]byte, num)
	for i := range num {
		codes[i] = data[i*codeLen : (i+1)*codeLen : (i+1)*codeLen]
	}
	return codes
}

// FlipBits returns a copy of code with n distinct random bits flipped, so
// that its Hamming distance to code is exactly n (n is capped at the bit width).
func (r *RNG) FlipBits(code []byte, n int) []byte {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]byte, len(code))
	copy(out, code)
	perm := r.rand.Perm(len(code) * 8)
	for _, bit := range perm[:min(n, len(perm))] {
		out[bit/8] ^= 1 << (bit % 8)
	}
	return out
}

// ExactTopK returns the k codes closest to query by brute force, sorted by
// distance and then by ID.
func ExactTopK(query []byte, codes [][]byte, k int) []SearchResult {
	results := make([]SearchResult, len(codes))
	for i, c := range codes {
		results[i] = SearchResult{ID: uint32(i), Distance: distance.Hamming(query, c)}
	}
	sort.Slice(results, func(i, j int) bool {
		if results[i].Distance != results[j].Distance {
			return results[i].Distance < results[j].Distance
		}
		return results[i].ID < results[j].ID
	})
	if k < len(results) {
		results = results[:k]
	}
	return results
}

// KNNGraph builds an exact k-nearest-neighbor graph over codes, returning
// the neighbor IDs of every node.
func KNNGraph(codes [][]byte, degree int) [][]uint32 {
	graph := make([][]uint32, len(codes))
	for i, c := range codes {
		nn := ExactTopK(c, codes, degree+1)
		neighbors := make([]uint32, 0, degree)
		for _, r := range nn {
			if r.ID != uint32(i) && len(neighbors) < degree {
				neighbors = append(neighbors, r.ID)
			}
		}
		graph[i] = neighbors
	}
	return graph
}

// SortedDistances returns the distances of results in ascending order.
func SortedDistances(results []SearchResult) []int {
	out := make([]int, len(results))
	for i, r := range results {
		out[i] = r.Distance
	}
	sort.Ints(out)
	return out
}

// ComputeRecall computes recall@k by comparing approximate results against ground truth.
// Results at the ground truth's k-th distance count as hits, since ties at the
// boundary may be broken either way.
func ComputeRecall(groundTruth, approximate []SearchResult) float64 {
	if len(groundTruth) == 0 || len(approximate) == 0 {
		if len(groundTruth) == 0 && len(approximate) == 0 {
			return 1.0
		}
		return 0.0
	}

	k := min(len(approximate), len(groundTruth))
	bound := groundTruth[k-1].Distance

	hits := 0
	for _, r := range approximate[:k] {
		if r.Distance <= bound {
			hits++
		}
	}

	return float64(hits) / float64(k)
}
