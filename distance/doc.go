// Package distance provides Hamming distance calculations for binary codes.
//
// The Hamming distance between two n-bit codes is an integer in [0, n], so
// there are n+1 possible distances. Distances reports that count and is the
// value to configure queue.MinQueue and queue.TopK with.
//
// # Usage
//
//	d := distance.Hamming(a, b)            // []byte codes
//	d64 := distance.Hamming64(x, y)        // single 64-bit words
//	q := queue.NewMinQueue[uint32](distance.Distances(128))
package distance
