package distance

import (
	"encoding/binary"
	"math/bits"
)

// Func computes the distance between two codes of equal length.
type Func func(a, b []byte) int

// Hamming returns the number of differing bits between a and b.
// Assumes slices are the same length (caller's responsibility).
func Hamming(a, b []byte) int {
	var sum int
	for len(a) >= 8 {
		sum += bits.OnesCount64(binary.LittleEndian.Uint64(a) ^ binary.LittleEndian.Uint64(b))
		a, b = a[8:], b[8:]
	}
	for i := range a {
		sum += bits.OnesCount8(a[i] ^ b[i])
	}
	return sum
}

// Hamming64 returns the number of differing bits between two 64-bit words.
func Hamming64(a, b uint64) int {
	return bits.OnesCount64(a ^ b)
}

// HammingWords returns the Hamming distance between codes stored as words.
// Assumes slices are the same length.
func HammingWords(a, b []uint64) int {
	var sum int
	for i := range a {
		sum += bits.OnesCount64(a[i] ^ b[i])
	}
	return sum
}

// Distances returns the number of distinct Hamming distances between
// codes of the given bit width, which is bits+1.
func Distances(bits int) int {
	return bits + 1
}

// Bits returns the bit width of a code of codeLen bytes.
func Bits(codeLen int) int {
	return codeLen * 8
}
