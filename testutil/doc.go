// Package testutil provides testing utilities for hammingheap.
//
// This package is intended for use in tests and benchmarks only.
// It provides helpers for generating random binary codes, computing exact
// nearest neighbors, and verifying search recall.
//
// # Random Code Generation
//
//	rng := testutil.NewRNG(seed)
//	codes := rng.Codes(1000, 16) // 1000 random 128-bit codes
//
// # Exact Search (Ground Truth)
//
//	results := testutil.ExactTopK(query, codes, k)
//
// # Recall Verification
//
//	recall := testutil.ComputeRecall(exactResults, approxResults)
package testutil
