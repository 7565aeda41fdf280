// Package testutil provides testing utilities for colscan.
//
// This package is intended for use in tests and benchmarks only.
// It provides a deterministic RNG with generators for sorted and skewed
// column data, and a ready-made slice table fixture.
//
// # Random Data
//
//	rng := testutil.NewRNG(seed)
//	ts := rng.SortedInt64s(1000, 0, 10)     // non-decreasing, with duplicates
//	picks := rng.ZipfPicks(1000, 8, 1.2)    // skewed dictionary ids
//
// # Fixtures
//
//	s := testutil.RandomSlices(rng, 1000)
//	cols := s.Columns()
package testutil
