// Package testutil provides testing utilities for colstore.
//
// This package is intended for use in tests and benchmarks only.
// It provides a seeded, goroutine-safe random source and helpers for
// generating label columns.
//
// # Random Labels
//
//	rng := testutil.NewRNG(seed)
//	hosts := rng.Labels("host", 64)       // 64 distinct values
//	rows := rng.Pick(hosts, 10_000)       // 10k rows drawn from them
//	addr := rng.IPv4()
package testutil
