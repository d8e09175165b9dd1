// Package testutil provides testing utilities for writer.
//
// This package is intended for use in tests and examples only. The monoids
// here are test doubles; the writer package itself ships none.
//
// # Monoid Doubles
//
//	w := writer.Of(5, testutil.List[string]{})
//	w := writer.Tell(testutil.NewList("A"))
//	w := writer.Tell(testutil.Sum(3))
//
// # Random Inputs
//
//	rng := testutil.NewRNG(seed)
//	xs := rng.Ints(16, 100)   // values in [0, 100)
//	ws := rng.Words(16)       // short lowercase words
package testutil
