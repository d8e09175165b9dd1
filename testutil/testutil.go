package testutil

import (
	"math/rand"
	"sync"
)

// List is a list monoid: Empty is the empty list and Concat appends the
// argument's elements after the receiver's.
type List[T any] []T

// NewList creates a List holding a copy of xs.
func NewList[T any](xs ...T) List[T] {
	out := make(List[T], len(xs))
	copy(out, xs)
	return out
}

// Empty implements writer.Monoid.
func (List[T]) Empty() List[T] {
	return List[T]{}
}

// Concat implements writer.Monoid. Neither operand is modified.
func (l List[T]) Concat(other List[T]) List[T] {
	out := make(List[T], 0, len(l)+len(other))
	out = append(out, l...)
	return append(out, other...)
}

// Sum is an additive monoid over int.
type Sum int

// Empty implements writer.Monoid.
func (Sum) Empty() Sum { return 0 }

// Concat implements writer.Monoid.
func (s Sum) Concat(other Sum) Sum { return s + other }

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

// Ints returns count pseudo-random numbers in [0,n).
// Locks only once per call (preferred over calling Intn in a loop).
func (r *RNG) Ints(count, n int) []int {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]int, count)
	for i := range out {
		out[i] = r.rand.Intn(n)
	}
	return out
}

const letters = "abcdefghijklmnopqrstuvwxyz"

// Words returns count lowercase words of one to eight letters.
func (r *RNG) Words(count int) []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, count)
	for i := range out {
		b := make([]byte, 1+r.rand.Intn(8))
		for j := range b {
			b[j] = letters[r.rand.Intn(len(letters))]
		}
		out[i] = string(b)
	}
	return out
}
