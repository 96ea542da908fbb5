package testutil

import (
	"math/rand"
	"strconv"
	"sync"
)

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

// Labels returns n distinct label values of the form "<prefix>-<i>".
func (r *RNG) Labels(prefix string, n int) []string {
	labels := make([]string, n)
	for i := range labels {
		labels[i] = prefix + "-" + strconv.Itoa(i)
	}
	return labels
}

// Pick draws n values from set with replacement.
// Locks only once per call.
func (r *RNG) Pick(set []string, n int) []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]string, n)
	for i := range out {
		out[i] = set[r.rand.Intn(len(set))]
	}
	return out
}

// String returns a random lowercase string of length n.
func (r *RNG) String(n int) string {
	const alphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

	r.mu.Lock()
	defer r.mu.Unlock()

	b := make([]byte, n)
	for i := range b {
		b[i] = alphabet[r.rand.Intn(len(alphabet))]
	}
	return string(b)
}

// IPv4 returns a random 4-byte address.
func (r *RNG) IPv4() []uint8 {
	return r.bytes(4)
}

// IPv6 returns a random 16-byte address.
func (r *RNG) IPv6() []uint8 {
	return r.bytes(16)
}

func (r *RNG) bytes(n int) []uint8 {
	r.mu.Lock()
	defer r.mu.Unlock()

	b := make([]uint8, n)
	for i := range b {
		b[i] = uint8(r.rand.Intn(256))
	}
	return b
}

// Mask returns n validity flags, each true with probability p.
func (r *RNG) Mask(n int, p float64) []bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]bool, n)
	for i := range out {
		out[i] = r.rand.Float64() < p
	}
	return out
}
