package dictionary

import (
	"bytes"
	"hash/maphash"
	"slices"
)

// Hasher supplies content hashing and equality for the item type R.
// Values that are Equal must write identical bytes to the hash.
type Hasher[R any] interface {
	Hash(h *maphash.Hash, v R)
	Equal(a, b R) bool
}

// Scalar hashes comparable scalars.
type Scalar[P comparable] struct{}

// Hash implements Hasher.
func (Scalar[P]) Hash(h *maphash.Hash, v P) {
	maphash.WriteComparable(h, v)
}

// Equal implements Hasher.
func (Scalar[P]) Equal(a, b P) bool {
	return a == b
}

// Slice hashes slices of comparable elements by content.
type Slice[P comparable] struct{}

// Hash implements Hasher.
func (Slice[P]) Hash(h *maphash.Hash, v []P) {
	maphash.WriteComparable(h, len(v))
	for _, e := range v {
		maphash.WriteComparable(h, e)
	}
}

// Equal implements Hasher.
func (Slice[P]) Equal(a, b []P) bool {
	return slices.Equal(a, b)
}

// Bytes hashes byte slices, e.g. strings stored in a list array.
type Bytes struct{}

// Hash implements Hasher.
func (Bytes) Hash(h *maphash.Hash, v []byte) {
	_, _ = h.Write(v)
}

// Equal implements Hasher.
func (Bytes) Equal(a, b []byte) bool {
	return bytes.Equal(a, b)
}
