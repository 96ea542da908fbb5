package index

import (
	"iter"

	"github.com/RoaringBitmap/roaring/v2"
)

// Accumulator is the running intersection of row-id sets across lookups.
// The zero value is unconstrained.
type Accumulator struct {
	rows *roaring.Bitmap
}

// NewAccumulator creates an unconstrained accumulator.
func NewAccumulator() *Accumulator {
	return &Accumulator{}
}

// Constrained reports whether any lookup has narrowed the candidates.
func (a *Accumulator) Constrained() bool {
	return a.rows != nil
}

// Rows returns the candidate set, or nil while unconstrained. The bitmap is
// owned by the accumulator.
func (a *Accumulator) Rows() *roaring.Bitmap {
	return a.rows
}

// Intersect ANDs set into the candidates. The first call stores a copy of set.
func (a *Accumulator) Intersect(set *roaring.Bitmap) {
	if a.rows == nil {
		a.rows = set.Clone()
		return
	}
	a.rows.And(set)
}

// intersectOwned is Intersect for a set the caller hands over.
func (a *Accumulator) intersectOwned(set *roaring.Bitmap) {
	if a.rows == nil {
		a.rows = set
		return
	}
	a.rows.And(set)
}

// Contains reports whether row is still a candidate. Every row is a candidate
// while the accumulator is unconstrained.
func (a *Accumulator) Contains(row uint32) bool {
	return a.rows == nil || a.rows.Contains(row)
}

// IsEmpty reports whether the accumulator is constrained to no rows.
func (a *Accumulator) IsEmpty() bool {
	return a.rows != nil && a.rows.IsEmpty()
}

// Cardinality returns the number of candidates among the first n rows.
func (a *Accumulator) Cardinality(n uint32) uint64 {
	if a.rows == nil {
		return uint64(n)
	}
	if n == 0 {
		return 0
	}
	return a.rows.Rank(n - 1)
}

// Candidates returns an iterator over every candidate row below n in
// ascending order.
func (a *Accumulator) Candidates(n uint32) iter.Seq[uint32] {
	return func(yield func(uint32) bool) {
		if a.rows == nil {
			for row := uint32(0); row < n; row++ {
				if !yield(row) {
					return
				}
			}
			return
		}
		it := a.rows.Iterator()
		for it.HasNext() {
			row := it.Next()
			if row >= n || !yield(row) {
				return
			}
		}
	}
}

// Reset makes the accumulator unconstrained again.
func (a *Accumulator) Reset() {
	a.rows = nil
}
