package index

import (
	"github.com/RoaringBitmap/roaring/v2"
)

// InvertedIndex maps every distinct value to the exact set of rows holding it.
type InvertedIndex[V comparable] struct {
	postings map[V]*roaring.Bitmap
}

var _ Index[int] = (*InvertedIndex[int])(nil)

// NewInvertedIndex creates an empty inverted index.
func NewInvertedIndex[V comparable]() *InvertedIndex[V] {
	return &InvertedIndex[V]{postings: make(map[V]*roaring.Bitmap)}
}

// Insert implements Index. Inserting the same pair twice is a no-op.
func (ix *InvertedIndex[V]) Insert(row uint32, value V) {
	rows, ok := ix.postings[value]
	if !ok {
		rows = roaring.New()
		ix.postings[value] = rows
	}
	rows.Add(row)
}

// Lookup implements Index. A value that was never inserted leaves acc
// unchanged.
func (ix *InvertedIndex[V]) Lookup(value V, acc *Accumulator) {
	rows, ok := ix.postings[value]
	if !ok {
		return
	}
	acc.Intersect(rows)
}

// Exactly implements Index.
func (ix *InvertedIndex[V]) Exactly() bool {
	return true
}

// Rows returns the posting list of value. The bitmap is owned by the index.
func (ix *InvertedIndex[V]) Rows(value V) (*roaring.Bitmap, bool) {
	rows, ok := ix.postings[value]
	return rows, ok
}

// Len returns the number of distinct values.
func (ix *InvertedIndex[V]) Len() int {
	return len(ix.postings)
}

// SizeBytes estimates the serialized size of all posting lists.
func (ix *InvertedIndex[V]) SizeBytes() uint64 {
	var n uint64
	for _, rows := range ix.postings {
		n += rows.GetSerializedSizeInBytes()
	}
	return n
}
