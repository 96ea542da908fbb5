package index

import (
	"encoding/binary"
	"fmt"
	"hash/maphash"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/bits-and-blooms/bloom/v3"
)

// maxRow is one past the largest row id a 32-bit bitmap holds.
const maxRow = uint64(1) << 32

// SparseOptions configures a SparseIndex.
type SparseOptions struct {
	// FalsePositiveRate is the target rate of each block filter.
	FalsePositiveRate float64
}

// SparseIndex keeps one bloom filter per block of rows. Lookups resolve to
// whole blocks, so results include every row of a block that may hold the
// value.
type SparseIndex[V comparable] struct {
	blocks    []*bloom.BloomFilter
	blockSize uint32
	fpRate    float64
	seed      maphash.Seed
}

var _ Index[int] = (*SparseIndex[int])(nil)

// NewSparseIndex creates an empty sparse index with blockSize rows per filter.
func NewSparseIndex[V comparable](blockSize uint32, optFns ...func(o *SparseOptions)) (*SparseIndex[V], error) {
	opts := SparseOptions{FalsePositiveRate: DefaultFalsePositiveRate}
	for _, fn := range optFns {
		fn(&opts)
	}

	if blockSize == 0 {
		return nil, ErrInvalidBlockSize
	}
	if !(opts.FalsePositiveRate > 0 && opts.FalsePositiveRate < 1) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFalsePositiveRate, opts.FalsePositiveRate)
	}

	return &SparseIndex[V]{
		blockSize: blockSize,
		fpRate:    opts.FalsePositiveRate,
		seed:      maphash.MakeSeed(),
	}, nil
}

func (ix *SparseIndex[V]) key(value V) []byte {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], maphash.Comparable(ix.seed, value))
	return buf[:]
}

// Insert implements Index. Blocks between the last one and row's block are
// left without a filter until a row lands in them.
func (ix *SparseIndex[V]) Insert(row uint32, value V) {
	block := int(row / ix.blockSize)
	if block >= len(ix.blocks) {
		ix.blocks = append(ix.blocks, make([]*bloom.BloomFilter, block+1-len(ix.blocks))...)
	}
	f := ix.blocks[block]
	if f == nil {
		f = bloom.NewWithEstimates(uint(ix.blockSize), ix.fpRate)
		ix.blocks[block] = f
	}
	f.Add(ix.key(value))
}

// Lookup implements Index. The accumulator is always intersected, so a value
// no filter reports empties it.
func (ix *SparseIndex[V]) Lookup(value V, acc *Accumulator) {
	key := ix.key(value)
	rows := roaring.New()
	for i, f := range ix.blocks {
		if f == nil || !f.Test(key) {
			continue
		}
		start := uint64(i) * uint64(ix.blockSize)
		end := min(start+uint64(ix.blockSize), maxRow)
		rows.AddRange(start, end)
	}
	acc.intersectOwned(rows)
}

// Exactly implements Index.
func (ix *SparseIndex[V]) Exactly() bool {
	return false
}

// BlockSize returns the number of rows per filter.
func (ix *SparseIndex[V]) BlockSize() uint32 {
	return ix.blockSize
}

// FalsePositiveRate returns the target rate of each filter.
func (ix *SparseIndex[V]) FalsePositiveRate() float64 {
	return ix.fpRate
}

// Blocks returns the number of blocks covered so far.
func (ix *SparseIndex[V]) Blocks() int {
	return len(ix.blocks)
}

// SizeBytes returns the memory held by the filter bit arrays.
func (ix *SparseIndex[V]) SizeBytes() uint64 {
	var n uint64
	for _, f := range ix.blocks {
		if f != nil {
			n += uint64(f.Cap()+7) / 8
		}
	}
	return n
}
