package dictionary

import (
	"hash/maphash"

	"github.com/hupe1980/colstore/array"
	"github.com/hupe1980/colstore/internal/hashtable"
)

// Dictionary interns values of an array shape into dense ids.
type Dictionary[R, M any] struct {
	seed   maphash.Seed
	table  *hashtable.Table
	data   array.Array[R, M]
	hasher Hasher[R]
}

// New creates a dictionary over data. Values already in data are indexed
// under ids 1..data.Len() as they are; duplicates among them are not merged.
func New[R, M any](data array.Array[R, M], hasher Hasher[R]) *Dictionary[R, M] {
	d := &Dictionary[R, M]{
		seed:   maphash.MakeSeed(),
		table:  hashtable.New(data.Len()),
		data:   data,
		hasher: hasher,
	}
	for i := 0; i < data.Len(); i++ {
		d.table.Insert(d.hashOf(data.GetUnchecked(i)), i)
	}
	return d
}

func (d *Dictionary[R, M]) hashOf(v R) uint64 {
	var h maphash.Hash
	h.SetSeed(d.seed)
	d.hasher.Hash(&h, v)
	return h.Sum64()
}

func (d *Dictionary[R, M]) find(hash uint64, v R) (int, bool) {
	return d.table.Find(hash, func(i int) bool {
		return d.hasher.Equal(d.data.GetUnchecked(i), v)
	})
}

// LookupOrInsert returns the id of v, appending v to the backing array if no
// equal value is stored yet.
func (d *Dictionary[R, M]) LookupOrInsert(v R) int {
	hash := d.hashOf(v)
	if i, ok := d.find(hash, v); ok {
		return i + 1
	}
	d.data.Push(v)
	i := d.data.Len() - 1
	d.table.Insert(hash, i)
	return i + 1
}

// Lookup returns the id of v without inserting it.
func (d *Dictionary[R, M]) Lookup(v R) (int, bool) {
	i, ok := d.find(d.hashOf(v), v)
	if !ok {
		return 0, false
	}
	return i + 1, true
}

// Get returns the value of id. It returns false for id 0 and unknown ids.
func (d *Dictionary[R, M]) Get(id int) (R, bool) {
	if id == 0 {
		var zero R
		return zero, false
	}
	return d.data.Get(id - 1)
}

// GetUnchecked returns the value of id, or false for id 0. Any other id must
// have been issued by this dictionary.
func (d *Dictionary[R, M]) GetUnchecked(id int) (R, bool) {
	if id == 0 {
		var zero R
		return zero, false
	}
	return d.data.GetUnchecked(id - 1), true
}

// GetMut returns a mutable handle to the value of id. Edits must not change
// the value's Equal identity, since its hash entry is not updated.
func (d *Dictionary[R, M]) GetMut(id int) (M, bool) {
	if id == 0 {
		var zero M
		return zero, false
	}
	return d.data.GetMut(id - 1)
}

// Len returns the number of distinct values.
func (d *Dictionary[R, M]) Len() int {
	return d.data.Len()
}

// Values returns the backing array.
func (d *Dictionary[R, M]) Values() array.Array[R, M] {
	return d.data
}
