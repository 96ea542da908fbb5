package dictionary

import "github.com/hupe1980/colstore/array"

// IDArray is a dictionary-encoded column: one dictionary id per row.
//
// A null row stores id 0 and never occupies a dictionary slot.
type IDArray[R, M any] struct {
	dict *Dictionary[R, M]
	ids  []int
}

var _ array.Array[array.Nullable[[]byte], array.Nullable[[]byte]] = (*IDArray[[]byte, []byte])(nil)

// NewIDArray creates an empty id array whose distinct values are stored in
// values.
func NewIDArray[R, M any](values array.Array[R, M], hasher Hasher[R]) *IDArray[R, M] {
	return &IDArray[R, M]{
		dict: New(values, hasher),
	}
}

// Get implements array.Array.
func (a *IDArray[R, M]) Get(row int) (array.Nullable[R], bool) {
	if row < 0 || row >= len(a.ids) {
		return array.None[R](), false
	}
	return a.GetUnchecked(row), true
}

// GetUnchecked implements array.Array.
func (a *IDArray[R, M]) GetUnchecked(row int) array.Nullable[R] {
	v, ok := a.dict.GetUnchecked(a.ids[row])
	return array.Nullable[R]{Value: v, Valid: ok}
}

// GetMut implements array.Array. The handle points into the dictionary, so an
// edit is visible from every row sharing the id.
func (a *IDArray[R, M]) GetMut(row int) (array.Nullable[M], bool) {
	if row < 0 || row >= len(a.ids) {
		return array.None[M](), false
	}
	v, ok := a.dict.GetMut(a.ids[row])
	return array.Nullable[M]{Value: v, Valid: ok}, true
}

// Push implements array.Array.
func (a *IDArray[R, M]) Push(value array.Nullable[R]) {
	if !value.Valid {
		a.PushZero()
		return
	}
	a.PushValue(value.Value)
}

// PushValue appends a present value.
func (a *IDArray[R, M]) PushValue(v R) {
	a.ids = append(a.ids, a.dict.LookupOrInsert(v))
}

// PushNull appends a null row.
func (a *IDArray[R, M]) PushNull() {
	a.PushZero()
}

// PushZero implements array.Array by appending id 0.
func (a *IDArray[R, M]) PushZero() {
	a.ids = append(a.ids, 0)
}

// Len implements array.Array.
func (a *IDArray[R, M]) Len() int {
	return len(a.ids)
}

// ID returns the dictionary id of row.
func (a *IDArray[R, M]) ID(row int) (int, bool) {
	if row < 0 || row >= len(a.ids) {
		return 0, false
	}
	return a.ids[row], true
}

// IDs returns the id of every row. The slice aliases the array.
func (a *IDArray[R, M]) IDs() []int {
	return a.ids
}

// Lookup returns the dictionary id of v without inserting it.
func (a *IDArray[R, M]) Lookup(v R) (int, bool) {
	return a.dict.Lookup(v)
}

// Dictionary returns the dictionary holding the distinct values.
func (a *IDArray[R, M]) Dictionary() *Dictionary[R, M] {
	return a.dict
}
