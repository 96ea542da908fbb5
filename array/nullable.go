package array

import (
	"fmt"

	"github.com/hupe1980/colstore/bitmap"
)

// NullableList is an owned list whose elements may individually be null.
type NullableList[P Primitive] struct {
	data     []P
	validity *bitmap.Bitmap
}

// NewNullableList creates a list from values and their validity bits.
// Values at invalid positions are kept but never read back.
func NewNullableList[P Primitive](values []P, valid []bool) *NullableList[P] {
	if len(values) != len(valid) {
		panic(fmt.Sprintf("array: %d values with %d validity bits", len(values), len(valid)))
	}
	validity := bitmap.FromBools(valid)
	validity.Align()
	return &NullableList[P]{
		data:     append([]P(nil), values...),
		validity: validity,
	}
}

// NullableListOf creates a list from optional items.
func NullableListOf[P Primitive](items ...Nullable[P]) *NullableList[P] {
	values := make([]P, len(items))
	valid := make([]bool, len(items))
	for i, item := range items {
		values[i], valid[i] = item.Get()
	}
	return NewNullableList(values, valid)
}

// Len returns the number of elements.
func (l *NullableList[P]) Len() int {
	return len(l.data)
}

// AsRef borrows the list.
func (l *NullableList[P]) AsRef() NullableListRef[P] {
	return NullableListRef[P]{
		validity: l.validity.Slice(0, len(l.data)),
		data:     l.data,
	}
}

// NullableListRef borrows one nullable list.
type NullableListRef[P Primitive] struct {
	validity bitmap.Ref
	data     []P
}

// Get returns element n. The boolean is false when n is out of range; a nil
// pointer with true means the element is null.
func (r NullableListRef[P]) Get(n int) (*P, bool) {
	if n < 0 || n >= len(r.data) {
		return nil, false
	}
	if !r.validity.Get(n) {
		return nil, true
	}
	return &r.data[n], true
}

// Len returns the number of elements.
func (r NullableListRef[P]) Len() int {
	return len(r.data)
}

// Validity returns the validity bits of the list.
func (r NullableListRef[P]) Validity() bitmap.Ref {
	return r.validity
}

// Values returns the raw values, including those at null positions.
func (r NullableListRef[P]) Values() []P {
	return r.data
}

// Equal reports whether both lists have the same length, nulls and valid values.
func (r NullableListRef[P]) Equal(other NullableListRef[P]) bool {
	if len(r.data) != len(other.data) {
		return false
	}
	for i := range r.data {
		a, _ := r.Get(i)
		b, _ := other.Get(i)
		if (a == nil) != (b == nil) {
			return false
		}
		if a != nil && *a != *b {
			return false
		}
	}
	return true
}

// String formats the list as [v null v ...].
func (r NullableListRef[P]) String() string {
	items := make([]Nullable[P], len(r.data))
	for i := range r.data {
		if v, _ := r.Get(i); v != nil {
			items[i] = Some(*v)
		}
	}
	return fmt.Sprint(items)
}

// NullableListRefMut mutably borrows one nullable list.
type NullableListRefMut[P Primitive] struct {
	validity bitmap.RefMut
	data     []P
}

// Get returns element n with the semantics of NullableListRef.Get.
func (r NullableListRefMut[P]) Get(n int) (*P, bool) {
	return r.Ref().Get(n)
}

// Set stores value at n and marks it valid. It panics if n is out of range.
func (r NullableListRefMut[P]) Set(n int, value P) {
	r.checkIndex(n)
	r.data[n] = value
	r.validity.Set(n, true)
}

// SetNull marks element n null. It panics if n is out of range.
func (r NullableListRefMut[P]) SetNull(n int) {
	r.checkIndex(n)
	r.validity.Set(n, false)
}

func (r NullableListRefMut[P]) checkIndex(n int) {
	if n < 0 || n >= len(r.data) {
		panic(outOfRange("nullable list", n, len(r.data)))
	}
}

// Len returns the number of elements.
func (r NullableListRefMut[P]) Len() int {
	return len(r.data)
}

// Ref downgrades the handle to a read-only borrow.
func (r NullableListRefMut[P]) Ref() NullableListRef[P] {
	return NullableListRef[P]{validity: r.validity.Ref(), data: r.data}
}

// NullableFixedSizeListArray is a FixedSizeListArray with per-element validity.
//
// Row id owns validity bits [id*step, id*step+ListSize) where step is ListSize
// rounded up to a multiple of 8, so every row starts on a byte boundary.
type NullableFixedSizeListArray[P Primitive] struct {
	validity bitmap.Bitmap
	data     FixedSizeListArray[P]
	step     int
}

var _ Array[NullableListRef[int32], NullableListRefMut[int32]] = (*NullableFixedSizeListArray[int32])(nil)

// NewNullableFixedSizeListArray creates an empty array of nullable lists.
// It panics if listSize is not positive.
func NewNullableFixedSizeListArray[P Primitive](listSize int) *NullableFixedSizeListArray[P] {
	return &NullableFixedSizeListArray[P]{
		data: *NewFixedSizeListArray[P](listSize),
		step: (listSize + 7) / 8 * 8,
	}
}

// ListSize returns the number of elements per list.
func (a *NullableFixedSizeListArray[P]) ListSize() int {
	return a.data.listSize
}

// Get implements Array.
func (a *NullableFixedSizeListArray[P]) Get(id int) (NullableListRef[P], bool) {
	if id < 0 || id >= a.Len() {
		return NullableListRef[P]{}, false
	}
	return a.GetUnchecked(id), true
}

// GetUnchecked implements Array.
func (a *NullableFixedSizeListArray[P]) GetUnchecked(id int) NullableListRef[P] {
	start := id * a.step
	return NullableListRef[P]{
		validity: a.validity.Slice(start, start+a.data.listSize),
		data:     a.data.slice(id),
	}
}

// GetMut implements Array.
func (a *NullableFixedSizeListArray[P]) GetMut(id int) (NullableListRefMut[P], bool) {
	if id < 0 || id >= a.Len() {
		return NullableListRefMut[P]{}, false
	}
	start := id * a.step
	return NullableListRefMut[P]{
		validity: a.validity.SliceMut(start, start+a.data.listSize),
		data:     a.data.slice(id),
	}, true
}

// Push implements Array. It panics if value does not hold ListSize elements.
func (a *NullableFixedSizeListArray[P]) Push(value NullableListRef[P]) {
	a.data.Push(value.data)
	for i := 0; i < a.data.listSize; i++ {
		a.validity.Push(value.validity.Get(i))
	}
	for i := a.data.listSize; i < a.step; i++ {
		a.validity.Push(false)
	}
}

// PushZero appends a list whose elements are all null.
func (a *NullableFixedSizeListArray[P]) PushZero() {
	for i := 0; i < a.step; i++ {
		a.validity.Push(false)
	}
	a.data.PushZero()
}

// Len implements Array.
func (a *NullableFixedSizeListArray[P]) Len() int {
	return a.data.Len()
}

// Validity returns the validity bitmap of all rows.
func (a *NullableFixedSizeListArray[P]) Validity() *bitmap.Bitmap {
	return &a.validity
}
