package array

import "fmt"

// FixedSizeListArray stores lists of exactly ListSize elements back to back.
// List id spans data[id*ListSize : (id+1)*ListSize].
type FixedSizeListArray[P Primitive] struct {
	data     []P
	listSize int
}

var _ Array[[]float64, []float64] = (*FixedSizeListArray[float64])(nil)

// NewFixedSizeListArray creates an empty array of lists with listSize elements.
// It panics if listSize is not positive.
func NewFixedSizeListArray[P Primitive](listSize int) *FixedSizeListArray[P] {
	if listSize <= 0 {
		panic(fmt.Sprintf("array: invalid list size %d", listSize))
	}
	return &FixedSizeListArray[P]{listSize: listSize}
}

// ListSize returns the number of elements per list.
func (a *FixedSizeListArray[P]) ListSize() int {
	return a.listSize
}

// Get implements Array.
func (a *FixedSizeListArray[P]) Get(id int) ([]P, bool) {
	if id < 0 || id >= a.Len() {
		return nil, false
	}
	return a.slice(id), true
}

// GetUnchecked implements Array.
func (a *FixedSizeListArray[P]) GetUnchecked(id int) []P {
	return a.slice(id)
}

// GetMut implements Array.
func (a *FixedSizeListArray[P]) GetMut(id int) ([]P, bool) {
	return a.Get(id)
}

func (a *FixedSizeListArray[P]) slice(id int) []P {
	start, end := id*a.listSize, (id+1)*a.listSize
	if end > len(a.data) {
		panic(outOfRange("fixed-size list", id, a.Len()))
	}
	return a.data[start:end:end]
}

// Push implements Array. It panics if value does not hold ListSize elements.
func (a *FixedSizeListArray[P]) Push(value []P) {
	if len(value) != a.listSize {
		panic(fmt.Sprintf("array: list of %d elements pushed into list size %d", len(value), a.listSize))
	}
	a.data = append(a.data, value...)
}

// PushZero appends a list of zero values.
func (a *FixedSizeListArray[P]) PushZero() {
	var zero P
	for i := 0; i < a.listSize; i++ {
		a.data = append(a.data, zero)
	}
}

// Len implements Array.
func (a *FixedSizeListArray[P]) Len() int {
	return len(a.data) / a.listSize
}

// Data returns the flattened values of all lists.
func (a *FixedSizeListArray[P]) Data() []P {
	return a.data
}

// Size fixes the list size of a ConstFixedSizeListArray at the type level.
type Size interface {
	ListSize() int
}

// Size4 is a four-element list size, e.g. an IPv4 address.
type Size4 struct{}

// ListSize implements Size.
func (Size4) ListSize() int { return 4 }

// Size16 is a sixteen-element list size, e.g. an IPv6 address.
type Size16 struct{}

// ListSize implements Size.
func (Size16) ListSize() int { return 16 }

// ConstFixedSizeListArray is a FixedSizeListArray whose list size is carried
// by the type parameter S instead of a constructor argument.
type ConstFixedSizeListArray[P Primitive, S Size] struct {
	array FixedSizeListArray[P]
}

var _ Array[[]byte, []byte] = (*ConstFixedSizeListArray[byte, Size4])(nil)

// NewConstFixedSizeListArray creates an empty array of S-sized lists.
func NewConstFixedSizeListArray[P Primitive, S Size]() *ConstFixedSizeListArray[P, S] {
	var size S
	return &ConstFixedSizeListArray[P, S]{
		array: *NewFixedSizeListArray[P](size.ListSize()),
	}
}

// ListSize returns the list size fixed by S.
func (a *ConstFixedSizeListArray[P, S]) ListSize() int {
	return a.array.listSize
}

// Get implements Array.
func (a *ConstFixedSizeListArray[P, S]) Get(id int) ([]P, bool) {
	return a.array.Get(id)
}

// GetUnchecked implements Array.
func (a *ConstFixedSizeListArray[P, S]) GetUnchecked(id int) []P {
	return a.array.GetUnchecked(id)
}

// GetMut implements Array.
func (a *ConstFixedSizeListArray[P, S]) GetMut(id int) ([]P, bool) {
	return a.array.GetMut(id)
}

// Push implements Array.
func (a *ConstFixedSizeListArray[P, S]) Push(value []P) {
	a.array.Push(value)
}

// PushZero implements Array.
func (a *ConstFixedSizeListArray[P, S]) PushZero() {
	a.array.PushZero()
}

// Len implements Array.
func (a *ConstFixedSizeListArray[P, S]) Len() int {
	return a.array.Len()
}
