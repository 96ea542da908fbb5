package array

// ListArray stores variable-size lists as one data vector plus offsets.
//
// offsets has Len()+1 entries, starts at 0 and never decreases; list id spans
// data[offsets[id]:offsets[id+1]].
type ListArray[P Primitive] struct {
	data    []P
	offsets []int
}

var _ Array[[]byte, []byte] = (*ListArray[byte])(nil)

// NewListArray creates an empty list array.
func NewListArray[P Primitive]() *ListArray[P] {
	return &ListArray[P]{offsets: []int{0}}
}

// Get implements Array.
func (a *ListArray[P]) Get(id int) ([]P, bool) {
	if id < 0 || id+1 >= len(a.offsets) {
		return nil, false
	}
	return a.GetUnchecked(id), true
}

// GetUnchecked implements Array.
func (a *ListArray[P]) GetUnchecked(id int) []P {
	start, end := a.offsets[id], a.offsets[id+1]
	return a.data[start:end:end]
}

// GetMut implements Array.
func (a *ListArray[P]) GetMut(id int) ([]P, bool) {
	return a.Get(id)
}

// Push implements Array.
func (a *ListArray[P]) Push(value []P) {
	a.data = append(a.data, value...)
	a.offsets = append(a.offsets, len(a.data))
}

// PushZero appends an empty list.
func (a *ListArray[P]) PushZero() {
	a.offsets = append(a.offsets, a.offsets[len(a.offsets)-1])
}

// Len implements Array.
func (a *ListArray[P]) Len() int {
	return len(a.offsets) - 1
}

// Offsets returns the offsets vector. The slice aliases the array.
func (a *ListArray[P]) Offsets() []int {
	return a.offsets
}

// Data returns the flattened values of all lists.
func (a *ListArray[P]) Data() []P {
	return a.data
}
