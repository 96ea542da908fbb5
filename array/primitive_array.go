package array

// PrimitiveArray is a dense vector of scalars.
type PrimitiveArray[P Primitive] struct {
	data []P
}

var _ Array[int64, *int64] = (*PrimitiveArray[int64])(nil)

// NewPrimitiveArray creates an empty primitive array.
func NewPrimitiveArray[P Primitive]() *PrimitiveArray[P] {
	return &PrimitiveArray[P]{}
}

// Get implements Array.
func (a *PrimitiveArray[P]) Get(id int) (P, bool) {
	if id < 0 || id >= len(a.data) {
		var zero P
		return zero, false
	}
	return a.data[id], true
}

// GetUnchecked implements Array.
func (a *PrimitiveArray[P]) GetUnchecked(id int) P {
	return a.data[id]
}

// GetMut implements Array.
func (a *PrimitiveArray[P]) GetMut(id int) (*P, bool) {
	if id < 0 || id >= len(a.data) {
		return nil, false
	}
	return &a.data[id], true
}

// Push implements Array.
func (a *PrimitiveArray[P]) Push(value P) {
	a.data = append(a.data, value)
}

// PushZero implements Array.
func (a *PrimitiveArray[P]) PushZero() {
	var zero P
	a.data = append(a.data, zero)
}

// Len implements Array.
func (a *PrimitiveArray[P]) Len() int {
	return len(a.data)
}

// Values returns the backing slice.
func (a *PrimitiveArray[P]) Values() []P {
	return a.data
}
