package array

import "fmt"

// Array is the capability shared by every column shape.
//
// R is the borrowed item type returned by Get and accepted by Push, M the
// item type returned by GetMut for in-place edits.
type Array[R, M any] interface {
	// Get returns the element at id, or false if id is out of range.
	Get(id int) (R, bool)

	// GetUnchecked returns the element at id without a bounds check on the
	// logical length. The caller guarantees 0 <= id < Len().
	GetUnchecked(id int) R

	// GetMut returns a mutable handle to the element at id.
	GetMut(id int) (M, bool)

	// Push appends a copy of value.
	Push(value R)

	// PushZero appends a placeholder element so that the array advances by
	// one row without a real value.
	PushZero()

	// Len returns the number of elements.
	Len() int
}

// Nullable is an optional item.
type Nullable[T any] struct {
	Value T
	Valid bool
}

// Some wraps a present value.
func Some[T any](v T) Nullable[T] {
	return Nullable[T]{Value: v, Valid: true}
}

// None returns an absent value.
func None[T any]() Nullable[T] {
	return Nullable[T]{}
}

// Get returns the value and whether it is present.
func (n Nullable[T]) Get() (T, bool) {
	return n.Value, n.Valid
}

// String formats the value or "null".
func (n Nullable[T]) String() string {
	if !n.Valid {
		return "null"
	}
	return fmt.Sprint(n.Value)
}

func outOfRange(shape string, id, n int) string {
	return fmt.Sprintf("array: %s index %d out of range [0,%d)", shape, id, n)
}
