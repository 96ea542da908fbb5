package colstore

import (
	"github.com/hupe1980/colstore/array"
)

// FieldColumn holds one nullable fixed-size list of samples per row.
type FieldColumn[P array.Primitive] struct {
	name string
	data *array.NullableFixedSizeListArray[P]
}

// NewField creates an empty field column with listSize samples per row.
func NewField[P array.Primitive](name string, listSize int) *FieldColumn[P] {
	return &FieldColumn[P]{
		name: name,
		data: array.NewNullableFixedSizeListArray[P](listSize),
	}
}

// Name returns the column name.
func (c *FieldColumn[P]) Name() string { return c.name }

// Len returns the number of rows.
func (c *FieldColumn[P]) Len() int { return c.data.Len() }

// ListSize returns the number of samples per row.
func (c *FieldColumn[P]) ListSize() int { return c.data.ListSize() }

// Kind returns the sample type.
func (c *FieldColumn[P]) Kind() array.Kind { return array.KindOf[P]() }

// Push appends a row. The row must hold ListSize samples.
func (c *FieldColumn[P]) Push(row array.NullableListRef[P]) {
	c.data.Push(row)
}

// PushValues appends a row from parallel value and validity slices.
func (c *FieldColumn[P]) PushValues(values []P, valid []bool) {
	c.data.Push(array.NewNullableList(values, valid).AsRef())
}

// PushZero appends a row of null samples.
func (c *FieldColumn[P]) PushZero() { c.data.PushZero() }

// Get returns the samples of row.
func (c *FieldColumn[P]) Get(row int) (array.NullableListRef[P], bool) {
	return c.data.Get(row)
}

// GetMut returns a writable view of the samples of row.
func (c *FieldColumn[P]) GetMut(row int) (array.NullableListRefMut[P], bool) {
	return c.data.GetMut(row)
}

// Data returns the underlying array.
func (c *FieldColumn[P]) Data() *array.NullableFixedSizeListArray[P] { return c.data }
