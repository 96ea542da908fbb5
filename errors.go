package colstore

import (
	"errors"
	"fmt"
)

var (
	// ErrDuplicateColumn is returned when a chunk already has a column with
	// the same name.
	ErrDuplicateColumn = errors.New("duplicate column")

	// ErrColumnNotFound is returned when a chunk has no column with the
	// requested name or type.
	ErrColumnNotFound = errors.New("column not found")

	// ErrNotIndexable is returned when an index is requested on a field column.
	ErrNotIndexable = errors.New("column cannot be indexed")

	// ErrSeriesLength is returned when a field's list size differs from the
	// chunk's series length.
	ErrSeriesLength = errors.New("series length mismatch")
)

// ErrColumnLength indicates a column whose row count differs from the rest of
// the chunk.
type ErrColumnLength struct {
	Column   string
	Expected int
	Actual   int
}

func (e *ErrColumnLength) Error() string {
	return fmt.Sprintf("column %q length mismatch: expected %d rows, got %d", e.Column, e.Expected, e.Actual)
}
