// Package array defines the column shapes of colstore.
//
// Every shape implements the Array capability with its own borrowed item
// type R and mutable item type M:
//
//	shape                          R                    M
//	PrimitiveArray[P]              P                    *P
//	FixedSizeListArray[P]          []P                  []P
//	ConstFixedSizeListArray[P, S]  []P                  []P
//	ListArray[P]                   []P                  []P
//	NullableFixedSizeListArray[P]  NullableListRef[P]   NullableListRefMut[P]
//
// Generic algorithms (dictionary encoding, index building) are written once
// against Array[R, M] and instantiated per shape, so element access never goes
// through an interface{} value.
//
// Slices returned by Get alias the array's storage. They stay valid until the
// next Push or PushZero on the same array. GetUnchecked skips the bounds check
// and is meant for loops whose ids were validated by construction.
package array
