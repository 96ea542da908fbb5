// Package conv provides checked conversions between row counts and row ids.
//
// Row ids are uint32 because row sets are 32-bit Roaring bitmaps. Column
// lengths are Go ints and are checked with RowID before they become row ids.
package conv
