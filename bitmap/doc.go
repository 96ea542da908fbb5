// Package bitmap provides a byte-packed bit sequence with zero-copy views.
//
// # Layout
//
// Bit i of a Bitmap lives in byte i/8 at bit position i%8 (least significant
// bit first). The buffer grows one byte every eighth Push.
//
// # Views
//
// Slice and SliceMut return views over a bit range [start, end):
//
//	buffer: bytes[start/8 : (end+7)/8]
//	length: end - start
//	align:  start % 8
//
// A local index i addresses absolute bit align+i of the view buffer, so views
// with a non-zero alignment carry into the following byte.
//
// Three ownership kinds exist:
//
//   - Bitmap owns its buffer.
//   - Ref borrows a range read-only.
//   - RefMut borrows a range for in-place mutation.
//
// A view aliases the owner's buffer. It must not be used after the owner
// grows (Push, Add) and a RefMut must not coexist with any other view of the
// same range. The package does not synchronise access.
//
// Out-of-range access panics.
package bitmap
