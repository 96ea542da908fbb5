package bitmap

import (
	"bytes"
	"fmt"
	"strings"
)

var bitMask = [8]byte{1, 2, 4, 8, 16, 32, 64, 128}

func setBit(b byte, i int, value bool) byte {
	if value {
		return b | bitMask[i]
	}
	return b &^ bitMask[i]
}

func isSet(b byte, i int) bool {
	return b&bitMask[i] != 0
}

// getBit reads local bit i of a view starting align bits into data.
func getBit(data []byte, i, align int) bool {
	abs := align + i
	return isSet(data[abs>>3], abs&7)
}

func putBit(data []byte, i, align int, value bool) {
	abs := align + i
	data[abs>>3] = setBit(data[abs>>3], abs&7, value)
}

// Bitmap is a growable, byte-packed sequence of bits.
type Bitmap struct {
	buffer []byte
	length int
}

// New creates an empty bitmap.
func New() *Bitmap {
	return &Bitmap{}
}

// FromBools creates a bitmap holding bits in order.
func FromBools(bits []bool) *Bitmap {
	b := &Bitmap{buffer: make([]byte, 0, (len(bits)+7)/8)}
	for _, bit := range bits {
		b.Push(bit)
	}
	return b
}

// Push appends one bit.
func (b *Bitmap) Push(value bool) {
	if b.length%8 == 0 {
		b.buffer = append(b.buffer, 0)
	}
	last := len(b.buffer) - 1
	b.buffer[last] = setBit(b.buffer[last], b.length%8, value)
	b.length++
}

// Len returns the number of bits.
func (b *Bitmap) Len() int {
	return b.length
}

// Bytes returns the backing buffer. The slice aliases the bitmap.
func (b *Bitmap) Bytes() []byte {
	return b.buffer
}

// Get returns bit i.
func (b *Bitmap) Get(i int) bool {
	if i < 0 || i >= b.length {
		panic(fmt.Sprintf("bitmap: bit %d out of range [0,%d)", i, b.length))
	}
	return getBit(b.buffer, i, 0)
}

// Slice returns a read-only view over bits [start, end).
func (b *Bitmap) Slice(start, end int) Ref {
	lo, hi := b.byteRange(start, end)
	return Ref{
		buffer: b.buffer[lo:hi],
		length: end - start,
		align:  start % 8,
	}
}

// SliceMut returns a mutable view over bits [start, end).
func (b *Bitmap) SliceMut(start, end int) RefMut {
	lo, hi := b.byteRange(start, end)
	return RefMut{
		buffer: b.buffer[lo:hi],
		length: end - start,
		align:  start % 8,
	}
}

func (b *Bitmap) byteRange(start, end int) (int, int) {
	if start < 0 || start > end {
		panic(fmt.Sprintf("bitmap: invalid range [%d,%d)", start, end))
	}
	hi := (end + 7) / 8
	if hi > len(b.buffer) {
		panic(fmt.Sprintf("bitmap: range [%d,%d) exceeds %d bytes", start, end, len(b.buffer)))
	}
	return start / 8, hi
}

// Add appends every bit of other.
func (b *Bitmap) Add(other Ref) {
	for i := 0; i < other.Len(); i++ {
		b.Push(other.Get(i))
	}
}

// AsRef returns a view over the whole bitmap.
func (b *Bitmap) AsRef() Ref {
	return Ref{
		buffer: b.buffer,
		length: b.length,
	}
}

// Align sets the logical length to the byte-rounded buffer size.
func (b *Bitmap) Align() {
	b.length = len(b.buffer) * 8
}

// Clone returns a deep copy.
func (b *Bitmap) Clone() *Bitmap {
	return &Bitmap{
		buffer: bytes.Clone(b.buffer),
		length: b.length,
	}
}

// Equal reports whether both bitmaps hold the same bits.
func (b *Bitmap) Equal(other *Bitmap) bool {
	if b.length != other.length {
		return false
	}
	full := b.length / 8
	if !bytes.Equal(b.buffer[:full], other.buffer[:full]) {
		return false
	}
	for i := full * 8; i < b.length; i++ {
		if b.Get(i) != other.Get(i) {
			return false
		}
	}
	return true
}

// String renders the bits as 0/1 characters.
func (b *Bitmap) String() string {
	return b.AsRef().String()
}

// Ref is a read-only view over a bit range of a Bitmap.
type Ref struct {
	buffer []byte
	length int
	align  int
}

// Get returns local bit i. The index is bounded by the view's bytes, not by Len.
func (r Ref) Get(i int) bool {
	return getBit(r.buffer, i, r.align)
}

// Len returns the logical length of the view.
func (r Ref) Len() int {
	return r.length
}

// String renders the view's bits as 0/1 characters.
func (r Ref) String() string {
	var sb strings.Builder
	sb.Grow(r.length)
	for i := 0; i < r.length; i++ {
		if r.Get(i) {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}

// RefMut is a mutable view over a bit range of a Bitmap.
type RefMut struct {
	buffer []byte
	length int
	align  int
}

// Get returns local bit i.
func (r RefMut) Get(i int) bool {
	return getBit(r.buffer, i, r.align)
}

// Set overwrites local bit i in place.
func (r RefMut) Set(i int, value bool) {
	putBit(r.buffer, i, r.align, value)
}

// Len returns the logical length of the view.
func (r RefMut) Len() int {
	return r.length
}

// Ref downgrades the view to a read-only one.
func (r RefMut) Ref() Ref {
	return Ref{
		buffer: r.buffer,
		length: r.length,
		align:  r.align,
	}
}
