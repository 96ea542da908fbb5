package array

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrimitiveArray(t *testing.T) {
	a := NewPrimitiveArray[int64]()
	a.Push(1)
	a.Push(2)
	a.Push(3)

	require.Equal(t, 3, a.Len())
	for i, want := range []int64{1, 2, 3} {
		got, ok := a.Get(i)
		require.True(t, ok)
		assert.Equal(t, want, got)
	}

	_, ok := a.Get(3)
	assert.False(t, ok)
	_, ok = a.Get(-1)
	assert.False(t, ok)

	p, ok := a.GetMut(1)
	require.True(t, ok)
	*p = 42
	assert.Equal(t, int64(42), a.GetUnchecked(1))

	a.PushZero()
	assert.Equal(t, []int64{1, 42, 3, 0}, a.Values())
	assert.Panics(t, func() { a.GetUnchecked(4) })
}

func TestFixedSizeListArray(t *testing.T) {
	a := NewFixedSizeListArray[int32](2)
	a.Push([]int32{1, 2})
	a.Push([]int32{3, 4})

	got, ok := a.Get(0)
	require.True(t, ok)
	assert.Equal(t, []int32{1, 2}, got)

	got, ok = a.Get(1)
	require.True(t, ok)
	assert.Equal(t, []int32{3, 4}, got)

	a.PushZero()
	got, ok = a.Get(2)
	require.True(t, ok)
	assert.Equal(t, []int32{0, 0}, got)

	_, ok = a.Get(3)
	assert.False(t, ok)
	assert.Equal(t, 3, a.Len())

	m, ok := a.GetMut(1)
	require.True(t, ok)
	m[1] = 9
	assert.Equal(t, []int32{3, 9}, a.GetUnchecked(1))
}

func TestFixedSizeListArray_Preconditions(t *testing.T) {
	assert.Panics(t, func() { NewFixedSizeListArray[int32](0) })

	a := NewFixedSizeListArray[int32](3)
	assert.Panics(t, func() { a.Push([]int32{1, 2}) })

	a.Push([]int32{1, 2, 3})
	assert.Panics(t, func() { a.GetUnchecked(1) })
}

func TestFixedSizeListArray_GetDoesNotLeakCapacity(t *testing.T) {
	a := NewFixedSizeListArray[uint8](2)
	a.Push([]uint8{1, 2})
	a.Push([]uint8{3, 4})

	first, _ := a.Get(0)
	first = append(first, 7)
	assert.Equal(t, []uint8{1, 2, 7}, first)

	second, _ := a.Get(1)
	assert.Equal(t, []uint8{3, 4}, second)
}

func TestListArray(t *testing.T) {
	a := NewListArray[uint8]()
	a.Push([]uint8{1, 2})
	a.Push([]uint8{2, 3, 4})

	got, ok := a.Get(0)
	require.True(t, ok)
	assert.Equal(t, []uint8{1, 2}, got)

	got, ok = a.Get(1)
	require.True(t, ok)
	assert.Equal(t, []uint8{2, 3, 4}, got)

	_, ok = a.Get(2)
	assert.False(t, ok)

	a.PushZero()
	got, ok = a.Get(2)
	require.True(t, ok)
	assert.Empty(t, got)

	a.Push([]uint8{5})
	assert.Equal(t, 4, a.Len())
	assert.Equal(t, []int{0, 2, 5, 5, 6}, a.Offsets())
	assert.Equal(t, []uint8{1, 2, 2, 3, 4, 5}, a.Data())
}

func TestListArray_OffsetsMonotonic(t *testing.T) {
	a := NewListArray[int16]()
	for i := 0; i < 100; i++ {
		if i%7 == 0 {
			a.PushZero()
			continue
		}
		v := make([]int16, i%5)
		for j := range v {
			v[j] = int16(i)
		}
		a.Push(v)
	}

	offsets := a.Offsets()
	require.Len(t, offsets, a.Len()+1)
	assert.Equal(t, 0, offsets[0])
	for i := 1; i < len(offsets); i++ {
		assert.LessOrEqual(t, offsets[i-1], offsets[i])
	}
	assert.Equal(t, len(a.Data()), offsets[len(offsets)-1])

	for i := 0; i < a.Len(); i++ {
		got := a.GetUnchecked(i)
		if i%7 == 0 {
			assert.Empty(t, got)
			continue
		}
		assert.Len(t, got, i%5)
		for _, v := range got {
			assert.Equal(t, int16(i), v)
		}
	}
}

func TestConstFixedSizeListArray(t *testing.T) {
	a := NewConstFixedSizeListArray[uint8, Size4]()
	assert.Equal(t, 4, a.ListSize())

	a.Push([]uint8{10, 0, 0, 1})
	a.PushZero()

	got, ok := a.Get(0)
	require.True(t, ok)
	assert.Equal(t, []uint8{10, 0, 0, 1}, got)
	assert.Equal(t, []uint8{0, 0, 0, 0}, a.GetUnchecked(1))
	assert.Equal(t, 2, a.Len())

	assert.Panics(t, func() { a.Push(make([]uint8, 16)) })

	b := NewConstFixedSizeListArray[uint8, Size16]()
	b.Push(make([]uint8, 16))
	assert.Equal(t, 1, b.Len())
}

func TestKind(t *testing.T) {
	type celsius float32

	assert.Equal(t, KindInt64, KindOf[int64]())
	assert.Equal(t, KindUint8, KindOf[byte]())
	assert.Equal(t, KindBool, KindOf[bool]())
	assert.Equal(t, KindFloat32, KindOf[celsius]())
	assert.Equal(t, "float32", KindOf[celsius]().String())
	assert.Equal(t, 4, KindFloat32.Size())
	assert.Equal(t, "invalid", Kind(200).String())
}

func TestNullable(t *testing.T) {
	v, ok := Some(3).Get()
	assert.True(t, ok)
	assert.Equal(t, 3, v)

	_, ok = None[int]().Get()
	assert.False(t, ok)

	assert.Equal(t, "3", Some(3).String())
	assert.Equal(t, "null", None[int]().String())
}
