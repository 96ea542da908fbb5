package dictionary

import (
	"fmt"
	"testing"

	"github.com/hupe1980/colstore/array"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStringDictionary() *Dictionary[[]byte, []byte] {
	return New[[]byte, []byte](array.NewListArray[byte](), Bytes{})
}

func TestDictionary_Dedup(t *testing.T) {
	dict := newStringDictionary()

	id := dict.LookupOrInsert([]byte("hello, world"))
	id2 := dict.LookupOrInsert([]byte("hello, world"))
	assert.Equal(t, id, id2)

	id3 := dict.LookupOrInsert([]byte("hello world"))
	assert.NotEqual(t, id, id3)

	v1, ok := dict.Get(id)
	require.True(t, ok)
	v2, ok := dict.Get(id2)
	require.True(t, ok)
	assert.Equal(t, v1, v2)
	assert.Equal(t, "hello, world", string(v1))

	got, ok := dict.Lookup([]byte("hello, world"))
	require.True(t, ok)
	assert.Equal(t, 1, got)

	_, ok = dict.Lookup([]byte("unseen"))
	assert.False(t, ok)

	assert.Equal(t, 2, dict.Len())
}

func TestDictionary_ZeroIsNoValue(t *testing.T) {
	dict := newStringDictionary()
	dict.LookupOrInsert([]byte("a"))

	_, ok := dict.Get(0)
	assert.False(t, ok)
	_, ok = dict.GetUnchecked(0)
	assert.False(t, ok)
	_, ok = dict.GetMut(0)
	assert.False(t, ok)

	_, ok = dict.Get(2)
	assert.False(t, ok)

	v, ok := dict.GetUnchecked(1)
	require.True(t, ok)
	assert.Equal(t, []byte("a"), v)
}

func TestDictionary_IDsAreDense(t *testing.T) {
	dict := New[int64, *int64](array.NewPrimitiveArray[int64](), Scalar[int64]{})

	const n = 5000
	for round := 0; round < 2; round++ {
		for i := 0; i < n; i++ {
			id := dict.LookupOrInsert(int64(i * 7))
			require.Equal(t, i+1, id, "round %d value %d", round, i)
		}
	}
	assert.Equal(t, n, dict.Len())

	for i := 0; i < n; i++ {
		v, ok := dict.Get(i + 1)
		require.True(t, ok)
		assert.Equal(t, int64(i*7), v)
	}
}

func TestDictionary_StringsSurviveGrowth(t *testing.T) {
	dict := newStringDictionary()

	ids := make(map[string]int)
	for i := 0; i < 3000; i++ {
		s := fmt.Sprintf("series-%d", i%1000)
		id := dict.LookupOrInsert([]byte(s))
		if prev, ok := ids[s]; ok {
			require.Equal(t, prev, id, s)
		}
		ids[s] = id
	}

	require.Equal(t, 1000, dict.Len())
	for s, id := range ids {
		got, ok := dict.Lookup([]byte(s))
		require.True(t, ok, s)
		assert.Equal(t, id, got)
	}
}

func TestDictionary_FixedSizeLists(t *testing.T) {
	dict := New[[]uint8, []uint8](array.NewConstFixedSizeListArray[uint8, array.Size4](), Slice[uint8]{})

	a := dict.LookupOrInsert([]uint8{10, 0, 0, 1})
	b := dict.LookupOrInsert([]uint8{10, 0, 0, 2})
	c := dict.LookupOrInsert([]uint8{10, 0, 0, 1})

	assert.Equal(t, a, c)
	assert.NotEqual(t, a, b)
	assert.Equal(t, 2, dict.Values().Len())
}

func TestDictionary_IndexesPrefilledValues(t *testing.T) {
	values := array.NewListArray[byte]()
	values.Push([]byte("x"))
	values.Push([]byte("y"))

	dict := New[[]byte, []byte](values, Bytes{})
	id, ok := dict.Lookup([]byte("y"))
	require.True(t, ok)
	assert.Equal(t, 2, id)

	assert.Equal(t, 1, dict.LookupOrInsert([]byte("x")))
	assert.Equal(t, 3, dict.LookupOrInsert([]byte("z")))
}

func TestDictionary_GetMut(t *testing.T) {
	dict := New[int32, *int32](array.NewPrimitiveArray[int32](), Scalar[int32]{})
	id := dict.LookupOrInsert(5)

	p, ok := dict.GetMut(id)
	require.True(t, ok)
	*p = 6

	v, _ := dict.Get(id)
	assert.Equal(t, int32(6), v)
}

func TestHashers(t *testing.T) {
	assert.True(t, Bytes{}.Equal([]byte("ab"), []byte("ab")))
	assert.False(t, Bytes{}.Equal([]byte("ab"), []byte("a")))
	assert.True(t, Slice[int16]{}.Equal([]int16{1, 2}, []int16{1, 2}))
	assert.False(t, Slice[int16]{}.Equal([]int16{1, 2}, []int16{2, 1}))
	assert.True(t, Scalar[bool]{}.Equal(true, true))
}
