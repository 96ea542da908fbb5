package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLabels(t *testing.T) {
	rng := NewRNG(4711)

	labels := rng.Labels("host", 8)

	require.Len(t, labels, 8)
	assert.Equal(t, "host-0", labels[0])
	assert.Equal(t, "host-7", labels[7])
}

func TestPick(t *testing.T) {
	rng := NewRNG(4711)
	set := rng.Labels("job", 3)

	rows := rng.Pick(set, 100)

	require.Len(t, rows, 100)
	for _, v := range rows {
		assert.Contains(t, set, v)
	}
}

func TestReset(t *testing.T) {
	rng := NewRNG(4711)
	a := rng.String(16)
	rng.Reset()
	b := rng.String(16)

	assert.Equal(t, a, b)
	assert.Equal(t, int64(4711), rng.Seed())
}

func TestAddresses(t *testing.T) {
	rng := NewRNG(4711)

	assert.Len(t, rng.IPv4(), 4)
	assert.Len(t, rng.IPv6(), 16)
}

func TestMask(t *testing.T) {
	rng := NewRNG(4711)

	all := rng.Mask(32, 1)
	none := rng.Mask(32, 0)
	for i := range all {
		assert.True(t, all[i])
		assert.False(t, none[i])
	}
}
