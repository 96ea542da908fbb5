package index

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want error
	}{
		{"inverted", Inverted(), nil},
		{"sparse", Sparse(1000), nil},
		{"sparse custom rate", Config{Kind: KindSparse, BlockSize: 10, FalsePositiveRate: 0.001}, nil},
		{"zero block size", Sparse(0), ErrInvalidBlockSize},
		{"rate one", Config{Kind: KindSparse, BlockSize: 10, FalsePositiveRate: 1}, ErrInvalidFalsePositiveRate},
		{"negative rate", Config{Kind: KindSparse, BlockSize: 10, FalsePositiveRate: -0.5}, ErrInvalidFalsePositiveRate},
		{"unknown kind", Config{Kind: Kind(7)}, ErrUnknownKind},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestParseConfig(t *testing.T) {
	cfg, err := ParseConfig("inverted")
	require.NoError(t, err)
	assert.Equal(t, Inverted(), cfg)

	cfg, err = ParseConfig(" sparse(1000) ")
	require.NoError(t, err)
	assert.Equal(t, Sparse(1000), cfg)

	cfg, err = ParseConfig("sparse(64, 0.001)")
	require.NoError(t, err)
	assert.Equal(t, uint32(64), cfg.BlockSize)
	assert.InDelta(t, 0.001, cfg.FalsePositiveRate, 1e-12)

	for _, cfg := range []Config{
		Inverted(),
		Sparse(1),
		Sparse(8192),
		{Kind: KindSparse, BlockSize: 100, FalsePositiveRate: 0.05},
	} {
		parsed, err := ParseConfig(cfg.String())
		require.NoError(t, err, cfg.String())
		assert.Equal(t, cfg, parsed)
	}
}

func TestParseConfig_Errors(t *testing.T) {
	tests := []struct {
		in   string
		want error
	}{
		{"bloom", ErrUnknownKind},
		{"sparse(0)", ErrInvalidBlockSize},
		{"sparse(-3)", ErrInvalidBlockSize},
		{"sparse(abc)", ErrInvalidBlockSize},
		{"sparse(10, x)", ErrInvalidFalsePositiveRate},
		{"sparse(10, 0)", ErrInvalidFalsePositiveRate},
		{"sparse(10, 2)", ErrInvalidFalsePositiveRate},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			_, err := ParseConfig(tt.in)
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
		})
	}

	_, err := ParseConfig("sparse(10")
	assert.Error(t, err)
}

func TestNew(t *testing.T) {
	ix, err := New[int](Inverted())
	require.NoError(t, err)
	assert.IsType(t, &InvertedIndex[int]{}, ix)
	assert.True(t, ix.Exactly())

	ix, err = New[int](Config{Kind: KindSparse, BlockSize: 32, FalsePositiveRate: 0.02})
	require.NoError(t, err)
	sparse, ok := ix.(*SparseIndex[int])
	require.True(t, ok)
	assert.False(t, sparse.Exactly())
	assert.Equal(t, uint32(32), sparse.BlockSize())
	assert.InDelta(t, 0.02, sparse.FalsePositiveRate(), 1e-12)

	sparse2, err := New[string](Sparse(16))
	require.NoError(t, err)
	assert.InDelta(t, DefaultFalsePositiveRate, sparse2.(*SparseIndex[string]).FalsePositiveRate(), 1e-12)

	_, err = New[int](Sparse(0))
	assert.ErrorIs(t, err, ErrInvalidBlockSize)
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "inverted", KindInverted.String())
	assert.Equal(t, "sparse", KindSparse.String())
	assert.Equal(t, "Kind(9)", Kind(9).String())
}
