package index

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// DefaultFalsePositiveRate is the per-block bloom filter false-positive rate
// used when a sparse Config leaves FalsePositiveRate at zero.
const DefaultFalsePositiveRate = 0.01

var (
	// ErrInvalidBlockSize is returned when a sparse index has a zero block size.
	ErrInvalidBlockSize = errors.New("index: block size must be positive")

	// ErrInvalidFalsePositiveRate is returned when the rate is not in (0, 1).
	ErrInvalidFalsePositiveRate = errors.New("index: false-positive rate must be in (0, 1)")

	// ErrUnknownKind is returned for an unsupported index kind.
	ErrUnknownKind = errors.New("index: unknown kind")
)

// Index maps values to the rows holding them.
type Index[V comparable] interface {
	// Lookup intersects the rows that may hold value into acc.
	Lookup(value V, acc *Accumulator)

	// Insert records that row holds value.
	Insert(row uint32, value V)

	// Exactly reports whether Lookup returns precisely the matching rows.
	// An inexact index may return extra rows but never misses one.
	Exactly() bool
}

// Kind identifies an index implementation.
type Kind int

const (
	// KindInverted selects InvertedIndex.
	KindInverted Kind = iota
	// KindSparse selects SparseIndex.
	KindSparse
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindInverted:
		return "inverted"
	case KindSparse:
		return "sparse"
	default:
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Config describes the index to build for a column.
type Config struct {
	Kind Kind

	// BlockSize is the number of rows per bloom filter (sparse only).
	BlockSize uint32

	// FalsePositiveRate is the per-filter target rate (sparse only).
	// Zero means DefaultFalsePositiveRate.
	FalsePositiveRate float64
}

// Inverted returns the configuration of an inverted index.
func Inverted() Config {
	return Config{Kind: KindInverted}
}

// Sparse returns the configuration of a sparse index with blockSize rows per
// filter and the default false-positive rate.
func Sparse(blockSize uint32) Config {
	return Config{Kind: KindSparse, BlockSize: blockSize}
}

func (c Config) falsePositiveRate() float64 {
	if c.FalsePositiveRate == 0 {
		return DefaultFalsePositiveRate
	}
	return c.FalsePositiveRate
}

// Validate checks the configuration.
func (c Config) Validate() error {
	switch c.Kind {
	case KindInverted:
		return nil
	case KindSparse:
		if c.BlockSize == 0 {
			return ErrInvalidBlockSize
		}
		if fp := c.falsePositiveRate(); !(fp > 0 && fp < 1) {
			return fmt.Errorf("%w: %v", ErrInvalidFalsePositiveRate, fp)
		}
		return nil
	default:
		return fmt.Errorf("%w: %v", ErrUnknownKind, c.Kind)
	}
}

// String renders the configuration in the form accepted by ParseConfig.
func (c Config) String() string {
	if c.Kind != KindSparse {
		return c.Kind.String()
	}
	if c.FalsePositiveRate == 0 || c.FalsePositiveRate == DefaultFalsePositiveRate {
		return fmt.Sprintf("sparse(%d)", c.BlockSize)
	}
	return fmt.Sprintf("sparse(%d, %s)", c.BlockSize, strconv.FormatFloat(c.FalsePositiveRate, 'g', -1, 64))
}

// ParseConfig parses "inverted", "sparse(<block size>)" or
// "sparse(<block size>, <false-positive rate>)".
func ParseConfig(s string) (Config, error) {
	text := strings.TrimSpace(s)
	if text == "inverted" {
		return Inverted(), nil
	}

	args, ok := strings.CutPrefix(text, "sparse(")
	if !ok {
		return Config{}, fmt.Errorf("index: parse %q: %w", s, ErrUnknownKind)
	}
	args, ok = strings.CutSuffix(args, ")")
	if !ok {
		return Config{}, fmt.Errorf("index: parse %q: missing ')'", s)
	}

	sizeArg, rateArg, hasRate := strings.Cut(args, ",")
	size, err := strconv.ParseUint(strings.TrimSpace(sizeArg), 10, 32)
	if err != nil {
		return Config{}, fmt.Errorf("index: parse %q: %w: %w", s, ErrInvalidBlockSize, err)
	}
	cfg := Sparse(uint32(size))

	if hasRate {
		rate, err := strconv.ParseFloat(strings.TrimSpace(rateArg), 64)
		if err != nil {
			return Config{}, fmt.Errorf("index: parse %q: %w: %w", s, ErrInvalidFalsePositiveRate, err)
		}
		if rate == 0 {
			return Config{}, fmt.Errorf("index: parse %q: %w", s, ErrInvalidFalsePositiveRate)
		}
		cfg.FalsePositiveRate = rate
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("index: parse %q: %w", s, err)
	}
	return cfg, nil
}

// New creates an empty index described by cfg.
func New[V comparable](cfg Config) (Index[V], error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	switch cfg.Kind {
	case KindSparse:
		return NewSparseIndex[V](cfg.BlockSize, func(o *SparseOptions) {
			o.FalsePositiveRate = cfg.falsePositiveRate()
		})
	default:
		return NewInvertedIndex[V](), nil
	}
}
