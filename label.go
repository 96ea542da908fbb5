package colstore

import (
	"context"
	"fmt"

	"github.com/hupe1980/colstore/array"
	"github.com/hupe1980/colstore/dictionary"
	"github.com/hupe1980/colstore/index"
	"github.com/hupe1980/colstore/internal/conv"
)

// ctxCheckInterval is the number of rows processed between context checks.
const ctxCheckInterval = 4096

// LabelColumn is a dictionary-encoded label column with optional secondary
// indexes keyed by dictionary id. Id 0 marks a null label and is indexed
// like any other id.
type LabelColumn[R, M any] struct {
	name    string
	values  *dictionary.IDArray[R, M]
	configs []index.Config
	indexes []index.Index[int]
}

// NewLabel creates an empty label column whose distinct values live in values.
func NewLabel[R, M any](name string, values array.Array[R, M], hasher dictionary.Hasher[R]) *LabelColumn[R, M] {
	return &LabelColumn[R, M]{
		name:   name,
		values: dictionary.NewIDArray(values, hasher),
	}
}

// NewStringLabel creates a label column of byte strings.
func NewStringLabel(name string) *LabelColumn[[]byte, []byte] {
	return NewLabel[[]byte, []byte](name, array.NewListArray[byte](), dictionary.Bytes{})
}

// NewIPv4Label creates a label column of 4-byte addresses.
func NewIPv4Label(name string) *LabelColumn[[]uint8, []uint8] {
	return NewLabel[[]uint8, []uint8](name, array.NewConstFixedSizeListArray[uint8, array.Size4](), dictionary.Slice[uint8]{})
}

// NewIPv6Label creates a label column of 16-byte addresses.
func NewIPv6Label(name string) *LabelColumn[[]uint8, []uint8] {
	return NewLabel[[]uint8, []uint8](name, array.NewConstFixedSizeListArray[uint8, array.Size16](), dictionary.Slice[uint8]{})
}

// NewIntLabel creates a label column of integers.
func NewIntLabel(name string) *LabelColumn[int64, *int64] {
	return NewLabel[int64, *int64](name, array.NewPrimitiveArray[int64](), dictionary.Scalar[int64]{})
}

// NewBoolLabel creates a label column of booleans.
func NewBoolLabel(name string) *LabelColumn[bool, *bool] {
	return NewLabel[bool, *bool](name, array.NewPrimitiveArray[bool](), dictionary.Scalar[bool]{})
}

// Name returns the column name.
func (c *LabelColumn[R, M]) Name() string {
	return c.name
}

// Len returns the number of rows.
func (c *LabelColumn[R, M]) Len() int {
	return c.values.Len()
}

// Get returns the label of row.
func (c *LabelColumn[R, M]) Get(row int) (array.Nullable[R], bool) {
	return c.values.Get(row)
}

// ID returns the dictionary id of row. Id 0 marks a null label.
func (c *LabelColumn[R, M]) ID(row int) (int, bool) {
	return c.values.ID(row)
}

// Dictionary returns the distinct labels of the column.
func (c *LabelColumn[R, M]) Dictionary() *dictionary.Dictionary[R, M] {
	return c.values.Dictionary()
}

// Push appends a label, which may be null.
func (c *LabelColumn[R, M]) Push(v array.Nullable[R]) {
	c.values.Push(v)
	c.indexLast()
}

// PushValue appends a present label.
func (c *LabelColumn[R, M]) PushValue(v R) {
	c.values.PushValue(v)
	c.indexLast()
}

// PushNull appends a null label.
func (c *LabelColumn[R, M]) PushNull() {
	c.PushZero()
}

// PushZero appends a null label.
func (c *LabelColumn[R, M]) PushZero() {
	c.values.PushZero()
	c.indexLast()
}

func (c *LabelColumn[R, M]) indexLast() {
	if len(c.indexes) == 0 {
		return
	}
	row := c.values.Len() - 1
	rowID := mustRowID(row)
	id, _ := c.values.ID(row)
	for _, ix := range c.indexes {
		ix.Insert(rowID, id)
	}
}

func mustRowID(row int) uint32 {
	id, err := conv.RowID(row)
	if err != nil {
		panic(fmt.Sprintf("colstore: %v", err))
	}
	return id
}

// AddIndex builds an index described by cfg over every existing row and
// keeps it current on later pushes. On error the column is left unchanged.
func (c *LabelColumn[R, M]) AddIndex(ctx context.Context, cfg index.Config) error {
	ix, err := c.buildIndex(ctx, cfg)
	if err != nil {
		return err
	}
	c.attachIndex(cfg, ix)
	return nil
}

func (c *LabelColumn[R, M]) buildIndex(ctx context.Context, cfg index.Config) (index.Index[int], error) {
	if _, err := conv.RowID(c.Len()); err != nil {
		return nil, err
	}
	ix, err := index.New[int](cfg)
	if err != nil {
		return nil, err
	}
	for row, id := range c.values.IDs() {
		if row%ctxCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		ix.Insert(uint32(row), id)
	}
	return ix, nil
}

func (c *LabelColumn[R, M]) attachIndex(cfg index.Config, ix index.Index[int]) {
	c.configs = append(c.configs, cfg)
	c.indexes = append(c.indexes, ix)
}

// Indexes returns the configuration of every index on the column.
func (c *LabelColumn[R, M]) Indexes() []index.Config {
	return c.configs
}

// Equal returns a matcher selecting rows whose label equals v. The value is
// resolved to its dictionary id when the matcher is bound by Chunk.Select.
func (c *LabelColumn[R, M]) Equal(v R) Matcher {
	return &labelMatcher[R, M]{col: c, value: v}
}

// IsNull returns a matcher selecting rows whose label is null.
func (c *LabelColumn[R, M]) IsNull() Matcher {
	return &labelMatcher[R, M]{col: c, null: true}
}

type labelMatcher[R, M any] struct {
	col   *LabelColumn[R, M]
	value R
	null  bool
}

func (m *labelMatcher[R, M]) Column() string {
	return m.col.name
}

func (m *labelMatcher[R, M]) column() Column {
	return m.col
}

func (m *labelMatcher[R, M]) Bind() Predicate {
	if m.null {
		return &labelPredicate[R, M]{col: m.col, id: 0}
	}
	id, ok := m.col.values.Lookup(m.value)
	if !ok {
		return &labelPredicate[R, M]{col: m.col, id: -1}
	}
	return &labelPredicate[R, M]{col: m.col, id: id}
}

// labelPredicate matches rows holding dictionary id. A negative id matches
// nothing.
type labelPredicate[R, M any] struct {
	col *LabelColumn[R, M]
	id  int
}

func (p *labelPredicate[R, M]) Probes() []index.Probe {
	if p.id < 0 {
		return []index.Probe{index.MatchNone()}
	}
	probes := make([]index.Probe, len(p.col.indexes))
	for i, ix := range p.col.indexes {
		// An inverted lookup of an unseen id leaves the candidates as they are.
		if inv, ok := ix.(*index.InvertedIndex[int]); ok {
			if _, seen := inv.Rows(p.id); !seen {
				return []index.Probe{index.MatchNone()}
			}
		}
		probes[i] = index.Bind(ix, p.id)
	}
	return probes
}

func (p *labelPredicate[R, M]) Match(row int) bool {
	id, ok := p.col.values.ID(row)
	return ok && id == p.id
}
