package colstore

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/RoaringBitmap/roaring/v2"
	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/colstore/array"
	"github.com/hupe1980/colstore/index"
	"github.com/hupe1980/colstore/internal/conv"
)

// Column is a named sequence of rows.
type Column interface {
	Name() string
	Len() int
	PushZero()
}

// Matcher is a predicate over one column of a chunk.
type Matcher interface {
	// Column returns the name of the column the predicate reads.
	Column() string
	// Bind resolves the predicate against the current column contents.
	// Chunk.Select calls it under the chunk's read lock.
	Bind() Predicate

	column() Column
}

// Predicate is a Matcher bound to the rows of its column.
type Predicate interface {
	// Probes returns the index lookups that narrow the candidate rows.
	Probes() []index.Probe
	// Match evaluates the predicate against the raw value of row.
	Match(row int) bool
}

type indexable interface {
	Column
	buildIndex(ctx context.Context, cfg index.Config) (index.Index[int], error)
	attachIndex(cfg index.Config, ix index.Index[int])
}

// ChunkMeta describes the time range covered by a chunk. Every field column
// holds SeriesLen samples per row, taken Interval apart from StartAt.
type ChunkMeta struct {
	StartAt   time.Time
	Interval  time.Duration
	SeriesLen uint32
}

// EndAt returns the timestamp of the last sample.
func (m ChunkMeta) EndAt() time.Time {
	if m.SeriesLen == 0 {
		return m.StartAt
	}
	return m.StartAt.Add(m.Interval * time.Duration(m.SeriesLen-1))
}

// Chunk is a set of equally long label and field columns over one time range.
//
// Chunk methods are safe for concurrent use. Columns obtained from a chunk
// must be written inside Update.
type Chunk struct {
	mu      sync.RWMutex
	meta    ChunkMeta
	columns map[string]Column
	order   []string
	logger  *Logger
	metrics MetricsCollector
}

// NewChunk creates an empty chunk.
func NewChunk(meta ChunkMeta, optFns ...Option) *Chunk {
	opts := applyOptions(optFns)
	return &Chunk{
		meta:    meta,
		columns: make(map[string]Column),
		logger:  opts.logger.WithChunk(meta),
		metrics: opts.metrics,
	}
}

// Meta returns the chunk's time range.
func (c *Chunk) Meta() ChunkMeta {
	return c.meta
}

// AddColumn adds col to the chunk.
func (c *Chunk) AddColumn(col Column) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	name := col.Name()
	if _, ok := c.columns[name]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateColumn, name)
	}
	if sized, ok := col.(interface{ ListSize() int }); ok && c.meta.SeriesLen > 0 {
		if sized.ListSize() != int(c.meta.SeriesLen) {
			return fmt.Errorf("%w: column %q holds %d samples per row, chunk holds %d",
				ErrSeriesLength, name, sized.ListSize(), c.meta.SeriesLen)
		}
	}
	c.columns[name] = col
	c.order = append(c.order, name)
	return nil
}

// Column returns the column called name.
func (c *Chunk) Column(name string) (Column, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	col, ok := c.columns[name]
	return col, ok
}

// Columns returns the column names in insertion order.
func (c *Chunk) Columns() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Clone(c.order)
}

// Label returns the label column called name with value types R and M.
func Label[R, M any](c *Chunk, name string) (*LabelColumn[R, M], error) {
	col, ok := c.Column(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrColumnNotFound, name)
	}
	label, ok := col.(*LabelColumn[R, M])
	if !ok {
		return nil, fmt.Errorf("%w: %q is %T", ErrColumnNotFound, name, col)
	}
	return label, nil
}

// Field returns the field column called name with sample type P.
func Field[P array.Primitive](c *Chunk, name string) (*FieldColumn[P], error) {
	col, ok := c.Column(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrColumnNotFound, name)
	}
	field, ok := col.(*FieldColumn[P])
	if !ok {
		return nil, fmt.Errorf("%w: %q is %T", ErrColumnNotFound, name, col)
	}
	return field, nil
}

// Update runs fn under the chunk's write lock.
func (c *Chunk) Update(fn func() error) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return fn()
}

// Len returns the row count of the longest column.
func (c *Chunk) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.lenLocked()
}

func (c *Chunk) lenLocked() int {
	n := 0
	for _, col := range c.columns {
		n = max(n, col.Len())
	}
	return n
}

// Aligned returns an *ErrColumnLength for the first column whose row count
// differs from the first column added.
func (c *Chunk) Aligned() error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.alignedLocked()
}

func (c *Chunk) alignedLocked() error {
	if len(c.order) == 0 {
		return nil
	}
	expected := c.columns[c.order[0]].Len()
	for _, name := range c.order[1:] {
		if n := c.columns[name].Len(); n != expected {
			return &ErrColumnLength{Column: name, Expected: expected, Actual: n}
		}
	}
	return nil
}

// Pad appends null rows to every column shorter than the longest one.
func (c *Chunk) Pad() {
	c.mu.Lock()
	defer c.mu.Unlock()

	n := c.lenLocked()
	for _, col := range c.columns {
		for col.Len() < n {
			col.PushZero()
		}
	}
}

// BuildIndexes adds one index per entry of configs, building them in
// parallel. Either every index is attached or, on error, none is.
func (c *Chunk) BuildIndexes(ctx context.Context, configs map[string]index.Config) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	type job struct {
		col indexable
		cfg index.Config
	}

	jobs := make([]job, 0, len(configs))
	for name, cfg := range configs {
		col, ok := c.columns[name]
		if !ok {
			return fmt.Errorf("%w: %q", ErrColumnNotFound, name)
		}
		ix, ok := col.(indexable)
		if !ok {
			return fmt.Errorf("%w: %q", ErrNotIndexable, name)
		}
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("column %q: %w", name, err)
		}
		jobs = append(jobs, job{col: ix, cfg: cfg})
	}

	built := make([]index.Index[int], len(jobs))
	g, gctx := errgroup.WithContext(ctx)
	for i, j := range jobs {
		g.Go(func() error {
			start := time.Now()
			ix, err := j.col.buildIndex(gctx, j.cfg)
			elapsed := time.Since(start)

			c.logger.LogIndexBuild(gctx, j.col.Name(), j.cfg.String(), j.col.Len(), elapsed, err)
			c.metrics.RecordIndexBuild(j.col.Name(), j.col.Len(), elapsed, err)
			if err != nil {
				return fmt.Errorf("column %q: %w", j.col.Name(), err)
			}
			built[i] = ix
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for i, j := range jobs {
		j.col.attachIndex(j.cfg, built[i])
	}
	return nil
}

// Select returns the rows matching every matcher. Candidate rows come from
// fusing the matchers' index probes; they are checked against the raw column
// values unless every matcher was answered by an exact index. A matcher on a
// value the column has never stored matches no rows.
func (c *Chunk) Select(ctx context.Context, matchers ...Matcher) (*roaring.Bitmap, error) {
	start := time.Now()

	c.mu.RLock()
	defer c.mu.RUnlock()

	rows, candidates, exact, err := c.selectLocked(ctx, matchers)

	matched := 0
	if rows != nil {
		matched = int(rows.GetCardinality())
	}
	c.logger.LogSelect(ctx, len(matchers), candidates, matched, exact, err)
	c.metrics.RecordSelect(candidates, matched, exact, time.Since(start), err)
	return rows, err
}

func (c *Chunk) selectLocked(ctx context.Context, matchers []Matcher) (*roaring.Bitmap, int, bool, error) {
	if err := ctx.Err(); err != nil {
		return nil, 0, false, err
	}
	for _, m := range matchers {
		if col, ok := c.columns[m.Column()]; !ok || col != m.column() {
			return nil, 0, false, fmt.Errorf("%w: %q", ErrColumnNotFound, m.Column())
		}
	}
	if err := c.alignedLocked(); err != nil {
		return nil, 0, false, err
	}

	var (
		probes []index.Probe
		verify []Predicate
	)
	for _, m := range matchers {
		p := m.Bind()
		ps := p.Probes()
		probes = append(probes, ps...)
		if !slices.ContainsFunc(ps, index.Probe.Exactly) {
			verify = append(verify, p)
		}
	}

	n, err := conv.RowID(c.lenLocked())
	if err != nil {
		return nil, 0, false, err
	}
	acc := index.NewAccumulator()
	index.Fuse(acc, probes...)
	candidates := int(acc.Cardinality(n))

	if acc.IsEmpty() {
		return acc.Rows(), 0, true, nil
	}
	if len(verify) == 0 && acc.Constrained() {
		return acc.Rows(), candidates, true, nil
	}

	out := roaring.New()
	i := 0
	for row := range acc.Candidates(n) {
		if i%ctxCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return nil, candidates, false, err
			}
		}
		i++
		if matchAll(verify, int(row)) {
			out.Add(row)
		}
	}
	return out, candidates, len(verify) == 0, nil
}

func matchAll(predicates []Predicate, row int) bool {
	for _, p := range predicates {
		if !p.Match(row) {
			return false
		}
	}
	return true
}
