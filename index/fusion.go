package index

import "github.com/RoaringBitmap/roaring/v2"

// Probe is one predicate's lookup, detached from the index value type so
// probes over different columns can run together.
type Probe interface {
	Apply(acc *Accumulator)
	Exactly() bool
}

type bound[V comparable] struct {
	ix    Index[V]
	value V
}

func (b bound[V]) Apply(acc *Accumulator) { b.ix.Lookup(b.value, acc) }
func (b bound[V]) Exactly() bool          { return b.ix.Exactly() }

// Bind returns a probe that looks up value in ix.
func Bind[V comparable](ix Index[V], value V) Probe {
	return bound[V]{ix: ix, value: value}
}

type none struct{}

func (none) Apply(acc *Accumulator) { acc.intersectOwned(roaring.New()) }
func (none) Exactly() bool          { return true }

// MatchNone returns a probe that empties the accumulator.
func MatchNone() Probe {
	return none{}
}

// Fuse applies every probe to acc and reports whether the result is exact.
// Once acc is empty the remaining probes are skipped and the result is exact.
func Fuse(acc *Accumulator, probes ...Probe) bool {
	exact := true
	for _, p := range probes {
		p.Apply(acc)
		if acc.IsEmpty() {
			return true
		}
		exact = exact && p.Exactly()
	}
	return exact
}
