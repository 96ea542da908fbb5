// Package index provides secondary indexes that map column values to row ids.
//
// # Index Types
//
//   - InvertedIndex: exact map value → Roaring bitmap of rows. Exactly() is true.
//   - SparseIndex: one bloom filter per block of BlockSize rows. A lookup
//     returns every row of every block whose filter may contain the value, so
//     results over-approximate (whole blocks, filter false positives) but
//     never miss a stored row. Exactly() is false.
//
// Choose the inverted index for low-cardinality label columns and the sparse
// index when an exact posting list per value would be too large.
//
// # Accumulator
//
// Lookups write into an Accumulator that models an optional row set:
//
//	unconstrained   no lookup has narrowed the candidates yet
//	constrained     the running intersection of every lookup so far
//
// The first lookup initialises the set, later lookups AND into it. An
// InvertedIndex lookup of a value it has never seen leaves the accumulator
// unchanged; it does not force an empty result.
//
// # Fusion
//
// Conjunctive predicates run one lookup per predicate against the same
// accumulator:
//
//	acc := index.NewAccumulator()
//	exact := index.Fuse(acc,
//	    index.Bind(jobIndex, jobID),
//	    index.Bind(hostIndex, hostID),
//	)
//	if !exact {
//	    // verify every candidate row against the raw column values
//	}
//
// The index types do not synchronise access; callers hold a lock around
// Insert and Lookup when they share an index across goroutines.
package index
