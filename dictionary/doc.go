// Package dictionary implements value interning over any array shape.
//
// A Dictionary assigns dense ids to distinct values:
//
//	id 0       no value (never stored, never hashed)
//	id 1..N    value stored at position id-1 of the backing array
//
// The hash index holds only (hash, id) entries. A probe hit is confirmed by
// reading the candidate id's canonical value from the backing array and
// comparing it with the Hasher's Equal, so the dictionary keeps exactly one
// copy of every value.
//
// Hashes are computed with hash/maphash under a seed drawn once per
// dictionary: stable for the dictionary's lifetime, different across
// dictionaries and process runs.
//
// IDArray layers a per-row id sequence on top of a Dictionary and satisfies
// the array.Array contract with nullable items, which makes it the storage of
// dictionary-encoded label columns.
package dictionary
