// Package hashtable implements an open-addressing table of (hash, id) entries.
//
// The table never stores keys. Callers resolve an id back to its value and
// confirm a probe with an equality callback, which lets a dictionary keep one
// canonical copy of each value in its backing array.
package hashtable

const (
	minCapacity = 16

	// Grow once the table is more than 7/8 full.
	maxLoadNum = 7
	maxLoadDen = 8
)

type slot struct {
	hash uint64
	// id+1; zero marks an empty slot.
	ref uint32
}

// Table maps 64-bit hashes to dense ids using linear probing.
type Table struct {
	slots []slot
	mask  uint64
	count int
}

// New creates a table sized for at least capacity entries.
func New(capacity int) *Table {
	size := minCapacity
	for size*maxLoadNum < capacity*maxLoadDen {
		size <<= 1
	}
	return &Table{
		slots: make([]slot, size),
		mask:  uint64(size - 1),
	}
}

// Len returns the number of entries.
func (t *Table) Len() int {
	return t.count
}

// Find probes the entries stored under hash and returns the first id accepted
// by eq.
func (t *Table) Find(hash uint64, eq func(id int) bool) (int, bool) {
	for i := hash & t.mask; ; i = (i + 1) & t.mask {
		s := &t.slots[i]
		if s.ref == 0 {
			return 0, false
		}
		if s.hash == hash && eq(int(s.ref-1)) {
			return int(s.ref - 1), true
		}
	}
}

// Insert adds an entry. The caller guarantees that no accepted entry for the
// same value exists.
func (t *Table) Insert(hash uint64, id int) {
	if (t.count+1)*maxLoadDen > len(t.slots)*maxLoadNum {
		t.grow()
	}
	t.place(hash, uint32(id)+1)
	t.count++
}

func (t *Table) place(hash uint64, ref uint32) {
	i := hash & t.mask
	for t.slots[i].ref != 0 {
		i = (i + 1) & t.mask
	}
	t.slots[i] = slot{hash: hash, ref: ref}
}

func (t *Table) grow() {
	old := t.slots
	t.slots = make([]slot, len(old)*2)
	t.mask = uint64(len(t.slots) - 1)
	for _, s := range old {
		if s.ref != 0 {
			t.place(s.hash, s.ref)
		}
	}
}
