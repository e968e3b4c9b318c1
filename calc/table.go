package calc

import (
	"iter"
	"maps"
	"slices"
	"sync"
)

// Table maps constant names to values. Names are case-sensitive. Entries
// are only ever added or overwritten, never removed.
//
// A Table is safe for concurrent use. The zero value is an empty table
// ready to use; a nil *Table behaves as an empty table for lookups.
type Table struct {
	mu sync.RWMutex
	m  map[string]float64
}

// NewTable returns an empty table.
func NewTable() *Table {
	return &Table{m: make(map[string]float64)}
}

// Lookup returns the value stored under name.
func (t *Table) Lookup(name string) (float64, bool) {
	if t == nil {
		return 0, false
	}

	t.mu.RLock()
	defer t.mu.RUnlock()

	v, ok := t.m[name]

	return v, ok
}

// Store sets name to v, replacing any previous value.
func (t *Table) Store(name string, v float64) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.m == nil {
		t.m = make(map[string]float64)
	}

	t.m[name] = v
}

// Len returns the number of stored constants.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}

	t.mu.RLock()
	defer t.mu.RUnlock()

	return len(t.m)
}

// Names returns the stored names in sorted order.
func (t *Table) Names() []string {
	if t == nil {
		return nil
	}

	t.mu.RLock()
	defer t.mu.RUnlock()

	return slices.Sorted(maps.Keys(t.m))
}

// All returns an iterator over a snapshot of the table in name order.
func (t *Table) All() iter.Seq2[string, float64] {
	snap := t.Snapshot()

	return func(yield func(string, float64) bool) {
		for _, name := range slices.Sorted(maps.Keys(snap)) {
			if !yield(name, snap[name]) {
				return
			}
		}
	}
}

// Snapshot returns a copy of the table contents.
func (t *Table) Snapshot() map[string]float64 {
	if t == nil {
		return map[string]float64{}
	}

	t.mu.RLock()
	defer t.mu.RUnlock()

	snap := maps.Clone(t.m)
	if snap == nil {
		snap = map[string]float64{}
	}

	return snap
}
