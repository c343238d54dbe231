package core

// StateRow stores a 1-indexed row of binary cell values. Index 0 is an
// unused sentinel so callers can address cells with the judge's 1..N
// convention directly.
type StateRow struct {
	n    int
	data []uint8
}

// NewStateRow allocates a row holding n cells, all zero.
func NewStateRow(n int) *StateRow {
	if n < 1 {
		n = 1
	}
	return &StateRow{n: n, data: make([]uint8, n+1)}
}

// Len returns the number of addressable cells.
func (r *StateRow) Len() int { return r.n }

// Get returns the value at 1-based index i.
func (r *StateRow) Get(i int) uint8 { return r.data[i] }

// Set writes v at 1-based index i.
func (r *StateRow) Set(i int, v uint8) { r.data[i] = v }

// Toggle flips the cell at 1-based index i between 0 and 1.
func (r *StateRow) Toggle(i int) { r.data[i] ^= 1 }

// Values exposes the cells 1..N as a slice view without the sentinel.
func (r *StateRow) Values() []uint8 { return r.data[1:] }

// Clone returns an independent copy of the row.
func (r *StateRow) Clone() *StateRow {
	cp := NewStateRow(r.n)
	copy(cp.data, r.data)
	return cp
}

// Clear fills the row with zeros.
func (r *StateRow) Clear() {
	for i := range r.data {
		r.data[i] = 0
	}
}
