package core

// HistoryGrid records successive row snapshots in row-major order so a
// run can be replayed or rendered after the fact. Row 0 is the initial
// state; each applied command appends one more row.
type HistoryGrid struct {
	W int
	H int

	data []uint8
}

// NewHistoryGrid allocates an empty history for rows of width w.
func NewHistoryGrid(w int) *HistoryGrid {
	if w <= 0 {
		w = 1
	}
	return &HistoryGrid{W: w}
}

// AppendRow snapshots the row's cells 1..N as the next history row.
func (g *HistoryGrid) AppendRow(row *StateRow) {
	g.data = append(g.data, row.Values()...)
	g.H++
}

// Cells exposes the backing slice so renderers can read values directly.
func (g *HistoryGrid) Cells() []uint8 { return g.data }

// Index returns the linear slice index for column x of history row y.
func (g *HistoryGrid) Index(x, y int) int { return y*g.W + x }

// Clear discards all recorded rows.
func (g *HistoryGrid) Clear() {
	g.data = g.data[:0]
	g.H = 0
}
