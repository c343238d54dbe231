// Package switches implements the toggle simulation behind the switchboard
// problem: a 1-indexed row of binary switch states mutated by an ordered
// sequence of interval and symmetric toggle commands.
package switches

import (
	"fmt"

	"bojlab/internal/core"
)

// Command kinds. The judge input encodes them as the leading token of each
// command line: 1 toggles every multiple of the index, 2 toggles the maximal
// value-symmetric run around the index.
const (
	KindInterval  = 1
	KindSymmetric = 2
)

// Command is one toggle instruction. Commands are built once from input and
// never mutated afterwards.
type Command struct {
	Kind  int
	Index int
}

// Engine owns one StateRow for the duration of a run and applies commands
// against it in order.
type Engine struct {
	row *core.StateRow

	// history, when non-nil, receives a snapshot after every applied
	// command (plus the initial state) for playback rendering.
	history *core.HistoryGrid
}

// New creates an engine around the provided row. The engine takes ownership
// of the row until Run returns.
func New(row *core.StateRow) *Engine {
	return &Engine{row: row}
}

// Record attaches a history grid that snapshots the row after each command.
func (e *Engine) Record(h *core.HistoryGrid) { e.history = h }

// Row exposes the engine's state row.
func (e *Engine) Row() *core.StateRow { return e.row }

// ApplyInterval flips every switch whose 1-based index is an exact multiple
// of divisor.
func (e *Engine) ApplyInterval(divisor int) {
	n := e.row.Len()
	for i := divisor; i <= n; i += divisor {
		e.row.Toggle(i)
	}
}

// ApplySymmetric flips the maximal contiguous run of switches that is
// value-symmetric around center. Expansion is greedy and outward: starting
// from the center alone, grow one step at a time and stop at the first step
// where either side leaves [1, N] or the mirrored values differ. The run
// found by the last successful step is toggled. A center on the boundary
// has no room to expand, so only the center itself flips.
func (e *Engine) ApplySymmetric(center int) {
	n := e.row.Len()
	d := 0
	for {
		lo, hi := center-(d+1), center+(d+1)
		if lo < 1 || hi > n {
			break
		}
		if e.row.Get(lo) != e.row.Get(hi) {
			break
		}
		d++
	}
	for i := center - d; i <= center+d; i++ {
		e.row.Toggle(i)
	}
}

// Apply dispatches a single command to the matching toggle operation.
func (e *Engine) Apply(cmd Command) error {
	switch cmd.Kind {
	case KindInterval:
		e.ApplyInterval(cmd.Index)
	case KindSymmetric:
		e.ApplySymmetric(cmd.Index)
	default:
		return fmt.Errorf("unknown command kind %d", cmd.Kind)
	}
	if e.history != nil {
		e.history.AppendRow(e.row)
	}
	return nil
}

// Run applies each command in sequence against the shared row and returns
// the final state. Later commands observe the effects of earlier ones.
func (e *Engine) Run(cmds []Command) (*core.StateRow, error) {
	if e.history != nil {
		e.history.AppendRow(e.row)
	}
	for _, cmd := range cmds {
		if err := e.Apply(cmd); err != nil {
			return nil, err
		}
	}
	return e.row, nil
}
