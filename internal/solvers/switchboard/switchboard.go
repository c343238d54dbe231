// Package switchboard solves the switch-toggling problem: N binary
// switches, M students each toggling either every multiple of their
// number or the maximal symmetric run around it.
package switchboard

import (
	"fmt"
	"io"

	"bojlab/internal/core"
	"bojlab/internal/switches"
)

// Solver runs the toggle simulation over one judge input.
type Solver struct{}

// New returns the switchboard solver.
func New() *Solver { return &Solver{} }

// Name returns the solver identifier.
func (s *Solver) Name() string { return "switchboard" }

// Solve reads the problem input from r, applies every command in order
// and writes the final switch states to w.
func (s *Solver) Solve(r io.Reader, w io.Writer) error {
	in, err := switches.ReadInput(r)
	if err != nil {
		return fmt.Errorf("parse input: %w", err)
	}
	engine := switches.New(in.Row)
	row, err := engine.Run(in.Commands)
	if err != nil {
		return err
	}
	return switches.WriteRow(w, row)
}

func init() {
	core.Register("switchboard", func(cfg map[string]string) core.Solver {
		return New()
	})
}
