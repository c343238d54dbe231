// Package ratio solves the division problem: print A/B with nine digits
// after the decimal point.
package ratio

import (
	"fmt"
	"io"

	"bojlab/internal/core"
)

// Solver divides two integers read from the input.
type Solver struct{}

// New returns the ratio solver.
func New() *Solver { return &Solver{} }

// Name returns the solver identifier.
func (s *Solver) Name() string { return "ratio" }

// Solve reads two integers and writes their quotient with nine decimal
// places, matching the judge's precision requirement.
func (s *Solver) Solve(r io.Reader, w io.Writer) error {
	var a, b float64
	if _, err := fmt.Fscan(r, &a, &b); err != nil {
		return fmt.Errorf("read operands: %w", err)
	}
	if b == 0 {
		return fmt.Errorf("division by zero")
	}
	_, err := fmt.Fprintf(w, "%.9f\n", a/b)
	return err
}

func init() {
	core.Register("ratio", func(cfg map[string]string) core.Solver {
		return New()
	})
}
