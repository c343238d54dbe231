package core

import "io"

// Solver defines the minimal contract a problem solution must implement:
// read one well-formed input from r, write the answer to w. Solvers hold
// no state between calls.
type Solver interface {
	Name() string
	Solve(r io.Reader, w io.Writer) error
}

// Factory constructs a Solver using an optional configuration map.
type Factory func(cfg map[string]string) Solver

var solvers = map[string]Factory{}

// Register adds a solver factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	solvers[name] = f
}

// Solvers exposes the registry of available solver factories.
func Solvers() map[string]Factory {
	return solvers
}
