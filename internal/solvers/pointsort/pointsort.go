// Package pointsort solves the coordinate sorting problem: N points
// ordered by x ascending, then y ascending on ties.
package pointsort

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strconv"

	"bojlab/internal/core"
)

type point struct {
	x, y int
}

// Solver sorts coordinate pairs by the composite (x, y) key.
type Solver struct{}

// New returns the pointsort solver.
func New() *Solver { return &Solver{} }

// Name returns the solver identifier.
func (s *Solver) Name() string { return "pointsort" }

// Solve reads N and then N coordinate pairs, sorts them lexicographically
// and writes one pair per line.
func (s *Solver) Solve(r io.Reader, w io.Writer) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 1024*1024)
	sc.Split(bufio.ScanWords)

	next := func() (int, error) {
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return 0, err
			}
			return 0, io.ErrUnexpectedEOF
		}
		return strconv.Atoi(sc.Text())
	}

	n, err := next()
	if err != nil {
		return fmt.Errorf("read point count: %w", err)
	}
	if n < 0 {
		return fmt.Errorf("point count %d is negative", n)
	}

	points := make([]point, n)
	for i := range points {
		if points[i].x, err = next(); err != nil {
			return fmt.Errorf("read point %d x: %w", i+1, err)
		}
		if points[i].y, err = next(); err != nil {
			return fmt.Errorf("read point %d y: %w", i+1, err)
		}
	}

	sort.SliceStable(points, func(i, j int) bool {
		if points[i].x != points[j].x {
			return points[i].x < points[j].x
		}
		return points[i].y < points[j].y
	})

	bw := bufio.NewWriter(w)
	for _, p := range points {
		if _, err := fmt.Fprintf(bw, "%d %d\n", p.x, p.y); err != nil {
			return err
		}
	}
	return bw.Flush()
}

func init() {
	core.Register("pointsort", func(cfg map[string]string) core.Solver {
		return New()
	})
}
