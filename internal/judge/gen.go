package judge

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"bojlab/internal/core"
	"bojlab/internal/switches"
	pkgcore "bojlab/pkg/core"
)

// GenerateSwitchboard builds count random switchboard testcases plus a
// fixed set of edge cases, with expected outputs produced by the engine
// itself. The same seed always yields the same cases.
func GenerateSwitchboard(seed int64, count int) ([]Case, error) {
	rng := pkgcore.NewRNG(seed)

	var cases []Case

	edge := []struct {
		name string
		n    int
		cmds []switches.Command
	}{
		{"edge_single_switch", 1, []switches.Command{{Kind: switches.KindSymmetric, Index: 1}}},
		{"edge_no_commands", 5, nil},
		{"edge_max_switches", switches.MaxSwitches, []switches.Command{
			{Kind: switches.KindInterval, Index: 1},
			{Kind: switches.KindSymmetric, Index: switches.MaxSwitches},
		}},
	}
	for _, e := range edge {
		row := core.NewStateRow(e.n)
		pkgcore.FillBinary(rng.Source(), row.Values())
		c, err := buildCase(e.name, row, e.cmds)
		if err != nil {
			return nil, err
		}
		cases = append(cases, c)
	}

	for i := 0; i < count; i++ {
		n := rng.IntBetween(1, switches.MaxSwitches)
		row := core.NewStateRow(n)
		pkgcore.FillBinary(rng.Source(), row.Values())

		m := rng.IntBetween(1, 30)
		cmds := make([]switches.Command, m)
		for j := range cmds {
			kind := switches.KindInterval
			if rng.Bool() {
				kind = switches.KindSymmetric
			}
			cmds[j] = switches.Command{Kind: kind, Index: rng.IntBetween(1, n)}
		}
		c, err := buildCase(fmt.Sprintf("random_%03d", i+1), row, cmds)
		if err != nil {
			return nil, err
		}
		cases = append(cases, c)
	}
	return cases, nil
}

func buildCase(name string, row *core.StateRow, cmds []switches.Command) (Case, error) {
	var in strings.Builder
	n := row.Len()
	fmt.Fprintf(&in, "%d\n", n)
	for i := 1; i <= n; i++ {
		if i > 1 {
			in.WriteByte(' ')
		}
		in.WriteByte('0' + row.Get(i))
	}
	in.WriteByte('\n')
	fmt.Fprintf(&in, "%d\n", len(cmds))
	for _, cmd := range cmds {
		fmt.Fprintf(&in, "%d %d\n", cmd.Kind, cmd.Index)
	}

	engine := switches.New(row.Clone())
	final, err := engine.Run(cmds)
	if err != nil {
		return Case{}, fmt.Errorf("generate %s: %w", name, err)
	}
	var out strings.Builder
	if err := switches.WriteRow(&out, final); err != nil {
		return Case{}, err
	}
	return Case{Name: name, Input: in.String(), Expected: out.String()}, nil
}

// WriteCases stores cases into dir as <name>.in / <name>.out pairs.
func WriteCases(dir string, cases []Case) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create testcase dir: %w", err)
	}
	for _, c := range cases {
		if err := os.WriteFile(filepath.Join(dir, c.Name+".in"), []byte(c.Input), 0o644); err != nil {
			return fmt.Errorf("write %s.in: %w", c.Name, err)
		}
		if err := os.WriteFile(filepath.Join(dir, c.Name+".out"), []byte(c.Expected), 0o644); err != nil {
			return fmt.Errorf("write %s.out: %w", c.Name, err)
		}
	}
	return nil
}
