package switches

import (
	"strings"
	"testing"

	"bojlab/internal/core"
)

func rowFrom(values ...uint8) *core.StateRow {
	row := core.NewStateRow(len(values))
	for i, v := range values {
		row.Set(i+1, v)
	}
	return row
}

func assertRow(t *testing.T, row *core.StateRow, want ...uint8) {
	t.Helper()
	if row.Len() != len(want) {
		t.Fatalf("row length %d, want %d", row.Len(), len(want))
	}
	for i, w := range want {
		if got := row.Get(i + 1); got != w {
			t.Fatalf("switch %d is %d, want %d", i+1, got, w)
		}
	}
}

func TestIntervalToggle(t *testing.T) {
	e := New(rowFrom(0, 1, 0, 1, 0, 0, 0, 1))
	e.ApplyInterval(3)
	assertRow(t, e.Row(), 0, 1, 1, 1, 0, 1, 0, 1)
}

func TestIntervalDoubleToggleIsNoop(t *testing.T) {
	e := New(rowFrom(0, 1, 0, 1, 0, 0, 0, 1))
	before := e.Row().Clone()
	e.ApplyInterval(2)
	e.ApplyInterval(2)
	assertRow(t, e.Row(), before.Values()...)
}

func TestSymmetricStopsAtFirstMismatch(t *testing.T) {
	// state[2]==state[4] so the run grows to [2,4], but state[1]!=state[5]
	// stops further expansion; only 2..4 flip.
	e := New(rowFrom(1, 1, 0, 1, 0, 0, 0, 1))
	e.ApplySymmetric(3)
	assertRow(t, e.Row(), 1, 0, 1, 0, 0, 0, 0, 1)

	// With equal outer neighbors the same center keeps growing past [2,4]
	// until the left edge runs out, flipping 1..5.
	e = New(rowFrom(0, 1, 0, 1, 0, 0, 0, 1))
	e.ApplySymmetric(3)
	assertRow(t, e.Row(), 1, 0, 1, 0, 1, 0, 0, 1)
}

func TestSymmetricBoundaryFlipsOnlyCenter(t *testing.T) {
	e := New(rowFrom(1, 1, 1, 1))
	e.ApplySymmetric(1)
	assertRow(t, e.Row(), 0, 1, 1, 1)

	e = New(rowFrom(1, 1, 1, 1))
	e.ApplySymmetric(4)
	assertRow(t, e.Row(), 1, 1, 1, 0)
}

func TestSymmetricRunIsOddAndCentered(t *testing.T) {
	for center := 1; center <= 9; center++ {
		e := New(rowFrom(1, 1, 1, 1, 1, 1, 1, 1, 1))
		before := e.Row().Clone()
		e.ApplySymmetric(center)

		lo, hi := 0, 0
		for i := 1; i <= 9; i++ {
			if e.Row().Get(i) != before.Get(i) {
				if lo == 0 {
					lo = i
				}
				hi = i
			}
		}
		if lo == 0 {
			t.Fatalf("center %d: no switch flipped", center)
		}
		length := hi - lo + 1
		if length%2 == 0 {
			t.Fatalf("center %d: flipped run [%d,%d] has even length", center, lo, hi)
		}
		if (lo+hi)/2 != center {
			t.Fatalf("center %d: flipped run [%d,%d] not centered", center, lo, hi)
		}
		for i := lo; i <= hi; i++ {
			if e.Row().Get(i) == before.Get(i) {
				t.Fatalf("center %d: switch %d inside run unchanged", center, i)
			}
		}
	}
}

func TestCommandIsSelfInverse(t *testing.T) {
	cmds := []Command{
		{Kind: KindInterval, Index: 3},
		{Kind: KindSymmetric, Index: 5},
		{Kind: KindSymmetric, Index: 1},
	}
	for _, cmd := range cmds {
		e := New(rowFrom(0, 1, 0, 1, 0, 0, 0, 1))
		before := e.Row().Clone()
		if err := e.Apply(cmd); err != nil {
			t.Fatalf("apply: %v", err)
		}
		if err := e.Apply(cmd); err != nil {
			t.Fatalf("apply: %v", err)
		}
		assertRow(t, e.Row(), before.Values()...)
	}
}

func TestRunWithoutCommandsLeavesStateUnchanged(t *testing.T) {
	for _, n := range []int{1, 7, 100} {
		e := New(core.NewStateRow(n))
		row, err := e.Run(nil)
		if err != nil {
			t.Fatalf("run: %v", err)
		}
		for i := 1; i <= n; i++ {
			if row.Get(i) != 0 {
				t.Fatalf("n=%d: switch %d flipped with no commands", n, i)
			}
		}
	}
}

func TestRunOrdersCommands(t *testing.T) {
	// The symmetric expansion must observe the interval toggle's effect.
	e := New(rowFrom(0, 1, 0, 1, 0, 0, 0, 1))
	row, err := e.Run([]Command{
		{Kind: KindInterval, Index: 3},
		{Kind: KindSymmetric, Index: 3},
	})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	// After interval 3 the row is 0 1 1 1 0 1 0 1. Around center 3 the
	// run grows to [1,5] (1~5 mirror, then the left edge runs out), so
	// switches 1..5 flip.
	assertRow(t, row, 1, 0, 0, 0, 1, 1, 0, 1)
}

func TestRunRecordsHistory(t *testing.T) {
	e := New(rowFrom(0, 1, 0, 1, 0, 0, 0, 1))
	h := core.NewHistoryGrid(8)
	e.Record(h)
	if _, err := e.Run([]Command{{Kind: KindInterval, Index: 3}}); err != nil {
		t.Fatalf("run: %v", err)
	}
	if h.H != 2 {
		t.Fatalf("history rows = %d, want 2", h.H)
	}
	if h.Cells()[h.Index(2, 0)] != 0 || h.Cells()[h.Index(2, 1)] != 1 {
		t.Fatalf("history did not capture the toggle of switch 3")
	}
}

func TestReadInputRejectsMalformedInput(t *testing.T) {
	cases := map[string]string{
		"truncated states":   "4\n0 1\n",
		"bad state value":    "2\n0 2\n0\n",
		"bad command kind":   "2\n0 1\n1\n3 1\n",
		"index out of range": "2\n0 1\n1\n1 3\n",
		"count out of range": "0\n\n0\n",
	}
	for name, in := range cases {
		if _, err := ReadInput(strings.NewReader(in)); err == nil {
			t.Fatalf("%s: expected error, got none", name)
		}
	}
}

func TestWriteRowWrapsAtTwenty(t *testing.T) {
	row := core.NewStateRow(21)
	row.Set(21, 1)
	var sb strings.Builder
	if err := WriteRow(&sb, row); err != nil {
		t.Fatalf("write: %v", err)
	}
	want := "0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0\n1\n"
	if sb.String() != want {
		t.Fatalf("output %q, want %q", sb.String(), want)
	}
}
