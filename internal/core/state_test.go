package core

import "testing"

func TestStateRowIndexing(t *testing.T) {
	row := NewStateRow(5)
	if row.Len() != 5 {
		t.Fatalf("len = %d, want 5", row.Len())
	}
	row.Set(1, 1)
	row.Set(5, 1)
	if row.Get(1) != 1 || row.Get(5) != 1 || row.Get(3) != 0 {
		t.Fatalf("unexpected values after Set")
	}
	if got := len(row.Values()); got != 5 {
		t.Fatalf("Values() length = %d, want 5", got)
	}
	if row.Values()[0] != 1 {
		t.Fatalf("Values() must start at cell 1")
	}
}

func TestStateRowToggle(t *testing.T) {
	row := NewStateRow(3)
	row.Toggle(2)
	if row.Get(2) != 1 {
		t.Fatalf("toggle 0 -> %d, want 1", row.Get(2))
	}
	row.Toggle(2)
	if row.Get(2) != 0 {
		t.Fatalf("toggle 1 -> %d, want 0", row.Get(2))
	}
}

func TestStateRowCloneIsIndependent(t *testing.T) {
	row := NewStateRow(4)
	row.Set(2, 1)
	cp := row.Clone()
	cp.Toggle(2)
	if row.Get(2) != 1 {
		t.Fatalf("mutating the clone changed the original")
	}
}

func TestHistoryGridAppend(t *testing.T) {
	row := NewStateRow(3)
	row.Set(1, 1)
	h := NewHistoryGrid(3)
	h.AppendRow(row)
	row.Toggle(3)
	h.AppendRow(row)

	if h.H != 2 || h.W != 3 {
		t.Fatalf("grid is %dx%d, want 3x2", h.W, h.H)
	}
	if h.Cells()[h.Index(0, 0)] != 1 {
		t.Fatalf("row 0 lost cell 1")
	}
	if h.Cells()[h.Index(2, 0)] != 0 || h.Cells()[h.Index(2, 1)] != 1 {
		t.Fatalf("row snapshots must be independent of later mutation")
	}

	h.Clear()
	if h.H != 0 || len(h.Cells()) != 0 {
		t.Fatalf("clear left %d rows", h.H)
	}
}
