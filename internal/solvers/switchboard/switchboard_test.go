package switchboard

import (
	"strings"
	"testing"
)

func TestSolveSampleCase(t *testing.T) {
	in := strings.Join([]string{
		"8",
		"0 1 0 1 0 0 0 1",
		"2",
		"1 3",
		"2 3",
		"",
	}, "\n")

	var out strings.Builder
	if err := New().Solve(strings.NewReader(in), &out); err != nil {
		t.Fatalf("solve: %v", err)
	}
	want := "1 0 0 0 1 1 0 1\n"
	if out.String() != want {
		t.Fatalf("output %q, want %q", out.String(), want)
	}
}

func TestSolveSingleSwitch(t *testing.T) {
	in := "1\n1\n1\n2 1\n"
	var out strings.Builder
	if err := New().Solve(strings.NewReader(in), &out); err != nil {
		t.Fatalf("solve: %v", err)
	}
	if out.String() != "0\n" {
		t.Fatalf("output %q, want %q", out.String(), "0\n")
	}
}

func TestSolveRejectsGarbage(t *testing.T) {
	var out strings.Builder
	if err := New().Solve(strings.NewReader("not a number"), &out); err == nil {
		t.Fatal("expected parse error")
	}
}
