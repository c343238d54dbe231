// Package judge runs problem solutions against stored testcases and
// reports pass/fail results, the way the study group's CI checks
// submissions: pipe the input file to the solution, capture stdout,
// compare against the expected output after normalization.
package judge

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"

	"bojlab/internal/core"
)

// Case is one stored testcase: the raw input and the expected output.
type Case struct {
	Name     string
	Input    string
	Expected string
}

// CaseResult records the outcome of running one testcase.
type CaseResult struct {
	Name    string        `json:"name"`
	Passed  bool          `json:"passed"`
	Elapsed time.Duration `json:"elapsed"`
	Reason  string        `json:"reason,omitempty"`
	Diff    string        `json:"diff,omitempty"`
}

// Report aggregates the results of one judge run over a problem.
type Report struct {
	RunID   string        `json:"run_id"`
	Problem string        `json:"problem"`
	Total   int           `json:"total"`
	Passed  int           `json:"passed"`
	Failed  int           `json:"failed"`
	Cases   []CaseResult  `json:"cases"`
	Elapsed time.Duration `json:"elapsed"`
}

// Ok reports whether every case passed.
func (r *Report) Ok() bool { return r.Failed == 0 && r.Total > 0 }

// Summary renders a one-line human summary of the run.
func (r *Report) Summary() string {
	status := "PASS"
	if !r.Ok() {
		status = "FAIL"
	}
	return fmt.Sprintf("%s %s: %d/%d cases passed (%.2fs)",
		status, r.Problem, r.Passed, r.Total, r.Elapsed.Seconds())
}

// Normalize trims each line and drops trailing blank lines so cosmetic
// whitespace differences do not fail a case.
func Normalize(s string) string {
	lines := strings.Split(strings.ReplaceAll(s, "\r\n", "\n"), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return strings.Join(lines, "\n")
}

// LoadCases reads <name>.in / <name>.out pairs from dir, sorted by name.
// An input without a matching expected output is an error.
func LoadCases(dir string) ([]Case, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read testcase dir: %w", err)
	}
	var cases []Case
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".in") {
			continue
		}
		name := strings.TrimSuffix(e.Name(), ".in")
		input, err := os.ReadFile(filepath.Join(dir, e.Name()))
		if err != nil {
			return nil, fmt.Errorf("read input %s: %w", e.Name(), err)
		}
		expected, err := os.ReadFile(filepath.Join(dir, name+".out"))
		if err != nil {
			return nil, fmt.Errorf("read expected output for %s: %w", name, err)
		}
		cases = append(cases, Case{Name: name, Input: string(input), Expected: string(expected)})
	}
	sort.Slice(cases, func(i, j int) bool { return cases[i].Name < cases[j].Name })
	if len(cases) == 0 {
		return nil, fmt.Errorf("no testcases in %s", dir)
	}
	return cases, nil
}

// Target produces the solution's output for one input. The two
// implementations are an in-process registered solver and an external
// command.
type Target interface {
	Run(ctx context.Context, input string) (string, error)
}

// SolverTarget judges a solver registered in the core registry.
type SolverTarget struct {
	Solver core.Solver
}

// Run feeds the input to the solver and returns its output.
func (t SolverTarget) Run(ctx context.Context, input string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	var out bytes.Buffer
	if err := t.Solver.Solve(strings.NewReader(input), &out); err != nil {
		return "", err
	}
	return out.String(), nil
}

// CommandTarget judges an external solution binary, the way the CI runs
// submissions in whatever language they were written.
type CommandTarget struct {
	Path string
	Args []string
}

// Run executes the command with the input piped to stdin. The context
// bounds the run; on timeout the process is killed and an error returned.
func (t CommandTarget) Run(ctx context.Context, input string) (string, error) {
	cmd := exec.CommandContext(ctx, t.Path, t.Args...)
	cmd.Stdin = strings.NewReader(input)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return "", fmt.Errorf("timed out: %w", ctx.Err())
		}
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			msg = err.Error()
		}
		return "", fmt.Errorf("solution failed: %s", msg)
	}
	return stdout.String(), nil
}

// Options tune a judge run.
type Options struct {
	// CaseTimeout bounds each case. Zero means no per-case limit.
	CaseTimeout time.Duration
}

// Run judges every case against the target and aggregates a report.
// Cases run in order; a failure does not stop the run.
func Run(ctx context.Context, problem string, target Target, cases []Case, opts Options) (*Report, error) {
	report := &Report{
		RunID:   uuid.NewString(),
		Problem: problem,
		Total:   len(cases),
	}
	start := time.Now()
	for _, c := range cases {
		res := runCase(ctx, target, c, opts.CaseTimeout)
		if res.Passed {
			report.Passed++
		} else {
			report.Failed++
		}
		report.Cases = append(report.Cases, res)
		if err := ctx.Err(); err != nil {
			return report, err
		}
	}
	report.Elapsed = time.Since(start)
	return report, nil
}

func runCase(ctx context.Context, target Target, c Case, timeout time.Duration) CaseResult {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	start := time.Now()
	got, err := target.Run(ctx, c.Input)
	res := CaseResult{Name: c.Name, Elapsed: time.Since(start)}
	if err != nil {
		res.Reason = err.Error()
		return res
	}
	want := Normalize(c.Expected)
	gotNorm := Normalize(got)
	if gotNorm != want {
		res.Reason = "output mismatch"
		res.Diff = cmp.Diff(want, gotNorm)
		return res
	}
	res.Passed = true
	return res
}
