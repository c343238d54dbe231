package switches

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"bojlab/internal/core"
)

// MaxSwitches is the upper bound on N in the judge's input contract.
const MaxSwitches = 100

// valuesPerLine is the output wrapping width fixed by the problem.
const valuesPerLine = 20

// Input is one fully parsed problem instance.
type Input struct {
	Row      *core.StateRow
	Commands []Command
}

// ReadInput parses the judge input: N, N space-separated 0/1 states, M,
// then M "<kind> <index>" command lines. Any deviation from the contract
// is an error; there is no recovery path.
func ReadInput(r io.Reader) (*Input, error) {
	sc := bufio.NewScanner(r)
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
		return nil, fmt.Errorf("read switch count: %w", err)
	}
	if n < 1 || n > MaxSwitches {
		return nil, fmt.Errorf("switch count %d out of range [1, %d]", n, MaxSwitches)
	}

	row := core.NewStateRow(n)
	for i := 1; i <= n; i++ {
		v, err := next()
		if err != nil {
			return nil, fmt.Errorf("read state %d: %w", i, err)
		}
		if v != 0 && v != 1 {
			return nil, fmt.Errorf("state %d is %d, want 0 or 1", i, v)
		}
		row.Set(i, uint8(v))
	}

	m, err := next()
	if err != nil {
		return nil, fmt.Errorf("read command count: %w", err)
	}
	if m < 0 {
		return nil, fmt.Errorf("command count %d is negative", m)
	}

	cmds := make([]Command, 0, m)
	for c := 0; c < m; c++ {
		kind, err := next()
		if err != nil {
			return nil, fmt.Errorf("read command %d kind: %w", c+1, err)
		}
		if kind != KindInterval && kind != KindSymmetric {
			return nil, fmt.Errorf("command %d kind is %d, want 1 or 2", c+1, kind)
		}
		idx, err := next()
		if err != nil {
			return nil, fmt.Errorf("read command %d index: %w", c+1, err)
		}
		if idx < 1 || idx > n {
			return nil, fmt.Errorf("command %d index %d out of range [1, %d]", c+1, idx, n)
		}
		cmds = append(cmds, Command{Kind: kind, Index: idx})
	}

	return &Input{Row: row, Commands: cmds}, nil
}

// WriteRow emits the final states 1..N space-separated, wrapped to 20
// values per line, every line newline-terminated.
func WriteRow(w io.Writer, row *core.StateRow) error {
	var sb strings.Builder
	n := row.Len()
	for i := 1; i <= n; i++ {
		sb.WriteByte('0' + row.Get(i))
		if i%valuesPerLine == 0 || i == n {
			sb.WriteByte('\n')
			continue
		}
		sb.WriteByte(' ')
	}
	_, err := io.WriteString(w, sb.String())
	return err
}
