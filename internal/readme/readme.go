// Package readme maintains the solved-problems table in the study
// group's README. The managed block sits between begin/end markers and
// is rewritten wholesale; everything outside the markers is preserved.
package readme

import (
	"fmt"
	"sort"
	"strings"
	"text/template"

	"bojlab/internal/session"
)

const (
	beginMarker = "<!-- bojlab:begin -->"
	endMarker   = "<!-- bojlab:end -->"
)

// Record is one solved-problem entry.
type Record struct {
	Problem string
	Member  string
	Date    string
}

var sectionTmpl = template.Must(template.New("section").Parse(
	`{{.Begin}}
## {{.Session.Label}}

Deadline: {{.Deadline}} 23:59 (KST)

| Problem | Member | Solved |
|---------|--------|--------|
{{- range .Records}}
| {{.Problem}} | {{.Member}} | {{.Date}} |
{{- end}}
{{.End}}`))

// Update rewrites the managed block of doc with the session header and the
// merged record set. New records are appended to the ones already in the
// table; duplicates (same problem and member) keep the existing date.
// When doc has no managed block one is appended at the end.
func Update(doc string, sess session.Session, recs []Record) (string, error) {
	existing, before, after, err := split(doc)
	if err != nil {
		return "", err
	}

	merged := merge(existing, recs)

	var section strings.Builder
	err = sectionTmpl.Execute(&section, struct {
		Begin    string
		End      string
		Session  session.Session
		Deadline string
		Records  []Record
	}{
		Begin:    beginMarker,
		End:      endMarker,
		Session:  sess,
		Deadline: sess.Sunday.Format("2006-01-02"),
		Records:  merged,
	})
	if err != nil {
		return "", fmt.Errorf("render section: %w", err)
	}
	return before + section.String() + after, nil
}

// split cuts doc into the text before the block, the records inside it,
// and the text after it.
func split(doc string) (recs []Record, before, after string, err error) {
	begin := strings.Index(doc, beginMarker)
	if begin < 0 {
		if !strings.HasSuffix(doc, "\n") && doc != "" {
			doc += "\n"
		}
		return nil, doc + "\n", "\n", nil
	}
	end := strings.Index(doc, endMarker)
	if end < begin {
		return nil, "", "", fmt.Errorf("readme has %s without %s", beginMarker, endMarker)
	}
	block := doc[begin+len(beginMarker) : end]
	return parseRecords(block), doc[:begin], doc[end+len(endMarker):], nil
}

func parseRecords(block string) []Record {
	var recs []Record
	for _, line := range strings.Split(block, "\n") {
		line = strings.TrimSpace(line)
		if !strings.HasPrefix(line, "|") {
			continue
		}
		cells := strings.Split(strings.Trim(line, "|"), "|")
		if len(cells) != 3 {
			continue
		}
		rec := Record{
			Problem: strings.TrimSpace(cells[0]),
			Member:  strings.TrimSpace(cells[1]),
			Date:    strings.TrimSpace(cells[2]),
		}
		// Skip the header and its divider row.
		if rec.Problem == "Problem" || strings.HasPrefix(rec.Problem, "---") {
			continue
		}
		if rec.Problem != "" {
			recs = append(recs, rec)
		}
	}
	return recs
}

func merge(existing, incoming []Record) []Record {
	seen := make(map[string]bool, len(existing))
	merged := make([]Record, 0, len(existing)+len(incoming))
	for _, r := range existing {
		key := r.Problem + "/" + r.Member
		if !seen[key] {
			seen[key] = true
			merged = append(merged, r)
		}
	}
	for _, r := range incoming {
		key := r.Problem + "/" + r.Member
		if !seen[key] {
			seen[key] = true
			merged = append(merged, r)
		}
	}
	sort.SliceStable(merged, func(i, j int) bool {
		if merged[i].Problem != merged[j].Problem {
			return merged[i].Problem < merged[j].Problem
		}
		return merged[i].Member < merged[j].Member
	})
	return merged
}
