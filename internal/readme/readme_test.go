package readme

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bojlab/internal/session"
)

func testSession() session.Session {
	monday, sunday := session.Week(time.Date(2026, 8, 26, 0, 0, 0, 0, session.Zone()))
	return session.Session{Number: 7, Monday: monday, Sunday: sunday}
}

func TestUpdateAppendsBlockToFreshDoc(t *testing.T) {
	doc := "# Study Group\n\nIntro text.\n"
	out, err := Update(doc, testSession(), []Record{
		{Problem: "1244", Member: "mina", Date: "2026-08-25"},
	})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, doc))
	assert.Contains(t, out, "Session 7 (2026-08-24 ~ 2026-08-30)")
	assert.Contains(t, out, "| 1244 | mina | 2026-08-25 |")
	assert.Contains(t, out, "Deadline: 2026-08-30 23:59")
}

func TestUpdateKeepsExistingRecordsAndSurroundingText(t *testing.T) {
	doc := "# Study Group\n\n<!-- bojlab:begin -->\n" +
		"## Session 6 (2026-08-17 ~ 2026-08-23)\n\n" +
		"| Problem | Member | Solved |\n" +
		"|---------|--------|--------|\n" +
		"| 1008 | woojin | 2026-08-18 |\n" +
		"<!-- bojlab:end -->\n\nFooter.\n"

	out, err := Update(doc, testSession(), []Record{
		{Problem: "1244", Member: "mina", Date: "2026-08-25"},
	})
	require.NoError(t, err)

	assert.Contains(t, out, "| 1008 | woojin | 2026-08-18 |")
	assert.Contains(t, out, "| 1244 | mina | 2026-08-25 |")
	assert.Contains(t, out, "Session 7")
	assert.NotContains(t, out, "Session 6")
	assert.Contains(t, out, "# Study Group")
	assert.Contains(t, out, "Footer.")
}

func TestUpdateDeduplicatesByProblemAndMember(t *testing.T) {
	doc := "<!-- bojlab:begin -->\n" +
		"| 1244 | mina | 2026-08-20 |\n" +
		"<!-- bojlab:end -->"

	out, err := Update(doc, testSession(), []Record{
		{Problem: "1244", Member: "mina", Date: "2026-08-25"},
	})
	require.NoError(t, err)

	assert.Contains(t, out, "| 1244 | mina | 2026-08-20 |", "existing date wins")
	assert.Equal(t, 1, strings.Count(out, "| 1244 | mina |"))
}

func TestUpdateRejectsUnterminatedBlock(t *testing.T) {
	_, err := Update("<!-- bojlab:begin -->\nno end", testSession(), nil)
	require.Error(t, err)
}

func TestUpdateIsIdempotent(t *testing.T) {
	recs := []Record{{Problem: "11650", Member: "woojin", Date: "2026-08-26"}}
	once, err := Update("# Title\n", testSession(), recs)
	require.NoError(t, err)
	twice, err := Update(once, testSession(), recs)
	require.NoError(t, err)
	assert.Equal(t, once, twice)
}
