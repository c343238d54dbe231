package notify

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bojlab/internal/judge"
	"bojlab/internal/session"
)

func TestSendPostsTextPayload(t *testing.T) {
	var got payload
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
	}))
	defer srv.Close()

	n := New(srv.URL, time.Second)
	require.NoError(t, n.Send(context.Background(), "hello"))
	assert.Equal(t, "hello", got.Text)
}

func TestSendFailsOnHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusForbidden)
	}))
	defer srv.Close()

	err := New(srv.URL, time.Second).Send(context.Background(), "hello")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "403")
}

func TestSendRequiresURL(t *testing.T) {
	require.Error(t, New("", time.Second).Send(context.Background(), "hi"))
}

func TestRunMessage(t *testing.T) {
	pass := &judge.Report{Problem: "switchboard", Total: 3, Passed: 3}
	assert.Contains(t, RunMessage("mina", pass), "✅")

	fail := &judge.Report{
		Problem: "switchboard", Total: 3, Passed: 2, Failed: 1,
		Cases: []judge.CaseResult{
			{Name: "a", Passed: true},
			{Name: "b", Reason: "output mismatch"},
		},
	}
	msg := RunMessage("mina", fail)
	assert.Contains(t, msg, "❌")
	assert.Contains(t, msg, "b: output mismatch")
	assert.NotContains(t, msg, "a:")
}

func TestSessionMessages(t *testing.T) {
	monday, sunday := session.Week(time.Date(2026, 8, 26, 0, 0, 0, 0, session.Zone()))
	s := session.Session{Number: 4, Monday: monday, Sunday: sunday}

	start := SessionStartMessage(s)
	assert.Contains(t, start, "Session 4")
	assert.Contains(t, start, "2026-08-30 23:59")

	nag := DeadlineMessage(s, 36*time.Hour)
	assert.Contains(t, nag, "36h left")
}
