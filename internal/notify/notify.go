// Package notify posts study-group announcements to a Mattermost-style
// incoming webhook. One attempt per message, no retries; the caller
// decides whether a failed notification matters.
package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"bojlab/internal/judge"
	"bojlab/internal/session"
)

// DefaultTimeout bounds a webhook POST when the caller does not set one.
const DefaultTimeout = 10 * time.Second

// Notifier delivers messages to one webhook URL.
type Notifier struct {
	url     string
	client  *http.Client
	timeout time.Duration
}

// New creates a Notifier for the given webhook URL.
func New(url string, timeout time.Duration) *Notifier {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Notifier{url: url, client: &http.Client{}, timeout: timeout}
}

type payload struct {
	Text string `json:"text"`
}

// Send posts a plain text message to the webhook.
func (n *Notifier) Send(ctx context.Context, text string) error {
	if n.url == "" {
		return fmt.Errorf("webhook url not configured")
	}
	body, err := json.Marshal(payload{Text: text})
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(ctx, n.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		return fmt.Errorf("post webhook: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("webhook returned HTTP %d", resp.StatusCode)
	}
	return nil
}

// RunMessage formats a judge report as a pass/fail summary message.
func RunMessage(member string, report *judge.Report) string {
	icon := "✅"
	if !report.Ok() {
		icon = "❌"
	}
	msg := fmt.Sprintf("%s **%s** — %s", icon, member, report.Summary())
	if report.Ok() {
		return msg
	}
	for _, c := range report.Cases {
		if c.Passed {
			continue
		}
		msg += fmt.Sprintf("\n- %s: %s", c.Name, c.Reason)
	}
	return msg
}

// SessionStartMessage announces a new weekly session.
func SessionStartMessage(s session.Session) string {
	return fmt.Sprintf("🚀 **Session %d has started!**\n📅 %s ~ %s\n⏰ Deadline: %s 23:59",
		s.Number, s.Monday.Format("2006-01-02"), s.Sunday.Format("2006-01-02"),
		s.Sunday.Format("2006-01-02"))
}

// DeadlineMessage nags about the remaining time in the current week.
func DeadlineMessage(s session.Session, left time.Duration) string {
	hours := int(left.Hours())
	return fmt.Sprintf("⏰ **Session %d deadline approaching!**\n%dh left until %s 23:59",
		s.Number, hours, s.Sunday.Format("2006-01-02"))
}
