package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"bojlab/internal/notify"
	"bojlab/internal/session"
)

var sessionAnnounce bool

var sessionCmd = &cobra.Command{
	Use:   "session",
	Short: "Show the current study session and its recent runs",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := session.Open(cfg.DatabasePath)
		if err != nil {
			return err
		}
		defer store.Close()

		sess, err := store.Current(cmd.Context(), time.Now())
		if err != nil {
			return err
		}
		fmt.Println(sess.Label())

		runs, err := store.RecentRuns(cmd.Context(), sess.Number, 10)
		if err != nil {
			return err
		}
		for _, r := range runs {
			status := "PASS"
			if !r.Ok {
				status = "FAIL"
			}
			fmt.Printf("  %s %s %s %d/%d (%s)\n", status, r.Member, r.Problem,
				r.Passed, r.Passed+r.Failed, r.CreatedAt.Format("01-02 15:04"))
		}
		return nil
	},
}

var sessionAdvanceCmd = &cobra.Command{
	Use:   "advance",
	Short: "Start the next weekly session (the Monday reset)",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := session.Open(cfg.DatabasePath)
		if err != nil {
			return err
		}
		defer store.Close()

		sess, err := store.Advance(cmd.Context(), time.Now())
		if err != nil {
			return err
		}
		logger.Info("session advanced", zap.Int("session", sess.Number))
		fmt.Println(sess.Label())

		if sessionAnnounce && cfg.WebhookURL != "" {
			n := notify.New(cfg.WebhookURL, notify.DefaultTimeout)
			if err := n.Send(cmd.Context(), notify.SessionStartMessage(sess)); err != nil {
				logger.Warn("session announcement failed", zap.Error(err))
			}
		}
		return nil
	},
}

func init() {
	sessionAdvanceCmd.Flags().BoolVar(&sessionAnnounce, "announce", false, "announce the new session to the webhook")
	sessionCmd.AddCommand(sessionAdvanceCmd)
}
