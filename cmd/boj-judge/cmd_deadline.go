package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"bojlab/internal/notify"
	"bojlab/internal/session"
)

var deadlineNag bool

var deadlineCmd = &cobra.Command{
	Use:   "deadline",
	Short: "Show the time left before the weekly deadline",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := session.Open(cfg.DatabasePath)
		if err != nil {
			return err
		}
		defer store.Close()

		now := time.Now()
		sess, err := store.Current(cmd.Context(), now)
		if err != nil {
			return err
		}
		left := session.TimeLeft(now)

		fmt.Printf("%s\n", sess.Label())
		if left < 0 {
			fmt.Println("deadline has passed")
		} else {
			fmt.Printf("%s left until %s 23:59 (KST)\n",
				left.Round(time.Minute), sess.Sunday.Format("2006-01-02"))
		}

		if deadlineNag && left > 0 && cfg.WebhookURL != "" {
			n := notify.New(cfg.WebhookURL, notify.DefaultTimeout)
			if err := n.Send(cmd.Context(), notify.DeadlineMessage(sess, left)); err != nil {
				logger.Warn("deadline nag failed", zap.Error(err))
			}
		}
		return nil
	},
}

func init() {
	deadlineCmd.Flags().BoolVar(&deadlineNag, "nag", false, "also send the reminder to the webhook")
}
