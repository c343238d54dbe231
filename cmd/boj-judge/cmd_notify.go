package main

import (
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"bojlab/internal/notify"
)

var notifyCmd = &cobra.Command{
	Use:   "notify <message...>",
	Short: "Send a message to the configured webhook",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		n := notify.New(cfg.WebhookURL, notify.DefaultTimeout)
		text := strings.Join(args, " ")
		if err := n.Send(cmd.Context(), text); err != nil {
			return err
		}
		logger.Info("notification sent", zap.Int("bytes", len(text)))
		return nil
	},
}
