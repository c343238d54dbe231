package main

import (
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"bojlab/internal/readme"
	"bojlab/internal/session"
)

var (
	readmeProblem string
	readmeMember  string
)

var readmeCmd = &cobra.Command{
	Use:   "readme",
	Short: "Update the solved-problems table in the README",
	Long: `Rewrite the managed block of the README for the current session.
With --problem a new solved record is appended; without it the block is
refreshed in place (weekly header, kept records).`,
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

		doc, err := os.ReadFile(cfg.ReadmePath)
		if err != nil && !os.IsNotExist(err) {
			return err
		}

		var recs []readme.Record
		if readmeProblem != "" {
			member := readmeMember
			if member == "" {
				member = cfg.Member
			}
			recs = append(recs, readme.Record{
				Problem: readmeProblem,
				Member:  member,
				Date:    time.Now().In(session.Zone()).Format("2006-01-02"),
			})
		}

		out, err := readme.Update(string(doc), sess, recs)
		if err != nil {
			return err
		}
		if err := os.WriteFile(cfg.ReadmePath, []byte(out), 0o644); err != nil {
			return err
		}
		logger.Info("readme updated",
			zap.String("path", cfg.ReadmePath),
			zap.Int("session", sess.Number),
			zap.Int("new_records", len(recs)))
		return nil
	},
}

func init() {
	readmeCmd.Flags().StringVar(&readmeProblem, "problem", "", "solved problem to record")
	readmeCmd.Flags().StringVar(&readmeMember, "member", "", "member who solved it (defaults to the configured member)")
}
