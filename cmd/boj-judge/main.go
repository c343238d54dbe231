// Command boj-judge is the study group's CI tool: it judges submissions
// against stored testcases, generates testcases, keeps the session
// ledger, nags about deadlines and updates the README.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"bojlab/internal/config"
	"bojlab/internal/logging"
)

var (
	cfgPath string
	cfg     config.Config
	logger  *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "boj-judge",
	Short: "Judge and housekeeping tool for the algorithm study group",
	Long: `boj-judge runs problem solutions against stored testcases the way
the judge site would, records results per weekly session, sends webhook
notifications and maintains the solved-problems table in the README.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(cfgPath)
		if err != nil {
			return err
		}
		logger, err = logging.New(cfg.Debug)
		if err != nil {
			return fmt.Errorf("init logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "bojlab.yaml", "path to the config file")
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(genCmd)
	rootCmd.AddCommand(notifyCmd)
	rootCmd.AddCommand(readmeCmd)
	rootCmd.AddCommand(deadlineCmd)
	rootCmd.AddCommand(sessionCmd)
}
