package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"bojlab/internal/judge"
)

var (
	genSeed  int64
	genCount int
)

var genCmd = &cobra.Command{
	Use:   "gen",
	Short: "Generate switchboard testcases with engine-produced answers",
	Long: `Generate deterministic random testcases for the switchboard problem
into <testcase_root>/switchboard. Expected outputs come from the
simulation engine, so the same seed always reproduces the same suite.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cases, err := judge.GenerateSwitchboard(genSeed, genCount)
		if err != nil {
			return err
		}
		dir := filepath.Join(cfg.TestcaseRoot, "switchboard")
		if err := judge.WriteCases(dir, cases); err != nil {
			return err
		}
		logger.Info("testcases generated",
			zap.Int64("seed", genSeed),
			zap.Int("cases", len(cases)),
			zap.String("dir", dir))
		fmt.Printf("wrote %d cases to %s\n", len(cases), dir)
		return nil
	},
}

func init() {
	genCmd.Flags().Int64Var(&genSeed, "seed", 1244, "generation seed")
	genCmd.Flags().IntVar(&genCount, "count", 10, "number of random cases beyond the fixed edge cases")
}
