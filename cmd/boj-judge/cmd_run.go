package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"bojlab/internal/core"
	"bojlab/internal/judge"
	"bojlab/internal/notify"
	"bojlab/internal/readme"
	"bojlab/internal/session"
	_ "bojlab/internal/solvers/pointsort"
	_ "bojlab/internal/solvers/ratio"
	_ "bojlab/internal/solvers/switchboard"
)

var (
	runSolution string
	runJSON     bool
	runNotify   bool
	runReadme   bool
)

var runCmd = &cobra.Command{
	Use:   "run <problem>",
	Short: "Judge a problem against its stored testcases",
	Long: `Judge a problem against the testcases in <testcase_root>/<problem>.

Without --solution the registered in-repo solver is judged. With
--solution the given binary is run per case with the input piped to
stdin, the way the CI judges member submissions in any language.`,
	Args: cobra.ExactArgs(1),
	RunE: runRun,
}

func init() {
	runCmd.Flags().StringVar(&runSolution, "solution", "", "external solution binary to judge instead of the built-in solver")
	runCmd.Flags().BoolVar(&runJSON, "json", false, "print the full report as JSON")
	runCmd.Flags().BoolVar(&runNotify, "notify", false, "send the result to the configured webhook")
	runCmd.Flags().BoolVar(&runReadme, "update-readme", false, "record a pass in the README solved table")
}

func runRun(cmd *cobra.Command, args []string) error {
	problem := args[0]
	ctx := cmd.Context()

	cases, err := judge.LoadCases(filepath.Join(cfg.TestcaseRoot, problem))
	if err != nil {
		return err
	}

	var target judge.Target
	if runSolution != "" {
		target = judge.CommandTarget{Path: runSolution}
	} else {
		factory, ok := core.Solvers()[problem]
		if !ok {
			return fmt.Errorf("no registered solver %q and no --solution given", problem)
		}
		target = judge.SolverTarget{Solver: factory(nil)}
	}

	logger.Info("judging problem",
		zap.String("problem", problem),
		zap.Int("cases", len(cases)),
		zap.Duration("case_timeout", cfg.CaseTimeout.Std()))

	report, err := judge.Run(ctx, problem, target, cases, judge.Options{CaseTimeout: cfg.CaseTimeout.Std()})
	if err != nil {
		return err
	}

	logger.Info("judge run finished",
		zap.String("run_id", report.RunID),
		zap.Int("passed", report.Passed),
		zap.Int("failed", report.Failed))

	if err := recordRun(ctx, problem, report); err != nil {
		logger.Warn("could not record run", zap.Error(err))
	}

	if runJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(report); err != nil {
			return err
		}
	} else {
		fmt.Println(report.Summary())
		for _, c := range report.Cases {
			if c.Passed {
				continue
			}
			fmt.Printf("  %s: %s\n", c.Name, c.Reason)
			if c.Diff != "" {
				fmt.Println(c.Diff)
			}
		}
	}

	if runNotify && cfg.WebhookURL != "" {
		n := notify.New(cfg.WebhookURL, notify.DefaultTimeout)
		if err := n.Send(ctx, notify.RunMessage(cfg.Member, report)); err != nil {
			logger.Warn("notification failed", zap.Error(err))
		}
	}

	if runReadme && report.Ok() {
		if err := updateReadme(ctx, problem); err != nil {
			logger.Warn("readme update failed", zap.Error(err))
		}
	}

	if !report.Ok() {
		return fmt.Errorf("%d of %d cases failed", report.Failed, report.Total)
	}
	return nil
}

func recordRun(ctx context.Context, problem string, report *judge.Report) error {
	store, err := session.Open(cfg.DatabasePath)
	if err != nil {
		return err
	}
	defer store.Close()

	now := time.Now()
	sess, err := store.Current(ctx, now)
	if err != nil {
		return err
	}
	return store.RecordRun(ctx, session.RunRecord{
		RunID:     report.RunID,
		Session:   sess.Number,
		Problem:   problem,
		Member:    cfg.Member,
		Passed:    report.Passed,
		Failed:    report.Failed,
		Ok:        report.Ok(),
		CreatedAt: now,
	})
}

func updateReadme(ctx context.Context, problem string) error {
	doc, err := os.ReadFile(cfg.ReadmePath)
	if err != nil && !os.IsNotExist(err) {
		return err
	}

	store, err := session.Open(cfg.DatabasePath)
	if err != nil {
		return err
	}
	defer store.Close()

	now := time.Now()
	sess, err := store.Current(ctx, now)
	if err != nil {
		return err
	}

	out, err := readme.Update(string(doc), sess, []readme.Record{{
		Problem: problem,
		Member:  cfg.Member,
		Date:    now.In(session.Zone()).Format("2006-01-02"),
	}})
	if err != nil {
		return err
	}
	return os.WriteFile(cfg.ReadmePath, []byte(out), 0o644)
}
