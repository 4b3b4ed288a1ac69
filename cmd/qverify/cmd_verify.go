package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/nvandessel/qverify/internal/backend"
	"github.com/nvandessel/qverify/internal/config"
	"github.com/nvandessel/qverify/internal/constants"
	"github.com/nvandessel/qverify/internal/estimate"
	"github.com/nvandessel/qverify/internal/logging"
	"github.com/nvandessel/qverify/internal/report"
	"github.com/nvandessel/qverify/internal/stabilizer"
	"github.com/nvandessel/qverify/internal/store"
	"github.com/spf13/cobra"
)

func newVerifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Run the stabilizer circuit verification suite",
		Long: `Run the stabilizer circuit verification suite.

Two checks run on the local statevector simulator:
  1. ZZ stabilizer on |00⟩: the ancilla must read '0' (parity +1)
  2. ZZ stabilizer with an injected X error: the ancilla must read '1'

Each check passes when its expected outcome exceeds the threshold
percentage. Results are appended to the run history. The command exits
non-zero if either check fails.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			applyVerifyFlags(cmd, cfg)

			jsonOut, _ := cmd.Flags().GetBool("json")
			out := cmd.OutOrStdout()
			logger := logging.NewLogger(cfg.Logging.Level, cmd.ErrOrStderr())

			dataDir, err := resolveDataDir(cmd)
			if err != nil {
				return err
			}
			checkLog := logging.NewCheckLogger(dataDir, cfg.Logging.Level)
			defer checkLog.Close()

			opts := stabilizer.Options{
				Shots:     cfg.Simulation.Shots,
				Threshold: cfg.Simulation.Threshold,
				Seed:      cfg.Simulation.Seed,
			}
			b := backend.NewLocalSimulator(opts.Seed)

			logger.Debug("starting verification",
				"backend", b.Name(), "shots", opts.Shots, "threshold", opts.Threshold)

			rep, err := stabilizer.Verify(cmd.Context(), b, opts)
			if err != nil {
				return fmt.Errorf("verification run: %w", err)
			}
			logChecks(checkLog, cfg.Logging.Level, rep)

			est := estimateParams(cfg).Estimate()

			if jsonOut {
				payload := map[string]any{
					"checks":     rep.Checks,
					"all_passed": rep.AllPassed,
					"estimate":   est,
				}
				if err := json.NewEncoder(out).Encode(payload); err != nil {
					return err
				}
			} else {
				report.WriteReport(out, rep, opts.Threshold)

				fmt.Fprintln(out)
				report.WriteBarChart(out, "ZZ Stabilizer with X Error", rep.Checks[1].Counts)

				fmt.Fprintln(out, "\n"+strings.Repeat("=", 50))
				report.WriteEstimate(out, est, est.WithinBudget(constants.HardwareBudget))

				fmt.Fprintln(out, "\nCircuit visualization:")
				fmt.Fprint(out, stabilizer.ZZCircuit(true).Draw())
			}

			recordHistory(cmd.Context(), logger, dataDir, rep)

			if !rep.AllPassed {
				return fmt.Errorf("stabilizer verification failed")
			}
			return nil
		},
	}

	cmd.Flags().Int("shots", constants.DefaultShots, "Shots per check")
	cmd.Flags().Float64("threshold", constants.DefaultPassThreshold, "Pass threshold percentage")
	cmd.Flags().Int64("seed", 0, "Simulator RNG seed (0 = time-based)")
	return cmd
}

// applyVerifyFlags overlays explicitly set flags on top of the loaded config.
func applyVerifyFlags(cmd *cobra.Command, cfg *config.Config) {
	if cmd.Flags().Changed("shots") {
		cfg.Simulation.Shots, _ = cmd.Flags().GetInt("shots")
	}
	if cmd.Flags().Changed("threshold") {
		cfg.Simulation.Threshold, _ = cmd.Flags().GetFloat64("threshold")
	}
	if cmd.Flags().Changed("seed") {
		cfg.Simulation.Seed, _ = cmd.Flags().GetInt64("seed")
	}
}

func estimateParams(cfg *config.Config) estimate.Params {
	return estimate.Params{
		NumQubits:   constants.StabilizerQubits,
		Depth:       cfg.Hardware.Depth,
		Shots:       cfg.Hardware.Shots,
		GateTime:    time.Duration(cfg.Hardware.GateTimeMicros) * time.Microsecond,
		ReadoutTime: time.Duration(cfg.Hardware.ReadoutTimeMicros) * time.Microsecond,
	}
}

// logChecks emits one JSONL event per check. At trace level the full count
// histogram is included.
func logChecks(cl *logging.CheckLogger, level string, rep *stabilizer.Report) {
	trace := logging.ParseLevel(level) == logging.LevelTrace
	for _, check := range rep.Checks {
		event := map[string]any{
			"check":    check.Name,
			"job_id":   check.JobID,
			"expected": check.Expected,
			"shots":    check.Shots,
			"percent":  check.Percent,
			"passed":   check.Passed,
		}
		if trace {
			event["counts"] = check.Counts
		}
		cl.Log(event)
	}
}

// recordHistory appends the checks to the run history store. History is best
// effort: failures are logged, not fatal.
func recordHistory(ctx context.Context, logger *slog.Logger, dataDir string, rep *stabilizer.Report) {
	s, err := store.Open(dataDir)
	if err != nil {
		logger.Warn("failed to open run history", "error", err)
		return
	}
	defer s.Close()

	for _, check := range rep.Checks {
		rec := store.RunRecord{
			ID:        check.JobID,
			CheckName: check.Name,
			Expected:  check.Expected,
			Shots:     check.Shots,
			Percent:   check.Percent,
			Passed:    check.Passed,
			Counts:    check.Counts,
		}
		if _, err := s.Add(ctx, rec); err != nil {
			logger.Warn("failed to record run", "check", check.Name, "error", err)
		}
	}
}
