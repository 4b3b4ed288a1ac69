package main

import (
	"encoding/json"

	"github.com/nvandessel/qverify/internal/constants"
	"github.com/nvandessel/qverify/internal/report"
	"github.com/spf13/cobra"
)

func newEstimateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "estimate",
		Short: "Estimate hardware runtime for the stabilizer circuit",
		Long: `Estimate hardware runtime for the stabilizer circuit.

The estimate is a deterministic function of circuit depth, shot count,
and typical gate/readout timings (configurable via the hardware section
of the config file). Queue time is not included.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			params := estimateParams(cfg)
			if err := params.Validate(); err != nil {
				return err
			}
			est := params.Estimate()

			jsonOut, _ := cmd.Flags().GetBool("json")
			if jsonOut {
				return json.NewEncoder(cmd.OutOrStdout()).Encode(est)
			}

			report.WriteEstimate(cmd.OutOrStdout(), est, est.WithinBudget(constants.HardwareBudget))
			return nil
		},
	}
}
