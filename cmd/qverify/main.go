package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "0.1.0-dev"

func main() {
	rootCmd := &cobra.Command{
		Use:   "qverify",
		Short: "qverify - stabilizer measurement circuit verification",
		Long: `qverify validates a 2-qubit ZZ stabilizer measurement circuit on a
local statevector simulator.

It checks that the measured ancilla bit reflects the data-qubit parity,
with and without an injected bit-flip error, and estimates how long the
circuit would take on real hardware.`,
		SilenceUsage: true,
	}

	// Global flags
	rootCmd.PersistentFlags().Bool("json", false, "Output as JSON")
	rootCmd.PersistentFlags().String("config", "", "Path to config file (default ~/.qverify/config.yaml)")
	rootCmd.PersistentFlags().String("data-dir", "", "Data directory for run history (default ~/.qverify)")

	// Add subcommands
	rootCmd.AddCommand(
		newVersionCmd(),
		newVerifyCmd(),
		newEstimateCmd(),
		newDrawCmd(),
		newHistoryCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			jsonOut, _ := cmd.Flags().GetBool("json")
			if jsonOut {
				json.NewEncoder(cmd.OutOrStdout()).Encode(map[string]string{"version": version})
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "qverify version %s\n", version)
			}
		},
	}
}
