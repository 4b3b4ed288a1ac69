package main

import (
	"fmt"

	"github.com/nvandessel/qverify/internal/stabilizer"
	"github.com/spf13/cobra"
)

func newDrawCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "draw",
		Short: "Print the stabilizer circuit diagram",
		RunE: func(cmd *cobra.Command, args []string) error {
			withError, _ := cmd.Flags().GetBool("error")
			qasm, _ := cmd.Flags().GetBool("qasm")

			c := stabilizer.ZZCircuit(withError)
			out := cmd.OutOrStdout()

			if qasm {
				fmt.Fprint(out, c.QASM())
				return nil
			}
			fmt.Fprint(out, c.Draw())
			return nil
		},
	}

	cmd.Flags().Bool("error", false, "Inject an X error on the first data qubit")
	cmd.Flags().Bool("qasm", false, "Emit OpenQASM 2.0 instead of a diagram")
	return cmd
}
