package main

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/nvandessel/qverify/internal/store"
	"github.com/spf13/cobra"
)

func newHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List past verification runs",
		RunE: func(cmd *cobra.Command, args []string) error {
			limit, _ := cmd.Flags().GetInt("limit")
			jsonOut, _ := cmd.Flags().GetBool("json")

			dataDir, err := resolveDataDir(cmd)
			if err != nil {
				return err
			}

			s, err := store.Open(dataDir)
			if err != nil {
				return fmt.Errorf("open run history: %w", err)
			}
			defer s.Close()

			records, err := s.List(cmd.Context(), limit)
			if err != nil {
				return fmt.Errorf("list run history: %w", err)
			}

			out := cmd.OutOrStdout()
			if jsonOut {
				if records == nil {
					records = []store.RunRecord{}
				}
				return json.NewEncoder(out).Encode(records)
			}

			if len(records) == 0 {
				fmt.Fprintln(out, "No verification runs recorded yet. Run 'qverify verify' first.")
				return nil
			}

			for _, rec := range records {
				mark := "✗"
				if rec.Passed {
					mark = "✓"
				}
				fmt.Fprintf(out, "%s  %s  %s: %.2f%% '%s' over %d shots\n",
					rec.CreatedAt.Local().Format(time.DateTime), mark,
					rec.CheckName, rec.Percent, rec.Expected, rec.Shots)
			}
			return nil
		},
	}

	cmd.Flags().Int("limit", 20, "Maximum runs to list (0 = all)")
	return cmd
}
