// Package report renders verification results as console text: per-check
// pass/fail lines, an ASCII bar chart of measurement counts, and the hardware
// runtime estimate block.
package report

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/nvandessel/qverify/internal/estimate"
	"github.com/nvandessel/qverify/internal/stabilizer"
)

const (
	passMark = "✓"
	failMark = "✗"

	// barWidth is the width of the longest chart bar in characters.
	barWidth = 40
)

// WriteReport renders the verification report.
func WriteReport(w io.Writer, rep *stabilizer.Report, threshold float64) {
	fmt.Fprintln(w, "Running 2-Qubit Stabilizer Circuit Test Suite")
	fmt.Fprintln(w, "============================================")

	for i, check := range rep.Checks {
		fmt.Fprintf(w, "\nTest %d: %s...\n", i+1, check.Name)
		mark := failMark
		if check.Passed {
			mark = passMark
		}
		fmt.Fprintf(w, "  %s %s: %.2f%% '%s' outcomes (expected >%g%%)\n",
			mark, check.Name, check.Percent, check.Expected, threshold)
	}

	verdict := "Some tests failed."
	if rep.AllPassed {
		verdict = "All tests passed!"
	}
	fmt.Fprintf(w, "\nOverall result: %s\n", verdict)
}

// WriteBarChart renders counts as horizontal bars, one outcome per line,
// scaled so the largest count fills barWidth characters.
func WriteBarChart(w io.Writer, title string, counts map[string]int) {
	fmt.Fprintf(w, "%s\n", title)
	if len(counts) == 0 {
		fmt.Fprintln(w, "  (no counts)")
		return
	}

	keys := make([]string, 0, len(counts))
	max := 0
	for key, n := range counts {
		keys = append(keys, key)
		if n > max {
			max = n
		}
	}
	sort.Strings(keys)

	for _, key := range keys {
		n := counts[key]
		width := 0
		if max > 0 {
			width = n * barWidth / max
		}
		fmt.Fprintf(w, "  %s │%s %d\n", key, strings.Repeat("█", width), n)
	}
}

// WriteEstimate renders the hardware runtime estimate block.
func WriteEstimate(w io.Writer, e estimate.Estimate, budget bool) {
	fmt.Fprintln(w, "Estimated hardware runtime for 2-qubit stabilizer circuit:")
	fmt.Fprintf(w, "  Number of qubits: %d\n", e.Params.NumQubits)
	fmt.Fprintf(w, "  Circuit depth: %d\n", e.Params.Depth)
	fmt.Fprintf(w, "  Number of shots: %d\n", e.Params.Shots)
	fmt.Fprintf(w, "  Estimated runtime: %.2f seconds (excluding queue time)\n", e.Total.Seconds())
	if budget {
		fmt.Fprintf(w, "  %s Estimated runtime is well within the recommended 5-minute limit.\n", passMark)
	} else {
		fmt.Fprintf(w, "  %s Estimated runtime exceeds the recommended 5-minute limit.\n", failMark)
	}
}
