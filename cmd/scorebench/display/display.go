// Package display provides output formatting and display functions for scorebench.
//
// This package handles all user-facing output formatting including table and
// JSON output for evaluation results and score distribution histograms. It
// provides consistent formatting across commands with support for verbose
// mode and different output formats.
//
// All display functions respect global configuration for output format and
// verbosity while maintaining clean separation from evaluation logic.
package display

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/evalops/scorebench/cmd/scorebench/config"
	"github.com/evalops/scorebench/internal/logging"
	"github.com/evalops/scorebench/internal/metrics"
)

// histogramBarWidth is the maximum bar length in characters for the
// terminal score distribution display.
const histogramBarWidth = 40

// evaluationDocument is the JSON output shape for an evaluation run.
type evaluationDocument struct {
	Results []metrics.Result `json:"results"`
	Best    string           `json:"best,omitempty"`
}

// DisplayEvaluation renders per-endpoint evaluation results in tabular or
// JSON format. Table mode appends a score distribution histogram per
// endpoint and marks the endpoint with the lowest MSE; JSON mode emits a
// single machine-parseable document on stdout.
func DisplayEvaluation(results []metrics.Result, histograms map[string][]metrics.HistogramBin) {
	if len(results) == 0 {
		if config.Global.Output == "json" {
			fmt.Println("{}")
		} else {
			fmt.Println("No evaluation results")
		}
		return
	}

	best, _ := metrics.Best(results)

	if config.Global.Output == "json" {
		doc := evaluationDocument{Results: results, Best: best.Name}
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(doc); err != nil {
			logging.Error("Failed to encode JSON: %v", err)
			fmt.Println("Error encoding JSON output")
		}
		return
	}

	// Table output
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	if len(results) > 1 {
		fmt.Fprintln(w, "ENDPOINT\tMSE\tRMSE\tMEAN SCORE\tΔ MSE\t")
		for _, r := range results {
			marker := ""
			if r.Name == best.Name {
				marker = "  (best)"
			}
			fmt.Fprintf(w, "%s\t%.6g\t%.6g\t%.6g\t%+.6g\t%s\n",
				r.Name, r.MSE, r.RMSE, r.Mean, r.MSE-best.MSE, marker)
		}
	} else {
		fmt.Fprintln(w, "ENDPOINT\tMSE\tRMSE\tMEAN SCORE\t")
		for _, r := range results {
			fmt.Fprintf(w, "%s\t%.6g\t%.6g\t%.6g\t\n", r.Name, r.MSE, r.RMSE, r.Mean)
		}
	}
	w.Flush()

	for _, r := range results {
		bins := histograms[r.Name]
		if len(bins) == 0 {
			continue
		}
		fmt.Printf("\nScore distribution: %s\n", r.Name)
		displayHistogram(bins)
	}
}

// displayHistogram renders equal-width bins as horizontal bars scaled to the
// largest bin count.
func displayHistogram(bins []metrics.HistogramBin) {
	maxCount := 0
	for _, b := range bins {
		if b.Count > maxCount {
			maxCount = b.Count
		}
	}
	if maxCount == 0 {
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	defer w.Flush()

	for _, b := range bins {
		barLen := b.Count * histogramBarWidth / maxCount
		if b.Count > 0 && barLen == 0 {
			barLen = 1
		}
		fmt.Fprintf(w, "  [%.4g, %.4g)\t%s\t%d\n",
			b.Low, b.High, strings.Repeat("█", barLen), b.Count)
	}
}
