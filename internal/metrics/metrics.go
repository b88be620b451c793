// Package metrics provides the evaluation math for comparing scoring
// endpoints: mean-squared error against held-out labels and score
// distribution histograms for terminal display.
//
// The comparison this package supports is deliberately simple. Two endpoints
// scored the same held-out rows in the same order, so their prediction
// vectors are index-aligned with each other and with the label vector, and
// MSE is directly comparable between them.
package metrics

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Result holds one endpoint's evaluation outcome.
type Result struct {
	Name string  // Endpoint label, e.g. "sharded" or "replicated"
	MSE  float64 // Mean-squared error against the held-out labels
	RMSE float64 // Root of MSE, in label units
	Mean float64 // Mean predicted score, for sanity checking
}

// MeanSquaredError computes the mean-squared error between predicted and
// actual values. A length mismatch is a contract violation by either the
// planner or the endpoint and is reported as an error rather than truncated.
func MeanSquaredError(predicted, actual []float64) (float64, error) {
	if len(predicted) != len(actual) {
		return 0, fmt.Errorf("prediction count %d does not match label count %d", len(predicted), len(actual))
	}
	if len(predicted) == 0 {
		return 0, fmt.Errorf("cannot compute MSE of empty sequences")
	}

	var sum float64
	for i := range predicted {
		d := predicted[i] - actual[i]
		sum += d * d
	}
	return sum / float64(len(predicted)), nil
}

// Evaluate computes the full result set for one endpoint's predictions.
func Evaluate(name string, predicted, actual []float64) (Result, error) {
	mse, err := MeanSquaredError(predicted, actual)
	if err != nil {
		return Result{}, err
	}
	return Result{
		Name: name,
		MSE:  mse,
		RMSE: math.Sqrt(mse),
		Mean: stat.Mean(predicted, nil),
	}, nil
}

// Best returns the result with the lowest MSE. Ties go to the earlier
// result so output ordering stays stable across runs.
func Best(results []Result) (Result, bool) {
	if len(results) == 0 {
		return Result{}, false
	}
	best := results[0]
	for _, r := range results[1:] {
		if r.MSE < best.MSE {
			best = r
		}
	}
	return best, true
}

// HistogramBin is one equal-width bin of a score distribution.
type HistogramBin struct {
	Low   float64 // Lower edge, inclusive
	High  float64 // Upper edge, exclusive except for the last bin
	Count int     // Number of values in the bin
}

// Histogram bins values into the requested number of equal-width bins
// spanning [min, max]. Used to render the score distribution of each
// endpoint in the terminal. Returns nil for fewer than two distinct values,
// where a histogram carries no information.
func Histogram(values []float64, bins int) []HistogramBin {
	if len(values) < 2 || bins < 1 {
		return nil
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	lo, hi := sorted[0], sorted[len(sorted)-1]
	if lo == hi {
		return nil
	}

	dividers := make([]float64, bins+1)
	floats.Span(dividers, lo, hi)
	// stat.Histogram treats the last divider as exclusive; nudge it so the
	// maximum value lands in the final bin.
	dividers[bins] = math.Nextafter(hi, math.Inf(1))

	counts := stat.Histogram(nil, dividers, sorted, nil)

	out := make([]HistogramBin, bins)
	for i := 0; i < bins; i++ {
		out[i] = HistogramBin{
			Low:   dividers[i],
			High:  dividers[i+1],
			Count: int(counts[i]),
		}
	}
	return out
}
