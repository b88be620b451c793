// Package dataset provides download, parsing, and splitting of numeric
// datasets for evaluation runs.
//
// Datasets are plain CSV matrices of floating point values where the first
// column is the regression label and the remaining columns are already
// encoded numeric features. Feature engineering happens upstream; this
// package only gets the matrix into memory, in order, with clear errors for
// anything non-numeric.
//
// Row order is significant everywhere downstream: the batch planner preserves
// input order through scoring, so parsing and splitting must be
// deterministic. Split uses a seeded shuffle so a run can be reproduced
// exactly from its seed.
package dataset

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"math/rand"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/evalops/scorebench/internal/logging"
	"github.com/go-resty/resty/v2"
)

// Fetch downloads a dataset over HTTP and parses it into a numeric matrix.
// The download is streamed to a temporary buffer by the transport; datasets
// at this scale fit in memory alongside their serialized batches.
func Fetch(ctx context.Context, url string, timeout time.Duration) ([][]float64, error) {
	client := resty.New().SetTimeout(timeout)

	logging.Info("Downloading dataset from %s", url)

	resp, err := client.R().SetContext(ctx).Get(url)
	if err != nil {
		return nil, fmt.Errorf("failed to download dataset from %s: %w", url, err)
	}
	if resp.StatusCode() != 200 {
		return nil, fmt.Errorf("dataset download failed with status %d", resp.StatusCode())
	}

	matrix, err := Parse(strings.NewReader(resp.String()))
	if err != nil {
		return nil, err
	}

	logging.Success("Downloaded dataset: %d rows, %d columns", len(matrix), cols(matrix))
	return matrix, nil
}

// Load reads a dataset from a local CSV file into a numeric matrix.
func Load(path string) ([][]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset file: %w", err)
	}
	defer f.Close()

	matrix, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return matrix, nil
}

// Parse reads comma-separated numeric rows into a matrix, preserving row
// order. A single leading header row is skipped when its fields are not
// numeric. Any other non-numeric cell is an error naming the offending row
// and column, since silently dropping rows would misalign predictions with
// labels downstream.
func Parse(r io.Reader) ([][]float64, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // validated below with a clearer message

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV: %w", err)
	}
	if len(records) == 0 {
		return nil, nil
	}

	start := 0
	if isHeaderRow(records[0]) {
		start = 1
	}

	matrix := make([][]float64, 0, len(records)-start)
	width := -1
	for i := start; i < len(records); i++ {
		record := records[i]
		if len(record) == 1 && strings.TrimSpace(record[0]) == "" {
			continue // tolerate trailing blank lines
		}

		if width == -1 {
			width = len(record)
		} else if len(record) != width {
			return nil, fmt.Errorf("row %d has %d columns, expected %d", i+1, len(record), width)
		}

		row := make([]float64, len(record))
		for j, field := range record {
			v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
			if err != nil {
				return nil, fmt.Errorf("row %d column %d: non-numeric value %q", i+1, j+1, field)
			}
			row[j] = v
		}
		matrix = append(matrix, row)
	}

	return matrix, nil
}

// isHeaderRow reports whether a CSV record looks like a column header, which
// is the case when at least one field does not parse as a number.
func isHeaderRow(record []string) bool {
	for _, field := range record {
		if _, err := strconv.ParseFloat(strings.TrimSpace(field), 64); err != nil {
			return true
		}
	}
	return false
}

// Split partitions a matrix into train, validation, and test subsets using a
// deterministic seeded shuffle. Fractions apply to the shuffled order; the
// test subset receives all remaining rows. The union of the three subsets is
// exactly the input rows with no duplication.
//
// The same seed always produces the same split, which is what makes two
// evaluation runs against differently trained endpoints comparable.
func Split(matrix [][]float64, trainFrac, valFrac float64, seed int64) (train, val, test [][]float64) {
	n := len(matrix)
	if n == 0 {
		return nil, nil, nil
	}

	perm := rand.New(rand.NewSource(seed)).Perm(n)

	trainEnd := int(float64(n) * trainFrac)
	valEnd := trainEnd + int(float64(n)*valFrac)
	if valEnd > n {
		valEnd = n
	}

	train = make([][]float64, 0, trainEnd)
	val = make([][]float64, 0, valEnd-trainEnd)
	test = make([][]float64, 0, n-valEnd)

	for i, idx := range perm {
		switch {
		case i < trainEnd:
			train = append(train, matrix[idx])
		case i < valEnd:
			val = append(val, matrix[idx])
		default:
			test = append(test, matrix[idx])
		}
	}

	return train, val, test
}

// SplitLabels separates a matrix into its label vector (first column) and
// feature matrix (remaining columns), per the upstream contract that column
// zero carries the regression target.
func SplitLabels(matrix [][]float64) (labels []float64, features [][]float64, err error) {
	if len(matrix) == 0 {
		return nil, nil, nil
	}
	if len(matrix[0]) < 2 {
		return nil, nil, fmt.Errorf("matrix needs at least 2 columns (label plus features), got %d", len(matrix[0]))
	}

	labels = make([]float64, len(matrix))
	features = make([][]float64, len(matrix))
	for i, row := range matrix {
		labels[i] = row[0]
		features[i] = row[1:]
	}
	return labels, features, nil
}

// cols returns the column count of the first row, for logging.
func cols(matrix [][]float64) int {
	if len(matrix) == 0 {
		return 0
	}
	return len(matrix[0])
}
