// Package batch provides byte-budgeted request planning for remote scoring
// calls. Large feature matrices cannot be submitted to a scoring endpoint in
// one request because the transport enforces a payload size limit, so the
// planner partitions the matrix into row-contiguous batches whose serialized
// CSV payloads each fit under a configured byte budget.
//
// PLANNING STRATEGY:
// Row size is estimated by serializing a single representative row (the first
// row of the matrix) and measuring its byte length. Rows are assumed roughly
// uniform in serialized size, so rows-per-batch is simply the budget divided
// by the estimated row size, clamped to at least one row so the planner
// always makes progress.
//
// ORDERING GUARANTEE:
// Batches are executed strictly sequentially in plan order and per-batch
// responses are concatenated directly, so the final prediction vector is
// aligned index-for-index with the input rows. Anyone introducing concurrent
// dispatch must add explicit reordering by batch index before concatenation.
package batch

import (
	"errors"
	"fmt"
)

// DefaultBudgetBytes is the default per-request payload budget. Sized to stay
// comfortably under a ~6 MB transport limit with safety margin.
const DefaultBudgetBytes = 5 * 1024 * 1024

// ErrInvalidBudget reports a budget or row-size estimate that is invalid in a
// way that cannot be clamped, such as a negative budget. Returned before any
// network call is made.
var ErrInvalidBudget = errors.New("invalid batch budget")

// Range represents a half-open row range [Start, End) of the input matrix
// submitted as a single serialized request. Ranges produced by PlanBatches
// are ascending, non-overlapping, and gap-free.
type Range struct {
	Start int // First row index, inclusive
	End   int // Last row index, exclusive
}

// Len returns the number of rows covered by the range.
func (r Range) Len() int {
	return r.End - r.Start
}

// String returns the range in half-open interval notation for logging and
// error messages.
func (r Range) String() string {
	return fmt.Sprintf("[%d,%d)", r.Start, r.End)
}

// EstimateRowSize serializes one representative row using the same encoding
// used for full batch payloads and returns its byte length, including the
// trailing newline so that N rows of equal width serialize to exactly
// N times the estimate.
//
// Single-sample estimation is a deliberate approximation. Datasets with
// highly variable numeric magnitudes can overshoot or undershoot the budget
// slightly; callers wanting a hard guarantee should pre-scan for the maximum
// row size and pass that instead.
func EstimateRowSize(row []float64) int {
	return len(EncodeRows([][]float64{row}))
}

// PlanBatches partitions the row range [0, totalRows) into consecutive
// ascending ranges of at most budgetBytes/rowSizeBytes rows each, the last
// range possibly shorter. The union of the returned ranges reconstructs
// [0, totalRows) with each row covered exactly once.
//
// A zero row-size estimate or a budget smaller than one row clamps
// rows-per-batch to 1 so planning always makes progress and never emits
// zero-size batches. Negative inputs and a non-positive budget cannot be
// clamped meaningfully and fail fast with ErrInvalidBudget.
func PlanBatches(totalRows, rowSizeBytes, budgetBytes int) ([]Range, error) {
	if totalRows < 0 {
		return nil, fmt.Errorf("%w: negative row count %d", ErrInvalidBudget, totalRows)
	}
	if rowSizeBytes < 0 {
		return nil, fmt.Errorf("%w: negative row size %d", ErrInvalidBudget, rowSizeBytes)
	}
	if budgetBytes <= 0 {
		return nil, fmt.Errorf("%w: budget must be positive, got %d", ErrInvalidBudget, budgetBytes)
	}

	if totalRows == 0 {
		return nil, nil
	}

	rowsPerBatch := 1
	if rowSizeBytes > 0 {
		rowsPerBatch = budgetBytes / rowSizeBytes
		if rowsPerBatch < 1 {
			rowsPerBatch = 1
		}
	}

	plan := make([]Range, 0, (totalRows+rowsPerBatch-1)/rowsPerBatch)
	for start := 0; start < totalRows; start += rowsPerBatch {
		end := start + rowsPerBatch
		if end > totalRows {
			end = totalRows
		}
		plan = append(plan, Range{Start: start, End: end})
	}

	return plan, nil
}
