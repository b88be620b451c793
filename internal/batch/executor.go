package batch

import (
	"context"
	"fmt"

	"github.com/evalops/scorebench/internal/logging"
)

// Scorer submits one serialized batch payload to a remote scoring endpoint
// and returns one score per submitted row, in the same order as submitted.
// Implementations own the transport contract; the executor only verifies the
// row count of each response.
type Scorer interface {
	Score(ctx context.Context, payload []byte) ([]float64, error)
}

// RequestFailure reports a failed or malformed scoring call for a specific
// batch. The whole evaluation aborts on the first failure and partial results
// are discarded, so callers never receive a prediction vector shorter than
// the input without an explicit error.
type RequestFailure struct {
	Batch int   // Zero-based index of the failing batch in plan order
	Rows  Range // Row range the batch covered
	Err   error // Underlying transport or contract error
}

func (e *RequestFailure) Error() string {
	return fmt.Sprintf("batch %d (rows %s) failed: %v", e.Batch, e.Rows, e.Err)
}

func (e *RequestFailure) Unwrap() error {
	return e.Err
}

// Execute drives the scoring calls for a batch plan and reassembles results
// in input row order. For each range in plan order it serializes the
// sub-matrix, issues one synchronous request, requires exactly one score per
// row in the range, and appends the scores to the accumulating result.
//
// Any transport error or row count mismatch aborts the run with a
// RequestFailure identifying the failing batch. No retry is attempted here;
// transport-level retry policy belongs to the Scorer implementation.
func Execute(ctx context.Context, matrix [][]float64, plan []Range, scorer Scorer) ([]float64, error) {
	if len(plan) == 0 {
		return nil, nil
	}

	total := plan[len(plan)-1].End
	predictions := make([]float64, 0, total)

	for i, r := range plan {
		payload := EncodeRows(matrix[r.Start:r.End])
		logging.Debug("Scoring batch %d/%d: rows %s, payload %d bytes",
			i+1, len(plan), r, len(payload))

		scores, err := scorer.Score(ctx, payload)
		if err != nil {
			return nil, &RequestFailure{Batch: i, Rows: r, Err: err}
		}
		if len(scores) != r.Len() {
			return nil, &RequestFailure{
				Batch: i,
				Rows:  r,
				Err:   fmt.Errorf("row count mismatch: sent %d rows, got %d scores", r.Len(), len(scores)),
			}
		}

		predictions = append(predictions, scores...)
	}

	return predictions, nil
}

// Predict plans and executes batched scoring for a full matrix under the
// given byte budget. Row size is estimated from the first row. An empty
// matrix is a trivial success: no batches are planned, no network calls are
// made, and the result is an empty prediction sequence.
func Predict(ctx context.Context, matrix [][]float64, budgetBytes int, scorer Scorer) ([]float64, error) {
	if len(matrix) == 0 {
		return nil, nil
	}

	rowSize := EstimateRowSize(matrix[0])
	plan, err := PlanBatches(len(matrix), rowSize, budgetBytes)
	if err != nil {
		return nil, err
	}

	logging.Debug("Planned %d batches for %d rows (row size ~%d bytes, budget %d bytes)",
		len(plan), len(matrix), rowSize, budgetBytes)

	return Execute(ctx, matrix, plan, scorer)
}
