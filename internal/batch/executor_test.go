package batch

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"testing"
)

// stubScorer is a test double that scores each row as its first field,
// recording every payload it receives. Optional failure injection lets tests
// exercise the abort path.
type stubScorer struct {
	payloads  [][]byte
	failAt    int   // call index to fail at (0-based), -1 = never
	failErr   error // error to return at failAt
	shortBy   int   // drop this many scores from every response
	callCount int
}

func newStubScorer() *stubScorer {
	return &stubScorer{failAt: -1}
}

func (s *stubScorer) Score(_ context.Context, payload []byte) ([]float64, error) {
	call := s.callCount
	s.callCount++
	s.payloads = append(s.payloads, payload)

	if s.failAt >= 0 && call == s.failAt {
		return nil, s.failErr
	}

	lines := strings.Split(strings.TrimSuffix(string(payload), "\n"), "\n")
	scores := make([]float64, 0, len(lines))
	for _, line := range lines {
		first, _, _ := strings.Cut(line, ",")
		v, err := strconv.ParseFloat(first, 64)
		if err != nil {
			return nil, fmt.Errorf("bad payload line %q: %w", line, err)
		}
		scores = append(scores, v)
	}
	if s.shortBy > 0 && len(scores) >= s.shortBy {
		scores = scores[:len(scores)-s.shortBy]
	}
	return scores, nil
}

// makeMatrix builds an n-row matrix whose row i starts with float64(i), so
// tests can verify output ordering against input row order.
func makeMatrix(n, cols int) [][]float64 {
	matrix := make([][]float64, n)
	for i := range matrix {
		row := make([]float64, cols)
		row[0] = float64(i)
		for j := 1; j < cols; j++ {
			row[j] = float64(i*cols + j)
		}
		matrix[i] = row
	}
	return matrix
}

// TestExecutePreservesRowOrder verifies predictions come back in input row
// order across multiple batches
func TestExecutePreservesRowOrder(t *testing.T) {
	matrix := makeMatrix(10, 3)
	plan := []Range{{0, 3}, {3, 6}, {6, 10}}
	scorer := newStubScorer()

	predictions, err := Execute(context.Background(), matrix, plan, scorer)
	if err != nil {
		t.Fatalf("Execute() unexpected error: %v", err)
	}

	if len(predictions) != 10 {
		t.Fatalf("Execute() returned %d predictions, want 10", len(predictions))
	}
	for i, p := range predictions {
		if p != float64(i) {
			t.Errorf("prediction %d = %g, want %g", i, p, float64(i))
		}
	}
	if scorer.callCount != len(plan) {
		t.Errorf("scorer called %d times, want %d", scorer.callCount, len(plan))
	}
}

// TestExecuteAbortsOnTransportError verifies the first failed batch aborts
// the run with no partial results
func TestExecuteAbortsOnTransportError(t *testing.T) {
	matrix := makeMatrix(6, 2)
	plan := []Range{{0, 2}, {2, 4}, {4, 6}}

	transportErr := errors.New("connection refused")
	scorer := newStubScorer()
	scorer.failAt = 1
	scorer.failErr = transportErr

	predictions, err := Execute(context.Background(), matrix, plan, scorer)
	if err == nil {
		t.Fatal("Execute() expected error, got nil")
	}
	if predictions != nil {
		t.Errorf("Execute() returned partial predictions %v, want nil", predictions)
	}

	var failure *RequestFailure
	if !errors.As(err, &failure) {
		t.Fatalf("Execute() error type %T, want *RequestFailure", err)
	}
	if failure.Batch != 1 {
		t.Errorf("RequestFailure.Batch = %d, want 1", failure.Batch)
	}
	if failure.Rows != (Range{2, 4}) {
		t.Errorf("RequestFailure.Rows = %v, want [2,4)", failure.Rows)
	}
	if !errors.Is(err, transportErr) {
		t.Error("RequestFailure does not unwrap to the transport error")
	}

	// Abort means the remaining batch was never sent
	if scorer.callCount != 2 {
		t.Errorf("scorer called %d times after abort, want 2", scorer.callCount)
	}
}

// TestExecuteAbortsOnShortResponse verifies a response with the wrong score
// count is treated as a failure
func TestExecuteAbortsOnShortResponse(t *testing.T) {
	matrix := makeMatrix(4, 2)
	plan := []Range{{0, 2}, {2, 4}}

	scorer := newStubScorer()
	scorer.shortBy = 1

	predictions, err := Execute(context.Background(), matrix, plan, scorer)
	if err == nil {
		t.Fatal("Execute() expected error for short response, got nil")
	}
	if predictions != nil {
		t.Errorf("Execute() returned predictions %v, want nil", predictions)
	}

	var failure *RequestFailure
	if !errors.As(err, &failure) {
		t.Fatalf("Execute() error type %T, want *RequestFailure", err)
	}
	if failure.Batch != 0 {
		t.Errorf("RequestFailure.Batch = %d, want 0", failure.Batch)
	}
	if !strings.Contains(failure.Err.Error(), "row count mismatch") {
		t.Errorf("RequestFailure.Err = %v, want row count mismatch", failure.Err)
	}
}

// TestExecuteEmptyPlan verifies an empty plan is a trivial success
func TestExecuteEmptyPlan(t *testing.T) {
	scorer := newStubScorer()

	predictions, err := Execute(context.Background(), nil, nil, scorer)
	if err != nil {
		t.Fatalf("Execute() unexpected error: %v", err)
	}
	if len(predictions) != 0 {
		t.Errorf("Execute() = %v, want empty", predictions)
	}
	if scorer.callCount != 0 {
		t.Errorf("scorer called %d times for empty plan, want 0", scorer.callCount)
	}
}

// TestPredict tests end-to-end planning plus execution
func TestPredict(t *testing.T) {
	t.Run("splits by budget and reassembles", func(t *testing.T) {
		matrix := makeMatrix(12, 2)
		rowSize := EstimateRowSize(matrix[0])
		scorer := newStubScorer()

		// Budget for exactly two rows per batch
		predictions, err := Predict(context.Background(), matrix, 2*rowSize, scorer)
		if err != nil {
			t.Fatalf("Predict() unexpected error: %v", err)
		}
		if len(predictions) != 12 {
			t.Fatalf("Predict() returned %d predictions, want 12", len(predictions))
		}
		for i, p := range predictions {
			if p != float64(i) {
				t.Errorf("prediction %d = %g, want %g", i, p, float64(i))
			}
		}
		if scorer.callCount != 6 {
			t.Errorf("scorer called %d times, want 6", scorer.callCount)
		}
	})

	t.Run("empty matrix makes no calls", func(t *testing.T) {
		scorer := newStubScorer()

		predictions, err := Predict(context.Background(), nil, 250, scorer)
		if err != nil {
			t.Fatalf("Predict() unexpected error: %v", err)
		}
		if len(predictions) != 0 {
			t.Errorf("Predict() = %v, want empty", predictions)
		}
		if scorer.callCount != 0 {
			t.Errorf("scorer called %d times for empty matrix, want 0", scorer.callCount)
		}
	})

	t.Run("rejects invalid budget before any call", func(t *testing.T) {
		scorer := newStubScorer()

		_, err := Predict(context.Background(), makeMatrix(3, 2), 0, scorer)
		if !errors.Is(err, ErrInvalidBudget) {
			t.Fatalf("Predict() error = %v, want ErrInvalidBudget", err)
		}
		if scorer.callCount != 0 {
			t.Errorf("scorer called %d times despite invalid budget, want 0", scorer.callCount)
		}
	})

	t.Run("repeated runs give identical results", func(t *testing.T) {
		matrix := makeMatrix(7, 3)

		first, err := Predict(context.Background(), matrix, 64, newStubScorer())
		if err != nil {
			t.Fatalf("Predict() unexpected error: %v", err)
		}
		second, err := Predict(context.Background(), matrix, 64, newStubScorer())
		if err != nil {
			t.Fatalf("Predict() unexpected error: %v", err)
		}

		if len(first) != len(second) {
			t.Fatalf("runs returned %d and %d predictions", len(first), len(second))
		}
		for i := range first {
			if first[i] != second[i] {
				t.Errorf("prediction %d differs between runs: %g vs %g", i, first[i], second[i])
			}
		}
	})
}

// TestRequestFailureError verifies the error message identifies the batch
func TestRequestFailureError(t *testing.T) {
	failure := &RequestFailure{
		Batch: 3,
		Rows:  Range{6, 8},
		Err:   errors.New("status 500"),
	}

	msg := failure.Error()
	if !strings.Contains(msg, "batch 3") || !strings.Contains(msg, "[6,8)") {
		t.Errorf("RequestFailure.Error() = %q, want batch index and row range", msg)
	}
}
