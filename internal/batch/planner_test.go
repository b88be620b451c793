package batch

import (
	"errors"
	"testing"
)

// TestPlanBatches tests batch planning across normal and degenerate inputs
func TestPlanBatches(t *testing.T) {
	tests := []struct {
		name        string
		totalRows   int
		rowSize     int
		budget      int
		expected    []Range
		expectError bool
	}{
		{
			name:      "twelve rows two per batch",
			totalRows: 12,
			rowSize:   100,
			budget:    250,
			expected:  []Range{{0, 2}, {2, 4}, {4, 6}, {6, 8}, {8, 10}, {10, 12}},
		},
		{
			name:      "budget smaller than one row clamps to single row batches",
			totalRows: 3,
			rowSize:   1000,
			budget:    500,
			expected:  []Range{{0, 1}, {1, 2}, {2, 3}},
		},
		{
			name:      "empty matrix plans no batches",
			totalRows: 0,
			rowSize:   100,
			budget:    250,
			expected:  nil,
		},
		{
			name:      "single batch when everything fits",
			totalRows: 5,
			rowSize:   10,
			budget:    1000,
			expected:  []Range{{0, 5}},
		},
		{
			name:      "uneven final batch",
			totalRows: 7,
			rowSize:   100,
			budget:    300,
			expected:  []Range{{0, 3}, {3, 6}, {6, 7}},
		},
		{
			name:      "zero row size clamps to one row per batch",
			totalRows: 3,
			rowSize:   0,
			budget:    100,
			expected:  []Range{{0, 1}, {1, 2}, {2, 3}},
		},
		{
			name:      "budget exactly one row",
			totalRows: 2,
			rowSize:   100,
			budget:    100,
			expected:  []Range{{0, 1}, {1, 2}},
		},
		{
			name:        "negative budget is invalid",
			totalRows:   5,
			rowSize:     100,
			budget:      -1,
			expectError: true,
		},
		{
			name:        "zero budget is invalid",
			totalRows:   5,
			rowSize:     100,
			budget:      0,
			expectError: true,
		},
		{
			name:        "negative row size is invalid",
			totalRows:   5,
			rowSize:     -10,
			budget:      100,
			expectError: true,
		},
		{
			name:        "negative row count is invalid",
			totalRows:   -1,
			rowSize:     100,
			budget:      100,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan, err := PlanBatches(tt.totalRows, tt.rowSize, tt.budget)

			if tt.expectError {
				if err == nil {
					t.Fatalf("PlanBatches() expected error, got plan %v", plan)
				}
				if !errors.Is(err, ErrInvalidBudget) {
					t.Errorf("PlanBatches() error = %v, want ErrInvalidBudget", err)
				}
				return
			}

			if err != nil {
				t.Fatalf("PlanBatches() unexpected error: %v", err)
			}
			if len(plan) != len(tt.expected) {
				t.Fatalf("PlanBatches() = %v, want %v", plan, tt.expected)
			}
			for i := range plan {
				if plan[i] != tt.expected[i] {
					t.Errorf("PlanBatches() batch %d = %v, want %v", i, plan[i], tt.expected[i])
				}
			}
		})
	}
}

// TestPlanBatchesCoversAllRowsExactlyOnce verifies the partition invariant:
// ranges are ascending, non-overlapping, gap-free, and cover [0, N) exactly
// across a spread of row counts and budgets.
func TestPlanBatchesCoversAllRowsExactlyOnce(t *testing.T) {
	rowSizes := []int{1, 7, 100, 4096}
	budgets := []int{1, 50, 100, 999, 5 * 1024 * 1024}
	rowCounts := []int{1, 2, 13, 100, 1001}

	for _, rows := range rowCounts {
		for _, size := range rowSizes {
			for _, budget := range budgets {
				plan, err := PlanBatches(rows, size, budget)
				if err != nil {
					t.Fatalf("PlanBatches(%d, %d, %d) unexpected error: %v", rows, size, budget, err)
				}

				next := 0
				for i, r := range plan {
					if r.Start != next {
						t.Fatalf("PlanBatches(%d, %d, %d) batch %d starts at %d, want %d",
							rows, size, budget, i, r.Start, next)
					}
					if r.Len() < 1 {
						t.Fatalf("PlanBatches(%d, %d, %d) batch %d has zero rows", rows, size, budget, i)
					}
					next = r.End
				}
				if next != rows {
					t.Fatalf("PlanBatches(%d, %d, %d) covers [0,%d), want [0,%d)", rows, size, budget, next, rows)
				}
			}
		}
	}
}

// TestPlanBatchesRespectsBudget verifies that planned batches never exceed
// the budget whenever the budget can hold at least one row.
func TestPlanBatchesRespectsBudget(t *testing.T) {
	plan, err := PlanBatches(100, 128, 1000)
	if err != nil {
		t.Fatalf("PlanBatches() unexpected error: %v", err)
	}

	for i, r := range plan {
		if r.Len()*128 > 1000 {
			t.Errorf("batch %d serializes to %d bytes, exceeds budget 1000", i, r.Len()*128)
		}
	}
}

// TestEstimateRowSize verifies the estimate matches the real encoded size
func TestEstimateRowSize(t *testing.T) {
	row := []float64{1.5, 2, 3}

	got := EstimateRowSize(row)
	want := len(EncodeRows([][]float64{row}))
	if got != want {
		t.Errorf("EstimateRowSize() = %d, want %d", got, want)
	}

	// N uniform rows serialize to exactly N times the estimate
	matrix := [][]float64{row, row, row, row}
	if total := len(EncodeRows(matrix)); total != 4*got {
		t.Errorf("EncodeRows(4 rows) = %d bytes, want %d", total, 4*got)
	}
}

// TestRangeString verifies half-open interval formatting for error messages
func TestRangeString(t *testing.T) {
	r := Range{Start: 2, End: 4}
	if got := r.String(); got != "[2,4)" {
		t.Errorf("Range.String() = %q, want \"[2,4)\"", got)
	}
	if got := r.Len(); got != 2 {
		t.Errorf("Range.Len() = %d, want 2", got)
	}
}
