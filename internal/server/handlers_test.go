package server

import (
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

// newTestRouter builds a minimal router around the handlers under test
func newTestRouter(model *LinearModel) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/health", HandleHealth("test-version", time.Now()))
	router.POST("/score", HandleScore(model))
	return router
}

// TestHandleHealth verifies the health endpoint response structure
func TestHandleHealth(t *testing.T) {
	router := newTestRouter(&LinearModel{Weights: []float64{1}})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("GET /health status = %d, want 200", w.Code)
	}

	var response HealthResponse
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("failed to parse health response: %v", err)
	}
	if response.Status != "healthy" {
		t.Errorf("health status = %q, want healthy", response.Status)
	}
	if response.Version != "test-version" {
		t.Errorf("health version = %q, want test-version", response.Version)
	}
	if response.Uptime == "" {
		t.Error("health uptime is empty")
	}
}

// TestHandleScore tests the scoring route across valid and rejected payloads
func TestHandleScore(t *testing.T) {
	model := &LinearModel{Weights: []float64{1, 1}, Bias: 0}
	router := newTestRouter(model)

	tests := []struct {
		name       string
		payload    string
		status     int
		expected   []float64
		errorMatch string
	}{
		{
			name:     "scores each row in order",
			payload:  "1,2\n3,4\n5,6\n",
			status:   http.StatusOK,
			expected: []float64{3, 7, 11},
		},
		{
			name:     "single row",
			payload:  "10,-2\n",
			status:   http.StatusOK,
			expected: []float64{8},
		},
		{
			name:       "empty payload",
			payload:    "",
			status:     http.StatusBadRequest,
			errorMatch: "empty payload",
		},
		{
			name:       "non-numeric cell rejects whole payload",
			payload:    "1,2\n3,oops\n",
			status:     http.StatusBadRequest,
			errorMatch: "non-numeric",
		},
		{
			name:       "wrong feature width",
			payload:    "1,2,3\n",
			status:     http.StatusBadRequest,
			errorMatch: "features",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/score", strings.NewReader(tt.payload))
			req.Header.Set("Content-Type", "text/csv")
			router.ServeHTTP(w, req)

			if w.Code != tt.status {
				t.Fatalf("POST /score status = %d, want %d (body: %s)", w.Code, tt.status, w.Body.String())
			}

			if tt.status != http.StatusOK {
				var errResp ErrorResponse
				if err := json.Unmarshal(w.Body.Bytes(), &errResp); err != nil {
					t.Fatalf("failed to parse error response: %v", err)
				}
				if !strings.Contains(errResp.Error, tt.errorMatch) {
					t.Errorf("error = %q, want containing %q", errResp.Error, tt.errorMatch)
				}
				return
			}

			var response ScoreResponse
			if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
				t.Fatalf("failed to parse score response: %v", err)
			}
			if len(response.Predictions) != len(tt.expected) {
				t.Fatalf("got %d predictions, want %d", len(response.Predictions), len(tt.expected))
			}
			for i, p := range response.Predictions {
				if math.Abs(p.Score-tt.expected[i]) > 1e-12 {
					t.Errorf("prediction %d = %g, want %g", i, p.Score, tt.expected[i])
				}
			}
		})
	}
}
