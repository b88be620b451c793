package server

import (
	"bytes"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/evalops/scorebench/internal/dataset"
)

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Version   string    `json:"version"`
	Uptime    string    `json:"uptime"`
}

// ScoreResponse carries one prediction per submitted row, in submission
// order. The shape mirrors what managed regression endpoints return so the
// same client code works against both.
type ScoreResponse struct {
	Predictions []Prediction `json:"predictions"`
}

// Prediction holds one per-row score.
type Prediction struct {
	Score float64 `json:"score"`
}

// ErrorResponse is the JSON error body for rejected scoring requests.
type ErrorResponse struct {
	Error string `json:"error"`
}

// HandleHealth returns the health status of the scoring server.
func HandleHealth(version string, startTime time.Time) gin.HandlerFunc {
	return func(c *gin.Context) {
		uptime := time.Since(startTime)

		response := HealthResponse{
			Status:    "healthy",
			Timestamp: time.Now(),
			Version:   version,
			Uptime:    uptime.String(),
		}

		c.JSON(http.StatusOK, response)
	}
}

// HandleScore scores a CSV payload of feature rows against the loaded model.
// Returns exactly one score per input row, in input order. Malformed rows
// and feature width mismatches are client errors: the whole payload is
// rejected rather than partially scored, matching the all-or-nothing
// contract the batch executor relies on.
func HandleScore(model *LinearModel) gin.HandlerFunc {
	return func(c *gin.Context) {
		body, err := io.ReadAll(c.Request.Body)
		if err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "failed to read request body"})
			return
		}
		if len(body) == 0 {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "empty payload"})
			return
		}

		rows, err := dataset.Parse(bytes.NewReader(body))
		if err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}

		predictions := make([]Prediction, len(rows))
		for i, row := range rows {
			score, err := model.Score(row)
			if err != nil {
				c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
				return
			}
			predictions[i] = Prediction{Score: score}
		}

		c.JSON(http.StatusOK, ScoreResponse{Predictions: predictions})
	}
}
