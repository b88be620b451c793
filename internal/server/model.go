// Package server provides the local scoring endpoint: an HTTP server that
// speaks the same wire contract as a managed model endpoint, backed by a
// linear model loaded from a weights file. It exists so the full pipeline
// (planning, batching, scoring, comparison) can run end-to-end without a
// hosted ML service.
package server

import (
	"encoding/json"
	"fmt"
	"os"
)

// LinearModel scores a feature row as the dot product of the row with the
// trained weights plus a bias term. Weights files are produced by whatever
// trained the model; this server only evaluates them.
type LinearModel struct {
	Weights []float64 `json:"weights"`
	Bias    float64   `json:"bias"`
}

// LoadModel reads a linear model from a JSON weights file.
func LoadModel(path string) (*LinearModel, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read model file: %w", err)
	}

	var model LinearModel
	if err := json.Unmarshal(data, &model); err != nil {
		return nil, fmt.Errorf("failed to parse model file %s: %w", path, err)
	}
	if len(model.Weights) == 0 {
		return nil, fmt.Errorf("model file %s has no weights", path)
	}

	return &model, nil
}

// Score evaluates one feature row. The row width must match the weight
// vector; a mismatch means the caller sent rows from a different feature
// space than the model was trained on.
func (m *LinearModel) Score(row []float64) (float64, error) {
	if len(row) != len(m.Weights) {
		return 0, fmt.Errorf("row has %d features, model expects %d", len(row), len(m.Weights))
	}

	score := m.Bias
	for i, v := range row {
		score += m.Weights[i] * v
	}
	return score, nil
}
