package handlers

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/evalops/scorebench/cmd/scorebench/config"
	"github.com/evalops/scorebench/cmd/scorebench/display"
	"github.com/evalops/scorebench/cmd/scorebench/utils"
	"github.com/evalops/scorebench/internal/batch"
	"github.com/evalops/scorebench/internal/dataset"
	"github.com/evalops/scorebench/internal/endpoint"
	"github.com/evalops/scorebench/internal/logging"
	"github.com/evalops/scorebench/internal/metrics"
)

// HandleEvaluate scores the held-out rows against every named endpoint under
// the payload byte budget and reports per-endpoint mean-squared error.
//
// Endpoints are evaluated one after another with the identical plan (same
// rows, same budget, same order), which is what makes the resulting MSE
// figures directly comparable. Any failed batch aborts the whole evaluation:
// a comparison with silently missing rows would be worse than no comparison.
func HandleEvaluate(cmd *cobra.Command, args []string) error {
	utils.SetupLogging()

	if err := config.ValidateEvaluateFlags(); err != nil {
		return err
	}

	endpoints, err := utils.ParseEndpointSpecs(config.Evaluate.Endpoints)
	if err != nil {
		return err
	}

	matrix, err := dataset.Load(config.Evaluate.DataFile)
	if err != nil {
		return err
	}
	labels, features, err := dataset.SplitLabels(matrix)
	if err != nil {
		return err
	}
	if len(features) == 0 {
		return fmt.Errorf("no rows to evaluate in %s", config.Evaluate.DataFile)
	}

	logging.Info("Evaluating %d endpoints on %d held-out rows (budget %d bytes)",
		len(endpoints), len(features), config.Evaluate.BudgetBytes)

	ctx := context.Background()
	results := make([]metrics.Result, 0, len(endpoints))
	histograms := make(map[string][]metrics.HistogramBin, len(endpoints))

	for _, ep := range endpoints {
		client := endpoint.NewClient(endpoint.Config{
			URL:            ep.URL,
			TimeoutSeconds: config.Evaluate.TimeoutSeconds,
			RetryCount:     config.Evaluate.RetryCount,
		})

		logging.Info("Scoring against endpoint '%s' (%s)", ep.Name, ep.URL)
		predictions, err := batch.Predict(ctx, features, config.Evaluate.BudgetBytes, client)
		if err != nil {
			return fmt.Errorf("endpoint '%s': %w", ep.Name, err)
		}

		result, err := metrics.Evaluate(ep.Name, predictions, labels)
		if err != nil {
			return fmt.Errorf("endpoint '%s': %w", ep.Name, err)
		}

		logging.Success("Endpoint '%s': MSE %.6g over %d rows", ep.Name, result.MSE, len(predictions))
		results = append(results, result)
		histograms[ep.Name] = metrics.Histogram(predictions, config.Evaluate.HistogramBins)
	}

	display.DisplayEvaluation(results, histograms)
	return nil
}
