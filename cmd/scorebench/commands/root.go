// Package commands provides the command tree implementation for scorebench.
//
// This package defines the command structure for the scorebench CLI,
// organized around the three stages of an endpoint evaluation workflow.
//
// COMMAND STRUCTURE:
//   - prepare:  dataset download, reproducible splitting, object storage upload
//   - evaluate: byte-budgeted batch scoring against named endpoints, MSE comparison
//   - serve:    local scoring endpoint speaking the same wire contract
//
// All commands follow consistent patterns with standardized flag handling,
// error messages, and output formatting.
package commands

import (
	"github.com/spf13/cobra"
)

// Root command
var RootCmd = &cobra.Command{
	Use:   "scorebench",
	Short: "CLI tool for comparing remote regression scoring endpoints on held-out data",
	Long: `Scorebench prepares a numeric dataset, drives remote scoring endpoints
with byte-budgeted batches of CSV rows, and compares mean-squared error
between already-trained model endpoints.

A typical workflow prepares training data once (split and uploaded to
object storage for externally managed training), then evaluates the
resulting endpoints side by side on the held-out test split.`,
	SilenceUsage: true,
	Example: `  # Download a dataset, split it, and upload train/validation pairs
  scorebench prepare --url=https://example.com/data.csv --bucket=my-training-data

  # Compare two endpoints trained under different data distribution strategies
  scorebench evaluate --data=test.csv \
    --endpoint=sharded=http://10.0.0.5:9100/score \
    --endpoint=replicated=http://10.0.0.6:9100/score

  # Tighten the per-request payload budget to 1 MiB
  scorebench evaluate --data=test.csv --budget=1048576 \
    --endpoint=sharded=http://10.0.0.5:9100/score

  # Run a local scoring endpoint from a weights file
  scorebench serve --model=weights.json --port=9100

  # Output in JSON format
  scorebench --output=json evaluate --data=test.csv \
    --endpoint=local=http://127.0.0.1:9100/score`,
}

// prepareCmd prepares training data for externally managed training jobs
var prepareCmd = &cobra.Command{
	Use:   "prepare",
	Short: "Download a dataset, split it reproducibly, and upload training data",
	Long: `Prepare downloads a numeric CSV dataset (first column is the label),
splits it into train/validation/test subsets with a seeded shuffle, uploads
the train and validation splits to object storage as paired feature/label
objects, and writes the held-out test split to a local file for later
evaluation.`,
}

// evaluateCmd runs the batched scoring comparison
var evaluateCmd = &cobra.Command{
	Use:   "evaluate",
	Short: "Score held-out rows against endpoints and compare mean-squared error",
	Long: `Evaluate loads a held-out CSV file (label in the first column), plans
byte-budgeted batches of serialized feature rows, submits them sequentially
to each named endpoint, and reports per-endpoint MSE with a score
distribution histogram.

Batches are sized so no single request payload exceeds the byte budget.
A failed or malformed response aborts the endpoint's evaluation; there is
no partial-success mode.`,
}

// serveCmd runs the local scoring endpoint
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run a local scoring endpoint backed by a linear model weights file",
	Long: `Serve hosts an HTTP scoring endpoint speaking the same wire contract as
a managed model endpoint: CSV feature rows in, one JSON score per row out.
Useful for exercising the full evaluation pipeline locally.`,
}

// SetupCommands initializes all commands and their relationships
func SetupCommands() {
	RootCmd.AddCommand(prepareCmd)
	RootCmd.AddCommand(evaluateCmd)
	RootCmd.AddCommand(serveCmd)
}

// GetPrepareCommand returns the prepare command for flag and handler setup
func GetPrepareCommand() *cobra.Command {
	return prepareCmd
}

// GetEvaluateCommand returns the evaluate command for flag and handler setup
func GetEvaluateCommand() *cobra.Command {
	return evaluateCmd
}

// GetServeCommand returns the serve command for flag and handler setup
func GetServeCommand() *cobra.Command {
	return serveCmd
}

// SetupGlobalFlags configures all global persistent flags
func SetupGlobalFlags(rootCmd *cobra.Command, logLevelPtr *string, verbosePtr *bool, outputPtr *string) {
	rootCmd.PersistentFlags().StringVar(logLevelPtr, "log-level", "INFO",
		"Log level: DEBUG, INFO, WARN, ERROR")
	rootCmd.PersistentFlags().BoolVarP(verbosePtr, "verbose", "v", false,
		"Show verbose output")
	rootCmd.PersistentFlags().StringVarP(outputPtr, "output", "o", "table",
		"Output format: table, json")
}
