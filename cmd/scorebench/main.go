// Package main provides the entry point for the scorebench CLI tool.
//
// This package implements the main executable for the endpoint evaluation
// CLI that prepares numeric datasets, drives remote regression scoring
// endpoints with byte-budgeted batches, and compares mean-squared error
// between already-trained model endpoints.
//
// CLI ARCHITECTURE:
// The main package orchestrates the complete CLI system including:
//   - Command Structure: workflow-stage commands (prepare, evaluate, serve)
//   - Handler Integration: command execution with pipeline components
//   - Flag Management: global and command-specific configuration options
//   - Configuration Binding: CLI state management and validation pipeline
//
// INITIALIZATION FLOW:
// 1. Command structure setup
// 2. Flag configuration for global and command-specific options
// 3. Handler assignment linking commands to pipeline operations
// 4. Configuration validation before command execution
// 5. Command execution with proper error handling and exit codes
package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/evalops/scorebench/cmd/scorebench/commands"
	"github.com/evalops/scorebench/cmd/scorebench/config"
	"github.com/evalops/scorebench/cmd/scorebench/handlers"
)

func init() {
	// Get root command from commands package
	rootCmd := commands.RootCmd

	// Set version and validation
	rootCmd.Version = config.Version
	rootCmd.PersistentPreRunE = config.ValidateGlobalFlags

	// Setup all command structures
	commands.SetupCommands()

	// Setup global flags
	commands.SetupGlobalFlags(rootCmd, &config.Global.LogLevel,
		&config.Global.Verbose, &config.Global.Output)

	// Setup command flags
	setupPrepareFlags(commands.GetPrepareCommand())
	setupEvaluateFlags(commands.GetEvaluateCommand())
	setupServeFlags(commands.GetServeCommand())

	// Setup command handlers
	setupCommandHandlers()
}

// setupCommandHandlers assigns RunE functions to commands
func setupCommandHandlers() {
	commands.GetPrepareCommand().RunE = handlers.HandlePrepare
	commands.GetEvaluateCommand().RunE = handlers.HandleEvaluate
	commands.GetServeCommand().RunE = handlers.HandleServe
}

// setupPrepareFlags configures flags for the prepare command
func setupPrepareFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&config.Prepare.DatasetURL, "url", "",
		"HTTP URL of the dataset CSV to download")
	cmd.Flags().StringVar(&config.Prepare.DatasetFile, "file", "",
		"Local dataset CSV file (alternative to --url)")
	cmd.Flags().StringVar(&config.Prepare.Bucket, "bucket", "",
		"Object storage bucket for training data")
	cmd.Flags().StringVar(&config.Prepare.Prefix, "prefix", "scorebench",
		"Key prefix under the bucket")
	cmd.Flags().StringVar(&config.Prepare.RunName, "name", "",
		"Run name (auto-generated if not provided)")
	cmd.Flags().Float64Var(&config.Prepare.TrainFraction, "train-frac", config.DefaultTrainFraction,
		"Fraction of rows for the training split")
	cmd.Flags().Float64Var(&config.Prepare.ValFraction, "val-frac", config.DefaultValFraction,
		"Fraction of rows for the validation split")
	cmd.Flags().Int64Var(&config.Prepare.Seed, "seed", 42,
		"Shuffle seed for reproducible splits")
	cmd.Flags().StringVar(&config.Prepare.TestOut, "test-out", "test.csv",
		"Local path for the held-out test split")
	cmd.Flags().IntVar(&config.Prepare.TimeoutSeconds, "timeout", config.DefaultTimeoutSeconds,
		"Download timeout in seconds")
	cmd.MarkFlagRequired("bucket")
}

// setupEvaluateFlags configures flags for the evaluate command
func setupEvaluateFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&config.Evaluate.DataFile, "data", "",
		"Held-out CSV file with the label in the first column")
	cmd.Flags().StringSliceVar(&config.Evaluate.Endpoints, "endpoint", nil,
		"Scoring endpoint in name=url format (repeatable)")
	cmd.Flags().IntVar(&config.Evaluate.BudgetBytes, "budget", config.DefaultBudgetBytes,
		"Per-request payload budget in bytes")
	cmd.Flags().IntVar(&config.Evaluate.TimeoutSeconds, "timeout", config.DefaultTimeoutSeconds,
		"Per-request timeout in seconds")
	cmd.Flags().IntVar(&config.Evaluate.RetryCount, "retries", 0,
		"Transport-level retries per request (0 = none)")
	cmd.Flags().IntVar(&config.Evaluate.HistogramBins, "bins", config.DefaultHistogramBins,
		"Bin count for the score distribution histogram")
	cmd.MarkFlagRequired("data")
	cmd.MarkFlagRequired("endpoint")
}

// setupServeFlags configures flags for the serve command
func setupServeFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&config.Serve.BindAddr, "bind", config.DefaultBindAddr,
		"Bind address for the scoring server")
	cmd.Flags().IntVar(&config.Serve.BindPort, "port", config.DefaultBindPort,
		"TCP port for the scoring server")
	cmd.Flags().StringVar(&config.Serve.ModelPath, "model", "",
		"Path to the JSON linear model weights file")
	cmd.MarkFlagRequired("model")
}

// main is the main entry point
func main() {
	if err := commands.RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
