// Package config provides configuration management for the scorebench CLI.
package config

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/evalops/scorebench/internal/logging"
	"github.com/evalops/scorebench/internal/validate"
)

// ValidateGlobalFlags validates all global flags before running any command
func ValidateGlobalFlags(cmd *cobra.Command, args []string) error {
	if err := logging.ValidateLogLevel(Global.LogLevel); err != nil {
		logging.Error("Invalid log level '%s' - valid levels are: DEBUG, INFO, WARN, ERROR", Global.LogLevel)
		return fmt.Errorf("invalid log level - valid: DEBUG, INFO, WARN, ERROR")
	}

	return ValidateOutputFormat()
}

// ValidateOutputFormat validates the --output flag
func ValidateOutputFormat() error {
	validOutputs := map[string]bool{
		"table": true,
		"json":  true,
	}
	if !validOutputs[Global.Output] {
		logging.Error("Invalid output format '%s' - valid formats are: table, json", Global.Output)
		return fmt.Errorf("invalid output format - valid: table, json")
	}
	return nil
}

// ValidatePrepareFlags validates the prepare command configuration before any
// download or upload starts, so a bad bucket name never wastes a dataset fetch.
func ValidatePrepareFlags() error {
	if Prepare.DatasetURL == "" && Prepare.DatasetFile == "" {
		return fmt.Errorf("either --url or --file must be provided")
	}
	if Prepare.DatasetURL != "" && Prepare.DatasetFile != "" {
		return fmt.Errorf("--url and --file are mutually exclusive")
	}
	if Prepare.DatasetURL != "" {
		if err := validate.ValidateEndpointURL(Prepare.DatasetURL); err != nil {
			return err
		}
	}

	if err := validate.ValidateRequiredString(Prepare.Bucket, "bucket"); err != nil {
		return err
	}

	if Prepare.RunName != "" {
		if err := validate.RunNameFormat(Prepare.RunName); err != nil {
			return err
		}
	}

	if err := validate.ValidateFraction(Prepare.TrainFraction, "train fraction"); err != nil {
		return err
	}
	if err := validate.ValidateFraction(Prepare.ValFraction, "validation fraction"); err != nil {
		return err
	}
	if Prepare.TrainFraction+Prepare.ValFraction >= 1 {
		return fmt.Errorf("train and validation fractions must sum to less than 1 to leave a test split, got %g",
			Prepare.TrainFraction+Prepare.ValFraction)
	}

	return nil
}

// ValidateEvaluateFlags validates the evaluate command configuration.
// Budget validation here mirrors the planner's own check so that a
// misconfigured budget fails at flag parsing rather than mid-run.
func ValidateEvaluateFlags() error {
	if err := validate.ValidateRequiredString(Evaluate.DataFile, "data file"); err != nil {
		return err
	}

	if len(Evaluate.Endpoints) == 0 {
		return fmt.Errorf("at least one --endpoint is required (name=url format)")
	}

	if Evaluate.BudgetBytes <= 0 {
		return fmt.Errorf("budget must be positive, got %d", Evaluate.BudgetBytes)
	}
	if Evaluate.RetryCount < 0 {
		return fmt.Errorf("retries must be non-negative, got %d", Evaluate.RetryCount)
	}
	if Evaluate.HistogramBins < 1 {
		return fmt.Errorf("histogram bins must be at least 1, got %d", Evaluate.HistogramBins)
	}

	return nil
}

// ValidateServeFlags validates the serve command configuration.
func ValidateServeFlags() error {
	if err := validate.ValidateRequiredString(Serve.ModelPath, "model path"); err != nil {
		return err
	}
	if err := validate.ValidatePortRange(Serve.BindPort); err != nil {
		logging.Error("Invalid port %d: %v", Serve.BindPort, err)
		return fmt.Errorf("port must be between 1-65535")
	}
	if _, err := validate.ParseBindAddress(fmt.Sprintf("%s:%d", Serve.BindAddr, Serve.BindPort)); err != nil {
		return fmt.Errorf("invalid bind address: %w", err)
	}
	return nil
}
