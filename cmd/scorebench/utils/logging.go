// Package utils provides utility functions for the scorebench CLI.
// This file contains logging setup for CLI operations.
package utils

import (
	"os"

	"github.com/evalops/scorebench/cmd/scorebench/config"
	"github.com/evalops/scorebench/internal/logging"
)

// SetupLogging configures CLI logging behavior based on environment and config.
// Enables debug output when DEBUG=true. JSON output mode suppresses progress
// logs so the emitted document stays machine-parseable.
func SetupLogging() {
	if os.Getenv("DEBUG") == "true" {
		// Show debug output - restore normal logging and enable DEBUG level
		logging.RestoreOutput()
		logging.SetLevel("DEBUG")
		return
	}

	logging.SetLevel(config.Global.LogLevel)

	if config.Global.Output == "json" {
		// Keep stdout clean for the JSON document (errors still reach stderr)
		logging.SuppressOutput()
	}
}
