// Package handlers provides command handler functions for scorebench.
//
// This package contains the command execution logic for scorebench commands,
// organized by workflow stage for maintainability and clean separation of
// concerns. Each handler file corresponds to one command.
//
// The package is organized as follows:
// - prepare.go:  dataset download, splitting, and object storage upload
// - evaluate.go: batched endpoint scoring and MSE comparison
// - serve.go:    local scoring server lifecycle
//
// All handlers follow consistent patterns:
// - cobra.Command RunE function signature for CLI integration
// - Standardized error handling and logging using the logging package
// - Consistent output formatting through the display package
// - Clean separation between pipeline logic and presentation
package handlers
