// Package config provides configuration management for the scorebench CLI.
//
// All tunables that the original evaluation workflow kept as process-wide
// constants (bucket names, endpoint addresses, payload budget) are explicit
// flag-backed configuration here, validated before any command runs.
package config

import "github.com/evalops/scorebench/internal/version"

const (
	// DefaultBudgetBytes is the default per-request payload budget (5 MiB),
	// sized to stay under a ~6 MB transport limit with safety margin.
	DefaultBudgetBytes = 5 * 1024 * 1024

	// DefaultTimeoutSeconds is the default timeout for HTTP operations
	// (dataset download and per-batch scoring requests).
	DefaultTimeoutSeconds = 60

	// DefaultBindAddr is the default bind address for the local scoring server.
	DefaultBindAddr = "0.0.0.0"

	// DefaultBindPort is the default port for the local scoring server.
	DefaultBindPort = 9100

	// DefaultHistogramBins is the default bin count for score distribution
	// histograms in evaluation output.
	DefaultHistogramBins = 10

	// DefaultTrainFraction and DefaultValFraction control the dataset split;
	// the test split receives the remainder.
	DefaultTrainFraction = 0.7
	DefaultValFraction   = 0.15
)

// Version returns the current scorebench CLI version from the centralized version package
var Version = version.ScorebenchVersion

// Global holds the global CLI configuration
var Global struct {
	LogLevel string // Log level for CLI operations
	Verbose  bool   // Show verbose output
	Output   string // Output format: table, json
}

// Prepare holds the prepare command configuration
var Prepare struct {
	DatasetURL     string  // HTTP URL of the public dataset to download
	DatasetFile    string  // Local CSV file to use instead of downloading
	Bucket         string  // Object storage bucket for training data
	Prefix         string  // Key prefix under the bucket
	RunName        string  // Run name (auto-generated if not provided)
	TrainFraction  float64 // Fraction of rows for the training split
	ValFraction    float64 // Fraction of rows for the validation split
	Seed           int64   // Shuffle seed for reproducible splits
	TestOut        string  // Local path for the held-out test split
	TimeoutSeconds int     // Download timeout in seconds
}

// Evaluate holds the evaluate command configuration
var Evaluate struct {
	DataFile       string   // Held-out CSV file (label in first column)
	Endpoints      []string // Scoring endpoints in name=url format
	BudgetBytes    int      // Per-request payload budget in bytes
	TimeoutSeconds int      // Per-request timeout in seconds
	RetryCount     int      // Transport-level retries per request (0 = none)
	HistogramBins  int      // Bin count for score distribution display
}

// Serve holds the serve command configuration
var Serve struct {
	BindAddr  string // Bind address for the scoring server
	BindPort  int    // TCP port for the scoring server
	ModelPath string // Path to the JSON linear model weights file
}
