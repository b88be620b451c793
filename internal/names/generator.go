// Package names provides thematic name generation for evaluation runs,
// delivering human-readable identifiers that make runs easy to tell apart in
// logs, terminal output, and object storage prefixes.
//
// Generates memorable identifiers in Docker-style "adjective-noun" format
// drawing from statistics and measurement themed vocabularies. A run named
// "calibrated-quartile" is easier to locate in an S3 console or a log stream
// than a timestamp or UUID.
//
// Uses secure random selection for unpredictable name patterns and collision
// detection for bulk generation scenarios.
package names

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// Adjectives from measurement and estimation themes for run name generation
var adjectives = []string{
	// General descriptive
	"bold", "brisk", "calm", "clever", "eager",
	"keen", "lucid", "modest", "nimble", "patient",
	"quiet", "steady", "swift", "tidy", "vivid",

	// Statistics/estimation
	"calibrated", "centered", "convergent", "normalized", "unbiased",
	"weighted", "bounded", "sampled", "pooled", "stratified",
	"shuffled", "sharded", "replicated", "held-out", "residual",

	// Measurement/precision
	"exact", "precise", "approximate", "rounded", "truncated",
	"scaled", "clamped", "budgeted", "batched", "ordered",
}

// Nouns from data and evaluation themes for run name generation
var nouns = []string{
	// Statistics
	"median", "quartile", "percentile", "variance", "kurtosis",
	"gradient", "residual", "estimate", "interval", "outlier",
	"sample", "cohort", "baseline", "metric", "score",

	// Data plumbing
	"matrix", "vector", "column", "payload", "partition",
	"bucket", "prefix", "channel", "buffer", "ledger",

	// Evaluation
	"verdict", "margin", "delta", "split", "probe",
}

// Generate creates a single run name in "adjective-noun" format using secure
// random selection from the themed vocabularies.
func Generate() string {
	adjective := adjectives[randomIndex(len(adjectives))]
	noun := nouns[randomIndex(len(nouns))]
	return fmt.Sprintf("%s-%s", adjective, noun)
}

// randomIndex generates a random index within the specified range using
// crypto/rand for unpredictable selection, with a simple fallback if the
// random source fails.
func randomIndex(max int) int {
	if max <= 0 {
		return 0
	}

	n, err := rand.Int(rand.Reader, big.NewInt(int64(max)))
	if err != nil {
		// Fallback to a simple index if crypto/rand fails
		return 0
	}

	return int(n.Int64())
}

// GenerateMany creates multiple unique run names with collision detection for
// bulk scenarios such as sweep evaluations. Tracks generated names to ensure
// uniqueness within the requested batch, with bounded retries (100 max) to
// handle vocabulary exhaustion gracefully.
func GenerateMany(count int) []string {
	if count <= 0 {
		return []string{}
	}

	names := make([]string, count)
	used := make(map[string]bool)

	for i := 0; i < count; i++ {
		var name string
		attempts := 0

		// Try to generate a unique name, with a reasonable retry limit
		for {
			name = Generate()
			if !used[name] || attempts > 100 {
				break
			}
			attempts++
		}

		used[name] = true
		names[i] = name
	}

	return names
}
