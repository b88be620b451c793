// Package version provides centralized version information for scorebench.
// The CLI and the local scoring server report the same version since they
// ship as one binary.
// All versions follow semantic versioning (semver) conventions.

package version

// ScorebenchVersion holds the current scorebench version.
// Format: major.minor.patch[-prerelease][+build]
const ScorebenchVersion = "0.1.0-dev"
