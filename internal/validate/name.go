// Package validate provides input validation utilities for scorebench.
//
// This file validates run names used to label evaluation runs and object
// storage prefixes. Names must be safe for S3 key prefixes, file system
// paths, and log output.
package validate

import (
	"fmt"
	"regexp"
	"strings"
)

// RunNameFormat validates evaluation run names. Ensures names contain only
// [a-z0-9_-] and don't start/end with special characters.
//
// Necessary because run names become object storage key prefixes and local
// directory names, where spaces and uppercase cause avoidable friction.
func RunNameFormat(name string) error {
	if name == "" {
		return fmt.Errorf("run name cannot be empty")
	}

	// Check if name contains only allowed characters: lowercase letters, numbers, hyphens, underscores
	validNameRegex := regexp.MustCompile(`^[a-z0-9_-]+$`)
	if !validNameRegex.MatchString(name) {
		return fmt.Errorf("run name '%s' must contain only lowercase letters [a-z], numbers [0-9], hyphens (-), and underscores (_)", name)
	}

	// Ensure it starts and ends with alphanumeric (not - or _)
	if strings.HasPrefix(name, "-") || strings.HasPrefix(name, "_") ||
		strings.HasSuffix(name, "-") || strings.HasSuffix(name, "_") {
		return fmt.Errorf("run name '%s' cannot start or end with hyphen (-) or underscore (_)", name)
	}

	return nil
}
