// Package utils provides utility functions for the scorebench CLI.
// This file parses endpoint specifications from command line flags.
package utils

import (
	"fmt"
	"strings"

	"github.com/evalops/scorebench/internal/validate"
)

// NamedEndpoint pairs a human-readable label with a scoring endpoint URL.
// The label identifies the training strategy behind the endpoint in
// evaluation output (e.g. "sharded" vs "replicated").
type NamedEndpoint struct {
	Name string
	URL  string
}

// ParseEndpointSpecs parses repeated --endpoint flags in name=url format
// into validated endpoint descriptors. Names must be unique since they key
// the comparison output.
func ParseEndpointSpecs(specs []string) ([]NamedEndpoint, error) {
	endpoints := make([]NamedEndpoint, 0, len(specs))
	seen := make(map[string]bool)

	for _, spec := range specs {
		name, url, found := strings.Cut(spec, "=")
		if !found || name == "" || url == "" {
			return nil, fmt.Errorf("invalid endpoint spec '%s' - expected format: name=url", spec)
		}

		if err := validate.RunNameFormat(name); err != nil {
			return nil, fmt.Errorf("invalid endpoint name in '%s': %w", spec, err)
		}
		if seen[name] {
			return nil, fmt.Errorf("duplicate endpoint name '%s'", name)
		}
		seen[name] = true

		if err := validate.ValidateEndpointURL(url); err != nil {
			return nil, err
		}

		endpoints = append(endpoints, NamedEndpoint{Name: name, URL: url})
	}

	return endpoints, nil
}
