// Package validate provides input validation utilities for scorebench,
// ensuring configuration integrity before any dataset download, object
// storage upload, or scoring request is attempted.
//
// Implements validation rules for network addresses, endpoint URLs, and
// configuration parameters using the go-playground/validator library.
// Prevents malformed configuration from causing evaluation runs to fail
// halfway through a long sequence of batched requests.
//
// VALIDATION COVERAGE:
//   - Network Addresses: host:port validation for the local scoring server
//   - Endpoint URLs: http/https URL validation for remote scoring endpoints
//   - Configuration: field-level validation via validator tags
//
// Used throughout CLI flag processing and server configuration to ensure
// consistent input validation across all entry points.
package validate

import (
	"fmt"
	"net"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
)

var (
	// Global validator instance using built-in validations
	validate *validator.Validate
)

func init() {
	validate = validator.New()
	// Using built-in validators: ip, url, min, max - no custom registration needed
}

// NetworkAddress represents a validated network address with host and port
// components. Uses struct tags for automatic validation via the
// go-playground/validator library.
type NetworkAddress struct {
	Host string `validate:"required,ip"`              // Built-in IP validator
	Port int    `validate:"required,min=0,max=65535"` // Built-in range validator
}

// String returns the network address in standard "host:port" format suitable
// for network connections, configuration display, and logging.
func (na NetworkAddress) String() string {
	return fmt.Sprintf("%s:%d", na.Host, na.Port)
}

// ParseBindAddress parses and validates a "host:port" address string for the
// local scoring server's bind endpoint. Provides format checking, IP address
// validation, and port range verification with clear error messages for
// troubleshooting configuration issues.
func ParseBindAddress(addr string) (*NetworkAddress, error) {
	if addr == "" {
		return nil, fmt.Errorf("address cannot be empty")
	}

	host, portStr, err := net.SplitHostPort(addr)
	if err != nil {
		return nil, fmt.Errorf("invalid address format '%s': %w", addr, err)
	}

	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid port '%s': %w", portStr, err)
	}

	na := &NetworkAddress{Host: host, Port: port}
	if err := validate.Struct(na); err != nil {
		return nil, fmt.Errorf("invalid address '%s': %w", addr, err)
	}

	return na, nil
}

// ValidateField validates a single value against validator tags. Thin wrapper
// around the validator library that keeps tag-based validation available to
// config packages without each of them holding a validator instance.
func ValidateField(value interface{}, tag string) error {
	return validate.Var(value, tag)
}

// ValidateEndpointURL validates a scoring endpoint URL. Requires an absolute
// http or https URL so that misconfigured endpoints fail fast instead of
// surfacing as opaque transport errors mid-evaluation.
func ValidateEndpointURL(rawURL string) error {
	if rawURL == "" {
		return fmt.Errorf("endpoint URL cannot be empty")
	}
	if err := validate.Var(rawURL, "url,startswith=http"); err != nil {
		return fmt.Errorf("invalid endpoint URL '%s': must be an absolute http(s) URL", rawURL)
	}
	return nil
}

// ValidatePortRange validates that a port number is within the valid range (1-65535).
// Rejects port 0 (OS-assigned) since the CLI needs a predictable address to
// connect to.
func ValidatePortRange(port int) error {
	return ValidateField(port, "required,min=1,max=65535")
}

// ValidateRequiredString validates that a string field is not empty.
//
// Critical for ensuring required configuration fields like bucket names and
// model paths are specified before a run starts.
func ValidateRequiredString(value, fieldName string) error {
	if err := ValidateField(value, "required"); err != nil {
		return fmt.Errorf("%s cannot be empty", fieldName)
	}
	return nil
}

// ValidatePositiveTimeout validates that a timeout duration is positive (> 0).
// Ensures timeout configurations don't cause infinite waits or immediate
// failures during endpoint communication.
func ValidatePositiveTimeout(timeout time.Duration, name string) error {
	if timeout <= 0 {
		return fmt.Errorf("%s must be positive", name)
	}
	return nil
}

// ValidateFraction validates that a value is a proportion in (0, 1).
// Used for train/validation split fractions.
func ValidateFraction(value float64, name string) error {
	if value <= 0 || value >= 1 {
		return fmt.Errorf("%s must be between 0 and 1 exclusive, got %g", name, value)
	}
	return nil
}
