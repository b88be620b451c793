package logging

import "testing"

// TestIsValidLogLevel tests log level validation including case sensitivity
func TestIsValidLogLevel(t *testing.T) {
	valid := []string{"DEBUG", "INFO", "WARN", "ERROR"}
	for _, level := range valid {
		if !IsValidLogLevel(level) {
			t.Errorf("IsValidLogLevel(%q) = false, want true", level)
		}
	}

	invalid := []string{"", "info", "TRACE", "WARNING", "Debug"}
	for _, level := range invalid {
		if IsValidLogLevel(level) {
			t.Errorf("IsValidLogLevel(%q) = true, want false", level)
		}
	}
}

// TestValidateLogLevel tests the error-returning variant
func TestValidateLogLevel(t *testing.T) {
	if err := ValidateLogLevel("INFO"); err != nil {
		t.Errorf("ValidateLogLevel(INFO) unexpected error: %v", err)
	}
	if err := ValidateLogLevel("verbose"); err == nil {
		t.Error("ValidateLogLevel(verbose) expected error")
	}
}
