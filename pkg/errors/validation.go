package errors

import (
	"math"
	"unicode"
)

// maxNodeIDLen bounds node identifiers read from graph files.
const maxNodeIDLen = 256

// ValidateNodeID checks that a graph node identifier is usable as a key.
//
// Rules:
//   - No empty identifiers
//   - No control characters
//   - Maximum length of 256 bytes
func ValidateNodeID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidGraph, "node id cannot be empty")
	}
	if len(id) > maxNodeIDLen {
		return New(ErrCodeInvalidGraph, "node id too long (max %d characters)", maxNodeIDLen)
	}
	for _, r := range id {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidGraph, "node id %q contains control characters", id)
		}
	}
	return nil
}

// ValidateFinite rejects NaN and infinite values.
func ValidateFinite(code Code, name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return New(code, "%s must be a finite number (got: %v)", name, v)
	}
	return nil
}

// ValidateNonNegative rejects negative or non-finite values.
func ValidateNonNegative(code Code, name string, v float64) error {
	if err := ValidateFinite(code, name, v); err != nil {
		return err
	}
	if v < 0 {
		return New(code, "%s must not be negative (got: %v)", name, v)
	}
	return nil
}

// ValidatePositive rejects zero, negative or non-finite values.
func ValidatePositive(code Code, name string, v float64) error {
	if err := ValidateFinite(code, name, v); err != nil {
		return err
	}
	if v <= 0 {
		return New(code, "%s must be positive (got: %v)", name, v)
	}
	return nil
}
