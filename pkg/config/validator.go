package config

import (
	"fmt"
	"math"
	"strings"

	apperrors "github.com/matzehuels/forcelayout/pkg/errors"
)

// ValidationError represents a single validation failure
type ValidationError struct {
	Field   string // The config field path (e.g., "simulation.stiffness")
	Value   any    // The invalid value
	Message string // Human-readable error description
}

// Error implements the error interface for ValidationError
func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s (got: %v)", e.Field, e.Message, e.Value)
}

// ValidationErrors is a collection of validation errors
type ValidationErrors []ValidationError

// Error implements the error interface for ValidationErrors
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	if len(e) == 1 {
		return e[0].Error()
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d validation errors:\n", len(e)))
	for i, err := range e {
		sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, err.Error()))
	}
	return sb.String()
}

// AsError converts the collection into a coded INVALID_CONFIG error.
func (e ValidationErrors) AsError() error {
	if len(e) == 0 {
		return nil
	}
	return apperrors.Wrap(apperrors.ErrCodeInvalidConfig, e, "invalid configuration")
}

// Validate checks the Config for invalid values and returns all validation errors found
func (c *Config) Validate() []ValidationError {
	var errors []ValidationError

	// Validate Simulation config
	errors = append(errors, c.validateSimulation()...)

	// Validate Layout config
	errors = append(errors, c.validateLayout()...)

	return errors
}

func (c *Config) validateSimulation() []ValidationError {
	var errors []ValidationError
	s := c.Simulation

	errors = appendPositive(errors, "simulation.stiffness", s.Stiffness)
	errors = appendPositive(errors, "simulation.charge", s.Charge)

	// Zero would be read as unset by the runner.
	errors = appendPositive(errors, "simulation.min_movement", s.MinMovement)
	if s.MaxSteps <= 0 {
		errors = append(errors, ValidationError{
			Field:   "simulation.max_steps",
			Value:   s.MaxSteps,
			Message: "must be positive",
		})
	}
	if s.Workers < 0 {
		errors = append(errors, ValidationError{
			Field:   "simulation.workers",
			Value:   s.Workers,
			Message: "must be non-negative (0 = unbounded)",
		})
	}
	if s.Window <= 0 {
		errors = append(errors, ValidationError{
			Field:   "simulation.window",
			Value:   s.Window,
			Message: "must be positive",
		})
	}

	return errors
}

func (c *Config) validateLayout() []ValidationError {
	var errors []ValidationError
	errors = appendPositive(errors, "layout.width", c.Layout.Width)
	errors = appendPositive(errors, "layout.height", c.Layout.Height)
	return errors
}

func appendPositive(errors []ValidationError, field string, v float64) []ValidationError {
	if finite(v) && v > 0 {
		return errors
	}
	return append(errors, ValidationError{
		Field:   field,
		Value:   v,
		Message: "must be a positive number",
	})
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
