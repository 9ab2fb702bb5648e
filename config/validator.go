package config

import (
	"fmt"
	"slices"
	"strings"
)

// Accepted values for FactoryConfig.Counter
const (
	CounterShared      = "shared"
	CounterIndependent = "independent"
)

// Accepted values for Manager4Config.FailurePolicy
const (
	FailurePolicyPermanent = "permanent"
	FailurePolicyRetry     = "retry"
)

// ValidationError represents a single validation failure
type ValidationError struct {
	Field   string // The config field path (e.g., "factory.ready_after")
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

// ValidLogLevels returns the list of valid log levels
func ValidLogLevels() []string {
	return []string{"debug", "info", "warn", "error"}
}

// ValidEnvironments returns the list of valid logger environments
func ValidEnvironments() []string {
	return []string{"production", "development"}
}

// Validate checks the Config for invalid values and returns all validation errors found
func (c *Config) Validate() []ValidationError {
	var errors []ValidationError

	if c.Logger.Enabled {
		if !slices.Contains(ValidEnvironments(), strings.ToLower(c.Logger.Environment)) {
			errors = append(errors, ValidationError{
				Field:   "logger.environment",
				Value:   c.Logger.Environment,
				Message: fmt.Sprintf("must be one of: %s", strings.Join(ValidEnvironments(), ", ")),
			})
		}
		if !slices.Contains(ValidLogLevels(), strings.ToLower(c.Logger.Level)) {
			errors = append(errors, ValidationError{
				Field:   "logger.level",
				Value:   c.Logger.Level,
				Message: fmt.Sprintf("must be one of: %s", strings.Join(ValidLogLevels(), ", ")),
			})
		}
	}

	if c.Factory.ReadyAfter < 0 {
		errors = append(errors, ValidationError{
			Field:   "factory.ready_after",
			Value:   c.Factory.ReadyAfter,
			Message: "must be zero or positive",
		})
	}

	if c.Factory.Counter != CounterShared && c.Factory.Counter != CounterIndependent {
		errors = append(errors, ValidationError{
			Field:   "factory.counter",
			Value:   c.Factory.Counter,
			Message: fmt.Sprintf("must be %q or %q", CounterShared, CounterIndependent),
		})
	}

	if c.Manager4.FailurePolicy != FailurePolicyPermanent && c.Manager4.FailurePolicy != FailurePolicyRetry {
		errors = append(errors, ValidationError{
			Field:   "manager4.failure_policy",
			Value:   c.Manager4.FailurePolicy,
			Message: fmt.Sprintf("must be %q or %q", FailurePolicyPermanent, FailurePolicyRetry),
		})
	}

	return errors
}
