package config

import (
	"fmt"
	"slices"
	"strings"

	"github.com/Iron-Ham/barbershop/internal/tui/styles"
)

// ValidationError represents a single validation failure
type ValidationError struct {
	Field   string // The config field path (e.g., "shop.barbers")
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
	fmt.Fprintf(&sb, "%d validation errors:\n", len(e))
	for i, err := range e {
		fmt.Fprintf(&sb, "  %d. %s\n", i+1, err.Error())
	}
	return sb.String()
}

// ValidLogLevels returns the list of valid log levels
func ValidLogLevels() []string {
	return []string{"debug", "info", "warn", "error"}
}

// Validate checks the Config for invalid values and returns all validation errors found
func (c *Config) Validate() []ValidationError {
	var errors []ValidationError
	errors = append(errors, c.validateShop()...)
	errors = append(errors, c.validateArrival()...)
	errors = append(errors, c.validateLogging()...)
	errors = append(errors, c.validateTUI()...)
	return errors
}

func (c *Config) validateShop() []ValidationError {
	var errors []ValidationError

	if c.Shop.Barbers < 1 {
		errors = append(errors, ValidationError{
			Field:   "shop.barbers",
			Value:   c.Shop.Barbers,
			Message: "must be at least 1",
		})
	}
	if c.Shop.Chairs < 0 {
		errors = append(errors, ValidationError{
			Field:   "shop.chairs",
			Value:   c.Shop.Chairs,
			Message: "must be non-negative",
		})
	}
	if c.Shop.HaircutMs < 0 {
		errors = append(errors, ValidationError{
			Field:   "shop.haircut_ms",
			Value:   c.Shop.HaircutMs,
			Message: "must be non-negative",
		})
	}

	return errors
}

func (c *Config) validateArrival() []ValidationError {
	var errors []ValidationError

	if c.Arrival.MinMs < 0 {
		errors = append(errors, ValidationError{
			Field:   "arrival.min_ms",
			Value:   c.Arrival.MinMs,
			Message: "must be non-negative",
		})
	}
	if c.Arrival.MaxMs < c.Arrival.MinMs {
		errors = append(errors, ValidationError{
			Field:   "arrival.max_ms",
			Value:   c.Arrival.MaxMs,
			Message: fmt.Sprintf("must be at least arrival.min_ms (%d)", c.Arrival.MinMs),
		})
	}
	if c.Arrival.MaxClients < 0 {
		errors = append(errors, ValidationError{
			Field:   "arrival.max_clients",
			Value:   c.Arrival.MaxClients,
			Message: "must be non-negative (0 = unbounded)",
		})
	}

	return errors
}

func (c *Config) validateLogging() []ValidationError {
	var errors []ValidationError

	if c.Logging.Level != "" && !slices.Contains(ValidLogLevels(), strings.ToLower(c.Logging.Level)) {
		errors = append(errors, ValidationError{
			Field:   "logging.level",
			Value:   c.Logging.Level,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(ValidLogLevels(), ", ")),
		})
	}
	if c.Logging.MaxSizeMB < 0 {
		errors = append(errors, ValidationError{
			Field:   "logging.max_size_mb",
			Value:   c.Logging.MaxSizeMB,
			Message: "must be non-negative",
		})
	}
	if c.Logging.MaxBackups < 0 {
		errors = append(errors, ValidationError{
			Field:   "logging.max_backups",
			Value:   c.Logging.MaxBackups,
			Message: "must be non-negative",
		})
	}

	return errors
}

func (c *Config) validateTUI() []ValidationError {
	var errors []ValidationError

	if c.TUI.RefreshMs <= 0 {
		errors = append(errors, ValidationError{
			Field:   "tui.refresh_ms",
			Value:   c.TUI.RefreshMs,
			Message: "must be positive",
		})
	}
	if c.TUI.Theme != "" && !styles.IsValidTheme(c.TUI.Theme) {
		errors = append(errors, ValidationError{
			Field:   "tui.theme",
			Value:   c.TUI.Theme,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(styles.BuiltinThemes(), ", ")),
		})
	}

	return errors
}
