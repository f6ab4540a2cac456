package config

import (
	"fmt"
	"net/url"
	"regexp"
	"slices"
	"strings"
)

// ValidationError represents a single validation failure
type ValidationError struct {
	Field   string // The config field path (e.g., "catalog.timeout_seconds")
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

// themeNameRegex matches built-in and custom theme names (custom themes are
// named after their file).
var themeNameRegex = regexp.MustCompile(`^[a-z0-9][a-z0-9_-]*$`)

// Bounds enforced by Validate.
const (
	MinBox         = 1
	MaxBox         = 30
	MaxParallelCap = 100
	MaxColumns     = 10
	maxLogSizeMB   = 1000
)

// IsValidThemeName reports whether name is usable as a theme (and theme
// file) name.
func IsValidThemeName(name string) bool {
	return themeNameRegex.MatchString(name)
}

// ValidLogLevels returns the list of valid log levels
func ValidLogLevels() []string {
	return []string{"debug", "info", "warn", "error"}
}

// Validate checks the Config for invalid values and returns all validation errors found
func (c *Config) Validate() []ValidationError {
	var errors []ValidationError

	errors = append(errors, c.validateCatalog()...)
	errors = append(errors, c.validateBox()...)
	errors = append(errors, c.validateTUI()...)
	errors = append(errors, c.validateLogging()...)

	return errors
}

func (c *Config) validateCatalog() []ValidationError {
	var errors []ValidationError

	u, err := url.Parse(c.Catalog.BaseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		errors = append(errors, ValidationError{
			Field:   "catalog.base_url",
			Value:   c.Catalog.BaseURL,
			Message: "must be an absolute http or https URL",
		})
	}

	if c.Catalog.TimeoutSeconds <= 0 {
		errors = append(errors, ValidationError{
			Field:   "catalog.timeout_seconds",
			Value:   c.Catalog.TimeoutSeconds,
			Message: "must be positive",
		})
	}

	if c.Catalog.MaxParallel < 0 || c.Catalog.MaxParallel > MaxParallelCap {
		errors = append(errors, ValidationError{
			Field:   "catalog.max_parallel",
			Value:   c.Catalog.MaxParallel,
			Message: fmt.Sprintf("must be between 0 and %d", MaxParallelCap),
		})
	}

	return errors
}

func (c *Config) validateBox() []ValidationError {
	if c.Box.Start < MinBox || c.Box.Start > MaxBox {
		return []ValidationError{{
			Field:   "box.start",
			Value:   c.Box.Start,
			Message: fmt.Sprintf("must be between %d and %d", MinBox, MaxBox),
		}}
	}
	return nil
}

func (c *Config) validateTUI() []ValidationError {
	var errors []ValidationError

	if c.TUI.Theme != "" && !IsValidThemeName(c.TUI.Theme) {
		errors = append(errors, ValidationError{
			Field:   "tui.theme",
			Value:   c.TUI.Theme,
			Message: "must be lower case letters, digits, '-' or '_'",
		})
	}

	if c.TUI.Columns < 1 || c.TUI.Columns > MaxColumns {
		errors = append(errors, ValidationError{
			Field:   "tui.columns",
			Value:   c.TUI.Columns,
			Message: fmt.Sprintf("must be between 1 and %d", MaxColumns),
		})
	}

	return errors
}

func (c *Config) validateLogging() []ValidationError {
	var errors []ValidationError

	if c.Logging.Level != "" && !slices.Contains(ValidLogLevels(), c.Logging.Level) {
		errors = append(errors, ValidationError{
			Field:   "logging.level",
			Value:   c.Logging.Level,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(ValidLogLevels(), ", ")),
		})
	}

	if c.Logging.MaxSizeMB <= 0 {
		errors = append(errors, ValidationError{
			Field:   "logging.max_size_mb",
			Value:   c.Logging.MaxSizeMB,
			Message: "must be positive",
		})
	} else if c.Logging.MaxSizeMB > maxLogSizeMB {
		errors = append(errors, ValidationError{
			Field:   "logging.max_size_mb",
			Value:   c.Logging.MaxSizeMB,
			Message: fmt.Sprintf("exceeds maximum of %dMB", maxLogSizeMB),
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
