package config

import (
	"fmt"
	"net/url"
	"slices"
	"strings"

	"github.com/Iron-Ham/studyplan/internal/validate"
)

// ValidationError represents a single validation failure
type ValidationError struct {
	Field   string // The config field path (e.g., "server.base_url")
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

// Upper bounds for the form fields
const (
	maxDays  = 365
	maxHours = 24
)

// ValidLogLevels returns the list of valid log levels
func ValidLogLevels() []string {
	return []string{"debug", "info", "warn", "error"}
}

// Validate checks the Config for invalid values and returns all validation errors found
func (c *Config) Validate() []ValidationError {
	var errors []ValidationError

	errors = append(errors, c.validateServer()...)
	errors = append(errors, c.validateForm()...)
	errors = append(errors, c.validateCalendar()...)
	errors = append(errors, c.validateDownload()...)
	errors = append(errors, c.validateLogging()...)

	return errors
}

// validateServer validates the ServerConfig
func (c *Config) validateServer() []ValidationError {
	var errors []ValidationError

	u, err := url.Parse(c.Server.BaseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		errors = append(errors, ValidationError{
			Field:   "server.base_url",
			Value:   c.Server.BaseURL,
			Message: "must be an absolute http or https URL",
		})
	}

	if c.Server.Timeout < 0 {
		errors = append(errors, ValidationError{
			Field:   "server.timeout",
			Value:   c.Server.Timeout,
			Message: "must be non-negative",
		})
	}

	return errors
}

// validateForm validates the FormConfig
func (c *Config) validateForm() []ValidationError {
	var errors []ValidationError

	if c.Form.Days < 1 || c.Form.Days > maxDays {
		errors = append(errors, ValidationError{
			Field:   "form.days",
			Value:   c.Form.Days,
			Message: fmt.Sprintf("must be between 1 and %d", maxDays),
		})
	}

	if c.Form.Hours < 1 || c.Form.Hours > maxHours {
		errors = append(errors, ValidationError{
			Field:   "form.hours",
			Value:   c.Form.Hours,
			Message: fmt.Sprintf("must be between 1 and %d", maxHours),
		})
	}

	// Empty means "ask in the form"
	if c.Form.WhatsApp != "" && !validate.IsValidWhatsApp(c.Form.WhatsApp) {
		errors = append(errors, ValidationError{
			Field:   "form.whatsapp",
			Value:   c.Form.WhatsApp,
			Message: "must be exactly 10 digits",
		})
	}

	if c.Form.Email != "" && !validate.IsValidEmail(c.Form.Email) {
		errors = append(errors, ValidationError{
			Field:   "form.email",
			Value:   c.Form.Email,
			Message: "must be a valid email address",
		})
	}

	return errors
}

// validateCalendar validates the CalendarConfig
func (c *Config) validateCalendar() []ValidationError {
	var errors []ValidationError

	if c.Calendar.WeekStart != "" && !slices.Contains(ValidWeekStarts(), strings.ToLower(c.Calendar.WeekStart)) {
		errors = append(errors, ValidationError{
			Field:   "calendar.week_start",
			Value:   c.Calendar.WeekStart,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(ValidWeekStarts(), ", ")),
		})
	}

	return errors
}

// validateDownload validates the DownloadConfig
func (c *Config) validateDownload() []ValidationError {
	var errors []ValidationError

	if strings.TrimSpace(c.Download.Dir) == "" {
		errors = append(errors, ValidationError{
			Field:   "download.dir",
			Value:   c.Download.Dir,
			Message: "must not be empty",
		})
	}

	return errors
}

// validateLogging validates the LoggingConfig
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
	}

	const maxLogSizeMB = 1000 // 1GB
	if c.Logging.MaxSizeMB > maxLogSizeMB {
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
