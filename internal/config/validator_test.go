package config

import (
	"strings"
	"testing"
	"time"
)

func TestValidationErrors_Error(t *testing.T) {
	if got := (ValidationErrors{}).Error(); got != "" {
		t.Errorf("empty Error() = %q", got)
	}

	one := ValidationErrors{{Field: "form.days", Value: 0, Message: "must be between 1 and 365"}}
	if got, want := one.Error(), "form.days: must be between 1 and 365 (got: 0)"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}

	two := append(one, ValidationError{Field: "form.hours", Value: 30, Message: "must be between 1 and 24"})
	if got := two.Error(); !strings.HasPrefix(got, "2 validation errors:\n") {
		t.Errorf("Error() = %q", got)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*Config)
		wantField string
	}{
		{"base url without scheme", func(c *Config) { c.Server.BaseURL = "localhost:5000" }, "server.base_url"},
		{"base url ftp", func(c *Config) { c.Server.BaseURL = "ftp://example.com" }, "server.base_url"},
		{"negative timeout", func(c *Config) { c.Server.Timeout = -time.Second }, "server.timeout"},
		{"zero days", func(c *Config) { c.Form.Days = 0 }, "form.days"},
		{"too many days", func(c *Config) { c.Form.Days = 400 }, "form.days"},
		{"zero hours", func(c *Config) { c.Form.Hours = 0 }, "form.hours"},
		{"too many hours", func(c *Config) { c.Form.Hours = 25 }, "form.hours"},
		{"short whatsapp", func(c *Config) { c.Form.WhatsApp = "12345" }, "form.whatsapp"},
		{"prefixed whatsapp", func(c *Config) { c.Form.WhatsApp = "+919876543210" }, "form.whatsapp"},
		{"bad email", func(c *Config) { c.Form.Email = "nobody" }, "form.email"},
		{"week start", func(c *Config) { c.Calendar.WeekStart = "friday" }, "calendar.week_start"},
		{"empty download dir", func(c *Config) { c.Download.Dir = " " }, "download.dir"},
		{"log level", func(c *Config) { c.Logging.Level = "verbose" }, "logging.level"},
		{"log size", func(c *Config) { c.Logging.MaxSizeMB = 0 }, "logging.max_size_mb"},
		{"log size too big", func(c *Config) { c.Logging.MaxSizeMB = 5000 }, "logging.max_size_mb"},
		{"log backups", func(c *Config) { c.Logging.MaxBackups = -1 }, "logging.max_backups"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)

			errs := cfg.Validate()
			if len(errs) != 1 {
				t.Fatalf("Validate() = %v, want exactly one error", errs)
			}
			if errs[0].Field != tt.wantField {
				t.Errorf("Field = %q, want %q", errs[0].Field, tt.wantField)
			}
		})
	}
}

func TestValidate_AcceptsOptionalFields(t *testing.T) {
	cfg := Default()
	cfg.Form.WhatsApp = "9876543210"
	cfg.Form.Email = "me@example.com"
	cfg.Calendar.WeekStart = "Monday"
	cfg.Server.BaseURL = "https://plans.example.com/api-root"
	cfg.Server.Timeout = 30 * time.Second

	if errs := cfg.Validate(); len(errs) != 0 {
		t.Errorf("Validate() = %v, want none", errs)
	}
}
