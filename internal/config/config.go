package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// AppName names the config and state directories.
const AppName = "studyplan"

// Config represents the complete studyplan configuration
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Form     FormConfig     `mapstructure:"form"`
	Calendar CalendarConfig `mapstructure:"calendar"`
	Download DownloadConfig `mapstructure:"download"`
	TUI      TUIConfig      `mapstructure:"tui"`
	Logging  LoggingConfig  `mapstructure:"logging"`
}

// ServerConfig locates the planning service
type ServerConfig struct {
	// BaseURL is the root the API paths and document links resolve against
	BaseURL string `mapstructure:"base_url"`
	// Timeout bounds each request (0 = no client-side timeout)
	Timeout time.Duration `mapstructure:"timeout"`
}

// FormConfig pre-fills the plan request form
type FormConfig struct {
	// Days is the number of study days requested (default: 7)
	Days int `mapstructure:"days"`
	// Hours is the number of study hours per day (default: 4)
	Hours int `mapstructure:"hours"`
	// Email is the optional address the plan is mailed to
	Email string `mapstructure:"email"`
	// WhatsApp is the 10-digit number the plan is sent to, without prefix
	WhatsApp string `mapstructure:"whatsapp"`
}

// CalendarConfig controls the calendar projection
type CalendarConfig struct {
	// Seed makes event colors deterministic (0 = seeded from the clock)
	Seed int64 `mapstructure:"seed"`
	// WeekStart is the first grid column
	// Options: "sunday", "monday"
	WeekStart string `mapstructure:"week_start"`
}

// DownloadConfig controls where plan documents are saved
type DownloadConfig struct {
	// Dir is the directory downloaded PDFs are written to (default: ".")
	Dir string `mapstructure:"dir"`
}

// TUIConfig controls the terminal UI
type TUIConfig struct {
	// Theme is a built-in or custom theme name (default: "default")
	Theme string `mapstructure:"theme"`
}

// LoggingConfig controls debug logging
type LoggingConfig struct {
	// Enabled turns on the JSON log file (default: false)
	Enabled bool `mapstructure:"enabled"`
	// Level is the minimum level written
	// Options: "debug", "info", "warn", "error"
	Level string `mapstructure:"level"`
	// MaxSizeMB is the size at which the log file rotates
	MaxSizeMB int `mapstructure:"max_size_mb"`
	// MaxBackups is the number of rotated files kept
	MaxBackups int `mapstructure:"max_backups"`
	// Compress gzips rotated files
	Compress bool `mapstructure:"compress"`
}

// Default returns a Config with sensible default values
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			BaseURL: "http://localhost:5000",
			Timeout: 0,
		},
		Form: FormConfig{
			Days:  7,
			Hours: 4,
		},
		Calendar: CalendarConfig{
			Seed:      0,
			WeekStart: "sunday",
		},
		Download: DownloadConfig{
			Dir: ".",
		},
		TUI: TUIConfig{
			Theme: "default",
		},
		Logging: LoggingConfig{
			Enabled:    false,
			Level:      "info",
			MaxSizeMB:  10,
			MaxBackups: 3,
			Compress:   false,
		},
	}
}

// WeekStartDay returns the configured first weekday.
func (c *CalendarConfig) WeekStartDay() time.Weekday {
	if strings.EqualFold(c.WeekStart, "monday") {
		return time.Monday
	}
	return time.Sunday
}

// ResolveDir expands a leading ~ in the download directory.
func (d *DownloadConfig) ResolveDir() string {
	path := d.Dir
	if path == "" {
		return "."
	}
	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, strings.TrimPrefix(path[1:], "/"))
		}
	}
	return path
}

// SetDefaults registers default values with viper
func SetDefaults() {
	defaults := Default()

	// Server defaults
	viper.SetDefault("server.base_url", defaults.Server.BaseURL)
	viper.SetDefault("server.timeout", defaults.Server.Timeout)

	// Form defaults
	viper.SetDefault("form.days", defaults.Form.Days)
	viper.SetDefault("form.hours", defaults.Form.Hours)
	viper.SetDefault("form.email", defaults.Form.Email)
	viper.SetDefault("form.whatsapp", defaults.Form.WhatsApp)

	// Calendar defaults
	viper.SetDefault("calendar.seed", defaults.Calendar.Seed)
	viper.SetDefault("calendar.week_start", defaults.Calendar.WeekStart)

	// Download defaults
	viper.SetDefault("download.dir", defaults.Download.Dir)

	// TUI defaults
	viper.SetDefault("tui.theme", defaults.TUI.Theme)

	// Logging defaults
	viper.SetDefault("logging.enabled", defaults.Logging.Enabled)
	viper.SetDefault("logging.level", defaults.Logging.Level)
	viper.SetDefault("logging.max_size_mb", defaults.Logging.MaxSizeMB)
	viper.SetDefault("logging.max_backups", defaults.Logging.MaxBackups)
	viper.SetDefault("logging.compress", defaults.Logging.Compress)
}

// Load reads the configuration from viper into a Config struct and validates it
func Load() (*Config, error) {
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, ValidationErrors(errs)
	}

	return &cfg, nil
}

// Get returns the current configuration (convenience function)
func Get() *Config {
	cfg, err := Load()
	if err != nil {
		return Default()
	}
	return cfg
}

// Watch reloads the configuration whenever the config file changes and
// passes every valid result to onChange. Invalid edits are reported to
// onError and otherwise ignored. It is a no-op when no config file was read.
func Watch(onChange func(*Config), onError func(error)) {
	if viper.ConfigFileUsed() == "" {
		return
	}
	viper.OnConfigChange(func(e fsnotify.Event) {
		if !e.Has(fsnotify.Write) && !e.Has(fsnotify.Create) {
			return
		}
		cfg, err := Load()
		if err != nil {
			if onError != nil {
				onError(err)
			}
			return
		}
		onChange(cfg)
	})
	viper.WatchConfig()
}

// ConfigDir returns the path to the user's config directory
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "." + AppName
	}
	return filepath.Join(home, ".config", AppName)
}

// ConfigFile returns the path to the config file
func ConfigFile() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}

// StateDir returns the directory log files are written to
func StateDir() string {
	if xdg := os.Getenv("XDG_STATE_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join("."+AppName, "state")
	}
	return filepath.Join(home, ".local", "state", AppName)
}

// ValidWeekStarts returns the accepted calendar.week_start values
func ValidWeekStarts() []string {
	return []string{"sunday", "monday"}
}
