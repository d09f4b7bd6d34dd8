package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg == nil {
		t.Fatal("Default() returned nil")
	}

	if cfg.Server.BaseURL != "http://localhost:5000" {
		t.Errorf("Server.BaseURL = %q, want %q", cfg.Server.BaseURL, "http://localhost:5000")
	}
	if cfg.Server.Timeout != 0 {
		t.Errorf("Server.Timeout = %v, want 0 (no timeout)", cfg.Server.Timeout)
	}
	if cfg.Form.Days != 7 {
		t.Errorf("Form.Days = %d, want 7", cfg.Form.Days)
	}
	if cfg.Form.Hours != 4 {
		t.Errorf("Form.Hours = %d, want 4", cfg.Form.Hours)
	}
	if cfg.Calendar.WeekStart != "sunday" {
		t.Errorf("Calendar.WeekStart = %q, want sunday", cfg.Calendar.WeekStart)
	}
	if cfg.Download.Dir != "." {
		t.Errorf("Download.Dir = %q, want .", cfg.Download.Dir)
	}
	if cfg.TUI.Theme != "default" {
		t.Errorf("TUI.Theme = %q, want default", cfg.TUI.Theme)
	}
	if cfg.Logging.Enabled {
		t.Error("Logging.Enabled should be false by default")
	}

	if errs := cfg.Validate(); len(errs) != 0 {
		t.Errorf("Default() should validate, got %v", errs)
	}
}

func TestCalendarConfig_WeekStartDay(t *testing.T) {
	tests := []struct {
		value string
		want  time.Weekday
	}{
		{"sunday", time.Sunday},
		{"monday", time.Monday},
		{"Monday", time.Monday},
		{"", time.Sunday},
	}

	for _, tt := range tests {
		cfg := CalendarConfig{WeekStart: tt.value}
		if got := cfg.WeekStartDay(); got != tt.want {
			t.Errorf("WeekStartDay() with %q = %v, want %v", tt.value, got, tt.want)
		}
	}
}

func TestDownloadConfig_ResolveDir(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}

	tests := []struct {
		dir  string
		want string
	}{
		{"", "."},
		{"plans", "plans"},
		{"~", home},
		{"~/plans", filepath.Join(home, "plans")},
		{"/abs/plans", "/abs/plans"},
	}

	for _, tt := range tests {
		t.Run(tt.dir, func(t *testing.T) {
			d := DownloadConfig{Dir: tt.dir}
			if got := d.ResolveDir(); got != tt.want {
				t.Errorf("ResolveDir() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestConfigDir(t *testing.T) {
	t.Run("with XDG_CONFIG_HOME", func(t *testing.T) {
		t.Setenv("XDG_CONFIG_HOME", "/custom/config")
		if got, want := ConfigDir(), "/custom/config/studyplan"; got != want {
			t.Errorf("ConfigDir() = %q, want %q", got, want)
		}
	})

	t.Run("without XDG_CONFIG_HOME", func(t *testing.T) {
		t.Setenv("XDG_CONFIG_HOME", "")
		home, _ := os.UserHomeDir()
		if got, want := ConfigDir(), filepath.Join(home, ".config", "studyplan"); got != want {
			t.Errorf("ConfigDir() = %q, want %q", got, want)
		}
	})
}

func TestConfigFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/custom/config")
	if got, want := ConfigFile(), "/custom/config/studyplan/config.yaml"; got != want {
		t.Errorf("ConfigFile() = %q, want %q", got, want)
	}
}

func TestStateDir(t *testing.T) {
	t.Setenv("XDG_STATE_HOME", "/custom/state")
	if got, want := StateDir(), "/custom/state/studyplan"; got != want {
		t.Errorf("StateDir() = %q, want %q", got, want)
	}
}

func TestLoad_FromFile(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	SetDefaults()

	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `server:
  base_url: https://plans.example.com
  timeout: 45s
form:
  days: 14
  whatsapp: "9876543210"
calendar:
  seed: 42
  week_start: monday
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	viper.SetConfigFile(path)
	if err := viper.ReadInConfig(); err != nil {
		t.Fatalf("ReadInConfig() error = %v", err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Server.BaseURL != "https://plans.example.com" {
		t.Errorf("Server.BaseURL = %q", cfg.Server.BaseURL)
	}
	if cfg.Server.Timeout != 45*time.Second {
		t.Errorf("Server.Timeout = %v, want 45s", cfg.Server.Timeout)
	}
	if cfg.Form.Days != 14 || cfg.Form.Hours != 4 {
		t.Errorf("Form = %+v, want days 14 and default hours 4", cfg.Form)
	}
	if cfg.Form.WhatsApp != "9876543210" {
		t.Errorf("Form.WhatsApp = %q", cfg.Form.WhatsApp)
	}
	if cfg.Calendar.Seed != 42 || cfg.Calendar.WeekStartDay() != time.Monday {
		t.Errorf("Calendar = %+v", cfg.Calendar)
	}
}

func TestLoad_Invalid(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	SetDefaults()
	viper.Set("form.days", 0)
	viper.Set("server.base_url", "localhost")

	_, err := Load()
	if err == nil {
		t.Fatal("Load() should fail validation")
	}
	errs, ok := err.(ValidationErrors)
	if !ok {
		t.Fatalf("error = %T, want ValidationErrors", err)
	}
	if len(errs) != 2 {
		t.Errorf("got %d errors, want 2: %v", len(errs), errs)
	}
}

func TestGet(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	SetDefaults()

	cfg := Get()
	if cfg == nil {
		t.Fatal("Get() returned nil")
	}
	if cfg.Server.BaseURL != "http://localhost:5000" {
		t.Errorf("Get().Server.BaseURL = %q", cfg.Server.BaseURL)
	}
}

func TestGet_FallsBackToDefaults(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	SetDefaults()
	viper.Set("logging.level", "loud")

	if cfg := Get(); cfg.Logging.Level != "info" {
		t.Errorf("Get() should fall back to defaults, got level %q", cfg.Logging.Level)
	}
}

func TestWatch_NoConfigFile(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	Watch(func(*Config) { t.Error("onChange should not be called") }, nil)
}
