// Package config provides CLI commands for managing studyplan configuration.
package config

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"slices"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	appconfig "github.com/Iron-Ham/studyplan/internal/config"
	"github.com/Iron-Ham/studyplan/internal/tui/styles"
	"github.com/Iron-Ham/studyplan/internal/validate"
)

// Wrapper functions for exec to allow testing
var execLookPath = exec.LookPath
var execCommand = exec.Command

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View or modify studyplan configuration",
	Long: `View or modify studyplan configuration.

Use 'config show' to display the active configuration.
Use subcommands to modify settings or create a config file.`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	RunE:  runConfigShow,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Long: `Set a configuration value in the user's config file.

Keys use dot notation, e.g.:
  studyplan config set server.base_url https://plans.example.com
  studyplan config set form.days 5
  studyplan config set tui.theme nord

Valid keys:
  server.base_url      - Root URL of the study plan service
  server.timeout       - Request timeout, e.g. 30s (0 disables it)
  form.days            - Default number of study days
  form.hours           - Default study hours per day
  form.email           - Default email address
  form.whatsapp        - Default 10-digit WhatsApp number
  calendar.seed        - Event color seed (0 = random per run)
  calendar.week_start  - First calendar column: sunday, monday
  download.dir         - Directory plan PDFs are saved to
  tui.theme            - Color theme (see 'config theme list')
  logging.enabled      - Write a debug log file (true/false)
  logging.level        - Log level: debug, info, warn, error
  logging.max_size_mb  - Log size before rotation
  logging.max_backups  - Rotated log files kept
  logging.compress     - Gzip rotated logs (true/false)`,
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a default config file",
	Long:  `Create a default config file at ~/.config/studyplan/config.yaml with all available options.`,
	RunE:  runConfigInit,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show the config file path",
	RunE:  runConfigPath,
}

var configEditCmd = &cobra.Command{
	Use:   "edit",
	Short: "Open config file in your editor",
	Long: `Open the config file in your preferred editor.

Uses $EDITOR environment variable, or falls back to common editors (vim, nano, vi).
If no config file exists, creates one with default values first.`,
	RunE: runConfigEdit,
}

var configResetCmd = &cobra.Command{
	Use:   "reset [key]",
	Short: "Reset configuration to defaults",
	Long: `Reset configuration values to their defaults.

Without arguments, resets all configuration to defaults.
With a key argument, resets only that specific key.

Examples:
  studyplan config reset            # Reset all to defaults
  studyplan config reset form.days  # Reset only form.days to default`,
	Args: cobra.MaximumNArgs(1),
	RunE: runConfigReset,
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configEditCmd)
	configCmd.AddCommand(configResetCmd)
}

// Register adds all config-related commands to the given parent command.
func Register(parent *cobra.Command) {
	parent.AddCommand(configCmd)
}

// keyType describes how a value given to 'config set' is parsed.
type keyType int

const (
	typeString keyType = iota
	typeURL
	typeDuration
	typeInt
	typeBool
	typeWeekStart
	typeTheme
	typeLevel
	typeWhatsApp
	typeEmail
)

var validKeys = map[string]keyType{
	"server.base_url":     typeURL,
	"server.timeout":      typeDuration,
	"form.days":           typeInt,
	"form.hours":          typeInt,
	"form.email":          typeEmail,
	"form.whatsapp":       typeWhatsApp,
	"calendar.seed":       typeInt,
	"calendar.week_start": typeWeekStart,
	"download.dir":        typeString,
	"tui.theme":           typeTheme,
	"logging.enabled":     typeBool,
	"logging.level":       typeLevel,
	"logging.max_size_mb": typeInt,
	"logging.max_backups": typeInt,
	"logging.compress":    typeBool,
}

func themesDir() string {
	return filepath.Join(appconfig.ConfigDir(), styles.ThemesDirName)
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	cfg := appconfig.Get()
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, "Current configuration:")
	fmt.Fprintln(out)

	// Show where config is being read from
	if viper.ConfigFileUsed() != "" {
		fmt.Fprintf(out, "Config file: %s\n", viper.ConfigFileUsed())
	} else {
		fmt.Fprintf(out, "Config file: (none - using defaults)\n")
	}
	fmt.Fprintln(out)

	fmt.Fprintln(out, "server:")
	fmt.Fprintf(out, "  base_url: %s\n", cfg.Server.BaseURL)
	fmt.Fprintf(out, "  timeout: %s\n", cfg.Server.Timeout)

	fmt.Fprintln(out, "form:")
	fmt.Fprintf(out, "  days: %d\n", cfg.Form.Days)
	fmt.Fprintf(out, "  hours: %d\n", cfg.Form.Hours)
	fmt.Fprintf(out, "  email: %s\n", cfg.Form.Email)
	fmt.Fprintf(out, "  whatsapp: %s\n", cfg.Form.WhatsApp)

	fmt.Fprintln(out, "calendar:")
	fmt.Fprintf(out, "  seed: %d\n", cfg.Calendar.Seed)
	fmt.Fprintf(out, "  week_start: %s\n", cfg.Calendar.WeekStart)

	fmt.Fprintln(out, "download:")
	fmt.Fprintf(out, "  dir: %s\n", cfg.Download.Dir)

	fmt.Fprintln(out, "tui:")
	fmt.Fprintf(out, "  theme: %s\n", cfg.TUI.Theme)

	fmt.Fprintln(out, "logging:")
	fmt.Fprintf(out, "  enabled: %v\n", cfg.Logging.Enabled)
	fmt.Fprintf(out, "  level: %s\n", cfg.Logging.Level)
	fmt.Fprintf(out, "  max_size_mb: %d\n", cfg.Logging.MaxSizeMB)
	fmt.Fprintf(out, "  max_backups: %d\n", cfg.Logging.MaxBackups)
	fmt.Fprintf(out, "  compress: %v\n", cfg.Logging.Compress)

	return nil
}

// parseValue validates value for key and converts it to the type viper
// should store.
func parseValue(key, value string) (any, error) {
	kt, ok := validKeys[key]
	if !ok {
		return nil, fmt.Errorf("unknown configuration key: %s\nRun 'studyplan config set --help' to see valid keys", key)
	}

	switch kt {
	case typeURL:
		probe := appconfig.Default()
		probe.Server.BaseURL = value
		for _, e := range probe.Validate() {
			if e.Field == key {
				return nil, fmt.Errorf("invalid value for %s: %s", key, e.Message)
			}
		}
		return value, nil
	case typeDuration:
		d, err := time.ParseDuration(value)
		if err != nil || d < 0 {
			return nil, fmt.Errorf("invalid value for %s: expected a non-negative duration such as 30s", key)
		}
		return value, nil
	case typeInt:
		n, err := strconv.Atoi(value)
		if err != nil {
			return nil, fmt.Errorf("invalid value for %s: expected integer", key)
		}
		if n < 0 {
			return nil, fmt.Errorf("invalid value for %s: must be non-negative", key)
		}
		return n, nil
	case typeBool:
		if value != "true" && value != "false" {
			return nil, fmt.Errorf("invalid value for %s: expected true or false", key)
		}
		return value == "true", nil
	case typeWeekStart:
		v := strings.ToLower(value)
		if !slices.Contains(appconfig.ValidWeekStarts(), v) {
			return nil, fmt.Errorf("invalid value for %s: %s\nValid options: %s",
				key, value, strings.Join(appconfig.ValidWeekStarts(), ", "))
		}
		return v, nil
	case typeLevel:
		if !slices.Contains(appconfig.ValidLogLevels(), value) {
			return nil, fmt.Errorf("invalid value for %s: %s\nValid options: %s",
				key, value, strings.Join(appconfig.ValidLogLevels(), ", "))
		}
		return value, nil
	case typeTheme:
		_, _ = styles.DiscoverCustomThemes(themesDir())
		if !styles.IsValidTheme(value) {
			return nil, fmt.Errorf("invalid theme: %s\nValid options: %s",
				value, strings.Join(styles.ValidThemes(), ", "))
		}
		return value, nil
	case typeWhatsApp:
		if value != "" && !validate.IsValidWhatsApp(value) {
			return nil, fmt.Errorf("invalid value for %s: must be exactly 10 digits", key)
		}
		return value, nil
	case typeEmail:
		if value != "" && !validate.IsValidEmail(value) {
			return nil, fmt.Errorf("invalid value for %s: must be a valid email address", key)
		}
		return value, nil
	default:
		return value, nil
	}
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	key := args[0]
	value := args[1]

	typedValue, err := parseValue(key, value)
	if err != nil {
		return err
	}

	// Set the value in viper and make sure the result still validates
	viper.Set(key, typedValue)
	if _, err := appconfig.Load(); err != nil {
		return fmt.Errorf("invalid value for %s: %w", key, err)
	}

	configFile := appconfig.ConfigFile()
	if err := writeConfig(configFile); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Set %s = %v\n", key, typedValue)
	fmt.Fprintf(out, "Config saved to %s\n", configFile)

	return nil
}

func writeConfig(configFile string) error {
	if err := os.MkdirAll(filepath.Dir(configFile), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

const defaultConfigContent = `# studyplan configuration

# Study plan service
server:
  # Root URL the API paths and PDF links resolve against
  base_url: http://localhost:5000
  # Per-request timeout, e.g. 30s (0 = wait for the server)
  timeout: 0s

# Values the plan request form starts with
form:
  days: 7
  hours: 4
  # Optional address the plan is mailed to
  email: ""
  # 10-digit WhatsApp number, without the +91 prefix
  whatsapp: ""

# Calendar view
calendar:
  # Event color seed (0 = random per run)
  seed: 0
  # First column of the grid: sunday or monday
  week_start: sunday

# Where downloaded plan PDFs are saved
download:
  dir: .

# TUI (terminal user interface) settings
tui:
  # Built-in: default, nord, dracula, solarized-light, or a custom theme name
  theme: default

# Debug log file, written to ~/.local/state/studyplan/studyplan.log
logging:
  enabled: false
  # Options: debug, info, warn, error
  level: info
  max_size_mb: 10
  max_backups: 3
  compress: false
`

func runConfigInit(cmd *cobra.Command, args []string) error {
	configDir := appconfig.ConfigDir()
	configFile := appconfig.ConfigFile()

	// Check if config file already exists
	if _, err := os.Stat(configFile); err == nil {
		return fmt.Errorf("config file already exists at %s\nUse 'studyplan config set' to modify values", configFile)
	}

	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := os.WriteFile(configFile, []byte(defaultConfigContent), 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Created config file at %s\n", configFile)
	fmt.Fprintln(out, "Edit this file to customize studyplan's behavior.")

	return nil
}

func runConfigPath(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	configFile := appconfig.ConfigFile()

	if viper.ConfigFileUsed() != "" {
		fmt.Fprintf(out, "Active config: %s\n", viper.ConfigFileUsed())
	} else {
		fmt.Fprintf(out, "Default path: %s (not created)\n", configFile)
	}

	fmt.Fprintln(out, "\nSearch paths:")
	fmt.Fprintf(out, "  1. %s\n", configFile)
	fmt.Fprintf(out, "  2. $HOME/.config/studyplan/config.yaml\n")
	fmt.Fprintf(out, "  3. ./config.yaml (current directory)\n")
	fmt.Fprintln(out, "\nEnvironment variables: STUDYPLAN_* (e.g., STUDYPLAN_SERVER_BASE_URL)")
	fmt.Fprintln(out, "A .env file in the current directory is loaded first.")

	return nil
}

func runConfigEdit(cmd *cobra.Command, args []string) error {
	configFile := appconfig.ConfigFile()

	// Check if config file exists, if not create it
	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		fmt.Fprintf(cmd.OutOrStdout(), "Config file doesn't exist, creating with defaults...\n")
		if err := runConfigInit(cmd, args); err != nil {
			return err
		}
	}

	editor := os.Getenv("EDITOR")
	if editor == "" {
		editor = os.Getenv("VISUAL")
	}
	if editor == "" {
		for _, e := range []string{"vim", "nano", "vi"} {
			if _, err := execLookPath(e); err == nil {
				editor = e
				break
			}
		}
	}
	if editor == "" {
		return fmt.Errorf("no editor found. Set $EDITOR environment variable")
	}

	editorCmd := execCommand(editor, configFile)
	editorCmd.Stdin = os.Stdin
	editorCmd.Stdout = os.Stdout
	editorCmd.Stderr = os.Stderr

	if err := editorCmd.Run(); err != nil {
		return fmt.Errorf("editor exited with error: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Config file saved: %s\n", configFile)
	return nil
}

// defaultValues maps every settable key to its default.
func defaultValues() map[string]any {
	d := appconfig.Default()
	return map[string]any{
		"server.base_url":     d.Server.BaseURL,
		"server.timeout":      d.Server.Timeout.String(),
		"form.days":           d.Form.Days,
		"form.hours":          d.Form.Hours,
		"form.email":          d.Form.Email,
		"form.whatsapp":       d.Form.WhatsApp,
		"calendar.seed":       d.Calendar.Seed,
		"calendar.week_start": d.Calendar.WeekStart,
		"download.dir":        d.Download.Dir,
		"tui.theme":           d.TUI.Theme,
		"logging.enabled":     d.Logging.Enabled,
		"logging.level":       d.Logging.Level,
		"logging.max_size_mb": d.Logging.MaxSizeMB,
		"logging.max_backups": d.Logging.MaxBackups,
		"logging.compress":    d.Logging.Compress,
	}
}

func runConfigReset(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	defaults := defaultValues()

	if len(args) == 0 {
		keys := make([]string, 0, len(defaults))
		for key := range defaults {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		for _, key := range keys {
			viper.Set(key, defaults[key])
		}
		fmt.Fprintln(out, "Reset all configuration to defaults.")
	} else {
		key := args[0]
		value, ok := defaults[key]
		if !ok {
			return fmt.Errorf("unknown configuration key: %s\nRun 'studyplan config set --help' to see valid keys", key)
		}
		viper.Set(key, value)
		fmt.Fprintf(out, "Reset %s to default: %v\n", key, value)
	}

	configFile := appconfig.ConfigFile()
	if err := writeConfig(configFile); err != nil {
		return err
	}

	fmt.Fprintf(out, "Config saved to %s\n", configFile)
	return nil
}
