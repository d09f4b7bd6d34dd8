package styles

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"
)

// ThemeFile represents a custom theme definition loaded from YAML.
type ThemeFile struct {
	// Name is the theme's display name
	Name string `yaml:"name"`
	// Author is the theme creator's name (optional)
	Author string `yaml:"author,omitempty"`
	// Description is a short summary shown by 'config theme info' (optional)
	Description string `yaml:"description,omitempty"`
	// Version is the theme file format version (currently "1")
	Version string `yaml:"version"`
	// Colors defines the color palette
	Colors ThemeColors `yaml:"colors"`
}

// ThemeColors contains all color definitions for a theme.
// All colors should be hex format (#RRGGBB or #RGB).
type ThemeColors struct {
	Primary   string `yaml:"primary"`
	Secondary string `yaml:"secondary"`
	Warning   string `yaml:"warning"`
	Error     string `yaml:"error"`
	Muted     string `yaml:"muted"`
	Surface   string `yaml:"surface"`
	Text      string `yaml:"text"`
	Border    string `yaml:"border"`

	// Optional; derived from the base colors when empty
	UserMessage string `yaml:"user_message,omitempty"`
	BotMessage  string `yaml:"bot_message,omitempty"`
	Today       string `yaml:"today,omitempty"`
	Cursor      string `yaml:"cursor,omitempty"`
}

var hexColorRegex = regexp.MustCompile(`^#([0-9A-Fa-f]{3}|[0-9A-Fa-f]{6})$`)

// LoadThemeFile loads a theme from a YAML file.
func LoadThemeFile(path string) (*ThemeFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading theme file: %w", err)
	}

	var theme ThemeFile
	if err := yaml.Unmarshal(data, &theme); err != nil {
		return nil, fmt.Errorf("parsing theme file: %w", err)
	}

	if err := theme.Validate(); err != nil {
		return nil, fmt.Errorf("invalid theme: %w", err)
	}

	return &theme, nil
}

// Validate checks that the theme file is well-formed.
func (t *ThemeFile) Validate() error {
	if t.Name == "" {
		return errors.New("theme name is required")
	}
	if t.Version != "1" {
		return fmt.Errorf("unsupported theme version: %q (supported: 1)", t.Version)
	}

	required := []struct{ name, color string }{
		{"primary", t.Colors.Primary},
		{"secondary", t.Colors.Secondary},
		{"warning", t.Colors.Warning},
		{"error", t.Colors.Error},
		{"muted", t.Colors.Muted},
		{"surface", t.Colors.Surface},
		{"text", t.Colors.Text},
		{"border", t.Colors.Border},
	}
	for _, c := range required {
		if c.color == "" {
			return fmt.Errorf("color '%s' is required", c.name)
		}
		if !isValidHexColor(c.color) {
			return fmt.Errorf("color '%s' has invalid format: %s (expected #RGB or #RRGGBB)", c.name, c.color)
		}
	}

	optional := []struct{ name, color string }{
		{"user_message", t.Colors.UserMessage},
		{"bot_message", t.Colors.BotMessage},
		{"today", t.Colors.Today},
		{"cursor", t.Colors.Cursor},
	}
	for _, c := range optional {
		if c.color != "" && !isValidHexColor(c.color) {
			return fmt.Errorf("color '%s' has invalid format: %s (expected #RGB or #RRGGBB)", c.name, c.color)
		}
	}

	return nil
}

func isValidHexColor(color string) bool {
	return hexColorRegex.MatchString(color)
}

// ToPalette converts the theme file to a ColorPalette.
func (t *ThemeFile) ToPalette() *ColorPalette {
	c := t.Colors
	return &ColorPalette{
		Primary:   lipgloss.Color(c.Primary),
		Secondary: lipgloss.Color(c.Secondary),
		Warning:   lipgloss.Color(c.Warning),
		Error:     lipgloss.Color(c.Error),
		Muted:     lipgloss.Color(c.Muted),
		Surface:   lipgloss.Color(c.Surface),
		Text:      lipgloss.Color(c.Text),
		Border:    lipgloss.Color(c.Border),

		UserMessage: colorOrDefault(c.UserMessage, c.Primary),
		BotMessage:  colorOrDefault(c.BotMessage, c.Text),
		Today:       colorOrDefault(c.Today, c.Warning),
		Cursor:      colorOrDefault(c.Cursor, c.Primary),
	}
}

func colorOrDefault(color, fallback string) lipgloss.Color {
	if color != "" {
		return lipgloss.Color(color)
	}
	return lipgloss.Color(fallback)
}

var (
	customMu     sync.RWMutex
	customThemes = make(map[ThemeName]*ThemeFile)
)

// RegisterCustomTheme registers a custom theme by name.
func RegisterCustomTheme(name ThemeName, theme *ThemeFile) {
	customMu.Lock()
	defer customMu.Unlock()
	customThemes[name] = theme
}

// GetCustomTheme returns a custom theme by name, or nil if not found.
func GetCustomTheme(name ThemeName) *ThemeFile {
	customMu.RLock()
	defer customMu.RUnlock()
	return customThemes[name]
}

// IsCustomTheme checks if a theme name is a registered custom theme.
func IsCustomTheme(name string) bool {
	return GetCustomTheme(ThemeName(name)) != nil
}

// CustomThemeNames returns the sorted names of all registered custom themes.
func CustomThemeNames() []string {
	customMu.RLock()
	defer customMu.RUnlock()
	names := make([]string, 0, len(customThemes))
	for name := range customThemes {
		names = append(names, string(name))
	}
	slices.Sort(names)
	return names
}

// ClearCustomThemes removes all registered custom themes.
func ClearCustomThemes() {
	customMu.Lock()
	defer customMu.Unlock()
	customThemes = make(map[ThemeName]*ThemeFile)
}

// IsBuiltinTheme checks if a theme name is a built-in theme.
func IsBuiltinTheme(name string) bool {
	return slices.Contains(BuiltinThemes(), name)
}

// ThemesDirName is the directory under the config dir holding custom themes.
const ThemesDirName = "themes"

// DiscoverCustomThemes loads every *.yaml or *.yml file in dir as a custom
// theme named after the file. A missing directory is not an error. Invalid
// files are skipped and reported.
func DiscoverCustomThemes(dir string) ([]string, []error) {
	entries, err := os.ReadDir(dir)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, []error{fmt.Errorf("reading themes directory: %w", err)}
	}

	var loaded []string
	var errs []error
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		ext := filepath.Ext(name)
		if ext != ".yaml" && ext != ".yml" {
			continue
		}

		theme, err := LoadThemeFile(filepath.Join(dir, name))
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", name, err))
			continue
		}

		themeName := strings.TrimSuffix(name, ext)
		if IsBuiltinTheme(themeName) {
			errs = append(errs, fmt.Errorf("%s: cannot override built-in theme '%s'", name, themeName))
			continue
		}

		RegisterCustomTheme(ThemeName(themeName), theme)
		loaded = append(loaded, themeName)
	}
	return loaded, errs
}

// FromPalette builds a theme file holding every color of p.
func FromPalette(name string, p *ColorPalette) *ThemeFile {
	return &ThemeFile{
		Name:    name,
		Version: "1",
		Colors: ThemeColors{
			Primary:     string(p.Primary),
			Secondary:   string(p.Secondary),
			Warning:     string(p.Warning),
			Error:       string(p.Error),
			Muted:       string(p.Muted),
			Surface:     string(p.Surface),
			Text:        string(p.Text),
			Border:      string(p.Border),
			UserMessage: string(p.UserMessage),
			BotMessage:  string(p.BotMessage),
			Today:       string(p.Today),
			Cursor:      string(p.Cursor),
		},
	}
}

// ExportTheme renders a built-in or custom theme as theme file YAML.
func ExportTheme(name ThemeName) ([]byte, error) {
	if !IsValidTheme(string(name)) {
		return nil, fmt.Errorf("unknown theme: %s", name)
	}
	theme := GetCustomTheme(name)
	if theme == nil {
		theme = FromPalette(string(name), GetPalette(name))
	}
	return yaml.Marshal(theme)
}

// SaveTheme validates theme and writes it to dir/<name>.yaml.
func SaveTheme(dir, name string, theme *ThemeFile) error {
	if err := theme.Validate(); err != nil {
		return fmt.Errorf("invalid theme: %w", err)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating themes directory: %w", err)
	}
	data, err := yaml.Marshal(theme)
	if err != nil {
		return fmt.Errorf("encoding theme: %w", err)
	}
	return os.WriteFile(filepath.Join(dir, name+".yaml"), data, 0o644)
}
