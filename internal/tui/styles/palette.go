// Package styles holds the color themes and lipgloss styles of the TUI.
package styles

import (
	"slices"

	"github.com/charmbracelet/lipgloss"
)

// ThemeName represents a named color theme.
type ThemeName string

// Available theme names.
const (
	ThemeDefault        ThemeName = "default"         // Blue/green dark theme
	ThemeNord           ThemeName = "nord"            // Nord theme - cool blue-gray
	ThemeDracula        ThemeName = "dracula"         // Dracula theme colors
	ThemeSolarizedLight ThemeName = "solarized-light" // Solarized Light for light terminals
)

// BuiltinThemes returns all built-in theme names.
func BuiltinThemes() []string {
	return []string{
		string(ThemeDefault),
		string(ThemeNord),
		string(ThemeDracula),
		string(ThemeSolarizedLight),
	}
}

// ValidThemes returns all valid theme names (built-in + custom).
func ValidThemes() []string {
	return append(BuiltinThemes(), CustomThemeNames()...)
}

// IsValidTheme checks if a theme name is valid (built-in or custom).
func IsValidTheme(name string) bool {
	return slices.Contains(BuiltinThemes(), name) || IsCustomTheme(name)
}

// ColorPalette defines the color scheme for a theme.
type ColorPalette struct {
	Primary   lipgloss.Color // focused panel, headings
	Secondary lipgloss.Color // success, key hints
	Warning   lipgloss.Color
	Error     lipgloss.Color
	Muted     lipgloss.Color // de-emphasized text
	Surface   lipgloss.Color // status bar background
	Text      lipgloss.Color
	Border    lipgloss.Color // unfocused panel borders

	UserMessage lipgloss.Color // chat entries typed by the user
	BotMessage  lipgloss.Color // chat entries from the service
	Today       lipgloss.Color // today's cell in the calendar grid
	Cursor      lipgloss.Color // the focused calendar cell
}

// DefaultPalette returns the default dark theme palette.
func DefaultPalette() *ColorPalette {
	return &ColorPalette{
		Primary:   lipgloss.Color("#4299E1"), // Blue
		Secondary: lipgloss.Color("#48BB78"), // Green
		Warning:   lipgloss.Color("#ED8936"), // Orange
		Error:     lipgloss.Color("#F56565"), // Red
		Muted:     lipgloss.Color("#A0AEC0"), // Gray
		Surface:   lipgloss.Color("#1A202C"), // Dark surface
		Text:      lipgloss.Color("#F7FAFC"), // Light text
		Border:    lipgloss.Color("#4A5568"), // Gray-600

		UserMessage: lipgloss.Color("#90CDF4"),
		BotMessage:  lipgloss.Color("#E2E8F0"),
		Today:       lipgloss.Color("#D69E2E"),
		Cursor:      lipgloss.Color("#2B6CB0"),
	}
}

// NordPalette returns the Nord theme palette.
func NordPalette() *ColorPalette {
	return &ColorPalette{
		Primary:   lipgloss.Color("#88C0D0"), // Frost
		Secondary: lipgloss.Color("#A3BE8C"), // Aurora green
		Warning:   lipgloss.Color("#EBCB8B"), // Aurora yellow
		Error:     lipgloss.Color("#BF616A"), // Aurora red
		Muted:     lipgloss.Color("#8FBCBB"),
		Surface:   lipgloss.Color("#3B4252"), // Polar night
		Text:      lipgloss.Color("#ECEFF4"), // Snow storm
		Border:    lipgloss.Color("#4C566A"),

		UserMessage: lipgloss.Color("#81A1C1"),
		BotMessage:  lipgloss.Color("#E5E9F0"),
		Today:       lipgloss.Color("#D08770"),
		Cursor:      lipgloss.Color("#5E81AC"),
	}
}

// DraculaPalette returns the Dracula theme palette.
func DraculaPalette() *ColorPalette {
	return &ColorPalette{
		Primary:   lipgloss.Color("#BD93F9"), // Purple
		Secondary: lipgloss.Color("#50FA7B"), // Green
		Warning:   lipgloss.Color("#FFB86C"), // Orange
		Error:     lipgloss.Color("#FF5555"), // Red
		Muted:     lipgloss.Color("#6272A4"), // Comment
		Surface:   lipgloss.Color("#282A36"), // Background
		Text:      lipgloss.Color("#F8F8F2"), // Foreground
		Border:    lipgloss.Color("#44475A"), // Current line

		UserMessage: lipgloss.Color("#8BE9FD"),
		BotMessage:  lipgloss.Color("#F8F8F2"),
		Today:       lipgloss.Color("#F1FA8C"),
		Cursor:      lipgloss.Color("#FF79C6"),
	}
}

// SolarizedLightPalette returns the Solarized Light theme palette.
func SolarizedLightPalette() *ColorPalette {
	return &ColorPalette{
		Primary:   lipgloss.Color("#268BD2"), // Blue
		Secondary: lipgloss.Color("#859900"), // Green
		Warning:   lipgloss.Color("#B58900"), // Yellow
		Error:     lipgloss.Color("#DC322F"), // Red
		Muted:     lipgloss.Color("#93A1A1"), // Base1
		Surface:   lipgloss.Color("#EEE8D5"), // Base2
		Text:      lipgloss.Color("#586E75"), // Base01
		Border:    lipgloss.Color("#93A1A1"),

		UserMessage: lipgloss.Color("#2AA198"),
		BotMessage:  lipgloss.Color("#657B83"),
		Today:       lipgloss.Color("#CB4B16"),
		Cursor:      lipgloss.Color("#6C71C4"),
	}
}

// GetPalette returns the palette for a theme name. Unknown names fall back
// to the default palette.
func GetPalette(name ThemeName) *ColorPalette {
	if custom := GetCustomTheme(name); custom != nil {
		return custom.ToPalette()
	}
	switch name {
	case ThemeNord:
		return NordPalette()
	case ThemeDracula:
		return DraculaPalette()
	case ThemeSolarizedLight:
		return SolarizedLightPalette()
	default:
		return DefaultPalette()
	}
}
