package styles

import (
	"sync/atomic"

	"github.com/charmbracelet/lipgloss"
)

// Theme bundles every lipgloss style the views render with, built from one
// palette. A Theme is immutable once built; switching themes swaps the
// whole value.
type Theme struct {
	Name    ThemeName
	Palette *ColorPalette

	Title     lipgloss.Style
	Subtitle  lipgloss.Style
	Muted     lipgloss.Style
	Error     lipgloss.Style
	Warning   lipgloss.Style
	Success   lipgloss.Style
	KeyHint   lipgloss.Style
	StatusBar lipgloss.Style

	Panel        lipgloss.Style
	FocusedPanel lipgloss.Style
	Label        lipgloss.Style

	UserMessage lipgloss.Style
	BotMessage  lipgloss.Style
	Typing      lipgloss.Style

	Weekday    lipgloss.Style
	Cell       lipgloss.Style
	OtherMonth lipgloss.Style
	Today      lipgloss.Style
	CursorCell lipgloss.Style
	Overlay    lipgloss.Style

	DayHeading lipgloss.Style
	Tag        lipgloss.Style
	Progress   lipgloss.Style
}

// NewTheme builds the styles for a palette.
func NewTheme(name ThemeName, p *ColorPalette) *Theme {
	panel := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Border).
		Padding(0, 1)

	return &Theme{
		Name:    name,
		Palette: p,

		Title:     lipgloss.NewStyle().Bold(true).Foreground(p.Primary),
		Subtitle:  lipgloss.NewStyle().Foreground(p.Muted).Italic(true),
		Muted:     lipgloss.NewStyle().Foreground(p.Muted),
		Error:     lipgloss.NewStyle().Foreground(p.Error).Bold(true),
		Warning:   lipgloss.NewStyle().Foreground(p.Warning),
		Success:   lipgloss.NewStyle().Foreground(p.Secondary),
		KeyHint:   lipgloss.NewStyle().Foreground(p.Secondary).Bold(true),
		StatusBar: lipgloss.NewStyle().Background(p.Surface).Foreground(p.Text).Padding(0, 1),

		Panel:        panel,
		FocusedPanel: panel.BorderForeground(p.Primary),
		Label:        lipgloss.NewStyle().Foreground(p.Muted).Bold(true),

		UserMessage: lipgloss.NewStyle().Foreground(p.UserMessage),
		BotMessage:  lipgloss.NewStyle().Foreground(p.BotMessage),
		Typing:      lipgloss.NewStyle().Foreground(p.Muted).Italic(true),

		Weekday:    lipgloss.NewStyle().Foreground(p.Muted).Bold(true),
		Cell:       lipgloss.NewStyle().Foreground(p.Text),
		OtherMonth: lipgloss.NewStyle().Foreground(p.Border),
		Today:      lipgloss.NewStyle().Foreground(p.Today).Bold(true),
		CursorCell: lipgloss.NewStyle().Background(p.Cursor).Foreground(p.Text).Bold(true),
		Overlay: lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(p.Primary).
			Padding(1, 2),

		DayHeading: lipgloss.NewStyle().Bold(true).Foreground(p.Text).Underline(true),
		Tag:        lipgloss.NewStyle().Foreground(p.Surface).Background(p.Secondary).Padding(0, 1),
		Progress:   lipgloss.NewStyle().Foreground(p.Border),
	}
}

// EventStyle renders an event marker in the event's own hex color.
func EventStyle(hex string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(hex))
}

var current atomic.Pointer[Theme]

func init() {
	current.Store(NewTheme(ThemeDefault, DefaultPalette()))
}

// Current returns the active theme.
func Current() *Theme {
	return current.Load()
}

// Apply makes the named theme active and returns it. Unknown names fall
// back to the default theme.
func Apply(name string) *Theme {
	n := ThemeName(name)
	if !IsValidTheme(name) {
		n = ThemeDefault
	}
	t := NewTheme(n, GetPalette(n))
	current.Store(t)
	return t
}
