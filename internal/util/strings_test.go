package util

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		width    int
		expected string
	}{
		{"short string unchanged", "hello", 10, "hello"},
		{"exact width unchanged", "hello", 5, "hello"},
		{"long string truncated", "hello world", 8, "hello w…"},
		{"width of one", "hello", 1, "…"},
		{"zero width", "hello", 0, ""},
		{"negative width", "hello", -4, ""},
		{"empty string", "", 5, ""},
		{"wide runes counted by cells", "日本語テキスト", 5, "日本…"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Truncate(tt.input, tt.width)
			if got != tt.expected {
				t.Errorf("Truncate(%q, %d) = %q, want %q", tt.input, tt.width, got, tt.expected)
			}
			if w := lipgloss.Width(got); tt.width > 0 && w > tt.width {
				t.Errorf("Truncate(%q, %d) is %d cells wide", tt.input, tt.width, w)
			}
		})
	}
}

func TestTruncate_Styled(t *testing.T) {
	red := lipgloss.NewStyle().Foreground(lipgloss.Color("9"))

	short := red.Render("hi")
	if got := Truncate(short, 10); got != short {
		t.Errorf("styled string was modified when it fits: %q", got)
	}

	long := red.Render("Binary Search Algorithm")
	got := Truncate(long, 10)
	if w := lipgloss.Width(got); w != 10 {
		t.Errorf("width = %d, want 10", w)
	}
	if plain := ansi.Strip(got); plain != "Binary Se…" {
		t.Errorf("visible text = %q, want %q", plain, "Binary Se…")
	}
}

func TestTruncateMiddle(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		width    int
		expected string
	}{
		{"fits", "notes.pdf", 20, "notes.pdf"},
		{"keeps both ends", "lecture-notes-week-one.pdf", 13, "lectur…ne.pdf"},
		{"odd budget favors the head", "abcdefghij", 6, "abc…ij"},
		{"tiny width falls back to a plain cut", "abcdefghij", 2, "a…"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TruncateMiddle(tt.input, tt.width)
			if got != tt.expected {
				t.Errorf("TruncateMiddle(%q, %d) = %q, want %q", tt.input, tt.width, got, tt.expected)
			}
			if w := lipgloss.Width(got); w > tt.width {
				t.Errorf("TruncateMiddle(%q, %d) is %d cells wide", tt.input, tt.width, w)
			}
		})
	}
}
