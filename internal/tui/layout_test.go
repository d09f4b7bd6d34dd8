package tui

import "testing"

func TestCalculateColumns(t *testing.T) {
	tests := []struct {
		name      string
		termWidth int
		wantLeft  int
		wantRight int
	}{
		{"standard terminal uses the ratio", 120, 48, 72},
		{"narrow terminal keeps minimum left width", 70, LeftColumnMinWidth, 70 - LeftColumnMinWidth},
		{"wide terminal caps left width", 200, LeftColumnMaxWidth, 200 - LeftColumnMaxWidth},
		{"tiny terminal never goes negative", 20, LeftColumnMinWidth, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			left, right := CalculateColumns(tt.termWidth)
			if left != tt.wantLeft || right != tt.wantRight {
				t.Errorf("CalculateColumns(%d) = (%d, %d), want (%d, %d)", tt.termWidth, left, right, tt.wantLeft, tt.wantRight)
			}
		})
	}
}

func TestCalculateContentWidth(t *testing.T) {
	if got := CalculateContentWidth(48); got != 44 {
		t.Errorf("CalculateContentWidth(48) = %d, want 44", got)
	}
	if got := CalculateContentWidth(2); got != 1 {
		t.Errorf("CalculateContentWidth(2) = %d, want 1", got)
	}
}

func TestCalculateViewportHeight(t *testing.T) {
	tests := []struct {
		name        string
		termHeight  int
		aboveHeight int
		chrome      int
		want        int
	}{
		{"chat under form", 40, 14, ChatChromeLines, 40 - 1 - 14 - 2 - 2},
		{"agenda under calendar", 40, 22, AgendaTitleLines, 40 - 1 - 22 - 2 - 1},
		{"short terminal clamps", 20, 22, AgendaTitleLines, MinViewportLines},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CalculateViewportHeight(tt.termHeight, tt.aboveHeight, tt.chrome); got != tt.want {
				t.Errorf("CalculateViewportHeight() = %d, want %d", got, tt.want)
			}
		})
	}
}
