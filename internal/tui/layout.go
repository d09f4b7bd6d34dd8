// Package tui provides the terminal user interface for studyplan.
// This file contains layout-related constants and dimension calculation functions.
package tui

// Column dimensions
const (
	// LeftColumnMinWidth is the narrowest the form and chat column gets.
	LeftColumnMinWidth = 36

	// LeftColumnMaxWidth caps the form and chat column on wide terminals.
	LeftColumnMaxWidth = 60

	// LeftColumnRatio is the share of the terminal width given to the left column.
	LeftColumnRatio = 0.4
)

// Panel chrome
const (
	// PanelFrameWidth is the border (2) plus horizontal padding (2) of a panel.
	PanelFrameWidth = 4

	// PanelBorderWidth is the left and right border of a panel.
	PanelBorderWidth = 2

	// PanelFrameHeight is the top and bottom border of a panel.
	PanelFrameHeight = 2

	// HelpBarHeight is the single status and key hint line.
	HelpBarHeight = 1

	// ChatChromeLines accounts for the chat title and the input line.
	ChatChromeLines = 2

	// AgendaTitleLines accounts for the agenda panel title.
	AgendaTitleLines = 1

	// MinViewportLines is the minimum number of visible lines in a scrolling panel.
	MinViewportLines = 3

	// FieldLabelWidth aligns the form field inputs.
	FieldLabelWidth = 10
)

// CalculateColumns splits the terminal width into the left (form and chat)
// and right (calendar and agenda) columns.
func CalculateColumns(termWidth int) (left, right int) {
	left = int(float64(termWidth) * LeftColumnRatio)
	left = max(LeftColumnMinWidth, min(left, LeftColumnMaxWidth))
	right = max(termWidth-left, 0)
	return left, right
}

// CalculateContentWidth returns the usable width inside a panel of the
// given outer width.
func CalculateContentWidth(outerWidth int) int {
	return max(outerWidth-PanelFrameWidth, 1)
}

// CalculateViewportHeight returns the lines left for a scrolling panel
// after the panels stacked above it (aboveHeight, outer height) and its own
// chrome are subtracted. It never goes below MinViewportLines.
func CalculateViewportHeight(termHeight, aboveHeight, chromeLines int) int {
	h := termHeight - HelpBarHeight - aboveHeight - PanelFrameHeight - chromeLines
	return max(h, MinViewportLines)
}
