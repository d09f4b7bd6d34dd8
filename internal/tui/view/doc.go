// Package view renders the panels of the studyplan TUI.
//
// Every function here is pure: it takes the projection to draw, the space
// available and the active [styles.Theme], and returns a string. Nothing in
// this package mutates application state.
//
// # Panels
//
//   - [RenderCalendar]: toolbar title plus a month or week grid of events
//   - [RenderOverlay]: the detail box of the selected calendar event
//   - [RenderAgenda]: the day-by-day list with durations and tags
//   - [RenderChat]: the chat log, with the typing placeholder
//   - [RenderSelection]: the selected files and their sizes
//   - [RenderHelpBar]: key hints for the active input mode
package view
