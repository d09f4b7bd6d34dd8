// Package msg defines the messages the TUI control loop receives and the
// command factories that produce them.
//
// Network calls run inside tea.Cmd functions off the loop; each reports
// back exactly one *FinishedMsg carrying the result or the error. State is
// only ever changed when the loop handles that message.
package msg
