// Package keymap provides key binding definitions and lookup for the TUI.
// Bindings are declared per input mode so text fields keep their rune keys
// while the calendar panel gets single-letter navigation.
package keymap

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Mode represents the current input mode of the TUI.
// Different modes have different key bindings active.
type Mode string

const (
	ModeForm     Mode = "form"     // Editing a form field or the drop field
	ModeChat     Mode = "chat"     // Typing a chat message
	ModeCalendar Mode = "calendar" // Navigating the calendar grid
	ModeAgenda   Mode = "agenda"   // Scrolling the day list
	ModeOverlay  Mode = "overlay"  // Event detail overlay is open
)

// Command represents a named action that can be triggered by a key binding.
type Command string

// Global commands
const (
	CmdNextFocus  Command = "next_focus"
	CmdPrevFocus  Command = "prev_focus"
	CmdGenerate   Command = "generate"
	CmdDownload   Command = "download"
	CmdToggleHelp Command = "toggle_help"
	CmdQuit       Command = "quit"
)

// Field commands
const (
	CmdConfirm Command = "confirm" // next field, or apply the drop field
	CmdSend    Command = "send"
)

// Calendar commands
const (
	CmdCursorLeft  Command = "cursor_left"
	CmdCursorRight Command = "cursor_right"
	CmdCursorUp    Command = "cursor_up"
	CmdCursorDown  Command = "cursor_down"
	CmdPrevPeriod  Command = "prev_period"
	CmdNextPeriod  Command = "next_period"
	CmdToday       Command = "today"
	CmdToggleView  Command = "toggle_view"
	CmdCycleEvent  Command = "cycle_event"
	CmdOpenEvent   Command = "open_event"
	CmdCloseEvent  Command = "close_event"
)

// Agenda commands
const (
	CmdScrollUp   Command = "scroll_up"
	CmdScrollDown Command = "scroll_down"
)

// Modifier represents keyboard modifiers (Ctrl, Alt, Shift).
type Modifier uint8

const (
	ModNone  Modifier = 0
	ModCtrl  Modifier = 1 << iota
	ModAlt
	ModShift
)

// String returns a human-readable representation of modifiers.
func (m Modifier) String() string {
	if m == ModNone {
		return ""
	}
	var s string
	if m&ModCtrl != 0 {
		s += "ctrl+"
	}
	if m&ModAlt != 0 {
		s += "alt+"
	}
	if m&ModShift != 0 {
		s += "shift+"
	}
	return s
}

// KeyBinding represents a single key binding configuration.
type KeyBinding struct {
	// KeyType is the primary key for this binding.
	// For rune keys, use tea.KeyRunes and set Rune.
	KeyType tea.KeyType

	// Rune is the character for rune-based keys (when KeyType is tea.KeyRunes).
	Rune rune

	// Modifiers contains the modifier keys that must be pressed.
	Modifiers Modifier

	// Command is the action to execute when this binding is triggered.
	Command Command

	// Description is a human-readable description for help display.
	Description string

	// Category groups related bindings together in help display.
	Category string
}

// Matches checks if a tea.KeyMsg matches this binding.
func (kb KeyBinding) Matches(msg tea.KeyMsg) bool {
	wantAlt := kb.Modifiers&ModAlt != 0
	if msg.Alt != wantAlt {
		return false
	}

	if kb.KeyType != tea.KeyRunes {
		return msg.Type == kb.KeyType
	}

	if msg.Type != tea.KeyRunes || len(msg.Runes) == 0 {
		return false
	}
	return msg.Runes[0] == kb.Rune
}

// String returns a human-readable representation of the key binding.
func (kb KeyBinding) String() string {
	prefix := kb.Modifiers.String()

	if kb.KeyType != tea.KeyRunes {
		return prefix + kb.KeyType.String()
	}

	switch kb.Rune {
	case ' ':
		return prefix + "space"
	default:
		return prefix + string(kb.Rune)
	}
}

// ModeBindings holds all key bindings for a specific mode.
type ModeBindings struct {
	Mode     Mode
	Bindings []KeyBinding
}

// GetBinding looks up a command for a key in this mode.
func (mb *ModeBindings) GetBinding(msg tea.KeyMsg) (Command, bool) {
	for _, binding := range mb.Bindings {
		if binding.Matches(msg) {
			return binding.Command, true
		}
	}
	return "", false
}

// Keymap contains all key bindings organized by mode.
type Keymap struct {
	Name        string
	Description string

	// Global bindings apply in every mode, after the mode's own.
	Global *ModeBindings
	Modes  map[Mode]*ModeBindings
}

// GetBinding looks up a command for a key in a specific mode, falling back
// to the global bindings.
func (km *Keymap) GetBinding(msg tea.KeyMsg, mode Mode) (Command, bool) {
	if mb, ok := km.Modes[mode]; ok {
		if cmd, ok := mb.GetBinding(msg); ok {
			return cmd, true
		}
	}
	if km.Global != nil {
		return km.Global.GetBinding(msg)
	}
	return "", false
}

// GetModeBindings returns the bindings active in a mode: the mode's own
// followed by the global ones.
func (km *Keymap) GetModeBindings(mode Mode) []KeyBinding {
	var out []KeyBinding
	if mb, ok := km.Modes[mode]; ok {
		out = append(out, mb.Bindings...)
	}
	if km.Global != nil {
		out = append(out, km.Global.Bindings...)
	}
	return out
}

// GetBindingsForCommand returns all bindings that trigger a specific command.
func (km *Keymap) GetBindingsForCommand(cmd Command, mode Mode) []KeyBinding {
	var result []KeyBinding
	for _, binding := range km.GetModeBindings(mode) {
		if binding.Command == cmd {
			result = append(result, binding)
		}
	}
	return result
}

// Hints returns one "key description" pair per distinct command active in
// mode, in declaration order, for the help bar.
func (km *Keymap) Hints(mode Mode) []Hint {
	seen := make(map[Command]bool)
	var hints []Hint
	for _, binding := range km.GetModeBindings(mode) {
		if seen[binding.Command] {
			continue
		}
		seen[binding.Command] = true
		hints = append(hints, Hint{Key: binding.String(), Description: binding.Description})
	}
	return hints
}

// Hint is one entry in the help bar.
type Hint struct {
	Key         string
	Description string
}
