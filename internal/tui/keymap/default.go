package keymap

import tea "github.com/charmbracelet/bubbletea"

// DefaultKeymap returns the default key bindings.
func DefaultKeymap() *Keymap {
	return &Keymap{
		Name:        "default",
		Description: "Default studyplan key bindings",
		Global:      defaultGlobalBindings(),
		Modes: map[Mode]*ModeBindings{
			ModeForm:     defaultFormBindings(),
			ModeChat:     defaultChatBindings(),
			ModeCalendar: defaultCalendarBindings(),
			ModeAgenda:   defaultAgendaBindings(),
			ModeOverlay:  defaultOverlayBindings(),
		},
	}
}

func defaultGlobalBindings() *ModeBindings {
	return &ModeBindings{
		Bindings: []KeyBinding{
			{KeyType: tea.KeyTab, Command: CmdNextFocus, Description: "Next panel", Category: "Navigation"},
			{KeyType: tea.KeyShiftTab, Command: CmdPrevFocus, Description: "Previous panel", Category: "Navigation"},
			{KeyType: tea.KeyCtrlG, Command: CmdGenerate, Description: "Generate plan", Category: "Plan"},
			{KeyType: tea.KeyCtrlS, Command: CmdDownload, Description: "Save PDF", Category: "Plan"},
			{KeyType: tea.KeyF1, Command: CmdToggleHelp, Description: "Help", Category: "General"},
			{KeyType: tea.KeyCtrlC, Command: CmdQuit, Description: "Quit", Category: "General"},
		},
	}
}

func defaultFormBindings() *ModeBindings {
	return &ModeBindings{
		Mode: ModeForm,
		Bindings: []KeyBinding{
			{KeyType: tea.KeyEnter, Command: CmdConfirm, Description: "Next field / select files", Category: "Form"},
			{KeyType: tea.KeyDown, Command: CmdNextFocus, Description: "Next field", Category: "Form"},
			{KeyType: tea.KeyUp, Command: CmdPrevFocus, Description: "Previous field", Category: "Form"},
		},
	}
}

func defaultChatBindings() *ModeBindings {
	return &ModeBindings{
		Mode: ModeChat,
		Bindings: []KeyBinding{
			{KeyType: tea.KeyEnter, Command: CmdSend, Description: "Send", Category: "Chat"},
			{KeyType: tea.KeyPgUp, Command: CmdScrollUp, Description: "Scroll log up", Category: "Chat"},
			{KeyType: tea.KeyPgDown, Command: CmdScrollDown, Description: "Scroll log down", Category: "Chat"},
		},
	}
}

func defaultCalendarBindings() *ModeBindings {
	return &ModeBindings{
		Mode: ModeCalendar,
		Bindings: []KeyBinding{
			{KeyType: tea.KeyLeft, Command: CmdCursorLeft, Description: "Previous day", Category: "Calendar"},
			{KeyType: tea.KeyRunes, Rune: 'h', Command: CmdCursorLeft, Description: "Previous day", Category: "Calendar"},
			{KeyType: tea.KeyRight, Command: CmdCursorRight, Description: "Next day", Category: "Calendar"},
			{KeyType: tea.KeyRunes, Rune: 'l', Command: CmdCursorRight, Description: "Next day", Category: "Calendar"},
			{KeyType: tea.KeyUp, Command: CmdCursorUp, Description: "Previous week", Category: "Calendar"},
			{KeyType: tea.KeyRunes, Rune: 'k', Command: CmdCursorUp, Description: "Previous week", Category: "Calendar"},
			{KeyType: tea.KeyDown, Command: CmdCursorDown, Description: "Next week", Category: "Calendar"},
			{KeyType: tea.KeyRunes, Rune: 'j', Command: CmdCursorDown, Description: "Next week", Category: "Calendar"},
			{KeyType: tea.KeyRunes, Rune: '[', Command: CmdPrevPeriod, Description: "Previous", Category: "Calendar"},
			{KeyType: tea.KeyRunes, Rune: ']', Command: CmdNextPeriod, Description: "Next", Category: "Calendar"},
			{KeyType: tea.KeyRunes, Rune: 't', Command: CmdToday, Description: "Today", Category: "Calendar"},
			{KeyType: tea.KeyRunes, Rune: 'v', Command: CmdToggleView, Description: "Month/week", Category: "Calendar"},
			{KeyType: tea.KeyRunes, Rune: 'n', Command: CmdCycleEvent, Description: "Next event", Category: "Calendar"},
			{KeyType: tea.KeyEnter, Command: CmdOpenEvent, Description: "Event details", Category: "Calendar"},
			{KeyType: tea.KeyRunes, Rune: 'q', Command: CmdQuit, Description: "Quit", Category: "General"},
		},
	}
}

func defaultAgendaBindings() *ModeBindings {
	return &ModeBindings{
		Mode: ModeAgenda,
		Bindings: []KeyBinding{
			{KeyType: tea.KeyUp, Command: CmdScrollUp, Description: "Scroll up", Category: "Agenda"},
			{KeyType: tea.KeyRunes, Rune: 'k', Command: CmdScrollUp, Description: "Scroll up", Category: "Agenda"},
			{KeyType: tea.KeyDown, Command: CmdScrollDown, Description: "Scroll down", Category: "Agenda"},
			{KeyType: tea.KeyRunes, Rune: 'j', Command: CmdScrollDown, Description: "Scroll down", Category: "Agenda"},
			{KeyType: tea.KeyRunes, Rune: 'd', Command: CmdDownload, Description: "Save PDF", Category: "Plan"},
			{KeyType: tea.KeyRunes, Rune: 'q', Command: CmdQuit, Description: "Quit", Category: "General"},
		},
	}
}

func defaultOverlayBindings() *ModeBindings {
	return &ModeBindings{
		Mode: ModeOverlay,
		Bindings: []KeyBinding{
			{KeyType: tea.KeyEsc, Command: CmdCloseEvent, Description: "Close", Category: "Calendar"},
			{KeyType: tea.KeyEnter, Command: CmdCloseEvent, Description: "Close", Category: "Calendar"},
			{KeyType: tea.KeyRunes, Rune: 'q', Command: CmdCloseEvent, Description: "Close", Category: "Calendar"},
		},
	}
}
