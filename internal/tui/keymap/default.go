package keymap

import tea "github.com/charmbracelet/bubbletea"

// DefaultKeymap returns the built-in bindings.
func DefaultKeymap() *Keymap {
	return &Keymap{
		Name: "default",
		Modes: map[Mode]*ModeBindings{
			ModeNormal: defaultNormalBindings(),
			ModeGoto:   defaultGotoBindings(),
		},
	}
}

func defaultNormalBindings() *ModeBindings {
	return &ModeBindings{
		Mode: ModeNormal,
		Bindings: []KeyBinding{
			{KeyType: tea.KeyLeft, Command: CmdCursorLeft, Description: "left"},
			{KeyType: tea.KeyRunes, Rune: 'h', Command: CmdCursorLeft, Description: "left"},
			{KeyType: tea.KeyRight, Command: CmdCursorRight, Description: "right"},
			{KeyType: tea.KeyRunes, Rune: 'l', Command: CmdCursorRight, Description: "right"},
			{KeyType: tea.KeyUp, Command: CmdCursorUp, Description: "up"},
			{KeyType: tea.KeyRunes, Rune: 'k', Command: CmdCursorUp, Description: "up"},
			{KeyType: tea.KeyDown, Command: CmdCursorDown, Description: "down"},
			{KeyType: tea.KeyRunes, Rune: 'j', Command: CmdCursorDown, Description: "down"},

			{KeyType: tea.KeyEnter, Command: CmdSelect, Description: "details"},
			{KeyType: tea.KeySpace, Command: CmdSelect, Description: "details"},
			{KeyType: tea.KeyEsc, Command: CmdClose, Description: "close"},
			{KeyType: tea.KeyRunes, Rune: 'x', Command: CmdClose, Description: "close"},

			{KeyType: tea.KeyRunes, Rune: '[', Command: CmdPrevBox, Description: "prev box"},
			{KeyType: tea.KeyRunes, Rune: 'p', Command: CmdPrevBox, Description: "prev box"},
			{KeyType: tea.KeyRunes, Rune: ']', Command: CmdNextBox, Description: "next box"},
			{KeyType: tea.KeyRunes, Rune: 'n', Command: CmdNextBox, Description: "next box"},
			{KeyType: tea.KeyRunes, Rune: '0', Command: CmdReturn, Description: "return"},
			{KeyType: tea.KeyHome, Command: CmdReturn, Description: "return"},
			{KeyType: tea.KeyRunes, Rune: 'g', Command: CmdGoto, Description: "go to box"},

			{KeyType: tea.KeyRunes, Rune: 'r', Command: CmdRoar, Description: "roar"},
			{KeyType: tea.KeyRunes, Rune: 'y', Command: CmdCopy, Description: "copy"},
			{KeyType: tea.KeyRunes, Rune: '?', Command: CmdToggleHelp, Description: "help"},
			{KeyType: tea.KeyRunes, Rune: 'q', Command: CmdQuit, Description: "quit"},
			{KeyType: tea.KeyCtrlC, Command: CmdQuit, Description: "quit"},
		},
	}
}

// Keys not bound in goto mode go to the text input.
func defaultGotoBindings() *ModeBindings {
	return &ModeBindings{
		Mode: ModeGoto,
		Bindings: []KeyBinding{
			{KeyType: tea.KeyEnter, Command: CmdConfirm, Description: "go"},
			{KeyType: tea.KeyEsc, Command: CmdCancel, Description: "cancel"},
			{KeyType: tea.KeyCtrlC, Command: CmdQuit, Description: "quit"},
		},
	}
}
