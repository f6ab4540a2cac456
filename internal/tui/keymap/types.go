// Package keymap declares the viewer's key bindings per input mode and
// resolves key presses to commands.
package keymap

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// Mode is the current input mode. Each mode has its own bindings.
type Mode string

const (
	ModeNormal Mode = "normal" // Browsing the grid
	ModeGoto   Mode = "goto"   // Typing a box number after g
)

// Command is a named action triggered by a key binding.
type Command string

// Normal mode commands
const (
	CmdCursorLeft  Command = "cursor_left"
	CmdCursorRight Command = "cursor_right"
	CmdCursorUp    Command = "cursor_up"
	CmdCursorDown  Command = "cursor_down"

	CmdSelect Command = "select"
	CmdClose  Command = "close"

	CmdPrevBox Command = "prev_box"
	CmdNextBox Command = "next_box"
	CmdReturn  Command = "return"
	CmdGoto    Command = "goto"

	CmdRoar       Command = "roar"
	CmdCopy       Command = "copy"
	CmdToggleHelp Command = "toggle_help"
	CmdQuit       Command = "quit"
)

// Goto mode commands
const (
	CmdConfirm Command = "confirm"
	CmdCancel  Command = "cancel"
)

// KeyBinding maps one key to a command.
type KeyBinding struct {
	// KeyType is the key; for printable keys use tea.KeyRunes and set Rune.
	KeyType tea.KeyType
	Rune    rune
	Alt     bool

	Command     Command
	Description string
}

// Matches reports whether msg triggers this binding.
func (kb KeyBinding) Matches(msg tea.KeyMsg) bool {
	if msg.Alt != kb.Alt {
		return false
	}
	if kb.KeyType != tea.KeyRunes {
		return msg.Type == kb.KeyType
	}
	return msg.Type == tea.KeyRunes && len(msg.Runes) == 1 && msg.Runes[0] == kb.Rune
}

// String returns the key as shown in help.
func (kb KeyBinding) String() string {
	var key string
	switch {
	case kb.KeyType == tea.KeyRunes:
		key = string(kb.Rune)
	case kb.KeyType == tea.KeySpace:
		key = "space"
	case kb.KeyType == tea.KeyLeft:
		key = "←"
	case kb.KeyType == tea.KeyRight:
		key = "→"
	case kb.KeyType == tea.KeyUp:
		key = "↑"
	case kb.KeyType == tea.KeyDown:
		key = "↓"
	default:
		key = kb.KeyType.String()
	}
	if kb.Alt {
		return "alt+" + key
	}
	return key
}

// ModeBindings holds the bindings of one mode, in help order.
type ModeBindings struct {
	Mode     Mode
	Bindings []KeyBinding
}

// Lookup returns the command bound to msg.
func (mb *ModeBindings) Lookup(msg tea.KeyMsg) (Command, bool) {
	for _, b := range mb.Bindings {
		if b.Matches(msg) {
			return b.Command, true
		}
	}
	return "", false
}

// Keymap holds the bindings of every mode.
type Keymap struct {
	Name  string
	Modes map[Mode]*ModeBindings
}

// Lookup returns the command bound to msg in mode.
func (km *Keymap) Lookup(msg tea.KeyMsg, mode Mode) (Command, bool) {
	mb, ok := km.Modes[mode]
	if !ok {
		return "", false
	}
	return mb.Lookup(msg)
}

// HelpEntry is one line of help: every key bound to a command.
type HelpEntry struct {
	Keys        string
	Description string
	Command     Command
}

// Help groups a mode's bindings by command, keeping first-seen order. Keys
// for the same command are joined with "/".
func (km *Keymap) Help(mode Mode) []HelpEntry {
	mb, ok := km.Modes[mode]
	if !ok {
		return nil
	}

	var entries []HelpEntry
	keys := make(map[Command][]string)
	for _, b := range mb.Bindings {
		if _, seen := keys[b.Command]; !seen {
			entries = append(entries, HelpEntry{Description: b.Description, Command: b.Command})
		}
		keys[b.Command] = append(keys[b.Command], b.String())
	}
	for i := range entries {
		entries[i].Keys = strings.Join(keys[entries[i].Command], "/")
	}
	return entries
}
