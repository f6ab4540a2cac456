package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Iron-Ham/pokebox/internal/tui/keymap"
	"github.com/Iron-Ham/pokebox/internal/tui/styles"
	"github.com/Iron-Ham/pokebox/internal/util"
)

// shortHelp lists the commands shown when full help is off.
var shortHelp = map[keymap.Command]bool{
	keymap.CmdSelect:     true,
	keymap.CmdPrevBox:    true,
	keymap.CmdNextBox:    true,
	keymap.CmdGoto:       true,
	keymap.CmdToggleHelp: true,
	keymap.CmdQuit:       true,
	keymap.CmdConfirm:    true,
	keymap.CmdCancel:     true,
}

// RenderHelpBar renders key hints. In short mode only the most used
// commands are listed; full mode wraps every binding into Width.
func RenderHelpBar(entries []keymap.HelpEntry, full bool, width int) string {
	s := styles.Active()

	var items []string
	for _, e := range entries {
		if !full && !shortHelp[e.Command] {
			continue
		}
		items = append(items, s.HelpKey.Render(e.Keys)+" "+s.HelpDesc.Render(e.Description))
	}
	if len(items) == 0 {
		return ""
	}

	sep := s.HelpBar.Render(" • ")
	if !full || width <= 0 {
		line := strings.Join(items, sep)
		if width > 0 {
			line = util.TruncateANSI(line, width)
		}
		return s.HelpBar.Render(line)
	}

	var lines []string
	var cur string
	for _, item := range items {
		next := item
		if cur != "" {
			next = cur + sep + item
		}
		if cur != "" && lipgloss.Width(next) > width {
			lines = append(lines, cur)
			next = item
		}
		cur = next
	}
	lines = append(lines, cur)
	return s.HelpBar.Render(strings.Join(lines, "\n"))
}
