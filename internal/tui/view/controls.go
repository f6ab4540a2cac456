package view

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/Iron-Ham/pokebox/internal/tui/keymap"
	"github.com/Iron-Ham/pokebox/internal/tui/styles"
)

// ControlsState holds which buttons are enabled.
type ControlsState struct {
	HasPrev bool
	HasNext bool
}

// Button is a clickable span on the controls row.
type Button struct {
	Label   string
	Command keymap.Command
	Enabled bool
	// X0 and X1 bound the button's columns, relative to the row start.
	X0, X1 int
}

// ControlsLayout locates the controls row on screen.
type ControlsLayout struct {
	Top, Left int
	Buttons   []Button
}

// HitTest returns the enabled button at screen position (x, y).
func (c ControlsLayout) HitTest(x, y int) (keymap.Command, bool) {
	if y != c.Top {
		return "", false
	}
	for _, b := range c.Buttons {
		if b.Enabled && x >= c.Left+b.X0 && x < c.Left+b.X1 {
			return b.Command, true
		}
	}
	return "", false
}

// RenderControls renders the button row. top and left are its screen
// position.
func RenderControls(state ControlsState, top, left int) (string, ControlsLayout) {
	s := styles.Active()
	buttons := []Button{
		{Label: "◀ PREV", Command: keymap.CmdPrevBox, Enabled: state.HasPrev},
		{Label: "RETURN", Command: keymap.CmdReturn, Enabled: true},
		{Label: "ROAR", Command: keymap.CmdRoar, Enabled: true},
		{Label: "NEXT ▶", Command: keymap.CmdNextBox, Enabled: state.HasNext},
	}

	parts := make([]string, 0, len(buttons))
	x := 0
	for i := range buttons {
		style := s.Button
		if !buttons[i].Enabled {
			style = style.Foreground(s.Palette.Muted).Faint(true)
		}
		rendered := style.Render(buttons[i].Label)
		w := lipgloss.Width(rendered)
		buttons[i].X0 = x
		// The trailing margin is not clickable.
		buttons[i].X1 = x + w - style.GetMarginRight()
		x += w
		parts = append(parts, rendered)
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, parts...), ControlsLayout{Top: top, Left: left, Buttons: buttons}
}
