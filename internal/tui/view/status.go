package view

import (
	"github.com/Iron-Ham/pokebox/internal/tui/styles"
	"github.com/Iron-Ham/pokebox/internal/util"
)

// StatusState holds the bottom status line. Prompt wins over Err, which
// wins over Info.
type StatusState struct {
	// Prompt is the goto input view while goto mode is active.
	Prompt string
	Err    error
	Info   string
	Width  int
}

// RenderStatus renders the status line.
func RenderStatus(state StatusState) string {
	s := styles.Active()

	var line string
	switch {
	case state.Prompt != "":
		line = s.Prompt.Render("Go to box: ") + state.Prompt
	case state.Err != nil:
		line = s.Error.Render("✗ " + state.Err.Error())
	case state.Info != "":
		line = s.Info.Render(state.Info)
	default:
		return ""
	}
	if state.Width > 0 {
		line = util.TruncateANSI(line, state.Width)
	}
	return line
}
