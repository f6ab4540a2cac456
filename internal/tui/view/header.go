package view

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/Iron-Ham/pokebox/internal/tui/styles"
)

// HeaderState holds what the header shows.
type HeaderState struct {
	Box     int
	HasPrev bool
	HasNext bool
	// Spinner is the current spinner frame, rendered while Loading.
	Spinner string
	Loading bool
	Width   int
}

// RenderHeader renders the title and the box navigator, centered in Width.
func RenderHeader(state HeaderState) string {
	s := styles.Active()

	arrow := func(glyph string, enabled bool) string {
		if enabled {
			return s.HeaderArrow.Render(glyph)
		}
		return s.HeaderArrowDisabled.Render(glyph)
	}

	nav := arrow("◀", state.HasPrev) +
		s.HeaderBox.Render(fmt.Sprintf("Box %d", state.Box)) +
		arrow("▶", state.HasNext)
	if state.Loading {
		nav += " " + s.Spinner.Render(state.Spinner)
	}

	title := s.Title.Render("POKéBOX")
	block := lipgloss.JoinVertical(lipgloss.Center, title, nav)
	if state.Width <= 0 {
		return block
	}
	return lipgloss.PlaceHorizontal(state.Width, lipgloss.Center, block)
}

// HeaderHeight is the number of lines RenderHeader produces.
const HeaderHeight = 2
