package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Iron-Ham/pokebox/internal/box"
	"github.com/Iron-Ham/pokebox/internal/tui/styles"
	"github.com/Iron-Ham/pokebox/internal/util"
)

// DetailWidth is the panel's outer width.
const DetailWidth = 40

// RenderDetail renders the detail panel for e. It returns "" for nil.
func RenderDetail(e *box.DecoratedEntry) string {
	if e == nil {
		return ""
	}
	s := styles.Active()
	inner := DetailWidth - 4

	title := s.DetailTitle.Render(util.TruncateWidth(fmt.Sprintf("#%d %s", e.ID, util.Capitalize(e.Name)), inner-8)) +
		"  " + s.CellLevel.Render(fmt.Sprintf("Lv.%d", e.Level))

	row := func(label, value string) string {
		return s.DetailLabel.Render(fmt.Sprintf("%-9s", label)) + value
	}

	badges := make([]string, 0, len(e.Types))
	for _, t := range e.Types {
		badges = append(badges, styles.Badge(t.Name))
	}
	types := strings.Join(badges, " ")
	if types == "" {
		types = s.Muted.Render("—")
	}

	lines := []string{
		title,
		"",
		row("Type", types),
		row("Height", s.DetailValue.Render(fmt.Sprintf("%.1f m", e.HeightMetres()))),
		row("Weight", s.DetailValue.Render(fmt.Sprintf("%.1f kg", e.WeightKilograms()))),
		row("Abilities", ""),
	}
	if len(e.Abilities) == 0 {
		lines = append(lines, "  "+s.Muted.Render("none"))
	}
	for _, a := range e.Abilities {
		line := "  " + s.DetailValue.Render(util.Capitalize(a.Name))
		if a.Hidden {
			line += " " + s.HiddenTag.Render("(Hidden)")
		}
		lines = append(lines, line)
	}
	if e.SpriteURL != "" {
		lines = append(lines, "", s.Muted.Render(util.TruncateWidth(e.SpriteURL, inner)))
	}
	lines = append(lines, "", s.Muted.Render("esc to close"))

	return s.Detail.Width(DetailWidth - 2).Render(strings.Join(lines, "\n"))
}

// CopyText is what 'y' puts on the clipboard for e.
func CopyText(e box.DecoratedEntry) string {
	return fmt.Sprintf("#%d %s (Lv.%d) %s", e.ID, util.Capitalize(e.Name), e.Level, strings.Join(e.TypeNames(), "/"))
}

// Place joins the grid and the detail panel side by side when there is
// room, otherwise stacks them.
func Place(grid, detail string, width int) string {
	if detail == "" {
		return grid
	}
	if lipgloss.Width(grid)+1+lipgloss.Width(detail) <= width {
		return lipgloss.JoinHorizontal(lipgloss.Top, grid, " ", detail)
	}
	return lipgloss.JoinVertical(lipgloss.Left, grid, detail)
}
