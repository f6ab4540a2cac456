package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Iron-Ham/pokebox/internal/box"
	"github.com/Iron-Ham/pokebox/internal/tui/styles"
	"github.com/Iron-Ham/pokebox/internal/util"
)

// Cell geometry in terminal cells, including the cell's own padding.
const (
	CellWidth  = 16
	CellHeight = 2
)

// GridState holds what the grid shows.
type GridState struct {
	Entries []box.DecoratedEntry
	Cursor  int
	Columns int
	Loading bool
	// Failed is set when the last load failed; the grid then explains why
	// it is empty.
	Failed bool
}

// GridLayout locates rendered cells on screen.
type GridLayout struct {
	// Top and Left are the screen coordinates of the first cell.
	Top, Left int
	Columns   int
	Count     int
}

// HitTest returns the entry index under screen position (x, y).
func (g GridLayout) HitTest(x, y int) (int, bool) {
	if g.Columns <= 0 || x < g.Left || y < g.Top {
		return 0, false
	}
	col := (x - g.Left) / CellWidth
	row := (y - g.Top) / CellHeight
	if col >= g.Columns {
		return 0, false
	}
	idx := row*g.Columns + col
	if idx >= g.Count {
		return 0, false
	}
	return idx, true
}

// GridView renders entries as a framed grid.
type GridView struct{}

// NewGridView creates a GridView.
func NewGridView() *GridView {
	return &GridView{}
}

// Render draws the grid. top and left are where the frame's top-left
// corner lands on screen; the returned layout accounts for the border.
func (v *GridView) Render(state GridState, top, left int) (string, GridLayout) {
	s := styles.Active()
	cols := max(1, state.Columns)
	layout := GridLayout{Top: top + 1, Left: left + 1, Columns: cols, Count: len(state.Entries)}

	if len(state.Entries) == 0 {
		msg := "This box is empty."
		switch {
		case state.Loading:
			msg = "Loading…"
		case state.Failed:
			msg = "Couldn't load this box."
		}
		body := lipgloss.Place(cols*CellWidth, 3*CellHeight, lipgloss.Center, lipgloss.Center, s.CellEmpty.Render(msg))
		return s.GridFrame.Render(body), layout
	}

	var rows []string
	for start := 0; start < len(state.Entries); start += cols {
		end := min(start+cols, len(state.Entries))
		cells := make([]string, 0, cols)
		for i := start; i < end; i++ {
			cells = append(cells, v.renderCell(state.Entries[i], i == state.Cursor))
		}
		row := lipgloss.JoinHorizontal(lipgloss.Top, cells...)
		rows = append(rows, lipgloss.NewStyle().Width(cols*CellWidth).Render(row))
	}

	return s.GridFrame.Render(strings.Join(rows, "\n")), layout
}

func (v *GridView) renderCell(e box.DecoratedEntry, focused bool) string {
	s := styles.Active()
	inner := CellWidth - 2

	dot := " "
	if len(e.Types) > 0 {
		dot = lipgloss.NewStyle().Foreground(styles.ColorFor(e.Types[0].Name)).Render("●")
	}
	name := dot + " " + util.PadWidth(util.Capitalize(e.Name), inner-2)
	level := s.CellLevel.Render(util.PadWidth(fmt.Sprintf("#%d Lv.%d", e.ID, e.Level), inner))

	style := s.Cell
	if focused {
		style = s.CellCursor
	}
	return style.Width(CellWidth).Render(name + "\n" + level)
}

// MoveCursor returns the cursor after moving (dx, dy) in a grid of count
// entries, clamped to the grid.
func MoveCursor(cursor, count, columns, dx, dy int) int {
	if count == 0 {
		return 0
	}
	cols := max(1, columns)
	row, col := cursor/cols, cursor%cols
	lastRow := (count - 1) / cols

	row = max(0, min(lastRow, row+dy))
	col = max(0, min(cols-1, col+dx))

	idx := row*cols + col
	return min(idx, count-1)
}
