package styles

import (
	"sync/atomic"

	"github.com/charmbracelet/lipgloss"
)

// ThemedStyles holds every style the viewer renders with, derived from one
// palette.
type ThemedStyles struct {
	Palette *ColorPalette

	Title lipgloss.Style

	// Header: ◀ Box N ▶
	HeaderBox           lipgloss.Style
	HeaderArrow         lipgloss.Style
	HeaderArrowDisabled lipgloss.Style

	// Grid
	Cell       lipgloss.Style
	CellCursor lipgloss.Style
	CellLevel  lipgloss.Style
	CellEmpty  lipgloss.Style
	GridFrame  lipgloss.Style

	// Detail panel
	Detail      lipgloss.Style
	DetailTitle lipgloss.Style
	DetailLabel lipgloss.Style
	DetailValue lipgloss.Style
	HiddenTag   lipgloss.Style

	// Controls and help
	Button   lipgloss.Style
	HelpBar  lipgloss.Style
	HelpKey  lipgloss.Style
	HelpDesc lipgloss.Style
	Prompt   lipgloss.Style

	// Status line
	Info    lipgloss.Style
	Error   lipgloss.Style
	Muted   lipgloss.Style
	Spinner lipgloss.Style
}

// NewThemedStyles builds the style set for p.
func NewThemedStyles(p *ColorPalette) *ThemedStyles {
	s := &ThemedStyles{Palette: p}

	s.Title = lipgloss.NewStyle().Bold(true).Foreground(p.Primary)

	s.HeaderBox = lipgloss.NewStyle().Bold(true).Foreground(p.Text).Padding(0, 2)
	s.HeaderArrow = lipgloss.NewStyle().Bold(true).Foreground(p.Primary)
	s.HeaderArrowDisabled = lipgloss.NewStyle().Foreground(p.Muted).Faint(true)

	s.Cell = lipgloss.NewStyle().Foreground(p.Text).Padding(0, 1)
	s.CellCursor = s.Cell.Background(p.Highlight).Bold(true)
	s.CellLevel = lipgloss.NewStyle().Foreground(p.Secondary)
	s.CellEmpty = lipgloss.NewStyle().Foreground(p.Muted).Faint(true)
	s.GridFrame = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Border)

	s.Detail = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Primary).
		Padding(0, 1)
	s.DetailTitle = lipgloss.NewStyle().Bold(true).Foreground(p.Primary)
	s.DetailLabel = lipgloss.NewStyle().Foreground(p.Muted)
	s.DetailValue = lipgloss.NewStyle().Foreground(p.Text)
	s.HiddenTag = lipgloss.NewStyle().Foreground(p.Warning).Italic(true)

	s.Button = lipgloss.NewStyle().
		Foreground(p.Text).
		Background(p.Surface).
		Padding(0, 1).
		MarginRight(1)
	s.HelpBar = lipgloss.NewStyle().Foreground(p.Muted)
	s.HelpKey = lipgloss.NewStyle().Bold(true).Foreground(p.Primary)
	s.HelpDesc = lipgloss.NewStyle().Foreground(p.Muted)
	s.Prompt = lipgloss.NewStyle().Bold(true).Foreground(p.Warning)

	s.Info = lipgloss.NewStyle().Foreground(p.Secondary)
	s.Error = lipgloss.NewStyle().Bold(true).Foreground(p.Error)
	s.Muted = lipgloss.NewStyle().Foreground(p.Muted)
	s.Spinner = lipgloss.NewStyle().Foreground(p.Primary)

	return s
}

var active atomic.Pointer[ThemedStyles]

func init() {
	active.Store(NewThemedStyles(DefaultPalette()))
}

// SetActiveTheme switches the styles returned by Active.
func SetActiveTheme(name ThemeName) {
	active.Store(NewThemedStyles(GetPalette(name)))
}

// Active returns the current style set.
func Active() *ThemedStyles {
	return active.Load()
}
