package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/Iron-Ham/pokebox/internal/catalog"
	"github.com/Iron-Ham/pokebox/internal/util"
)

// FallbackTypeColor is used for type names outside the known set.
const FallbackTypeColor = lipgloss.Color("#68A090")

// ColorFor returns the badge color for a catalog type name. It is total:
// unknown names get FallbackTypeColor.
func ColorFor(typeName string) lipgloss.Color {
	switch catalog.ParseKind(typeName) {
	case catalog.KindNormal:
		return "#A8A878"
	case catalog.KindFire:
		return "#F08030"
	case catalog.KindWater:
		return "#6890F0"
	case catalog.KindElectric:
		return "#F8D030"
	case catalog.KindGrass:
		return "#78C850"
	case catalog.KindIce:
		return "#98D8D8"
	case catalog.KindFighting:
		return "#C03028"
	case catalog.KindPoison:
		return "#A040A0"
	case catalog.KindGround:
		return "#E0C068"
	case catalog.KindFlying:
		return "#A890F0"
	case catalog.KindPsychic:
		return "#F85888"
	case catalog.KindBug:
		return "#A8B820"
	case catalog.KindRock:
		return "#B8A038"
	case catalog.KindGhost:
		return "#705898"
	case catalog.KindDragon:
		return "#7038F8"
	case catalog.KindDark:
		return "#705848"
	case catalog.KindSteel:
		return "#B8B8D0"
	case catalog.KindFairy:
		return "#EE99AC"
	default:
		return FallbackTypeColor
	}
}

const (
	badgeDark  = lipgloss.Color("#1A1A1A")
	badgeLight = lipgloss.Color("#FFFFFF")
)

// ContrastText picks dark or light text for a background. Backgrounds that
// fail to parse get light text.
func ContrastText(bg lipgloss.Color) lipgloss.Color {
	c, err := colorful.Hex(string(bg))
	if err != nil {
		return badgeLight
	}
	l, _, _ := c.Lab()
	if l > 0.6 {
		return badgeDark
	}
	return badgeLight
}

// Badge renders a type name as a colored pill.
func Badge(typeName string) string {
	bg := ColorFor(typeName)
	return lipgloss.NewStyle().
		Background(bg).
		Foreground(ContrastText(bg)).
		Bold(true).
		Padding(0, 1).
		Render(util.Upper(typeName))
}
