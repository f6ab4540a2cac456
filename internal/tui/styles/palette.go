package styles

import (
	"slices"

	"github.com/charmbracelet/lipgloss"
)

// ThemeName represents a named color theme.
type ThemeName string

// Built-in theme names.
const (
	ThemeDefault ThemeName = "default" // Red/cream, after the classic handheld
	ThemeDracula ThemeName = "dracula"
	ThemeNord    ThemeName = "nord"
	ThemeGruvbox ThemeName = "gruvbox"
)

// BuiltinThemes returns all built-in theme names.
func BuiltinThemes() []string {
	return []string{
		string(ThemeDefault),
		string(ThemeDracula),
		string(ThemeNord),
		string(ThemeGruvbox),
	}
}

// ValidThemes returns all valid theme names (built-in + custom).
func ValidThemes() []string {
	return append(BuiltinThemes(), CustomThemeNames()...)
}

// IsBuiltinTheme checks if a theme name is a built-in theme.
func IsBuiltinTheme(name string) bool {
	return slices.Contains(BuiltinThemes(), name)
}

// IsValidTheme checks if a theme name is built-in or a registered custom theme.
func IsValidTheme(name string) bool {
	return IsBuiltinTheme(name) || IsCustomTheme(name)
}

// ColorPalette defines the colors a theme supplies. Entry type badges are
// not themed; see ColorFor.
type ColorPalette struct {
	// Primary accent (title, active arrows, cursor border)
	Primary lipgloss.Color
	// Secondary accent (levels, success messages)
	Secondary lipgloss.Color
	Warning   lipgloss.Color
	Error     lipgloss.Color
	// Muted is used for disabled controls and secondary text
	Muted lipgloss.Color
	// Surface is the panel background
	Surface lipgloss.Color
	Text    lipgloss.Color
	Border  lipgloss.Color
	// Highlight is the background of the cell under the cursor
	Highlight lipgloss.Color
}

// DefaultPalette is the red and cream theme.
func DefaultPalette() *ColorPalette {
	return &ColorPalette{
		Primary:   lipgloss.Color("#EF4444"),
		Secondary: lipgloss.Color("#FACC15"),
		Warning:   lipgloss.Color("#F59E0B"),
		Error:     lipgloss.Color("#F87171"),
		Muted:     lipgloss.Color("#9CA3AF"),
		Surface:   lipgloss.Color("#1F2937"),
		Text:      lipgloss.Color("#FEF3C7"),
		Border:    lipgloss.Color("#6B7280"),
		Highlight: lipgloss.Color("#7F1D1D"),
	}
}

// DraculaPalette follows the Dracula color scheme.
func DraculaPalette() *ColorPalette {
	return &ColorPalette{
		Primary:   lipgloss.Color("#BD93F9"),
		Secondary: lipgloss.Color("#50FA7B"),
		Warning:   lipgloss.Color("#FFB86C"),
		Error:     lipgloss.Color("#FF5555"),
		Muted:     lipgloss.Color("#6272A4"),
		Surface:   lipgloss.Color("#282A36"),
		Text:      lipgloss.Color("#F8F8F2"),
		Border:    lipgloss.Color("#44475A"),
		Highlight: lipgloss.Color("#44475A"),
	}
}

// NordPalette follows the Nord color scheme.
func NordPalette() *ColorPalette {
	return &ColorPalette{
		Primary:   lipgloss.Color("#88C0D0"),
		Secondary: lipgloss.Color("#A3BE8C"),
		Warning:   lipgloss.Color("#EBCB8B"),
		Error:     lipgloss.Color("#BF616A"),
		Muted:     lipgloss.Color("#7B88A1"),
		Surface:   lipgloss.Color("#2E3440"),
		Text:      lipgloss.Color("#ECEFF4"),
		Border:    lipgloss.Color("#4C566A"),
		Highlight: lipgloss.Color("#3B4252"),
	}
}

// GruvboxPalette follows the Gruvbox dark color scheme.
func GruvboxPalette() *ColorPalette {
	return &ColorPalette{
		Primary:   lipgloss.Color("#FE8019"),
		Secondary: lipgloss.Color("#B8BB26"),
		Warning:   lipgloss.Color("#FABD2F"),
		Error:     lipgloss.Color("#FB4934"),
		Muted:     lipgloss.Color("#928374"),
		Surface:   lipgloss.Color("#282828"),
		Text:      lipgloss.Color("#EBDBB2"),
		Border:    lipgloss.Color("#504945"),
		Highlight: lipgloss.Color("#3C3836"),
	}
}

// GetPalette returns the palette for name. Custom themes take effect when
// registered; unknown names fall back to the default palette.
func GetPalette(name ThemeName) *ColorPalette {
	switch name {
	case ThemeDracula:
		return DraculaPalette()
	case ThemeNord:
		return NordPalette()
	case ThemeGruvbox:
		return GruvboxPalette()
	case ThemeDefault:
		return DefaultPalette()
	}
	if custom := GetCustomTheme(name); custom != nil {
		return custom.ToPalette()
	}
	return DefaultPalette()
}
