package styles

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestBuiltinThemes(t *testing.T) {
	themes := BuiltinThemes()
	if len(themes) != 4 {
		t.Fatalf("len(BuiltinThemes()) = %d, want 4", len(themes))
	}
	for _, name := range themes {
		if !IsBuiltinTheme(name) || !IsValidTheme(name) {
			t.Errorf("%q should be a valid built-in theme", name)
		}
	}
	if IsValidTheme("monokai") {
		t.Error("monokai is not a pokebox theme")
	}
}

func TestGetPalette(t *testing.T) {
	tests := []struct {
		name ThemeName
		want lipgloss.Color
	}{
		{ThemeDefault, DefaultPalette().Primary},
		{ThemeDracula, DraculaPalette().Primary},
		{ThemeNord, NordPalette().Primary},
		{ThemeGruvbox, GruvboxPalette().Primary},
		{"no-such-theme", DefaultPalette().Primary},
	}

	for _, tt := range tests {
		t.Run(string(tt.name), func(t *testing.T) {
			if got := GetPalette(tt.name).Primary; got != tt.want {
				t.Errorf("GetPalette(%q).Primary = %q, want %q", tt.name, got, tt.want)
			}
		})
	}
}

func TestPalettes_Complete(t *testing.T) {
	for _, name := range BuiltinThemes() {
		t.Run(name, func(t *testing.T) {
			p := GetPalette(ThemeName(name))
			colors := map[string]lipgloss.Color{
				"Primary": p.Primary, "Secondary": p.Secondary, "Warning": p.Warning,
				"Error": p.Error, "Muted": p.Muted, "Surface": p.Surface,
				"Text": p.Text, "Border": p.Border, "Highlight": p.Highlight,
			}
			for field, c := range colors {
				if !hexColorRegex.MatchString(string(c)) {
					t.Errorf("%s = %q, want a hex color", field, c)
				}
			}
		})
	}
}

func TestGetPalette_Custom(t *testing.T) {
	t.Cleanup(ClearCustomThemes)
	RegisterCustomTheme("mine", &ThemeFile{
		Name: "mine", Version: "1",
		Colors: ThemeColors{Primary: "#123456", Surface: "#000000"},
	})

	p := GetPalette("mine")
	if p.Primary != "#123456" {
		t.Errorf("Primary = %q, want %q", p.Primary, "#123456")
	}
	if p.Highlight != "#000000" {
		t.Errorf("Highlight should default to Surface, got %q", p.Highlight)
	}
	if !IsValidTheme("mine") {
		t.Error("registered custom theme should be valid")
	}
}
