package styles

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"
)

// ThemeFile is a custom theme definition loaded from YAML.
type ThemeFile struct {
	Name        string      `yaml:"name"`
	Author      string      `yaml:"author,omitempty"`
	Description string      `yaml:"description,omitempty"`
	// Version is the file format version (currently "1")
	Version string      `yaml:"version"`
	Colors  ThemeColors `yaml:"colors"`
}

// ThemeColors holds hex colors (#RRGGBB or #RGB). Highlight is optional and
// defaults to Surface.
type ThemeColors struct {
	Primary   string `yaml:"primary"`
	Secondary string `yaml:"secondary"`
	Warning   string `yaml:"warning"`
	Error     string `yaml:"error"`
	Muted     string `yaml:"muted"`
	Surface   string `yaml:"surface"`
	Text      string `yaml:"text"`
	Border    string `yaml:"border"`
	Highlight string `yaml:"highlight,omitempty"`
}

var hexColorRegex = regexp.MustCompile(`^#([0-9A-Fa-f]{3}|[0-9A-Fa-f]{6})$`)

// LoadThemeFile loads and validates a theme from a YAML file.
func LoadThemeFile(path string) (*ThemeFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading theme file: %w", err)
	}

	var theme ThemeFile
	if err := yaml.Unmarshal(data, &theme); err != nil {
		return nil, fmt.Errorf("parsing theme file: %w", err)
	}

	if err := theme.Validate(); err != nil {
		return nil, fmt.Errorf("invalid theme: %w", err)
	}

	return &theme, nil
}

// Validate checks that the theme file is well-formed.
func (t *ThemeFile) Validate() error {
	if t.Name == "" {
		return errors.New("theme name is required")
	}
	if t.Version != "1" {
		return fmt.Errorf("unsupported theme version: %q (supported: 1)", t.Version)
	}

	required := []struct{ key, value string }{
		{"primary", t.Colors.Primary},
		{"secondary", t.Colors.Secondary},
		{"warning", t.Colors.Warning},
		{"error", t.Colors.Error},
		{"muted", t.Colors.Muted},
		{"surface", t.Colors.Surface},
		{"text", t.Colors.Text},
		{"border", t.Colors.Border},
	}
	var errs []error
	for _, c := range required {
		if c.value == "" {
			errs = append(errs, fmt.Errorf("color %q is required", c.key))
		} else if !hexColorRegex.MatchString(c.value) {
			errs = append(errs, fmt.Errorf("color %q: invalid hex %q", c.key, c.value))
		}
	}
	if t.Colors.Highlight != "" && !hexColorRegex.MatchString(t.Colors.Highlight) {
		errs = append(errs, fmt.Errorf("color %q: invalid hex %q", "highlight", t.Colors.Highlight))
	}
	return errors.Join(errs...)
}

// ToPalette converts the theme to a ColorPalette.
func (t *ThemeFile) ToPalette() *ColorPalette {
	c := t.Colors
	highlight := c.Highlight
	if highlight == "" {
		highlight = c.Surface
	}
	return &ColorPalette{
		Primary:   lipgloss.Color(c.Primary),
		Secondary: lipgloss.Color(c.Secondary),
		Warning:   lipgloss.Color(c.Warning),
		Error:     lipgloss.Color(c.Error),
		Muted:     lipgloss.Color(c.Muted),
		Surface:   lipgloss.Color(c.Surface),
		Text:      lipgloss.Color(c.Text),
		Border:    lipgloss.Color(c.Border),
		Highlight: lipgloss.Color(highlight),
	}
}

var (
	customMu     sync.RWMutex
	customThemes = make(map[ThemeName]*ThemeFile)
)

// RegisterCustomTheme registers a custom theme by name.
func RegisterCustomTheme(name ThemeName, theme *ThemeFile) {
	customMu.Lock()
	defer customMu.Unlock()
	customThemes[name] = theme
}

// GetCustomTheme returns a custom theme by name, or nil if not found.
func GetCustomTheme(name ThemeName) *ThemeFile {
	customMu.RLock()
	defer customMu.RUnlock()
	return customThemes[name]
}

// IsCustomTheme checks if a theme name is a registered custom theme.
func IsCustomTheme(name string) bool {
	return GetCustomTheme(ThemeName(name)) != nil
}

// CustomThemeNames returns the registered custom theme names, sorted.
func CustomThemeNames() []string {
	customMu.RLock()
	defer customMu.RUnlock()
	names := make([]string, 0, len(customThemes))
	for name := range customThemes {
		names = append(names, string(name))
	}
	slices.Sort(names)
	return names
}

// ClearCustomThemes removes all registered custom themes.
func ClearCustomThemes() {
	customMu.Lock()
	defer customMu.Unlock()
	customThemes = make(map[ThemeName]*ThemeFile)
}

// DiscoverCustomThemes loads every *.yaml / *.yml file in dir and registers
// it under its file name. A missing dir is not an error. Invalid files and
// files named after a built-in theme are reported and skipped.
func DiscoverCustomThemes(dir string) ([]string, []error) {
	entries, err := os.ReadDir(dir)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, []error{fmt.Errorf("reading themes directory: %w", err)}
	}

	var loaded []string
	var errs []error
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		file := entry.Name()
		ext := filepath.Ext(file)
		if ext != ".yaml" && ext != ".yml" {
			continue
		}
		name := strings.TrimSuffix(file, ext)

		if IsBuiltinTheme(name) {
			errs = append(errs, fmt.Errorf("%s: cannot override built-in theme %q", file, name))
			continue
		}
		theme, err := LoadThemeFile(filepath.Join(dir, file))
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", file, err))
			continue
		}

		RegisterCustomTheme(ThemeName(name), theme)
		loaded = append(loaded, name)
	}
	return loaded, errs
}

// ExportTheme renders a theme as YAML, suitable as a starting point for a
// custom theme.
func ExportTheme(name ThemeName) ([]byte, error) {
	if custom := GetCustomTheme(name); custom != nil {
		return yaml.Marshal(custom)
	}
	if !IsBuiltinTheme(string(name)) {
		return nil, fmt.Errorf("unknown theme %q", name)
	}
	return yaml.Marshal(paletteToThemeFile(string(name), GetPalette(name)))
}

func paletteToThemeFile(name string, p *ColorPalette) *ThemeFile {
	return &ThemeFile{
		Name:        name,
		Description: fmt.Sprintf("Exported from built-in theme %q", name),
		Version:     "1",
		Colors: ThemeColors{
			Primary:   string(p.Primary),
			Secondary: string(p.Secondary),
			Warning:   string(p.Warning),
			Error:     string(p.Error),
			Muted:     string(p.Muted),
			Surface:   string(p.Surface),
			Text:      string(p.Text),
			Border:    string(p.Border),
			Highlight: string(p.Highlight),
		},
	}
}

// SaveTheme writes theme to dir/name.yaml.
func SaveTheme(dir, name string, theme *ThemeFile) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating themes directory: %w", err)
	}
	data, err := yaml.Marshal(theme)
	if err != nil {
		return fmt.Errorf("marshaling theme: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, name+".yaml"), data, 0o644); err != nil {
		return fmt.Errorf("writing theme file: %w", err)
	}
	return nil
}
