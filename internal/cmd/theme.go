package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Iron-Ham/pokebox/internal/config"
	"github.com/Iron-Ham/pokebox/internal/tui/styles"
	"github.com/Iron-Ham/pokebox/internal/util"
)

var themeCmd = &cobra.Command{
	Use:   "theme",
	Short: "Manage color themes",
	Long: `Manage color themes for the pokebox viewer.

pokebox ships built-in themes and loads custom themes from YAML files in
~/.config/pokebox/themes/. Type badge colors are fixed; themes change
everything else.

Use 'theme list' to see all available themes.
Use 'theme export' to create a template for custom themes.`,
}

var themeListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available themes",
	RunE:  runThemeList,
}

var themeExportCmd = &cobra.Command{
	Use:   "export <theme-name> [output-file]",
	Short: "Export a theme to YAML",
	Long: `Export a theme to YAML format for customization or sharing.

If no output file is specified, the YAML is printed to stdout.

Examples:
  pokebox config theme export default                # Print default theme to stdout
  pokebox config theme export dracula my-theme.yaml  # Save dracula theme to file`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runThemeExport,
}

var themePathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show the custom themes directory path",
	RunE:  runThemePath,
}

var themeCreateCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Create a new custom theme from the default palette",
	Long: `Create a new custom theme file in your themes directory.

Example:
  pokebox config theme create sunset
  # Creates ~/.config/pokebox/themes/sunset.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runThemeCreate,
}

func init() {
	themeCmd.AddCommand(themeListCmd)
	themeCmd.AddCommand(themeExportCmd)
	themeCmd.AddCommand(themePathCmd)
	themeCmd.AddCommand(themeCreateCmd)
	configCmd.AddCommand(themeCmd)
}

// discoverThemes registers custom themes and returns the load errors.
func discoverThemes() []error {
	_, errs := styles.DiscoverCustomThemes(config.ThemesDir())
	return errs
}

// themeLoadError returns the load error reported for name, if any.
func themeLoadError(name string, errs []error) error {
	for _, err := range errs {
		msg := err.Error()
		if strings.HasPrefix(msg, name+".yaml:") || strings.HasPrefix(msg, name+".yml:") {
			return err
		}
	}
	return nil
}

func runThemeList(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	// Report any custom themes that failed to load
	if loadErrs := discoverThemes(); len(loadErrs) > 0 {
		errOut := cmd.ErrOrStderr()
		fmt.Fprintln(errOut, "Warning: Some themes failed to load:")
		for _, err := range loadErrs {
			fmt.Fprintf(errOut, "  - %v\n", err)
		}
		fmt.Fprintln(errOut)
	}

	fmt.Fprintln(out, "Built-in themes:")
	for _, name := range styles.BuiltinThemes() {
		fmt.Fprintf(out, "  - %s\n", name)
	}

	if customNames := styles.CustomThemeNames(); len(customNames) > 0 {
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Custom themes:")
		for _, name := range customNames {
			theme := styles.GetCustomTheme(styles.ThemeName(name))
			if theme != nil && theme.Author != "" {
				fmt.Fprintf(out, "  - %s (by %s)\n", name, theme.Author)
			} else {
				fmt.Fprintf(out, "  - %s\n", name)
			}
		}
	}

	fmt.Fprintln(out)
	fmt.Fprintf(out, "Custom themes directory: %s\n", config.ThemesDir())

	return nil
}

func runThemeExport(cmd *cobra.Command, args []string) error {
	themeName := args[0]
	loadErrs := discoverThemes()

	if !styles.IsValidTheme(themeName) {
		if err := themeLoadError(themeName, loadErrs); err != nil {
			return fmt.Errorf("theme '%s' exists but failed to load: %w", themeName, err)
		}
		return fmt.Errorf("unknown theme: %s\n\nRun 'pokebox config theme list' to see available themes", themeName)
	}

	data, err := styles.ExportTheme(styles.ThemeName(themeName))
	if err != nil {
		return fmt.Errorf("exporting theme: %w", err)
	}

	if len(args) > 1 {
		outputPath := args[1]
		if err := os.WriteFile(outputPath, data, 0o644); err != nil {
			return fmt.Errorf("writing to %s: %w", outputPath, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Theme exported to: %s\n", outputPath)
		return nil
	}

	_, err = cmd.OutOrStdout().Write(data)
	return err
}

func runThemePath(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	themesDir := config.ThemesDir()
	fmt.Fprintln(out, themesDir)

	if _, err := os.Stat(themesDir); errors.Is(err, os.ErrNotExist) {
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Note: This directory does not exist yet.")
		fmt.Fprintln(out, "Run 'pokebox config theme create <name>' to add a custom theme.")
	}

	return nil
}

func runThemeCreate(cmd *cobra.Command, args []string) error {
	name := args[0]

	if !config.IsValidThemeName(name) {
		return fmt.Errorf("invalid theme name %q: use lower-case letters, digits, '-' and '_'", name)
	}
	if styles.IsBuiltinTheme(name) {
		return fmt.Errorf("cannot create custom theme with built-in name '%s'", name)
	}

	themesDir := config.ThemesDir()
	themePath := filepath.Join(themesDir, name+".yaml")
	if _, err := os.Stat(themePath); err == nil {
		return fmt.Errorf("theme '%s' already exists at %s", name, themePath)
	}

	p := styles.DefaultPalette()
	theme := &styles.ThemeFile{
		Name:        util.Capitalize(name),
		Description: "A custom pokebox theme",
		Version:     "1",
		Colors: styles.ThemeColors{
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

	if err := styles.SaveTheme(themesDir, name, theme); err != nil {
		return fmt.Errorf("creating theme: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Created new theme: %s\n", themePath)
	fmt.Fprintln(out)
	fmt.Fprintln(out, "To use your new theme, run:")
	fmt.Fprintf(out, "  pokebox config set tui.theme %s\n", name)

	return nil
}
