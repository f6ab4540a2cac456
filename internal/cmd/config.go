package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Iron-Ham/pokebox/internal/config"
	"github.com/Iron-Ham/pokebox/internal/tui/styles"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View or modify pokebox configuration",
	Long: `View or modify pokebox configuration.

Without arguments, displays the current configuration.
Use subcommands to modify settings or create a config file.`,
	RunE: runConfigShow,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	RunE:  runConfigShow,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Long: `Set a configuration value in the user's config file.

Keys use dot notation, e.g.:
  pokebox config set tui.theme dracula
  pokebox config set tui.columns 5
  pokebox config set catalog.max_parallel 8

Run 'pokebox config show' to list every key. The new value is validated
before the file is written.`,
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a default config file",
	Long:  `Create a default config file at ~/.config/pokebox/config.yaml with all available options.`,
	RunE:  runConfigInit,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show the config file path",
	RunE:  runConfigPath,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configPathCmd)
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, "Current configuration:")
	fmt.Fprintln(out)

	// Show where config is being read from
	if viper.ConfigFileUsed() != "" {
		fmt.Fprintf(out, "Config file: %s\n", viper.ConfigFileUsed())
	} else {
		fmt.Fprintf(out, "Config file: (none - using defaults)\n")
	}
	if _, err := config.Load(); err != nil {
		fmt.Fprintf(out, "Warning: %v\n", err)
	}
	fmt.Fprintln(out)

	section := ""
	for _, key := range config.Keys() {
		group, name, _ := strings.Cut(key, ".")
		if group != section {
			fmt.Fprintf(out, "%s:\n", group)
			section = group
		}
		fmt.Fprintf(out, "  %s: %v\n", name, viper.Get(key))
	}

	return nil
}

// keyKind is the value type a config key accepts.
type keyKind int

const (
	kindString keyKind = iota
	kindInt
	kindUint
	kindBool
)

var keyKinds = map[string]keyKind{
	"catalog.base_url":        kindString,
	"catalog.timeout_seconds": kindInt,
	"catalog.max_parallel":    kindInt,
	"catalog.user_agent":      kindString,
	"box.start":               kindInt,
	"box.random_seed":         kindUint,
	"tui.theme":               kindString,
	"tui.columns":             kindInt,
	"tui.mouse":               kindBool,
	"logging.enabled":         kindBool,
	"logging.level":           kindString,
	"logging.max_size_mb":     kindInt,
	"logging.max_backups":     kindInt,
	"logging.dir":             kindString,
}

// parseValue converts raw to the type key expects.
func parseValue(key, raw string) (any, error) {
	kind, ok := keyKinds[key]
	if !ok {
		return nil, fmt.Errorf("unknown configuration key: %s\nValid keys: %s", key, strings.Join(config.Keys(), ", "))
	}

	switch kind {
	case kindInt:
		n, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid value for %s: expected integer", key)
		}
		return n, nil
	case kindUint:
		n, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid value for %s: expected non-negative integer", key)
		}
		return n, nil
	case kindBool:
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid value for %s: expected true or false", key)
		}
		return b, nil
	default:
		return raw, nil
	}
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	key := args[0]
	value, err := parseValue(key, args[1])
	if err != nil {
		return err
	}

	previous := viper.Get(key)
	viper.Set(key, value)
	if _, err := config.Load(); err != nil {
		viper.Set(key, previous)
		return err
	}

	// Ensure config directory exists
	configDir := config.ConfigDir()
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Write to config file
	configFile := config.ConfigFile()
	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Set %s = %v\n", key, value)
	fmt.Fprintf(out, "Config saved to %s\n", configFile)

	return nil
}

// defaultConfigYAML is written by 'config init'.
const defaultConfigYAML = `# pokebox configuration

# Remote catalog
catalog:
  # API root; entry URLs in listings are followed as returned
  base_url: https://pokeapi.co/api/v2
  # Per-request timeout in seconds
  timeout_seconds: 10
  # Maximum concurrent detail requests per box (0 = one per entry)
  max_parallel: 0
  user_agent: pokebox

box:
  # Box shown on launch (1-30)
  start: 1
  # Seed for level rolls; 0 seeds from the clock
  random_seed: 0

# TUI (terminal user interface) settings
tui:
  # Built-in: %s, or a custom theme from the themes directory
  theme: default
  # Grid columns (1-10)
  columns: 6
  # Click to select entries and press buttons
  mouse: true

logging:
  enabled: true
  # One of: debug, info, warn, error
  level: info
  # Rotate the log file at this size
  max_size_mb: 10
  # Rotated files to keep
  max_backups: 3
  # Log directory (default: the state directory)
  dir: ""
`

func runConfigInit(cmd *cobra.Command, args []string) error {
	configDir := config.ConfigDir()
	configFile := config.ConfigFile()

	// Check if config file already exists
	if _, err := os.Stat(configFile); err == nil {
		return fmt.Errorf("config file already exists at %s\nUse 'pokebox config set' to modify values", configFile)
	}

	// Create config directory
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	content := fmt.Sprintf(defaultConfigYAML, strings.Join(styles.BuiltinThemes(), ", "))
	if err := os.WriteFile(configFile, []byte(content), 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Created config file at %s\n", configFile)
	fmt.Fprintln(out, "Edit this file to customize pokebox. A running viewer picks up changes.")

	return nil
}

func runConfigPath(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	configFile := config.ConfigFile()

	if viper.ConfigFileUsed() != "" {
		fmt.Fprintf(out, "Active config: %s\n", viper.ConfigFileUsed())
	} else {
		fmt.Fprintf(out, "Default path: %s (not created)\n", configFile)
	}

	// Also show config search paths
	fmt.Fprintln(out, "\nSearch paths:")
	fmt.Fprintf(out, "  1. %s\n", filepath.Join(config.ConfigDir(), "config.yaml"))
	fmt.Fprintf(out, "  2. $HOME/.config/pokebox/config.yaml\n")
	fmt.Fprintf(out, "  3. ./config.yaml (current directory)\n")
	fmt.Fprintln(out, "\nEnvironment variables: POKEBOX_* (e.g., POKEBOX_TUI_THEME)")

	return nil
}
