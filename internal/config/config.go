package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

// Config represents the complete pokebox configuration
type Config struct {
	Catalog CatalogConfig `mapstructure:"catalog"`
	Box     BoxConfig     `mapstructure:"box"`
	TUI     TUIConfig     `mapstructure:"tui"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// CatalogConfig controls how the remote catalog is reached
type CatalogConfig struct {
	// BaseURL is the API root (default: "https://pokeapi.co/api/v2")
	BaseURL string `mapstructure:"base_url"`
	// TimeoutSeconds bounds each HTTP request (default: 10)
	TimeoutSeconds int `mapstructure:"timeout_seconds"`
	// MaxParallel caps concurrent detail fetches per box; 0 means one
	// goroutine per entry (default: 0)
	MaxParallel int `mapstructure:"max_parallel"`
	// UserAgent is sent with every request (default: "pokebox")
	UserAgent string `mapstructure:"user_agent"`
}

// BoxConfig controls the initial box and level generation
type BoxConfig struct {
	// Start is the box shown on launch (default: 1)
	Start int `mapstructure:"start"`
	// RandomSeed seeds level generation; 0 seeds from the clock (default: 0)
	RandomSeed uint64 `mapstructure:"random_seed"`
}

// TUIConfig controls the terminal UI
type TUIConfig struct {
	// Theme is a built-in palette name or a custom theme from the themes dir
	// (default: "default")
	Theme string `mapstructure:"theme"`
	// Columns is the number of grid columns (default: 6)
	Columns int `mapstructure:"columns"`
	// Mouse enables click-to-select (default: true)
	Mouse bool `mapstructure:"mouse"`
}

// LoggingConfig controls the log file
type LoggingConfig struct {
	// Enabled controls whether a log file is written (default: true)
	Enabled bool `mapstructure:"enabled"`
	// Level is the log level: "debug", "info", "warn", "error" (default: "info")
	Level string `mapstructure:"level"`
	// MaxSizeMB is the size at which the log file is rotated (default: 10)
	MaxSizeMB int `mapstructure:"max_size_mb"`
	// MaxBackups is the number of rotated files kept (default: 3)
	MaxBackups int `mapstructure:"max_backups"`
	// Dir overrides the log directory. Empty means StateDir(). Supports ~.
	Dir string `mapstructure:"dir"`
}

// Timeout returns the per-request timeout as a time.Duration
func (c *CatalogConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// ResolveDir returns the directory the log file lives in.
func (l *LoggingConfig) ResolveDir() string {
	if l.Dir == "" {
		return StateDir()
	}
	return expandHome(l.Dir)
}

func expandHome(path string) string {
	if path == "~" || len(path) > 1 && path[:2] == "~/" {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[1:])
	}
	return path
}

// Default returns a Config with sensible default values
func Default() *Config {
	return &Config{
		Catalog: CatalogConfig{
			BaseURL:        "https://pokeapi.co/api/v2",
			TimeoutSeconds: 10,
			MaxParallel:    0,
			UserAgent:      "pokebox",
		},
		Box: BoxConfig{
			Start:      1,
			RandomSeed: 0,
		},
		TUI: TUIConfig{
			Theme:   "default",
			Columns: 6,
			Mouse:   true,
		},
		Logging: LoggingConfig{
			Enabled:    true,
			Level:      "info",
			MaxSizeMB:  10,
			MaxBackups: 3,
		},
	}
}

// Keys lists every configuration key, in display order.
func Keys() []string {
	return []string{
		"catalog.base_url",
		"catalog.timeout_seconds",
		"catalog.max_parallel",
		"catalog.user_agent",
		"box.start",
		"box.random_seed",
		"tui.theme",
		"tui.columns",
		"tui.mouse",
		"logging.enabled",
		"logging.level",
		"logging.max_size_mb",
		"logging.max_backups",
		"logging.dir",
	}
}

// SetDefaults registers default values with viper
func SetDefaults() {
	SetDefaultsOn(viper.GetViper())
}

// SetDefaultsOn registers default values on v.
func SetDefaultsOn(v *viper.Viper) {
	d := Default()

	v.SetDefault("catalog.base_url", d.Catalog.BaseURL)
	v.SetDefault("catalog.timeout_seconds", d.Catalog.TimeoutSeconds)
	v.SetDefault("catalog.max_parallel", d.Catalog.MaxParallel)
	v.SetDefault("catalog.user_agent", d.Catalog.UserAgent)

	v.SetDefault("box.start", d.Box.Start)
	v.SetDefault("box.random_seed", d.Box.RandomSeed)

	v.SetDefault("tui.theme", d.TUI.Theme)
	v.SetDefault("tui.columns", d.TUI.Columns)
	v.SetDefault("tui.mouse", d.TUI.Mouse)

	v.SetDefault("logging.enabled", d.Logging.Enabled)
	v.SetDefault("logging.level", d.Logging.Level)
	v.SetDefault("logging.max_size_mb", d.Logging.MaxSizeMB)
	v.SetDefault("logging.max_backups", d.Logging.MaxBackups)
	v.SetDefault("logging.dir", d.Logging.Dir)
}

// Load reads the configuration from viper into a Config struct and validates it
func Load() (*Config, error) {
	return LoadFrom(viper.GetViper())
}

// LoadFrom unmarshals and validates the configuration held by v.
func LoadFrom(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, ValidationErrors(errs)
	}

	return &cfg, nil
}

// Get returns the current configuration, falling back to defaults when the
// loaded configuration is invalid.
func Get() *Config {
	cfg, err := Load()
	if err != nil {
		return Default()
	}
	return cfg
}

// ConfigDir returns the path to the user's config directory
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "pokebox")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".pokebox"
	}
	return filepath.Join(home, ".config", "pokebox")
}

// ConfigFile returns the path to the config file
func ConfigFile() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}

// ThemesDir returns the directory custom theme files are loaded from
func ThemesDir() string {
	return filepath.Join(ConfigDir(), "themes")
}

// StateDir returns the directory for logs and other runtime state
func StateDir() string {
	if xdg := os.Getenv("XDG_STATE_HOME"); xdg != "" {
		return filepath.Join(xdg, "pokebox")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".pokebox"
	}
	return filepath.Join(home, ".local", "state", "pokebox")
}
