// Package cmd implements the pokebox command line.
package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/Iron-Ham/pokebox/internal/box"
	"github.com/Iron-Ham/pokebox/internal/config"
	boxerrors "github.com/Iron-Ham/pokebox/internal/errors"
	"github.com/Iron-Ham/pokebox/internal/logging"
	"github.com/Iron-Ham/pokebox/internal/tui"
	tuimsg "github.com/Iron-Ham/pokebox/internal/tui/msg"
	"github.com/Iron-Ham/pokebox/internal/tui/styles"
)

var rootCmd = &cobra.Command{
	Use:   "pokebox",
	Short: "Browse the PokéAPI catalog one box at a time",
	Long: `pokebox shows the PokéAPI catalog as 30 boxes of 30 entries.

Move around the grid with the arrow keys, press enter to open an entry's
details, and use [ and ] to change boxes. Press ? for every binding.`,
	Args:         cobra.NoArgs,
	RunE:         runRoot,
	SilenceUsage: true,
}

// isTerminal is replaced in tests.
var isTerminal = func() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// Execute runs the root command
func Execute() error {
	err := rootCmd.Execute()
	if hint := usageHint(err); hint != "" {
		fmt.Fprintln(rootCmd.ErrOrStderr(), hint)
	}
	return err
}

// usageHint points at --help when err came from bad user input.
func usageHint(err error) string {
	if boxerrors.Is(err, boxerrors.ErrInvalidInput) {
		return "Run 'pokebox --help' for usage."
	}
	return ""
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringP("config", "c", "", "config file (default is $HOME/.config/pokebox/config.yaml)")
	_ = viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))

	rootCmd.Flags().IntP("box", "b", 0, fmt.Sprintf("box to open first (%d-%d, default from config)", box.MinBox, box.MaxBox))
}

func initConfig() {
	// Set defaults first so they're available even without a config file
	config.SetDefaults()

	if cfgFile := viper.GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(config.ConfigDir())
		viper.AddConfigPath("$HOME/.config/pokebox")
		viper.AddConfigPath(".")
	}

	viper.AutomaticEnv()
	viper.SetEnvPrefix("POKEBOX")
	// Replace dots with underscores for nested keys in env vars
	// e.g., POKEBOX_TUI_THEME for tui.theme
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Read config file if it exists (ignore error if not found)
	_ = viper.ReadInConfig()
}

func runRoot(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	if cmd.Flags().Changed("box") {
		n, _ := cmd.Flags().GetInt("box")
		if n < box.MinBox || n > box.MaxBox {
			return boxerrors.NewValidationError(
				fmt.Sprintf("--box must be between %d and %d", box.MinBox, box.MaxBox)).
				WithField("box").WithValue(n)
		}
		cfg.Box.Start = n
	}

	if !isTerminal() {
		return errors.New("pokebox needs an interactive terminal; use 'pokebox list' for plain output")
	}

	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Close() }()

	applyTheme(cfg, logger)

	loader, err := newLoader(cfg, logger)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	app := tui.New(ctx, cfg, loader, logger)
	watchConfig(logger, app.Send)

	if err := app.Run(ctx); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}

// applyTheme loads custom themes and activates the configured one. Broken
// theme files are logged and skipped.
func applyTheme(cfg *config.Config, logger *logging.Logger) {
	_, errs := styles.DiscoverCustomThemes(config.ThemesDir())
	for _, err := range errs {
		logger.Warn("custom theme skipped", "error", err)
	}
	if !styles.IsValidTheme(cfg.TUI.Theme) {
		logger.Warn("unknown theme, using default", "theme", cfg.TUI.Theme)
	}
	styles.SetActiveTheme(styles.ThemeName(cfg.TUI.Theme))
}

// watchConfig reloads the config file on change and reports the result
// through send. It does nothing when no config file is in use.
func watchConfig(logger *logging.Logger, send func(tea.Msg)) {
	if viper.ConfigFileUsed() == "" {
		return
	}
	viper.OnConfigChange(func(e fsnotify.Event) {
		if !e.Has(fsnotify.Write) && !e.Has(fsnotify.Create) {
			return
		}
		logger.Info("config file changed", "path", e.Name, "op", e.Op.String())
		send(reloadConfig())
	})
	viper.WatchConfig()
}

// reloadConfig loads the current viper state into a ConfigReloadedMsg.
func reloadConfig() tuimsg.ConfigReloadedMsg {
	cfg, err := config.Load()
	if err != nil {
		return tuimsg.ConfigReloadedMsg{Err: err}
	}
	return tuimsg.ConfigReloadedMsg{Config: cfg}
}
