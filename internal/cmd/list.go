package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/Iron-Ham/pokebox/internal/box"
	"github.com/Iron-Ham/pokebox/internal/config"
	boxerrors "github.com/Iron-Ham/pokebox/internal/errors"
	"github.com/Iron-Ham/pokebox/internal/util"
)

var listCmd = &cobra.Command{
	Use:   "list [box]",
	Short: "Print one box as a table",
	Long: `Load one box from the catalog and print its entries without starting
the interactive viewer. Levels are rolled fresh on every run, as in the TUI,
unless box.random_seed is set.

Examples:
  pokebox list        # the configured start box
  pokebox list 3      # entries 61-90`,
	Args: cobra.MaximumNArgs(1),
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	n := cfg.Box.Start
	if len(args) > 0 {
		n, err = strconv.Atoi(args[0])
		if err != nil || n < box.MinBox || n > box.MaxBox {
			return boxerrors.NewValidationError(
				fmt.Sprintf("box must be a number from %d to %d", box.MinBox, box.MaxBox)).
				WithField("box").WithValue(args[0])
		}
	}

	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Close() }()

	loader, err := newLoader(cfg, logger)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	entries, err := loader.Load(ctx, n)
	if err != nil {
		return boxerrors.Wrapf(err, "loading box %d", n)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Box %d\n\n", n)
	if len(entries) == 0 {
		fmt.Fprintln(out, "This box is empty.")
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tLEVEL\tTYPES")
	for _, e := range entries {
		fmt.Fprintf(w, "#%d\t%s\t%d\t%s\n", e.ID, util.Capitalize(e.Name), e.Level, strings.Join(e.TypeNames(), "/"))
	}
	return w.Flush()
}
