// Package tui implements the interactive box viewer.
package tui

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Iron-Ham/pokebox/internal/config"
	"github.com/Iron-Ham/pokebox/internal/logging"
	tuimsg "github.com/Iron-Ham/pokebox/internal/tui/msg"
)

// App wraps the Bubble Tea program.
type App struct {
	program atomic.Pointer[tea.Program]
	model   Model
	cfg     *config.Config
	logger  *logging.Logger
}

// New creates a new TUI application.
func New(ctx context.Context, cfg *config.Config, loader tuimsg.Loader, logger *logging.Logger) *App {
	if cfg == nil {
		cfg = config.Default()
	}
	if logger == nil {
		logger = logging.NopLogger()
	}
	return &App{
		model:  NewModel(ctx, cfg, loader, logger),
		cfg:    cfg,
		logger: logger,
	}
}

// Run starts the TUI and blocks until the user quits or ctx is done.
func (a *App) Run(ctx context.Context) error {
	opts := []tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}
	if a.cfg.TUI.Mouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}
	program := tea.NewProgram(a.model, opts...)
	a.program.Store(program)

	// Quit cleanly on termination signals so the terminal is restored.
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGHUP)
	done := make(chan struct{})

	go func() {
		select {
		case <-sigChan:
			program.Quit()
		case <-done:
		}
	}()

	a.logger.Info("tui started", "box", a.cfg.Box.Start)
	_, err := program.Run()

	signal.Stop(sigChan)
	close(done)
	a.logger.Info("tui stopped")

	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}

// Send delivers msg to the running program. It is a no-op before Run.
func (a *App) Send(msg tea.Msg) {
	if p := a.program.Load(); p != nil {
		p.Send(msg)
	}
}
