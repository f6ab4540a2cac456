package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Iron-Ham/pokebox/internal/box"
	"github.com/Iron-Ham/pokebox/internal/config"
	boxerrors "github.com/Iron-Ham/pokebox/internal/errors"
	"github.com/Iron-Ham/pokebox/internal/logging"
	"github.com/Iron-Ham/pokebox/internal/tui/keymap"
	tuimsg "github.com/Iron-Ham/pokebox/internal/tui/msg"
	"github.com/Iron-Ham/pokebox/internal/tui/styles"
	"github.com/Iron-Ham/pokebox/internal/tui/view"
)

// infoTimeout is how long an info message stays on the status line.
const infoTimeout = 3 * time.Second

// hitAreas records where the last frame put clickable things. View has a
// value receiver, so it is shared through a pointer.
type hitAreas struct {
	grid     view.GridLayout
	controls view.ControlsLayout
}

// Model is the Bubble Tea model for the box viewer.
type Model struct {
	ctx    context.Context
	loader tuimsg.Loader
	logger *logging.Logger
	keymap *keymap.Keymap
	mode   keymap.Mode

	state   box.State
	cursor  int
	columns int
	mouse   bool

	// cancel aborts the in-flight load, if any.
	cancel context.CancelFunc

	spinner   spinner.Model
	gotoInput textinput.Model
	grid      *view.GridView
	hits      *hitAreas

	showHelp bool
	info     string
	infoSeq  int
	// errLine is a transient error (bad goto input, clipboard failure,
	// invalid config reload). Load failures live in state.Err.
	errLine error

	width  int
	height int
}

// NewModel creates a model showing cfg.Box.Start. Loads run under ctx.
func NewModel(ctx context.Context, cfg *config.Config, loader tuimsg.Loader, logger *logging.Logger) Model {
	if cfg == nil {
		cfg = config.Default()
	}
	if logger == nil {
		logger = logging.NopLogger()
	}

	sp := spinner.New(spinner.WithSpinner(spinner.Dot))

	ti := textinput.New()
	ti.Placeholder = fmt.Sprintf("%d-%d", box.MinBox, box.MaxBox)
	ti.CharLimit = 2
	ti.Width = 4
	ti.Prompt = ""

	return Model{
		ctx:       ctx,
		loader:    loader,
		logger:    logger.WithComponent("tui"),
		keymap:    keymap.DefaultKeymap(),
		mode:      keymap.ModeNormal,
		state:     box.NewState(cfg.Box.Start),
		columns:   cfg.TUI.Columns,
		mouse:     cfg.TUI.Mouse,
		spinner:   sp,
		gotoInput: ti,
		grid:      view.NewGridView(),
		hits:      &hitAreas{},
	}
}

// State returns the viewer state.
func (m Model) State() box.State {
	return m.state
}

// Cursor returns the focused grid index.
func (m Model) Cursor() int {
	return m.cursor
}

// Mode returns the current input mode.
func (m Model) Mode() keymap.Mode {
	return m.mode
}

// mountMsg triggers the first load from inside Update, where state changes
// persist.
type mountMsg struct{}

// Init schedules the first load.
func (m Model) Init() tea.Cmd {
	return func() tea.Msg { return mountMsg{} }
}

// startLoad cancels any in-flight load and starts req. A nil req is a
// no-op navigation.
func (m *Model) startLoad(req *box.Request) tea.Cmd {
	if req == nil {
		return nil
	}
	if m.cancel != nil {
		m.cancel()
	}
	parent := m.ctx
	if parent == nil {
		parent = context.Background()
	}
	ctx, cancel := context.WithCancel(parent)
	m.cancel = cancel
	m.cursor = 0
	m.errLine = nil

	m.logger.WithBox(req.Box).Debug("load started", "generation", req.Generation)
	return tea.Batch(tuimsg.LoadBox(ctx, m.loader, *req), m.spinner.Tick)
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeypress(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case mountMsg:
		var req *box.Request
		m.state, req = m.state.Mount()
		return m, m.startLoad(req)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tuimsg.BoxLoadedMsg:
		return m.handleBoxLoaded(msg)

	case tuimsg.ConfigReloadedMsg:
		return m.handleConfigReloaded(msg)

	case tuimsg.ClipboardMsg:
		if msg.Err != nil {
			m.logger.Warn("clipboard write failed", "error", msg.Err)
			m.errLine = boxerrors.Wrap(msg.Err, "copy failed")
			return m, nil
		}
		return m.setInfo("Copied " + msg.Text)

	case tuimsg.ClearInfoMsg:
		if msg.Seq == m.infoSeq {
			m.info = ""
		}
		return m, nil

	case tuimsg.ErrMsg:
		m.errLine = msg.Err
		return m, nil

	case spinner.TickMsg:
		// The tick chain ends once loading stops; startLoad restarts it.
		if !m.state.Loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m Model) handleBoxLoaded(msg tuimsg.BoxLoadedMsg) (tea.Model, tea.Cmd) {
	log := m.logger.WithBox(msg.Request.Box)

	var applied bool
	if msg.Err != nil {
		m.state, applied = m.state.Fail(msg.Request, msg.Err)
	} else {
		m.state, applied = m.state.Resolve(msg.Request, msg.Entries)
	}
	if !applied {
		log.Debug("stale load result dropped",
			"generation", msg.Request.Generation, "current", m.state.Generation())
		return m, nil
	}

	if m.cancel != nil {
		m.cancel()
		m.cancel = nil
	}
	if msg.Err != nil {
		if boxerrors.GetSeverity(msg.Err) <= boxerrors.SeverityInfo {
			log.Debug("box load failed", "error", msg.Err)
		} else {
			log.Warn("box load failed", "error", msg.Err)
		}
	}
	m.cursor = min(m.cursor, max(0, len(m.state.Entries)-1))
	return m, nil
}

func (m Model) handleConfigReloaded(msg tuimsg.ConfigReloadedMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		m.logger.Warn("config reload rejected", "error", msg.Err)
		m.errLine = boxerrors.Wrap(msg.Err, "config not reloaded")
		return m, nil
	}
	if msg.Config == nil {
		return m, nil
	}

	cfg := msg.Config
	styles.SetActiveTheme(styles.ThemeName(cfg.TUI.Theme))
	if cfg.TUI.Columns > 0 {
		m.columns = cfg.TUI.Columns
	}

	var cmd tea.Cmd
	if cfg.TUI.Mouse != m.mouse {
		m.mouse = cfg.TUI.Mouse
		if m.mouse {
			cmd = tea.EnableMouseCellMotion
		} else {
			cmd = tea.DisableMouse
		}
	}

	m.logger.Info("config reloaded", "theme", cfg.TUI.Theme, "columns", m.columns)
	info, infoCmd := m.setInfo("Config reloaded")
	return info, tea.Batch(cmd, infoCmd)
}

// setInfo shows text on the status line and schedules its removal.
func (m Model) setInfo(text string) (Model, tea.Cmd) {
	m.infoSeq++
	m.info = text
	m.errLine = nil
	return m, tuimsg.ClearInfoAfter(infoTimeout, m.infoSeq)
}

func (m Model) handleKeypress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.mode == keymap.ModeGoto {
		return m.handleGotoKey(msg)
	}

	cmd, ok := m.keymap.Lookup(msg, keymap.ModeNormal)
	if !ok {
		return m, nil
	}
	return m.execute(cmd)
}

func (m Model) handleGotoKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	cmd, ok := m.keymap.Lookup(msg, keymap.ModeGoto)
	if !ok {
		var inputCmd tea.Cmd
		m.gotoInput, inputCmd = m.gotoInput.Update(msg)
		return m, inputCmd
	}

	switch cmd {
	case keymap.CmdConfirm:
		raw := strings.TrimSpace(m.gotoInput.Value())
		m.leaveGoto()
		n, err := parseBox(raw)
		if err != nil {
			m.errLine = err
			return m, nil
		}
		var req *box.Request
		m.state, req = m.state.GoTo(n)
		return m, m.startLoad(req)

	case keymap.CmdCancel:
		m.leaveGoto()
		return m, nil

	case keymap.CmdQuit:
		return m.quit()
	}
	return m, nil
}

func (m *Model) leaveGoto() {
	m.mode = keymap.ModeNormal
	m.gotoInput.Blur()
	m.gotoInput.Reset()
}

// parseBox validates a typed box number.
func parseBox(raw string) (int, error) {
	n, err := strconv.Atoi(raw)
	if err != nil || n < box.MinBox || n > box.MaxBox {
		verr := boxerrors.NewValidationError(
			fmt.Sprintf("box must be a number from %d to %d", box.MinBox, box.MaxBox)).
			WithField("box").WithValue(raw)
		if err != nil {
			return 0, verr.WithCause(err)
		}
		return 0, verr.WithCause(box.ErrInvalidBox)
	}
	return n, nil
}

// execute runs a normal-mode command. Mouse clicks on the controls row go
// through here too.
func (m Model) execute(cmd keymap.Command) (tea.Model, tea.Cmd) {
	count := len(m.state.Entries)

	switch cmd {
	case keymap.CmdCursorLeft:
		m.cursor = view.MoveCursor(m.cursor, count, m.columns, -1, 0)
	case keymap.CmdCursorRight:
		m.cursor = view.MoveCursor(m.cursor, count, m.columns, 1, 0)
	case keymap.CmdCursorUp:
		m.cursor = view.MoveCursor(m.cursor, count, m.columns, 0, -1)
	case keymap.CmdCursorDown:
		m.cursor = view.MoveCursor(m.cursor, count, m.columns, 0, 1)

	case keymap.CmdSelect:
		if m.cursor < count {
			m.state = m.state.Select(m.state.Entries[m.cursor])
		}
	case keymap.CmdClose:
		m.state = m.state.Close()

	case keymap.CmdPrevBox:
		var req *box.Request
		m.state, req = m.state.Prev()
		return m, m.startLoad(req)
	case keymap.CmdNextBox:
		var req *box.Request
		m.state, req = m.state.Next()
		return m, m.startLoad(req)
	case keymap.CmdReturn:
		var req *box.Request
		m.state, req = m.state.Return()
		return m, m.startLoad(req)
	case keymap.CmdGoto:
		m.mode = keymap.ModeGoto
		m.gotoInput.Reset()
		return m, m.gotoInput.Focus()

	case keymap.CmdRoar:
		m.state = m.state.Roar()
		return m, tuimsg.RingBell()

	case keymap.CmdCopy:
		target, ok := m.copyTarget()
		if !ok {
			return m.setInfo("Nothing to copy")
		}
		return m, tuimsg.CopyToClipboard(view.CopyText(target))

	case keymap.CmdToggleHelp:
		m.showHelp = !m.showHelp

	case keymap.CmdQuit:
		return m.quit()
	}
	return m, nil
}

// copyTarget is the open entry, or the focused one when nothing is open.
func (m Model) copyTarget() (box.DecoratedEntry, bool) {
	if m.state.Selected != nil {
		return *m.state.Selected, true
	}
	if m.cursor < len(m.state.Entries) {
		return m.state.Entries[m.cursor], true
	}
	return box.DecoratedEntry{}, false
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	if m.cancel != nil {
		m.cancel()
		m.cancel = nil
	}
	return m, tea.Quit
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if !m.mouse || m.mode != keymap.ModeNormal {
		return m, nil
	}
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}

	if idx, ok := m.hits.grid.HitTest(msg.X, msg.Y); ok && idx < len(m.state.Entries) {
		m.cursor = idx
		m.state = m.state.Select(m.state.Entries[idx])
		return m, nil
	}
	if cmd, ok := m.hits.controls.HitTest(msg.X, msg.Y); ok {
		return m.execute(cmd)
	}
	return m, nil
}

// View renders the UI.
func (m Model) View() string {
	header := view.RenderHeader(view.HeaderState{
		Box:     m.state.BoxNumber,
		HasPrev: m.state.HasPrev(),
		HasNext: m.state.HasNext(),
		Spinner: m.spinner.View(),
		Loading: m.state.Loading,
		Width:   m.width,
	})

	gridTop := view.HeaderHeight + 1
	grid, gridLayout := m.grid.Render(view.GridState{
		Entries: m.state.Entries,
		Cursor:  m.cursor,
		Columns: m.columns,
		Loading: m.state.Loading,
		Failed:  m.state.Err != nil,
	}, gridTop, 0)

	detail := ""
	if m.state.Selected != nil {
		detail = view.RenderDetail(m.state.Selected)
	}
	body := view.Place(grid, detail, m.width)

	controlsTop := gridTop + lipgloss.Height(body) + 1
	controls, controlsLayout := view.RenderControls(view.ControlsState{
		HasPrev: m.state.HasPrev(),
		HasNext: m.state.HasNext(),
	}, controlsTop, 0)

	m.hits.grid = gridLayout
	m.hits.controls = controlsLayout

	status := view.StatusState{Err: m.statusErr(), Info: m.info, Width: m.width}
	if m.mode == keymap.ModeGoto {
		status.Prompt = m.gotoInput.View()
	}

	sections := []string{header, "", body, "", controls, view.RenderStatus(status),
		view.RenderHelpBar(m.keymap.Help(m.mode), m.showHelp, m.width)}
	return strings.Join(sections, "\n")
}

// statusErr is the error for the status line, if any.
func (m Model) statusErr() error {
	if m.errLine != nil {
		return m.errLine
	}
	if m.state.Err != nil && !m.state.Loading {
		return fmt.Errorf("couldn't load box %d: %s", m.state.BoxNumber, describeLoadError(m.state.Err))
	}
	return nil
}

// describeLoadError reduces a load failure to a short phrase.
func describeLoadError(err error) string {
	var netErr *boxerrors.NetworkError
	switch {
	case boxerrors.As(err, &netErr) && netErr.StatusCode != 0:
		return fmt.Sprintf("catalog returned HTTP %d", netErr.StatusCode)
	case boxerrors.Is(err, boxerrors.ErrMalformedResponse):
		return "catalog sent an unreadable response"
	case boxerrors.Is(err, boxerrors.ErrCanceled):
		return "request canceled"
	case boxerrors.IsRetryable(err):
		return "network unavailable"
	case boxerrors.IsUserFacing(err):
		return err.Error()
	default:
		return "unexpected error (see log)"
	}
}
