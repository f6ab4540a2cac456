package msg

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Iron-Ham/pokebox/internal/box"
)

// Loader loads one box of entries.
type Loader interface {
	Load(ctx context.Context, box int) ([]box.DecoratedEntry, error)
}

// LoadBox returns a command that runs req through loader and reports a
// BoxLoadedMsg tagged with req.
func LoadBox(ctx context.Context, loader Loader, req box.Request) tea.Cmd {
	return func() tea.Msg {
		entries, err := loader.Load(ctx, req.Box)
		return BoxLoadedMsg{Request: req, Entries: entries, Err: err}
	}
}

// clipboardWrite is replaced in tests.
var clipboardWrite = clipboard.WriteAll

// CopyToClipboard returns a command that writes text to the system
// clipboard.
func CopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		return ClipboardMsg{Text: text, Err: clipboardWrite(text)}
	}
}

// bellOut is where RingBell writes. The bell works even in alt-screen mode.
var bellOut io.Writer = os.Stdout

// RingBell returns a command that sounds the terminal bell.
func RingBell() tea.Cmd {
	return func() tea.Msg {
		_, _ = bellOut.Write([]byte{'\a'})
		return nil
	}
}

// ClearInfoAfter returns a command that sends ClearInfoMsg{seq} after d.
func ClearInfoAfter(d time.Duration, seq int) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return ClearInfoMsg{Seq: seq}
	})
}
