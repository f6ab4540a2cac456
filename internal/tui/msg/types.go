package msg

import (
	"github.com/Iron-Ham/pokebox/internal/box"
	"github.com/Iron-Ham/pokebox/internal/config"
)

// BoxLoadedMsg carries the outcome of a box load. Request is the tag the
// load was started with; the model drops the message when it is stale.
type BoxLoadedMsg struct {
	Request box.Request
	Entries []box.DecoratedEntry
	Err     error
}

// ConfigReloadedMsg is sent when the config file changes on disk. Err is set
// when the new file does not validate; Config is then nil.
type ConfigReloadedMsg struct {
	Config *config.Config
	Err    error
}

// ClipboardMsg reports the result of a copy.
type ClipboardMsg struct {
	Text string
	Err  error
}

// ClearInfoMsg clears the info line if it still shows message Seq.
type ClearInfoMsg struct {
	Seq int
}

// ErrMsg wraps an error to be displayed in the UI.
type ErrMsg struct {
	Err error
}
