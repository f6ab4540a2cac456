package box

import "github.com/Iron-Ham/pokebox/internal/catalog"

// Level bounds for DecoratedEntry.Level.
const (
	MinLevel = 1
	MaxLevel = 100
)

// DecoratedEntry is a catalog entry as it appears in a box: the detail
// document plus a display level rolled when the box was loaded.
type DecoratedEntry struct {
	catalog.Entry
	Level int
}
