package box

import (
	"context"
	"fmt"

	"github.com/sourcegraph/conc/pool"

	"github.com/Iron-Ham/pokebox/internal/catalog"
	boxerrors "github.com/Iron-Ham/pokebox/internal/errors"
	"github.com/Iron-Ham/pokebox/internal/logging"
)

// Box geometry.
const (
	PageSize = 30
	MinBox   = 1
	MaxBox   = 30
)

// ErrInvalidBox is returned by Load for box numbers below MinBox.
var ErrInvalidBox = boxerrors.New("invalid box number")

// Offset returns the catalog offset of the first entry in box.
func Offset(box int) int {
	return (box - 1) * PageSize
}

// LoaderOptions tunes a Loader.
type LoaderOptions struct {
	// MaxParallel bounds in-flight detail fetches. 0 means unbounded.
	MaxParallel int
	Logger      *logging.Logger
}

// Loader fetches and decorates one box of entries at a time. It holds no
// cache; every Load goes to the network.
type Loader struct {
	client      catalog.Client
	levels      LevelSource
	maxParallel int
	logger      *logging.Logger
}

// NewLoader returns a Loader backed by client. A nil levels defaults to a
// clock-seeded RandomLevels.
func NewLoader(client catalog.Client, levels LevelSource, opts LoaderOptions) *Loader {
	if levels == nil {
		levels = NewRandomLevels(0)
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.NopLogger()
	}
	return &Loader{
		client:      client,
		levels:      levels,
		maxParallel: opts.MaxParallel,
		logger:      logger.WithComponent("loader"),
	}
}

// Load returns the entries of box in listing order. Every detail fetch must
// succeed; the first failure cancels the rest and is returned.
func (l *Loader) Load(ctx context.Context, box int) ([]DecoratedEntry, error) {
	if box < MinBox {
		return nil, boxerrors.NewValidationError(fmt.Sprintf("box must be at least %d", MinBox)).
			WithField("box").WithValue(box).WithCause(ErrInvalidBox)
	}
	log := l.logger.WithBox(box)

	page, err := l.client.List(ctx, Offset(box), PageSize)
	if err != nil {
		log.Warn("listing failed", "error", err)
		return nil, err
	}

	entries := make([]DecoratedEntry, len(page.Results))

	p := pool.New()
	if l.maxParallel > 0 {
		p = p.WithMaxGoroutines(l.maxParallel)
	}
	cp := p.WithContext(ctx).WithCancelOnError().WithFirstError()

	for i, ref := range page.Results {
		cp.Go(func(ctx context.Context) error {
			entry, err := l.client.Entry(ctx, ref.URL)
			if err != nil {
				return err
			}
			entries[i] = DecoratedEntry{Entry: *entry}
			return nil
		})
	}

	if err := cp.Wait(); err != nil {
		log.Warn("detail fetch failed", "error", err, "refs", len(page.Results))
		return nil, err
	}

	// Levels are drawn in listing order, independent of fetch completion.
	for i := range entries {
		entries[i].Level = l.levels.Level()
	}

	log.Info("box loaded", "entries", len(entries))
	return entries, nil
}
