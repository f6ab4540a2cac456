package box

import (
	"math/rand/v2"
	"sync"
	"time"
)

// LevelSource hands out display levels. Implementations must be safe for
// concurrent use and return values in [MinLevel, MaxLevel].
type LevelSource interface {
	Level() int
}

// RandomLevels draws levels uniformly from [MinLevel, MaxLevel].
type RandomLevels struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewRandomLevels returns a seeded source. A zero seed seeds from the clock.
func NewRandomLevels(seed uint64) *RandomLevels {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &RandomLevels{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// Level implements LevelSource.
func (r *RandomLevels) Level() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return MinLevel + r.rng.IntN(MaxLevel-MinLevel+1)
}

// FixedLevel always returns the same level. Useful in tests and for
// reproducible listings.
type FixedLevel int

// Level implements LevelSource.
func (f FixedLevel) Level() int {
	return int(f)
}
