package skipmap

import "errors"

// Errors
var (
	// ErrKeyNotFound is returned when a key is not present in the Map.
	ErrKeyNotFound = errors.New("key not found")
	// ErrInvalidCursor is the panic value raised when a cursor positioned on
	// a sentinel is dereferenced or stepped past the end of the sequence.
	ErrInvalidCursor = errors.New("cursor does not reference an element")
	// ErrMalformedMap is the panic value raised when a Map is constructed
	// without a comparison function.
	ErrMalformedMap = errors.New("the map was not init-ed properly")
)

// Pair is a key/value pair, used for bulk construction and insertion.
type Pair[K, V any] struct {
	Key   K
	Value V
}

// config holds the construction settings of a Map.
type config struct {
	src      Source
	maxLevel int
	observer Observer
}

// Option configures a Map.
type Option func(*config)

func newConfig(opts []Option) config {
	c := config{maxLevel: MaxLevel}
	for _, opt := range opts {
		opt(&c)
	}
	if c.src == nil {
		c.src = newRNG()
	}
	return c
}

// WithSource sets the randomness source consulted when drawing node heights.
// Tests pass a deterministic source here.
func WithSource(src Source) Option {
	return func(c *config) { c.src = src }
}

// WithSeed seeds the default RNG with a fixed value.
func WithSeed(seed uint64) Option {
	return func(c *config) { c.src = NewSource(seed) }
}

// WithMaxLevel caps node heights. Values outside [1, MaxLevel] are clamped.
func WithMaxLevel(level int) Option {
	return func(c *config) {
		switch {
		case level < 1:
			c.maxLevel = 1
		case level > MaxLevel:
			c.maxLevel = MaxLevel
		default:
			c.maxLevel = level
		}
	}
}

// WithObserver installs an observer that traces every Insert.
func WithObserver(obs Observer) Option {
	return func(c *config) { c.observer = obs }
}
