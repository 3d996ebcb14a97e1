package skipmap

import (
	"context"
	"log/slog"
)

// Observer receives the steps of a traced insert. Observers must not mutate
// the map they are watching.
type Observer interface {
	// Step is called every time the descent moves right onto the node
	// holding key at the given level.
	Step(level int, key any)
	// Height is called once per new key with the height drawn for it.
	// It is not called when the key already exists.
	Height(key any, height int)
}

type slogObserver struct {
	log *slog.Logger
}

// NewSlogObserver returns an Observer that logs each step at debug level.
// A nil logger means slog.Default().
func NewSlogObserver(log *slog.Logger) Observer {
	if log == nil {
		log = slog.Default()
	}
	return slogObserver{log: log}
}

func (o slogObserver) Step(level int, key any) {
	o.log.LogAttrs(context.Background(), slog.LevelDebug, "moving",
		slog.Int("level", level), slog.Any("key", key))
}

func (o slogObserver) Height(key any, height int) {
	o.log.LogAttrs(context.Background(), slog.LevelDebug, "inserting",
		slog.Any("key", key), slog.Int("height", height))
}
