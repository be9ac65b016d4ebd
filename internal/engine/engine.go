// Package engine drives tag synchronization over a set of paths.
//
// The engine walks the given files and directories depth-first, reads both
// tag stores of every regular file, reconciles them with the selected sync
// mode and writes back the shell store when it changed. The embedded store
// is read-only; a changed embedded value is reported but never persisted.
//
// Key components:
//   - Engine: wires the filesystem, both tag stores and the diagnostic sink
//   - Run: traversal with skip rules and a fail-fast or keep-going policy
//   - RunReport: per-file results for dry-run and machine-readable output
//
// Run logs through the zerolog.Logger carried by its context (see
// logging.WithLogger); without one it is silent.
package engine

import (
	"github.com/danieljhkim/tagsync/internal/clock"
	"github.com/danieljhkim/tagsync/internal/fsops"
	"github.com/danieljhkim/tagsync/internal/shelltags"
	"github.com/danieljhkim/tagsync/internal/tagset"
)

// EmbeddedReader reads the embedded keyword store. Missing or unreadable
// metadata yields an empty set.
type EmbeddedReader interface {
	Read(path string) tagset.TagSet
}

// Engine orchestrates a sync run.
// It is the main API surface called by the CLI.
type Engine struct {
	fs       fsops.FS
	shell    shelltags.Store
	embedded EmbeddedReader
	observer Observer
	clock    clock.Clock
}

// Option customizes an Engine.
type Option func(*Engine)

// WithObserver sets the diagnostic sink.
func WithObserver(o Observer) Option {
	return func(e *Engine) {
		e.observer = o
	}
}

// WithClock sets the clock used to stamp reports.
func WithClock(c clock.Clock) Option {
	return func(e *Engine) {
		e.clock = c
	}
}

// New creates a new Engine with the given dependencies.
func New(fs fsops.FS, shell shelltags.Store, embedded EmbeddedReader, opts ...Option) *Engine {
	e := &Engine{
		fs:       fs,
		shell:    shell,
		embedded: embedded,
		observer: NopObserver{},
		clock:    clock.System,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}
