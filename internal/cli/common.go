package cli

import (
	"github.com/rs/zerolog"

	"github.com/danieljhkim/tagsync/internal/config"
	"github.com/danieljhkim/tagsync/internal/engine"
	"github.com/danieljhkim/tagsync/internal/fsops"
	"github.com/danieljhkim/tagsync/internal/iptc"
	"github.com/danieljhkim/tagsync/internal/shelltags"
)

// newShellStore creates the shell tag store. Tests replace it.
var newShellStore = func(attribute string) shelltags.Store {
	return shelltags.NewXattrStore(attribute)
}

// newEngine creates a new engine with real implementations of all dependencies.
func newEngine(s *config.Settings, observer engine.Observer, logger zerolog.Logger) *engine.Engine {
	fs := fsops.NewRealFS()
	return engine.New(
		fs,
		newShellStore(s.Attribute),
		iptc.NewReader(fs, logger),
		engine.WithObserver(observer),
	)
}
