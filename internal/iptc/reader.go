package iptc

import (
	"errors"

	"github.com/rs/zerolog"

	"github.com/danieljhkim/tagsync/internal/fsops"
	"github.com/danieljhkim/tagsync/internal/tagset"
)

// Reader reads embedded keywords through an fsops.FS.
type Reader struct {
	fs     fsops.FS
	logger zerolog.Logger
}

// NewReader creates a Reader. Unreadable metadata is logged as a warning;
// files in formats that carry no IPTC are logged at debug level.
func NewReader(fs fsops.FS, logger zerolog.Logger) *Reader {
	return &Reader{fs: fs, logger: logger}
}

// Read returns the keywords of path. Missing, unreadable or malformed
// metadata yields an empty set.
func (r *Reader) Read(path string) tagset.TagSet {
	f, err := r.fs.Open(path)
	if err != nil {
		r.logger.Warn().Err(err).Str("path", path).Msg("cannot open file for embedded metadata")
		return tagset.New()
	}
	defer func() {
		_ = f.Close()
	}()

	keywords, err := ReadKeywords(f)
	switch {
	case errors.Is(err, ErrUnknownFormat):
		r.logger.Debug().Str("path", path).Msg("no embedded metadata container")
		return tagset.New()
	case err != nil:
		r.logger.Warn().Err(err).Str("path", path).Msg("ignoring unreadable embedded metadata")
		return tagset.New()
	}
	return tagset.New(keywords...)
}
