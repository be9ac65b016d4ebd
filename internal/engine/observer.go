package engine

import "github.com/danieljhkim/tagsync/internal/tagset"

// Observer receives the per-file diagnostics of a run. The engine decides
// when each method is called; implementations only render.
type Observer interface {
	// File announces a regular file (verbose or dry run).
	File(path string)

	// Original reports both tag sets as read (verbose only).
	Original(path string, shell, embedded tagset.TagSet)

	// NewShell reports a changed shell tag set (verbose or dry run).
	NewShell(path string, tags tagset.TagSet)

	// NewEmbedded reports a changed embedded tag set (verbose or dry run).
	NewEmbedded(path string, tags tagset.TagSet)
}

// NopObserver discards all diagnostics.
type NopObserver struct{}

func (NopObserver) File(string) {}
func (NopObserver) Original(string, tagset.TagSet, tagset.TagSet) {}
func (NopObserver) NewShell(string, tagset.TagSet) {}
func (NopObserver) NewEmbedded(string, tagset.TagSet) {}
