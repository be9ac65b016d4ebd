package reconcile

import (
	"fmt"

	"github.com/danieljhkim/tagsync/internal/tagset"
)

// Result is the outcome of reconciling one file's tag stores.
type Result struct {
	// Shell is the post-sync shell tag set
	Shell tagset.TagSet

	// Embedded is the post-sync embedded tag set
	Embedded tagset.TagSet

	// ShellChanged is true when Shell differs from the original shell set
	ShellChanged bool

	// EmbeddedChanged is true when Embedded differs from the original embedded set
	EmbeddedChanged bool
}

// Changed reports whether either store changed.
func (r Result) Changed() bool {
	return r.ShellChanged || r.EmbeddedChanged
}

// Reconcile computes the new value of each store for the given mode.
// Unchanged stores keep their original value in the Result.
func Reconcile(shell, embedded tagset.TagSet, mode Mode) Result {
	res := Result{Shell: shell, Embedded: embedded}

	switch mode {
	case AdoptShell:
		if !embedded.Equal(shell) {
			res.Embedded = shell.Clone()
			res.EmbeddedChanged = true
		}
	case AdoptEmbedded:
		if !shell.Equal(embedded) {
			res.Shell = embedded.Clone()
			res.ShellChanged = true
		}
	case Merge:
		union := shell.Union(embedded)
		// Both comparisons are against the original sets.
		if !shell.Equal(union) {
			res.Shell = union
			res.ShellChanged = true
		}
		if !embedded.Equal(union) {
			res.Embedded = union.Clone()
			res.EmbeddedChanged = true
		}
	default:
		panic(fmt.Sprintf("reconcile: unknown mode %d", int(mode)))
	}

	return res
}
