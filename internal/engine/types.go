package engine

import (
	"time"

	"github.com/danieljhkim/tagsync/internal/reconcile"
	"github.com/danieljhkim/tagsync/internal/tagset"
)

// ErrorPolicy selects how the traversal reacts to a failing path.
type ErrorPolicy int

const (
	// FailFast aborts the run on the first error.
	FailFast ErrorPolicy = iota
	// KeepGoing records the failure and continues with the next path.
	KeepGoing
)

// String returns the policy name.
func (p ErrorPolicy) String() string {
	if p == KeepGoing {
		return "keep-going"
	}
	return "fail-fast"
}

// SkipFunc reports whether a directory child with the given name is
// skipped. It is not consulted for the paths named in RunRequest.Paths.
type SkipFunc func(name string) bool

// SkipNames returns a SkipFunc matching any of the exact names.
func SkipNames(names ...string) SkipFunc {
	set := make(map[string]struct{}, len(names))
	for _, n := range names {
		set[n] = struct{}{}
	}
	return func(name string) bool {
		_, ok := set[name]
		return ok
	}
}

// DefaultSkip skips the macOS Finder housekeeping file.
var DefaultSkip = SkipNames(".DS_Store")

// RunRequest represents a request to synchronize tags below a set of paths.
type RunRequest struct {
	// Paths are the files and directories to process, in order
	Paths []string

	// Mode selects the authoritative store
	Mode reconcile.Mode

	// Verbose reports the original tag sets of every file
	Verbose bool

	// DryRun performs reconciliation and reporting without writing
	DryRun bool

	// Skip filters directory children; nil uses DefaultSkip
	Skip SkipFunc

	// Policy selects fail-fast or keep-going error handling
	Policy ErrorPolicy
}

// FileResult is the outcome of processing one regular file.
type FileResult struct {
	Path string `json:"path" yaml:"path"`

	OriginalShell    tagset.TagSet `json:"original_shell" yaml:"original_shell"`
	OriginalEmbedded tagset.TagSet `json:"original_embedded" yaml:"original_embedded"`

	Shell    tagset.TagSet `json:"shell" yaml:"shell"`
	Embedded tagset.TagSet `json:"embedded" yaml:"embedded"`

	ShellChanged    bool `json:"shell_changed" yaml:"shell_changed"`
	EmbeddedChanged bool `json:"embedded_changed" yaml:"embedded_changed"`

	// ShellWritten is true when the new shell tags were persisted
	ShellWritten bool `json:"shell_written" yaml:"shell_written"`

	// EmbeddedPending is true when the embedded tags changed; they are
	// never persisted
	EmbeddedPending bool `json:"embedded_pending" yaml:"embedded_pending"`
}

// FileFailure records a path that failed under the KeepGoing policy.
type FileFailure struct {
	Path  string `json:"path" yaml:"path"`
	Error string `json:"error" yaml:"error"`

	err error
}

// Err returns the underlying error.
func (f FileFailure) Err() error {
	return f.err
}

// RunReport summarizes a run.
type RunReport struct {
	StartedAt  time.Time      `json:"started_at" yaml:"started_at"`
	FinishedAt time.Time      `json:"finished_at" yaml:"finished_at"`
	Mode       reconcile.Mode `json:"mode" yaml:"mode"`
	DryRun     bool           `json:"dry_run" yaml:"dry_run"`
	Files      []FileResult   `json:"files" yaml:"files"`
	Failures   []FileFailure  `json:"failures,omitempty" yaml:"failures,omitempty"`
}

// Visited returns the number of regular files processed.
func (r *RunReport) Visited() int {
	return len(r.Files)
}

// ShellWrites returns the number of shell tag sets persisted.
func (r *RunReport) ShellWrites() int {
	n := 0
	for _, f := range r.Files {
		if f.ShellWritten {
			n++
		}
	}
	return n
}

// ShellChanges returns the number of files whose shell tags changed.
func (r *RunReport) ShellChanges() int {
	n := 0
	for _, f := range r.Files {
		if f.ShellChanged {
			n++
		}
	}
	return n
}

// EmbeddedPending returns the number of files whose embedded tags changed.
func (r *RunReport) EmbeddedPending() int {
	n := 0
	for _, f := range r.Files {
		if f.EmbeddedPending {
			n++
		}
	}
	return n
}

// Duration returns the wall time of the run.
func (r *RunReport) Duration() time.Duration {
	return r.FinishedAt.Sub(r.StartedAt)
}
