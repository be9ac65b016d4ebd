package engine

import (
	"context"
	"errors"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/danieljhkim/tagsync/internal/fsops"
	"github.com/danieljhkim/tagsync/internal/logging"
	"github.com/danieljhkim/tagsync/internal/reconcile"
)

// run carries the state of one Run call.
type run struct {
	req    *RunRequest
	skip   SkipFunc
	report *RunReport
	logger zerolog.Logger
}

// Run processes every path in req.Paths.
//
// Algorithm steps:
// 1. Classify the path
// 2. Directory: list children, drop skipped names, recurse in listing order
// 3. Regular file: read both stores, reconcile, write the shell store if changed
// 4. Anything else: UnsupportedFileTypeError
//
// Under FailFast the first error is returned together with the partial
// report. Under KeepGoing failures are recorded in the report and joined
// into the returned error. Cancellation of ctx is checked before each path.
func (e *Engine) Run(ctx context.Context, req *RunRequest) (*RunReport, error) {
	r := &run{
		req:    req,
		skip:   req.Skip,
		logger: logging.FromContext(ctx),
		report: &RunReport{
			StartedAt: e.clock.Now(),
			Mode:      req.Mode,
			DryRun:    req.DryRun,
			Files:     []FileResult{},
		},
	}
	if r.skip == nil {
		r.skip = DefaultSkip
	}

	var err error
	for _, path := range req.Paths {
		if err = e.visit(ctx, r, path); err != nil {
			break
		}
	}
	r.report.FinishedAt = e.clock.Now()

	if err != nil {
		return r.report, err
	}
	if len(r.report.Failures) > 0 {
		errs := make([]error, 0, len(r.report.Failures))
		for _, f := range r.report.Failures {
			errs = append(errs, f.Err())
		}
		return r.report, errors.Join(errs...)
	}
	return r.report, nil
}

// visit processes one path. A non-nil return aborts the run.
func (e *Engine) visit(ctx context.Context, r *run, path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	kind, mode, err := e.fs.Classify(path)
	if err != nil {
		return e.fail(r, path, &PathError{Op: "stat", Path: path, Kind: ErrStat, Err: err})
	}

	switch kind {
	case fsops.KindDirectory:
		children, err := e.fs.ListChildren(path)
		if err != nil {
			return e.fail(r, path, &PathError{Op: "list", Path: path, Kind: ErrList, Err: err})
		}
		for _, name := range children {
			if r.skip(name) {
				r.logger.Debug().Str("dir", path).Str("name", name).Msg("skipping")
				continue
			}
			if err := e.visit(ctx, r, filepath.Join(path, name)); err != nil {
				return err
			}
		}
		return nil

	case fsops.KindRegular:
		if err := e.processFile(r, path); err != nil {
			return e.fail(r, path, err)
		}
		return nil

	default:
		return e.fail(r, path, newUnsupported(path, kind, fsops.DescribeMode(mode)))
	}
}

// fail applies the error policy. It returns err under FailFast and records
// it under KeepGoing.
func (e *Engine) fail(r *run, path string, err error) error {
	if r.req.Policy != KeepGoing {
		return err
	}
	r.logger.Warn().Err(err).Str("path", path).Msg("continuing after failure")
	r.report.Failures = append(r.report.Failures, FileFailure{Path: path, Error: err.Error(), err: err})
	return nil
}

// processFile runs the read, reconcile, write pipeline for one file.
func (e *Engine) processFile(r *run, path string) error {
	announce := r.req.Verbose || r.req.DryRun
	if announce {
		e.observer.File(path)
	}

	shell, err := e.shell.Read(path)
	if err != nil {
		return &PathError{Op: "read shell tags", Path: path, Kind: ErrRead, Err: err}
	}
	embedded := e.embedded.Read(path)

	if r.req.Verbose {
		e.observer.Original(path, shell, embedded)
	}

	res := reconcile.Reconcile(shell, embedded, r.req.Mode)
	result := FileResult{
		Path:             path,
		OriginalShell:    shell,
		OriginalEmbedded: embedded,
		Shell:            res.Shell,
		Embedded:         res.Embedded,
		ShellChanged:     res.ShellChanged,
		EmbeddedChanged:  res.EmbeddedChanged,
	}

	if res.ShellChanged {
		if announce {
			e.observer.NewShell(path, res.Shell)
		}
		if !r.req.DryRun {
			if err := e.shell.Write(path, res.Shell); err != nil {
				return &PathError{Op: "write shell tags", Path: path, Kind: ErrWrite, Err: err}
			}
			result.ShellWritten = true
		}
	}

	if res.EmbeddedChanged {
		if announce {
			e.observer.NewEmbedded(path, res.Embedded)
		}
		result.EmbeddedPending = true
		if !r.req.DryRun {
			r.logger.Debug().Err(ErrEmbeddedReadOnly).Str("path", path).Msg("embedded tags not written")
		}
	}

	r.logger.Debug().
		Str("path", path).
		Bool("shell_changed", res.ShellChanged).
		Bool("embedded_changed", res.EmbeddedChanged).
		Msg("reconciled")

	r.report.Files = append(r.report.Files, result)
	return nil
}
