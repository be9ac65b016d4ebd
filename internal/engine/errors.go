package engine

import (
	"errors"
	"fmt"

	"github.com/danieljhkim/tagsync/internal/fsops"
)

var (
	// ErrStat indicates a path could not be classified.
	ErrStat = errors.New("stat failed")

	// ErrList indicates a directory could not be listed.
	ErrList = errors.New("list failed")

	// ErrRead indicates the shell tags of a file could not be read.
	ErrRead = errors.New("read failed")

	// ErrWrite indicates the shell tags of a file could not be written.
	ErrWrite = errors.New("write failed")

	// ErrUnsupportedFileType indicates a path that is neither a regular
	// file nor a directory.
	ErrUnsupportedFileType = errors.New("unsupported file type")

	// ErrEmbeddedReadOnly marks an embedded tag change that was computed
	// but not persisted: the embedded store has no writer.
	ErrEmbeddedReadOnly = errors.New("embedded metadata is read-only")
)

// PathError records a failed filesystem or tag store operation on a path.
type PathError struct {
	Op   string
	Path string
	Kind error
	Err  error
}

// Error implements the error interface.
func (e *PathError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

// Unwrap exposes the underlying error.
func (e *PathError) Unwrap() error {
	return e.Err
}

// Is matches the sentinel error kind.
func (e *PathError) Is(target error) bool {
	return target == e.Kind
}

// UnsupportedFileTypeError reports a path of a type the traversal cannot
// process, such as a symlink, socket or device.
type UnsupportedFileTypeError struct {
	Path string
	Type string
}

// Error implements the error interface.
func (e *UnsupportedFileTypeError) Error() string {
	return fmt.Sprintf("unable to process file %s: type %s", e.Path, e.Type)
}

// Is matches ErrUnsupportedFileType.
func (e *UnsupportedFileTypeError) Is(target error) bool {
	return target == ErrUnsupportedFileType
}

func newUnsupported(path string, kind fsops.Kind, describe string) error {
	if describe == "" {
		describe = kind.String()
	}
	return &UnsupportedFileTypeError{Path: path, Type: describe}
}
