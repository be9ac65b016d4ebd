// Package fsops provides the filesystem primitives the traversal needs.
//
// All filesystem reads in tagsync go through the FS interface, which
// classifies paths, lists directory children and opens files for the
// embedded metadata reader. The default implementation wraps an afero.Fs,
// so tests can drive the traversal with an in-memory tree.
//
// Key features:
//   - Classification without following symlinks where the backend allows it
//   - Children returned in the backend's listing order
//   - Testable via the FS interface or afero.NewMemMapFs
package fsops

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/afero"
)

// Kind discriminates the file types the traversal cares about.
type Kind int

const (
	// KindOther is anything that is neither a regular file nor a directory.
	KindOther Kind = iota
	// KindRegular is a regular file.
	KindRegular
	// KindDirectory is a directory.
	KindDirectory
)

// String returns a short name for the kind.
func (k Kind) String() string {
	switch k {
	case KindRegular:
		return "regular"
	case KindDirectory:
		return "directory"
	default:
		return "other"
	}
}

// FS provides an abstraction for filesystem reads.
type FS interface {
	// Classify returns the kind of path along with its raw mode.
	Classify(path string) (Kind, os.FileMode, error)

	// ListChildren returns the names of the entries of a directory in
	// listing order.
	ListChildren(dir string) ([]string, error)

	// Open opens a file for reading.
	Open(path string) (io.ReadCloser, error)
}

// AferoFS implements FS on top of an afero filesystem.
type AferoFS struct {
	fs afero.Fs
}

// NewAferoFS creates an FS backed by the given afero filesystem.
func NewAferoFS(fs afero.Fs) *AferoFS {
	return &AferoFS{fs: fs}
}

// NewRealFS creates an FS backed by the operating system.
func NewRealFS() *AferoFS {
	return NewAferoFS(afero.NewOsFs())
}

// Classify returns the kind of path. Symlinks are not followed when the
// backend supports Lstat, so a link is reported as KindOther.
func (f *AferoFS) Classify(path string) (Kind, os.FileMode, error) {
	info, err := f.lstat(path)
	if err != nil {
		return KindOther, 0, err
	}
	mode := info.Mode()
	return KindOf(mode), mode, nil
}

// ListChildren returns entry names without sorting them.
func (f *AferoFS) ListChildren(dir string) ([]string, error) {
	d, err := f.fs.Open(dir)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = d.Close()
	}()

	names, err := d.Readdirnames(-1)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory: %w", err)
	}
	return names, nil
}

// Open opens a file for reading.
func (f *AferoFS) Open(path string) (io.ReadCloser, error) {
	return f.fs.Open(path)
}

func (f *AferoFS) lstat(path string) (os.FileInfo, error) {
	if l, ok := f.fs.(afero.Lstater); ok {
		info, _, err := l.LstatIfPossible(path)
		return info, err
	}
	return f.fs.Stat(path)
}

// KindOf maps a file mode to a Kind.
func KindOf(mode os.FileMode) Kind {
	switch {
	case mode.IsRegular():
		return KindRegular
	case mode.IsDir():
		return KindDirectory
	default:
		return KindOther
	}
}

// DescribeMode names the type bits of a mode for error messages.
func DescribeMode(mode os.FileMode) string {
	switch {
	case mode&os.ModeSymlink != 0:
		return "symlink"
	case mode&os.ModeNamedPipe != 0:
		return "named pipe"
	case mode&os.ModeSocket != 0:
		return "socket"
	case mode&os.ModeCharDevice != 0:
		return "character device"
	case mode&os.ModeDevice != 0:
		return "block device"
	case mode&os.ModeIrregular != 0:
		return "irregular"
	case mode.IsDir():
		return "directory"
	case mode.IsRegular():
		return "regular"
	default:
		return "unknown"
	}
}
