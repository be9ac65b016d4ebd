package shelltags

import (
	"errors"
	"path/filepath"
	"sync"

	"github.com/danieljhkim/tagsync/internal/tagset"
)

// ErrUnsupportedPlatform is returned by XattrStore on systems without
// extended attribute support.
var ErrUnsupportedPlatform = errors.New("extended attributes not supported on this platform")

// Store provides access to a file's shell tags.
type Store interface {
	// Read returns the shell tags of path. A missing attribute yields an
	// empty set.
	Read(path string) (tagset.TagSet, error)

	// Write replaces the shell tags of path.
	Write(path string, tags tagset.TagSet) error
}

// MemoryStore implements Store in memory and records write calls.
type MemoryStore struct {
	mu     sync.Mutex
	tags   map[string]tagset.TagSet
	writes []string
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{tags: make(map[string]tagset.TagSet)}
}

// Set seeds the tags of path without counting as a write.
func (m *MemoryStore) Set(path string, tags tagset.TagSet) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tags[filepath.Clean(path)] = tags.Clone()
}

// Read returns the stored tags of path.
func (m *MemoryStore) Read(path string) (tagset.TagSet, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.tags[filepath.Clean(path)].Clone(), nil
}

// Write stores tags for path and records the call.
func (m *MemoryStore) Write(path string, tags tagset.TagSet) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	p := filepath.Clean(path)
	m.tags[p] = tags.Clone()
	m.writes = append(m.writes, p)
	return nil
}

// Writes returns the paths passed to Write, in call order.
func (m *MemoryStore) Writes() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.writes...)
}
