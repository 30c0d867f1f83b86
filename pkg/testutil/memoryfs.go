package testutil

import (
	"io/fs"
	"path/filepath"
	"sync"

	"github.com/arthur-debert/itergen/pkg/filesystem"
	"github.com/arthur-debert/itergen/pkg/types"
)

// MemoryFS is an in-memory types.FS that can be told to fail on chosen
// paths and counts reads and writes.
type MemoryFS struct {
	types.FS

	mu         sync.RWMutex
	errorPaths map[string]error
	readCount  int
	writeCount int
}

// NewMemoryFS creates an empty filesystem
func NewMemoryFS() *MemoryFS {
	return &MemoryFS{
		FS:         filesystem.NewMemory(),
		errorPaths: make(map[string]error),
	}
}

// WithError configures the filesystem to return an error for a specific path
func (m *MemoryFS) WithError(path string, err error) *MemoryFS {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.errorPaths[filepath.Clean(path)] = err
	return m
}

// Stats returns filesystem operation statistics
func (m *MemoryFS) Stats() (reads, writes int) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.readCount, m.writeCount
}

func (m *MemoryFS) injected(path string) error {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.errorPaths[filepath.Clean(path)]
}

func (m *MemoryFS) count(write bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if write {
		m.writeCount++
	} else {
		m.readCount++
	}
}

func (m *MemoryFS) ReadFile(name string) ([]byte, error) {
	m.count(false)
	if err := m.injected(name); err != nil {
		return nil, err
	}
	return m.FS.ReadFile(name)
}

func (m *MemoryFS) WriteFile(name string, data []byte, perm fs.FileMode) error {
	m.count(true)
	if err := m.injected(name); err != nil {
		return err
	}
	return m.FS.WriteFile(name, data, perm)
}

func (m *MemoryFS) MkdirAll(path string, perm fs.FileMode) error {
	if err := m.injected(path); err != nil {
		return err
	}
	return m.FS.MkdirAll(path, perm)
}
