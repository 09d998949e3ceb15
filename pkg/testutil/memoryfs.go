package testutil

import (
	"io/fs"
	"sort"
	"strings"
	"sync"
	"time"
)

// MemoryFS implements types.FS with in-memory storage. Paths are treated as
// opaque strings, exactly as the matching engine sees them; no cleaning or
// normalization happens, so "x_y.foo" and "./x_y.foo" are distinct entries.
type MemoryFS struct {
	mu    sync.RWMutex
	files map[string][]byte

	// errorPaths injects a stat error for specific paths.
	errorPaths map[string]error
}

// NewMemoryFS creates a new in-memory filesystem
func NewMemoryFS() *MemoryFS {
	return &MemoryFS{
		files:      make(map[string][]byte),
		errorPaths: make(map[string]error),
	}
}

// NewMemoryFSWith creates an in-memory filesystem pre-populated with empty
// files at the given paths.
func NewMemoryFSWith(paths ...string) *MemoryFS {
	m := NewMemoryFS()
	for _, p := range paths {
		m.AddFile(p, nil)
	}
	return m
}

// AddFile registers a file with the given content.
func (m *MemoryFS) AddFile(path string, content []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.files[path] = content
}

// RemoveFile deletes a file.
func (m *MemoryFS) RemoveFile(path string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.files, path)
}

// InjectError makes Stat and ReadFile fail with err for path.
func (m *MemoryFS) InjectError(path string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.errorPaths[path] = err
}

func (m *MemoryFS) lookup(op, path string) ([]byte, error) {
	if err, ok := m.errorPaths[path]; ok {
		return nil, err
	}
	content, ok := m.files[path]
	if !ok {
		return nil, &fs.PathError{Op: op, Path: path, Err: fs.ErrNotExist}
	}
	return content, nil
}

func (m *MemoryFS) Stat(name string) (fs.FileInfo, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	content, err := m.lookup("stat", name)
	if err != nil {
		return nil, err
	}
	return &memFileInfo{name: name, size: int64(len(content))}, nil
}

func (m *MemoryFS) Lstat(name string) (fs.FileInfo, error) {
	return m.Stat(name)
}

func (m *MemoryFS) ReadFile(name string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	content, err := m.lookup("read", name)
	if err != nil {
		return nil, err
	}
	out := make([]byte, len(content))
	copy(out, content)
	return out, nil
}

func (m *MemoryFS) ReadDir(name string) ([]fs.DirEntry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	prefix := strings.TrimSuffix(name, "/") + "/"
	seen := make(map[string]bool)
	var entries []fs.DirEntry
	for path, content := range m.files {
		if !strings.HasPrefix(path, prefix) {
			continue
		}
		rest := strings.TrimPrefix(path, prefix)
		base, _, nested := strings.Cut(rest, "/")
		if seen[base] {
			continue
		}
		seen[base] = true
		entries = append(entries, &memDirEntry{
			info: memFileInfo{name: base, size: int64(len(content)), dir: nested},
		})
	}
	if len(entries) == 0 {
		return nil, &fs.PathError{Op: "readdir", Path: name, Err: fs.ErrNotExist}
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })
	return entries, nil
}

// memFileInfo is a minimal fs.FileInfo for in-memory entries.
type memFileInfo struct {
	name string
	size int64
	dir  bool
}

func (fi *memFileInfo) Name() string { return fi.name }
func (fi *memFileInfo) Size() int64  { return fi.size }
func (fi *memFileInfo) Mode() fs.FileMode {
	if fi.dir {
		return fs.ModeDir | 0755
	}
	return 0644
}
func (fi *memFileInfo) ModTime() time.Time { return time.Time{} }
func (fi *memFileInfo) IsDir() bool        { return fi.dir }
func (fi *memFileInfo) Sys() interface{}   { return nil }

type memDirEntry struct {
	info memFileInfo
}

func (e *memDirEntry) Name() string               { return e.info.name }
func (e *memDirEntry) IsDir() bool                { return e.info.dir }
func (e *memDirEntry) Type() fs.FileMode          { return e.info.Mode() }
func (e *memDirEntry) Info() (fs.FileInfo, error) { return &e.info, nil }
