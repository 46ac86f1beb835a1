package splitter

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/mvp-joe/splitcs/internal/extraction"
)

// MemFileSystem is an in-memory FileSystem for tests and dry runs.
type MemFileSystem struct {
	mu    sync.Mutex
	files map[string]string
	dirs  map[string]bool

	// FailWrites makes every WriteAllLines call fail.
	FailWrites bool
}

// NewMemFileSystem creates a MemFileSystem seeded with files (path -> text).
// Parent directories of seeded files exist implicitly.
func NewMemFileSystem(files map[string]string) *MemFileSystem {
	m := &MemFileSystem{
		files: make(map[string]string),
		dirs:  make(map[string]bool),
	}
	for path, text := range files {
		m.files[filepath.Clean(path)] = text
		m.dirs[filepath.Dir(filepath.Clean(path))] = true
	}
	return m
}

func (m *MemFileSystem) ReadAllText(path string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	text, ok := m.files[filepath.Clean(path)]
	if !ok {
		return "", &fs.PathError{Op: "read", Path: path, Err: fs.ErrNotExist}
	}
	return text, nil
}

func (m *MemFileSystem) ReadAllLines(path string) ([]string, error) {
	text, err := m.ReadAllText(path)
	if err != nil {
		return nil, err
	}
	return extraction.SplitLines(text), nil
}

func (m *MemFileSystem) WriteAllLines(path string, lines []string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailWrites {
		return fmt.Errorf("write %s: %w", path, fs.ErrPermission)
	}
	dir := filepath.Dir(filepath.Clean(path))
	if !m.dirs[dir] {
		return &fs.PathError{Op: "write", Path: path, Err: fs.ErrNotExist}
	}
	var sb strings.Builder
	for _, line := range lines {
		sb.WriteString(line)
		sb.WriteByte('\n')
	}
	m.files[filepath.Clean(path)] = sb.String()
	return nil
}

func (m *MemFileSystem) DirectoryExists(path string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.dirs[filepath.Clean(path)]
}

func (m *MemFileSystem) CreateDirectory(path string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.dirs[filepath.Clean(path)] = true
	return nil
}

func (m *MemFileSystem) FileSize(path string) (int64, error) {
	text, err := m.ReadAllText(path)
	if err != nil {
		return 0, err
	}
	return int64(len(text)), nil
}

// Files returns the sorted paths of every stored file.
func (m *MemFileSystem) Files() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	paths := make([]string, 0, len(m.files))
	for p := range m.files {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}
