package builders

import (
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/fredcamaral/slidedeck/internal/domain/ports"
)

// MemFileSystem is an in-memory ports.FileSystem.
// Directory listings return entries in the order files were added.
type MemFileSystem struct {
	mu         sync.Mutex
	files      map[string]string
	order      []string
	dirs       map[string]bool
	readErrors map[string]error
	listErrors map[string]error
}

// NewMemFileSystem creates an empty in-memory file system with a root "/" directory
func NewMemFileSystem() *MemFileSystem {
	return &MemFileSystem{
		files:      make(map[string]string),
		dirs:       map[string]bool{"/": true},
		readErrors: make(map[string]error),
		listErrors: make(map[string]error),
	}
}

// WithFile adds a file, creating parent directories
func (m *MemFileSystem) WithFile(name, content string) *MemFileSystem {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.addFile(clean(name), content)
	return m
}

// WithDir adds an empty directory
func (m *MemFileSystem) WithDir(name string) *MemFileSystem {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.addDir(clean(name))
	return m
}

// WithReadError makes reads of name fail with err
func (m *MemFileSystem) WithReadError(name string, err error) *MemFileSystem {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.readErrors[clean(name)] = err
	return m
}

// WithListError makes listing dir fail with err
func (m *MemFileSystem) WithListError(dir string, err error) *MemFileSystem {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.listErrors[clean(dir)] = err
	return m
}

// Content returns a file's content
func (m *MemFileSystem) Content(name string) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	content, ok := m.files[clean(name)]
	return content, ok
}

// ListFiles implements ports.FileSystem
func (m *MemFileSystem) ListFiles(dir string) ([]ports.FileEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	dir = clean(dir)
	if err, ok := m.listErrors[dir]; ok {
		return nil, err
	}
	if !m.dirs[dir] {
		return nil, &fs.PathError{Op: "open", Path: dir, Err: fs.ErrNotExist}
	}

	var entries []ports.FileEntry
	for _, name := range m.order {
		if path.Dir(name) != dir {
			continue
		}
		entries = append(entries, ports.FileEntry{
			Name:  path.Base(name),
			Path:  name,
			IsDir: m.dirs[name],
		})
	}

	return entries, nil
}

// ReadAllText implements ports.FileSystem
func (m *MemFileSystem) ReadAllText(name string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	name = clean(name)
	if err, ok := m.readErrors[name]; ok {
		return "", err
	}
	content, ok := m.files[name]
	if !ok {
		return "", &fs.PathError{Op: "open", Path: name, Err: fs.ErrNotExist}
	}
	return content, nil
}

// WriteText implements ports.FileSystem
func (m *MemFileSystem) WriteText(name, text string, perm os.FileMode) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	name = clean(name)
	if !m.dirs[path.Dir(name)] {
		return &fs.PathError{Op: "open", Path: name, Err: fs.ErrNotExist}
	}
	m.addFile(name, text)
	return nil
}

// Stat implements ports.FileSystem
func (m *MemFileSystem) Stat(name string) (os.FileInfo, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	name = clean(name)
	if m.dirs[name] {
		return memFileInfo{name: path.Base(name), dir: true}, nil
	}
	if content, ok := m.files[name]; ok {
		return memFileInfo{name: path.Base(name), size: int64(len(content))}, nil
	}
	return nil, &fs.PathError{Op: "stat", Path: name, Err: fs.ErrNotExist}
}

// Exists implements ports.FileSystem
func (m *MemFileSystem) Exists(name string) bool {
	_, err := m.Stat(name)
	return err == nil
}

// MkdirAll implements ports.FileSystem
func (m *MemFileSystem) MkdirAll(name string, perm os.FileMode) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.addDir(clean(name))
	return nil
}

// Abs implements ports.FileSystem
func (m *MemFileSystem) Abs(name string) (string, error) {
	return clean(name), nil
}

// Paths returns all file paths sorted
func (m *MemFileSystem) Paths() []string {
	m.mu.Lock()
	defer m.mu.Unlock()

	paths := make([]string, 0, len(m.files))
	for name := range m.files {
		paths = append(paths, name)
	}
	sort.Strings(paths)
	return paths
}

func (m *MemFileSystem) addFile(name, content string) {
	m.addDir(path.Dir(name))
	if _, exists := m.files[name]; !exists {
		m.order = append(m.order, name)
	}
	m.files[name] = content
}

func (m *MemFileSystem) addDir(name string) {
	for name != "/" && !m.dirs[name] {
		m.dirs[name] = true
		m.order = append(m.order, name)
		name = path.Dir(name)
	}
}

// clean makes name absolute and slash separated
func clean(name string) string {
	name = strings.ReplaceAll(name, `\`, "/")
	if !strings.HasPrefix(name, "/") {
		name = "/" + name
	}
	return path.Clean(name)
}

type memFileInfo struct {
	name string
	size int64
	dir  bool
}

func (i memFileInfo) Name() string { return i.name }
func (i memFileInfo) Size() int64  { return i.size }
func (i memFileInfo) Mode() os.FileMode {
	if i.dir {
		return fs.ModeDir | 0750
	}
	return 0600
}
func (i memFileInfo) ModTime() time.Time { return time.Time{} }
func (i memFileInfo) IsDir() bool        { return i.dir }
func (i memFileInfo) Sys() interface{}   { return nil }

var _ ports.FileSystem = (*MemFileSystem)(nil)
