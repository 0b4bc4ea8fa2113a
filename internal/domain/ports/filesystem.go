package ports

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"syscall"
)

// ErrListDirectory wraps failures to list a slides directory
var ErrListDirectory = errors.New("listing directory")

// FileEntry describes one directory entry returned by ListFiles
type FileEntry struct {
	// Name is the base name of the entry
	Name string

	// Path is the entry path joined with the listed directory
	Path string

	// IsDir is true for subdirectories
	IsDir bool
}

// FileSystem abstracts file system operations for testability
type FileSystem interface {
	// ListFiles returns the entries of dir in listing order.
	// A missing dir yields an error matching fs.ErrNotExist.
	ListFiles(dir string) ([]FileEntry, error)

	// ReadAllText reads the whole file as text
	ReadAllText(path string) (string, error)

	// WriteText writes text to path, replacing any existing content
	WriteText(path, text string, perm os.FileMode) error

	// Stat returns file information
	Stat(path string) (os.FileInfo, error)

	// Exists checks if a file or directory exists
	Exists(path string) bool

	// MkdirAll creates a directory and all parent directories
	MkdirAll(path string, perm os.FileMode) error

	// Abs returns an absolute representation of path
	Abs(path string) (string, error)
}

// RealFileSystem implements FileSystem using actual OS operations
type RealFileSystem struct{}

// NewRealFileSystem creates a new real file system implementation
func NewRealFileSystem() FileSystem {
	return &RealFileSystem{}
}

// ListFiles lists a directory in the order the OS returns entries
func (rfs *RealFileSystem) ListFiles(dir string) ([]FileEntry, error) {
	// #nosec G304 - directory paths come from the CLI user
	f, err := os.Open(dir)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	// ReadDir on an open file keeps directory order instead of sorting by name
	dirEntries, err := f.ReadDir(-1)
	if err != nil {
		return nil, fmt.Errorf("reading entries of %s: %w", dir, err)
	}

	entries := make([]FileEntry, 0, len(dirEntries))
	for _, entry := range dirEntries {
		entries = append(entries, FileEntry{
			Name:  entry.Name(),
			Path:  filepath.Join(dir, entry.Name()),
			IsDir: entry.IsDir(),
		})
	}

	return entries, nil
}

// ReadAllText reads the entire file content as text
func (rfs *RealFileSystem) ReadAllText(path string) (string, error) {
	// #nosec G304 - slide paths come from listing a user supplied directory
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// WriteText writes text to a file
func (rfs *RealFileSystem) WriteText(path, text string, perm os.FileMode) error {
	return os.WriteFile(path, []byte(text), perm)
}

// Stat returns file information
func (rfs *RealFileSystem) Stat(path string) (os.FileInfo, error) {
	return os.Stat(path)
}

// Exists checks if a file or directory exists
func (rfs *RealFileSystem) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// MkdirAll creates a directory and all parent directories
func (rfs *RealFileSystem) MkdirAll(path string, perm os.FileMode) error {
	return os.MkdirAll(path, perm)
}

// Abs returns the absolute path
func (rfs *RealFileSystem) Abs(path string) (string, error) {
	return filepath.Abs(path)
}

// IsNotExist reports whether err means the path does not exist,
// including a path whose parent is a regular file
func IsNotExist(err error) bool {
	return errors.Is(err, fs.ErrNotExist) || errors.Is(err, syscall.ENOTDIR)
}
