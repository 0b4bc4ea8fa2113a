// Package mocks holds testify mocks for the domain ports.
package mocks

import (
	"os"

	"github.com/stretchr/testify/mock"

	"github.com/fredcamaral/slidedeck/internal/domain/entities"
	"github.com/fredcamaral/slidedeck/internal/domain/ports"
)

// FileSystem is a mock of ports.FileSystem
type FileSystem struct {
	mock.Mock
}

func (m *FileSystem) ListFiles(dir string) ([]ports.FileEntry, error) {
	args := m.Called(dir)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]ports.FileEntry), args.Error(1)
}

func (m *FileSystem) ReadAllText(path string) (string, error) {
	args := m.Called(path)
	return args.String(0), args.Error(1)
}

func (m *FileSystem) WriteText(path, text string, perm os.FileMode) error {
	args := m.Called(path, text, perm)
	return args.Error(0)
}

func (m *FileSystem) Stat(path string) (os.FileInfo, error) {
	args := m.Called(path)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(os.FileInfo), args.Error(1)
}

func (m *FileSystem) Exists(path string) bool {
	args := m.Called(path)
	return args.Bool(0)
}

func (m *FileSystem) MkdirAll(path string, perm os.FileMode) error {
	args := m.Called(path, perm)
	return args.Error(0)
}

func (m *FileSystem) Abs(path string) (string, error) {
	args := m.Called(path)
	return args.String(0), args.Error(1)
}

// FrontMatterParser is a mock of ports.FrontMatterParser
type FrontMatterParser struct {
	mock.Mock
}

func (m *FrontMatterParser) Parse(text string) entities.Document {
	args := m.Called(text)
	return args.Get(0).(entities.Document)
}

var (
	_ ports.FileSystem        = (*FileSystem)(nil)
	_ ports.FrontMatterParser = (*FrontMatterParser)(nil)
)
