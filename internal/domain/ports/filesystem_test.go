package ports

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRealFileSystem(t *testing.T) {
	rfs := NewRealFileSystem()
	dir := t.TempDir()

	t.Run("write and read", func(t *testing.T) {
		path := filepath.Join(dir, "01-intro.md")
		require.NoError(t, rfs.WriteText(path, "---\ntitle: x\n---\n", 0600))

		text, err := rfs.ReadAllText(path)
		require.NoError(t, err)
		assert.Equal(t, "---\ntitle: x\n---\n", text)
		assert.True(t, rfs.Exists(path))
	})

	t.Run("list files", func(t *testing.T) {
		sub := filepath.Join(dir, "nested")
		require.NoError(t, rfs.MkdirAll(filepath.Join(sub, "inner"), 0750))
		require.NoError(t, rfs.WriteText(filepath.Join(sub, "a.md"), "a", 0600))

		entries, err := rfs.ListFiles(sub)
		require.NoError(t, err)
		require.Len(t, entries, 2)

		byName := map[string]FileEntry{}
		for _, e := range entries {
			byName[e.Name] = e
		}
		assert.Equal(t, FileEntry{Name: "a.md", Path: filepath.Join(sub, "a.md")}, byName["a.md"])
		assert.True(t, byName["inner"].IsDir)
	})

	t.Run("missing directory", func(t *testing.T) {
		_, err := rfs.ListFiles(filepath.Join(dir, "missing"))
		assert.True(t, IsNotExist(err))

		_, err = rfs.Stat(filepath.Join(dir, "missing"))
		assert.True(t, IsNotExist(err))
		assert.False(t, rfs.Exists(filepath.Join(dir, "missing")))
	})

	t.Run("abs", func(t *testing.T) {
		abs, err := rfs.Abs("relative.md")
		require.NoError(t, err)
		assert.True(t, filepath.IsAbs(abs))
	})
}

func TestIsNotExist(t *testing.T) {
	assert.True(t, IsNotExist(os.ErrNotExist))
	assert.True(t, IsNotExist(fmt.Errorf("wrapped: %w", fs.ErrNotExist)))
	assert.True(t, IsNotExist(&fs.PathError{Op: "stat", Path: "/a/b", Err: syscall.ENOTDIR}))
	assert.False(t, IsNotExist(errors.New("boom")))
	assert.False(t, IsNotExist(nil))
}

func TestIsNotExist_FileAsParent(t *testing.T) {
	file := filepath.Join(t.TempDir(), "01-intro.md")
	require.NoError(t, os.WriteFile(file, []byte("intro"), 0600))

	_, err := NewRealFileSystem().Stat(filepath.Join(file, "sub"))
	require.Error(t, err)
	assert.True(t, IsNotExist(err))
}
