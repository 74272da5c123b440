package files

import (
	"errors"
	"os"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// MockFileSystem implements FileSystem using an in-memory filesystem
type MockFileSystem struct {
	fs afero.Fs
	// Custom function overrides for testing specific scenarios
	MkdirAllFunc func(path string, perm os.FileMode) error
	OpenFileFunc func(name string, flag int, perm os.FileMode) (afero.File, error)
	StatFunc     func(name string) (os.FileInfo, error)
}

func newMockFileSystem() *MockFileSystem {
	return &MockFileSystem{fs: afero.NewMemMapFs()}
}

func (m *MockFileSystem) MkdirAll(path string, perm os.FileMode) error {
	if m.MkdirAllFunc != nil {
		return m.MkdirAllFunc(path, perm)
	}
	return m.fs.MkdirAll(path, perm)
}

func (m *MockFileSystem) OpenFile(name string, flag int, perm os.FileMode) (afero.File, error) {
	if m.OpenFileFunc != nil {
		return m.OpenFileFunc(name, flag, perm)
	}
	return m.fs.OpenFile(name, flag, perm)
}

func (m *MockFileSystem) Stat(name string) (os.FileInfo, error) {
	if m.StatFunc != nil {
		return m.StatFunc(name)
	}
	return m.fs.Stat(name)
}

func TestFileExists(t *testing.T) {
	t.Run("file exists with non-existing file", func(t *testing.T) {
		SetFileSystem(newMockFileSystem())
		defer ResetDependencies()

		assert.False(t, FileExists("/non/existing/file"))
	})

	t.Run("file exists with existing file", func(t *testing.T) {
		mockFS := newMockFileSystem()
		SetFileSystem(mockFS)
		defer ResetDependencies()

		require.NoError(t, afero.WriteFile(mockFS.fs, "/test_file", []byte("x"), 0o644))
		assert.True(t, FileExists("/test_file"))
	})

	t.Run("file exists with empty path", func(t *testing.T) {
		SetFileSystem(newMockFileSystem())
		defer ResetDependencies()

		assert.False(t, FileExists(""))
	})

	t.Run("file exists with stat error", func(t *testing.T) {
		mockFS := newMockFileSystem()
		mockFS.StatFunc = func(name string) (os.FileInfo, error) {
			return nil, errors.New("permission denied")
		}
		SetFileSystem(mockFS)
		defer ResetDependencies()

		assert.False(t, FileExists("/test_file"))
	})
}

func TestWriteFile(t *testing.T) {
	t.Run("creates parent directories", func(t *testing.T) {
		mockFS := newMockFileSystem()
		SetFileSystem(mockFS)
		defer ResetDependencies()

		require.NoError(t, WriteFile("/out/site/index.html", []byte("<h1>hi</h1>"), false))

		data, err := afero.ReadFile(mockFS.fs, "/out/site/index.html")
		require.NoError(t, err)
		assert.Equal(t, "<h1>hi</h1>", string(data))
	})

	t.Run("refuses to replace without overwrite", func(t *testing.T) {
		mockFS := newMockFileSystem()
		SetFileSystem(mockFS)
		defer ResetDependencies()

		require.NoError(t, afero.WriteFile(mockFS.fs, "/index.html", []byte("old"), 0o644))

		err := WriteFile("/index.html", []byte("new"), false)
		assert.ErrorIs(t, err, ErrExists)

		data, err := afero.ReadFile(mockFS.fs, "/index.html")
		require.NoError(t, err)
		assert.Equal(t, "old", string(data))
	})

	t.Run("replaces with overwrite", func(t *testing.T) {
		mockFS := newMockFileSystem()
		SetFileSystem(mockFS)
		defer ResetDependencies()

		require.NoError(t, afero.WriteFile(mockFS.fs, "/index.html", []byte("old content"), 0o644))
		require.NoError(t, WriteFile("/index.html", []byte("new"), true))

		data, err := afero.ReadFile(mockFS.fs, "/index.html")
		require.NoError(t, err)
		assert.Equal(t, "new", string(data))
	})

	t.Run("empty path", func(t *testing.T) {
		assert.Error(t, WriteFile("", []byte("x"), true))
	})

	t.Run("mkdir failure", func(t *testing.T) {
		mockFS := newMockFileSystem()
		mockFS.MkdirAllFunc = func(path string, perm os.FileMode) error {
			return errors.New("read-only filesystem")
		}
		SetFileSystem(mockFS)
		defer ResetDependencies()

		err := WriteFile("/out/index.html", []byte("x"), true)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "read-only filesystem")
	})

	t.Run("open failure", func(t *testing.T) {
		mockFS := newMockFileSystem()
		mockFS.OpenFileFunc = func(name string, flag int, perm os.FileMode) (afero.File, error) {
			return nil, errors.New("disk full")
		}
		SetFileSystem(mockFS)
		defer ResetDependencies()

		err := WriteFile("/index.html", []byte("x"), true)
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrExists)
		assert.Contains(t, err.Error(), "disk full")
	})
}
