package fileutils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileExists(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "f.txt")

	assert.False(t, FileExists(path))
	require.NoError(t, os.WriteFile(path, []byte("x"), 0644))
	assert.True(t, FileExists(path))
	assert.False(t, FileExists(dir), "directories are not files")
}

func TestReadTextFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "statement.csv")
	require.NoError(t, os.WriteFile(path, []byte("a,b\n"), 0644))

	text, err := ReadTextFile(path)
	require.NoError(t, err)
	assert.Equal(t, "a,b\n", text)

	_, err = ReadTextFile(filepath.Join(dir, "missing.csv"))
	assert.Error(t, err)
}

func TestWriteFileCreatesParents(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "deep", "out.csv")

	require.NoError(t, WriteFile(path, []byte("data"), 0644))

	text, err := ReadTextFile(path)
	require.NoError(t, err)
	assert.Equal(t, "data", text)
}
