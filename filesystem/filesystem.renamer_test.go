package filesystem

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func exists(t *testing.T, path string) bool {
	t.Helper()
	_, err := os.Stat(path)
	if err == nil {
		return true
	}
	require.True(t, os.IsNotExist(err))
	return false
}

func TestFileRenamer(t *testing.T) {
	var renamer FileRenamer

	t.Run("simple file", func(t *testing.T) {
		dir := textDataDir(t)
		src := filepath.Join(dir, "hello.txt")
		dst := filepath.Join(dir, "hi.txt")
		require.NoError(t, renamer.Rename(src, dst, false))
		assert.True(t, exists(t, dst))
	})

	t.Run("simple directory", func(t *testing.T) {
		dir := nestedDataDir(t)
		src := filepath.Join(dir, "first")
		dst := filepath.Join(dir, "fourth")
		require.NoError(t, renamer.Rename(src, dst, false))
		assert.True(t, exists(t, dst))
	})

	t.Run("source doesn't exist", func(t *testing.T) {
		dir := textDataDir(t)
		src := filepath.Join(dir, "goodbye.txt")
		dst := filepath.Join(dir, "bye.md")
		err := renamer.Rename(src, dst, false)
		assert.Error(t, err)
	})

	t.Run("destination file exists", func(t *testing.T) {
		dir := textDataDir(t)
		src := filepath.Join(dir, "hello.txt")
		dst := filepath.Join(dir, "markdown.md")
		err := renamer.Rename(src, dst, false)
		assert.Error(t, err)
	})

	t.Run("destination is directory", func(t *testing.T) {
		dir := nestedDataDir(t)
		src := filepath.Join(dir, "level-1.file")
		dst := filepath.Join(dir, "first")
		err := renamer.Rename(src, dst, false)
		assert.Error(t, err)
	})

	t.Run("destination contains missing subdirectory", func(t *testing.T) {
		dir := textDataDir(t)
		src := filepath.Join(dir, "hello.txt")
		dst := filepath.Join(dir, "nonexistent", "markdown.md")
		err := renamer.Rename(src, dst, false)
		assert.Error(t, err)
	})

	t.Run("override destination file", func(t *testing.T) {
		dir := textDataDir(t)
		src := filepath.Join(dir, "hello.txt")
		dst := filepath.Join(dir, "markdown.md")
		require.NoError(t, renamer.Rename(src, dst, true))
		assert.False(t, exists(t, src))
		assert.True(t, exists(t, dst))
	})
}

func TestFileMover(t *testing.T) {
	var mover FileMover

	t.Run("simple file", func(t *testing.T) {
		dir := textDataDir(t)
		src := filepath.Join(dir, "hello.txt")
		dst := filepath.Join(dir, "hi.txt")
		require.NoError(t, mover.Rename(src, dst, false))
		assert.True(t, exists(t, dst))
		assert.False(t, exists(t, src))
	})

	t.Run("source doesn't exist", func(t *testing.T) {
		dir := textDataDir(t)
		src := filepath.Join(dir, "goodbye.txt")
		dst := filepath.Join(dir, "bye.md")
		assert.Error(t, mover.Rename(src, dst, false))
	})

	t.Run("destination file exists", func(t *testing.T) {
		dir := textDataDir(t)
		src := filepath.Join(dir, "hello.txt")
		dst := filepath.Join(dir, "markdown.md")
		assert.Error(t, mover.Rename(src, dst, false))
	})

	t.Run("destination is directory", func(t *testing.T) {
		dir := nestedDataDir(t)
		src := filepath.Join(dir, "level-1.file")
		dst := filepath.Join(dir, "first")
		assert.Error(t, mover.Rename(src, dst, false))
	})

	t.Run("creates single missing directory", func(t *testing.T) {
		dir := nestedDataDir(t)
		src := filepath.Join(dir, "level-1.file")
		nonexistentDir := filepath.Join(dir, "nonexistent")
		dst := filepath.Join(nonexistentDir, "level-1.file")
		require.NoError(t, mover.Rename(src, dst, false))
		assert.True(t, exists(t, nonexistentDir))
		assert.True(t, exists(t, dst))
	})

	t.Run("creates multiple missing directories", func(t *testing.T) {
		dir := nestedDataDir(t)
		src := filepath.Join(dir, "level-1.file")
		nonexistentDir := filepath.Join(dir, "a", "b", "c")
		dst := filepath.Join(nonexistentDir, "level-1.file")
		require.NoError(t, mover.Rename(src, dst, false))
		assert.True(t, exists(t, nonexistentDir))
		assert.True(t, exists(t, dst))
	})

	t.Run("reuses already existing directory", func(t *testing.T) {
		dir := nestedDataDir(t)
		src := filepath.Join(dir, "level-1.file")
		existingDir := filepath.Join(dir, "second")
		dst := filepath.Join(existingDir, "level-1.file")
		require.NoError(t, mover.Rename(src, dst, false))
		assert.True(t, exists(t, existingDir))
		assert.True(t, exists(t, dst))
	})

	t.Run("override destination file", func(t *testing.T) {
		dir := textDataDir(t)
		src := filepath.Join(dir, "hello.txt")
		dst := filepath.Join(dir, "markdown.md")
		require.NoError(t, mover.Rename(src, dst, true))
		assert.False(t, exists(t, src))
		assert.True(t, exists(t, dst))
	})
}

func TestDryRunRenamer(t *testing.T) {
	t.Run("simple file doesn't touch disk", func(t *testing.T) {
		dir := textDataDir(t)
		src := filepath.Join(dir, "hello.txt")
		dst := filepath.Join(dir, "hi.txt")
		renamer := NewDryRunRenamer()
		require.NoError(t, renamer.Rename(src, dst, false))
		assert.False(t, exists(t, dst))
	})

	t.Run("source doesn't exist", func(t *testing.T) {
		dir := textDataDir(t)
		src := filepath.Join(dir, "goodbye.txt")
		dst := filepath.Join(dir, "bye.md")
		renamer := NewDryRunRenamer()
		assert.Error(t, renamer.Rename(src, dst, false))
	})

	t.Run("source exists from previous run", func(t *testing.T) {
		dir := textDataDir(t)
		renamer := NewDryRunRenamer()
		src := filepath.Join(dir, "hello.txt")
		dst := filepath.Join(dir, "bye.md")
		require.NoError(t, renamer.Rename(src, dst, false))

		src = dst
		dst = filepath.Join(dir, "hi.txt")
		require.NoError(t, renamer.Rename(src, dst, false))
	})

	t.Run("transient state: A->B then B->A succeeds", func(t *testing.T) {
		dir := textDataDir(t)
		renamer := NewDryRunRenamer()
		src := filepath.Join(dir, "hello.txt")
		dst := filepath.Join(dir, "bye.md")
		require.NoError(t, renamer.Rename(src, dst, false))

		src = dst
		dst = filepath.Join(dir, "hello.txt")
		require.NoError(t, renamer.Rename(src, dst, false))
	})

	t.Run("destination file exists", func(t *testing.T) {
		dir := textDataDir(t)
		src := filepath.Join(dir, "hello.txt")
		dst := filepath.Join(dir, "markdown.md")
		renamer := NewDryRunRenamer()
		assert.Error(t, renamer.Rename(src, dst, false))
	})

	t.Run("destination exists from previous run", func(t *testing.T) {
		dir := textDataDir(t)
		renamer := NewDryRunRenamer()
		src := filepath.Join(dir, "hello.txt")
		dst := filepath.Join(dir, "goodbye.txt")
		require.NoError(t, renamer.Rename(src, dst, false))

		src = filepath.Join(dir, "markdown.md")
		assert.Error(t, renamer.Rename(src, dst, false))
	})

	t.Run("destination is directory", func(t *testing.T) {
		dir := nestedDataDir(t)
		src := filepath.Join(dir, "level-1.file")
		dst := filepath.Join(dir, "first")
		renamer := NewDryRunRenamer()
		assert.Error(t, renamer.Rename(src, dst, false))
	})

	t.Run("override destination file leaves both visible", func(t *testing.T) {
		dir := textDataDir(t)
		src := filepath.Join(dir, "hello.txt")
		dst := filepath.Join(dir, "markdown.md")
		renamer := NewDryRunRenamer()
		require.NoError(t, renamer.Rename(src, dst, true))
		assert.True(t, exists(t, src))
		assert.True(t, exists(t, dst))
	})
}
