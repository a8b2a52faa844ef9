package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSave(t *testing.T) {
	disk, err := NewDisk(t.TempDir())
	require.NoError(t, err)

	rel, err := disk.Save(strings.NewReader("image-bytes"), "Photo.PNG")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(rel, "uploads/"))
	require.True(t, strings.HasSuffix(rel, ".png")) // extension lowercased

	name := strings.TrimPrefix(rel, "uploads/")
	b, err := os.ReadFile(filepath.Join(disk.Root, name))
	require.NoError(t, err)
	require.Equal(t, "image-bytes", string(b))
}

func TestSaveGeneratesUniqueNames(t *testing.T) {
	disk, err := NewDisk(t.TempDir())
	require.NoError(t, err)

	a, err := disk.Save(strings.NewReader("a"), "x.jpg")
	require.NoError(t, err)
	b, err := disk.Save(strings.NewReader("b"), "x.jpg")
	require.NoError(t, err)
	require.NotEqual(t, a, b)
}

func TestSaveWithoutExtension(t *testing.T) {
	disk, err := NewDisk(t.TempDir())
	require.NoError(t, err)

	rel, err := disk.Save(strings.NewReader("raw"), "blob")
	require.NoError(t, err)
	require.NotContains(t, strings.TrimPrefix(rel, "uploads/"), ".")
}

func TestRemove(t *testing.T) {
	disk, err := NewDisk(t.TempDir())
	require.NoError(t, err)

	rel, err := disk.Save(strings.NewReader("bytes"), "x.jpg")
	require.NoError(t, err)
	require.NoError(t, disk.Remove(rel))

	entries, err := os.ReadDir(disk.Root)
	require.NoError(t, err)
	require.Empty(t, entries)
}

func TestNewDiskCreatesRoot(t *testing.T) {
	root := filepath.Join(t.TempDir(), "nested", "uploads")
	_, err := NewDisk(root)
	require.NoError(t, err)

	info, err := os.Stat(root)
	require.NoError(t, err)
	require.True(t, info.IsDir())
}
