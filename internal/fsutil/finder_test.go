package fsutil

import (
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindFilesByExtension(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "shared"), 0755))
	for _, name := range []string{"main.sdl", "shared/types.sdl", "README.md"} {
		require.NoError(t, os.WriteFile(filepath.Join(root, name), []byte("x"), 0644))
	}

	files, err := FindFilesByExtension(root, ".sdl")
	require.NoError(t, err)
	sort.Strings(files)

	assert.Equal(t, []string{
		filepath.Join(root, "main.sdl"),
		filepath.Join(root, "shared", "types.sdl"),
	}, files)
}

func TestOS_Exists(t *testing.T) {
	root := t.TempDir()
	file := filepath.Join(root, "a.sdl")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0644))

	assert.True(t, OS{}.Exists(file))
	assert.False(t, OS{}.Exists(root), "directories are not files")
	assert.False(t, OS{}.Exists(filepath.Join(root, "missing.sdl")))
}

func TestIsWithin(t *testing.T) {
	root := filepath.FromSlash("/project")
	assert.True(t, IsWithin(root, filepath.FromSlash("/project/a.sdl")))
	assert.True(t, IsWithin(root, filepath.FromSlash("/project/sub/b.sdl")))
	assert.True(t, IsWithin(root, root))
	assert.False(t, IsWithin(root, filepath.FromSlash("/etc/passwd")))
	assert.False(t, IsWithin(root, filepath.FromSlash("/project-other/a.sdl")))
	assert.True(t, IsWithin(root, filepath.FromSlash("/project/..hidden/c.sdl")))
}
