package browser

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOSListerOrderAndSizes(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "zdir"), 0o755))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "adir"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "z.txt"), []byte("12345"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), []byte("1"), 0o644))

	items, err := osLister{}.List(dir)
	require.NoError(t, err)
	require.Len(t, items, 4)

	names := make([]string, len(items))
	for i, it := range items {
		names[i] = it.Name
	}
	assert.Equal(t, []string{"adir", "zdir", "a.txt", "z.txt"}, names)

	assert.True(t, items[0].Dir)
	assert.False(t, items[2].Dir)
	assert.Equal(t, int64(1), items[2].Size)
	assert.Equal(t, int64(5), items[3].Size)
	assert.Equal(t, filepath.Join(dir, "a.txt"), items[2].Path)
}

func TestOSListerMissingDirectory(t *testing.T) {
	_, err := osLister{}.List(filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
}

func TestSelection(t *testing.T) {
	s := newSelection()
	assert.Zero(t, s.Len())

	s.Add("/a")
	s.Add("/b")
	s.Add("/a") // duplicate adds are ignored
	assert.Equal(t, []string{"/a", "/b"}, s.Paths())
	assert.True(t, s.Has("/a"))

	s.Toggle("/a")
	assert.False(t, s.Has("/a"))
	assert.Equal(t, []string{"/b"}, s.Paths())

	s.Toggle("/c")
	assert.Equal(t, []string{"/b", "/c"}, s.Paths())

	s.Clear()
	assert.Zero(t, s.Len())
	assert.Empty(t, s.Paths())
}
