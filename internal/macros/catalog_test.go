package macros

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeMacros(t *testing.T, dir string, files ...string) {
	t.Helper()
	for _, f := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, f), []byte(`{}`), 0o644))
	}
}

func TestList(t *testing.T) {
	dir := t.TempDir()
	writeMacros(t, dir, "volume-up.json", "mute.json", "notes.txt", ".json", "Obs.json")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "nested.json"), 0o755))

	got, err := NewCatalog(dir).List()
	require.NoError(t, err)
	assert.Equal(t, []string{"Obs", "mute", "volume-up"}, got)
}

func TestList_MissingDirectory(t *testing.T) {
	got, err := NewCatalog(filepath.Join(t.TempDir(), "missing")).List()
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestComplete(t *testing.T) {
	dir := t.TempDir()
	writeMacros(t, dir, "mute.json", "music.json", "obs-scene.json")
	c := NewCatalog(dir)

	got, err := c.Complete("MU")
	require.NoError(t, err)
	assert.Equal(t, []string{"music", "mute"}, got)

	got, err = c.Complete("")
	require.NoError(t, err)
	assert.Len(t, got, 3)

	assert.Equal(t, dir, c.Dir())
}

func TestFilter(t *testing.T) {
	names := []string{"Music", "mute", "obs"}
	assert.Equal(t, []string{"Music", "mute"}, Filter(names, " mu"))
	assert.Equal(t, names, Filter(names, ""))
	assert.Empty(t, Filter(names, "x"))
	assert.Empty(t, Filter(nil, ""))
}
