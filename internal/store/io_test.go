package store_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"makeabet/internal/store"
)

func TestWriteFile_CreatesParentsAndReplaces(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a", "b", "file.txt")

	require.NoError(t, store.WriteFile(path, []byte("one"), 0o600))
	require.NoError(t, store.WriteFile(path, []byte("two"), 0o600))

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "two", string(b))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp files must not be left behind")
}

func TestJSON_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.json")
	in := map[string]int{"chainId": 31337}

	require.NoError(t, store.WriteJSON(path, in, 0o644))

	var out map[string]int
	require.NoError(t, store.ReadJSON(path, &out))
	assert.Equal(t, in, out)
}

func TestReadJSON_Missing(t *testing.T) {
	var out map[string]any
	err := store.ReadJSON(filepath.Join(t.TempDir(), "nope.json"), &out)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestExists(t *testing.T) {
	dir := t.TempDir()
	assert.True(t, store.Exists(dir))
	assert.False(t, store.Exists(filepath.Join(dir, "missing")))
}

func TestWriteEnvFiles(t *testing.T) {
	root := t.TempDir()
	files := []store.EnvFile{
		{Path: ".env.example", Lines: []string{"# Core", "A=1"}},
		{Path: filepath.Join("apps", "api", ".env.example"), Lines: []string{"B=2"}},
	}

	written, err := store.WriteEnvFiles(root, files)
	require.NoError(t, err)
	assert.Equal(t, []string{".env.example", filepath.Join("apps", "api", ".env.example")}, written)

	b, err := os.ReadFile(filepath.Join(root, ".env.example"))
	require.NoError(t, err)
	assert.Equal(t, "# Core\nA=1\n", string(b))
}
