package syncdb

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeDB(t *testing.T, dir, repo string, entries map[string]string) {
	t.Helper()
	raw := buildTar(t, entries)
	path := filepath.Join(dir, repo+".db")
	require.NoError(t, os.WriteFile(path, gzipped(t, raw), 0644))
}

func TestLoadAndGet(t *testing.T) {
	dir := t.TempDir()
	writeDB(t, dir, "core", map[string]string{"bash-5.2.037-1/desc": bashDesc})
	writeDB(t, dir, "extra", map[string]string{
		"htop-3.3.0-1/desc": "%NAME%\nhtop\n\n%VERSION%\n3.3.0-1\n\n%DESC%\nInteractive process viewer\n",
	})

	db, err := Load(dir, zerolog.Nop())
	require.NoError(t, err)
	assert.Equal(t, 2, db.Len())

	bash, ok := db.Get("bash")
	require.True(t, ok)
	assert.Equal(t, "core", bash.Repository)

	htop, ok := db.Get("htop")
	require.True(t, ok)
	assert.Equal(t, "extra", htop.Repository)

	_, ok = db.Get("no-such-package")
	assert.False(t, ok)
}

func TestGetResolvesProviders(t *testing.T) {
	dir := t.TempDir()
	writeDB(t, dir, "core", map[string]string{"bash-5.2.037-1/desc": bashDesc})

	db, err := Load(dir, zerolog.Nop())
	require.NoError(t, err)

	// bash provides "sh"
	pkg, ok := db.Get("sh")
	require.True(t, ok)
	assert.Equal(t, "bash", pkg.Name)

	// version constraints are stripped before lookup
	pkg, ok = db.Get("bash>=5.0")
	require.True(t, ok)
	assert.Equal(t, "bash", pkg.Name)
}

func TestSearch(t *testing.T) {
	dir := t.TempDir()
	writeDB(t, dir, "core", map[string]string{"bash-5.2.037-1/desc": bashDesc})

	db, err := Load(dir, zerolog.Nop())
	require.NoError(t, err)

	assert.Len(t, db.Search("BAS"), 1)
	assert.Empty(t, db.Search("zsh"))
}

func TestLoadEmptyDirectory(t *testing.T) {
	db, err := Load(t.TempDir(), zerolog.Nop())
	require.NoError(t, err)
	assert.Equal(t, 0, db.Len())
}

func TestLoadSkipsCorruptDatabase(t *testing.T) {
	dir := t.TempDir()
	writeDB(t, dir, "core", map[string]string{"bash-5.2.037-1/desc": bashDesc})
	require.NoError(t, os.WriteFile(filepath.Join(dir, "extra.db"), []byte("garbage"), 0644))

	db, err := Load(dir, zerolog.Nop())
	require.NoError(t, err)
	assert.Equal(t, 1, db.Len())
}
