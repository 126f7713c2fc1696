package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFile(t *testing.T) {
	p, err := LoadFrom(filepath.Join(t.TempDir(), "nope.json"))
	require.NoError(t, err)
	assert.Equal(t, 3, p.Int(KeyWorkers, 3))
	assert.Equal(t, "info", p.String(KeyLogLevel, "info"))
}

func TestSaveAndReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", prefsFile)

	p, err := LoadFrom(path)
	require.NoError(t, err)
	p.SetInt(KeyWorkers, 8)
	p.SetString(KeyLogLevel, "debug")
	require.NoError(t, p.Save())

	again, err := LoadFrom(path)
	require.NoError(t, err)
	assert.Equal(t, 8, again.Int(KeyWorkers, 1))
	assert.Equal(t, "debug", again.String(KeyLogLevel, "info"))
	assert.Equal(t, path, again.Path())
}

func TestWrongTypeFallsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), prefsFile)
	require.NoError(t, os.WriteFile(path, []byte(`{"workers":"many","log_level":4}`), 0o644))

	p, err := LoadFrom(path)
	require.NoError(t, err)
	assert.Equal(t, 2, p.Int(KeyWorkers, 2))
	assert.Equal(t, "warn", p.String(KeyLogLevel, "warn"))
}

func TestMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), prefsFile)
	require.NoError(t, os.WriteFile(path, []byte(`{not json`), 0o644))

	_, err := LoadFrom(path)
	assert.Error(t, err)
}

func TestDefaultPath(t *testing.T) {
	assert.Equal(t, prefsFile, filepath.Base(DefaultPath()))
	assert.Equal(t, appDir, filepath.Base(filepath.Dir(DefaultPath())))
}
