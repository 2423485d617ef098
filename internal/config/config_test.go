package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveLoad(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "pokescript")
	require.NoError(t, EnsureConfigDir(dir))

	path := filepath.Join(dir, FileName)
	want := Config{ShowTitle: false, Large: true, ColorscriptsDir: "/opt/colorscripts"}
	require.NoError(t, Save(path, want))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestLoadFillsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte("large: true\n"), 0644))

	got, err := Load(path)
	require.NoError(t, err)
	assert.True(t, got.ShowTitle)
	assert.True(t, got.Large)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte("large: [\n"), 0644))
	_, err = Load(path)
	assert.ErrorContains(t, err, "parsing config file")
}

func TestGetConfigDirXDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")

	dir, err := GetConfigDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/tmp/xdg", "pokescript"), dir)
}
