package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".fraktrc")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadConfigMissingFile(t *testing.T) {
	config := loadConfigFile(filepath.Join(t.TempDir(), "nope"), "")
	assert.Equal(t, defaultConfig(), config)
}

func TestLoadConfigFile(t *testing.T) {
	home := t.TempDir()
	path := writeConfig(t, `
# frakt settings
save_dir = ~/fractals
Confirm = false
iterations = 500
export_size = 512
julia = 0.285, 0.01
listen = 127.0.0.1:9000
origins = example.com, *.example.org,
unknown = whatever
not a setting
`)
	config := loadConfigFile(path, home)
	assert.Equal(t, filepath.Join(home, "fractals"), config.SaveDirectory)
	assert.False(t, config.Confirmations)
	assert.Equal(t, 500, config.MaxIterations)
	assert.Equal(t, 512, config.ExportSize)
	assert.Equal(t, Julia{C: complex(0.285, 0.01)}, config.Julia)
	assert.Equal(t, "127.0.0.1:9000", config.ListenAddr)
	assert.Equal(t, []string{"example.com", "*.example.org"}, config.Origins)
}

func TestLoadConfigKeepsDefaultsOnBadValues(t *testing.T) {
	path := writeConfig(t, `
maxiterations = -3
exportsize = 100000
julia = nope
`)
	config := loadConfigFile(path, "")
	assert.Equal(t, DefaultMaxIterations, config.MaxIterations)
	assert.Equal(t, DefaultExportSize, config.ExportSize)
	assert.Equal(t, DefaultJulia, config.Julia)
}

func TestGetSavePath(t *testing.T) {
	config := defaultConfig()
	path, err := config.GetSavePath("out.png")
	require.NoError(t, err)
	assert.Equal(t, "out.png", path)

	config.SaveDirectory = filepath.Join(t.TempDir(), "nested")
	path, err = config.GetSavePath("out.png")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(config.SaveDirectory, "out.png"), path)
	assert.DirExists(t, config.SaveDirectory)
}

func TestGetSavePathUnwritableDirectory(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0644))

	config := defaultConfig()
	config.SaveDirectory = filepath.Join(blocker, "nested")
	path, err := config.GetSavePath("out.png")
	assert.Error(t, err)
	assert.Empty(t, path)
}
