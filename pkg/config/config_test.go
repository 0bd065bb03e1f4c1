package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	assert.Equal(t, "./archive", config.ArchiveDir)
	assert.Equal(t, "csv", config.DefaultFormat)
	assert.Equal(t, "info", config.Logging.Level)
}

func TestSaveAndLoadConfig(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	config := &Config{
		ArchiveDir:    "/var/lib/txfile",
		DefaultFormat: "binary",
		Logging:       Logging{Level: "debug"},
	}
	require.NoError(t, SaveConfig(config, configPath))
	assert.True(t, ConfigExists(configPath))

	loaded, err := LoadConfig(configPath)
	require.NoError(t, err)
	assert.Equal(t, config, loaded)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadConfig_InvalidYAML(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("{not yaml"), 0600))

	_, err := LoadConfig(configPath)
	assert.Error(t, err)
}

func TestSaveConfig_CreatesDirectory(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "nested", "dir", "config.yaml")

	require.NoError(t, SaveConfig(DefaultConfig(), configPath))
	assert.True(t, ConfigExists(configPath))
}

func TestConfigExists(t *testing.T) {
	assert.False(t, ConfigExists(filepath.Join(t.TempDir(), "absent.yaml")))
}
