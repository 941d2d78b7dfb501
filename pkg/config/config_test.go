package config

import (
	"encoding/hex"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	assert.Equal(t, "/var/lib/curdle/scores", config.ScoresFile)
	assert.True(t, config.Lock)
	assert.True(t, config.SyncWrites)
	assert.Equal(t, 8080, config.Port)
	assert.Equal(t, "127.0.0.1", config.Bind)
	assert.Equal(t, "auto", config.Security.ClientAPIKey)
	assert.Equal(t, "info", config.Logging.Level)
}

func TestGenerateSecureKey(t *testing.T) {
	t.Run("generate 32 byte key", func(t *testing.T) {
		key, err := GenerateSecureKey(32)
		require.NoError(t, err)
		assert.Len(t, key, 64) // 32 bytes = 64 hex characters

		// Verify it's valid hex
		_, err = hex.DecodeString(key)
		assert.NoError(t, err)
	})

	t.Run("generate different keys", func(t *testing.T) {
		key1, err := GenerateSecureKey(16)
		require.NoError(t, err)
		key2, err := GenerateSecureKey(16)
		require.NoError(t, err)

		assert.NotEqual(t, key1, key2)
	})
}

func TestLoadConfig(t *testing.T) {
	t.Run("load existing config", func(t *testing.T) {
		tmpDir, err := os.MkdirTemp("", "curdle_config_test")
		require.NoError(t, err)
		defer os.RemoveAll(tmpDir)

		configPath := filepath.Join(tmpDir, "config.yaml")
		want := &Config{
			ScoresFile: filepath.Join(tmpDir, "scores"),
			Lock:       true,
			Port:       9090,
			Bind:       "0.0.0.0",
			Security:   Security{ClientAPIKey: "secret"},
			Logging:    Logging{Level: "debug"},
		}

		data, err := yaml.Marshal(want)
		require.NoError(t, err)
		require.NoError(t, os.WriteFile(configPath, data, 0600))

		got, err := LoadConfig(configPath)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadConfig("/nonexistent/config.yaml")
		assert.Error(t, err)
	})

	t.Run("invalid yaml", func(t *testing.T) {
		tmpDir, err := os.MkdirTemp("", "curdle_config_test")
		require.NoError(t, err)
		defer os.RemoveAll(tmpDir)

		configPath := filepath.Join(tmpDir, "config.yaml")
		require.NoError(t, os.WriteFile(configPath, []byte("{not yaml"), 0600))

		_, err = LoadConfig(configPath)
		assert.Error(t, err)
	})

	t.Run("missing scores file path", func(t *testing.T) {
		tmpDir, err := os.MkdirTemp("", "curdle_config_test")
		require.NoError(t, err)
		defer os.RemoveAll(tmpDir)

		configPath := filepath.Join(tmpDir, "config.yaml")
		require.NoError(t, os.WriteFile(configPath, []byte("port: 8080\n"), 0600))

		_, err = LoadConfig(configPath)
		assert.Error(t, err)
	})
}

func TestSaveConfig(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "curdle_config_test")
	require.NoError(t, err)
	defer os.RemoveAll(tmpDir)

	configPath := filepath.Join(tmpDir, "nested", "config.yaml")
	config := DefaultConfig()
	config.ScoresFile = filepath.Join(tmpDir, "scores")

	require.NoError(t, SaveConfig(config, configPath))

	loaded, err := LoadConfig(configPath)
	require.NoError(t, err)
	assert.Equal(t, config, loaded)
}

func TestBootstrapConfig(t *testing.T) {
	t.Run("creates config with generated key", func(t *testing.T) {
		tmpDir, err := os.MkdirTemp("", "curdle_config_test")
		require.NoError(t, err)
		defer os.RemoveAll(tmpDir)

		configPath := filepath.Join(tmpDir, "config.yaml")
		scoresFile := filepath.Join(tmpDir, "scores")

		config, err := BootstrapConfig(configPath, scoresFile)
		require.NoError(t, err)

		assert.Equal(t, scoresFile, config.ScoresFile)
		assert.NotEqual(t, "auto", config.Security.ClientAPIKey)
		assert.Len(t, config.Security.ClientAPIKey, 64)
		assert.True(t, ConfigExists(configPath))
	})

	t.Run("does not overwrite existing config", func(t *testing.T) {
		tmpDir, err := os.MkdirTemp("", "curdle_config_test")
		require.NoError(t, err)
		defer os.RemoveAll(tmpDir)

		configPath := filepath.Join(tmpDir, "config.yaml")

		first, err := BootstrapConfig(configPath, filepath.Join(tmpDir, "scores"))
		require.NoError(t, err)

		second, err := BootstrapConfig(configPath, filepath.Join(tmpDir, "other"))
		require.NoError(t, err)

		assert.Equal(t, first.ScoresFile, second.ScoresFile)
		assert.Equal(t, first.Security.ClientAPIKey, second.Security.ClientAPIKey)
	})
}
