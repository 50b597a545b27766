package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFromMissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "does-not-exist.yaml"))

	require.NoError(t, err)
	assert.Equal(t, "8000", cfg.Server.Port)
	assert.Equal(t, "openai", cfg.Model.Provider)
	assert.Equal(t, 60*time.Second, cfg.Model.Timeout)
}

func TestLoadFromYAMLOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "crew.yaml")
	data := []byte("server:\n  port: \"9001\"\nmodel:\n  provider: anthropic\n  name: claude-3-5-sonnet-20241022\n  timeout: 30s\n")
	require.NoError(t, os.WriteFile(path, data, 0o600))

	cfg, err := LoadFrom(path)

	require.NoError(t, err)
	assert.Equal(t, "9001", cfg.Server.Port)
	assert.Equal(t, "anthropic", cfg.Model.Provider)
	assert.Equal(t, 30*time.Second, cfg.Model.Timeout)
	// Untouched values keep their defaults.
	assert.Equal(t, "json", cfg.Logging.Format)
}

func TestLoadFromEnvOverridesYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "crew.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server:\n  port: \"9001\"\n"), 0o600))

	t.Setenv("CREW_PORT", "9002")
	t.Setenv("CREW_MODEL_TIMEOUT", "15s")
	t.Setenv("OPENAI_API_KEY", "sk-test")

	cfg, err := LoadFrom(path)

	require.NoError(t, err)
	assert.Equal(t, "9002", cfg.Server.Port)
	assert.Equal(t, 15*time.Second, cfg.Model.Timeout)
	assert.Equal(t, "sk-test", cfg.Model.APIKey)
}

func TestLoadFromRejectsUnknownProvider(t *testing.T) {
	path := filepath.Join(t.TempDir(), "crew.yaml")
	require.NoError(t, os.WriteFile(path, []byte("model:\n  provider: cohere\n"), 0o600))

	_, err := LoadFrom(path)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "model.provider")
}

func TestLoadFromRejectsInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "crew.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server: [unclosed"), 0o600))

	_, err := LoadFrom(path)
	assert.Error(t, err)
}
