package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
openai:
  api_key: file-openai-key
  model: gpt-4
  temperature: 0.5
openweather:
  api_key: file-weather-key
serpapi:
  api_key: file-serp-key
`), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "file-openai-key", cfg.OpenAI.APIKey)
	assert.Equal(t, "gpt-4", cfg.OpenAI.Model)
	assert.Equal(t, float32(0.5), cfg.OpenAI.Temperature)
	assert.Equal(t, "file-weather-key", cfg.OpenWeather.APIKey)
	assert.Equal(t, "file-serp-key", cfg.SerpAPI.APIKey)
}

func TestLoadEnvOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
openai:
  api_key: file-openai-key
`), 0o600))

	t.Setenv("OPENAI_API_KEY", "env-openai-key")
	t.Setenv("OPENWEATHER_API_KEY", "env-weather-key")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "env-openai-key", cfg.OpenAI.APIKey)
	assert.Equal(t, "env-weather-key", cfg.OpenWeather.APIKey)
}

func TestLoadMissingFile(t *testing.T) {
	t.Parallel()

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestFromEnv(t *testing.T) {
	t.Setenv("SERPAPI_API_KEY", "env-serp-key")
	t.Setenv("OPENAI_API_KEY", "")

	cfg := FromEnv()
	assert.Equal(t, "env-serp-key", cfg.SerpAPI.APIKey)
	assert.Empty(t, cfg.OpenAI.APIKey)
}
