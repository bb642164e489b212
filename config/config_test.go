package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"moa_diary/generator"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"LLM_PROVIDER", "LLM_MODEL", "GOOGLE_API_KEY", "OPENAI_API_KEY", "PORT", "LOG_LEVEL"} {
		t.Setenv(k, "")
	}
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("GOOGLE_API_KEY", "g-key")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	require.NoError(t, err)
	assert.Equal(t, DefaultServerAddr, cfg.ServerAddr)
	assert.Equal(t, generator.ProviderGemini, cfg.LLM.Provider)
	assert.Empty(t, cfg.LLM.Model)
	assert.Equal(t, "g-key", cfg.LLM.APIKey)
	assert.Equal(t, DefaultRequestTimeout, cfg.Timeout())
	assert.Equal(t, 1080, cfg.MediaOptions().MaxWidth)
}

func TestLoadJSON(t *testing.T) {
	clearEnv(t)
	path := writeFile(t, "config.json", `{
		"server_addr": ":9000",
		"llm": {"provider": "openai", "model": "gpt-4o", "base_url": "https://example.com/v1"},
		"media": {"max_width": 512, "download_timeout": "5s"},
		"request_timeout": 30
	}`)
	t.Setenv("OPENAI_API_KEY", "o-key")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":9000", cfg.ServerAddr)
	assert.Equal(t, "openai", cfg.LLM.Provider)
	assert.Equal(t, "o-key", cfg.LLM.APIKey)
	assert.Equal(t, generator.DefaultTemperature, cfg.LLM.Temperature)
	assert.Equal(t, 512, cfg.Media.MaxWidth)
	assert.Equal(t, 70, cfg.Media.Quality)
	assert.Equal(t, Duration(5*time.Second), cfg.Media.DownloadTimeout)
	assert.Equal(t, 30*time.Second, cfg.Timeout())

	s := cfg.LLMSettings()
	assert.Equal(t, "https://example.com/v1", s.BaseURL)
	assert.Equal(t, "gpt-4o", s.Model)
}

func TestLoadYAML(t *testing.T) {
	clearEnv(t)
	path := writeFile(t, "config.yaml", `
server_addr: ":7000"
llm:
  provider: mock
media:
  quality: 50
  download_timeout: 3s
log_level: debug
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":7000", cfg.ServerAddr)
	assert.Equal(t, generator.ProviderMock, cfg.LLM.Provider)
	assert.Equal(t, 50, cfg.Media.Quality)
	assert.Equal(t, Duration(3*time.Second), cfg.Media.DownloadTimeout)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadYAMLNumericDurations(t *testing.T) {
	clearEnv(t)
	path := writeFile(t, "config.yml", `
request_timeout: 30
media:
  download_timeout: 2.5
  max_pixels: 1000000
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 30*time.Second, cfg.Timeout())
	assert.Equal(t, Duration(2500*time.Millisecond), cfg.Media.DownloadTimeout)
	assert.Equal(t, int64(1000000), cfg.MediaOptions().MaxPixels)

	_, err = Load(writeFile(t, "bad.yaml", "request_timeout: soon\n"))
	require.Error(t, err)
}

func TestLoadEnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("LLM_PROVIDER", "mock")
	t.Setenv("LLM_MODEL", "tiny")
	t.Setenv("PORT", "8123")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "mock", cfg.LLM.Provider)
	assert.Equal(t, "tiny", cfg.LLM.Model)
	assert.Equal(t, ":8123", cfg.ServerAddr)
	assert.Empty(t, cfg.LLM.APIKey)
}

func TestLoadRejectsBrokenFile(t *testing.T) {
	clearEnv(t)
	_, err := Load(writeFile(t, "config.json", `{"llm": `))
	require.Error(t, err)
}
