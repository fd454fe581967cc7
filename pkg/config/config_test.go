package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("CONFIG_FILE", "")
	t.Setenv("PORT", "")
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "5000", cfg.Port)
	assert.Equal(t, "ats.db", cfg.SQLitePath)
	assert.Equal(t, int64(15<<20), cfg.MaxUploadBytes)
	assert.Equal(t, "gemini-1.5-flash", cfg.GeminiModel)
	assert.Equal(t, time.Minute, cfg.LLMTimeout())
}

func TestLoadFileThenEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ats.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
port: "9000"
sqlite_path: /var/lib/ats/ats.db
llm_provider: openrouter
openrouter_model: meta/llama
llm_timeout_seconds: 5
`), 0o644))
	t.Setenv("CONFIG_FILE", path)
	t.Setenv("PORT", "7070")
	t.Setenv("LLM_TIMEOUT_SECONDS", "not-a-number")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "7070", cfg.Port, "env wins over file")
	assert.Equal(t, "/var/lib/ats/ats.db", cfg.SQLitePath)
	assert.Equal(t, "openrouter", cfg.LLMProvider)
	assert.Equal(t, "meta/llama", cfg.OpenRouterModel)
	assert.Equal(t, 5*time.Second, cfg.LLMTimeout(), "invalid env value keeps file value")
	assert.Equal(t, "uploads", cfg.UploadDir)
}

func TestLoadBadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("port: [1, 2"), 0o644))
	t.Setenv("CONFIG_FILE", path)

	_, err := Load()
	assert.ErrorContains(t, err, "parse config file")

	t.Setenv("CONFIG_FILE", filepath.Join(t.TempDir(), "missing.yaml"))
	_, err = Load()
	assert.ErrorContains(t, err, "read config file")
}
