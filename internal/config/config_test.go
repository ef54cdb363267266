package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/alexanderramin/freeflow/internal/llm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	return home
}

func TestLoad_Defaults(t *testing.T) {
	home := isolate(t)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".freeflow", "freeflow.db"), cfg.DB.Path)
	assert.Equal(t, "warn", cfg.Logger.Level)
	assert.False(t, cfg.LLM.Enabled)
	assert.Equal(t, llm.ProviderOllama, cfg.LLM.Provider)
	assert.Equal(t, llm.DefaultConfig().Endpoint, cfg.LLM.Endpoint)
	assert.NotEmpty(t, cfg.LLM.Tasks)
}

func TestLoad_EnvOverrides(t *testing.T) {
	isolate(t)
	t.Setenv("FREEFLOW_DB", "/tmp/ff-test.db")
	t.Setenv("FREEFLOW_LLM_ENABLED", "true")
	t.Setenv("FREEFLOW_LLM_MODEL", "qwen2.5")
	t.Setenv("FREEFLOW_LOGGER_LEVEL", "debug")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "/tmp/ff-test.db", cfg.DB.Path)
	assert.True(t, cfg.LLM.Enabled)
	assert.Equal(t, "qwen2.5", cfg.LLM.Model)
	assert.Equal(t, "debug", cfg.Logger.Level)
}

func TestLoad_LongDBPathWinsOverShortForm(t *testing.T) {
	isolate(t)
	t.Setenv("FREEFLOW_DB", "/tmp/short.db")
	t.Setenv("FREEFLOW_DB_PATH", "/tmp/long.db")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "/tmp/long.db", cfg.DB.Path)
}

func TestLoad_GeminiFromEnvUsesGeminiDefaults(t *testing.T) {
	isolate(t)
	t.Setenv("FREEFLOW_LLM_PROVIDER", "gemini")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, llm.DefaultGeminiEndpoint, cfg.LLM.Endpoint)
	assert.Equal(t, llm.DefaultGeminiModel, cfg.LLM.Model)
}

func TestLoad_GeminiKeepsExplicitModel(t *testing.T) {
	isolate(t)
	t.Setenv("FREEFLOW_LLM_PROVIDER", "gemini")
	t.Setenv("FREEFLOW_LLM_MODEL", "gemini-2.0-pro")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "gemini-2.0-pro", cfg.LLM.Model)
	assert.Equal(t, llm.DefaultGeminiEndpoint, cfg.LLM.Endpoint)
}

func TestLoad_FileWithGeminiDefaults(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "freeflow.yaml")
	content := `
db:
  path: /tmp/from-file.db
llm:
  enabled: true
  provider: gemini
  api_key: secret
  cache_ttl: 2m
invoice:
  issuer: Jane Doe Studio
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/from-file.db", cfg.DB.Path)
	assert.Equal(t, llm.ProviderGemini, cfg.LLM.Provider)
	assert.Equal(t, llm.DefaultGeminiEndpoint, cfg.LLM.Endpoint)
	assert.Equal(t, llm.DefaultGeminiModel, cfg.LLM.Model)
	assert.Equal(t, 2*time.Minute, cfg.LLM.CacheTTL)
	assert.Equal(t, "Jane Doe Studio", cfg.Invoice.Issuer)
}

func TestLoad_GeminiRequiresKey(t *testing.T) {
	isolate(t)
	t.Setenv("FREEFLOW_LLM_ENABLED", "true")
	t.Setenv("FREEFLOW_LLM_PROVIDER", "gemini")

	_, err := Load("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "api_key")
}

func TestLoad_UnknownProvider(t *testing.T) {
	isolate(t)
	t.Setenv("FREEFLOW_LLM_PROVIDER", "openai")

	_, err := Load("")
	assert.Error(t, err)
}

func TestLoad_MalformedFile(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("db: [unclosed"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}
