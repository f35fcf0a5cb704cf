//go:build unit
// +build unit

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "app.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const validCliYAML = `
logger:
  log_level: info
  log_type: console
database:
  type: sqlite
  dsn: lecture_notes.db
  name: lecture_notes
anthropic:
  model: claude-sonnet-4-20250514
  max_tokens: 2000
pipeline:
  data_dir: ./data
  output_dir: ./output
  site_dir: ./docs
  site_title: 강의 노트 모음
  slide_dpi: 150
  chunk_minutes: 10
  default_lecture_minutes: 150
  window_multiplier: 3
  overlap_back: 2
`

func TestInitializeCliConfig_Success(t *testing.T) {
	t.Setenv("ANTHROPIC_API_KEY", "")
	path := writeConfigFile(t, validCliYAML)

	cfg, err := InitializeCliConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "sqlite", cfg.Database.Type)
	assert.Equal(t, 150, cfg.Pipeline.SlideDPI)
	assert.Equal(t, DefaultAnthropicBaseURL, cfg.Anthropic.BaseURL)
	assert.False(t, cfg.Anthropic.Enabled())
}

func TestInitializeCliConfig_APIKeyFromEnvironment(t *testing.T) {
	t.Setenv("ANTHROPIC_API_KEY", "sk-ant-test-key")
	path := writeConfigFile(t, validCliYAML)

	cfg, err := InitializeCliConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "sk-ant-test-key", cfg.Anthropic.APIKey)
	assert.True(t, cfg.Anthropic.Enabled())
}

func TestInitializeCliConfig_MissingFile_Error(t *testing.T) {
	_, err := InitializeCliConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestInitializeCliConfig_InvalidLogLevel_Error(t *testing.T) {
	path := writeConfigFile(t, `
logger:
  log_level: verbose
  log_type: console
database:
  type: sqlite
anthropic:
  model: claude-sonnet-4-20250514
  max_tokens: 2000
pipeline:
  data_dir: ./data
  output_dir: ./output
  site_dir: ./docs
  site_title: 강의 노트 모음
  slide_dpi: 150
  chunk_minutes: 10
  default_lecture_minutes: 150
  window_multiplier: 3
`)
	_, err := InitializeCliConfig(path)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "LoggerSettings")
}

func TestInitializeRestConfig_Success(t *testing.T) {
	t.Setenv("ANTHROPIC_API_KEY", "")
	path := writeConfigFile(t, "port: \"8080\"\n"+validCliYAML)

	cfg, err := InitializeRestConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
}

func TestInitializeRestConfig_MissingPort_Error(t *testing.T) {
	path := writeConfigFile(t, validCliYAML)

	_, err := InitializeRestConfig(path)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "port")
}

func TestDatabaseSettings_PostgresRequiresDSN(t *testing.T) {
	settings := &DatabaseSettings{Type: PostgresDbType}
	assert.Error(t, settings.Validate())

	settings.DSN = "host=localhost user=postgres dbname=lecture_notes"
	assert.NoError(t, settings.Validate())
}

func TestAnthropicSettings_Enabled(t *testing.T) {
	settings := &AnthropicSettings{Model: "claude-sonnet-4-20250514", MaxTokens: 2000}
	assert.False(t, settings.Enabled())

	settings.APIKey = "your_api_key_here"
	assert.False(t, settings.Enabled(), "the placeholder key does not enable the connector")

	settings.APIKey = "sk-ant-real"
	assert.True(t, settings.Enabled())
}
