package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const minimalConfig = `
database:
  url: "postgres://localhost/test"
`

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, minimalConfig))
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Port)
	assert.Equal(t, DefaultBaseRewards(), cfg.Karma.BaseRewards)
	assert.Equal(t, 5, cfg.Karma.DefaultBase)
	assert.Equal(t, 20, cfg.Karma.DurationBonusCap)
	assert.Equal(t, 50, cfg.Karma.QualityThreshold)
	assert.Equal(t, DefaultSuicideKeywords(), cfg.Crisis.SuicideKeywords)
	assert.Equal(t, DefaultSelfHarmKeywords(), cfg.Crisis.SelfHarmKeywords)
	assert.Equal(t, DefaultSafetyMessage, cfg.Crisis.SafetyMessage)
	assert.Equal(t, "@hourly", cfg.Jobs.ChallengeSweepSpec)
	assert.Equal(t, "@daily", cfg.Jobs.StatsBroadcastSpec)
	assert.Empty(t, cfg.LLM.Provider)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://override/db")
	t.Setenv("LLM_API_KEY", "env-key")

	cfg, err := LoadConfig(writeConfig(t, `
database:
  url: "postgres://file/db"
llm:
  provider: "openai"
`))
	require.NoError(t, err)

	assert.Equal(t, "postgres://override/db", cfg.Database.URL)
	assert.Equal(t, "env-key", cfg.LLM.APIKey)
}

func TestLoadConfig_Validation(t *testing.T) {
	t.Run("missing database url", func(t *testing.T) {
		t.Setenv("DATABASE_URL", "")
		_, err := LoadConfig(writeConfig(t, `server: {port: ":9090"}`))
		assert.Error(t, err)
	})

	t.Run("negative base reward", func(t *testing.T) {
		_, err := LoadConfig(writeConfig(t, minimalConfig+`
karma:
  base_rewards:
    meditation: -3
`))
		assert.Error(t, err)
	})

	t.Run("unknown provider", func(t *testing.T) {
		_, err := LoadConfig(writeConfig(t, minimalConfig+`
llm:
  provider: "oracle"
  api_key: "k"
`))
		assert.Error(t, err)
	})

	t.Run("provider without api key", func(t *testing.T) {
		_, err := LoadConfig(writeConfig(t, minimalConfig+`
llm:
  provider: "gemini"
`))
		assert.Error(t, err)
	})
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yml"))
	assert.Error(t, err)
}

func TestDefaultKeywordLists(t *testing.T) {
	// The keyword lists are safety-critical. These assertions pin every
	// entry so an accidental edit fails loudly.
	assert.Equal(t, []string{"suicide", "kill myself", "end it all", "not worth living", "better off dead"},
		DefaultSuicideKeywords())
	assert.Equal(t, []string{"hurt myself", "self-harm", "cutting", "overdose"},
		DefaultSelfHarmKeywords())
}
