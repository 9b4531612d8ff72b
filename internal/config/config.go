package config

import (
	"fmt"
	"os"
	"time"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

// Config holds the application's configuration.
type Config struct {
	Server struct {
		Port string `yaml:"port"`
	} `yaml:"server"`
	Database struct {
		URL string `yaml:"url"`
	} `yaml:"database"`
	LLM struct {
		Provider   string        `yaml:"provider"` // "openai", "gemini" or "" (fallback-only)
		APIKey     string        `yaml:"api_key"`
		BaseURL    string        `yaml:"base_url"`
		ModelName  string        `yaml:"model_name"`
		Timeout    time.Duration `yaml:"timeout"`
		MaxRetries int           `yaml:"max_retries"`
		RetryDelay time.Duration `yaml:"retry_delay"`
	} `yaml:"llm"`
	Karma  KarmaConfig  `yaml:"karma"`
	Crisis CrisisConfig `yaml:"crisis"`
	Alerts struct {
		Enabled          bool   `yaml:"enabled"`
		TelegramBotToken string `yaml:"telegram_bot_token"`
		TelegramChatID   int64  `yaml:"telegram_chat_id"`
	} `yaml:"alerts"`
	Jobs struct {
		ChallengeSweepSpec string `yaml:"challenge_sweep_spec"`
		StatsBroadcastSpec string `yaml:"stats_broadcast_spec"`
	} `yaml:"jobs"`
}

// KarmaConfig drives the reward calculator. The base rewards were inline
// literals historically; they are configuration now so product can tune them
// without a deploy.
type KarmaConfig struct {
	BaseRewards      map[string]int `yaml:"base_rewards"`
	DefaultBase      int            `yaml:"default_base"`
	DurationBonusCap int            `yaml:"duration_bonus_cap"`
	QualityThreshold int            `yaml:"quality_threshold"`
}

// CrisisConfig holds the keyword fallback lists and the user-facing safety
// message. The keyword lists are a safety-critical artifact: every entry is
// enumerated in the test fixture.
type CrisisConfig struct {
	SuicideKeywords  []string `yaml:"suicide_keywords"`
	SelfHarmKeywords []string `yaml:"self_harm_keywords"`
	SafetyMessage    string   `yaml:"safety_message"`
}

// envOverrides maps sensitive settings onto environment variables so secrets
// never live in the YAML file.
type envOverrides struct {
	DatabaseURL      string `envconfig:"DATABASE_URL"`
	LLMAPIKey        string `envconfig:"LLM_API_KEY"`
	TelegramBotToken string `envconfig:"ALERTS_TELEGRAM_BOT_TOKEN"`
}

// DefaultBaseRewards is the reward table used when the config file does not
// override it.
func DefaultBaseRewards() map[string]int {
	return map[string]int{
		"meditation":           10,
		"workout":              15,
		"breathing":            5,
		"journaling":           8,
		"community_help":       25,
		"challenge_completion": 50,
		"daily_goal":           20,
		"environmental_action": 30,
		"crisis_support":       100,
	}
}

// DefaultSuicideKeywords returns the fallback detection list for suicidal
// ideation.
func DefaultSuicideKeywords() []string {
	return []string{"suicide", "kill myself", "end it all", "not worth living", "better off dead"}
}

// DefaultSelfHarmKeywords returns the fallback detection list for self-harm.
func DefaultSelfHarmKeywords() []string {
	return []string{"hurt myself", "self-harm", "cutting", "overdose"}
}

// DefaultSafetyMessage is returned verbatim to the user on a critical crisis
// detection, regardless of LLM availability.
const DefaultSafetyMessage = "I'm very concerned about what you've shared. Please reach out to a crisis counselor immediately or call 988 (Suicide & Crisis Lifeline) if you're in the US. You don't have to go through this alone."

// LoadConfig reads configuration from the specified YAML file, applies
// environment overrides and fills in defaults.
func LoadConfig(configPath string) (*Config, error) {
	config := &Config{}

	file, err := os.Open(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}
	defer file.Close()

	decoder := yaml.NewDecoder(file)
	if err := decoder.Decode(config); err != nil {
		return nil, fmt.Errorf("failed to decode config file: %w", err)
	}

	var env envOverrides
	if err := envconfig.Process("", &env); err != nil {
		return nil, fmt.Errorf("failed to process environment overrides: %w", err)
	}
	if env.DatabaseURL != "" {
		config.Database.URL = env.DatabaseURL
	}
	if env.LLMAPIKey != "" {
		config.LLM.APIKey = env.LLMAPIKey
	}
	if env.TelegramBotToken != "" {
		config.Alerts.TelegramBotToken = env.TelegramBotToken
	}

	config.applyDefaults()

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

func (c *Config) applyDefaults() {
	if c.Server.Port == "" {
		c.Server.Port = ":8080"
	}
	if c.LLM.Timeout == 0 {
		c.LLM.Timeout = 30 * time.Second
	}
	if c.LLM.MaxRetries == 0 {
		c.LLM.MaxRetries = 2
	}
	if c.LLM.RetryDelay == 0 {
		c.LLM.RetryDelay = 2 * time.Second
	}
	if len(c.Karma.BaseRewards) == 0 {
		c.Karma.BaseRewards = DefaultBaseRewards()
	}
	if c.Karma.DefaultBase == 0 {
		c.Karma.DefaultBase = 5
	}
	if c.Karma.DurationBonusCap == 0 {
		c.Karma.DurationBonusCap = 20
	}
	if c.Karma.QualityThreshold == 0 {
		c.Karma.QualityThreshold = 50
	}
	if len(c.Crisis.SuicideKeywords) == 0 {
		c.Crisis.SuicideKeywords = DefaultSuicideKeywords()
	}
	if len(c.Crisis.SelfHarmKeywords) == 0 {
		c.Crisis.SelfHarmKeywords = DefaultSelfHarmKeywords()
	}
	if c.Crisis.SafetyMessage == "" {
		c.Crisis.SafetyMessage = DefaultSafetyMessage
	}
	if c.Jobs.ChallengeSweepSpec == "" {
		c.Jobs.ChallengeSweepSpec = "@hourly"
	}
	if c.Jobs.StatsBroadcastSpec == "" {
		c.Jobs.StatsBroadcastSpec = "@daily"
	}
}

// Validate rejects configurations the reward calculator cannot honour.
// A negative base reward would let the calculator return negative awards,
// which the ledger treats as a caller error.
func (c *Config) Validate() error {
	if c.Database.URL == "" {
		return fmt.Errorf("database.url is required (or set DATABASE_URL)")
	}
	for activity, base := range c.Karma.BaseRewards {
		if base < 0 {
			return fmt.Errorf("karma.base_rewards[%s] must not be negative, got %d", activity, base)
		}
	}
	if c.Karma.DefaultBase < 0 {
		return fmt.Errorf("karma.default_base must not be negative, got %d", c.Karma.DefaultBase)
	}
	if c.Karma.DurationBonusCap < 0 {
		return fmt.Errorf("karma.duration_bonus_cap must not be negative")
	}
	if c.LLM.Provider != "" && c.LLM.Provider != "openai" && c.LLM.Provider != "gemini" {
		return fmt.Errorf("llm.provider must be \"openai\", \"gemini\" or empty, got %q", c.LLM.Provider)
	}
	if c.LLM.Provider != "" && c.LLM.APIKey == "" {
		return fmt.Errorf("llm.api_key is required when llm.provider is set (or set LLM_API_KEY)")
	}
	return nil
}
