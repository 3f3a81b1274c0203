package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config is the effective configuration after flags, environment and the
// config file have been merged by viper.
type Config struct {
	OutputDir string
	DeckName  string

	Provider        string
	Model           string
	TargetLang      string
	Timeout         time.Duration
	BreakerFailures int
	OpenAIKey       string
	GeminiKey       string

	CacheBackend   string
	CachePath      string
	PersistEachNew bool

	LogLevel  string
	LogFormat string
}

// LoadConfig reads the effective configuration from viper
func LoadConfig() (Config, error) {
	cfg := Config{
		OutputDir:       viper.GetString("output.directory"),
		DeckName:        viper.GetString("anki.deck_name"),
		Provider:        strings.ToLower(viper.GetString("translation.provider")),
		Model:           viper.GetString("translation.model"),
		TargetLang:      viper.GetString("translation.target_language"),
		Timeout:         viper.GetDuration("translation.timeout"),
		BreakerFailures: viper.GetInt("translation.breaker_failures"),
		OpenAIKey:       GetOpenAIKey(),
		GeminiKey:       GetGeminiKey(),
		CacheBackend:    strings.ToLower(viper.GetString("cache.backend")),
		CachePath:       viper.GetString("cache.path"),
		PersistEachNew:  viper.GetBool("cache.persist_each"),
		LogLevel:        viper.GetString("log.level"),
		LogFormat:       viper.GetString("log.format"),
	}

	if cfg.OutputDir == "" {
		cfg.OutputDir = "."
	}
	if cfg.Provider == "" {
		cfg.Provider = "openai"
	}
	if cfg.TargetLang == "" {
		cfg.TargetLang = "nl"
	}
	if cfg.CacheBackend == "" {
		cfg.CacheBackend = "json"
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks the values that cannot be corrected silently
func (c Config) Validate() error {
	switch c.Provider {
	case "openai", "gemini":
	default:
		return fmt.Errorf("unknown translation provider: %s (use openai or gemini)", c.Provider)
	}

	switch c.CacheBackend {
	case "json", "sqlite":
	default:
		return fmt.Errorf("unknown cache backend: %s (use json or sqlite)", c.CacheBackend)
	}

	if c.Timeout < 0 {
		return fmt.Errorf("translation timeout must not be negative: %s", c.Timeout)
	}
	if c.BreakerFailures < 0 {
		return fmt.Errorf("breaker failures must not be negative: %d", c.BreakerFailures)
	}
	return nil
}

// APIKey returns the key of the configured provider
func (c Config) APIKey() string {
	if c.Provider == "gemini" {
		return c.GeminiKey
	}
	return c.OpenAIKey
}
