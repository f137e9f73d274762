package config

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Storage    StorageConfig    `mapstructure:"storage"`
	Catalog    CatalogConfig    `mapstructure:"catalog"`
	Remote     RemoteConfig     `mapstructure:"remote"`
	Drill      DrillConfig      `mapstructure:"drill"`
	Flashcards FlashcardsConfig `mapstructure:"flashcards"`
	Sakura     SakuraConfig     `mapstructure:"sakura"`
	Log        LogConfig        `mapstructure:"log"`
}

// StorageConfig locates the local progress store.
type StorageConfig struct {
	Path string `mapstructure:"path"`
}

// CatalogConfig locates the content files.
type CatalogConfig struct {
	Problems   string `mapstructure:"problems"`
	Flashcards string `mapstructure:"flashcards"`
}

// RemoteConfig holds the shared family store settings. The remote is
// enabled only when a database URL is configured.
type RemoteConfig struct {
	DatabaseURL string `mapstructure:"database_url"`
	FamilyID    string `mapstructure:"family_id"`
}

// Enabled reports whether remote sync is configured.
func (r RemoteConfig) Enabled() bool { return strings.TrimSpace(r.DatabaseURL) != "" }

// DrillConfig tunes batch building.
type DrillConfig struct {
	MinBatch      int    `mapstructure:"min_batch"`
	MaxBatch      int    `mapstructure:"max_batch"`
	WarmupPattern string `mapstructure:"warmup_pattern"`
	Seed          int64  `mapstructure:"seed"`
}

// CompileWarmupPattern parses the warm-up group matcher.
func (d DrillConfig) CompileWarmupPattern() (*regexp.Regexp, error) {
	if strings.TrimSpace(d.WarmupPattern) == "" {
		return nil, nil
	}
	re, err := regexp.Compile(d.WarmupPattern)
	if err != nil {
		return nil, fmt.Errorf("invalid warmup pattern: %w", err)
	}
	return re, nil
}

// FlashcardsConfig tunes Leitner sessions.
type FlashcardsConfig struct {
	SessionCap int `mapstructure:"session_cap"`
}

// SakuraConfig tunes the bloom gamification.
type SakuraConfig struct {
	FullBloomThreshold int `mapstructure:"full_bloom_threshold"`
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load reads configuration from file and environment variables
func Load() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	setDefaults()

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults() {
	viper.SetDefault("storage.path", "sakuradrill.db")

	viper.SetDefault("catalog.problems", "data/problems.json")
	viper.SetDefault("catalog.flashcards", "data/flashcards.json")

	// Remote sync is off until a database URL is provided.
	viper.SetDefault("remote.database_url", "")
	viper.SetDefault("remote.family_id", "default-family")

	viper.SetDefault("drill.min_batch", 5)
	viper.SetDefault("drill.max_batch", 10)
	viper.SetDefault("drill.warmup_pattern", "大問1$")
	viper.SetDefault("drill.seed", 0)

	viper.SetDefault("flashcards.session_cap", 15)

	viper.SetDefault("sakura.full_bloom_threshold", 11)

	viper.SetDefault("log.level", "info")
	viper.SetDefault("log.format", "json")
}
