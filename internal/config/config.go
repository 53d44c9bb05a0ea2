// Package config provides configuration loading and validation for the CLI
// and the HTTP server.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. SKILLMATCH_PORT.
const EnvPrefix = "SKILLMATCH"

// Config is the runtime configuration. Values come from defaults, an optional
// config file, SKILLMATCH_* environment variables and command-line flags, in
// increasing order of precedence.
type Config struct {
	// Server
	Port int `mapstructure:"port" validate:"min=1,max=65535"`

	// Storage. An empty DatabaseURL disables the database and an empty
	// RedisAddr keeps assessment sessions in memory.
	DatabaseURL   string        `mapstructure:"database_url"`
	RedisAddr     string        `mapstructure:"redis_addr"`
	RedisPassword string        `mapstructure:"redis_password"`
	RedisDB       int           `mapstructure:"redis_db" validate:"min=0"`
	SessionTTL    time.Duration `mapstructure:"session_ttl" validate:"min=0"`

	// Data files; empty selects the built-in tables
	VocabularyPath   string `mapstructure:"vocabulary_path" validate:"omitempty,file"`
	QuestionBankPath string `mapstructure:"question_bank_path" validate:"omitempty,file"`

	// Logging
	LogLevel  string `mapstructure:"log_level" validate:"oneof=debug info warn error"`
	LogFormat string `mapstructure:"log_format" validate:"oneof=json console"`
}

// Default returns the configuration used when nothing overrides it.
func Default() Config {
	return Config{
		Port:       8080,
		SessionTTL: 24 * time.Hour,
		LogLevel:   "info",
		LogFormat:  "console",
	}
}

// flagKeys maps command-line flag names to configuration keys.
var flagKeys = map[string]string{
	"port":          "port",
	"database-url":  "database_url",
	"redis-addr":    "redis_addr",
	"session-ttl":   "session_ttl",
	"vocabulary":    "vocabulary_path",
	"question-bank": "question_bank_path",
	"log-level":     "log_level",
	"log-format":    "log_format",
}

// Load builds the configuration. path may be empty, in which case no file is
// read. flags may be nil; only flags the user actually set override other
// sources.
func Load(path string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	defaults := Default()
	v.SetDefault("port", defaults.Port)
	v.SetDefault("database_url", defaults.DatabaseURL)
	v.SetDefault("redis_addr", defaults.RedisAddr)
	v.SetDefault("redis_password", defaults.RedisPassword)
	v.SetDefault("redis_db", defaults.RedisDB)
	v.SetDefault("session_ttl", defaults.SessionTTL)
	v.SetDefault("vocabulary_path", defaults.VocabularyPath)
	v.SetDefault("question_bank_path", defaults.QuestionBankPath)
	v.SetDefault("log_level", defaults.LogLevel)
	v.SetDefault("log_format", defaults.LogFormat)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	if flags != nil {
		if err := bindFlags(v, flags); err != nil {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func bindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	for name, key := range flagKeys {
		flag := flags.Lookup(name)
		if flag == nil {
			continue
		}
		if err := v.BindPFlag(key, flag); err != nil {
			return fmt.Errorf("failed to bind flag %s: %w", name, err)
		}
	}
	return nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	return nil
}

// Addr returns the listen address for the HTTP server.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}
