// Package config handles loading and validating the soundpost configuration.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// ErrMissingCredential indicates that no upstream API credential was
// supplied. It is fatal at startup; the server never starts without one
// unless the stub provider is selected.
var ErrMissingCredential = errors.New("missing Deepgram API credential")

// Config is the root configuration for the soundpost daemon.
type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Health  HealthConfig  `mapstructure:"health"`
	TTS     TTSConfig     `mapstructure:"tts"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// ServerConfig holds the public HTTP server settings.
type ServerConfig struct {
	Port int `mapstructure:"port"`
}

// HealthConfig holds the ops listener settings (healthz, readyz, metrics).
type HealthConfig struct {
	Port int `mapstructure:"port"`
}

// TTSConfig selects and configures the synthesis provider.
type TTSConfig struct {
	Provider string         `mapstructure:"provider"` // "deepgram" or "stub"
	Deepgram DeepgramConfig `mapstructure:"deepgram"`
}

// DeepgramConfig holds Deepgram Aura API settings.
type DeepgramConfig struct {
	// APIKey is the upstream credential. The default value "${DEEPGRAM_API_KEY}"
	// is resolved from the environment at load time so the secret never has
	// to live in a config file.
	APIKey         string `mapstructure:"api_key"`
	BaseURL        string `mapstructure:"base_url"`
	Encoding       string `mapstructure:"encoding"`
	SampleRate     int    `mapstructure:"sample_rate"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds"`
}

// LoggingConfig holds structured logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Format string `mapstructure:"format"` // json, text
}

// Load reads the configuration from file, environment variables, and defaults.
// If configFile is non-empty it is used directly; otherwise the standard
// search order applies: ./soundpost.yaml, ./configs/soundpost.yaml, /etc/soundpost/soundpost.yaml.
func Load(configFile string) (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("server.port", 5000)
	v.SetDefault("health.port", 5001)
	v.SetDefault("tts.provider", "deepgram")
	v.SetDefault("tts.deepgram.api_key", "${DEEPGRAM_API_KEY}")
	v.SetDefault("tts.deepgram.base_url", "https://api.deepgram.com")
	v.SetDefault("tts.deepgram.encoding", "linear16")
	v.SetDefault("tts.deepgram.sample_rate", 24000)
	v.SetDefault("tts.deepgram.timeout_seconds", 30)
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")

	// Config file
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("soundpost")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./configs")
		v.AddConfigPath("/etc/soundpost")
	}

	// Environment variables: SOUNDPOST_SERVER_PORT, SOUNDPOST_TTS_PROVIDER, etc.
	v.SetEnvPrefix("SOUNDPOST")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Hosted platforms inject the listen port as PORT.
	_ = v.BindEnv("server.port", "SOUNDPOST_SERVER_PORT", "PORT")

	// Read config file (optional — env vars and defaults are sufficient)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config: %w", err)
		}
		slog.Info("no config file found, using defaults and environment variables")
	} else {
		slog.Info("loaded config file", "path", v.ConfigFileUsed())
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	// Resolve env var references in sensitive fields (e.g., "${DEEPGRAM_API_KEY}")
	cfg.TTS.Deepgram.APIKey = resolveEnvRef(cfg.TTS.Deepgram.APIKey)

	// Fail fast: a real provider without a credential is unusable, and the
	// failure should happen here rather than on the first request.
	if cfg.TTS.Provider != "stub" {
		if key := cfg.TTS.Deepgram.APIKey; key == "" || strings.HasPrefix(key, "${") {
			return nil, fmt.Errorf("tts.deepgram.api_key (or DEEPGRAM_API_KEY): %w", ErrMissingCredential)
		}
	}

	return &cfg, nil
}

// resolveEnvRef replaces "${VAR_NAME}" patterns with the corresponding env var value.
func resolveEnvRef(val string) string {
	if strings.HasPrefix(val, "${") && strings.HasSuffix(val, "}") {
		envKey := val[2 : len(val)-1]
		if envVal := os.Getenv(envKey); envVal != "" {
			return envVal
		}
	}
	return val
}

// SetupLogging configures the global slog logger based on config.
func SetupLogging(cfg LoggingConfig) {
	var level slog.Level
	switch strings.ToLower(cfg.Level) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if strings.ToLower(cfg.Format) == "text" {
		handler = slog.NewTextHandler(os.Stdout, opts)
	} else {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	}

	slog.SetDefault(slog.New(handler))
}
