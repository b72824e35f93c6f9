package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/passgen/passgen-go/internal/generator"
)

type Config struct {
	Port      string
	Env       string
	LogLevel  slog.Level
	Defaults  generator.Options
	MaxLength int
	Seed      *uint64
	RateRPS   float64
	RateBurst int
}

func Load() Config {
	defaults := generator.Resolve(generator.DefaultOptions(), generator.Overrides{
		Numbers:           generator.ParseClassSpec(os.Getenv("PASSGEN_NUMBERS")),
		Letters:           generator.ParseClassSpec(os.Getenv("PASSGEN_LETTERS")),
		SpecialCharacters: generator.ParseClassSpec(os.Getenv("PASSGEN_SPECIAL_CHARACTERS")),
		Uppercase:         boolPtr(getEnvBool("PASSGEN_UPPERCASE", true)),
		Length:            intPtr(getEnvInt("PASSGEN_LENGTH", 20)),
	}).Options()

	cfg := Config{
		Port:      getEnv("PORT", "8080"),
		Env:       getEnv("ENV", "development"),
		LogLevel:  parseLevel(getEnv("LOG_LEVEL", "info")),
		Defaults:  defaults,
		MaxLength: getEnvInt("PASSGEN_MAX_LENGTH", 4096),
		RateRPS:   getEnvFloat("RATE_LIMIT_RPS", 10),
		RateBurst: getEnvInt("RATE_LIMIT_BURST", 20),
	}

	if v := os.Getenv("PASSGEN_SEED"); v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			slog.Warn("ignoring invalid PASSGEN_SEED", "value", v, "error", err)
		} else {
			cfg.Seed = &seed
		}
	}

	if cfg.Defaults.Length <= 0 {
		if cfg.Env == "production" {
			slog.Error("PASSGEN_LENGTH must be positive in production environment")
			os.Exit(1)
		}
		slog.Warn("PASSGEN_LENGTH is not positive, requests without a length will fail", "length", cfg.Defaults.Length)
	}

	return cfg
}

// Source returns the random source selected by the configuration.
func (c Config) Source() generator.Source {
	if c.Seed != nil {
		return generator.NewSource(*c.Seed)
	}
	return generator.DefaultSource()
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		slog.Warn("invalid integer in environment, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return n
}

func getEnvFloat(key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil {
		slog.Warn("invalid number in environment, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return f
}

func getEnvBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(strings.TrimSpace(v))
	if err != nil {
		slog.Warn("invalid boolean in environment, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return b
}

func parseLevel(s string) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		slog.Warn("invalid LOG_LEVEL, using info", "value", s)
		return slog.LevelInfo
	}
	return level
}

func boolPtr(b bool) *bool { return &b }
func intPtr(n int) *int    { return &n }
