package config

import (
	"log/slog"
	"testing"

	"github.com/passgen/passgen-go/internal/generator"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{
		"PORT", "ENV", "LOG_LEVEL", "PASSGEN_NUMBERS", "PASSGEN_LETTERS", "PASSGEN_SPECIAL_CHARACTERS",
		"PASSGEN_UPPERCASE", "PASSGEN_LENGTH", "PASSGEN_MAX_LENGTH", "PASSGEN_SEED",
		"RATE_LIMIT_RPS", "RATE_LIMIT_BURST",
	} {
		t.Setenv(key, "")
	}

	cfg := Load()
	if cfg.Port != "8080" || cfg.Env != "development" {
		t.Errorf("unexpected port/env: %q/%q", cfg.Port, cfg.Env)
	}
	if cfg.LogLevel != slog.LevelInfo {
		t.Errorf("expected info level, got %v", cfg.LogLevel)
	}
	if cfg.Defaults != generator.DefaultOptions() {
		t.Errorf("expected built-in defaults, got %+v", cfg.Defaults)
	}
	if cfg.MaxLength != 4096 || cfg.RateRPS != 10 || cfg.RateBurst != 20 {
		t.Errorf("unexpected limits: %d %v %d", cfg.MaxLength, cfg.RateRPS, cfg.RateBurst)
	}
	if cfg.Seed != nil {
		t.Errorf("expected no seed, got %d", *cfg.Seed)
	}
}

func TestLoadGeneratorOverrides(t *testing.T) {
	t.Setenv("PASSGEN_NUMBERS", "false")
	t.Setenv("PASSGEN_LETTERS", "abc")
	t.Setenv("PASSGEN_SPECIAL_CHARACTERS", "on")
	t.Setenv("PASSGEN_UPPERCASE", "false")
	t.Setenv("PASSGEN_LENGTH", "32")
	t.Setenv("PASSGEN_SEED", "99")
	t.Setenv("LOG_LEVEL", "debug")

	cfg := Load()
	want := generator.Options{
		Numbers:           generator.Disabled(),
		Letters:           generator.Custom("abc"),
		SpecialCharacters: generator.Custom(generator.SpecialCharacters.Builtin()),
		Uppercase:         false,
		Length:            32,
	}
	if cfg.Defaults != want {
		t.Errorf("Defaults = %+v, want %+v", cfg.Defaults, want)
	}
	if cfg.Seed == nil || *cfg.Seed != 99 {
		t.Errorf("expected seed 99, got %v", cfg.Seed)
	}
	if cfg.LogLevel != slog.LevelDebug {
		t.Errorf("expected debug level, got %v", cfg.LogLevel)
	}
}

func TestLoadInvalidValuesFallBack(t *testing.T) {
	t.Setenv("ENV", "development")
	t.Setenv("PASSGEN_LENGTH", "twenty")
	t.Setenv("PASSGEN_UPPERCASE", "maybe")
	t.Setenv("PASSGEN_SEED", "-1")
	t.Setenv("RATE_LIMIT_RPS", "fast")

	cfg := Load()
	if cfg.Defaults.Length != 20 || !cfg.Defaults.Uppercase {
		t.Errorf("expected fallback length 20 and uppercase, got %d %v", cfg.Defaults.Length, cfg.Defaults.Uppercase)
	}
	if cfg.Seed != nil {
		t.Error("expected invalid seed to be ignored")
	}
	if cfg.RateRPS != 10 {
		t.Errorf("expected fallback rps 10, got %v", cfg.RateRPS)
	}
}

func TestSeededSourceIsDeterministic(t *testing.T) {
	seed := uint64(5)
	cfg := Config{Defaults: generator.DefaultOptions(), Seed: &seed}

	a, err := generator.Generate(cfg.Defaults, generator.Overrides{}, cfg.Source())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := generator.Generate(cfg.Defaults, generator.Overrides{}, cfg.Source())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a != b {
		t.Errorf("expected identical passwords for the same seed, got %q and %q", a, b)
	}
}
