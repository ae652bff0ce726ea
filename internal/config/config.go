// Package config loads runtime options from the environment (optionally a
// .env file) and command-line flags. Flags win over environment values.
package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/mattn/go-isatty"
)

// Color modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config holds all client options. None of them change the rules of play.
// Presentation options come from the environment and may be overridden by
// flags.
type Config struct {
	LogLevel  string `env:"WORDLE_LOG_LEVEL" envDefault:"warn"`
	Color     string `env:"WORDLE_COLOR" envDefault:"auto"`
	NoColor   string `env:"NO_COLOR"`
	Clear     bool   `env:"WORDLE_CLEAR" envDefault:"true"`

	// Secret selection. Flag only.
	Daily     bool
	DailySalt string
	Answer    string
}

// LoadDotEnv loads .env into the process environment if present.
// Existing variables are not overridden.
func LoadDotEnv(files ...string) {
	_ = godotenv.Load(files...)
}

// Parse reads the environment, then applies flags from args.
func Parse(args []string) (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	fs := flag.NewFlagSet("wordle", flag.ContinueOnError)
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level (debug, info, warn, error)")
	fs.StringVar(&cfg.Color, "color", cfg.Color, "color output: auto, always, never")
	fs.BoolVar(&cfg.Clear, "clear", cfg.Clear, "clear the screen between turns")
	fs.BoolVar(&cfg.Daily, "daily", false, "play today's shared word")
	fs.StringVar(&cfg.DailySalt, "daily-salt", "wordle", "salt for daily word selection")
	fs.StringVar(&cfg.Answer, "answer", "", "fix the secret word (must be in the word list)")
	if args == nil {
		args = []string{}
	}
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks option values.
func (c *Config) Validate() error {
	c.Color = strings.ToLower(strings.TrimSpace(c.Color))
	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("config: unknown color mode %q", c.Color)
	}
	if c.Daily && c.Answer != "" {
		return errors.New("config: -daily and -answer are mutually exclusive")
	}
	return nil
}

// UseColor resolves the color mode for f. NO_COLOR disables color unless
// it is forced with "always".
func (c *Config) UseColor(f *os.File) bool {
	switch c.Color {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	}
	if c.NoColor != "" {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
