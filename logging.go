package main

import (
	"os"
	"time"

	"github.com/mattn/go-colorable"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/go-term/internal/config"
)

// setupLogging points the global logger at a console writer on f.
// Unknown levels fall back to warn.
func setupLogging(cfg *config.Config, f *os.File) {
	lvl, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.WarnLevel
	}
	zerolog.SetGlobalLevel(lvl)

	w := zerolog.ConsoleWriter{
		Out:        colorable.NewColorable(f),
		NoColor:    !cfg.UseColor(f),
		TimeFormat: time.Kitchen,
	}
	log.Logger = zerolog.New(w).With().Timestamp().Logger()
}
