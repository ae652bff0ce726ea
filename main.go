package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/go-term/internal/config"
	"github.com/robalobadob/wordle/apps/go-term/internal/daily"
	"github.com/robalobadob/wordle/apps/go-term/internal/game"
	"github.com/robalobadob/wordle/apps/go-term/internal/play"
	"github.com/robalobadob/wordle/apps/go-term/internal/tui"
	"github.com/robalobadob/wordle/apps/go-term/internal/words"
)

func main() {
	config.LoadDotEnv()
	cfg, err := config.Parse(os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	setupLogging(cfg, os.Stderr)

	dict, err := words.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load word list")
	}
	log.Debug().Int("words", dict.Len()).Msg("word list loaded")

	g, err := newGame(cfg, dict, time.Now())
	if err != nil {
		log.Fatal().Err(err).Msg("failed to start game")
	}

	scr := tui.NewTerminal(os.Stdout, cfg.UseColor(os.Stdout), cfg.Clear)
	os.Exit(exitCode(play.Run(g, os.Stdin, scr)))
}

// newGame picks the secret: a fixed answer, the day's word, or a random one.
func newGame(cfg *config.Config, dict *words.Dictionary, now time.Time) (*game.Game, error) {
	var (
		answer string
		err    error
		mode   = "random"
	)
	switch {
	case cfg.Answer != "":
		answer, mode = cfg.Answer, "fixed"
	case cfg.Daily:
		mode = "daily"
		answer, err = daily.Pick(dict, now, cfg.DailySalt)
	default:
		r, rerr := words.NewRand()
		if rerr != nil {
			return nil, rerr
		}
		answer, err = dict.PickRandom(r)
	}
	if err != nil {
		return nil, err
	}

	g, err := game.New(dict, answer)
	if err != nil {
		return nil, fmt.Errorf("%s answer %q: %w", mode, answer, err)
	}
	log.Debug().Str("mode", mode).Str("date", daily.DateKey(now)).Msg("game started")
	return g, nil
}

// exitCode maps the driver result to the process status: 0 for a finished
// game, 1 when input closed early or something broke.
func exitCode(st game.Status, err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, play.ErrAborted):
		return 1
	default:
		log.Error().Err(err).Str("status", st.String()).Msg("game stopped")
		return 1
	}
}
