package main

import (
	"context"
	crand "crypto/rand"
	"encoding/binary"
	"errors"
	"io"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/memory/internal/config"
	"github.com/robalobadob/memory/internal/console"
	"github.com/robalobadob/memory/internal/daily"
	"github.com/robalobadob/memory/internal/game"
	"github.com/robalobadob/memory/internal/grid"
	"github.com/robalobadob/memory/internal/labels"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	pool, err := labels.Load(cfg.LabelsFile)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load labels")
	}

	seed := boardSeed(cfg, crand.Reader, time.Now())
	g, err := grid.New(pool, cfg.GridSize, cfg.HiddenLabel, rand.New(rand.NewSource(seed)))
	if err != nil {
		log.Fatal().Err(err).Int("labels", len(pool)).Int("size", cfg.GridSize).Msg("cannot build grid")
	}
	s := game.NewSession(g)
	log.Info().Str("session", s.ID).Int("size", g.Size()).Int64("seed", seed).Bool("daily", cfg.Daily).Msg("starting memory game")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	res, err := console.Run(ctx, os.Stdin, os.Stdout, s, console.Options{ClearScreen: cfg.ClearScreen})
	switch {
	case errors.Is(err, context.Canceled):
		log.Info().Int("tries", res.Tries).Msg("interrupted")
	case err != nil:
		log.Fatal().Err(err).Msg("input error")
	case !res.Won:
		log.Info().Int("tries", res.Tries).Msg("input closed before the board was solved")
	}
}

// boardSeed picks the RNG seed: the daily seed, SEED, or one read from
// entropy. If entropy fails the clock is used instead.
func boardSeed(cfg config.Config, entropy io.Reader, now time.Time) int64 {
	if cfg.Daily {
		return daily.Seed(now, cfg.DailySalt)
	}
	if cfg.HasSeed {
		return cfg.Seed
	}
	var b [8]byte
	if _, err := io.ReadFull(entropy, b[:]); err != nil {
		log.Warn().Err(err).Msg("random seed unavailable, using clock")
		return now.UnixNano()
	}
	return int64(binary.BigEndian.Uint64(b[:]) >> 1)
}
