package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/domino14/twenty48/cem"
	"github.com/domino14/twenty48/config"
	"github.com/domino14/twenty48/equity"
)

func main() {
	cfg := config.DefaultConfig()
	if err := cfg.Load(os.Args[1:]); err != nil {
		log.Fatal().Err(err).Msg("loading config")
	}
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if cfg.Debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	optimizer := cem.NewOptimizer(cfg)
	if cfg.LogFile != "" {
		logfile, err := os.Create(cfg.LogFile)
		if err != nil {
			log.Fatal().Err(err).Msg("creating log file")
		}
		defer logfile.Close()
		optimizer.SetLogWriter(logfile)
	}

	log.Info().
		Int("samples", cfg.NumSamples).
		Int("games-per-sample", cfg.GamesPerSample).
		Bool("expectimax", cfg.Expectimax).
		Msg("starting optimization; interrupt to stop")

	err := optimizer.Run(ctx)
	if err != nil && !errors.Is(err, context.Canceled) {
		log.Fatal().Err(err).Msg("optimizer error")
	}

	best, ok := optimizer.Best()
	if !ok {
		log.Warn().Msg("no generation completed")
		return
	}
	fmt.Printf("best mean score after %d generations: %.1f\n",
		optimizer.Generation(), best.Fitness)
	fmt.Println("weights:")
	for i, name := range equity.FeatureNames() {
		fmt.Printf("  %-20s %10.4f\n", name, best.Weights[i])
	}
}
