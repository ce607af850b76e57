package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"sort"
	"strings"
	"syscall"

	"github.com/aybabtme/uniplot/histogram"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/domino14/twenty48/automatic"
	"github.com/domino14/twenty48/config"
	"github.com/domino14/twenty48/equity"
	"github.com/domino14/twenty48/player"
)

func playerFactory(cfg *config.Config) (func() (player.Player, error), error) {
	switch {
	case cfg.PlayerType == "greedy":
		weights, err := cfg.WeightVector()
		if err != nil {
			return nil, err
		}
		if weights == nil {
			weights = equity.DefaultWeights
		}
		return func() (player.Player, error) {
			return player.NewGreedyPlayer(weights, cfg.Expectimax)
		}, nil
	case cfg.PlayerType == "cycling":
		return func() (player.Player, error) {
			return player.NewCyclingPlayer(), nil
		}, nil
	case cfg.PlayerType == "konami":
		return func() (player.Player, error) {
			return player.NewKonamiPlayer(), nil
		}, nil
	case strings.HasPrefix(cfg.PlayerType, "sequence:"):
		seq := strings.TrimPrefix(cfg.PlayerType, "sequence:")
		return func() (player.Player, error) {
			return player.NewSequencePlayer(seq)
		}, nil
	}
	return nil, fmt.Errorf("unknown player type %q", cfg.PlayerType)
}

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

	newPlayer, err := playerFactory(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("creating player")
	}

	batch, err := automatic.StartAutoplayGames(ctx, cfg, newPlayer,
		cfg.NumGames, cfg.Threads, cfg.OutputFile)
	if err != nil && !errors.Is(err, context.Canceled) {
		log.Fatal().Err(err).Msg("playing games")
	}
	if batch.Games == 0 {
		return
	}

	fmt.Printf("played %d games with the %s player\n", batch.Games, cfg.PlayerType)
	fmt.Printf("mean score: %.1f ± %.1f (95%% CI), stdev %.1f\n",
		batch.ScoreStats.Mean(),
		batch.ScoreStats.ConfidenceInterval(95),
		batch.ScoreStats.Stdev())
	fmt.Printf("mean turns: %.1f, max score: %d\n", batch.TurnStats.Mean(), batch.MaxScore)

	tiles := make([]int, 0, len(batch.BestTiles))
	for tile := range batch.BestTiles {
		tiles = append(tiles, tile)
	}
	sort.Ints(tiles)
	fmt.Println("best tiles reached:")
	for _, tile := range tiles {
		fmt.Printf("  %6d: %d games\n", tile, batch.BestTiles[tile])
	}

	fmt.Println("score distribution:")
	hist := histogram.Hist(10, batch.Scores)
	if err := histogram.Fprint(os.Stdout, hist, histogram.Linear(40)); err != nil {
		log.Err(err).Msg("printing histogram")
	}
}
