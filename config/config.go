// Package config holds the knobs shared by the autoplay and optimizer
// drivers.
package config

import (
	"fmt"
	"runtime"
	"strconv"
	"strings"

	"github.com/namsral/flag"
)

type Config struct {
	Rows    int
	Cols    int
	Threads int
	// Seed makes runs reproducible; 0 draws a random seed.
	Seed uint64

	// Autoplay settings.
	NumGames   int
	PlayerType string
	Weights    string
	Expectimax bool

	// Optimizer settings.
	NumSamples     int
	GamesPerSample int
	EliteFraction  float64
	Noise          float64
	InitVariance   float64
	MaxGenerations int

	OutputFile string
	LogFile    string
	Debug      bool
}

func DefaultConfig() *Config {
	return &Config{
		Rows:           4,
		Cols:           4,
		Threads:        runtime.NumCPU(),
		NumGames:       100,
		PlayerType:     "greedy",
		NumSamples:     100,
		GamesPerSample: 10,
		EliteFraction:  0.1,
		Noise:          4.0,
		InitVariance:   100.0,
	}
}

func (c *Config) Load(args []string) error {
	fs := flag.NewFlagSet("twenty48", flag.ContinueOnError)
	fs.IntVar(&c.Rows, "rows", c.Rows, "number of board rows")
	fs.IntVar(&c.Cols, "cols", c.Cols, "number of board columns")
	fs.IntVar(&c.Threads, "threads", c.Threads, "number of worker threads")
	fs.Uint64Var(&c.Seed, "seed", c.Seed, "random seed; 0 picks one randomly")
	fs.IntVar(&c.NumGames, "games", c.NumGames, "number of games to play")
	fs.StringVar(&c.PlayerType, "player", c.PlayerType, "player type: greedy, cycling, konami, or sequence:<moves>")
	fs.StringVar(&c.Weights, "weights", c.Weights, "comma-separated feature weights for the greedy player")
	fs.BoolVar(&c.Expectimax, "expectimax", c.Expectimax, "average evaluations over all possible tile spawns")
	fs.IntVar(&c.NumSamples, "samples", c.NumSamples, "weight vectors sampled per generation")
	fs.IntVar(&c.GamesPerSample, "games-per-sample", c.GamesPerSample, "games played to score each sampled vector")
	fs.Float64Var(&c.EliteFraction, "elite-fraction", c.EliteFraction, "fraction of top samples used to refit the distribution")
	fs.Float64Var(&c.Noise, "noise", c.Noise, "exploration noise added to the refit variance")
	fs.Float64Var(&c.InitVariance, "init-variance", c.InitVariance, "initial per-dimension sampling variance")
	fs.IntVar(&c.MaxGenerations, "max-generations", c.MaxGenerations, "generations to run; 0 runs until interrupted")
	fs.StringVar(&c.OutputFile, "output", c.OutputFile, "CSV file for per-game results")
	fs.StringVar(&c.LogFile, "logfile", c.LogFile, "YAML log of optimizer generations")
	fs.BoolVar(&c.Debug, "debug", c.Debug, "debug logging")
	return fs.Parse(args)
}

// WeightVector parses the comma-separated weights flag. An empty flag
// returns nil, which callers treat as "use the default weights".
func (c *Config) WeightVector() ([]float64, error) {
	if c.Weights == "" {
		return nil, nil
	}
	fields := strings.Split(c.Weights, ",")
	weights := make([]float64, len(fields))
	for i, f := range fields {
		w, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return nil, fmt.Errorf("bad weight %q: %w", f, err)
		}
		weights[i] = w
	}
	return weights, nil
}
