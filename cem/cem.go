// Package cem implements the cross-entropy method for tuning the
// greedy player's feature weights. Each generation samples weight
// vectors from independent per-dimension Gaussians, scores every
// vector by playing full games with it, and refits the Gaussians from
// the top-scoring fraction of the samples.
package cem

import (
	"context"
	"fmt"
	"io"
	"math"
	"math/rand/v2"
	"sort"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/stat/distuv"
	"gopkg.in/yaml.v3"

	"github.com/domino14/twenty48/automatic"
	"github.com/domino14/twenty48/config"
	"github.com/domino14/twenty48/equity"
	"github.com/domino14/twenty48/player"
	"github.com/domino14/twenty48/stats"
)

// SampleDistribution is an independent Gaussian per weight dimension.
type SampleDistribution struct {
	Means     []float64
	Variances []float64
}

func newSampleDistribution(dims int, variance float64) *SampleDistribution {
	d := &SampleDistribution{
		Means:     make([]float64, dims),
		Variances: make([]float64, dims),
	}
	for i := range d.Variances {
		d.Variances[i] = variance
	}
	return d
}

// ScoredSample pairs a sampled weight vector with its measured mean
// game score.
type ScoredSample struct {
	Weights []float64
	Fitness float64
}

// Optimizer runs the generation loop. Create one with NewOptimizer and
// drive it with Run.
type Optimizer struct {
	cfg        *config.Config
	dist       *SampleDistribution
	sampleRng  *rand.Rand
	seedRng    *rand.Rand
	generation int
	best       ScoredSample
	hasBest    bool
	logWriter  io.Writer

	// evaluate scores one weight vector; it is a field so tests can
	// substitute a cheap deterministic fitness function.
	evaluate func(ctx context.Context, weights []float64, seed uint64) (float64, error)
}

func NewOptimizer(cfg *config.Config) *Optimizer {
	baseSeed := automatic.BaseSeed(cfg)
	o := &Optimizer{
		cfg:       cfg,
		dist:      newSampleDistribution(equity.NumFeatures(), cfg.InitVariance),
		sampleRng: rand.New(rand.NewPCG(baseSeed, 1)),
		seedRng:   rand.New(rand.NewPCG(baseSeed, 2)),
	}
	o.evaluate = o.playGames
	return o
}

// SetLogWriter directs a YAML document per generation to w.
func (o *Optimizer) SetLogWriter(w io.Writer) {
	o.logWriter = w
}

// Best returns the best (weights, fitness) pair seen across all
// generations so far.
func (o *Optimizer) Best() (ScoredSample, bool) {
	return o.best, o.hasBest
}

// Distribution returns the current sampling distribution.
func (o *Optimizer) Distribution() *SampleDistribution {
	return o.dist
}

// Generation returns the number of completed generations.
func (o *Optimizer) Generation() int {
	return o.generation
}

// Run executes generations until ctx is cancelled or, if the config
// caps MaxGenerations above zero, until that many have completed.
// Cancellation is checked between generations and between games, so a
// stop signal never loses more than the work in flight.
func (o *Optimizer) Run(ctx context.Context) error {
	for o.cfg.MaxGenerations == 0 || o.generation < o.cfg.MaxGenerations {
		if err := ctx.Err(); err != nil {
			log.Info().Int("generation", o.generation).Msg("stopping optimizer")
			return err
		}
		report, err := o.runGeneration(ctx)
		if err != nil {
			return err
		}
		o.generation++
		log.Info().
			Int("generation", report.Generation).
			Float64("mean-fitness", report.MeanFitness).
			Float64("elite-mean-fitness", report.EliteMeanFitness).
			Float64("best-fitness", report.BestFitness).
			Floats64("best-weights", report.BestWeights).
			Msg("generation complete")
		if o.logWriter != nil {
			if err := o.writeLog(report); err != nil {
				return err
			}
		}
	}
	return nil
}

func (o *Optimizer) runGeneration(ctx context.Context) (*LogGeneration, error) {
	n := o.cfg.NumSamples
	samples := make([]ScoredSample, n)
	seeds := make([]uint64, n)
	for i := range samples {
		samples[i].Weights = o.sampleVector()
		seeds[i] = o.seedRng.Uint64()
	}

	threads := o.cfg.Threads
	if threads < 1 {
		threads = 1
	}
	eg, ectx := errgroup.WithContext(ctx)
	eg.SetLimit(threads)
	for i := range samples {
		eg.Go(func() error {
			fitness, err := o.evaluate(ectx, samples[i].Weights, seeds[i])
			if err != nil {
				return err
			}
			samples[i].Fitness = fitness
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	sort.Slice(samples, func(i, j int) bool {
		return samples[i].Fitness > samples[j].Fitness
	})
	numElite := int(float64(n) * o.cfg.EliteFraction)
	if numElite < 1 {
		numElite = 1
	}
	elite := samples[:numElite]

	var eliteStat, genStat stats.Statistic
	for _, s := range samples {
		genStat.Push(s.Fitness)
	}
	for _, s := range elite {
		eliteStat.Push(s.Fitness)
	}

	for d := range o.dist.Means {
		vals := lo.Map(elite, func(s ScoredSample, _ int) float64 {
			return s.Weights[d]
		})
		mean, variance := stats.MeanAndPopVariance(vals)
		o.dist.Means[d] = mean
		o.dist.Variances[d] = variance + o.cfg.Noise
	}

	if top := samples[0]; !o.hasBest || top.Fitness > o.best.Fitness {
		weights := make([]float64, len(top.Weights))
		copy(weights, top.Weights)
		o.best = ScoredSample{Weights: weights, Fitness: top.Fitness}
		o.hasBest = true
	}

	return &LogGeneration{
		Generation:       o.generation,
		MeanFitness:      genStat.Mean(),
		EliteMeanFitness: eliteStat.Mean(),
		BestFitness:      o.best.Fitness,
		BestWeights:      o.best.Weights,
	}, nil
}

// sampleVector draws one weight vector from the current distribution,
// one exact Gaussian draw per dimension.
func (o *Optimizer) sampleVector() []float64 {
	w := make([]float64, len(o.dist.Means))
	for d := range w {
		normal := distuv.Normal{
			Mu:    o.dist.Means[d],
			Sigma: math.Sqrt(o.dist.Variances[d]),
			Src:   o.sampleRng,
		}
		w[d] = normal.Rand()
	}
	return w
}

// playGames is the real fitness function: the mean score of a batch of
// full games played by a greedy player with the given weights.
func (o *Optimizer) playGames(ctx context.Context, weights []float64, seed uint64) (float64, error) {
	p, err := player.NewGreedyPlayer(weights, o.cfg.Expectimax)
	if err != nil {
		return 0, err
	}
	runner := automatic.NewGameRunner(p, o.cfg, nil)
	gameRng := rand.New(rand.NewPCG(seed, 0))
	var st stats.Statistic
	for i := 0; i < o.cfg.GamesPerSample; i++ {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		gameSeed := gameRng.Uint64()
		if gameSeed == 0 {
			gameSeed = 1
		}
		res := runner.PlayFullGame(gameSeed)
		st.Push(float64(res.Score))
	}
	return st.Mean(), nil
}

func (o *Optimizer) writeLog(report *LogGeneration) error {
	data, err := yaml.Marshal(report)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintf(o.logWriter, "---\n%s", data); err != nil {
		return err
	}
	return nil
}
