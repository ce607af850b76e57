package automatic

// Bulk game-playing over a worker pool, with optional per-game CSV
// logging. Used by the autoplay driver directly and, one runner at a
// time, by the optimizer's fitness evaluation.

import (
	"context"
	"errors"
	"expvar"
	"math/rand/v2"
	"os"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
	"lukechampine.com/frand"

	"github.com/domino14/twenty48/config"
	"github.com/domino14/twenty48/player"
	"github.com/domino14/twenty48/stats"
)

var (
	GamesPlayed *expvar.Int
	IsPlaying   *expvar.Int
)

func init() {
	GamesPlayed = expvar.NewInt("gamesPlayed")
	IsPlaying = expvar.NewInt("isPlaying")
}

type Job struct {
	seed uint64
}

// BatchResult aggregates the outcomes of a batch of games.
type BatchResult struct {
	Games      int
	Scores     []float64
	ScoreStats stats.Statistic
	TurnStats  stats.Statistic
	MaxScore   int
	BestTiles  map[int]int
}

func (b *BatchResult) add(res GameResult) {
	b.Games++
	b.Scores = append(b.Scores, float64(res.Score))
	b.ScoreStats.Push(float64(res.Score))
	b.TurnStats.Push(float64(res.Turns))
	if res.Score > b.MaxScore {
		b.MaxScore = res.Score
	}
	b.BestTiles[res.BestTile]++
}

// BaseSeed resolves the configured seed, drawing a random one when the
// config leaves it at 0.
func BaseSeed(cfg *config.Config) uint64 {
	if cfg.Seed != 0 {
		return cfg.Seed
	}
	return frand.Uint64n(1<<63) + 1
}

// StartAutoplayGames plays numGames full games across the given number
// of worker threads and blocks until they finish or ctx is cancelled.
// Each worker gets its own player from newPlayer and its own runner, so
// no state is shared between concurrent games. When outputFilename is
// not empty, a CSV line per game is written there. On cancellation the
// partial results are returned along with the context's error.
func StartAutoplayGames(ctx context.Context, cfg *config.Config,
	newPlayer func() (player.Player, error), numGames, threads int,
	outputFilename string) (*BatchResult, error) {

	if IsPlaying.Value() > 0 {
		return nil, errors.New("games are already being played, please wait till complete")
	}
	if threads < 1 {
		threads = 1
	}

	var logChan chan string
	writerDone := make(chan struct{})
	if outputFilename != "" {
		logfile, err := os.Create(outputFilename)
		if err != nil {
			return nil, err
		}
		logChan = make(chan string, 100)
		go func() {
			logfile.WriteString("seed,turns,score,besttile\n")
			for msg := range logChan {
				logfile.WriteString(msg)
			}
			logfile.Close()
			close(writerDone)
		}()
	} else {
		close(writerDone)
	}

	log.Debug().Msgf("Starting %v games, %v threads", numGames, threads)
	GamesPlayed.Set(0)

	jobs := make(chan Job, 100)
	results := make(chan GameResult, 100)
	eg, wctx := errgroup.WithContext(ctx)

	for t := 0; t < threads; t++ {
		eg.Go(func() error {
			p, err := newPlayer()
			if err != nil {
				return err
			}
			runner := NewGameRunner(p, cfg, logChan)
			IsPlaying.Add(1)
			defer IsPlaying.Add(-1)
			for j := range jobs {
				select {
				case <-wctx.Done():
					return wctx.Err()
				default:
				}
				res := runner.PlayFullGame(j.seed)
				GamesPlayed.Add(1)
				select {
				case results <- res:
				case <-wctx.Done():
					return wctx.Err()
				}
			}
			return nil
		})
	}

	go func() {
		seedRng := rand.New(rand.NewPCG(BaseSeed(cfg), 0))
	gameLoop:
		for i := 1; i <= numGames; i++ {
			seed := seedRng.Uint64()
			if seed == 0 {
				seed = 1
			}
			select {
			case jobs <- Job{seed: seed}:
			case <-wctx.Done():
				log.Info().Msg("Got stop signal, exiting soon...")
				break gameLoop
			}
			if i%1000 == 0 {
				log.Debug().Msgf("Queued %v jobs", i)
			}
		}
		close(jobs)
	}()

	go func() {
		eg.Wait()
		close(results)
		if logChan != nil {
			close(logChan)
		}
	}()

	batch := &BatchResult{BestTiles: map[int]int{}}
	for res := range results {
		batch.add(res)
	}
	err := eg.Wait()
	<-writerDone
	if err != nil {
		return batch, err
	}
	log.Info().Msg("All games finished.")
	return batch, nil
}
