// Package automatic plays out full games between a player and the game
// engine, one at a time or in bulk across worker threads. It supplies
// the fitness signal for the optimizer and the data for the autoplay
// driver.
package automatic

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/domino14/twenty48/config"
	"github.com/domino14/twenty48/game"
	"github.com/domino14/twenty48/player"
)

// GameRunner plays full games with a single player. It is not safe for
// concurrent use; the batch driver creates one runner per worker.
type GameRunner struct {
	player  player.Player
	cfg     *config.Config
	logchan chan string
}

// NewGameRunner just instantiates and initializes a game runner.
func NewGameRunner(p player.Player, cfg *config.Config, logchan chan string) *GameRunner {
	return &GameRunner{player: p, cfg: cfg, logchan: logchan}
}

// GameResult summarizes one finished game.
type GameResult struct {
	Seed     uint64
	Score    int
	BestTile int
	Turns    int
}

// PlayFullGame plays a fresh game to liveness-termination and returns
// its result. The seed fully determines the spawn sequence, so the same
// seed and player produce the same game.
func (r *GameRunner) PlayFullGame(seed uint64) GameResult {
	g := game.NewGame(r.cfg.Rows, r.cfg.Cols, seed)
	turns := 0
	for g.IsAlive() {
		dir, ok := r.player.GetAction(g)
		if !ok {
			break
		}
		if !g.Move(dir, true) {
			// Scripted players can propose moves that cannot slide.
			continue
		}
		turns++
	}
	res := GameResult{Seed: seed, Score: g.Score(), BestTile: g.BestTile(), Turns: turns}
	log.Debug().Uint64("seed", seed).Int("score", res.Score).
		Int("best-tile", res.BestTile).Int("turns", res.Turns).
		Msg("game over")
	if r.logchan != nil {
		r.logchan <- fmt.Sprintf("%d,%d,%d,%d\n", res.Seed, res.Turns, res.Score, res.BestTile)
	}
	return res
}
