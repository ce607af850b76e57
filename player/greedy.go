package player

import (
	"math"

	"github.com/rs/zerolog/log"

	"github.com/domino14/twenty48/equity"
	"github.com/domino14/twenty48/game"
)

// GreedyPlayer does one-ply lookahead: it simulates each direction
// without spawning, scores the result with its evaluator, undoes the
// simulation, and picks the arg-max. Ties keep the earliest direction
// in canonical order, since later candidates must strictly exceed the
// best seen so far.
type GreedyPlayer struct {
	linear *equity.LinearEvaluator
	eval   equity.Evaluator
}

// NewGreedyPlayer creates a greedy player over the canonical feature
// list. If expectSpawns is true, simulated moves are scored with the
// expectation over all possible tile spawns instead of the plain
// evaluation.
func NewGreedyPlayer(weights []float64, expectSpawns bool) (*GreedyPlayer, error) {
	linear, err := equity.NewLinearEvaluator(nil, weights)
	if err != nil {
		return nil, err
	}
	p := &GreedyPlayer{linear: linear, eval: linear}
	if expectSpawns {
		p.eval = equity.ExpectedSpawnEvaluator{Inner: linear}
	}
	return p, nil
}

// GetAction returns the best direction by one-ply lookahead, or false
// if no direction can move.
func (p *GreedyPlayer) GetAction(g *game.Game) (game.Direction, bool) {
	best := game.Right
	bestVal := math.Inf(-1)
	found := false
	for dir := game.Right; dir < game.NumDirections; dir++ {
		if !g.Move(dir, false) {
			continue
		}
		val := p.eval.Evaluate(g)
		if err := g.Undo(); err != nil {
			log.Panic().Err(err).Msg("undo after simulated move")
		}
		if !found || val > bestVal {
			found = true
			best = dir
			bestVal = val
		}
	}
	return best, found
}

// GetWeights returns a copy of the player's weight vector.
func (p *GreedyPlayer) GetWeights() []float64 {
	return p.linear.Weights()
}

// SetWeights replaces the player's weight vector. The length must match
// the feature count.
func (p *GreedyPlayer) SetWeights(weights []float64) error {
	return p.linear.SetWeights(weights)
}
