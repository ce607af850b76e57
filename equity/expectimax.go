package equity

import "github.com/domino14/twenty48/game"

// ExpectedSpawnEvaluator scores a post-move, pre-spawn state by
// averaging an inner evaluator over every possible next spawn: each
// empty cell receives a 2 with probability 0.9 and a 4 with probability
// 0.1, and the 0.9/0.1-weighted values are averaged over the empty
// cells. The state must have at least one empty cell, which always
// holds right after a successful move.
type ExpectedSpawnEvaluator struct {
	Inner Evaluator
}

// Evaluate temporarily places each hypothetical spawn tile on the live
// board and restores it, so the state is unchanged on return.
func (e ExpectedSpawnEvaluator) Evaluate(g *game.Game) float64 {
	b := g.Board()
	empties := b.EmptyCells()
	if len(empties) == 0 {
		panic("expectation over spawns requested with no empty cells")
	}
	total := 0.0
	for _, idx := range empties {
		b.SetCell(idx, 2)
		total += game.TwoTileProbability * e.Inner.Evaluate(g)
		b.SetCell(idx, 4)
		total += game.FourTileProbability * e.Inner.Evaluate(g)
		b.SetCell(idx, 0)
	}
	return total / float64(len(empties))
}
