// Package equity assigns heuristic values to game states. A fixed list
// of board features is combined linearly with a weight vector; the
// weights are what the optimizer searches over.
package equity

import "github.com/domino14/twenty48/game"

// An Evaluator turns a game state into a single scalar equity value.
// Higher is better for every evaluator in this package.
type Evaluator interface {
	Evaluate(g *game.Game) float64
}

// A Feature is one scalar property of a game state, computed without
// mutating it.
type Feature interface {
	Name() string
	Value(g *game.Game) float64
}
