// Package player contains the decision policies that pick a direction
// for a game state: the greedy one-ply lookahead player whose weights
// the optimizer tunes, and a couple of scripted players useful as
// baselines.
package player

import "github.com/domino14/twenty48/game"

// A Player picks the next move for a game state. The second return is
// false when the player has no move to offer; callers should only ask
// for an action while the game is alive.
type Player interface {
	GetAction(g *game.Game) (game.Direction, bool)
}

// A WeightedPlayer is a Player whose policy is parameterized by a
// weight vector that external tuning can read and replace.
type WeightedPlayer interface {
	Player
	GetWeights() []float64
	SetWeights(weights []float64) error
}
