package equity

import (
	"math"

	"github.com/domino14/twenty48/game"
)

// Monotonicity rewards boards whose tiles increase toward one edge.
// Per axis we accumulate, over all adjacent pairs, the log2 magnitudes
// of value changes that disagree with each of the two scan directions,
// and keep the smaller disagreement (i.e. the better of the two
// directions). The result is the negated sum over both axes, so a
// perfectly monotone board scores 0 and everything else scores below
// it. Empty cells count as value 0 on the log scale.
type Monotonicity struct{}

func (Monotonicity) Name() string { return "monotonicity" }

func (Monotonicity) Value(g *game.Game) float64 {
	b := g.Board()
	rows, cols := b.Dim()

	var rowInc, rowDec float64
	for r := 0; r < rows; r++ {
		for c := 0; c+1 < cols; c++ {
			cur := logTile(b.GetSquare(r, c))
			next := logTile(b.GetSquare(r, c+1))
			if next > cur {
				rowInc += next - cur
			} else {
				rowDec += cur - next
			}
		}
	}
	var colInc, colDec float64
	for c := 0; c < cols; c++ {
		for r := 0; r+1 < rows; r++ {
			cur := logTile(b.GetSquare(r, c))
			next := logTile(b.GetSquare(r+1, c))
			if next > cur {
				colInc += next - cur
			} else {
				colDec += cur - next
			}
		}
	}
	return -(math.Min(rowInc, rowDec) + math.Min(colInc, colDec))
}

// Smoothness is the negated sum, over all adjacent non-empty cell pairs,
// of the log2 magnitude of their value difference. Pairs involving an
// empty cell contribute nothing, as does a pair of equal tiles.
type Smoothness struct{}

func (Smoothness) Name() string { return "smoothness" }

func (Smoothness) Value(g *game.Game) float64 {
	b := g.Board()
	rows, cols := b.Dim()
	penalty := 0.0
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			v := b.GetSquare(r, c)
			if v == 0 {
				continue
			}
			lv := logTile(v)
			if c+1 < cols {
				if right := b.GetSquare(r, c+1); right != 0 {
					penalty += math.Abs(lv - logTile(right))
				}
			}
			if r+1 < rows {
				if down := b.GetSquare(r+1, c); down != 0 {
					penalty += math.Abs(lv - logTile(down))
				}
			}
		}
	}
	return -penalty
}

// FreeCells counts the empty cells on the board.
type FreeCells struct{}

func (FreeCells) Name() string { return "free-cells" }

func (FreeCells) Value(g *game.Game) float64 {
	return float64(len(g.Board().EmptyCells()))
}

// FreeCellsSquared is the squared empty-cell count, which amplifies the
// feature's influence near board-full states. Not part of the default
// feature list; swap it in for FreeCells if desired.
type FreeCellsSquared struct{}

func (FreeCellsSquared) Name() string { return "free-cells-squared" }

func (FreeCellsSquared) Value(g *game.Game) float64 {
	n := float64(len(g.Board().EmptyCells()))
	return n * n
}

// MaxTile is the best tile value ever reached in the game, which is not
// necessarily still on the board.
type MaxTile struct{}

func (MaxTile) Name() string { return "max-tile" }

func (MaxTile) Value(g *game.Game) float64 {
	return float64(g.BestTile())
}

// FreedomDegree is 1 if the board can still slide in at least one
// horizontal direction and at least one vertical direction, else 0. An
// axis is slidable if some adjacent pair along it has exactly one empty
// cell, or holds two equal tiles.
type FreedomDegree struct{}

func (FreedomDegree) Name() string { return "freedom-degree" }

func (FreedomDegree) Value(g *game.Game) float64 {
	b := g.Board()
	rows, cols := b.Dim()

	horizontal := false
	for r := 0; r < rows && !horizontal; r++ {
		for c := 0; c+1 < cols; c++ {
			if pairSlidable(b.GetSquare(r, c), b.GetSquare(r, c+1)) {
				horizontal = true
				break
			}
		}
	}
	vertical := false
	for c := 0; c < cols && !vertical; c++ {
		for r := 0; r+1 < rows; r++ {
			if pairSlidable(b.GetSquare(r, c), b.GetSquare(r+1, c)) {
				vertical = true
				break
			}
		}
	}
	if horizontal && vertical {
		return 1
	}
	return 0
}

func pairSlidable(a, b int) bool {
	if a == 0 && b == 0 {
		return false
	}
	if a == 0 || b == 0 {
		return true
	}
	return a == b
}

func logTile(v int) float64 {
	if v == 0 {
		return 0
	}
	return math.Log2(float64(v))
}
