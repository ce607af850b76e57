package equity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/domino14/twenty48/equity"
	"github.com/domino14/twenty48/game"
)

func gameFromRows(rows ...[]int) *game.Game {
	var squares []int
	for _, row := range rows {
		squares = append(squares, row...)
	}
	b := game.NewBoardFromSquares(len(rows), len(rows[0]), squares)
	return game.NewGameFromBoard(b, 1)
}

func TestMonotonicityPerfectlyMonotone(t *testing.T) {
	g := gameFromRows(
		[]int{16, 8, 4, 2},
		[]int{0, 0, 0, 0},
		[]int{0, 0, 0, 0},
		[]int{0, 0, 0, 0},
	)
	// Decreasing along every row, decreasing down every column: both
	// axes agree with a scan direction, so there is no penalty.
	assert.Equal(t, 0.0, equity.Monotonicity{}.Value(g))
}

func TestMonotonicityPenalty(t *testing.T) {
	g := gameFromRows(
		[]int{2, 4, 0, 0},
		[]int{0, 0, 0, 0},
		[]int{0, 0, 0, 0},
		[]int{0, 0, 0, 0},
	)
	// Row axis: increases by 1 (log2) left-to-right, decreases by 2
	// into the trailing empties; the better direction still pays 1.
	// Column axis is monotone toward the top.
	assert.Equal(t, -1.0, equity.Monotonicity{}.Value(g))
}

func TestSmoothness(t *testing.T) {
	g := gameFromRows(
		[]int{2, 2, 4, 0},
		[]int{0, 0, 0, 0},
		[]int{0, 0, 0, 0},
		[]int{0, 0, 0, 0},
	)
	// Equal neighbors contribute nothing; 2 next to 4 costs one log2
	// step; pairs with an empty cell are skipped.
	assert.Equal(t, -1.0, equity.Smoothness{}.Value(g))
}

func TestFreeCells(t *testing.T) {
	g := gameFromRows(
		[]int{2, 2, 4, 0},
		[]int{0, 0, 0, 0},
		[]int{0, 0, 0, 0},
		[]int{0, 0, 0, 0},
	)
	assert.Equal(t, 13.0, equity.FreeCells{}.Value(g))
	assert.Equal(t, 169.0, equity.FreeCellsSquared{}.Value(g))
}

func TestMaxTile(t *testing.T) {
	g := gameFromRows(
		[]int{2, 2, 0, 0},
		[]int{0, 0, 0, 0},
		[]int{0, 0, 0, 0},
		[]int{0, 0, 0, 0},
	)
	assert.Equal(t, 2.0, equity.MaxTile{}.Value(g))
	// A merge raises the best tile along with the score.
	assert.True(t, g.Move(game.Right, false))
	assert.Equal(t, 4.0, equity.MaxTile{}.Value(g))
}

func TestFreedomDegree(t *testing.T) {
	dead := gameFromRows(
		[]int{2, 4, 8, 16},
		[]int{32, 64, 128, 256},
		[]int{2, 4, 8, 16},
		[]int{32, 64, 128, 256},
	)
	assert.Equal(t, 0.0, equity.FreedomDegree{}.Value(dead))

	horizontalOnly := gameFromRows(
		[]int{2, 2, 4, 8},
		[]int{16, 32, 64, 128},
		[]int{2, 4, 8, 16},
		[]int{32, 64, 128, 256},
	)
	assert.Equal(t, 0.0, equity.FreedomDegree{}.Value(horizontalOnly))

	open := gameFromRows(
		[]int{2, 4, 8, 16},
		[]int{32, 0, 64, 128},
		[]int{2, 4, 8, 16},
		[]int{32, 64, 128, 256},
	)
	assert.Equal(t, 1.0, equity.FreedomDegree{}.Value(open))
}

func TestFeatureDeterminism(t *testing.T) {
	g := gameFromRows(
		[]int{2, 2, 4, 0},
		[]int{0, 8, 0, 8},
		[]int{0, 0, 2, 0},
		[]int{4, 0, 0, 4},
	)
	for _, f := range equity.DefaultFeatures() {
		first := f.Value(g)
		for i := 0; i < 5; i++ {
			assert.Equal(t, first, f.Value(g), f.Name())
		}
	}
}
