package game

import (
	"testing"

	"github.com/matryer/is"
)

func countTiles(b *Board) int {
	n := 0
	for idx := 0; idx < b.NumCells(); idx++ {
		if b.Cell(idx) != 0 {
			n++
		}
	}
	return n
}

func TestMergeDoesNotChain(t *testing.T) {
	is := is.New(t)
	// The two 2s merge into a 4 next to the existing 4, which must not
	// merge again within the same move.
	g := NewGameFromBoard(boardFromRows(
		[]int{2, 2, 4, 0},
		[]int{0, 0, 0, 0},
		[]int{0, 0, 0, 0},
		[]int{0, 0, 0, 0},
	), 1)
	is.True(g.Move(Right, false))
	is.True(g.Board().Equals(boardFromRows(
		[]int{0, 0, 4, 4},
		[]int{0, 0, 0, 0},
		[]int{0, 0, 0, 0},
		[]int{0, 0, 0, 0},
	)))
	is.Equal(g.Score(), 4)
	is.Equal(g.BestTile(), 4)
}

func TestMergeOncePerDestination(t *testing.T) {
	is := is.New(t)
	g := NewGameFromBoard(boardFromRows(
		[]int{4, 4, 4, 4},
		[]int{0, 0, 0, 0},
		[]int{0, 0, 0, 0},
		[]int{0, 0, 0, 0},
	), 1)
	is.True(g.Move(Right, false))
	is.True(g.Board().Equals(boardFromRows(
		[]int{0, 0, 8, 8},
		[]int{0, 0, 0, 0},
		[]int{0, 0, 0, 0},
		[]int{0, 0, 0, 0},
	)))
	is.Equal(g.Score(), 16)
	is.Equal(g.BestTile(), 8)
}

func TestAllDirections(t *testing.T) {
	is := is.New(t)
	start := boardFromRows(
		[]int{2, 0, 0, 2},
		[]int{0, 0, 0, 0},
		[]int{0, 0, 0, 0},
		[]int{2, 0, 0, 2},
	)
	expected := map[Direction]*Board{
		Right: boardFromRows(
			[]int{0, 0, 0, 4},
			[]int{0, 0, 0, 0},
			[]int{0, 0, 0, 0},
			[]int{0, 0, 0, 4},
		),
		Left: boardFromRows(
			[]int{4, 0, 0, 0},
			[]int{0, 0, 0, 0},
			[]int{0, 0, 0, 0},
			[]int{4, 0, 0, 0},
		),
		Up: boardFromRows(
			[]int{4, 0, 0, 4},
			[]int{0, 0, 0, 0},
			[]int{0, 0, 0, 0},
			[]int{0, 0, 0, 0},
		),
		Down: boardFromRows(
			[]int{0, 0, 0, 0},
			[]int{0, 0, 0, 0},
			[]int{0, 0, 0, 0},
			[]int{4, 0, 0, 4},
		),
	}
	for dir, want := range expected {
		g := NewGameFromBoard(start, 1)
		is.True(g.Move(dir, false))
		is.True(g.Board().Equals(want))
		is.Equal(g.Score(), 8)
	}
}

func TestTileConservation(t *testing.T) {
	is := is.New(t)
	g := NewGameFromBoard(boardFromRows(
		[]int{2, 2, 4, 0},
		[]int{0, 8, 0, 8},
		[]int{0, 0, 0, 0},
		[]int{2, 0, 0, 0},
	), 1)
	preSum := g.Board().TileSum()
	preCount := countTiles(g.Board())
	preScore := g.Score()
	is.True(g.Move(Right, false))
	// Two merges happened: 2+2 and 8+8. The tile sum is conserved, the
	// tile count shrinks by one per merge, and the score goes up by the
	// merged values.
	is.Equal(g.Board().TileSum(), preSum)
	is.Equal(countTiles(g.Board()), preCount-2)
	is.Equal(g.Score()-preScore, 4+16)
}

func TestMoveFailsWhenNothingChanges(t *testing.T) {
	is := is.New(t)
	g := NewGameFromBoard(boardFromRows(
		[]int{0, 0, 2, 4},
		[]int{0, 0, 0, 8},
		[]int{0, 0, 0, 2},
		[]int{0, 0, 0, 16},
	), 1)
	pre := g.Board().Copy()
	is.True(!g.Move(Right, false))
	is.True(g.Board().Equals(pre))
	is.Equal(g.Score(), 0)
	is.Equal(g.Undo(), ErrNoSnapshot)
}

func TestDeadBoard(t *testing.T) {
	is := is.New(t)
	// Full board, no equal neighbors anywhere.
	g := NewGameFromBoard(boardFromRows(
		[]int{2, 4, 8, 16},
		[]int{32, 64, 128, 256},
		[]int{2, 4, 8, 16},
		[]int{32, 64, 128, 256},
	), 1)
	is.True(!g.IsAlive())
	for dir := Right; dir < NumDirections; dir++ {
		is.True(!g.Move(dir, true))
	}
}

func TestAliveWithMergeablePair(t *testing.T) {
	is := is.New(t)
	g := NewGameFromBoard(boardFromRows(
		[]int{2, 4, 8, 16},
		[]int{32, 64, 128, 256},
		[]int{2, 4, 8, 16},
		[]int{32, 64, 128, 16},
	), 1)
	is.True(g.IsAlive())
}

func TestSpawnLegality(t *testing.T) {
	is := is.New(t)
	g := NewGameFromBoard(boardFromRows(
		[]int{2, 0, 0, 0},
		[]int{0, 0, 0, 0},
		[]int{0, 0, 0, 0},
		[]int{0, 0, 0, 0},
	), 42)
	is.True(g.Move(Right, true))
	is.Equal(g.Board().GetSquare(0, 3), 2)
	is.Equal(countTiles(g.Board()), 2)
	spawnedSum := g.Board().TileSum() - 2
	is.True(spawnedSum == 2 || spawnedSum == 4)
}

func TestNewGameSpawnsTwoTiles(t *testing.T) {
	is := is.New(t)
	g := NewGame(4, 4, 123)
	is.Equal(countTiles(g.Board()), 2)
	is.True(g.IsAlive())
	is.Equal(g.Score(), 0)
	for idx := 0; idx < g.NumCells(); idx++ {
		v := g.Board().Cell(idx)
		is.True(v == 0 || v == 2 || v == 4)
	}
}

func TestSeededGamesAreReproducible(t *testing.T) {
	is := is.New(t)
	g1 := NewGame(4, 4, 99)
	g2 := NewGame(4, 4, 99)
	is.True(g1.Board().Equals(g2.Board()))
	for i := 0; i < 20 && g1.IsAlive(); i++ {
		for dir := Right; dir < NumDirections; dir++ {
			m1 := g1.Move(dir, true)
			m2 := g2.Move(dir, true)
			is.Equal(m1, m2)
			if m1 {
				break
			}
		}
		is.True(g1.Board().Equals(g2.Board()))
		is.Equal(g1.Score(), g2.Score())
	}
}

func TestInvalidDirectionPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected a panic for an invalid direction")
		}
	}()
	g := NewGame(4, 4, 1)
	g.Move(Direction(7), true)
}

func TestSpawnWithNoEmptyCellsPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected a panic when spawning on a full board")
		}
	}()
	g := NewGameFromBoard(boardFromRows(
		[]int{2, 4, 8, 16},
		[]int{32, 64, 128, 256},
		[]int{2, 4, 8, 16},
		[]int{32, 64, 128, 256},
	), 1)
	g.spawnTile()
}
