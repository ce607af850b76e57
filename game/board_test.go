package game

import (
	"strings"
	"testing"

	"github.com/matryer/is"
)

func boardFromRows(rows ...[]int) *Board {
	var squares []int
	for _, row := range rows {
		squares = append(squares, row...)
	}
	return NewBoardFromSquares(len(rows), len(rows[0]), squares)
}

func TestBoardAccessors(t *testing.T) {
	is := is.New(t)
	b := boardFromRows(
		[]int{2, 0, 4, 0},
		[]int{0, 0, 0, 0},
		[]int{0, 8, 0, 0},
		[]int{0, 0, 0, 2},
	)
	rows, cols := b.Dim()
	is.Equal(rows, 4)
	is.Equal(cols, 4)
	is.Equal(b.NumCells(), 16)
	is.Equal(b.GetSquare(0, 2), 4)
	is.Equal(b.Cell(9), 8)
	is.Equal(b.MaxTile(), 8)
	is.Equal(b.TileSum(), 16)
	is.Equal(len(b.EmptyCells()), 12)
}

func TestBoardCopyEquals(t *testing.T) {
	is := is.New(t)
	b := boardFromRows(
		[]int{2, 2, 0, 0},
		[]int{0, 0, 0, 0},
		[]int{0, 0, 0, 0},
		[]int{0, 0, 0, 4},
	)
	c := b.Copy()
	is.True(b.Equals(c))
	c.SetSquare(1, 1, 8)
	is.True(!b.Equals(c))
	c.CopyFrom(b)
	is.True(b.Equals(c))
}

func TestBoardDisplay(t *testing.T) {
	is := is.New(t)
	b := boardFromRows(
		[]int{2, 0},
		[]int{0, 16},
	)
	text := b.ToDisplayText()
	is.Equal(len(strings.Split(strings.TrimRight(text, "\n"), "\n")), 2)
	is.True(strings.Contains(text, "2"))
	is.True(strings.Contains(text, "16"))
	is.True(strings.Contains(text, "."))
}
