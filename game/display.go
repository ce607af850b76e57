package game

import (
	"fmt"
	"strings"
)

// ToDisplayText returns a console-printable representation of the board.
// Empty cells render as dots.
func (b *Board) ToDisplayText() string {
	var sb strings.Builder
	for r := 0; r < b.rows; r++ {
		for c := 0; c < b.cols; c++ {
			v := b.GetSquare(r, c)
			if v == 0 {
				sb.WriteString(fmt.Sprintf("%6s", "."))
			} else {
				sb.WriteString(fmt.Sprintf("%6d", v))
			}
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// ToDisplayText renders the game's board along with its score line.
func (g *Game) ToDisplayText() string {
	return fmt.Sprintf("%sscore: %d  best tile: %d\n",
		g.board.ToDisplayText(), g.score, g.bestTile)
}
