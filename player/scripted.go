package player

import (
	"fmt"

	"github.com/domino14/twenty48/game"
)

// CyclingPlayer rotates through the four directions, returning the
// first one from its rotation that would actually move the board.
type CyclingPlayer struct {
	next game.Direction
}

func NewCyclingPlayer() *CyclingPlayer {
	return &CyclingPlayer{}
}

func (p *CyclingPlayer) GetAction(g *game.Game) (game.Direction, bool) {
	for i := 0; i < int(game.NumDirections); i++ {
		dir := (p.next + game.Direction(i)) % game.NumDirections
		if g.Move(dir, false) {
			if err := g.Undo(); err != nil {
				panic(err)
			}
			p.next = (dir + 1) % game.NumDirections
			return dir, true
		}
	}
	return game.Right, false
}

// SequencePlayer replays a fixed direction sequence forever, without
// looking at the board at all. Moves that cannot slide simply fail at
// the engine and the sequence marches on.
type SequencePlayer struct {
	seq []game.Direction
	pos int
}

// NewSequencePlayer parses a sequence string of U/D/L/R runes.
func NewSequencePlayer(s string) (*SequencePlayer, error) {
	if len(s) == 0 {
		return nil, fmt.Errorf("empty move sequence")
	}
	seq := make([]game.Direction, 0, len(s))
	for _, r := range s {
		switch r {
		case 'U', 'u':
			seq = append(seq, game.Up)
		case 'D', 'd':
			seq = append(seq, game.Down)
		case 'L', 'l':
			seq = append(seq, game.Left)
		case 'R', 'r':
			seq = append(seq, game.Right)
		default:
			return nil, fmt.Errorf("bad direction rune %q in sequence", r)
		}
	}
	return &SequencePlayer{seq: seq}, nil
}

// NewKonamiPlayer plays the directional part of the Konami code, over
// and over.
func NewKonamiPlayer() *SequencePlayer {
	p, err := NewSequencePlayer("UUDDLRLR")
	if err != nil {
		panic(err)
	}
	return p
}

func (p *SequencePlayer) GetAction(g *game.Game) (game.Direction, bool) {
	dir := p.seq[p.pos]
	p.pos = (p.pos + 1) % len(p.seq)
	return dir, true
}
