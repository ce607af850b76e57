// Package game implements the rules of the sliding tile-merging game:
// the board, the move/merge resolution, tile spawning, and a one-level
// undo used for move lookahead.
package game

import (
	"fmt"
	"math/rand/v2"

	"lukechampine.com/frand"
)

// A Direction is one of the four ways the board can be swiped. The
// constant order is also the canonical order in which players examine
// candidate moves.
type Direction int

const (
	Right Direction = iota
	Up
	Left
	Down
	NumDirections
)

func (d Direction) String() string {
	switch d {
	case Right:
		return "Right"
	case Up:
		return "Up"
	case Left:
		return "Left"
	case Down:
		return "Down"
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

// Spawn probabilities for new tiles after a successful move.
const (
	TwoTileProbability  = 0.9
	FourTileProbability = 0.1
)

// Game owns a board, the running score, the best tile ever reached, the
// liveness flag, and a single undo snapshot. All mutation goes through
// Move and Undo.
type Game struct {
	board    *Board
	score    int
	bestTile int
	alive    bool
	rng      *rand.Rand

	backup    *stateBackup
	staging   *stateBackup
	hasBackup bool
}

// NewGame creates a game with two tiles spawned into random empty cells.
// A seed of 0 picks a random seed.
func NewGame(rows, cols int, seed uint64) *Game {
	g := newBareGame(NewBoard(rows, cols), seed)
	g.spawnTile()
	g.spawnTile()
	g.alive = g.checkAlive()
	return g
}

// NewGameFromBoard creates a game over a copy of the given board, with a
// zero score. The best tile is taken from the board.
func NewGameFromBoard(b *Board, seed uint64) *Game {
	g := newBareGame(b.Copy(), seed)
	g.bestTile = b.MaxTile()
	g.alive = g.checkAlive()
	return g
}

func newBareGame(b *Board, seed uint64) *Game {
	if seed == 0 {
		seed = frand.Uint64n(1<<63) + 1
	}
	g := &Game{
		board: b,
		rng:   rand.New(rand.NewPCG(seed, 0)),
	}
	g.backup = newStateBackup(b)
	g.staging = newStateBackup(b)
	return g
}

// IsAlive returns true if at least one cell is empty, or at least one
// pair of adjacent cells (row- or column-wise) holds equal values. It is
// recomputed after every spawning move.
func (g *Game) IsAlive() bool {
	return g.alive
}

// Score returns the running score.
func (g *Game) Score() int {
	return g.score
}

// BestTile returns the largest tile value ever reached in this game,
// which is not necessarily still on the board.
func (g *Game) BestTile() int {
	return g.bestTile
}

// Board returns the game's live board. It is not a copy; callers that
// mutate it must restore it.
func (g *Game) Board() *Board {
	return g.board
}

// Rows returns the number of board rows.
func (g *Game) Rows() int {
	return g.board.rows
}

// Cols returns the number of board columns.
func (g *Game) Cols() int {
	return g.board.cols
}

// NumCells returns the total number of board cells.
func (g *Game) NumCells() int {
	return g.board.NumCells()
}

// Move slides all tiles toward the given edge, merging adjacent equal
// tiles once per destination cell. It returns false, leaving the game
// and any pending snapshot untouched, if no tile would change position
// or value. On success the pre-move state is saved as the undo snapshot;
// if spawn is true a new tile is then added to a random empty cell and
// liveness is recomputed. Lookahead callers pass spawn=false.
func (g *Game) Move(dir Direction, spawn bool) bool {
	if dir < Right || dir >= NumDirections {
		panic(fmt.Sprintf("invalid direction %d", int(dir)))
	}
	g.stageBackup()

	changed := false
	line := make([]int, 0, maxInt(g.board.rows, g.board.cols))
	switch dir {
	case Right:
		for r := 0; r < g.board.rows; r++ {
			line = line[:0]
			for c := g.board.cols - 1; c >= 0; c-- {
				line = append(line, r*g.board.cols+c)
			}
			changed = g.slideLine(line) || changed
		}
	case Left:
		for r := 0; r < g.board.rows; r++ {
			line = line[:0]
			for c := 0; c < g.board.cols; c++ {
				line = append(line, r*g.board.cols+c)
			}
			changed = g.slideLine(line) || changed
		}
	case Up:
		for c := 0; c < g.board.cols; c++ {
			line = line[:0]
			for r := 0; r < g.board.rows; r++ {
				line = append(line, r*g.board.cols+c)
			}
			changed = g.slideLine(line) || changed
		}
	case Down:
		for c := 0; c < g.board.cols; c++ {
			line = line[:0]
			for r := g.board.rows - 1; r >= 0; r-- {
				line = append(line, r*g.board.cols+c)
			}
			changed = g.slideLine(line) || changed
		}
	}
	if !changed {
		return false
	}
	g.commitBackup()
	if spawn {
		g.spawnTile()
		g.alive = g.checkAlive()
	}
	return true
}

// slideLine resolves one row or column. The indexes are ordered from the
// far edge (the edge tiles move toward) back to the near edge. A landing
// cursor starts at the far edge; each tile either moves onto it, merges
// into it (advancing the cursor so no destination merges twice in one
// move), or compacts up against it.
func (g *Game) slideLine(idxs []int) bool {
	sq := g.board.squares
	changed := false
	landing := 0
	for i := 0; i < len(idxs); i++ {
		v := sq[idxs[i]]
		if v == 0 || i == landing {
			continue
		}
		switch lv := sq[idxs[landing]]; {
		case lv == 0:
			sq[idxs[landing]] = v
			sq[idxs[i]] = 0
			changed = true
		case lv == v:
			merged := v * 2
			sq[idxs[landing]] = merged
			sq[idxs[i]] = 0
			g.score += merged
			if merged > g.bestTile {
				g.bestTile = merged
			}
			landing++
			changed = true
		default:
			landing++
			if landing != i {
				sq[idxs[landing]] = v
				sq[idxs[i]] = 0
				changed = true
			}
		}
	}
	return changed
}

// spawnTile inserts a 2 (p=0.9) or a 4 (p=0.1) into a uniformly random
// empty cell. Callers must know a free cell exists; whenever the game is
// alive after a spawning move, it does.
func (g *Game) spawnTile() {
	empties := g.board.EmptyCells()
	if len(empties) == 0 {
		panic("spawn requested with no empty cells")
	}
	val := 2
	if g.rng.Float64() < FourTileProbability {
		val = 4
	}
	g.board.squares[empties[g.rng.IntN(len(empties))]] = val
	if val > g.bestTile {
		g.bestTile = val
	}
}

func (g *Game) checkAlive() bool {
	for r := 0; r < g.board.rows; r++ {
		for c := 0; c < g.board.cols; c++ {
			v := g.board.GetSquare(r, c)
			if v == 0 {
				return true
			}
			if c+1 < g.board.cols && g.board.GetSquare(r, c+1) == v {
				return true
			}
			if r+1 < g.board.rows && g.board.GetSquare(r+1, c) == v {
				return true
			}
		}
	}
	return false
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
