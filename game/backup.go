package game

import "errors"

// ErrNoSnapshot is returned by Undo when there is no pending snapshot,
// i.e. Undo was called twice without an intervening successful move.
var ErrNoSnapshot = errors.New("no snapshot to restore")

// stateBackup is a subset of Game, meant only for undo purposes.
type stateBackup struct {
	board    *Board
	score    int
	bestTile int
	alive    bool
}

func newStateBackup(b *Board) *stateBackup {
	return &stateBackup{board: b.Copy()}
}

// stageBackup copies the current state into the staging slot. Two slots
// are kept and swapped on commit, so that a failed move never disturbs a
// snapshot taken by an earlier successful move, and no per-move
// allocations happen.
func (g *Game) stageBackup() {
	g.staging.board.CopyFrom(g.board)
	g.staging.score = g.score
	g.staging.bestTile = g.bestTile
	g.staging.alive = g.alive
}

func (g *Game) commitBackup() {
	g.backup, g.staging = g.staging, g.backup
	g.hasBackup = true
}

// Undo restores the board, score, best tile, and liveness flag saved by
// the last successful move, and clears the snapshot.
func (g *Game) Undo() error {
	if !g.hasBackup {
		return ErrNoSnapshot
	}
	g.board.CopyFrom(g.backup.board)
	g.score = g.backup.score
	g.bestTile = g.backup.bestTile
	g.alive = g.backup.alive
	g.hasBackup = false
	return nil
}
