package game

// A Board is a fixed-size grid of tiles. A cell holds 0 when empty, and
// otherwise a power of two >= 2. Cells are stored in row-major order, so
// the cell at (row, col) lives at index row*cols+col.
type Board struct {
	rows    int
	cols    int
	squares []int
}

// NewBoard creates an empty rows x cols board.
func NewBoard(rows, cols int) *Board {
	return &Board{
		rows:    rows,
		cols:    cols,
		squares: make([]int, rows*cols),
	}
}

// NewBoardFromSquares creates a board from a row-major slice of cell values.
// The slice length must equal rows*cols.
func NewBoardFromSquares(rows, cols int, squares []int) *Board {
	if len(squares) != rows*cols {
		panic("board dimensions do not match square count")
	}
	b := NewBoard(rows, cols)
	copy(b.squares, squares)
	return b
}

// Dim returns the dimensions of the board (rows, cols).
func (b *Board) Dim() (int, int) {
	return b.rows, b.cols
}

// NumCells returns the total number of cells on the board.
func (b *Board) NumCells() int {
	return b.rows * b.cols
}

// GetSquare returns the value of the cell at the given position.
func (b *Board) GetSquare(row, col int) int {
	return b.squares[row*b.cols+col]
}

// SetSquare sets the value of the cell at the given position.
func (b *Board) SetSquare(row, col, val int) {
	b.squares[row*b.cols+col] = val
}

// Cell returns the value of the cell at the given row-major index.
func (b *Board) Cell(idx int) int {
	return b.squares[idx]
}

// SetCell sets the value of the cell at the given row-major index.
func (b *Board) SetCell(idx, val int) {
	b.squares[idx] = val
}

// EmptyCells returns the row-major indexes of all empty cells.
func (b *Board) EmptyCells() []int {
	var empties []int
	for idx, sq := range b.squares {
		if sq == 0 {
			empties = append(empties, idx)
		}
	}
	return empties
}

// MaxTile returns the largest tile currently on the board, or 0 for an
// empty board.
func (b *Board) MaxTile() int {
	max := 0
	for _, sq := range b.squares {
		if sq > max {
			max = sq
		}
	}
	return max
}

// TileSum returns the sum of all tile values on the board.
func (b *Board) TileSum() int {
	sum := 0
	for _, sq := range b.squares {
		sum += sq
	}
	return sum
}

// Copy returns a deep copy of the board.
func (b *Board) Copy() *Board {
	n := NewBoard(b.rows, b.cols)
	copy(n.squares, b.squares)
	return n
}

// CopyFrom copies the squares of another board of the same dimensions
// into this one, without allocating.
func (b *Board) CopyFrom(other *Board) {
	copy(b.squares, other.squares)
}

// Equals returns true if the other board has the same dimensions and the
// same tile in every cell.
func (b *Board) Equals(other *Board) bool {
	if b.rows != other.rows || b.cols != other.cols {
		return false
	}
	for idx, sq := range b.squares {
		if other.squares[idx] != sq {
			return false
		}
	}
	return true
}
