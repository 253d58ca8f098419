package domain

import "fmt"

// Board is an N×N grid. Search code mutates it only through Place and Undo.
type Board struct {
	size  int
	cells [][]PlayerID
}

func NewBoard(size int) *Board {
	cells := make([][]PlayerID, size)
	for i := range cells {
		cells[i] = make([]PlayerID, size)
	}
	return &Board{size: size, cells: cells}
}

// ParseBoard validates a wire grid (0 empty, 1 human, 2 computer) and returns
// a private copy of it. The input grid is never retained.
func ParseBoard(grid [][]int) (*Board, error) {
	n := len(grid)
	if n < ToWin {
		return nil, fmt.Errorf("%w: board must be at least %dx%d, got %d rows", ErrInvalidBoard, ToWin, ToWin, n)
	}

	b := NewBoard(n)
	for r, row := range grid {
		if len(row) != n {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrInvalidBoard, r, len(row), n)
		}
		for c, v := range row {
			p := PlayerID(v)
			if p != Empty && p != Human && p != Computer {
				return nil, fmt.Errorf("%w: cell (%d,%d) has value %d", ErrInvalidBoard, r, c, v)
			}
			b.cells[r][c] = p
		}
	}
	return b, nil
}

func (b *Board) Size() int {
	return b.size
}

func (b *Board) InBounds(row, col int) bool {
	return row >= 0 && row < b.size && col >= 0 && col < b.size
}

func (b *Board) At(row, col int) PlayerID {
	return b.cells[row][col]
}

// Place puts a stone on an empty cell.
func (b *Board) Place(row, col int, player PlayerID) error {
	if !b.InBounds(row, col) {
		return fmt.Errorf("%w: (%d,%d)", ErrOutOfBounds, row, col)
	}
	if b.cells[row][col] != Empty {
		return fmt.Errorf("%w: (%d,%d)", ErrCellOccupied, row, col)
	}
	b.cells[row][col] = player
	return nil
}

// Undo clears a cell previously set by Place.
func (b *Board) Undo(row, col int) {
	b.cells[row][col] = Empty
}

func (b *Board) IsFull() bool {
	for _, row := range b.cells {
		for _, p := range row {
			if p == Empty {
				return false
			}
		}
	}
	return true
}

func (b *Board) IsEmpty() bool {
	for _, row := range b.cells {
		for _, p := range row {
			if p != Empty {
				return false
			}
		}
	}
	return true
}

// EmptyCells lists empty cells in scan order (row-major).
func (b *Board) EmptyCells() []Position {
	cells := []Position{}
	for r := 0; r < b.size; r++ {
		for c := 0; c < b.size; c++ {
			if b.cells[r][c] == Empty {
				cells = append(cells, Position{Row: r, Col: c})
			}
		}
	}
	return cells
}

// this creates a deep copy of the board
func (b *Board) Copy() *Board {
	nb := NewBoard(b.size)
	for i := range b.cells {
		copy(nb.cells[i], b.cells[i])
	}
	return nb
}

// Grid returns the board in wire form.
func (b *Board) Grid() [][]int {
	grid := make([][]int, b.size)
	for r := range b.cells {
		grid[r] = make([]int, b.size)
		for c, p := range b.cells[r] {
			grid[r][c] = int(p)
		}
	}
	return grid
}

// this counts the number of stones in a specific direction, not including (row, col)
func (b *Board) CountInDirection(row, col, deltaRow, deltaCol int, player PlayerID, limit int) int {
	count := 0
	r, c := row+deltaRow, col+deltaCol
	for count < limit && b.InBounds(r, c) && b.cells[r][c] == player {
		count++
		r += deltaRow
		c += deltaCol
	}
	return count
}
