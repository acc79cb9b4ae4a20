package entity

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe/internal/apperror"
)

// Cell is the content of one square of the board.
type Cell string

const (
	PlayerX   Cell = "X"
	PlayerO   Cell = "O"
	EmptyCell Cell = ""
)

const (
	BoardSize = 9
	LineSize  = 3
)

// WinCombos lists the winning lines: rows first, then columns, then diagonals.
var WinCombos = [8][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// Board is a snapshot of the grid in row-major order, index = row*3+col.
type Board [BoardSize]Cell

func NewBoard() Board {
	return Board{}
}

func (that Cell) IsEmpty() bool {
	return that == EmptyCell
}

// Opponent returns the other mark. Empty has no opponent.
func (that Cell) Opponent() Cell {
	switch that {
	case PlayerX:
		return PlayerO
	case PlayerO:
		return PlayerX
	default:
		return EmptyCell
	}
}

func (that Cell) String() string {
	if that.IsEmpty() {
		return "."
	}
	return string(that)
}

// Index converts a row and a column into a board index.
func Index(row, col int) (int, error) {
	if row < 0 || row >= LineSize || col < 0 || col >= LineSize {
		return 0, fmt.Errorf("%w: row %d col %d", apperror.ErrInvalidCell, row, col)
	}

	return row*LineSize + col, nil
}

// Position converts a board index into its row and column.
func Position(index int) (int, int, error) {
	if index < 0 || index >= BoardSize {
		return 0, 0, fmt.Errorf("%w: cell %d", apperror.ErrInvalidCell, index)
	}

	return index / LineSize, index % LineSize, nil
}

// Place returns a copy of the board with mark written at cell. The receiver is left untouched.
func (that Board) Place(cell int, mark Cell) (Board, error) {
	if cell < 0 || cell >= len(that) {
		return that, fmt.Errorf("%w: cell %d", apperror.ErrInvalidCell, cell)
	}

	if !that[cell].IsEmpty() {
		return that, fmt.Errorf("%w: cell %d", apperror.ErrCellOccupied, cell)
	}

	that[cell] = mark

	return that, nil
}

func (that Board) IsFull() bool {
	for _, cell := range that {
		if cell.IsEmpty() {
			return false
		}
	}

	return true
}

func (that Board) IsEmpty() bool {
	return that == Board{}
}

// Row returns the three cells of row r, or empty cells when r is out of range.
func (that Board) Row(r int) [LineSize]Cell {
	var row [LineSize]Cell
	if r < 0 || r >= LineSize {
		return row
	}

	copy(row[:], that[r*LineSize:(r+1)*LineSize])

	return row
}

func (that Board) String() string {
	var sb strings.Builder

	for r := 0; r < LineSize; r++ {
		if r > 0 {
			sb.WriteByte('/')
		}
		for _, cell := range that.Row(r) {
			sb.WriteString(cell.String())
		}
	}

	return sb.String()
}
