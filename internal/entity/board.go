package entity

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rocketscienceinc/bigisle/internal/apperror"
)

const emptyMark = "."

var ErrMalformedBoard = errors.New("malformed board layout")

// Board is a fixed square grid of cells stored in row-major order.
type Board struct {
	size  int
	cells []Cell
}

func NewBoard(size int) (*Board, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: %d", apperror.ErrInvalidBoardSize, size)
	}

	return &Board{
		size:  size,
		cells: make([]Cell, size*size),
	}, nil
}

// ParseBoard - builds a board from rows of 'R', 'B' and '.' (or ' ') marks.
func ParseBoard(rows ...string) (*Board, error) {
	board, err := NewBoard(len(rows))
	if err != nil {
		return nil, err
	}

	for row, line := range rows {
		if len(line) != board.size {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrMalformedBoard, row, len(line), board.size)
		}

		for col, mark := range line {
			switch mark {
			case 'R', 'r':
				board.set(row, col, OwnedBy(PlayerRed))
			case 'B', 'b':
				board.set(row, col, OwnedBy(PlayerBlack))
			case '.', ' ':
			default:
				return nil, fmt.Errorf("%w: unknown mark %q at %d,%d", ErrMalformedBoard, mark, row, col)
			}
		}
	}

	return board, nil
}

func (that *Board) Size() int {
	return that.size
}

func (that *Board) Contains(row, col int) bool {
	return row >= 0 && row < that.size && col >= 0 && col < that.size
}

// At returns the cell at the coordinate, or Empty when it lies outside the board.
func (that *Board) At(row, col int) Cell {
	if !that.Contains(row, col) {
		return Empty
	}
	return that.cells[row*that.size+col]
}

// Count returns the number of cells owned by the player.
func (that *Board) Count(player Player) int {
	count := 0
	for _, cell := range that.cells {
		if cell.IsOwnedBy(player) {
			count++
		}
	}
	return count
}

func (that *Board) Clone() *Board {
	cells := make([]Cell, len(that.cells))
	copy(cells, that.cells)

	return &Board{size: that.size, cells: cells}
}

func (that *Board) String() string {
	var sb strings.Builder
	for row := 0; row < that.size; row++ {
		for col := 0; col < that.size; col++ {
			sb.WriteString(that.At(row, col).String())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func (that *Board) set(row, col int, cell Cell) {
	that.cells[row*that.size+col] = cell
}
