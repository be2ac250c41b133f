package entity

import (
	"fmt"

	"github.com/rocketscienceinc/bigisle/internal/apperror"
)

// Game holds the board, whose turn it is and the tiles each player has left.
// It is not safe for concurrent use.
type Game struct {
	board     *Board
	turn      Player
	tilesLeft map[Player]int
	placed    int
}

func NewGame(rules Rules) (*Game, error) {
	if err := rules.Validate(); err != nil {
		return nil, fmt.Errorf("invalid rules: %w", err)
	}

	board, err := NewBoard(rules.BoardSize)
	if err != nil {
		return nil, err
	}

	tilesLeft := make(map[Player]int, len(Players))
	for _, player := range Players {
		tilesLeft[player] = rules.Tiles[player]
	}

	return &Game{
		board:     board,
		turn:      rules.StartingPlayer,
		tilesLeft: tilesLeft,
	}, nil
}

// Place puts a tile of the current player at the coordinate and hands the turn over.
// On error the game is left untouched.
func (that *Game) Place(row, col int) error {
	if !that.board.Contains(row, col) {
		return fmt.Errorf("%w: row %d, col %d", apperror.ErrOutOfBounds, row, col)
	}

	if !that.board.At(row, col).IsEmpty() {
		return fmt.Errorf("%w: row %d, col %d", apperror.ErrCellOccupied, row, col)
	}

	if that.tilesLeft[that.turn] <= 0 {
		return fmt.Errorf("%w: %s", apperror.ErrNoTilesLeft, that.turn)
	}

	that.board.set(row, col, OwnedBy(that.turn))
	that.tilesLeft[that.turn]--
	that.placed++
	that.turn = that.turn.Opponent()

	return nil
}

func (that *Game) Turn() Player {
	return that.turn
}

func (that *Game) TilesLeft(player Player) int {
	return that.tilesLeft[player]
}

// Placed returns the number of successful placements so far.
func (that *Game) Placed() int {
	return that.placed
}

func (that *Game) Size() int {
	return that.board.Size()
}

func (that *Game) Cell(row, col int) (Cell, error) {
	if !that.board.Contains(row, col) {
		return Empty, fmt.Errorf("%w: row %d, col %d", apperror.ErrOutOfBounds, row, col)
	}
	return that.board.At(row, col), nil
}

// Board returns a copy of the current board.
func (that *Game) Board() *Board {
	return that.board.Clone()
}

// Exhausted reports whether neither player has tiles left. Placement stays open regardless.
func (that *Game) Exhausted() bool {
	for _, player := range Players {
		if that.tilesLeft[player] > 0 {
			return false
		}
	}
	return true
}
