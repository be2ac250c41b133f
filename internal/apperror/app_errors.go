package apperror

import "errors"

var (
	ErrOutOfBounds  = errors.New("cell is out of bounds")
	ErrCellOccupied = errors.New("cell is already occupied")
	ErrNoTilesLeft  = errors.New("no tiles left")

	ErrInvalidBoardSize = errors.New("invalid board size")
	ErrInvalidPlayer    = errors.New("invalid player")
	ErrInvalidBudget    = errors.New("invalid tile budget")
)
