package entity

import (
	"fmt"

	"github.com/rocketscienceinc/bigisle/internal/apperror"
)

const (
	DefaultBoardSize = 8
	DefaultTiles     = 32
)

// Rules are the parameters a game is created with. They are fixed for the life of the game.
type Rules struct {
	BoardSize      int
	StartingPlayer Player
	Tiles          map[Player]int
}

func DefaultRules() Rules {
	return Rules{
		BoardSize:      DefaultBoardSize,
		StartingPlayer: PlayerRed,
		Tiles: map[Player]int{
			PlayerRed:   DefaultTiles,
			PlayerBlack: DefaultTiles,
		},
	}
}

func (that Rules) Validate() error {
	if that.BoardSize <= 0 {
		return fmt.Errorf("%w: %d", apperror.ErrInvalidBoardSize, that.BoardSize)
	}

	if !that.StartingPlayer.Valid() {
		return fmt.Errorf("%w: starting player %s", apperror.ErrInvalidPlayer, that.StartingPlayer)
	}

	for _, player := range Players {
		tiles, ok := that.Tiles[player]
		if !ok {
			return fmt.Errorf("%w: no budget for %s", apperror.ErrInvalidBudget, player)
		}
		if tiles < 0 {
			return fmt.Errorf("%w: %s has %d tiles", apperror.ErrInvalidBudget, player, tiles)
		}
	}

	return nil
}
