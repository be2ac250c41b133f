package entity

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/bigisle/internal/apperror"
)

// Player identifies one of the two sides. The zero value is not a valid player.
type Player uint8

const (
	PlayerRed Player = iota + 1
	PlayerBlack
)

// Players lists the valid players in display order.
var Players = [...]Player{PlayerRed, PlayerBlack}

func (that Player) Valid() bool {
	return that == PlayerRed || that == PlayerBlack
}

// Opponent returns the other player.
func (that Player) Opponent() Player {
	if that == PlayerRed {
		return PlayerBlack
	}
	return PlayerRed
}

// Mark returns the single-letter board mark of the player.
func (that Player) Mark() string {
	switch that {
	case PlayerRed:
		return "R"
	case PlayerBlack:
		return "B"
	default:
		return "?"
	}
}

func (that Player) String() string {
	switch that {
	case PlayerRed:
		return "Red"
	case PlayerBlack:
		return "Black"
	default:
		return fmt.Sprintf("Player(%d)", uint8(that))
	}
}

// ParsePlayer - accepts "red", "r", "black" or "b", case-insensitive.
func ParsePlayer(s string) (Player, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "red", "r":
		return PlayerRed, nil
	case "black", "b":
		return PlayerBlack, nil
	default:
		return 0, fmt.Errorf("%w: %q", apperror.ErrInvalidPlayer, s)
	}
}
