package usecase

import (
	"fmt"

	"github.com/rocketscienceinc/bigisle/internal/entity"
)

// Scoreboard is what the players see next to the board.
type Scoreboard struct {
	Turn      entity.Player
	TilesLeft map[entity.Player]int
	Largest   map[entity.Player]int
	Exhausted bool
}

func (that Scoreboard) TurnLine() string {
	return "Turn: " + that.Turn.String()
}

func (that Scoreboard) ScoreLine() string {
	return fmt.Sprintf("R:%d  B:%d", that.Largest[entity.PlayerRed], that.Largest[entity.PlayerBlack])
}

func (that Scoreboard) TilesLine() string {
	return fmt.Sprintf("Tiles R:%d B:%d", that.TilesLeft[entity.PlayerRed], that.TilesLeft[entity.PlayerBlack])
}

// Lines returns the scoreboard text top to bottom.
func (that Scoreboard) Lines() []string {
	return []string{that.TurnLine(), that.ScoreLine(), that.TilesLine()}
}
