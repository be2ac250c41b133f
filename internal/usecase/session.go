package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/rocketscienceinc/bigisle/internal/entity"
	"github.com/rocketscienceinc/bigisle/internal/pkg"
	"github.com/rocketscienceinc/bigisle/internal/region"
)

// Session is the single owner of one game. All access to the game goes through it.
type Session struct {
	logger *slog.Logger
	id     string

	mu   sync.Mutex
	game *entity.Game
}

func NewSession(logger *slog.Logger, game *entity.Game) *Session {
	id := pkg.GenerateNewSessionID()

	return &Session{
		logger: logger.With("component", "session", "session", id),
		id:     id,
		game:   game,
	}
}

func (that *Session) ID() string {
	return that.id
}

// Place - attempts a placement for the player whose turn it is.
// The returned scoreboard reflects the state after the attempt, also when it was declined.
func (that *Session) Place(ctx context.Context, row, col int) (Scoreboard, error) {
	log := that.logger.With("method", "Place", "row", row, "col", col)

	that.mu.Lock()
	defer that.mu.Unlock()

	player := that.game.Turn()

	if err := that.game.Place(row, col); err != nil {
		log.DebugContext(ctx, "placement declined", "player", player.String(), "reason", err)

		return that.scoreboard(), fmt.Errorf("failed to place tile: %w", err)
	}

	score := that.scoreboard()
	log.InfoContext(ctx, "tile placed",
		"player", player.String(),
		"tiles_left", score.TilesLeft[player],
		"largest", score.Largest[player],
	)

	if score.Exhausted {
		log.InfoContext(ctx, "all tiles placed")
	}

	return score, nil
}

func (that *Session) Scoreboard() Scoreboard {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.scoreboard()
}

// Board returns a snapshot of the current board.
func (that *Session) Board() *entity.Board {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.game.Board()
}

func (that *Session) scoreboard() Scoreboard {
	board := that.game.Board()

	score := Scoreboard{
		Turn:      that.game.Turn(),
		TilesLeft: make(map[entity.Player]int, len(entity.Players)),
		Largest:   make(map[entity.Player]int, len(entity.Players)),
		Exhausted: that.game.Exhausted(),
	}

	for _, player := range entity.Players {
		score.TilesLeft[player] = that.game.TilesLeft(player)
		score.Largest[player] = region.Largest(board, player)
	}

	return score
}
