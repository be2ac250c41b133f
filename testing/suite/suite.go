package suite

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rocketscienceinc/bigisle/internal/entity"
)

const (
	maxWaitDuration = 10 * time.Second

	screenWidth  = 80
	screenHeight = 40
)

type Suite struct {
	*testing.T
	Logger *slog.Logger

	Screen tcell.SimulationScreen
}

func New(t *testing.T) (context.Context, *Suite) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), maxWaitDuration)
	t.Cleanup(func() {
		cancel()
	})

	logger := slog.New(slog.NewJSONHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("could not init simulation screen: %v", err)
	}
	screen.SetSize(screenWidth, screenHeight)

	t.Cleanup(func() {
		screen.Fini()
	})

	return ctx, &Suite{
		T:      t,
		Logger: logger,
		Screen: screen,
	}
}

// Game - creates a game with a square board of the given size and equal budgets, Red starting.
func (that *Suite) Game(size, tiles int) *entity.Game {
	that.Helper()

	game, err := entity.NewGame(entity.Rules{
		BoardSize:      size,
		StartingPlayer: entity.PlayerRed,
		Tiles:          map[entity.Player]int{entity.PlayerRed: tiles, entity.PlayerBlack: tiles},
	})
	if err != nil {
		that.Fatalf("could not create game: %v", err)
	}

	return game
}
