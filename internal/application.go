package application

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/rocketscienceinc/bigisle/internal/config"
	"github.com/rocketscienceinc/bigisle/internal/entity"
	"github.com/rocketscienceinc/bigisle/internal/usecase"
	"github.com/rocketscienceinc/bigisle/transport/terminal"
)

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("could not create screen: %w", err)
	}

	if err = screen.Init(); err != nil {
		return fmt.Errorf("could not init screen: %w", err)
	}
	defer screen.Fini()

	return run(logger, conf, screen)
}

func run(logger *slog.Logger, conf *config.Config, screen tcell.Screen) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)

	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	rules, err := conf.Game.Rules()
	if err != nil {
		return fmt.Errorf("invalid game config: %w", err)
	}

	game, err := entity.NewGame(rules)
	if err != nil {
		return fmt.Errorf("could not create game: %w", err)
	}

	session := usecase.NewSession(logger, game)
	log.Info("Session started",
		"session", session.ID(),
		"board_size", rules.BoardSize,
		"starting_player", rules.StartingPlayer.String(),
	)

	layout := terminal.NewLayout(rules.BoardSize, conf.UI.TileWidth, conf.UI.TileHeight)
	server := terminal.New(logger, session, screen, layout)

	if err = server.Run(ctx); err != nil {
		return fmt.Errorf("terminal error: %w", err)
	}

	log.Info("Session ended", "session", session.ID())

	return nil
}
