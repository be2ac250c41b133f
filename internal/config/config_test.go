package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rocketscienceinc/bigisle/internal/apperror"
	"github.com/rocketscienceinc/bigisle/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoad(t *testing.T) {
	t.Run("Defaults without a file", func(t *testing.T) {
		// When: the config file does not exist
		conf, err := Load(filepath.Join(t.TempDir(), "missing.yml"))
		require.NoError(t, err)

		// Then: the defaults are used
		assert.Equal(t, "info", conf.LogLevel)
		assert.Equal(t, "bigisle.log", conf.LogFile)
		assert.Equal(t, Game{BoardSize: 8, StartingPlayer: "red", RedTiles: 32, BlackTiles: 32}, conf.Game)
		assert.Equal(t, UI{TileWidth: 6, TileHeight: 3}, conf.UI)
	})

	t.Run("Values from file", func(t *testing.T) {
		// Given: a config file overriding the game section
		path := writeConfig(t, `
log-level: debug
game:
  board-size: 5
  starting-player: black
  red-tiles: 3
  black-tiles: 4
`)

		// When: it is loaded
		conf, err := Load(path)
		require.NoError(t, err)

		// Then: file values win, the rest keeps defaults
		assert.Equal(t, "debug", conf.LogLevel)
		assert.Equal(t, 5, conf.Game.BoardSize)
		assert.Equal(t, "black", conf.Game.StartingPlayer)
		assert.Equal(t, 3, conf.Game.RedTiles)
		assert.Equal(t, 4, conf.Game.BlackTiles)
		assert.Equal(t, 6, conf.UI.TileWidth)
	})

	t.Run("Environment overrides", func(t *testing.T) {
		// Given: environment variables
		t.Setenv("BIGISLE_BOARD_SIZE", "10")
		t.Setenv("BIGISLE_RED_TILES", "50")

		// When: there is no file
		conf, err := Load(filepath.Join(t.TempDir(), "missing.yml"))
		require.NoError(t, err)

		// Then: the environment is applied
		assert.Equal(t, 10, conf.Game.BoardSize)
		assert.Equal(t, 50, conf.Game.RedTiles)
		assert.Equal(t, 32, conf.Game.BlackTiles)
	})

	t.Run("Broken file", func(t *testing.T) {
		path := writeConfig(t, "game: [")

		_, err := Load(path)

		assert.Error(t, err)
	})
}

func TestGame_Rules(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		game := Game{BoardSize: 5, StartingPlayer: "Black", RedTiles: 3, BlackTiles: 4}

		rules, err := game.Rules()
		require.NoError(t, err)

		assert.Equal(t, entity.Rules{
			BoardSize:      5,
			StartingPlayer: entity.PlayerBlack,
			Tiles:          map[entity.Player]int{entity.PlayerRed: 3, entity.PlayerBlack: 4},
		}, rules)
	})

	t.Run("Unknown starting player", func(t *testing.T) {
		game := Game{BoardSize: 5, StartingPlayer: "green", RedTiles: 3, BlackTiles: 3}

		_, err := game.Rules()

		assert.ErrorIs(t, err, apperror.ErrInvalidPlayer)
	})

	t.Run("Negative budget", func(t *testing.T) {
		game := Game{BoardSize: 5, StartingPlayer: "red", RedTiles: -1, BlackTiles: 3}

		_, err := game.Rules()

		assert.ErrorIs(t, err, apperror.ErrInvalidBudget)
	})
}
