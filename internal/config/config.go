package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/rocketscienceinc/bigisle/internal/entity"
)

type Config struct {
	LogLevel string `yaml:"log-level" env:"BIGISLE_LOG_LEVEL" env-default:"info"`
	LogFile  string `yaml:"log-file" env:"BIGISLE_LOG_FILE" env-default:"bigisle.log"`
	Game     Game   `yaml:"game"`
	UI       UI     `yaml:"ui"`
}

type Game struct {
	BoardSize      int    `yaml:"board-size" env:"BIGISLE_BOARD_SIZE" env-default:"8"`
	StartingPlayer string `yaml:"starting-player" env:"BIGISLE_STARTING_PLAYER" env-default:"red"`
	RedTiles       int    `yaml:"red-tiles" env:"BIGISLE_RED_TILES" env-default:"32"`
	BlackTiles     int    `yaml:"black-tiles" env:"BIGISLE_BLACK_TILES" env-default:"32"`
}

type UI struct {
	TileWidth  int `yaml:"tile-width" env:"BIGISLE_TILE_WIDTH" env-default:"6"`
	TileHeight int `yaml:"tile-height" env:"BIGISLE_TILE_HEIGHT" env-default:"3"`
}

// Load - reads the config file at path, or only the environment when the file does not exist.
func Load(path string) (*Config, error) {
	config := &Config{}

	_, err := os.Stat(path)
	switch {
	case err == nil:
		if err = cleanenv.ReadConfig(path, config); err != nil {
			return nil, fmt.Errorf("unable to load config file: %w", err)
		}
	case errors.Is(err, os.ErrNotExist):
		if err = cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("unable to load config from env: %w", err)
		}
	default:
		return nil, fmt.Errorf("unable to stat config file: %w", err)
	}

	return config, nil
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

// Rules converts the game section into game rules.
func (that *Game) Rules() (entity.Rules, error) {
	player, err := entity.ParsePlayer(that.StartingPlayer)
	if err != nil {
		return entity.Rules{}, fmt.Errorf("starting-player: %w", err)
	}

	rules := entity.Rules{
		BoardSize:      that.BoardSize,
		StartingPlayer: player,
		Tiles: map[entity.Player]int{
			entity.PlayerRed:   that.RedTiles,
			entity.PlayerBlack: that.BlackTiles,
		},
	}

	if err = rules.Validate(); err != nil {
		return entity.Rules{}, err
	}

	return rules, nil
}
