// Package config provides YAML-based configuration loading and difficulty
// presets for the game.
package config

import (
	"errors"
	"fmt"
)

// Config contains all configuration for 2048.
type Config struct {
	Game    GameConfig    `yaml:"game"`
	Input   InputConfig   `yaml:"input"`
	Display DisplayConfig `yaml:"display"`
	Storage StorageConfig `yaml:"storage"`
	Log     LogConfig     `yaml:"log"`
}

// GameConfig defines rule parameters around the board engine.
type GameConfig struct {
	WinTile int     `yaml:"win_tile"` // Tile value that sets the won flag
	Spawn4  float64 `yaml:"spawn4"`   // Probability of spawning 4 instead of 2 (0.0-1.0)
}

// InputConfig defines input handling parameters.
type InputConfig struct {
	SwipeThreshold int `yaml:"swipe_threshold"` // Minimum drag distance in columns
}

// DisplayConfig defines presentation parameters.
type DisplayConfig struct {
	Emoji    bool `yaml:"emoji"`
	Bell     bool `yaml:"bell"`
	TickRate int  `yaml:"tick_rate"`
}

// StorageConfig defines where scores are kept.
type StorageConfig struct {
	DBPath string `yaml:"db_path"`
}

// LogConfig defines logging output.
type LogConfig struct {
	Level      string `yaml:"level"`
	File       string `yaml:"file"` // Empty means no file output
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
}

// Validate checks that every value is usable.
func (c Config) Validate() error {
	var errs []error

	// Dealt tiles are 2 or 4, so a smaller target would be reached before the first move.
	if c.Game.WinTile < 8 || c.Game.WinTile&(c.Game.WinTile-1) != 0 {
		errs = append(errs, fmt.Errorf("game.win_tile must be a power of two >= 8, got %d", c.Game.WinTile))
	}
	if c.Game.Spawn4 < 0 || c.Game.Spawn4 > 1 {
		errs = append(errs, fmt.Errorf("game.spawn4 must be within [0, 1], got %g", c.Game.Spawn4))
	}
	if c.Input.SwipeThreshold < 1 {
		errs = append(errs, fmt.Errorf("input.swipe_threshold must be >= 1, got %d", c.Input.SwipeThreshold))
	}
	if c.Display.TickRate < 1 {
		errs = append(errs, fmt.Errorf("display.tick_rate must be >= 1, got %d", c.Display.TickRate))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: %w", errors.Join(errs...))
	}
	return nil
}
