package config

import (
	_ "embed"
)

//go:embed defaults/t2048.yaml
var defaultYAML []byte

// DefaultConfig returns the hardcoded default configuration.
// It mirrors defaults/t2048.yaml and is used when the embedded YAML cannot be parsed.
func DefaultConfig() Config {
	return Config{
		Game: GameConfig{
			WinTile: 2048,
			Spawn4:  0.10,
		},
		Input: InputConfig{
			SwipeThreshold: 4,
		},
		Display: DisplayConfig{
			Emoji:    true,
			Bell:     true,
			TickRate: 30,
		},
		Storage: StorageConfig{
			DBPath: "~/.t2048/scores.db",
		},
		Log: LogConfig{
			Level:      "info",
			MaxSizeMB:  10,
			MaxBackups: 3,
			MaxAgeDays: 7,
		},
	}
}
