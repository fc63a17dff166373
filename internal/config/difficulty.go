package config

import (
	"fmt"
	"math"
)

// DifficultyPreset represents a named difficulty level.
// Presets only change how often a 4 spawns; the board rules never change.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"

	// DifficultyCustom keeps the configured game.spawn4 value.
	DifficultyCustom DifficultyPreset = "custom"
)

// Presets lists the presets in menu order.
var Presets = []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard}

// Spawn4ForPreset returns the probability of spawning a 4 for a preset.
func Spawn4ForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.05
	case DifficultyHard:
		return 0.25
	default:
		return 0.10
	}
}

// PresetFor returns the preset whose odds equal spawn4, or DifficultyCustom.
func PresetFor(spawn4 float64) DifficultyPreset {
	for _, p := range Presets {
		if math.Abs(Spawn4ForPreset(p)-spawn4) < 1e-9 {
			return p
		}
	}
	return DifficultyCustom
}

// ParsePreset validates a preset name. An empty name is not a preset.
func ParsePreset(name string) (DifficultyPreset, error) {
	if name == string(DifficultyCustom) {
		return DifficultyCustom, nil
	}
	for _, p := range Presets {
		if string(p) == name {
			return p, nil
		}
	}
	return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or custom)", name)
}

// ApplyPreset modifies the config based on a difficulty preset.
// DifficultyCustom leaves the config unchanged.
func ApplyPreset(cfg *Config, preset DifficultyPreset) {
	if preset == DifficultyCustom {
		return
	}
	cfg.Game.Spawn4 = Spawn4ForPreset(preset)
}
