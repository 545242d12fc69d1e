package config

import (
	"fmt"
	"strings"
)

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// Preset multipliers. Normal and fixed leave the file untouched.
const (
	easyAISpeedFactor = 0.8
	easyTimeFactor    = 1.25
	hardAISpeedFactor = 1.15
	hardTimeFactor    = 0.85
)

// ParsePreset converts a flag value to a preset. Empty means normal.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(strings.ToLower(strings.TrimSpace(s))); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// ApplyFarmPreset adjusts AI speed and level timers for a preset.
func ApplyFarmPreset(cfg *FarmConfig, preset DifficultyPreset) {
	var speed, timeF float64
	switch preset {
	case DifficultyEasy:
		speed, timeF = easyAISpeedFactor, easyTimeFactor
	case DifficultyHard:
		speed, timeF = hardAISpeedFactor, hardTimeFactor
	default:
		return
	}

	cfg.AI.Speed *= speed
	for i := range cfg.Levels {
		cfg.Levels[i].Time *= timeF
	}
}
