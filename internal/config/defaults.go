package config

import (
	_ "embed"
)

//go:embed defaults/farm.yaml
var defaultFarmYAML []byte

// Defaults for optional level and actor fields.
const (
	DefaultSpawnDecay    = 0.0
	DefaultMinSpawnEvery = 0.35
	DefaultCrowVX        = 90.0
	DefaultCrowRadius    = 10.0

	DefaultArenaW      = 800.0
	DefaultArenaH      = 480.0
	DefaultFarmerSpeed = 120.0
	DefaultFarmerSize  = 32.0
	DefaultAISpeed     = 110.0
	DefaultAISize      = 28.0
	DefaultInputHold   = 0.35
)

// DefaultFarmYAML returns the embedded default configuration file.
func DefaultFarmYAML() []byte {
	return defaultFarmYAML
}

// DefaultFarmConfig returns the built-in configuration used when the
// embedded file cannot be parsed.
func DefaultFarmConfig() FarmConfig {
	decay, floor := 0.01, 0.5
	return FarmConfig{
		Arena:  ArenaConfig{Width: DefaultArenaW, Height: DefaultArenaH},
		Farmer: ActorConfig{Speed: DefaultFarmerSpeed, Size: DefaultFarmerSize},
		AI: AIConfig{
			ActorConfig: ActorConfig{Speed: DefaultAISpeed, Size: DefaultAISize},
		},
		Input: InputConfig{Hold: DefaultInputHold},
		Crops: CropsConfig{
			Distribution: map[string]float64{
				"wheat":   6,
				"pumpkin": 3,
				"apple":   1,
			},
		},
		Levels: []LevelConfig{
			{
				Goal:          15,
				Time:          60,
				SpawnEvery:    1.0,
				SpawnDecay:    &decay,
				MinSpawnEvery: &floor,
				Obstacles: []ObstacleConfig{
					{X: 240, Y: 160, W: 48, H: 96},
					{X: 520, Y: 240, W: 96, H: 48},
				},
			},
		},
	}
}
