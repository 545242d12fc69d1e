// Package config provides level configuration loading, difficulty presets
// and user settings for Crop Rush.
//
// Level files may be JSON or YAML. Both use the camelCase field names of
// config.json (spawnEvery, minSpawnEvery and so on).
package config

// FarmConfig contains everything a Crop Rush run needs.
type FarmConfig struct {
	Arena  ArenaConfig   `yaml:"arena"`
	Farmer ActorConfig   `yaml:"farmer"`
	AI     AIConfig      `yaml:"ai"`
	Input  InputConfig   `yaml:"input"`
	Crops  CropsConfig   `yaml:"crops"`
	Levels []LevelConfig `yaml:"levels"`
}

// ArenaConfig is the logical playfield size in pixels.
type ArenaConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// ActorConfig defines a farmer's movement parameters.
type ActorConfig struct {
	Speed float64 `yaml:"speed"` // Pixels per second
	Size  float64 `yaml:"size"`  // Square side in pixels
}

// AIConfig defines the computer farmer.
type AIConfig struct {
	ActorConfig `yaml:",inline"`
	Enabled     *bool `yaml:"enabled,omitempty"` // nil means enabled
}

// IsEnabled reports whether the AI competitor takes part.
func (a AIConfig) IsEnabled() bool {
	return a.Enabled == nil || *a.Enabled
}

// InputConfig tunes keyboard handling.
type InputConfig struct {
	// Hold is how long (seconds) a key press counts as held when the
	// terminal sends no release event.
	Hold float64 `yaml:"hold"`
}

// CropsConfig controls crop spawning.
type CropsConfig struct {
	// Distribution maps crop type names to relative spawn weights.
	Distribution map[string]float64 `yaml:"distribution"`
}

// LevelConfig describes one level.
type LevelConfig struct {
	Goal          int              `yaml:"goal"`
	Time          float64          `yaml:"time"`                    // Seconds
	SpawnEvery    float64          `yaml:"spawnEvery"`              // Initial spawn interval, seconds
	SpawnDecay    *float64         `yaml:"spawnDecay,omitempty"`    // Interval reduction per spawn
	MinSpawnEvery *float64         `yaml:"minSpawnEvery,omitempty"` // Interval floor
	Obstacles     []ObstacleConfig `yaml:"obstacles,omitempty"`
	Crows         []CrowConfig     `yaml:"crows,omitempty"`
}

// Decay returns the spawn decay with its default applied.
func (l LevelConfig) Decay() float64 {
	if l.SpawnDecay == nil {
		return DefaultSpawnDecay
	}
	return *l.SpawnDecay
}

// Floor returns the minimum spawn interval with its default applied.
func (l LevelConfig) Floor() float64 {
	if l.MinSpawnEvery == nil {
		return DefaultMinSpawnEvery
	}
	return *l.MinSpawnEvery
}

// ObstacleConfig is a static rectangle.
type ObstacleConfig struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	W float64 `yaml:"w"`
	H float64 `yaml:"h"`
}

// CrowConfig is a bouncing crow. Zero velocity and radius take defaults.
type CrowConfig struct {
	X      float64  `yaml:"x"`
	Y      float64  `yaml:"y"`
	VX     *float64 `yaml:"vx,omitempty"`
	VY     *float64 `yaml:"vy,omitempty"`
	Radius float64  `yaml:"radius,omitempty"`
}

// Velocity returns the crow velocity with defaults applied.
func (c CrowConfig) Velocity() (float64, float64) {
	vx, vy := DefaultCrowVX, 0.0
	if c.VX != nil {
		vx = *c.VX
	}
	if c.VY != nil {
		vy = *c.VY
	}
	return vx, vy
}

// R returns the crow radius with its default applied.
func (c CrowConfig) R() float64 {
	if c.Radius <= 0 {
		return DefaultCrowRadius
	}
	return c.Radius
}
