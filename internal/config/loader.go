package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Source names reported by LoadFarm.
const (
	SourceEmbedded = "embedded"
	SourceBuiltin  = "builtin"
)

// LoadFarm loads the level configuration and reports where it came from.
// Search order: customPath -> ~/.croprush/configs/farm.yaml -> ./configs/farm.yaml -> embedded default
//
// A custom path that cannot be read, parsed or validated is an error; the
// other locations are skipped when they are missing or invalid.
func LoadFarm(customPath string) (FarmConfig, string, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return FarmConfig{}, customPath, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := ParseFarm(data)
		if err != nil {
			return FarmConfig{}, customPath, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, customPath, nil
	}

	// Try user config directory, then local configs directory
	for _, path := range []string{userConfigPath("farm.yaml"), filepath.Join("configs", "farm.yaml")} {
		if path == "" {
			continue
		}
		if data, err := os.ReadFile(path); err == nil {
			if cfg, err := ParseFarm(data); err == nil {
				return cfg, path, nil
			}
		}
	}

	// Use embedded default YAML
	cfg, err := ParseFarm(defaultFarmYAML)
	if err != nil {
		return DefaultFarmConfig(), SourceBuiltin, nil // Fallback to hardcoded if embed fails
	}
	return cfg, SourceEmbedded, nil
}

// ParseFarm decodes a JSON or YAML document, fills defaults and validates it.
func ParseFarm(data []byte) (FarmConfig, error) {
	var cfg FarmConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	applyDefaults(&cfg)
	if err := Validate(cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// applyDefaults fills zero-valued optional fields.
func applyDefaults(cfg *FarmConfig) {
	if cfg.Arena.Width == 0 {
		cfg.Arena.Width = DefaultArenaW
	}
	if cfg.Arena.Height == 0 {
		cfg.Arena.Height = DefaultArenaH
	}
	if cfg.Farmer.Speed == 0 {
		cfg.Farmer.Speed = DefaultFarmerSpeed
	}
	if cfg.Farmer.Size == 0 {
		cfg.Farmer.Size = DefaultFarmerSize
	}
	if cfg.AI.Speed == 0 {
		cfg.AI.Speed = DefaultAISpeed
	}
	if cfg.AI.Size == 0 {
		cfg.AI.Size = DefaultAISize
	}
	if cfg.Input.Hold == 0 {
		cfg.Input.Hold = DefaultInputHold
	}
	if len(cfg.Crops.Distribution) == 0 {
		cfg.Crops.Distribution = map[string]float64{"wheat": 1}
	}
}

// Minimum playable arena.
const (
	minArenaW = 200
	minArenaH = 120
)

// Validate checks a configuration for values the game cannot run with.
func Validate(cfg FarmConfig) error {
	var errs []error

	if cfg.Arena.Width < minArenaW || cfg.Arena.Height < minArenaH {
		errs = append(errs, fmt.Errorf("arena %gx%g is smaller than %dx%d",
			cfg.Arena.Width, cfg.Arena.Height, minArenaW, minArenaH))
	}
	if cfg.Farmer.Speed < 0 || cfg.AI.Speed < 0 {
		errs = append(errs, errors.New("speeds must not be negative"))
	}
	if cfg.Input.Hold < 0 {
		errs = append(errs, errors.New("input hold must not be negative"))
	}
	for name, w := range cfg.Crops.Distribution {
		if w < 0 {
			errs = append(errs, fmt.Errorf("crop %q has negative weight %g", name, w))
		}
	}

	if len(cfg.Levels) == 0 {
		errs = append(errs, errors.New("at least one level is required"))
	}
	for i, l := range cfg.Levels {
		n := i + 1
		if l.Goal <= 0 {
			errs = append(errs, fmt.Errorf("level %d: goal must be positive", n))
		}
		if l.Time <= 0 {
			errs = append(errs, fmt.Errorf("level %d: time must be positive", n))
		}
		if l.SpawnEvery <= 0 {
			errs = append(errs, fmt.Errorf("level %d: spawnEvery must be positive", n))
		}
		if l.Decay() < 0 || l.Floor() < 0 {
			errs = append(errs, fmt.Errorf("level %d: spawnDecay and minSpawnEvery must not be negative", n))
		}
		for j, o := range l.Obstacles {
			if o.W <= 0 || o.H <= 0 {
				errs = append(errs, fmt.Errorf("level %d: obstacle %d has no area", n, j+1))
			}
		}
	}

	return errors.Join(errs...)
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".croprush", "configs", filename)
}
