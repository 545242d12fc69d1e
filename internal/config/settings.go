package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/ini.v1"
)

// Settings are per-user defaults for command-line flags, kept in
// ~/.croprush/settings.ini. Flags given on the command line win.
type Settings struct {
	Game    GameSettings    `ini:"game"`
	Storage StorageSettings `ini:"storage"`
	Log     LogSettings     `ini:"log"`
}

// GameSettings holds gameplay defaults.
type GameSettings struct {
	FPS        int    `ini:"fps"`
	Difficulty string `ini:"difficulty"`
	Seed       int64  `ini:"seed"`
	Config     string `ini:"config"`
}

// StorageSettings holds the results database location.
type StorageSettings struct {
	DB string `ini:"db"`
}

// LogSettings controls the log file.
type LogSettings struct {
	Level string `ini:"level"`
	File  string `ini:"file"`
}

// DefaultSettings returns the settings used when no file exists.
func DefaultSettings() Settings {
	return Settings{
		Game:    GameSettings{FPS: 60, Difficulty: string(DifficultyNormal)},
		Storage: StorageSettings{DB: "~/.croprush/scores.db"},
		Log:     LogSettings{Level: "info"},
	}
}

// DefaultSettingsPath returns ~/.croprush/settings.ini, or empty if home is unavailable.
func DefaultSettingsPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".croprush", "settings.ini")
}

// LoadSettings reads settings from path on top of the defaults.
// A missing file is not an error.
func LoadSettings(path string) (Settings, error) {
	s := DefaultSettings()
	if path == "" {
		return s, nil
	}

	f, err := ini.LooseLoad(path)
	if err != nil {
		return s, fmt.Errorf("config: cannot load settings %s: %w", path, err)
	}
	if err := f.MapTo(&s); err != nil {
		return DefaultSettings(), fmt.Errorf("config: cannot map settings %s: %w", path, err)
	}
	return s, nil
}

// SaveSettings writes s to path, creating parent directories.
func SaveSettings(path string, s Settings) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("config: cannot create settings directory: %w", err)
	}

	f := ini.Empty()
	if err := f.ReflectFrom(&s); err != nil {
		return fmt.Errorf("config: cannot encode settings: %w", err)
	}
	if err := f.SaveTo(path); err != nil {
		return fmt.Errorf("config: cannot save settings %s: %w", path, err)
	}
	return nil
}
