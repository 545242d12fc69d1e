package main

import (
	"testing"

	"github.com/vovakirdan/crop-rush/internal/config"
)

func TestResolveMode(t *testing.T) {
	tests := []struct {
		arg     string
		want    string
		wantErr bool
	}{
		{"", "croprush", false},
		{"vs-ai", "croprush", false},
		{"AI", "croprush", false},
		{"solo", "croprush_solo", false},
		{"croprush_solo", "croprush_solo", false},
		{"pong", "", true},
	}

	for _, tc := range tests {
		t.Run(tc.arg, func(t *testing.T) {
			got, err := resolveMode(tc.arg)
			if (err != nil) != tc.wantErr {
				t.Fatalf("resolveMode(%q) error = %v", tc.arg, err)
			}
			if got != tc.want {
				t.Errorf("resolveMode(%q) = %q, expected %q", tc.arg, got, tc.want)
			}
		})
	}
}

func TestApplySettingsKeepsExplicitFlags(t *testing.T) {
	if err := rootCmd.PersistentFlags().Set("fps", "24"); err != nil {
		t.Fatalf("Set() failed: %v", err)
	}
	defer func() {
		flagFPS = 60
		rootCmd.PersistentFlags().Lookup("fps").Changed = false
	}()

	s := config.DefaultSettings()
	s.Game.FPS = 90
	s.Game.Difficulty = "hard"
	applySettings(rootCmd, s)

	if flagFPS != 24 {
		t.Errorf("explicit --fps overridden: %d", flagFPS)
	}
	if flagDifficulty != "hard" {
		t.Errorf("difficulty from settings not applied: %q", flagDifficulty)
	}
	flagDifficulty = ""
}
