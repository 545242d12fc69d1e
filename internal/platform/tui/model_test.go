package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/crop-rush/internal/config"
	"github.com/vovakirdan/crop-rush/internal/core"
	"github.com/vovakirdan/crop-rush/internal/games/farm"
	"github.com/vovakirdan/crop-rush/internal/storage"
)

func shortLevelConfig() config.FarmConfig {
	return config.FarmConfig{
		Arena:  config.ArenaConfig{Width: 800, Height: 480},
		Farmer: config.ActorConfig{Speed: 120, Size: 32},
		AI:     config.AIConfig{ActorConfig: config.ActorConfig{Speed: 110, Size: 28}},
		Input:  config.InputConfig{Hold: 0.35},
		Crops:  config.CropsConfig{Distribution: map[string]float64{"wheat": 1}},
		Levels: []config.LevelConfig{{Goal: 50, Time: 0.1, SpawnEvery: 100}},
	}
}

func TestModelSavesResultOnce(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	game := farm.NewWithConfig(farm.ModeVsAI, shortLevelConfig())
	m := NewModel(game, store, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 5}, nil)
	defer m.Close()

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(Model)
	if game.Phase() != farm.PhasePlaying {
		t.Fatalf("enter should start the game, phase %s", game.Phase())
	}

	now := time.Now()
	for i := 0; i < 30; i++ {
		now = now.Add(20 * time.Millisecond)
		next, _ = m.Update(TickMsg(now))
		m = next.(Model)
	}

	if game.Phase() != farm.PhaseGameOver {
		t.Fatalf("level should have timed out, phase %s", game.Phase())
	}

	results, err := store.TopScores(game.ID(), 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("expected exactly one saved result, got %d", len(results))
	}
	if r := results[0]; r.Outcome != storage.OutcomeTimeUp || r.Level != 1 || r.TimeLeft != 0 {
		t.Errorf("unexpected result %+v", r)
	}
}

func TestModelViewAndQuit(t *testing.T) {
	game := farm.NewWithConfig(farm.ModeSolo, shortLevelConfig())
	m := NewModel(game, nil, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 30}, nil)
	defer m.Close()

	if view := m.View(); !strings.Contains(view, "Crop Rush") {
		t.Error("menu view should show the title")
	}

	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	m = next.(Model)
	if m.screen.Width() != 100 || m.screen.Height() != 30 {
		t.Errorf("screen not resized: %dx%d", m.screen.Width(), m.screen.Height())
	}

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	m = next.(Model)
	if cmd == nil || m.View() != "" {
		t.Error("ctrl+c should quit")
	}
}

func TestModelDetachesOnClose(t *testing.T) {
	game := farm.NewWithConfig(farm.ModeVsAI, shortLevelConfig())
	m := NewModel(game, nil, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60}, nil)

	if m.keys.Len() == 0 {
		t.Fatal("game did not subscribe to keys")
	}
	m.Close()
	if m.keys.Len() != 0 {
		t.Errorf("%d key handlers left after Close", m.keys.Len())
	}
}
