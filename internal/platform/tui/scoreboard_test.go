package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/crop-rush/internal/core"
	"github.com/vovakirdan/crop-rush/internal/storage"
)

func TestScoreboardShowsResults(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	for _, r := range []storage.Result{
		{GameID: "croprush", Level: 2, Score: 41, AIScore: 12, Outcome: storage.OutcomeWin},
		{GameID: "croprush", Level: 1, Score: 7, AIScore: 20, Outcome: storage.OutcomeAIWon},
	} {
		if _, err := store.SaveResult(r); err != nil {
			t.Fatalf("SaveResult() failed: %v", err)
		}
	}

	m := NewScoreboardModel(store, 120, 40)
	view := m.View()
	for _, want := range []string{"Crop Rush", "41", "AI won", "2 played"} {
		if !strings.Contains(view, want) {
			t.Errorf("view is missing %q", want)
		}
	}

	// Switch to the solo mode, which has no results.
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(ScoreboardModel)
	if len(m.scores) != 0 || !strings.Contains(m.View(), "No results yet") {
		t.Error("solo mode should have no results")
	}

	// Back to vs AI and clear it.
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	m = next.(ScoreboardModel)
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("X")})
	m = next.(ScoreboardModel)
	if len(m.scores) != 0 {
		t.Errorf("%d results left after clear", len(m.scores))
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = next.(ScoreboardModel)
	if !m.IsGoingBack() || m.IsQuitting() {
		t.Error("esc should go back to the menu")
	}
}

func TestMenuSelection(t *testing.T) {
	m := NewMenuModel(nil, core.DefaultConfig())

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = next.(MenuModel)
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(MenuModel)
	if sel := m.Selected(); sel == nil || sel.GameID != "croprush_solo" {
		t.Fatalf("Selected() = %+v, expected solo", sel)
	}

	m = NewMenuModel(nil, core.DefaultConfig())
	for range 5 {
		next, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
		m = next.(MenuModel)
	}
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(MenuModel)
	if !m.WantsScoreboard() || m.Selected() != nil {
		t.Error("last item should open the scoreboard")
	}
}
