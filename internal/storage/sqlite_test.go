package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func save(t *testing.T, store *Store, r Result) {
	t.Helper()
	if _, err := store.SaveResult(r); err != nil {
		t.Fatalf("SaveResult() failed: %v", err)
	}
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	save(t, store, Result{GameID: "croprush", Level: 1, Score: 10, AIScore: 15, Outcome: OutcomeAIWon})
	save(t, store, Result{GameID: "croprush", Level: 1, Score: 5, Outcome: OutcomeTimeUp})
	save(t, store, Result{GameID: "croprush", Level: 2, Score: 40, AIScore: 12, Outcome: OutcomeWin, TimeLeft: 7.5})
	save(t, store, Result{GameID: "croprush_solo", Level: 1, Score: 99, Outcome: OutcomeWin})

	results, err := store.TopScores("croprush", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("Expected 3 results, got %d", len(results))
	}

	// Should be sorted descending
	for i, want := range []int{40, 10, 5} {
		if results[i].Score != want {
			t.Errorf("results[%d].Score = %d, expected %d", i, results[i].Score, want)
		}
	}

	top := results[0]
	if top.Level != 2 || top.AIScore != 12 || top.Outcome != OutcomeWin || top.TimeLeft != 7.5 {
		t.Errorf("columns not round-tripped: %+v", top)
	}
	if top.CreatedAt.IsZero() {
		t.Error("created_at was not populated")
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		save(t, store, Result{GameID: "test", Level: 1, Score: (i + 1) * 100, Outcome: OutcomeTimeUp})
	}

	// Request only top 3
	scores, err := store.TopScores("test", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Errorf("Expected 3 scores with limit, got %d", len(scores))
	}

	// Should be 500, 400, 300 (top 3)
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
}

func TestStoreTopScoresTieBreak(t *testing.T) {
	store := openTestStore(t)

	save(t, store, Result{GameID: "test", Level: 1, Score: 20, Outcome: OutcomeWin})
	save(t, store, Result{GameID: "test", Level: 3, Score: 20, Outcome: OutcomeTimeUp})

	scores, err := store.TopScores("test", 0)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 2 || scores[0].Level != 3 {
		t.Errorf("equal scores should rank the higher level first: %+v", scores)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	// No results yet
	high, err := store.HighScore("croprush")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	for _, score := range []int{100, 300, 200} {
		save(t, store, Result{GameID: "croprush", Level: 1, Score: score, Outcome: OutcomeWin})
	}

	high, err = store.HighScore("croprush")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	save(t, store, Result{GameID: "croprush", Level: 1, Score: 100, Outcome: OutcomeWin})
	save(t, store, Result{GameID: "croprush", Level: 2, Score: 200, Outcome: OutcomeWin})
	save(t, store, Result{GameID: "croprush_solo", Level: 1, Score: 300, Outcome: OutcomeWin})

	// Clear only vs-AI results
	if err := store.ClearScores("croprush"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	if scores, _ := store.TopScores("croprush", 10); len(scores) != 0 {
		t.Errorf("Expected 0 results after clear, got %d", len(scores))
	}

	if scores, _ := store.TopScores("croprush_solo", 10); len(scores) != 1 {
		t.Errorf("Solo results should not be affected by clearing croprush")
	}
}

func TestStoreRecentResults(t *testing.T) {
	store := openTestStore(t)

	for i := 1; i <= 4; i++ {
		save(t, store, Result{GameID: "croprush", Level: i, Score: i, Outcome: OutcomeTimeUp})
	}

	recent, err := store.RecentResults(2)
	if err != nil {
		t.Fatalf("RecentResults() failed: %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("Expected 2 results, got %d", len(recent))
	}
	if recent[0].Level != 4 || recent[1].Level != 3 {
		t.Errorf("Expected newest first, got levels %d, %d", recent[0].Level, recent[1].Level)
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.GetGameStats("croprush")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if empty.Played != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("Expected empty stats, got %+v", empty)
	}

	save(t, store, Result{GameID: "croprush", Level: 1, Score: 15, Outcome: OutcomeWin})
	save(t, store, Result{GameID: "croprush", Level: 2, Score: 25, Outcome: OutcomeAIWon})
	save(t, store, Result{GameID: "croprush", Level: 1, Score: 2, Outcome: OutcomeTimeUp})

	stats, err := store.GetGameStats("croprush")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	// Level 2 was lost, so it is not the best level.
	if stats.Played != 3 || stats.Wins != 1 || stats.BestLevel != 1 || stats.HighScore != 25 {
		t.Errorf("unexpected stats %+v", stats)
	}
	if stats.AvgScore != 14 {
		t.Errorf("AvgScore = %g, expected 14", stats.AvgScore)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed was not populated")
	}

	save(t, store, Result{GameID: "croprush_solo", Level: 3, Score: 9, Outcome: OutcomeTimeUp})
	solo, err := store.GetGameStats("croprush_solo")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if solo.BestLevel != 0 || solo.Wins != 0 {
		t.Errorf("mode without wins should have no best level, got %+v", solo)
	}
}

func TestStoreNestedPath(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	// Verify nested directories were created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}
