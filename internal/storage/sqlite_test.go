package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
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

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file and its directories were created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreReopenKeepsData(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if _, err := store.SaveScore(GameID, 42); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}
	if err := store.SetInt(HighScoreKey, 42); err != nil {
		t.Fatalf("SetInt() failed: %v", err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer store.Close()

	high, _ := store.HighScore(GameID)
	pref, _ := store.GetInt(HighScoreKey, 0)
	if high != 42 || pref != 42 {
		t.Errorf("after reopen high=%d pref=%d, expected 42/42", high, pref)
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	for _, score := range []int{100, 50, 200} {
		if _, err := store.SaveScore(GameID, score); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}
	// Different game
	if _, err := store.SaveScore("other", 500); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	scores, err := store.TopScores(GameID, 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	// Should be sorted descending
	want := []int{200, 100, 50}
	for i, w := range want {
		if scores[i].Score != w {
			t.Errorf("scores[%d] = %d, expected %d", i, scores[i].Score, w)
		}
		if _, err := uuid.Parse(scores[i].RunID); err != nil {
			t.Errorf("scores[%d] run id %q is not a uuid", i, scores[i].RunID)
		}
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveScore(GameID, (i+1)*100)
	}

	scores, err := store.TopScores(GameID, 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores with limit, got %d", len(scores))
	}
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
}

func TestStoreSaveRun(t *testing.T) {
	store := openTestStore(t)

	run, err := store.SaveRun(Run{Player: "ada", Score: 1234})
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if run.ID == "" || run.GameID != GameID {
		t.Errorf("run defaults not filled in: %+v", run)
	}

	got, err := store.RunByID(run.ID)
	if err != nil {
		t.Fatalf("RunByID() failed: %v", err)
	}
	if got == nil || got.Player != "ada" || got.Score != 1234 {
		t.Errorf("RunByID() = %+v", got)
	}

	if _, err := store.SaveRun(Run{ID: run.ID, Score: 1}); err == nil {
		t.Error("duplicate run id should be rejected")
	}

	missing, err := store.RunByID(uuid.NewString())
	if err != nil || missing != nil {
		t.Errorf("unknown run = %v, %v; expected nil, nil", missing, err)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore(GameID)
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	store.SaveScore(GameID, 100)
	store.SaveScore(GameID, 300)
	store.SaveScore(GameID, 200)

	high, err = store.HighScore(GameID)
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore(GameID, 100)
	store.SaveScore(GameID, 200)
	store.SaveScore("other", 300)

	if err := store.ClearScores(GameID); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	mine, _ := store.TopScores(GameID, 10)
	if len(mine) != 0 {
		t.Errorf("Expected 0 scores after clear, got %d", len(mine))
	}
	other, _ := store.TopScores("other", 10)
	if len(other) != 1 {
		t.Errorf("Other games should not be affected by clearing")
	}
}

func TestStoreAllScores(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 20; i++ {
		store.SaveScore(GameID, i*10)
	}

	scores, err := store.AllScores(GameID)
	if err != nil {
		t.Fatalf("AllScores() failed: %v", err)
	}
	if len(scores) != 20 {
		t.Errorf("Expected 20 scores, got %d", len(scores))
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.GetGameStats(GameID)
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if empty.GamesCount != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("empty stats = %+v", empty)
	}

	store.SaveScore(GameID, 100)
	store.SaveScore(GameID, 300)

	stats, err := store.GetGameStats(GameID)
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 || stats.HighScore != 300 || stats.AvgScore != 200 || stats.TotalScore != 400 {
		t.Errorf("stats = %+v", stats)
	}
}

func TestPrefs(t *testing.T) {
	store := openTestStore(t)

	v, err := store.GetInt("missing", 7)
	if err != nil || v != 7 {
		t.Errorf("GetInt(missing) = %d, %v; expected default 7", v, err)
	}

	if err := store.SetInt("volume", 3); err != nil {
		t.Fatalf("SetInt() failed: %v", err)
	}
	if err := store.SetInt("volume", 5); err != nil {
		t.Fatalf("SetInt() overwrite failed: %v", err)
	}
	if v, _ := store.GetInt("volume", 0); v != 5 {
		t.Errorf("volume = %d, expected 5", v)
	}
}

func TestHighScorePref(t *testing.T) {
	store := openTestStore(t)
	pref := NewHighScorePref(store, nil)

	if got := pref.GetHighScore(); got != 0 {
		t.Errorf("fresh high score = %d, expected 0", got)
	}
	pref.SetHighScore(900)
	if got := pref.GetHighScore(); got != 900 {
		t.Errorf("high score = %d, expected 900", got)
	}
	if v, _ := store.GetInt(HighScoreKey, 0); v != 900 {
		t.Errorf("pref %s = %d, expected 900", HighScoreKey, v)
	}
}
