package storage

import (
	"database/sql"
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

func TestStoreReopenKeepsData(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if _, err := store.SaveScore("eggdrop", "ana", 42, RunStats{}); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer store.Close()

	high, err := store.HighScore("eggdrop")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 42 {
		t.Errorf("Expected high score 42 after reopen, got %d", high)
	}
}

func TestStoreMigrationsApplyOnce(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	for range 2 {
		store, err := Open(dbPath)
		if err != nil {
			t.Fatalf("Open() failed: %v", err)
		}
		var version int
		if err := store.db.QueryRow("PRAGMA user_version").Scan(&version); err != nil {
			t.Fatalf("user_version query failed: %v", err)
		}
		if version != len(migrations) {
			t.Errorf("user_version = %d, expected %d", version, len(migrations))
		}
		store.Close()
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	stats := RunStats{GoldenEggs: 3, BombsHit: 1, RottenHit: 2, StarsCaught: 1}
	if _, err := store.SaveScore("eggdrop", "ana", 100, stats); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}
	if _, err := store.SaveScore("eggdrop", "bo", 50, RunStats{}); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}
	if _, err := store.SaveScore("eggdrop", "ana", 200, RunStats{}); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}
	// Different mode
	if _, err := store.SaveScore("eggdrop_skills", "cy", 500, RunStats{}); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	scores, err := store.TopScores("eggdrop", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	// Should be sorted descending
	if scores[0].Score != 200 || scores[1].Score != 100 || scores[2].Score != 50 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
	if scores[1].Player != "ana" || scores[1].Stats != stats {
		t.Errorf("Expected ana's run stats %+v, got %s %+v", stats, scores[1].Player, scores[1].Stats)
	}

	skills, err := store.TopScores("eggdrop_skills", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(skills) != 1 {
		t.Errorf("Expected 1 skills-mode score, got %d", len(skills))
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	// Save 5 scores
	for i := 0; i < 5; i++ {
		store.SaveScore("test", "p", (i+1)*100, RunStats{})
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

func TestStorePlayerScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("eggdrop", "ana", 10, RunStats{})
	store.SaveScore("eggdrop", "bo", 99, RunStats{})
	store.SaveScore("eggdrop", "ana", 30, RunStats{})

	scores, err := store.PlayerScores("eggdrop", "ana", 5)
	if err != nil {
		t.Fatalf("PlayerScores() failed: %v", err)
	}
	if len(scores) != 2 || scores[0].Score != 30 {
		t.Errorf("Expected ana's two runs led by 30, got %v", scores)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	// No scores yet
	high, err := store.HighScore("eggdrop")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	store.SaveScore("eggdrop", "p", 100, RunStats{})
	store.SaveScore("eggdrop", "p", 300, RunStats{})
	store.SaveScore("eggdrop", "p", 200, RunStats{})

	high, err = store.HighScore("eggdrop")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("eggdrop", "p", 100, RunStats{})
	store.SaveScore("eggdrop", "p", 200, RunStats{})
	store.SaveScore("eggdrop_skills", "p", 300, RunStats{})

	// Clear only classic scores
	if err := store.ClearScores("eggdrop"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	classic, _ := store.TopScores("eggdrop", 10)
	if len(classic) != 0 {
		t.Errorf("Expected 0 classic scores after clear, got %d", len(classic))
	}

	skills, _ := store.TopScores("eggdrop_skills", 10)
	if len(skills) != 1 {
		t.Errorf("Skills-mode scores should not be affected by clearing classic")
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.GetGameStats("eggdrop")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if empty.GamesCount != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("Expected empty stats, got %+v", empty)
	}

	store.SaveScore("eggdrop", "ana", 10, RunStats{GoldenEggs: 1, BombsHit: 2})
	store.SaveScore("eggdrop", "bo", 30, RunStats{GoldenEggs: 4, StarsCaught: 1})

	stats, err := store.GetGameStats("eggdrop")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 || stats.HighScore != 30 || stats.TotalScore != 40 {
		t.Errorf("Unexpected aggregate %+v", stats)
	}
	if stats.AvgScore != 20 {
		t.Errorf("Expected average 20, got %v", stats.AvgScore)
	}
	if stats.GoldenEggs != 5 || stats.BombsHit != 2 || stats.StarsCaught != 1 {
		t.Errorf("Unexpected counters %+v", stats)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("Expected LastPlayed to be set")
	}

	all, err := store.GetAllGamesStats()
	if err != nil {
		t.Fatalf("GetAllGamesStats() failed: %v", err)
	}
	if all["eggdrop"] == nil || all["eggdrop"].GamesCount != 2 {
		t.Errorf("Expected eggdrop entry with 2 games, got %+v", all)
	}
}

func TestStoreExpandHomePath(t *testing.T) {
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

func TestStoreTildePath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	store, err := Open("~/.arcade/test.db")
	if err != nil {
		t.Fatalf("Open() with ~ path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(filepath.Join(home, ".arcade", "test.db")); err != nil {
		t.Errorf("Expected database under HOME: %v", err)
	}
}

func TestStoreOpenUpgradesArcadeScores(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "scores.db")

	// Schema written by the arcade launcher that shares ~/.arcade/scores.db.
	legacy, err := sql.Open("sqlite", dbPath)
	if err != nil {
		t.Fatalf("sql.Open() failed: %v", err)
	}
	if _, err := legacy.Exec(`CREATE TABLE scores (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		game_id TEXT NOT NULL,
		score INTEGER NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);
	CREATE INDEX idx_scores_top ON scores(game_id, score DESC);
	INSERT INTO scores (game_id, score) VALUES ('eggdrop', 77), ('pong', 5);`); err != nil {
		t.Fatalf("legacy schema failed: %v", err)
	}
	legacy.Close()

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() on arcade database failed: %v", err)
	}
	defer store.Close()

	if _, err := store.SaveScore("eggdrop", "ana", 120, RunStats{GoldenEggs: 2}); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	scores, err := store.TopScores("eggdrop", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 2 {
		t.Fatalf("len(scores) = %d, expected 2", len(scores))
	}
	if scores[0].Player != "ana" || scores[0].Stats.GoldenEggs != 2 {
		t.Errorf("scores[0] = %+v, expected ana with 2 golden eggs", scores[0])
	}
	if scores[1].Score != 77 || scores[1].Player != "" {
		t.Errorf("scores[1] = %+v, expected the kept arcade row", scores[1])
	}
}
