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

func save(t *testing.T, store *Store, gameID string, score, level int) {
	t.Helper()
	if _, err := store.SaveScore(ScoreEntry{GameID: gameID, RunID: "run", Score: score, Level: level}); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}
}

func TestStoreOpenCreatesNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	id, err := store.SaveScore(ScoreEntry{GameID: "arena", RunID: "r-1", Score: 100, Level: 3})
	if err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}
	if id <= 0 {
		t.Errorf("Expected positive ID, got %d", id)
	}
	save(t, store, "arena", 50, 2)
	save(t, store, "arena", 200, 4)
	save(t, store, "arena3d", 500, 5)

	scores, err := store.TopScores("arena", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	// Should be sorted descending
	want := []int{200, 100, 50}
	for i, s := range scores {
		if s.Score != want[i] {
			t.Errorf("scores[%d] = %d, want %d", i, s.Score, want[i])
		}
	}
	if scores[1].RunID != "r-1" || scores[1].Level != 3 {
		t.Errorf("Run details not stored: %+v", scores[1])
	}
	if scores[0].CreatedAt.IsZero() {
		t.Error("CreatedAt not populated")
	}

	other, err := store.TopScores("arena3d", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(other) != 1 {
		t.Errorf("Expected 1 arena3d score, got %d", len(other))
	}
}

func TestStoreDefaultsLevel(t *testing.T) {
	store := openTestStore(t)
	save(t, store, "arena", 10, 0)

	scores, _ := store.TopScores("arena", 1)
	if len(scores) != 1 || scores[0].Level != 1 {
		t.Errorf("Expected level 1 for unset level, got %+v", scores)
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)
	for i := 0; i < 5; i++ {
		save(t, store, "arena", (i+1)*100, 1)
	}

	scores, err := store.TopScores("arena", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores with limit, got %d", len(scores))
	}
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}

	all, _ := store.TopScores("arena", 0)
	if len(all) != 5 {
		t.Errorf("Expected default limit to return all 5 scores, got %d", len(all))
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("arena")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	save(t, store, "arena", 100, 1)
	save(t, store, "arena", 300, 1)
	save(t, store, "arena", 200, 1)

	high, err = store.HighScore("arena")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)
	save(t, store, "arena", 100, 1)
	save(t, store, "arena", 200, 1)
	save(t, store, "arena3d", 300, 1)

	if err := store.ClearScores("arena"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	cleared, _ := store.TopScores("arena", 10)
	if len(cleared) != 0 {
		t.Errorf("Expected 0 arena scores after clear, got %d", len(cleared))
	}

	kept, _ := store.TopScores("arena3d", 10)
	if len(kept) != 1 {
		t.Errorf("arena3d scores should not be affected by clearing arena")
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.GetGameStats("arena")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if empty.GamesCount != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("Expected empty stats, got %+v", empty)
	}

	save(t, store, "arena", 10, 2)
	save(t, store, "arena", 30, 3)

	stats, err := store.GetGameStats("arena")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 || stats.HighScore != 30 || stats.BestLevel != 3 {
		t.Errorf("Unexpected stats: %+v", stats)
	}
	if stats.AvgScore != 20 || stats.TotalScore != 40 {
		t.Errorf("Unexpected aggregates: %+v", stats)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed not populated")
	}
}

func TestStoreUpgradesLegacySchema(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "legacy.db")

	// Layout written by the arcade build: no run_id or level columns.
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
	INSERT INTO scores (game_id, score) VALUES ('arena', 700);`); err != nil {
		t.Fatalf("seeding legacy schema failed: %v", err)
	}
	legacy.Close()

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() on legacy database failed: %v", err)
	}
	defer store.Close()

	if v, err := store.SchemaVersion(); err != nil || v != len(migrations) {
		t.Fatalf("SchemaVersion() = %d, %v; want %d", v, err, len(migrations))
	}

	save(t, store, "arena", 900, 4)
	top, err := store.TopScores("arena", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(top) != 2 {
		t.Fatalf("expected 2 rows after upgrade, got %d", len(top))
	}
	if top[0].Score != 900 || top[0].Level != 4 || top[0].RunID != "run" {
		t.Errorf("new row = %+v", top[0])
	}
	if top[1].Score != 700 || top[1].Level != 1 || top[1].RunID != "" {
		t.Errorf("legacy row should get column defaults, got %+v", top[1])
	}
}

func TestStoreReopenSkipsAppliedMigrations(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "scores.db")

	first, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	save(t, first, "arena3d", 50, 2)
	first.Close()

	second, err := Open(dbPath)
	if err != nil {
		t.Fatalf("second Open() failed: %v", err)
	}
	defer second.Close()

	best, err := second.HighScore("arena3d")
	if err != nil || best != 50 {
		t.Errorf("HighScore() = %d, %v; want 50", best, err)
	}
}
