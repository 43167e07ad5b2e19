package storage

import (
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSaveAndRetrieveRuns(t *testing.T) {
	store := openTestStore(t)

	runs := []struct {
		score, distance, duration int
	}{
		{12, 340, 45},
		{3, 80, 10},
		{12, 500, 62},
		{7, 210, 28},
	}
	for _, r := range runs {
		if _, err := store.SaveRun(r.score, r.distance, r.duration); err != nil {
			t.Fatalf("SaveRun(%d, %d, %d) error = %v", r.score, r.distance, r.duration, err)
		}
	}

	top, err := store.TopRuns(10)
	if err != nil {
		t.Fatalf("TopRuns() error = %v", err)
	}
	if len(top) != 4 {
		t.Fatalf("TopRuns() returned %d entries, want 4", len(top))
	}

	// Ordered by score desc, then distance desc.
	if top[0].Score != 12 || top[0].Distance != 500 {
		t.Errorf("top[0] = score %d distance %d, want 12/500", top[0].Score, top[0].Distance)
	}
	if top[1].Score != 12 || top[1].Distance != 340 {
		t.Errorf("top[1] = score %d distance %d, want 12/340", top[1].Score, top[1].Distance)
	}
	if top[3].Score != 3 {
		t.Errorf("top[3].Score = %d, want 3", top[3].Score)
	}
}

func TestTopRunsLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		if _, err := store.SaveRun(i, i*10, i); err != nil {
			t.Fatalf("SaveRun() error = %v", err)
		}
	}

	top, err := store.TopRuns(3)
	if err != nil {
		t.Fatalf("TopRuns(3) error = %v", err)
	}
	if len(top) != 3 {
		t.Errorf("TopRuns(3) returned %d entries, want 3", len(top))
	}
	if top[0].Score != 4 {
		t.Errorf("top[0].Score = %d, want 4", top[0].Score)
	}
}

func TestHighScoreEmpty(t *testing.T) {
	store := openTestStore(t)

	score, err := store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() error = %v", err)
	}
	if score != 0 {
		t.Errorf("HighScore() on empty store = %d, want 0", score)
	}
}

func TestHighScore(t *testing.T) {
	store := openTestStore(t)

	for _, s := range []int{4, 19, 7} {
		if _, err := store.SaveRun(s, s*20, 30); err != nil {
			t.Fatalf("SaveRun() error = %v", err)
		}
	}

	score, err := store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() error = %v", err)
	}
	if score != 19 {
		t.Errorf("HighScore() = %d, want 19", score)
	}
}

func TestStats(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.SaveRun(10, 300, 40); err != nil {
		t.Fatalf("SaveRun() error = %v", err)
	}
	if _, err := store.SaveRun(6, 450, 55); err != nil {
		t.Fatalf("SaveRun() error = %v", err)
	}

	stats, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() error = %v", err)
	}
	if stats.Runs != 2 {
		t.Errorf("Runs = %d, want 2", stats.Runs)
	}
	if stats.HighScore != 10 {
		t.Errorf("HighScore = %d, want 10", stats.HighScore)
	}
	if stats.BestDistance != 450 {
		t.Errorf("BestDistance = %d, want 450", stats.BestDistance)
	}
	if stats.AvgScore != 8 {
		t.Errorf("AvgScore = %v, want 8", stats.AvgScore)
	}
	if stats.TotalScore != 16 {
		t.Errorf("TotalScore = %d, want 16", stats.TotalScore)
	}
}

func TestStatsEmpty(t *testing.T) {
	store := openTestStore(t)

	stats, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() error = %v", err)
	}
	if stats.Runs != 0 || stats.HighScore != 0 {
		t.Errorf("empty stats = %+v, want zeros", stats)
	}
}

func TestClearRuns(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.SaveRun(5, 100, 12); err != nil {
		t.Fatalf("SaveRun() error = %v", err)
	}
	if err := store.ClearRuns(); err != nil {
		t.Fatalf("ClearRuns() error = %v", err)
	}

	top, err := store.TopRuns(10)
	if err != nil {
		t.Fatalf("TopRuns() error = %v", err)
	}
	if len(top) != 0 {
		t.Errorf("TopRuns() after clear returned %d entries, want 0", len(top))
	}
}
