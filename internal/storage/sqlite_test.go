package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

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
	dbPath := filepath.Join(tmpDir, "nested", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestSaveRunAssignsID(t *testing.T) {
	store := openTestStore(t)

	id, err := store.SaveRun(Run{MapID: "apartment", Outcome: OutcomeWon, TasksDone: 7, TasksTotal: 7, Happiness: 45})
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if _, err := uuid.Parse(id); err != nil {
		t.Errorf("id %q is not a UUID: %v", id, err)
	}

	run, err := store.RunByID(id)
	if err != nil {
		t.Fatalf("RunByID() failed: %v", err)
	}
	if run.MapID != "apartment" || run.Outcome != OutcomeWon || run.Happiness != 45 || run.TasksDone != 7 {
		t.Errorf("run = %+v", run)
	}
	if run.CreatedAt.IsZero() {
		t.Error("CreatedAt should be set")
	}
}

func TestSaveRunRejectsInvalid(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.SaveRun(Run{Outcome: OutcomeWon}); err == nil {
		t.Error("expected error for missing map id")
	}
	if _, err := store.SaveRun(Run{MapID: "studio", Outcome: "draw"}); err == nil {
		t.Error("expected error for unknown outcome")
	}
}

func TestRecentRuns(t *testing.T) {
	store := openTestStore(t)
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	for i, mapID := range []string{"apartment", "studio", "apartment"} {
		_, err := store.SaveRun(Run{
			MapID:     mapID,
			Outcome:   OutcomeLost,
			TasksDone: i,
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		})
		if err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	all, err := store.RecentRuns("", 10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(all) != 3 || all[0].TasksDone != 2 || all[2].TasksDone != 0 {
		t.Errorf("RecentRuns(all) = %+v, expected newest first", all)
	}

	apt, err := store.RecentRuns("apartment", 1)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(apt) != 1 || apt[0].TasksDone != 2 {
		t.Errorf("RecentRuns(apartment, 1) = %+v", apt)
	}
	if !apt[0].CreatedAt.Equal(base.Add(2 * time.Minute)) {
		t.Errorf("CreatedAt = %v", apt[0].CreatedAt)
	}
}

func TestBestRunsOrdering(t *testing.T) {
	store := openTestStore(t)

	runs := []Run{
		{MapID: "studio", Outcome: OutcomeLost, TasksDone: 6, Happiness: 0},
		{MapID: "studio", Outcome: OutcomeWon, TasksDone: 7, Happiness: 20, Duration: 5 * time.Minute},
		{MapID: "studio", Outcome: OutcomeWon, TasksDone: 7, Happiness: 20, Duration: 3 * time.Minute},
		{MapID: "studio", Outcome: OutcomeWon, TasksDone: 7, Happiness: 60, Duration: 9 * time.Minute},
		{MapID: "studio", Outcome: OutcomeQuit, TasksDone: 7, Happiness: 80},
		{MapID: "apartment", Outcome: OutcomeWon, TasksDone: 7, Happiness: 100},
	}
	for _, r := range runs {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	best, err := store.BestRuns("studio", 10)
	if err != nil {
		t.Fatalf("BestRuns() failed: %v", err)
	}
	if len(best) != 4 {
		t.Fatalf("got %d runs, expected 4 (quit runs excluded)", len(best))
	}
	if best[0].Happiness != 60 {
		t.Errorf("best run happiness = %d, expected 60", best[0].Happiness)
	}
	if best[1].Duration != 3*time.Minute || best[2].Duration != 5*time.Minute {
		t.Errorf("ties should be broken by duration: %v, %v", best[1].Duration, best[2].Duration)
	}
	if best[3].Outcome != OutcomeLost {
		t.Errorf("lost run should rank last, got %s", best[3].Outcome)
	}
}

func TestMapStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.MapStats("studio")
	if err != nil {
		t.Fatalf("MapStats() failed: %v", err)
	}
	if empty.Runs != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("empty stats = %+v", empty)
	}

	store.SaveRun(Run{MapID: "studio", Outcome: OutcomeWon, TasksDone: 7, Happiness: 40})
	store.SaveRun(Run{MapID: "studio", Outcome: OutcomeLost, TasksDone: 3, Happiness: 0})
	store.SaveRun(Run{MapID: "apartment", Outcome: OutcomeLost, TasksDone: 1, Happiness: 0})

	stats, err := store.MapStats("studio")
	if err != nil {
		t.Fatalf("MapStats() failed: %v", err)
	}
	if stats.Runs != 2 || stats.Wins != 1 || stats.BestTasks != 7 || stats.AvgHappiness != 20 {
		t.Errorf("stats = %+v", stats)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed should be set")
	}

	all, err := store.AllMapStats()
	if err != nil {
		t.Fatalf("AllMapStats() failed: %v", err)
	}
	if len(all) != 2 || all["apartment"].Runs != 1 {
		t.Errorf("AllMapStats() = %v", all)
	}
}

func TestClearRuns(t *testing.T) {
	store := openTestStore(t)
	store.SaveRun(Run{MapID: "studio", Outcome: OutcomeLost})
	store.SaveRun(Run{MapID: "apartment", Outcome: OutcomeLost})

	if err := store.ClearRuns("studio"); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}
	runs, _ := store.RecentRuns("", 10)
	if len(runs) != 1 || runs[0].MapID != "apartment" {
		t.Errorf("runs after clear = %+v", runs)
	}
}
