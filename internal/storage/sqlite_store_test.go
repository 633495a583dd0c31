package storage

import (
	"path/filepath"
	"testing"

	"github.com/julianstephens/healthdash/internal/models"
)

func TestSQLiteStore_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "health-data.db")
	store := NewSQLiteStore(path)
	if err := store.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	defer store.Close()

	hr := 58
	weight := 181.4
	rec := models.DayRecord{
		Date:           "2026-01-10",
		Weight:         &weight,
		Calories:       1850,
		Protein:        95,
		Fat:            60,
		Carbs:          180,
		Steps:          9200,
		CaloriesBurned: 2600,
		RestingHR:      &hr,
		ActiveMinutes:  45,
		SleepMinutes:   412,
		Meals: []models.MealEntry{
			{Time: "Lunch", Name: "Chicken bowl", Calories: 700, Protein: 40, Fat: 20, Carbs: 60},
		},
		Workouts: []models.WorkoutEntry{
			{Name: "Bench Press", Weight: 135, Sets: 3, Reps: "8"},
		},
	}

	if err := store.AddDay(rec); err != nil {
		t.Fatalf("AddDay failed: %v", err)
	}

	days, err := store.Days()
	if err != nil {
		t.Fatalf("Days failed: %v", err)
	}
	if len(days) != 1 {
		t.Fatalf("expected 1 day, got %d", len(days))
	}

	got := days[0]
	if got.Date != rec.Date || got.Calories != rec.Calories || got.Steps != rec.Steps {
		t.Errorf("unexpected day: %+v", got)
	}
	if got.Weight == nil || *got.Weight != weight {
		t.Errorf("expected weight %v, got %v", weight, got.Weight)
	}
	if got.RestingHR == nil || *got.RestingHR != hr {
		t.Errorf("expected resting HR %d, got %v", hr, got.RestingHR)
	}
	if len(got.Meals) != 1 || got.Meals[0].Name != "Chicken bowl" {
		t.Errorf("unexpected meals: %+v", got.Meals)
	}
	if len(got.Workouts) != 1 || got.Workouts[0].Reps != "8" {
		t.Errorf("unexpected workouts: %+v", got.Workouts)
	}
}

func TestSQLiteStore_NullableFieldsAbsent(t *testing.T) {
	store := NewSQLiteStore(filepath.Join(t.TempDir(), "health-data.db"))
	if err := store.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	defer store.Close()

	if err := store.AddDay(record("2026-01-10")); err != nil {
		t.Fatalf("AddDay failed: %v", err)
	}

	days, err := store.Days()
	if err != nil {
		t.Fatalf("Days failed: %v", err)
	}
	if days[0].Weight != nil {
		t.Errorf("expected absent weight, got %v", *days[0].Weight)
	}
	if days[0].RestingHR != nil {
		t.Errorf("expected absent resting HR, got %v", *days[0].RestingHR)
	}
}

func TestSQLiteStore_OrderAndDuplicates(t *testing.T) {
	store := NewSQLiteStore(filepath.Join(t.TempDir(), "health-data.db"))
	if err := store.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	defer store.Close()

	for _, date := range []string{"2026-01-10", "2026-01-08"} {
		if err := store.AddDay(record(date)); err != nil {
			t.Fatalf("AddDay(%s) failed: %v", date, err)
		}
	}
	if err := store.AddDay(record("2026-01-10")); err == nil {
		t.Error("expected duplicate date to be rejected")
	}

	has, err := store.HasDay("2026-01-08")
	if err != nil {
		t.Fatalf("HasDay failed: %v", err)
	}
	if !has {
		t.Error("expected HasDay to find 2026-01-08")
	}

	days, err := store.Days()
	if err != nil {
		t.Fatalf("Days failed: %v", err)
	}
	if len(days) != 2 || days[0].Date != "2026-01-08" || days[1].Date != "2026-01-10" {
		t.Errorf("expected ascending order, got %+v", days)
	}
}

func TestSQLiteStore_LoadMissingFileFails(t *testing.T) {
	store := NewSQLiteStore(filepath.Join(t.TempDir(), "health-data.db"))
	if err := store.Load(); err == nil {
		t.Error("expected Load to fail for a missing dataset")
	}
}
