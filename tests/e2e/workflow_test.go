package e2e

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap"

	"github.com/julianstephens/healthdash/internal/healthlog"
	"github.com/julianstephens/healthdash/internal/models"
	"github.com/julianstephens/healthdash/internal/pipeline"
	"github.com/julianstephens/healthdash/internal/storage"
)

type stubMetrics struct{}

func (stubMetrics) FetchMetrics(ctx context.Context, date string) models.FitnessMetrics {
	return models.FitnessMetrics{Steps: 10000, CaloriesBurned: 2500, ActiveMinutes: 40, SleepMinutes: 400}
}

type stubPublisher struct {
	builds  int
	deploys int
}

func (s *stubPublisher) Build(ctx context.Context) error {
	s.builds++
	return nil
}

func (s *stubPublisher) Deploy(ctx context.Context) error {
	s.deploys++
	return nil
}

const logTemplate = `# Food Log

## Breakfast (~8:00 AM)
- **Eggs and toast** — 420cal, 24g protein, 18g fat, 38g carbs

## Lunch
- **Chicken bowl** — 700cal, 40g protein, 20g fat, 60g carbs
- **Ice water**

## Workout
1. Bench Press (Barbell) — 135 lbs, 3×8
2. Leg Press — 200 lbs, 3 sets (10, 10, 6)

**Daily totals:** ~1850 cal, 95g protein, 60g fat, 180g carbs
`

// TestEndToEndWorkflow walks the whole lifecycle against real storage and
// parsers, with only the network and subprocess collaborators stubbed:
// init, update for several days (out of order), idempotent re-run, browse.
func TestEndToEndWorkflow(t *testing.T) {
	tempDir := t.TempDir()

	dataPath := filepath.Join(tempDir, "health-data.json")
	logsDir := filepath.Join(tempDir, "logs")
	if err := os.MkdirAll(logsDir, 0700); err != nil {
		t.Fatalf("failed to create logs dir: %v", err)
	}

	store := storage.NewJSONStore(dataPath)
	if err := store.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	pub := &stubPublisher{}
	p := &pipeline.Pipeline{
		Store:     store,
		Locator:   healthlog.NewLocator(logsDir),
		Metrics:   stubMetrics{},
		Publisher: pub,
		Logger:    zap.NewNop(),
	}

	// Record three days, deliberately out of calendar order.
	dates := []string{"2026-01-12", "2026-01-10", "2026-01-11"}
	for _, date := range dates {
		if err := os.WriteFile(filepath.Join(logsDir, date+".md"), []byte(logTemplate), 0600); err != nil {
			t.Fatalf("failed to write log for %s: %v", date, err)
		}
		added, err := p.Run(context.Background(), date)
		if err != nil {
			t.Fatalf("update for %s failed: %v", date, err)
		}
		if !added {
			t.Fatalf("expected %s to be added", date)
		}
	}

	// Re-running an already recorded date is a clean no-op.
	added, err := p.Run(context.Background(), "2026-01-11")
	if err != nil {
		t.Fatalf("re-run failed: %v", err)
	}
	if added {
		t.Error("re-run must not add a second record")
	}

	// A date without a log is also a clean no-op and publishes nothing.
	buildsBefore := pub.builds
	if added, err := p.Run(context.Background(), "2026-01-13"); err != nil || added {
		t.Fatalf("expected clean no-op for missing log, got added=%v err=%v", added, err)
	}
	if pub.builds != buildsBefore {
		t.Error("missing log must not trigger a build")
	}

	if pub.builds != 3 || pub.deploys != 3 {
		t.Errorf("expected 3 builds and 3 deploys, got %d/%d", pub.builds, pub.deploys)
	}

	// Fresh load from disk: days sorted ascending, records complete.
	reloaded := storage.NewJSONStore(dataPath)
	if err := reloaded.Load(); err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	days, err := reloaded.Days()
	if err != nil {
		t.Fatalf("Days failed: %v", err)
	}
	if len(days) != 3 {
		t.Fatalf("expected 3 days, got %d", len(days))
	}
	want := []string{"2026-01-10", "2026-01-11", "2026-01-12"}
	for i, date := range want {
		if days[i].Date != date {
			t.Errorf("day %d: expected %s, got %s", i, date, days[i].Date)
		}
	}

	day := days[0]
	if day.Calories != 1850 || day.Protein != 95 {
		t.Errorf("explicit totals not recorded: %+v", day)
	}
	if len(day.Meals) != 2 {
		t.Errorf("expected 2 meals (ice water skipped), got %d", len(day.Meals))
	}
	if len(day.Workouts) != 2 {
		t.Errorf("expected 2 workouts, got %d", len(day.Workouts))
	}
	if day.Workouts[1].Reps != "10,10,6" {
		t.Errorf("variable reps not recorded: %+v", day.Workouts[1])
	}
	if day.Steps != 10000 {
		t.Errorf("metrics not merged: %+v", day)
	}
}
