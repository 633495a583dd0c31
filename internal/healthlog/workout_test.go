package healthlog

import (
	"testing"

	"github.com/julianstephens/healthdash/internal/models"
)

func TestParseWorkouts_StandardSetsReps(t *testing.T) {
	content := `## Workout — Push Day
1. Pectoral Fly (Life Fitness) — 70 lbs, 4×10
2. Shoulder Press — 55 lbs, 3 x 12
3. Bench Press (Barbell) — 135 lbs, 3×8
`

	workouts := ParseWorkouts(content)

	if len(workouts) != 3 {
		t.Fatalf("expected 3 workouts, got %d", len(workouts))
	}

	tests := []models.WorkoutEntry{
		{Name: "Pectoral Fly", Weight: 70, Sets: 4, Reps: "10"},
		{Name: "Shoulder Press", Weight: 55, Sets: 3, Reps: "12"},
		{Name: "Bench Press", Weight: 135, Sets: 3, Reps: "8"},
	}
	for i, want := range tests {
		if workouts[i] != want {
			t.Errorf("workout %d: expected %+v, got %+v", i, want, workouts[i])
		}
	}
}

func TestParseWorkouts_VariableReps(t *testing.T) {
	content := `## Workout
1. Lat Pulldown — 100 lbs, 3×10
2. Leg Press — 200 lbs, 3 sets (10, 10, 6)
`

	workouts := ParseWorkouts(content)

	if len(workouts) != 2 {
		t.Fatalf("expected 2 workouts, got %d", len(workouts))
	}

	want := models.WorkoutEntry{Name: "Leg Press", Weight: 200, Sets: 3, Reps: "10,10,6"}
	if workouts[1] != want {
		t.Errorf("expected %+v, got %+v", want, workouts[1])
	}
}

func TestParseWorkouts_MissingSetsRepsDefaults(t *testing.T) {
	content := `## Workout
1. Farmer Carry — 90 lbs
`

	workouts := ParseWorkouts(content)

	if len(workouts) != 1 {
		t.Fatalf("expected 1 workout, got %d", len(workouts))
	}

	want := models.WorkoutEntry{Name: "Farmer Carry", Weight: 90, Sets: 0, Reps: "0"}
	if workouts[0] != want {
		t.Errorf("expected %+v, got %+v", want, workouts[0])
	}
}

func TestParseWorkouts_UnitVariants(t *testing.T) {
	content := `## Workout
1. Deadlift — 225 lb, 1×5
2. Goblet Squat — 50 pounds, 3×10
3. Curl — 25 pound, 2×12
`

	workouts := ParseWorkouts(content)

	if len(workouts) != 3 {
		t.Fatalf("expected 3 workouts, got %d", len(workouts))
	}
	weights := []int{225, 50, 25}
	for i, w := range weights {
		if workouts[i].Weight != w {
			t.Errorf("workout %d: expected weight %d, got %d", i, w, workouts[i].Weight)
		}
	}
}

func TestParseWorkouts_SectionBoundary(t *testing.T) {
	// Lines after the next level-2 heading are not workout entries even if
	// they happen to match the exercise shape.
	content := `## Workout
1. Row — 120 lbs, 3×10

## Notes
1. Protein powder — 2 lbs, ordered
`

	workouts := ParseWorkouts(content)

	if len(workouts) != 1 {
		t.Fatalf("expected 1 workout, got %d", len(workouts))
	}
	if workouts[0].Name != "Row" {
		t.Errorf("expected %q, got %q", "Row", workouts[0].Name)
	}
}

func TestParseWorkouts_NoSection(t *testing.T) {
	content := `## Lunch
- **Sandwich** — 450cal, 22g protein
`

	if workouts := ParseWorkouts(content); len(workouts) != 0 {
		t.Errorf("expected no workouts, got %d", len(workouts))
	}
}

func TestParseWorkouts_IgnoresNonMatchingLines(t *testing.T) {
	content := `## Workout (evening)
Warmed up on the treadmill for 10 minutes.
1. Incline Press — 60 lbs, 3×12
2. Stretching
- felt strong today
`

	workouts := ParseWorkouts(content)

	if len(workouts) != 1 {
		t.Fatalf("expected 1 workout, got %d", len(workouts))
	}
	if workouts[0].Name != "Incline Press" {
		t.Errorf("expected %q, got %q", "Incline Press", workouts[0].Name)
	}
}
