package healthlog

import (
	"strings"

	"github.com/julianstephens/healthdash/internal/models"
)

// ParseWorkouts extracts strength-training entries from the log's workout
// section. A log without such a section yields an empty list.
func ParseWorkouts(content string) []models.WorkoutEntry {
	section, ok := workoutSection(content)
	if !ok {
		return nil
	}

	var workouts []models.WorkoutEntry
	for _, line := range strings.Split(section, "\n") {
		name, weight, ok := matchExercise(line)
		if !ok {
			continue
		}

		sets, reps, hasSetsReps := matchSetsReps(line)
		if !hasSetsReps {
			sets, reps = 0, "0"
		}
		if varSets, varReps, hasVar := matchVariableReps(line); hasVar {
			reps = varReps
			if !hasSetsReps && varSets > 0 {
				sets = varSets
			}
		}

		workouts = append(workouts, models.WorkoutEntry{
			Name:   name,
			Weight: weight,
			Sets:   sets,
			Reps:   reps,
		})
	}

	return workouts
}

// workoutSection returns the lines between a level-2 heading containing
// "workout" and the next level-2 heading (or end of document).
func workoutSection(content string) (string, bool) {
	lines := strings.Split(content, "\n")
	start := -1
	for i, line := range lines {
		if strings.HasPrefix(line, "## ") && strings.Contains(strings.ToLower(line), "workout") {
			start = i + 1
			break
		}
	}
	if start < 0 {
		return "", false
	}

	end := len(lines)
	for i := start; i < len(lines); i++ {
		if strings.HasPrefix(lines[i], "## ") {
			end = i
			break
		}
	}

	return strings.Join(lines[start:end], "\n"), true
}
