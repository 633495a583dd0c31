package models

// MealEntry is a single parsed food item from the day's log.
type MealEntry struct {
	Time     string `json:"time"` // free-form label, e.g. "Lunch" or "4:30 PM"
	Name     string `json:"name"`
	Calories int    `json:"calories"`
	Protein  int    `json:"protein"`
	Fat      int    `json:"fat"`
	Carbs    int    `json:"carbs"`
}

// MacroTotals is the day's aggregate nutrition. A zero field means either
// "genuinely zero" or "not found in the log"; the parser backfills zero
// fields from meal sums when meals are present.
type MacroTotals struct {
	Calories int `json:"calories"`
	Protein  int `json:"protein"`
	Fat      int `json:"fat"`
	Carbs    int `json:"carbs"`
}

// Add returns the field-wise sum of two totals.
func (t MacroTotals) Add(o MacroTotals) MacroTotals {
	return MacroTotals{
		Calories: t.Calories + o.Calories,
		Protein:  t.Protein + o.Protein,
		Fat:      t.Fat + o.Fat,
		Carbs:    t.Carbs + o.Carbs,
	}
}

// WorkoutEntry is one strength-training exercise from the workout section.
// Reps is a string so variable-rep sets like "10,10,6" round-trip as logged.
type WorkoutEntry struct {
	Name   string `json:"name"`
	Weight int    `json:"weight"` // lbs
	Sets   int    `json:"sets"`
	Reps   string `json:"reps"`
}

// FitnessMetrics is the tracker-side data for a day. RestingHR and Weight
// are pointers because the tracker may simply not have them; they serialize
// as null to match the dataset file's historical shape.
type FitnessMetrics struct {
	Steps          int      `json:"steps"`
	CaloriesBurned int      `json:"caloriesBurned"`
	RestingHR      *int     `json:"restingHR"`
	ActiveMinutes  int      `json:"activeMinutes"`
	SleepMinutes   int      `json:"sleepMinutes"`
	Weight         *float64 `json:"weight"`
}

// DayRecord is one calendar day's merged nutrition, tracker metrics, meals,
// and workouts. Field order matters: the dataset file is human-diffed.
type DayRecord struct {
	Date           string         `json:"date"` // YYYY-MM-DD
	Weight         *float64       `json:"weight"`
	Calories       int            `json:"calories"`
	Protein        int            `json:"protein"`
	Fat            int            `json:"fat"`
	Carbs          int            `json:"carbs"`
	Steps          int            `json:"steps"`
	CaloriesBurned int            `json:"caloriesBurned"`
	RestingHR      *int           `json:"restingHR"`
	ActiveMinutes  int            `json:"activeMinutes"`
	SleepMinutes   int            `json:"sleepMinutes"`
	Meals          []MealEntry    `json:"meals"`
	Workouts       []WorkoutEntry `json:"workouts"`
}

// NewDayRecord assembles a record from its parsed and fetched parts.
func NewDayRecord(date string, totals MacroTotals, metrics FitnessMetrics, meals []MealEntry, workouts []WorkoutEntry) DayRecord {
	if meals == nil {
		meals = []MealEntry{}
	}
	if workouts == nil {
		workouts = []WorkoutEntry{}
	}
	return DayRecord{
		Date:           date,
		Weight:         metrics.Weight,
		Calories:       totals.Calories,
		Protein:        totals.Protein,
		Fat:            totals.Fat,
		Carbs:          totals.Carbs,
		Steps:          metrics.Steps,
		CaloriesBurned: metrics.CaloriesBurned,
		RestingHR:      metrics.RestingHR,
		ActiveMinutes:  metrics.ActiveMinutes,
		SleepMinutes:   metrics.SleepMinutes,
		Meals:          meals,
		Workouts:       workouts,
	}
}
