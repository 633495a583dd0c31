package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/julianstephens/healthdash/internal/models"
)

const daysSchema = `
CREATE TABLE IF NOT EXISTS days (
	date            TEXT PRIMARY KEY,
	weight          REAL,
	calories        INTEGER NOT NULL,
	protein         INTEGER NOT NULL,
	fat             INTEGER NOT NULL,
	carbs           INTEGER NOT NULL,
	steps           INTEGER NOT NULL,
	calories_burned INTEGER NOT NULL,
	resting_hr      INTEGER,
	active_minutes  INTEGER NOT NULL,
	sleep_minutes   INTEGER NOT NULL,
	meals_json      TEXT NOT NULL,
	workouts_json   TEXT NOT NULL
);`

// SQLiteStore persists day records in a single-table SQLite database.
// Meals and workouts are stored as JSON columns; the flat day figures get
// real columns so the dataset stays queryable with plain SQL.
type SQLiteStore struct {
	path string
	db   *sql.DB
}

func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{
		path: path,
	}
}

func (s *SQLiteStore) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("dataset already initialized at %s", s.path)
	}

	if err := s.open(); err != nil {
		return err
	}

	if _, err := s.db.Exec(daysSchema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

func (s *SQLiteStore) Load() error {
	if s.db != nil {
		return nil
	}

	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return fmt.Errorf("dataset not initialized, run 'healthdash init' first")
	}

	if err := s.open(); err != nil {
		return err
	}

	// Ensure the schema is present before the run touches it.
	if _, err := s.db.Exec(daysSchema); err != nil {
		return fmt.Errorf("failed to verify schema: %w", err)
	}

	return nil
}

func (s *SQLiteStore) open() error {
	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	db.SetMaxOpenConns(1)
	if err := db.Ping(); err != nil {
		return fmt.Errorf("failed to ping database: %w", err)
	}
	s.db = db
	return nil
}

func (s *SQLiteStore) Close() error {
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

func (s *SQLiteStore) Days() ([]models.DayRecord, error) {
	if s.db == nil {
		return nil, fmt.Errorf("dataset not loaded")
	}

	rows, err := s.db.Query(`
		SELECT date, weight, calories, protein, fat, carbs, steps,
		       calories_burned, resting_hr, active_minutes, sleep_minutes,
		       meals_json, workouts_json
		FROM days ORDER BY date ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query days: %w", err)
	}
	defer rows.Close()

	var days []models.DayRecord
	for rows.Next() {
		var (
			rec          models.DayRecord
			weight       sql.NullFloat64
			restingHR    sql.NullInt64
			mealsJSON    string
			workoutsJSON string
		)
		if err := rows.Scan(&rec.Date, &weight, &rec.Calories, &rec.Protein,
			&rec.Fat, &rec.Carbs, &rec.Steps, &rec.CaloriesBurned,
			&restingHR, &rec.ActiveMinutes, &rec.SleepMinutes,
			&mealsJSON, &workoutsJSON); err != nil {
			return nil, fmt.Errorf("failed to scan day: %w", err)
		}
		if weight.Valid {
			w := weight.Float64
			rec.Weight = &w
		}
		if restingHR.Valid {
			hr := int(restingHR.Int64)
			rec.RestingHR = &hr
		}
		if err := json.Unmarshal([]byte(mealsJSON), &rec.Meals); err != nil {
			return nil, fmt.Errorf("failed to parse meals for %s: %w", rec.Date, err)
		}
		if err := json.Unmarshal([]byte(workoutsJSON), &rec.Workouts); err != nil {
			return nil, fmt.Errorf("failed to parse workouts for %s: %w", rec.Date, err)
		}
		days = append(days, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate days: %w", err)
	}

	return days, nil
}

func (s *SQLiteStore) HasDay(date string) (bool, error) {
	if s.db == nil {
		return false, fmt.Errorf("dataset not loaded")
	}

	var one int
	err := s.db.QueryRow(`SELECT 1 FROM days WHERE date = ?`, date).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to look up day: %w", err)
	}
	return true, nil
}

func (s *SQLiteStore) AddDay(record models.DayRecord) error {
	if s.db == nil {
		return fmt.Errorf("dataset not loaded")
	}

	exists, err := s.HasDay(record.Date)
	if err != nil {
		return err
	}
	if exists {
		return fmt.Errorf("day already recorded: %s", record.Date)
	}

	meals := record.Meals
	if meals == nil {
		meals = []models.MealEntry{}
	}
	workouts := record.Workouts
	if workouts == nil {
		workouts = []models.WorkoutEntry{}
	}
	mealsJSON, err := json.Marshal(meals)
	if err != nil {
		return fmt.Errorf("failed to serialize meals: %w", err)
	}
	workoutsJSON, err := json.Marshal(workouts)
	if err != nil {
		return fmt.Errorf("failed to serialize workouts: %w", err)
	}

	var weight any
	if record.Weight != nil {
		weight = *record.Weight
	}
	var restingHR any
	if record.RestingHR != nil {
		restingHR = *record.RestingHR
	}

	_, err = s.db.Exec(`
		INSERT INTO days (date, weight, calories, protein, fat, carbs, steps,
		                  calories_burned, resting_hr, active_minutes,
		                  sleep_minutes, meals_json, workouts_json)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		record.Date, weight, record.Calories, record.Protein, record.Fat,
		record.Carbs, record.Steps, record.CaloriesBurned, restingHR,
		record.ActiveMinutes, record.SleepMinutes,
		string(mealsJSON), string(workoutsJSON))
	if err != nil {
		return fmt.Errorf("failed to insert day: %w", err)
	}

	return nil
}

func (s *SQLiteStore) Path() string {
	return s.path
}
