package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/google/uuid"

	"github.com/julianstephens/healthdash/internal/models"
)

// Dataset is the on-disk shape of the JSON backend. The file is committed to
// the dashboard repo, so it is written indented with stable field order.
type Dataset struct {
	Days []models.DayRecord `json:"days"`
}

type JSONStore struct {
	path string
	data *Dataset
}

func NewJSONStore(path string) *JSONStore {
	return &JSONStore{
		path: path,
	}
}

func (s *JSONStore) Init() error {
	// Create the data directory if it doesn't exist
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	// Check if the dataset already exists
	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("dataset already initialized at %s", s.path)
	}

	s.data = &Dataset{Days: []models.DayRecord{}}
	return s.save()
}

func (s *JSONStore) Load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("dataset not initialized, run 'healthdash init' first")
		}
		return fmt.Errorf("failed to read dataset: %w", err)
	}

	s.data = &Dataset{}
	if err := json.Unmarshal(data, s.data); err != nil {
		return fmt.Errorf("failed to parse dataset: %w", err)
	}

	if s.data.Days == nil {
		s.data.Days = []models.DayRecord{}
	}

	return nil
}

func (s *JSONStore) Close() error {
	return nil
}

// save rewrites the dataset through a uniquely named temp file so a failed
// write never leaves a truncated dataset behind.
func (s *JSONStore) save() error {
	data, err := json.MarshalIndent(s.data, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize dataset: %w", err)
	}

	tmp := fmt.Sprintf("%s.tmp-%s", s.path, uuid.NewString())
	if err := os.WriteFile(tmp, data, 0600); err != nil {
		return fmt.Errorf("failed to write dataset: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to replace dataset: %w", err)
	}

	return nil
}

func (s *JSONStore) Days() ([]models.DayRecord, error) {
	if s.data == nil {
		return nil, fmt.Errorf("dataset not loaded")
	}

	days := make([]models.DayRecord, len(s.data.Days))
	copy(days, s.data.Days)
	return days, nil
}

func (s *JSONStore) HasDay(date string) (bool, error) {
	if s.data == nil {
		return false, fmt.Errorf("dataset not loaded")
	}

	for _, day := range s.data.Days {
		if day.Date == date {
			return true, nil
		}
	}
	return false, nil
}

func (s *JSONStore) AddDay(record models.DayRecord) error {
	if s.data == nil {
		return fmt.Errorf("dataset not loaded")
	}

	for _, day := range s.data.Days {
		if day.Date == record.Date {
			return fmt.Errorf("day already recorded: %s", record.Date)
		}
	}

	s.data.Days = append(s.data.Days, record)
	// ISO dates sort lexically, so a plain string sort keeps the invariant.
	sort.Slice(s.data.Days, func(i, j int) bool {
		return s.data.Days[i].Date < s.data.Days[j].Date
	})

	return s.save()
}

func (s *JSONStore) Path() string {
	return s.path
}
