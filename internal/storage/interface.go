package storage

import "github.com/julianstephens/healthdash/internal/models"

// Provider is the persisted dataset: one DayRecord per calendar date,
// ascending by date. Implementations are not safe for concurrent use;
// a run owns the dataset exclusively.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Days
	Days() ([]models.DayRecord, error)
	HasDay(date string) (bool, error)
	AddDay(models.DayRecord) error

	// Utils
	Path() string
}
