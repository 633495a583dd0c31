package fitbit

import (
	"context"

	"go.uber.org/zap"

	"github.com/julianstephens/healthdash/internal/models"
)

// Fetcher is the fallible metrics source Resilient wraps.
type Fetcher interface {
	Fetch(ctx context.Context, date string) (models.FitnessMetrics, error)
}

// Resilient converts fetch failures into an all-zero/absent placeholder so
// a tracker outage never blocks recording the day's log. Errors stop here;
// they are logged and swallowed.
type Resilient struct {
	Fetcher Fetcher
	Logger  *zap.Logger
}

func (r *Resilient) FetchMetrics(ctx context.Context, date string) models.FitnessMetrics {
	metrics, err := r.Fetcher.Fetch(ctx, date)
	if err != nil {
		r.Logger.Warn("fitbit fetch failed, recording placeholder metrics",
			zap.String("date", date),
			zap.Error(err))
		return models.FitnessMetrics{}
	}
	return metrics
}
