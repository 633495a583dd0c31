package cli

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/julianstephens/healthdash/internal/healthlog"
	"github.com/julianstephens/healthdash/internal/pipeline"
	"github.com/julianstephens/healthdash/internal/publish"
	"github.com/julianstephens/healthdash/internal/storage"
)

// Context carries the collaborators commands run against. Parsing and
// aggregation never touch the network or subprocesses directly; they go
// through the injected Metrics and Publisher.
type Context struct {
	Store       storage.Provider
	Locator     *healthlog.Locator
	Metrics     pipeline.MetricsFetcher
	Publisher   publish.Publisher
	Logger      *zap.Logger
	FitbitToken string
}

// resolveDate validates a YYYY-MM-DD argument, defaulting to yesterday: the
// updater runs after midnight, recording the day that just ended.
func resolveDate(arg string) (string, error) {
	if arg == "" {
		return time.Now().AddDate(0, 0, -1).Format("2006-01-02"), nil
	}
	if _, err := time.Parse("2006-01-02", arg); err != nil {
		return "", fmt.Errorf("invalid date format, use YYYY-MM-DD: %w", err)
	}
	return arg, nil
}
