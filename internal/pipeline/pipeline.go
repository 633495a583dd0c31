// Package pipeline runs the daily update: parse the day's markdown log,
// merge in tracker metrics, persist the merged record, and republish the
// dashboard. One linear pass, no retries.
package pipeline

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/julianstephens/healthdash/internal/healthlog"
	"github.com/julianstephens/healthdash/internal/models"
	"github.com/julianstephens/healthdash/internal/publish"
	"github.com/julianstephens/healthdash/internal/storage"
)

// MetricsFetcher is the tracker collaborator. It never fails: on any
// internal error it returns the all-zero/absent placeholder.
type MetricsFetcher interface {
	FetchMetrics(ctx context.Context, date string) models.FitnessMetrics
}

type Pipeline struct {
	Store       storage.Provider
	Locator     *healthlog.Locator
	Metrics     MetricsFetcher
	Publisher   publish.Publisher
	Logger      *zap.Logger
	SkipPublish bool
}

// Run executes the pipeline for one date. added reports whether a new day
// record was persisted; expected-absence outcomes (no log for the date, date
// already recorded) return (false, nil). Storage and publish failures are
// fatal and propagate.
func (p *Pipeline) Run(ctx context.Context, date string) (added bool, err error) {
	p.Logger.Info("updating health dashboard", zap.String("date", date))

	if err := p.Store.Load(); err != nil {
		return false, fmt.Errorf("load dataset: %w", err)
	}

	exists, err := p.Store.HasDay(date)
	if err != nil {
		return false, fmt.Errorf("check existing day: %w", err)
	}
	if exists {
		p.Logger.Info("date already recorded, skipping", zap.String("date", date))
		return false, nil
	}

	content, ok, err := p.Locator.Read(date)
	if err != nil {
		return false, fmt.Errorf("locate log: %w", err)
	}
	if !ok {
		p.Logger.Info("no food log found, skipping", zap.String("date", date))
		return false, nil
	}

	meals, totals := healthlog.ParseFood(content)
	workouts := healthlog.ParseWorkouts(content)
	metrics := p.Metrics.FetchMetrics(ctx, date)

	record := models.NewDayRecord(date, totals, metrics, meals, workouts)
	if err := p.Store.AddDay(record); err != nil {
		return false, fmt.Errorf("persist day: %w", err)
	}
	p.Logger.Info("day recorded",
		zap.String("date", date),
		zap.Int("meals", len(meals)),
		zap.Int("workouts", len(workouts)),
		zap.Int("calories", totals.Calories))

	if p.SkipPublish {
		p.Logger.Info("publish skipped by configuration")
		return true, nil
	}

	p.Logger.Info("building dashboard")
	if err := p.Publisher.Build(ctx); err != nil {
		return true, fmt.Errorf("build dashboard: %w", err)
	}
	p.Logger.Info("deploying dashboard")
	if err := p.Publisher.Deploy(ctx); err != nil {
		// The data write already happened; the operator reconciles manually.
		return true, fmt.Errorf("deploy dashboard: %w", err)
	}

	p.Logger.Info("done", zap.String("date", date))
	return true, nil
}
