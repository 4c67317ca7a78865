package scheduler

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/go-co-op/gocron"

	"github.com/kojofoli/temperature-toolkit/internal/importer"
	"github.com/kojofoli/temperature-toolkit/internal/store"
	"github.com/kojofoli/temperature-toolkit/internal/temperature"
)

// Scheduler periodically logs a digest of the stored records: per-day
// summaries, the hottest day, extreme days and the cross-day average.
// When an importer is configured it pulls a fresh reading first.
type Scheduler struct {
	scheduler        *gocron.Scheduler
	store            *store.MemoryStore
	importer         *importer.Importer // nil when imports are disabled
	logger           *slog.Logger
	interval         time.Duration
	extremeThreshold float64
}

// New creates a report Scheduler. im may be nil.
func New(st *store.MemoryStore, im *importer.Importer, logger *slog.Logger, interval time.Duration, extremeThreshold float64) *Scheduler {
	return &Scheduler{
		scheduler:        gocron.NewScheduler(time.UTC),
		store:            st,
		importer:         im,
		logger:           logger,
		interval:         interval,
		extremeThreshold: extremeThreshold,
	}
}

// Start schedules the periodic report job and starts the underlying scheduler.
func (s *Scheduler) Start() error {
	minutes := int(s.interval.Minutes())
	if minutes <= 0 {
		minutes = 15
	}

	_, err := s.scheduler.Every(minutes).Minutes().Do(s.runReport)
	if err != nil {
		return err
	}

	s.scheduler.StartAsync()
	return nil
}

// Stop stops the scheduler and cancels any future jobs.
func (s *Scheduler) Stop() {
	if s.scheduler != nil {
		s.scheduler.Stop()
	}
}

func (s *Scheduler) runReport() {
	if s.importer != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		reading, err := s.importer.Import(ctx)
		if err != nil {
			s.logger.Warn("scheduled import failed", "error", err)
		} else {
			s.logger.Info("imported reading", "date", reading.Date, "value", reading.Value, "scale", reading.Scale)
		}
	}

	records := s.store.List()
	if len(records) == 0 {
		s.logger.Info("report: no records stored yet")
		return
	}

	for _, r := range records {
		summary, err := r.Summary()
		if errors.Is(err, temperature.ErrNoData) {
			s.logger.Info("report: day has no readings", "date", r.Date)
			continue
		}
		if err != nil {
			s.logger.Warn("report: summary failed", "date", r.Date, "error", err)
			continue
		}
		s.logger.Info("report: day summary",
			"date", summary.Date, "scale", summary.Scale,
			"min", summary.Min, "max", summary.Max, "avg", summary.Avg)
	}

	if avg, err := temperature.AverageAcrossDays(records); err == nil {
		s.logger.Info("report: cross-day average", "avg", avg)
	}
	if hottest, err := temperature.HottestDay(records); err == nil {
		s.logger.Info("report: hottest day", "date", hottest)
	}
	if extremes := temperature.DetectExtremeDays(records, s.extremeThreshold); len(extremes) > 0 {
		s.logger.Info("report: extreme days", "threshold", s.extremeThreshold, "dates", extremes)
	}
}
