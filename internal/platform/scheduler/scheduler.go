// Package scheduler runs background jobs on cron schedules.
package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
)

// Job is one unit of scheduled work.
type Job func(ctx context.Context) error

// Scheduler wraps a cron runner. Specs accept an optional leading seconds
// field and descriptors such as "@every 5m". A job still running when its
// next tick fires is skipped for that tick.
type Scheduler struct {
	cron *cron.Cron
	ctx  context.Context
}

// NewScheduler creates a Scheduler whose jobs receive ctx.
func NewScheduler(ctx context.Context) *Scheduler {
	parser := cron.NewParser(cron.SecondOptional | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor)
	return &Scheduler{
		cron: cron.New(
			cron.WithParser(parser),
			cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)),
		),
		ctx: ctx,
	}
}

// Register adds job under name.
func (s *Scheduler) Register(spec, name string, job Job) error {
	if _, err := s.cron.AddFunc(spec, func() { s.run(name, job) }); err != nil {
		return fmt.Errorf("register %s job: %w", name, err)
	}
	slog.Info("scheduled job registered", "job", name, "spec", spec)
	return nil
}

// Len is the number of registered jobs.
func (s *Scheduler) Len() int {
	return len(s.cron.Entries())
}

// Start starts the cron scheduler in the background.
func (s *Scheduler) Start() {
	s.cron.Start()
	slog.Info("scheduler started", "jobs", s.Len())
}

// Stop stops scheduling and waits for running jobs to finish or ctx to end.
func (s *Scheduler) Stop(ctx context.Context) {
	select {
	case <-s.cron.Stop().Done():
	case <-ctx.Done():
	}
	slog.Info("scheduler stopped")
}

func (s *Scheduler) run(name string, job Job) {
	start := time.Now()
	if err := job(s.ctx); err != nil {
		slog.Error("scheduled job failed", "job", name, "error", err, "elapsed", time.Since(start))
		return
	}
	slog.Debug("scheduled job finished", "job", name, "elapsed", time.Since(start))
}
