// Package scheduler wires up the cron jobs that keep stored state honest:
// featured placements expire, lapsed subscriptions demote accounts, and
// comments on deleted items are swept away.
package scheduler

import (
	"context"
	"fmt"

	"github.com/robfig/cron/v3"

	"familymarket/pkg/logger"
)

// SweepFunc is one periodic maintenance task.
type SweepFunc func(ctx context.Context) error

type job struct {
	name     string
	interval int // minutes
	fn       SweepFunc
}

// Scheduler wraps robfig/cron and manages the maintenance sweeps.
type Scheduler struct {
	cron *cron.Cron
	jobs []job
}

func New() *Scheduler {
	return &Scheduler{
		cron: cron.New(cron.WithLogger(cron.DefaultLogger)),
	}
}

// Register adds a named sweep firing every intervalMinutes minutes.
func (s *Scheduler) Register(name string, intervalMinutes int, fn SweepFunc) {
	s.jobs = append(s.jobs, job{name: name, interval: intervalMinutes, fn: fn})
}

// Start registers every job and starts the scheduler. Each sweep also runs
// once immediately so stale state does not linger until the first tick.
func (s *Scheduler) Start(ctx context.Context) error {
	for _, j := range s.jobs {
		j := j
		spec := fmt.Sprintf("@every %dm", j.interval)
		_, err := s.cron.AddFunc(spec, func() {
			s.run(ctx, j)
		})
		if err != nil {
			return fmt.Errorf("cron.AddFunc(%s): %w", j.name, err)
		}

		go s.run(ctx, j)
	}

	s.cron.Start()
	logger.Info("Scheduler started with %d sweep(s)", len(s.jobs))

	return nil
}

// Stop gracefully shuts down the scheduler.
func (s *Scheduler) Stop() {
	s.cron.Stop()
	logger.Info("Scheduler stopped")
}

func (s *Scheduler) run(ctx context.Context, j job) {
	if err := j.fn(ctx); err != nil {
		logger.Error("Sweep %s failed: %v", j.name, err)
	}
}
