package cron

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// Job is one periodic task. Runs of the same job never overlap: each job owns
// a single goroutine that ticks, runs, then waits for the next tick.
type Job struct {
	Name     string
	Interval time.Duration
	Fn       func(ctx context.Context) error
}

// Scheduler runs registered jobs on fixed intervals until stopped.
type Scheduler struct {
	mu     sync.Mutex
	jobs   []Job
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewScheduler() *Scheduler {
	ctx, cancel := context.WithCancel(context.Background())
	return &Scheduler{ctx: ctx, cancel: cancel}
}

// AddJob registers a job. Must be called before Start. Jobs with a
// non-positive interval are rejected.
func (s *Scheduler) AddJob(name string, interval time.Duration, fn func(ctx context.Context) error) {
	if interval <= 0 {
		slog.Warn("Cron job rejected, interval must be positive", "name", name, "interval", interval)
		return
	}

	s.mu.Lock()
	s.jobs = append(s.jobs, Job{Name: name, Interval: interval, Fn: fn})
	s.mu.Unlock()

	slog.Info("Cron job registered", "name", name, "interval", interval)
}

// Start launches one goroutine per job. Each job also runs once immediately.
func (s *Scheduler) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, job := range s.jobs {
		s.wg.Add(1)
		go s.loop(job)
	}

	slog.Info("Cron scheduler started", "job_count", len(s.jobs))
}

// Stop cancels all jobs and waits for in-flight runs to finish.
func (s *Scheduler) Stop() {
	slog.Info("Stopping cron scheduler...")
	s.cancel()
	s.wg.Wait()
	slog.Info("Cron scheduler stopped")
}

func (s *Scheduler) loop(job Job) {
	defer s.wg.Done()

	logger := slog.With("name", job.Name)

	ticker := time.NewTicker(job.Interval)
	defer ticker.Stop()

	s.run(job, logger)

	for {
		select {
		case <-s.ctx.Done():
			logger.Info("Cron job stopping")
			return
		case <-ticker.C:
			s.run(job, logger)
		}
	}
}

func (s *Scheduler) run(job Job, logger *slog.Logger) {
	start := time.Now()

	if err := job.Fn(s.ctx); err != nil {
		logger.Error("Cron job failed", "error", err, "duration", time.Since(start))
		return
	}
	logger.Debug("Cron job completed", "duration", time.Since(start))
}
