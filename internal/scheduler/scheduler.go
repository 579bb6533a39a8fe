package scheduler

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/robfig/cron/v3"

	"github.com/osse101/CustomizeFishing_Go/internal/logger"
	"github.com/osse101/CustomizeFishing_Go/internal/worker"
)

// Scheduler hands jobs to the worker pool on cron schedules.
// Schedule examples:
//   - "@every 1h"    - every hour from start
//   - "@daily"       - midnight local time
//   - "0 */5 * * *"  - every 5 minutes
type Scheduler struct {
	workerPool *worker.Pool
	cron       *cron.Cron
	log        *slog.Logger
}

// New creates a scheduler that enqueues into pool
func New(pool *worker.Pool) *Scheduler {
	return &Scheduler{
		workerPool: pool,
		cron:       cron.New(),
		log:        logger.FromContext(context.Background()).With("component", "scheduler"),
	}
}

// Schedule registers job under name. A run is skipped when the pool queue is full.
func (s *Scheduler) Schedule(spec, name string, job worker.Job) (cron.EntryID, error) {
	id, err := s.cron.AddFunc(spec, func() {
		if !s.workerPool.TryEnqueue(job) {
			s.log.Warn(LogMsgJobSkipped, "job", name)
			return
		}
		s.log.Debug(LogMsgJobEnqueued, "job", name)
	})
	if err != nil {
		return 0, fmt.Errorf("invalid schedule %q for %s: %w", spec, name, err)
	}
	s.log.Info(LogMsgJobRegistered, "job", name, "schedule", spec)
	return id, nil
}

// RunNow enqueues job immediately, outside its schedule
func (s *Scheduler) RunNow(name string, job worker.Job) {
	s.log.Info(LogMsgJobRunNow, "job", name)
	s.workerPool.Enqueue(job)
}

// Entries returns the number of registered jobs
func (s *Scheduler) Entries() int {
	return len(s.cron.Entries())
}

// Start starts the scheduler
func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop stops the scheduler and waits for running triggers to return
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
}
