package bootstrap

import (
	"context"
	"fmt"
	"time"

	"github.com/osse101/CustomizeFishing_Go/internal/debuglog"
	"github.com/osse101/CustomizeFishing_Go/internal/domain"
	"github.com/osse101/CustomizeFishing_Go/internal/logger"
	"github.com/osse101/CustomizeFishing_Go/internal/metrics"
	"github.com/osse101/CustomizeFishing_Go/internal/scheduler"
	"github.com/osse101/CustomizeFishing_Go/internal/worker"
)

// UniqueStatsSource lists the claims and summarises one world
type UniqueStatsSource interface {
	All(ctx context.Context) ([]domain.UniqueItemRecord, error)
	Stats(ctx context.Context, world string, known int) (domain.WorldUniqueStats, error)
}

// UniqueSnapshotJob refreshes the per-world claimed gauge from the unique store
func UniqueSnapshotJob(source UniqueStatsSource, catalog interface{ UniqueIDs() []string }) worker.Job {
	return worker.JobFunc(func(ctx context.Context) error {
		stats, err := CollectUniqueStats(ctx, source, len(catalog.UniqueIDs()))
		if err != nil {
			return fmt.Errorf("%s: %w", ErrMsgFailedUniqueSnapshot, err)
		}
		metrics.SetClaimedUniques(stats)
		logger.FromContext(ctx).Debug(LogMsgUniqueSnapshot, "worlds", len(stats))
		return nil
	})
}

// CollectUniqueStats returns one summary per world that has at least one claim, in first-seen order
func CollectUniqueStats(ctx context.Context, source UniqueStatsSource, known int) ([]domain.WorldUniqueStats, error) {
	records, err := source.All(ctx)
	if err != nil {
		return nil, err
	}

	var (
		worlds []string
		seen   = make(map[string]bool)
	)
	for _, rec := range records {
		if !seen[rec.World] {
			seen[rec.World] = true
			worlds = append(worlds, rec.World)
		}
	}

	stats := make([]domain.WorldUniqueStats, 0, len(worlds))
	for _, w := range worlds {
		s, err := source.Stats(ctx, w, known)
		if err != nil {
			return nil, err
		}
		stats = append(stats, s)
	}
	return stats, nil
}

// ScheduleJobs registers the periodic maintenance jobs and runs the stats snapshot once right away
func ScheduleJobs(s *scheduler.Scheduler, trace *debuglog.Logger, retentionDays int, snapshot worker.Job) error {
	if trace != nil && retentionDays > 0 {
		retention := time.Duration(retentionDays) * 24 * time.Hour
		if _, err := s.Schedule(ScheduleDebugLogPrune, JobNameDebugLogPrune, trace.PruneJob(retention)); err != nil {
			return fmt.Errorf("%s: %w", ErrMsgFailedScheduleJob, err)
		}
	}

	if _, err := s.Schedule(ScheduleUniqueSnapshot, JobNameUniqueSnapshot, snapshot); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedScheduleJob, err)
	}
	s.RunNow(JobNameUniqueSnapshot, snapshot)

	return nil
}
