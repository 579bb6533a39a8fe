package debuglog

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/osse101/CustomizeFishing_Go/internal/logger"
	"github.com/osse101/CustomizeFishing_Go/internal/worker"
)

// Prune deletes daily files whose date is older than retention and returns how many were removed
func (l *Logger) Prune(ctx context.Context, retention time.Duration) (int, error) {
	if retention <= 0 {
		return 0, nil
	}

	entries, err := os.ReadDir(l.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, nil
		}
		return 0, err
	}

	cutoff := l.now().Add(-retention)
	log := logger.FromContext(ctx)
	removed := 0

	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, FileExtension) {
			continue
		}
		day, err := time.ParseInLocation(FileDateFormat, strings.TrimSuffix(name, FileExtension), l.now().Location())
		if err != nil {
			continue
		}
		// a file covers the whole day, so compare its end
		if day.AddDate(0, 0, 1).After(cutoff) {
			continue
		}
		if err := os.Remove(filepath.Join(l.dir, name)); err != nil {
			log.Warn(LogMsgPruneFailed, LogFieldPath, name, "error", err)
			continue
		}
		removed++
	}

	if removed > 0 {
		log.Info(LogMsgPruned, LogFieldRemoved, removed)
	}
	return removed, nil
}

// PruneJob returns a worker job that prunes with the given retention
func (l *Logger) PruneJob(retention time.Duration) worker.Job {
	return &pruneJob{logger: l, retention: retention}
}

type pruneJob struct {
	logger    *Logger
	retention time.Duration
}

func (j *pruneJob) Process(ctx context.Context) error {
	_, err := j.logger.Prune(ctx, j.retention)
	return err
}
