package eventlog

import (
	"context"
	"time"

	"github.com/osse101/ClanWarsBot_Go/internal/logger"
)

// CleanupJob trims old audit entries. It satisfies the worker pool's
// Job contract so callers can enqueue it alongside display refreshes.
type CleanupJob struct {
	service       Service
	retentionDays int
}

// NewCleanupJob creates a new cleanup job
func NewCleanupJob(service Service, retentionDays int) *CleanupJob {
	return &CleanupJob{
		service:       service,
		retentionDays: retentionDays,
	}
}

// Process executes the cleanup job
func (j *CleanupJob) Process(ctx context.Context) error {
	log := logger.FromContext(ctx)
	log.Info(logMsgCleanupJobStarting, "retentionDays", j.retentionDays)

	start := time.Now()
	count, err := j.service.CleanupOldEvents(ctx, j.retentionDays)
	duration := time.Since(start)

	if err != nil {
		log.Error(logMsgCleanupJobFailed, "error", err, "duration", duration)
		return err
	}

	log.Info(logMsgCleanupJobCompleted, "deletedCount", count, "duration", duration)
	return nil
}
