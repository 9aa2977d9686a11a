package jobs

import (
	"fmt"
	"log/slog"
	"time"

	"constructmart/internal/core/application/usecases/queries"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	staleItemsSweepJob *StaleItemsSweepJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	staleItemsHandler queries.GetStaleItemsQueryHandler,
	sweepSchedule string,
	staleAfter time.Duration,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		staleItemsSweepJob: NewStaleItemsSweepJob(staleItemsHandler, sweepSchedule, staleAfter, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.staleItemsSweepJob.Start(); err != nil {
		return fmt.Errorf("failed to start stale items sweep: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.staleItemsSweepJob.Stop()
}
