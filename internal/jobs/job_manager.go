package jobs

import (
	"fmt"
	"log/slog"
	"time"

	"fishmarket/internal/core/application/usecases/queries"
)

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	staleOrderJob *StaleOrderJob
}

// NewJobManager creates a job manager with all required jobs.
func NewJobManager(
	getAllOrdersHandler queries.GetAllOrdersQueryHandler,
	staleOrderThreshold time.Duration,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		staleOrderJob: NewStaleOrderJob(getAllOrdersHandler, staleOrderThreshold, logger),
	}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.staleOrderJob.Start(); err != nil {
		return fmt.Errorf("failed to start stale order job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.staleOrderJob.Stop()
}
