package jobs

import (
	"fmt"
	"log/slog"

	"kandypack/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	transitDepartureJob *TransitDepartureJob
	transitArrivalJob   *TransitArrivalJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes command handlers as dependencies to wire up the job execution.
func NewJobManager(
	advanceDepartedHandler commands.AdvanceDepartedOrdersCommandHandler,
	advanceArrivedHandler commands.AdvanceArrivedOrdersCommandHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		transitDepartureJob: NewTransitDepartureJob(advanceDepartedHandler, logger),
		transitArrivalJob:   NewTransitArrivalJob(advanceArrivedHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.transitDepartureJob.Start(); err != nil {
		return fmt.Errorf("failed to start transit departure job: %w", err)
	}

	if err := jm.transitArrivalJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.transitDepartureJob.Stop()
		return fmt.Errorf("failed to start transit arrival job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.transitDepartureJob.Stop()
	jm.transitArrivalJob.Stop()
}
