package jobs

import (
	"context"
	"log/slog"
	"time"

	"kandypack/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// TransitArrivalJob marks in-transit orders as delivered once their trip's
// arrival time has passed. Runs every minute.
type TransitArrivalJob struct {
	handler commands.AdvanceArrivedOrdersCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewTransitArrivalJob creates a new job for delivering arrived orders.
// Uses AdvanceArrivedOrdersCommandHandler to sweep arrived trips every minute.
func NewTransitArrivalJob(
	handler commands.AdvanceArrivedOrdersCommandHandler,
	logger *slog.Logger,
) *TransitArrivalJob {
	return &TransitArrivalJob{
		handler: handler,
		cron:    cron.New(),
		logger:  logger.With("component", "transit_arrival_job"),
	}
}

// Start begins the arrival sweep to run every minute.
func (j *TransitArrivalJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", func() {
		ctx := context.Background()

		cmd, cmdErr := commands.NewAdvanceArrivedOrdersCommand(time.Now().UTC())
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "Transit arrival job misconfigured", "error", cmdErr)
			return
		}

		delivered, handleErr := j.handler.Handle(ctx, cmd)
		if handleErr != nil {
			j.logger.ErrorContext(ctx, "Transit arrival job failed", "error", handleErr)
			return
		}

		if delivered > 0 {
			j.logger.InfoContext(ctx, "Orders delivered", "count", delivered)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Transit arrival job started (running every minute)")
	return nil
}

// Stop stops the arrival sweep.
func (j *TransitArrivalJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Transit arrival job stopped")
}
