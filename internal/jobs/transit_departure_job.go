package jobs

import (
	"context"
	"log/slog"
	"time"

	"kandypack/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// TransitDepartureJob moves placed orders into transit once their trip's
// departure time has passed. Runs every minute.
type TransitDepartureJob struct {
	handler commands.AdvanceDepartedOrdersCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewTransitDepartureJob creates a new job for advancing departed orders.
// Uses AdvanceDepartedOrdersCommandHandler to sweep departed trips every minute.
func NewTransitDepartureJob(
	handler commands.AdvanceDepartedOrdersCommandHandler,
	logger *slog.Logger,
) *TransitDepartureJob {
	return &TransitDepartureJob{
		handler: handler,
		cron:    cron.New(),
		logger:  logger.With("component", "transit_departure_job"),
	}
}

// Start begins the departure sweep to run every minute.
func (j *TransitDepartureJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", func() {
		ctx := context.Background()

		cmd, cmdErr := commands.NewAdvanceDepartedOrdersCommand(time.Now().UTC())
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "Transit departure job misconfigured", "error", cmdErr)
			return
		}

		advanced, handleErr := j.handler.Handle(ctx, cmd)
		if handleErr != nil {
			j.logger.ErrorContext(ctx, "Transit departure job failed", "error", handleErr)
			return
		}

		if advanced > 0 {
			j.logger.InfoContext(ctx, "Orders moved into transit", "count", advanced)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Transit departure job started (running every minute)")
	return nil
}

// Stop stops the departure sweep.
func (j *TransitDepartureJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Transit departure job stopped")
}
