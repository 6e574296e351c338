package jobs

import (
	"context"
	"log/slog"

	"orderdesk/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// DefaultRefreshSchedule re-reads the active snapshot every 30 seconds.
const DefaultRefreshSchedule = "@every 30s"

type ActiveOrdersRefresher interface {
	Handle(ctx context.Context, cmd commands.RefreshActiveOrdersCommand) error
}

// ActiveOrdersRefreshJob periodically replaces the active-order cache with the store's
// contents, so changes made by other clients of the shared store become visible.
type ActiveOrdersRefreshJob struct {
	handler  ActiveOrdersRefresher
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewActiveOrdersRefreshJob accepts a six-field cron expression or a descriptor such as
// "@every 30s". An empty schedule falls back to DefaultRefreshSchedule.
func NewActiveOrdersRefreshJob(handler ActiveOrdersRefresher, schedule string, logger *slog.Logger) *ActiveOrdersRefreshJob {
	if schedule == "" {
		schedule = DefaultRefreshSchedule
	}
	return &ActiveOrdersRefreshJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds(), cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		logger:   logger.With("component", "active_orders_refresh_job"),
	}
}

// Start schedules the refresh. It returns an error when the schedule cannot be parsed.
func (j *ActiveOrdersRefreshJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() { j.Run(context.Background()) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Active orders refresh job started", "schedule", j.schedule)
	return nil
}

// Run performs one refresh. Failures are logged; the next tick tries again.
func (j *ActiveOrdersRefreshJob) Run(ctx context.Context) {
	cmd := commands.NewRefreshActiveOrdersCommand("scheduled")
	if err := j.handler.Handle(ctx, cmd); err != nil {
		j.logger.ErrorContext(ctx, "Active orders refresh job failed", "error", err)
	}
}

// Stop waits for a running refresh to finish.
func (j *ActiveOrdersRefreshJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Active orders refresh job stopped")
}
