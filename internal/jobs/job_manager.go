package jobs

import (
	"fmt"
	"log/slog"
)

type scheduledJob interface {
	Start() error
	Stop()
}

type namedJob struct {
	name string
	job  scheduledJob
}

// JobManager starts and stops the background jobs as one unit.
type JobManager struct {
	jobs []namedJob
}

func NewJobManager(
	refresher ActiveOrdersRefresher,
	refreshSchedule string,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		jobs: []namedJob{
			{name: "active orders refresh job", job: NewActiveOrdersRefreshJob(refresher, refreshSchedule, logger)},
		},
	}
}

// StartAll starts the jobs in order. When one fails, the ones already running are stopped.
func (jm *JobManager) StartAll() error {
	for i, j := range jm.jobs {
		if err := j.job.Start(); err != nil {
			for _, started := range jm.jobs[:i] {
				started.job.Stop()
			}
			return fmt.Errorf("failed to start %s: %w", j.name, err)
		}
	}
	return nil
}

// StopAll stops the jobs in reverse start order.
func (jm *JobManager) StopAll() {
	for i := len(jm.jobs) - 1; i >= 0; i-- {
		jm.jobs[i].job.Stop()
	}
}
