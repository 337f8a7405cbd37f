package jobs

import (
	"fmt"
	"log/slog"
	"time"
)

// Settings carries the job schedules from configuration.
type Settings struct {
	ReminderSchedule  string
	ReminderThreshold time.Duration
}

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	reminderJob *PendingProofsReminderJob
}

// NewJobManager wires the jobs whose schedules are set.
func NewJobManager(
	remindHandler PendingProofsReminder,
	settings Settings,
	logger *slog.Logger,
) *JobManager {
	jm := &JobManager{}
	if settings.ReminderSchedule != "" {
		jm.reminderJob = NewPendingProofsReminderJob(remindHandler, settings.ReminderSchedule, settings.ReminderThreshold, logger)
	}
	return jm
}

// StartAll starts all configured jobs.
func (jm *JobManager) StartAll() error {
	if jm.reminderJob == nil {
		return nil
	}
	if err := jm.reminderJob.Start(); err != nil {
		return fmt.Errorf("failed to start pending proofs reminder: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	if jm.reminderJob != nil {
		jm.reminderJob.Stop()
	}
}
