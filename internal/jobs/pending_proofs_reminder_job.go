package jobs

import (
	"context"
	"log/slog"
	"time"

	"cargo/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// PendingProofsReminder is satisfied by commands.RemindPendingProofsCommandHandler.
type PendingProofsReminder interface {
	Handle(ctx context.Context, command commands.RemindPendingProofsCommand) (int, error)
}

// PendingProofsReminderJob reminds dispatchers about proofs waiting longer
// than threshold.
type PendingProofsReminderJob struct {
	handler   PendingProofsReminder
	schedule  string
	threshold time.Duration
	now       func() time.Time
	cron      *cron.Cron
	logger    *slog.Logger
}

func NewPendingProofsReminderJob(
	handler PendingProofsReminder,
	schedule string,
	threshold time.Duration,
	logger *slog.Logger,
) *PendingProofsReminderJob {
	return &PendingProofsReminderJob{
		handler:   handler,
		schedule:  schedule,
		threshold: threshold,
		now:       time.Now,
		cron:      cron.New(),
		logger:    logger.With("component", "pending_proofs_reminder_job"),
	}
}

// Start registers the job on its schedule. Invalid schedules are reported
// before anything runs.
func (j *PendingProofsReminderJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		j.Run(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Pending proofs reminder started",
		"schedule", j.schedule,
		"threshold", j.threshold.String())
	return nil
}

// Run performs one reminder pass.
func (j *PendingProofsReminderJob) Run(ctx context.Context) {
	cmd, err := commands.NewRemindPendingProofsCommand(j.now(), j.threshold)
	if err != nil {
		j.logger.ErrorContext(ctx, "Pending proofs reminder misconfigured", "error", err)
		return
	}

	n, err := j.handler.Handle(ctx, cmd)
	if err != nil {
		j.logger.ErrorContext(ctx, "Pending proofs reminder failed", "error", err)
		return
	}
	if n > 0 {
		j.logger.InfoContext(ctx, "Reminded dispatchers about pending proofs", "count", n)
	}
}

// Stop waits for a running pass to finish.
func (j *PendingProofsReminderJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Pending proofs reminder stopped")
}
