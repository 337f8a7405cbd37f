// Package jobs provides scheduled background tasks for the dispatch service.
//
// Jobs are cron-driven (github.com/robfig/cron/v3) and call the same command
// handlers the HTTP adapter uses.
//
// # Available Jobs
//
// PendingProofsReminderJob counts top-up proofs that have waited for review
// longer than a threshold and reminds every dispatcher about them.
//
// # Usage
//
//	jobManager := jobs.NewJobManager(remindHandler, jobs.Settings{
//		ReminderSchedule:  "*/30 * * * *",
//		ReminderThreshold: time.Hour,
//	}, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Scheduling
//
// Schedules use the standard five-field cron syntax and the descriptors
// cron understands ("@every 30m", "@hourly"). An empty schedule disables
// the job.
package jobs
