package tasks

import (
	"encoding/json"
	"fmt"
	"time"

	"tidyops/config"
	"tidyops/models"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// TypeJobReminder is the asynq task type for upcoming-job reminders.
const TypeJobReminder = "job:reminder"

// ReminderScheduler enqueues delayed reminder tasks for confirmed jobs.
type ReminderScheduler struct {
	client *asynq.Client
	lead   time.Duration
	logger *zap.Logger
}

// NewReminderScheduler builds a scheduler backed by the reminder queue's
// Redis DB.
func NewReminderScheduler(logger *zap.Logger) *ReminderScheduler {
	client := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	})
	return &ReminderScheduler{
		client: client,
		lead:   time.Duration(config.AppConfig.ReminderLeadMin) * time.Minute,
		logger: logger,
	}
}

// ScheduleJobReminder enqueues a reminder to fire ahead of the job's
// scheduled start. Jobs starting inside the lead window get no reminder.
func (s *ReminderScheduler) ScheduleJobReminder(job *models.Job) error {
	fireAt := job.ScheduledStart().Add(-s.lead)
	if !fireAt.After(time.Now()) {
		return nil
	}

	payload := models.ReminderPayload{
		JobID:     job.ID,
		CompanyID: job.CompanyID,
		Title:     "Upcoming cleaning",
		Body: fmt.Sprintf("A %s clean is scheduled for %s at %s.",
			job.Service.CleaningType, job.Schedule.Date.Format("Mon Jan 2"), job.Schedule.Time),
		FireDate: fireAt.Format(time.RFC3339),
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal reminder payload: %w", err)
	}

	task := asynq.NewTask(TypeJobReminder, data)
	if _, err := s.client.Enqueue(task, asynq.ProcessAt(fireAt)); err != nil {
		return fmt.Errorf("failed to enqueue job reminder: %w", err)
	}

	s.logger.Info("job reminder scheduled",
		zap.String("jobId", job.ID),
		zap.Time("fireAt", fireAt),
	)
	return nil
}

// Close releases the underlying asynq client.
func (s *ReminderScheduler) Close() error {
	return s.client.Close()
}
