// File: cron/worker.go
package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"tidyops/config"
	jobRepo "tidyops/database/repository/job"
	"tidyops/models"
	"tidyops/services/notification"
	"tidyops/services/tasks"

	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
)

// InitReminderWorker runs the async reminder worker in background.
func InitReminderWorker(notifSvc notification.Service, jobs jobRepo.Repository) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeJobReminder, handleJobReminder(notifSvc, jobs))

	// Start Redis health monitor
	go monitorRedisConnection()

	// Start async worker with retry logic
	go func() {
		log.Println("[ReminderWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[ReminderWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[ReminderWorker] max retry attempts reached, exiting")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second) // Exponential backoff
			} else {
				break
			}
		}
	}()
}

// handleJobReminder fires the pushes for one due reminder. The job is
// re-read at fire time: cancelled or reassigned jobs get no reminder.
func handleJobReminder(notifSvc notification.Service, jobs jobRepo.Repository) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p models.ReminderPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[ReminderHandler] invalid payload: %v", err)
			return err
		}

		job, err := jobs.GetByID(p.JobID)
		if err != nil {
			log.Printf("[ReminderHandler] job %s no longer exists, dropping reminder", p.JobID)
			return nil
		}
		switch job.Status {
		case models.JobStatusCancelled, models.JobStatusCompleted:
			return nil
		}

		data := map[string]string{
			"type":     "job_reminder",
			"jobId":    p.JobID,
			"fireDate": p.FireDate,
		}

		if job.CleanerID != "" {
			if err := notifSvc.SendCleanerPush(ctx, job.CleanerID, p.Title, p.Body, data); err != nil {
				log.Printf("[ReminderHandler] failed to remind cleaner %s: %v", job.CleanerID, err)
			}
		}
		if err := notifSvc.SendClientPush(ctx, job.ClientID, p.Title, p.Body, data); err != nil {
			log.Printf("[ReminderHandler] failed to remind client %s: %v", job.ClientID, err)
			return err
		}
		return nil
	}
}

// monitorRedisConnection pings Redis periodically to detect failures at runtime.
func monitorRedisConnection() {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	})

	ctx := context.Background()

	for {
		if err := client.Ping(ctx).Err(); err != nil {
			log.Printf("[ReminderWorker] redis connection lost: %v", err)
		}
		time.Sleep(10 * time.Second)
	}
}
