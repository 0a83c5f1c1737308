package notification

import (
	"context"
	"fmt"

	clientRepo "tidyops/database/repository/client"
	cleanerRepo "tidyops/database/repository/cleaner"
	"tidyops/models"
	"tidyops/utils"

	"firebase.google.com/go/v4/messaging"
	"go.uber.org/zap"
)

// Service defines methods for sending FCM pushes.
type Service interface {
	SendCleanerPush(ctx context.Context, cleanerID, title, body string, data map[string]string) error
	SendClientPush(ctx context.Context, clientID, title, body string, data map[string]string) error
	NotifyJobOffer(ctx context.Context, job *models.Job) error
	NotifyJobCompleted(ctx context.Context, job *models.Job) error
}

// DefaultService is the production implementation.
type DefaultService struct {
	Cleaners cleanerRepo.Repository
	Clients  clientRepo.Repository
	Logger   *zap.Logger
}

// NewDefaultService wires the FCM notification service.
func NewDefaultService(cleaners cleanerRepo.Repository, clients clientRepo.Repository, logger *zap.Logger) (*DefaultService, error) {
	if cleaners == nil || clients == nil {
		return nil, fmt.Errorf("notification service initialization error: repository is nil")
	}
	return &DefaultService{Cleaners: cleaners, Clients: clients, Logger: logger}, nil
}

// SendCleanerPush looks up a cleaner's FCM token and sends a push.
// Cleaners without a registered device are skipped silently.
func (s *DefaultService) SendCleanerPush(ctx context.Context, cleanerID, title, body string, data map[string]string) error {
	cleaner, err := s.Cleaners.GetByID(cleanerID)
	if err != nil {
		return fmt.Errorf("SendCleanerPush: could not find cleaner %s: %w", cleanerID, err)
	}
	if cleaner.FCMToken == "" {
		return nil
	}
	return s.send(ctx, cleaner.FCMToken, title, body, withRole(data, "cleaner"))
}

// SendClientPush looks up a client's FCM token and sends a push.
// Clients without a registered device are skipped silently.
func (s *DefaultService) SendClientPush(ctx context.Context, clientID, title, body string, data map[string]string) error {
	client, err := s.Clients.GetByID(clientID)
	if err != nil {
		return fmt.Errorf("SendClientPush: could not find client %s: %w", clientID, err)
	}
	if client.FCMToken == "" {
		return nil
	}
	return s.send(ctx, client.FCMToken, title, body, withRole(data, "client"))
}

// NotifyJobOffer tells the assigned cleaner a new job is waiting for
// acceptance.
func (s *DefaultService) NotifyJobOffer(ctx context.Context, job *models.Job) error {
	if job.CleanerID == "" {
		return nil
	}
	title := "New job offer"
	body := fmt.Sprintf("%s clean on %s at %s — %s, %s",
		job.Service.CleaningType,
		job.Schedule.Date.Format("Mon Jan 2"),
		job.Schedule.Time,
		job.Address.Street,
		job.Address.City,
	)
	return s.SendCleanerPush(ctx, job.CleanerID, title, body, map[string]string{
		"type":  "job_offer",
		"jobId": job.ID,
	})
}

// NotifyJobCompleted tells the client their cleaning is done.
func (s *DefaultService) NotifyJobCompleted(ctx context.Context, job *models.Job) error {
	title := "Your cleaning is complete"
	body := "Your cleaner has finished up. Thanks for booking with us!"
	return s.SendClientPush(ctx, job.ClientID, title, body, map[string]string{
		"type":  "job_completed",
		"jobId": job.ID,
	})
}

func (s *DefaultService) send(ctx context.Context, token, title, body string, data map[string]string) error {
	msg := &messaging.Message{
		Token: token,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
	}

	response, err := utils.FCMClient.Send(ctx, msg)
	if err != nil {
		return fmt.Errorf("failed to send FCM message: %w", err)
	}
	if s.Logger != nil {
		s.Logger.Debug("push sent", zap.String("response", response))
	}
	return nil
}

func withRole(data map[string]string, role string) map[string]string {
	if data == nil {
		data = map[string]string{}
	}
	if _, ok := data["role"]; !ok {
		data["role"] = role
	}
	return data
}
