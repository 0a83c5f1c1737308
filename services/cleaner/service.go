// File: services/cleaner/service.go
package cleaner

import (
	"context"
	"errors"
	"fmt"
	"time"

	cleanerRepo "tidyops/database/repository/cleaner"
	jobRepo "tidyops/database/repository/job"
	"tidyops/models"
	"tidyops/services/notification"
	"tidyops/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const tokenTTL = 72 * time.Hour

var (
	// ErrInvalidCredentials covers unknown emails and wrong passwords alike.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrAccountInactive blocks sign-in for deactivated cleaners.
	ErrAccountInactive = errors.New("this account has been deactivated")
	// ErrEmailTaken marks a registration against an existing email.
	ErrEmailTaken = errors.New("a cleaner with this email already exists")
	// ErrNotAssigned rejects operations on jobs not offered to the caller.
	ErrNotAssigned = errors.New("job is not assigned to this cleaner")
	// ErrInvalidTransition rejects lifecycle moves the job's current state
	// does not allow.
	ErrInvalidTransition = errors.New("job status does not allow this operation")
)

// Service covers the cleaner-facing side of the platform: accounts,
// the offer/accept flow, and day-of-job execution.
type Service struct {
	Cleaners cleanerRepo.Repository
	Jobs     jobRepo.Repository
	Notifier notification.Service
	Logger   *zap.Logger
}

// NewService wires the cleaner service.
func NewService(cleaners cleanerRepo.Repository, jobs jobRepo.Repository, notifier notification.Service, logger *zap.Logger) *Service {
	return &Service{Cleaners: cleaners, Jobs: jobs, Notifier: notifier, Logger: logger}
}

// Register creates a cleaner account under a company. Admins call this
// when onboarding staff; the cleaner signs in separately.
func (s *Service) Register(companyID, firstName, lastName, email, phone, password string) (*models.Cleaner, error) {
	existing, err := s.Cleaners.GetByEmail(email)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing cleaner: %w", err)
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	cleaner := &models.Cleaner{
		ID:           uuid.New().String(),
		CompanyID:    companyID,
		FirstName:    firstName,
		LastName:     lastName,
		Email:        email,
		Phone:        phone,
		PasswordHash: string(hash),
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.Cleaners.Create(cleaner); err != nil {
		return nil, fmt.Errorf("failed to create cleaner: %w", err)
	}

	s.Logger.Info("cleaner registered",
		zap.String("cleanerId", cleaner.ID),
		zap.String("companyId", companyID),
	)
	return cleaner, nil
}

// SignIn verifies credentials and issues a fresh token.
func (s *Service) SignIn(email, password string) (*models.Cleaner, string, error) {
	cleaner, err := s.Cleaners.GetByEmail(email)
	if err != nil {
		return nil, "", fmt.Errorf("failed to look up cleaner: %w", err)
	}
	if cleaner == nil {
		return nil, "", ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(cleaner.PasswordHash), []byte(password)) != nil {
		return nil, "", ErrInvalidCredentials
	}
	if !cleaner.Active {
		return nil, "", ErrAccountInactive
	}

	s.dropCachedAuth(cleaner.TokenHash)

	token, err := utils.GenerateToken(cleaner.ID, cleaner.Email, "cleaner", tokenTTL)
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate token: %w", err)
	}
	if err := s.Cleaners.SetTokenHash(cleaner.ID, utils.HashToken(token)); err != nil {
		return nil, "", fmt.Errorf("failed to store token: %w", err)
	}
	return cleaner, token, nil
}

// SignOut revokes the cleaner's current token.
func (s *Service) SignOut(cleanerID string) error {
	cleaner, err := s.Cleaners.GetByID(cleanerID)
	if err != nil {
		return fmt.Errorf("failed to look up cleaner: %w", err)
	}
	s.dropCachedAuth(cleaner.TokenHash)
	if err := s.Cleaners.SetTokenHash(cleanerID, ""); err != nil {
		return fmt.Errorf("failed to revoke token: %w", err)
	}
	return nil
}

// RegisterDevice stores the cleaner's FCM device token for pushes.
func (s *Service) RegisterDevice(cleanerID, fcmToken string) error {
	return s.Cleaners.SetFCMToken(cleanerID, fcmToken)
}

func (s *Service) dropCachedAuth(tokenHash string) {
	if tokenHash == "" {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := utils.GetAuthCacheClient().Del(ctx, utils.AuthCachePrefix+tokenHash).Err(); err != nil {
		s.Logger.Warn("failed to drop cached auth entry", zap.Error(err))
	}
}

// OfferedJobs lists jobs waiting for this cleaner's acceptance.
func (s *Service) OfferedJobs(cleanerID string) ([]models.Job, error) {
	return s.Jobs.GetByCleaner(cleanerID, []models.JobStatus{models.JobStatusConfirmed})
}

// ScheduleJobs lists the cleaner's accepted upcoming and in-progress work.
func (s *Service) ScheduleJobs(cleanerID string) ([]models.Job, error) {
	return s.Jobs.GetByCleaner(cleanerID, []models.JobStatus{
		models.JobStatusAssigned, models.JobStatusInProgress,
	})
}

// CompletedJobs lists the cleaner's finished work.
func (s *Service) CompletedJobs(cleanerID string) ([]models.Job, error) {
	return s.Jobs.GetByCleaner(cleanerID, []models.JobStatus{models.JobStatusCompleted})
}

// assignedJob loads a job and checks it is offered or assigned to the
// caller.
func (s *Service) assignedJob(cleanerID, jobID string) (*models.Job, error) {
	job, err := s.Jobs.GetByID(jobID)
	if err != nil {
		return nil, fmt.Errorf("failed to load job: %w", err)
	}
	if job.CleanerID != cleanerID {
		return nil, ErrNotAssigned
	}
	return job, nil
}

// AcceptJob locks in an offered job.
func (s *Service) AcceptJob(cleanerID, jobID string) (*models.Job, error) {
	job, err := s.assignedJob(cleanerID, jobID)
	if err != nil {
		return nil, err
	}
	if job.Status != models.JobStatusConfirmed {
		return nil, ErrInvalidTransition
	}
	if err := s.Jobs.UpdateStatus(jobID, models.JobStatusAssigned); err != nil {
		return nil, err
	}
	job.Status = models.JobStatusAssigned
	return job, nil
}

// DeclineJob releases an offered job back to the dispatch pool.
func (s *Service) DeclineJob(cleanerID, jobID string) error {
	job, err := s.assignedJob(cleanerID, jobID)
	if err != nil {
		return err
	}
	if job.Status != models.JobStatusConfirmed {
		return ErrInvalidTransition
	}
	if err := s.Jobs.Assign(jobID, ""); err != nil {
		return err
	}
	return s.Jobs.UpdateStatus(jobID, models.JobStatusPending)
}

// StartJob marks an accepted job as underway.
func (s *Service) StartJob(cleanerID, jobID string) (*models.Job, error) {
	job, err := s.assignedJob(cleanerID, jobID)
	if err != nil {
		return nil, err
	}
	if job.Status != models.JobStatusAssigned {
		return nil, ErrInvalidTransition
	}
	if err := s.Jobs.UpdateStatus(jobID, models.JobStatusInProgress); err != nil {
		return nil, err
	}
	job.Status = models.JobStatusInProgress
	return job, nil
}

// CompleteJob finishes an in-progress job, records the cleaner's notes,
// and notifies the client.
func (s *Service) CompleteJob(ctx context.Context, cleanerID, jobID, notes string) (*models.Job, error) {
	job, err := s.assignedJob(cleanerID, jobID)
	if err != nil {
		return nil, err
	}
	if job.Status != models.JobStatusInProgress {
		return nil, ErrInvalidTransition
	}

	if notes != "" {
		job.CleanerNotes = notes
		if err := s.Jobs.Update(job); err != nil {
			return nil, err
		}
	}
	if err := s.Jobs.UpdateStatus(jobID, models.JobStatusCompleted); err != nil {
		return nil, err
	}
	job.Status = models.JobStatusCompleted

	if s.Notifier != nil {
		if err := s.Notifier.NotifyJobCompleted(ctx, job); err != nil {
			s.Logger.Warn("failed to notify client of completion",
				zap.String("jobId", jobID), zap.Error(err))
		}
	}
	return job, nil
}

// AttachPhotos appends uploaded photo IDs to the job's before or after
// set. Phase must be "before" or "after".
func (s *Service) AttachPhotos(cleanerID, jobID, phase string, publicIDs []string) error {
	if _, err := s.assignedJob(cleanerID, jobID); err != nil {
		return err
	}

	var field string
	switch phase {
	case "before":
		field = "beforePhotos"
	case "after":
		field = "afterPhotos"
	default:
		return fmt.Errorf("unknown photo phase %q", phase)
	}
	return s.Jobs.AppendPhotos(jobID, field, publicIDs)
}
