// File: services/admin/dispatch.go
package admin

import (
	"context"
	"errors"
	"fmt"
	"time"

	cleanerRepo "tidyops/database/repository/cleaner"
	jobRepo "tidyops/database/repository/job"
	"tidyops/models"
	"tidyops/services/booking"
	"tidyops/services/notification"
	"tidyops/services/tasks"

	"go.uber.org/zap"
)

var (
	// ErrJobNotOwned hides other companies' jobs from a scoped admin.
	ErrJobNotOwned = errors.New("job not found for this company")
	// ErrCleanerUnavailable rejects assignment to a missing or inactive cleaner.
	ErrCleanerUnavailable = errors.New("cleaner is not available for assignment")
	// ErrInvalidTransition rejects lifecycle moves the job's current state
	// does not allow.
	ErrInvalidTransition = errors.New("job status does not allow this operation")
)

// Dispatcher runs the admin-side job lifecycle: approving bookings,
// offering them to cleaners, rescheduling, cancelling, and settling
// payment.
type Dispatcher struct {
	Jobs      jobRepo.Repository
	Cleaners  cleanerRepo.Repository
	Notifier  notification.Service
	Reminders *tasks.ReminderScheduler
	Payments  booking.PaymentService
	Logger    *zap.Logger
}

// NewDispatcher wires the job dispatcher.
func NewDispatcher(jobs jobRepo.Repository, cleaners cleanerRepo.Repository, notifier notification.Service, reminders *tasks.ReminderScheduler, payments booking.PaymentService, logger *zap.Logger) *Dispatcher {
	return &Dispatcher{
		Jobs:      jobs,
		Cleaners:  cleaners,
		Notifier:  notifier,
		Reminders: reminders,
		Payments:  payments,
		Logger:    logger,
	}
}

// ownedJob loads a job and checks it belongs to the admin's company.
func (d *Dispatcher) ownedJob(companyID, jobID string) (*models.Job, error) {
	job, err := d.Jobs.GetByID(jobID)
	if err != nil {
		return nil, ErrJobNotOwned
	}
	if job.CompanyID != companyID {
		return nil, ErrJobNotOwned
	}
	return job, nil
}

// ApproveJob accepts a pending booking.
func (d *Dispatcher) ApproveJob(companyID, jobID string) (*models.Job, error) {
	job, err := d.ownedJob(companyID, jobID)
	if err != nil {
		return nil, err
	}
	if job.Status != models.JobStatusPending && job.Status != models.JobStatusRescheduled {
		return nil, ErrInvalidTransition
	}
	if err := d.Jobs.UpdateStatus(jobID, models.JobStatusConfirmed); err != nil {
		return nil, err
	}
	job.Status = models.JobStatusConfirmed
	return job, nil
}

// AssignJob offers a confirmed job to a cleaner and pushes them the
// offer. A pending job is approved implicitly by assignment.
func (d *Dispatcher) AssignJob(ctx context.Context, companyID, jobID, cleanerID string) (*models.Job, error) {
	job, err := d.ownedJob(companyID, jobID)
	if err != nil {
		return nil, err
	}
	switch job.Status {
	case models.JobStatusPending, models.JobStatusConfirmed, models.JobStatusRescheduled:
	default:
		return nil, ErrInvalidTransition
	}

	cleaner, err := d.Cleaners.GetByID(cleanerID)
	if err != nil || cleaner.CompanyID != companyID || !cleaner.Active {
		return nil, ErrCleanerUnavailable
	}

	if err := d.Jobs.Assign(jobID, cleanerID); err != nil {
		return nil, err
	}
	if err := d.Jobs.UpdateStatus(jobID, models.JobStatusConfirmed); err != nil {
		return nil, err
	}
	job.CleanerID = cleanerID
	job.Status = models.JobStatusConfirmed

	if d.Notifier != nil {
		if err := d.Notifier.NotifyJobOffer(ctx, job); err != nil {
			d.Logger.Warn("failed to push job offer",
				zap.String("jobId", jobID), zap.String("cleanerId", cleanerID), zap.Error(err))
		}
	}
	return job, nil
}

// RescheduleJob moves a job to a new date and time and re-arms its
// reminder.
func (d *Dispatcher) RescheduleJob(companyID, jobID string, date time.Time, clock string) (*models.Job, error) {
	job, err := d.ownedJob(companyID, jobID)
	if err != nil {
		return nil, err
	}
	switch job.Status {
	case models.JobStatusCompleted, models.JobStatusCancelled:
		return nil, ErrInvalidTransition
	}

	job.Schedule.Date = date
	job.Schedule.Time = clock
	job.Status = models.JobStatusRescheduled
	if err := d.Jobs.Update(job); err != nil {
		return nil, err
	}

	if d.Reminders != nil {
		if err := d.Reminders.ScheduleJobReminder(job); err != nil {
			d.Logger.Warn("failed to re-arm job reminder",
				zap.String("jobId", jobID), zap.Error(err))
		}
	}
	return job, nil
}

// CancelJob cancels a job. A paid job is marked refunded so the books
// stay consistent with what the customer is owed.
func (d *Dispatcher) CancelJob(companyID, jobID string) (*models.Job, error) {
	job, err := d.ownedJob(companyID, jobID)
	if err != nil {
		return nil, err
	}
	if job.Status == models.JobStatusCompleted || job.Status == models.JobStatusCancelled {
		return nil, ErrInvalidTransition
	}

	if err := d.Jobs.UpdateStatus(jobID, models.JobStatusCancelled); err != nil {
		return nil, err
	}
	job.Status = models.JobStatusCancelled

	if d.Payments != nil {
		payment := job.Payment
		payment.Status = d.Payments.RefundStatus(job)
		if payment.Status != job.Payment.Status {
			if err := d.Jobs.UpdatePayment(jobID, payment); err != nil {
				return nil, fmt.Errorf("job cancelled but payment status not updated: %w", err)
			}
			job.Payment = payment
		}
	}

	d.Logger.Info("job cancelled",
		zap.String("jobId", jobID), zap.String("companyId", companyID))
	return job, nil
}

// MarkJobPaid records an out-of-band payment (cash, check, bank
// transfer) against a job.
func (d *Dispatcher) MarkJobPaid(companyID, jobID, method string) (*models.Job, error) {
	job, err := d.ownedJob(companyID, jobID)
	if err != nil {
		return nil, err
	}
	if job.Status == models.JobStatusCancelled {
		return nil, ErrInvalidTransition
	}
	if job.Payment.Status == models.PaymentStatusPaid {
		return job, nil
	}

	now := time.Now()
	payment := job.Payment
	payment.Status = models.PaymentStatusPaid
	payment.Method = method
	payment.PaidAt = &now
	if err := d.Jobs.UpdatePayment(jobID, payment); err != nil {
		return nil, err
	}
	job.Payment = payment
	return job, nil
}
