// File: services/booking/confirm.go
package booking

import (
	"context"
	"fmt"
	"time"

	"tidyops/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// RequestQuote snapshots the session's current pricing into a persisted
// quote so the sales side can follow up even if the session expires.
func (s *DefaultSessionService) RequestQuote(sessionID string) (*models.Quote, error) {
	session, err := s.loadSession(sessionID)
	if err != nil {
		return nil, err
	}

	quote := &models.Quote{
		ID:        uuid.New().String(),
		CompanyID: session.CompanyID,
		Contact:   session.Draft.Contact,
		Service:   session.Draft.Service,
		Extras:    session.Draft.Extras,
		Frequency: session.Draft.Schedule.Frequency,
		Pricing:   session.Pricing,
		Status:    models.QuoteStatusOpen,
		CreatedAt: time.Now(),
	}
	if err := s.Quotes.Create(quote); err != nil {
		return nil, fmt.Errorf("failed to save quote: %w", err)
	}

	s.Logger.Info("quote requested",
		zap.String("quoteId", quote.ID),
		zap.String("companyId", quote.CompanyID),
		zap.Float64("total", quote.Pricing.Total),
	)
	return quote, nil
}

// ConfirmBooking validates the draft, resolves the client record, creates
// the job with its payment intent, schedules the reminder, and retires
// the session. Validation reports every missing field at once.
func (s *DefaultSessionService) ConfirmBooking(sessionID string) (*models.Job, error) {
	session, err := s.loadSession(sessionID)
	if err != nil {
		return nil, err
	}

	if result := validateDraft(session.Draft); !result.IsValid {
		return nil, &ValidationError{Missing: result.Errors}
	}

	client, err := s.resolveClient(session)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	job := &models.Job{
		ID:        uuid.New().String(),
		CompanyID: session.CompanyID,
		ClientID:  client.ID,
		Service:   session.Draft.Service,
		Extras:    session.Draft.Extras,
		Schedule:  session.Draft.Schedule,
		Address:   session.Draft.Address,
		Pricing: models.JobPricing{
			Breakdown:  session.Pricing,
			FinalPrice: session.Pricing.Total,
		},
		Payment:             models.PaymentInfo{Status: models.PaymentStatusPending},
		Status:              models.JobStatusPending,
		EstimatedDuration:   session.EstimatedDuration,
		ParkingInstructions: session.Draft.ParkingInstructions,
		SpecialInstructions: session.Draft.SpecialInstructions,
		CreatedAt:           now,
		UpdatedAt:           now,
	}

	if s.Payments != nil {
		intentID, err := s.Payments.CreateDepositIntent(job)
		if err != nil {
			return nil, fmt.Errorf("failed to set up payment: %w", err)
		}
		job.Payment.IntentID = intentID
	}

	if err := s.Jobs.Create(job); err != nil {
		return nil, fmt.Errorf("failed to save job: %w", err)
	}

	if s.Reminders != nil {
		if err := s.Reminders.ScheduleJobReminder(job); err != nil {
			s.Logger.Warn("failed to schedule job reminder",
				zap.String("jobId", job.ID), zap.Error(err))
		}
	}

	// Returning clients with a registered device get a confirmation push.
	if s.Notifier != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.Notifier.SendClientPush(ctx, client.ID,
			"Booking received",
			"We got your booking request. You'll hear from us once it's confirmed.",
			map[string]string{"type": "booking_received", "jobId": job.ID},
		); err != nil {
			s.Logger.Debug("booking confirmation push not delivered",
				zap.String("clientId", client.ID), zap.Error(err))
		}
	}

	// A confirmed booking retires its session. A stale session left
	// behind could double-book, so failure here is not ignored silently.
	if err := s.CancelSession(sessionID); err != nil {
		s.Logger.Warn("failed to clear confirmed session",
			zap.String("sessionId", sessionID), zap.Error(err))
	}

	s.Logger.Info("booking confirmed",
		zap.String("jobId", job.ID),
		zap.String("companyId", job.CompanyID),
		zap.String("clientId", job.ClientID),
		zap.Float64("finalPrice", job.Pricing.FinalPrice),
	)
	return job, nil
}

// resolveClient finds the company's client record by email or creates
// one from the draft's contact details.
func (s *DefaultSessionService) resolveClient(session *models.BookingSession) (*models.Client, error) {
	client, err := s.Clients.GetByEmail(session.CompanyID, session.Draft.Contact.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to look up client: %w", err)
	}
	if client != nil {
		return client, nil
	}

	now := time.Now()
	client = &models.Client{
		ID:        uuid.New().String(),
		CompanyID: session.CompanyID,
		Contact:   session.Draft.Contact,
		Address:   session.Draft.Address,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.Clients.Create(client); err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}
	return client, nil
}
