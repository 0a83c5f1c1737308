// File: services/booking/session.go
package booking

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"tidyops/config"
	"tidyops/models"
	"tidyops/services/pricing"
	"tidyops/utils"

	"github.com/google/uuid"
)

func sessionTTL() time.Duration {
	return time.Duration(config.AppConfig.BookingSessionTTLMin) * time.Minute
}

// InitiateSession creates a new booking session with a default draft,
// assigns it a unique SessionID, and stores it in Redis.
func (s *DefaultSessionService) InitiateSession(companyID string) (*models.BookingSession, error) {
	session := &models.BookingSession{
		SessionID: uuid.New().String(),
		CompanyID: companyID,
		Draft:     NewBookingDraft(),
		CreatedAt: time.Now(),
	}
	s.reprice(session)

	if err := s.saveSession(session); err != nil {
		return nil, err
	}
	return session, nil
}

// GetSession retrieves a session from the cache.
func (s *DefaultSessionService) GetSession(sessionID string) (*models.BookingSession, error) {
	return s.loadSession(sessionID)
}

// UpdateContact shallow-merges a contact partial into the session draft.
func (s *DefaultSessionService) UpdateContact(sessionID string, u models.ContactUpdate) (*models.BookingSession, error) {
	return s.updateSession(sessionID, func(d *models.BookingDraft) { applyContact(d, u) })
}

// UpdateAddress shallow-merges an address partial into the session draft.
func (s *DefaultSessionService) UpdateAddress(sessionID string, u models.AddressUpdate) (*models.BookingSession, error) {
	return s.updateSession(sessionID, func(d *models.BookingDraft) { applyAddress(d, u) })
}

// UpdateService shallow-merges a service partial into the session draft.
func (s *DefaultSessionService) UpdateService(sessionID string, u models.ServiceUpdate) (*models.BookingSession, error) {
	return s.updateSession(sessionID, func(d *models.BookingDraft) { applyService(d, u) })
}

// UpdateExtras shallow-merges an extras partial into the session draft.
func (s *DefaultSessionService) UpdateExtras(sessionID string, u models.ExtrasUpdate) (*models.BookingSession, error) {
	return s.updateSession(sessionID, func(d *models.BookingDraft) { applyExtras(d, u) })
}

// UpdateSchedule shallow-merges a schedule partial into the session draft.
func (s *DefaultSessionService) UpdateSchedule(sessionID string, u models.ScheduleUpdate) (*models.BookingSession, error) {
	return s.updateSession(sessionID, func(d *models.BookingDraft) { applySchedule(d, u) })
}

// UpdateInstructions sets the optional free-text fields.
func (s *DefaultSessionService) UpdateInstructions(sessionID string, u models.InstructionsUpdate) (*models.BookingSession, error) {
	return s.updateSession(sessionID, func(d *models.BookingDraft) { applyInstructions(d, u) })
}

// ApplyPromoCode stores the code uppercase and marks it applied. An
// unknown code still sticks: it simply contributes no discount.
func (s *DefaultSessionService) ApplyPromoCode(sessionID, code string) (*models.BookingSession, error) {
	return s.updateSession(sessionID, func(d *models.BookingDraft) {
		d.PromoCode = strings.ToUpper(strings.TrimSpace(code))
		d.PromoApplied = true
	})
}

// CancelSession allows the client to explicitly abandon a booking
// session. It deletes the session data from the cache.
func (s *DefaultSessionService) CancelSession(sessionID string) error {
	ctx := context.Background()
	cacheClient := utils.GetSessionCacheClient()
	if err := cacheClient.Del(ctx, utils.SessionKeyPrefix+sessionID).Err(); err != nil {
		return fmt.Errorf("failed to cancel booking session: %w", err)
	}
	return nil
}

// updateSession loads a session, applies the mutation, reprices, and
// saves the result back with a refreshed TTL.
func (s *DefaultSessionService) updateSession(sessionID string, apply func(*models.BookingDraft)) (*models.BookingSession, error) {
	session, err := s.loadSession(sessionID)
	if err != nil {
		return nil, err
	}

	apply(&session.Draft)
	s.reprice(session)

	if err := s.saveSession(session); err != nil {
		return nil, err
	}
	return session, nil
}

func (s *DefaultSessionService) reprice(session *models.BookingSession) {
	// The draft is always non-nil here, so Quote cannot fail.
	session.Pricing, _ = s.Pricing.Quote(&session.Draft)
	session.EstimatedDuration = pricing.EstimateDuration(session.Draft.Service)
}

func (s *DefaultSessionService) loadSession(sessionID string) (*models.BookingSession, error) {
	ctx := context.Background()
	cacheClient := utils.GetSessionCacheClient()

	sessionData, err := cacheClient.Get(ctx, utils.SessionKeyPrefix+sessionID).Result()
	if err != nil {
		return nil, ErrSessionNotFound
	}
	var session models.BookingSession
	if err := json.Unmarshal([]byte(sessionData), &session); err != nil {
		return nil, fmt.Errorf("failed to parse booking session: %w", err)
	}
	return &session, nil
}

func (s *DefaultSessionService) saveSession(session *models.BookingSession) error {
	ctx := context.Background()
	cacheClient := utils.GetSessionCacheClient()

	sessionData, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal booking session: %w", err)
	}
	if err := cacheClient.Set(ctx, utils.SessionKeyPrefix+session.SessionID, sessionData, sessionTTL()).Err(); err != nil {
		return fmt.Errorf("failed to store booking session: %w", err)
	}
	return nil
}
