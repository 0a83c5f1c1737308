package booking

import (
	clientRepo "tidyops/database/repository/client"
	jobRepo "tidyops/database/repository/job"
	quoteRepo "tidyops/database/repository/quote"
	"tidyops/models"
	"tidyops/services/notification"
	"tidyops/services/pricing"
	"tidyops/services/tasks"

	"go.uber.org/zap"
)

// SessionService manages the stateful customer booking flow: a cached
// draft mutated by field-scoped updates, repriced on every change, and
// turned into persisted records on confirmation.
type SessionService interface {
	InitiateSession(companyID string) (*models.BookingSession, error)
	GetSession(sessionID string) (*models.BookingSession, error)

	UpdateContact(sessionID string, u models.ContactUpdate) (*models.BookingSession, error)
	UpdateAddress(sessionID string, u models.AddressUpdate) (*models.BookingSession, error)
	UpdateService(sessionID string, u models.ServiceUpdate) (*models.BookingSession, error)
	UpdateExtras(sessionID string, u models.ExtrasUpdate) (*models.BookingSession, error)
	UpdateSchedule(sessionID string, u models.ScheduleUpdate) (*models.BookingSession, error)
	UpdateInstructions(sessionID string, u models.InstructionsUpdate) (*models.BookingSession, error)
	ApplyPromoCode(sessionID, code string) (*models.BookingSession, error)

	RequestQuote(sessionID string) (*models.Quote, error)
	ConfirmBooking(sessionID string) (*models.Job, error)
	CancelSession(sessionID string) error
}

// DefaultSessionService implements SessionService.
type DefaultSessionService struct {
	Pricing   *pricing.Engine
	Jobs      jobRepo.Repository
	Quotes    quoteRepo.Repository
	Clients   clientRepo.Repository
	Payments  PaymentService
	Notifier  notification.Service
	Reminders *tasks.ReminderScheduler
	Logger    *zap.Logger
}
