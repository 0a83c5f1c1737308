// File: handlers/bundle.go
package handlers

import (
	adminRepo "tidyops/database/repository/admin"
	cleanerRepo "tidyops/database/repository/cleaner"
	clientRepo "tidyops/database/repository/client"
	jobRepo "tidyops/database/repository/job"
	quoteRepo "tidyops/database/repository/quote"
	"tidyops/services/admin"
	"tidyops/services/analytics"
	"tidyops/services/booking"
	"tidyops/services/cleaner"
	"tidyops/services/pricing"
	"tidyops/services/storage"

	"go.uber.org/zap"
)

// HandlerBundle groups every endpoint's dependencies into one struct so
// route registration has a single wiring point.
type HandlerBundle struct {
	Pricing    *pricing.Engine
	Sessions   booking.SessionService
	Analytics  analytics.Service
	Dispatch   *admin.Dispatcher
	AdminAuth  *admin.Service
	CleanerSvc *cleaner.Service
	Storage    storage.StorageService

	Jobs     jobRepo.Repository
	Quotes   quoteRepo.Repository
	Clients  clientRepo.Repository
	Cleaners cleanerRepo.Repository
	Admins   adminRepo.Repository

	Logger *zap.Logger
}
