// File: cron/refresher.go
package cron

import (
	adminRepo "tidyops/database/repository/admin"
	"tidyops/services/analytics"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// AnalyticsRefresher recomputes every company's cached dashboard
// metrics on a schedule so first paints after the cache TTL stay fast.
type AnalyticsRefresher struct {
	cron      *cron.Cron
	analytics analytics.Service
	admins    adminRepo.Repository
	logger    *zap.Logger
}

// NewAnalyticsRefresher creates a refresher instance.
func NewAnalyticsRefresher(analyticsSvc analytics.Service, admins adminRepo.Repository, logger *zap.Logger) *AnalyticsRefresher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AnalyticsRefresher{
		cron:      cron.New(),
		analytics: analyticsSvc,
		admins:    admins,
		logger:    logger,
	}
}

// Start schedules the periodic refresh.
func (r *AnalyticsRefresher) Start() {
	r.logger.Info("starting analytics refresher")

	// Every 5 minutes, just inside the cache TTL.
	if _, err := r.cron.AddFunc("*/5 * * * *", r.refreshAll); err != nil {
		r.logger.Error("failed to schedule analytics refresh", zap.Error(err))
	}

	r.cron.Start()
}

// Stop stops the refresher.
func (r *AnalyticsRefresher) Stop() {
	r.logger.Info("stopping analytics refresher")
	r.cron.Stop()
}

func (r *AnalyticsRefresher) refreshAll() {
	companyIDs, err := r.admins.CompanyIDs()
	if err != nil {
		r.logger.Error("failed to list companies for analytics refresh", zap.Error(err))
		return
	}

	for _, companyID := range companyIDs {
		if err := r.analytics.RefreshCompany(companyID); err != nil {
			r.logger.Error("failed to refresh company analytics",
				zap.String("companyId", companyID), zap.Error(err))
		}
	}
}
