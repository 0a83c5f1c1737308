// File: services/analytics/service.go
package analytics

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	jobRepo "tidyops/database/repository/job"
	quoteRepo "tidyops/database/repository/quote"
	"tidyops/models"
	"tidyops/utils"

	"go.uber.org/zap"
)

// cacheTTL bounds staleness of dashboard reads between refreshes.
const cacheTTL = 5 * time.Minute

// Service serves company analytics, memoized in Redis.
type Service interface {
	Overview(companyID string, filter models.TimeFilter) (*models.AnalyticsMetrics, error)
	TimeSeries(companyID string, filter models.TimeFilter) ([]models.TimeSeriesPoint, error)
	Monthly(companyID string) ([]models.MonthlyMetrics, error)
	Revenue(companyID string, filter models.TimeFilter) (*models.RevenueBreakdown, error)
	RefreshCompany(companyID string) error
}

// DefaultService implements Service over the job and quote repositories
// with a Redis read-through cache per company, filter, and report kind.
type DefaultService struct {
	Jobs       jobRepo.Repository
	Quotes     quoteRepo.Repository
	Aggregator *Aggregator
	Logger     *zap.Logger
}

// NewDefaultService wires the analytics service.
func NewDefaultService(jobs jobRepo.Repository, quotes quoteRepo.Repository, payoutRate float64, logger *zap.Logger) *DefaultService {
	return &DefaultService{
		Jobs:       jobs,
		Quotes:     quotes,
		Aggregator: NewAggregator(payoutRate),
		Logger:     logger,
	}
}

func cacheKey(companyID, kind string, filter models.TimeFilter) string {
	return fmt.Sprintf("%s%s:%s:%s", utils.AnalyticsCachePrefix, companyID, kind, filter)
}

// Overview returns the summary metrics for one window.
func (s *DefaultService) Overview(companyID string, filter models.TimeFilter) (*models.AnalyticsMetrics, error) {
	var out models.AnalyticsMetrics
	err := s.cached(cacheKey(companyID, "overview", filter), &out, func(snap Snapshot) any {
		return s.Aggregator.Metrics(snap, filter)
	}, companyID)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// TimeSeries returns the gap-free chart points for one window.
func (s *DefaultService) TimeSeries(companyID string, filter models.TimeFilter) ([]models.TimeSeriesPoint, error) {
	var out []models.TimeSeriesPoint
	err := s.cached(cacheKey(companyID, "series", filter), &out, func(snap Snapshot) any {
		return s.Aggregator.TimeSeries(snap, filter)
	}, companyID)
	return out, err
}

// Monthly returns the full-history month-by-month rollup.
func (s *DefaultService) Monthly(companyID string) ([]models.MonthlyMetrics, error) {
	var out []models.MonthlyMetrics
	err := s.cached(cacheKey(companyID, "monthly", models.FilterAll), &out, func(snap Snapshot) any {
		return s.Aggregator.Monthly(snap)
	}, companyID)
	return out, err
}

// Revenue returns the paid/pending revenue split for one window.
func (s *DefaultService) Revenue(companyID string, filter models.TimeFilter) (*models.RevenueBreakdown, error) {
	var out models.RevenueBreakdown
	err := s.cached(cacheKey(companyID, "revenue", filter), &out, func(snap Snapshot) any {
		return s.Aggregator.Revenue(snap, filter)
	}, companyID)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// RefreshCompany recomputes and re-caches every report for a company.
// The periodic refresher calls this so dashboards stay warm.
func (s *DefaultService) RefreshCompany(companyID string) error {
	snap, err := s.snapshot(companyID)
	if err != nil {
		return err
	}

	filters := []models.TimeFilter{
		models.FilterDay, models.FilterWeek, models.FilterMonth,
		models.FilterQuarter, models.FilterYear, models.FilterAll,
	}
	for _, f := range filters {
		s.store(cacheKey(companyID, "overview", f), s.Aggregator.Metrics(snap, f))
		s.store(cacheKey(companyID, "series", f), s.Aggregator.TimeSeries(snap, f))
		s.store(cacheKey(companyID, "revenue", f), s.Aggregator.Revenue(snap, f))
	}
	s.store(cacheKey(companyID, "monthly", models.FilterAll), s.Aggregator.Monthly(snap))

	s.Logger.Debug("analytics refreshed", zap.String("companyId", companyID))
	return nil
}

// cached tries Redis first, then recomputes from a fresh snapshot and
// writes the result back. Cache failures degrade to recomputation.
func (s *DefaultService) cached(key string, out any, compute func(Snapshot) any, companyID string) error {
	ctx := context.Background()
	cacheClient := utils.GetAnalyticsCacheClient()

	if data, err := cacheClient.Get(ctx, key).Result(); err == nil {
		if err := json.Unmarshal([]byte(data), out); err == nil {
			return nil
		}
		s.Logger.Warn("discarding unreadable analytics cache entry", zap.String("key", key))
	}

	snap, err := s.snapshot(companyID)
	if err != nil {
		return err
	}
	value := compute(snap)
	s.store(key, value)

	// Round-trip through JSON to fill the caller's output value.
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode analytics result: %w", err)
	}
	return json.Unmarshal(data, out)
}

func (s *DefaultService) store(key string, value any) {
	ctx := context.Background()
	data, err := json.Marshal(value)
	if err != nil {
		s.Logger.Warn("failed to encode analytics cache entry", zap.String("key", key), zap.Error(err))
		return
	}
	if err := utils.GetAnalyticsCacheClient().Set(ctx, key, data, cacheTTL).Err(); err != nil {
		s.Logger.Warn("failed to cache analytics entry", zap.String("key", key), zap.Error(err))
	}
}

func (s *DefaultService) snapshot(companyID string) (Snapshot, error) {
	jobs, err := s.Jobs.GetByCompany(companyID)
	if err != nil {
		return Snapshot{}, fmt.Errorf("failed to load jobs for analytics: %w", err)
	}
	quotes, err := s.Quotes.GetByCompany(companyID)
	if err != nil {
		return Snapshot{}, fmt.Errorf("failed to load quotes for analytics: %w", err)
	}
	return Snapshot{Jobs: jobs, Quotes: quotes}, nil
}
