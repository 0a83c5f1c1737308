// File: services/analytics/aggregator.go
package analytics

import (
	"math"
	"time"

	"tidyops/models"
)

// Snapshot is the raw material for one company's analytics: every job
// and quote the company has on record. Filtering happens here, not in
// the database, so one fetch serves every window.
type Snapshot struct {
	Jobs   []models.Job
	Quotes []models.Quote
}

// Aggregator computes dashboard metrics from a snapshot. It is pure:
// the clock is injected so windows are deterministic under test.
type Aggregator struct {
	payoutRate float64
	now        func() time.Time
}

// NewAggregator builds an aggregator with the company's payout split.
func NewAggregator(payoutRate float64) *Aggregator {
	return &Aggregator{payoutRate: payoutRate, now: time.Now}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// earnsRevenue reports whether a job's price counts as revenue: the
// money is either collected or the work is done and owed.
func earnsRevenue(j *models.Job) bool {
	return j.Payment.Status == models.PaymentStatusPaid || j.Status == models.JobStatusCompleted
}

// approved means a cleaner has taken the job: accepted, underway, or
// finished.
func isApproved(j *models.Job) bool {
	switch j.Status {
	case models.JobStatusAssigned, models.JobStatusInProgress, models.JobStatusCompleted:
		return true
	}
	return false
}

// booked means the appointment is on a cleaner's calendar right now.
func isBooked(j *models.Job) bool {
	return j.Status == models.JobStatusAssigned || j.Status == models.JobStatusInProgress
}

// outstanding means money is still expected: the job is moving through
// the pipeline and has not been collected or closed out.
func isOutstanding(j *models.Job) bool {
	switch j.Status {
	case models.JobStatusPending, models.JobStatusAssigned, models.JobStatusInProgress:
		return true
	}
	return false
}

// Metrics computes the summary card values for one time window.
func (a *Aggregator) Metrics(snap Snapshot, filter models.TimeFilter) models.AnalyticsMetrics {
	start, _ := a.window(filter)

	var m models.AnalyticsMetrics

	for i := range snap.Jobs {
		j := &snap.Jobs[i]
		if !inWindow(j.CreatedAt, start) {
			continue
		}
		m.TotalJobs++

		if earnsRevenue(j) {
			m.TotalRevenue += j.Pricing.FinalPrice
		}
		if isApproved(j) {
			m.ApprovedJobs++
		}
		if isBooked(j) {
			m.AppointmentsBooked++
		}
		if j.Status == models.JobStatusPending {
			m.PendingJobs++
		}
		if j.Status == models.JobStatusCompleted {
			m.CompletedJobs++
		}
		if j.Payment.Status == models.PaymentStatusPaid {
			m.PaidJobs++
		}
	}

	for i := range snap.Quotes {
		if inWindow(snap.Quotes[i].CreatedAt, start) {
			m.TotalQuotes++
		}
	}

	if m.PaidJobs > 0 {
		m.AverageJobValue = round2(m.TotalRevenue / float64(m.PaidJobs))
	}
	if m.TotalQuotes > 0 {
		m.ConversionRate = round2(float64(m.ApprovedJobs) / float64(m.TotalQuotes) * 100)
	}

	m.TotalRevenue = round2(m.TotalRevenue)
	m.TotalPaidToCleaners = round2(m.TotalRevenue * a.payoutRate)
	m.TotalProfit = round2(m.TotalRevenue - m.TotalRevenue*a.payoutRate)
	return m
}

// TimeSeries buckets activity over the window into contiguous chart
// points. Buckets with no activity still appear, zero-valued.
func (a *Aggregator) TimeSeries(snap Snapshot, filter models.TimeFilter) []models.TimeSeriesPoint {
	start, unit := a.window(filter)
	if filter == models.FilterAll {
		start = a.earliest(snap)
	}

	points := a.emptyBuckets(start, unit)
	index := make(map[time.Time]int, len(points))
	for i := range points {
		index[points[i].Bucket] = i
	}

	for i := range snap.Jobs {
		j := &snap.Jobs[i]
		if !inWindow(j.CreatedAt, start) {
			continue
		}
		if p, ok := index[truncate(j.CreatedAt, unit)]; ok {
			points[p].Jobs++
			if earnsRevenue(j) {
				points[p].Revenue = round2(points[p].Revenue + j.Pricing.FinalPrice)
			}
			if isApproved(j) {
				points[p].Approved++
			}
			if j.Status == models.JobStatusCompleted {
				points[p].Completed++
			}
		}
	}
	for i := range snap.Quotes {
		q := &snap.Quotes[i]
		if !inWindow(q.CreatedAt, start) {
			continue
		}
		if p, ok := index[truncate(q.CreatedAt, unit)]; ok {
			points[p].Quotes++
		}
	}
	return points
}

// Monthly rolls the company's full history into calendar-month rows,
// newest first.
func (a *Aggregator) Monthly(snap Snapshot) []models.MonthlyMetrics {
	start := truncate(a.earliest(snap), unitMonth)
	buckets := a.emptyBuckets(start, unitMonth)

	index := make(map[time.Time]int, len(buckets))
	for i := range buckets {
		index[buckets[i].Bucket] = i
	}

	rows := make([]models.MonthlyMetrics, len(buckets))
	for i := range buckets {
		rows[i].Month = buckets[i].Label
	}

	for i := range snap.Jobs {
		j := &snap.Jobs[i]
		p, ok := index[truncate(j.CreatedAt, unitMonth)]
		if !ok {
			continue
		}
		rows[p].Jobs++
		if earnsRevenue(j) {
			rows[p].Revenue = round2(rows[p].Revenue + j.Pricing.FinalPrice)
		}
		if isApproved(j) {
			rows[p].Approved++
		}
		if j.Status == models.JobStatusCompleted {
			rows[p].Completed++
		}
		if j.Payment.Status == models.PaymentStatusPaid {
			rows[p].PaidCount++
		}
	}
	for i := range snap.Quotes {
		if p, ok := index[truncate(snap.Quotes[i].CreatedAt, unitMonth)]; ok {
			rows[p].Quotes++
		}
	}

	// Newest month first for the dashboard table.
	for l, r := 0, len(rows)-1; l < r; l, r = l+1, r-1 {
		rows[l], rows[r] = rows[r], rows[l]
	}
	return rows
}

// Revenue splits window revenue into collected and outstanding parts.
// The cleaner payout is derived from collected revenue only.
func (a *Aggregator) Revenue(snap Snapshot, filter models.TimeFilter) models.RevenueBreakdown {
	start, _ := a.window(filter)

	var b models.RevenueBreakdown
	var sum float64
	var count int
	for i := range snap.Jobs {
		j := &snap.Jobs[i]
		if !inWindow(j.CreatedAt, start) {
			continue
		}

		// Collected money counts as paid even before the job closes out;
		// only jobs still moving through the pipeline are outstanding.
		// Cancelled and unaccepted work sits in neither bucket.
		price := j.Pricing.FinalPrice
		if earnsRevenue(j) {
			b.PaidRevenue += price
		} else if isOutstanding(j) {
			b.PendingRevenue += price
		}

		if price <= 0 {
			continue
		}
		if count == 0 || price > b.HighestJobValue {
			b.HighestJobValue = price
		}
		if count == 0 || price < b.LowestJobValue {
			b.LowestJobValue = price
		}
		sum += price
		count++
	}

	if count > 0 {
		b.AverageJobValue = round2(sum / float64(count))
	}
	b.PaidRevenue = round2(b.PaidRevenue)
	b.PendingRevenue = round2(b.PendingRevenue)
	b.CleanerPayout = round2(b.PaidRevenue * a.payoutRate)
	b.Profit = round2(b.PaidRevenue - b.CleanerPayout)
	return b
}

// earliest finds the oldest record timestamp, falling back to now for
// an empty snapshot so charts still render one bucket.
func (a *Aggregator) earliest(snap Snapshot) time.Time {
	earliest := a.now()
	for i := range snap.Jobs {
		if snap.Jobs[i].CreatedAt.Before(earliest) {
			earliest = snap.Jobs[i].CreatedAt
		}
	}
	for i := range snap.Quotes {
		if snap.Quotes[i].CreatedAt.Before(earliest) {
			earliest = snap.Quotes[i].CreatedAt
		}
	}
	return earliest
}
