package analytics

import (
	"testing"
	"time"

	"tidyops/models"
)

var testNow = time.Date(2026, 9, 15, 12, 0, 0, 0, time.UTC)

func fixedAggregator() *Aggregator {
	a := NewAggregator(0.70)
	a.now = func() time.Time { return testNow }
	return a
}

func job(created time.Time, status models.JobStatus, pay models.PaymentStatus, price float64) models.Job {
	return models.Job{
		Status:    status,
		Payment:   models.PaymentInfo{Status: pay},
		Pricing:   models.JobPricing{FinalPrice: price},
		CreatedAt: created,
	}
}

func quote(created time.Time) models.Quote {
	return models.Quote{Status: models.QuoteStatusOpen, CreatedAt: created}
}

func weekSnapshot() Snapshot {
	inWeek := testNow.AddDate(0, 0, -2)
	return Snapshot{
		Jobs: []models.Job{
			job(inWeek, models.JobStatusCompleted, models.PaymentStatusPaid, 100),
			job(inWeek, models.JobStatusPending, models.PaymentStatusPending, 200),
			job(inWeek, models.JobStatusCancelled, models.PaymentStatusPending, 150),
			job(inWeek, models.JobStatusConfirmed, models.PaymentStatusPaid, 80),
			job(inWeek, models.JobStatusAssigned, models.PaymentStatusPending, 120),
			// Outside the week window entirely.
			job(testNow.AddDate(0, 0, -20), models.JobStatusCompleted, models.PaymentStatusPaid, 999),
		},
		Quotes: []models.Quote{
			quote(inWeek),
			quote(inWeek),
			quote(testNow.AddDate(0, 0, -20)),
		},
	}
}

func TestMetricsEmptySnapshot(t *testing.T) {
	m := fixedAggregator().Metrics(Snapshot{}, models.FilterWeek)
	if m != (models.AnalyticsMetrics{}) {
		t.Errorf("empty snapshot should yield all-zero metrics, got %+v", m)
	}
}

func TestMetricsWeekWindow(t *testing.T) {
	m := fixedAggregator().Metrics(weekSnapshot(), models.FilterWeek)

	if m.TotalJobs != 5 {
		t.Errorf("TotalJobs = %d, want 5 (job outside window excluded)", m.TotalJobs)
	}
	if m.TotalQuotes != 2 {
		t.Errorf("TotalQuotes = %d, want 2", m.TotalQuotes)
	}
	if m.TotalRevenue != 180 {
		t.Errorf("TotalRevenue = %v, want 180 (paid or completed jobs only)", m.TotalRevenue)
	}
	if m.ApprovedJobs != 2 {
		t.Errorf("ApprovedJobs = %d, want 2 (assigned + completed)", m.ApprovedJobs)
	}
	if m.AppointmentsBooked != 1 {
		t.Errorf("AppointmentsBooked = %d, want 1 (the assigned job)", m.AppointmentsBooked)
	}
	if m.PendingJobs != 1 {
		t.Errorf("PendingJobs = %d, want 1", m.PendingJobs)
	}
	if m.CompletedJobs != 1 {
		t.Errorf("CompletedJobs = %d, want 1", m.CompletedJobs)
	}
	if m.PaidJobs != 2 {
		t.Errorf("PaidJobs = %d, want 2", m.PaidJobs)
	}
	if m.AverageJobValue != 90 {
		t.Errorf("AverageJobValue = %v, want 90 (180 over 2 paid jobs)", m.AverageJobValue)
	}
	if m.ConversionRate != 100 {
		t.Errorf("ConversionRate = %v, want 100 (2 approved over 2 quotes)", m.ConversionRate)
	}
	if m.TotalPaidToCleaners != 126 {
		t.Errorf("TotalPaidToCleaners = %v, want 126 (70%% of 180)", m.TotalPaidToCleaners)
	}
	if m.TotalProfit != 54 {
		t.Errorf("TotalProfit = %v, want 54", m.TotalProfit)
	}
}

func TestMetricsAverageRequiresPaidJobs(t *testing.T) {
	// A completed job still awaiting payment earns revenue, but the
	// average is over collected jobs only.
	snap := Snapshot{
		Jobs: []models.Job{
			job(testNow.Add(-time.Hour), models.JobStatusCompleted, models.PaymentStatusPending, 100),
		},
	}
	m := fixedAggregator().Metrics(snap, models.FilterWeek)
	if m.TotalRevenue != 100 {
		t.Errorf("TotalRevenue = %v, want 100", m.TotalRevenue)
	}
	if m.PaidJobs != 0 {
		t.Errorf("PaidJobs = %d, want 0", m.PaidJobs)
	}
	if m.AverageJobValue != 0 {
		t.Errorf("AverageJobValue = %v, want 0 with no paid jobs", m.AverageJobValue)
	}
}

func TestMetricsNoQuotesMeansZeroConversion(t *testing.T) {
	snap := Snapshot{
		Jobs: []models.Job{
			job(testNow.Add(-time.Hour), models.JobStatusAssigned, models.PaymentStatusPending, 120),
		},
	}
	m := fixedAggregator().Metrics(snap, models.FilterWeek)
	if m.ConversionRate != 0 {
		t.Errorf("ConversionRate with no quotes = %v, want 0", m.ConversionRate)
	}
}

func TestMetricsAllWindowIncludesHistory(t *testing.T) {
	m := fixedAggregator().Metrics(weekSnapshot(), models.FilterAll)
	if m.TotalJobs != 6 {
		t.Errorf("TotalJobs = %d, want 6", m.TotalJobs)
	}
	if m.TotalRevenue != 1179 {
		t.Errorf("TotalRevenue = %v, want 1179", m.TotalRevenue)
	}
}

func TestTimeSeriesWeekIsGapFree(t *testing.T) {
	points := fixedAggregator().TimeSeries(weekSnapshot(), models.FilterWeek)

	if len(points) != 8 {
		t.Fatalf("week series length = %d, want 8 (7 days back through today)", len(points))
	}
	wantFirst := time.Date(2026, 9, 8, 0, 0, 0, 0, time.UTC)
	if !points[0].Bucket.Equal(wantFirst) {
		t.Errorf("first bucket = %v, want %v", points[0].Bucket, wantFirst)
	}
	for i := 1; i < len(points); i++ {
		if got := points[i].Bucket.Sub(points[i-1].Bucket); got != 24*time.Hour {
			t.Errorf("gap between buckets %d and %d = %v, want 24h", i-1, i, got)
		}
	}
	if points[3].Label != "Sep 11" {
		t.Errorf("points[3].Label = %q, want \"Sep 11\"", points[3].Label)
	}
}

func TestTimeSeriesBucketsActivity(t *testing.T) {
	points := fixedAggregator().TimeSeries(weekSnapshot(), models.FilterWeek)

	// All in-window activity was created two days before now: Sep 13,
	// which is index 5 of the 8-day series starting Sep 8.
	p := points[5]
	if p.Jobs != 5 {
		t.Errorf("bucket jobs = %d, want 5", p.Jobs)
	}
	if p.Revenue != 180 {
		t.Errorf("bucket revenue = %v, want 180 (paid jobs only)", p.Revenue)
	}
	if p.Quotes != 2 {
		t.Errorf("bucket quotes = %d, want 2", p.Quotes)
	}
	if p.Approved != 2 || p.Completed != 1 {
		t.Errorf("bucket approved/completed = %d/%d, want 2/1", p.Approved, p.Completed)
	}

	for i, pt := range points {
		if i == 5 {
			continue
		}
		if pt.Jobs != 0 || pt.Revenue != 0 || pt.Quotes != 0 {
			t.Errorf("bucket %d (%s) should be zero, got %+v", i, pt.Label, pt)
		}
	}
}

func TestTimeSeriesDayUsesHourBuckets(t *testing.T) {
	snap := Snapshot{
		Jobs: []models.Job{
			job(testNow.Add(-2*time.Hour), models.JobStatusPending, models.PaymentStatusPending, 120),
		},
	}
	points := fixedAggregator().TimeSeries(snap, models.FilterDay)

	// Midnight through 12:00 inclusive.
	if len(points) != 13 {
		t.Fatalf("day series length = %d, want 13", len(points))
	}
	if points[0].Label != "00:00" || points[12].Label != "12:00" {
		t.Errorf("labels = %q..%q, want 00:00..12:00", points[0].Label, points[12].Label)
	}
	if points[10].Jobs != 1 {
		t.Errorf("10:00 bucket = %+v, want the one job", points[10])
	}
	if points[10].Revenue != 0 {
		t.Errorf("10:00 bucket revenue = %v, want 0 (job not paid or completed)", points[10].Revenue)
	}
}

func TestMonthlyRollupNewestFirst(t *testing.T) {
	july := time.Date(2026, 7, 4, 9, 0, 0, 0, time.UTC)
	august := time.Date(2026, 8, 20, 9, 0, 0, 0, time.UTC)
	snap := Snapshot{
		Jobs: []models.Job{
			job(july, models.JobStatusCompleted, models.PaymentStatusPaid, 250),
			job(testNow.AddDate(0, 0, -1), models.JobStatusPending, models.PaymentStatusPending, 90),
		},
		Quotes: []models.Quote{quote(august)},
	}

	rows := fixedAggregator().Monthly(snap)
	if len(rows) != 3 {
		t.Fatalf("monthly rows = %d, want 3 (Jul through Sep)", len(rows))
	}
	if rows[0].Month != "Sep 2026" || rows[2].Month != "Jul 2026" {
		t.Errorf("rows ordered %q..%q, want Sep 2026..Jul 2026", rows[0].Month, rows[2].Month)
	}
	if rows[2].Revenue != 250 || rows[2].PaidCount != 1 || rows[2].Completed != 1 {
		t.Errorf("July row = %+v, want revenue 250, paidCount 1, completed 1", rows[2])
	}
	if rows[1].Month != "Aug 2026" || rows[1].Quotes != 1 || rows[1].Jobs != 0 {
		t.Errorf("August row = %+v, want only the quote", rows[1])
	}
	if rows[0].Jobs != 1 || rows[0].Revenue != 0 {
		t.Errorf("September row = %+v, want one job with no revenue yet", rows[0])
	}
}

func TestRevenueBreakdown(t *testing.T) {
	b := fixedAggregator().Revenue(weekSnapshot(), models.FilterWeek)

	if b.PaidRevenue != 180 {
		t.Errorf("PaidRevenue = %v, want 180", b.PaidRevenue)
	}
	if b.PendingRevenue != 320 {
		t.Errorf("PendingRevenue = %v, want 320 (cancelled job in neither bucket)", b.PendingRevenue)
	}
	if b.CleanerPayout != 126 {
		t.Errorf("CleanerPayout = %v, want 126", b.CleanerPayout)
	}
	if b.Profit != 54 {
		t.Errorf("Profit = %v, want 54", b.Profit)
	}
	if b.AverageJobValue != 130 {
		t.Errorf("AverageJobValue = %v, want 130 (650 over 5 priced jobs)", b.AverageJobValue)
	}
	if b.HighestJobValue != 200 || b.LowestJobValue != 80 {
		t.Errorf("high/low = %v/%v, want 200/80", b.HighestJobValue, b.LowestJobValue)
	}
}

func TestRevenueBreakdownCompletedCountsAsPaid(t *testing.T) {
	// Finished work is owed in full: it belongs on the collected side
	// even before the payment clears, and the payout is derived from it.
	// A confirmed job nobody has accepted yet sits in neither bucket.
	snap := Snapshot{
		Jobs: []models.Job{
			job(testNow.Add(-time.Hour), models.JobStatusCompleted, models.PaymentStatusPending, 100),
			job(testNow.Add(-time.Hour), models.JobStatusConfirmed, models.PaymentStatusPending, 60),
		},
	}
	b := fixedAggregator().Revenue(snap, models.FilterWeek)
	if b.PaidRevenue != 100 {
		t.Errorf("PaidRevenue = %v, want 100 (completed job counts as collected)", b.PaidRevenue)
	}
	if b.PendingRevenue != 0 {
		t.Errorf("PendingRevenue = %v, want 0", b.PendingRevenue)
	}
	if b.CleanerPayout != 70 || b.Profit != 30 {
		t.Errorf("payout/profit = %v/%v, want 70/30", b.CleanerPayout, b.Profit)
	}
}

func TestRevenueBreakdownSkipsUnpricedJobs(t *testing.T) {
	snap := Snapshot{
		Jobs: []models.Job{
			job(testNow.Add(-time.Hour), models.JobStatusPending, models.PaymentStatusPending, 0),
			job(testNow.Add(-time.Hour), models.JobStatusConfirmed, models.PaymentStatusPaid, 140),
		},
	}
	b := fixedAggregator().Revenue(snap, models.FilterWeek)
	if b.AverageJobValue != 140 || b.LowestJobValue != 140 {
		t.Errorf("avg/low = %v/%v, want 140/140 (zero-priced job ignored)", b.AverageJobValue, b.LowestJobValue)
	}
}

func TestRevenueBreakdownEmpty(t *testing.T) {
	b := fixedAggregator().Revenue(Snapshot{}, models.FilterWeek)
	if b != (models.RevenueBreakdown{}) {
		t.Errorf("empty snapshot should yield zero breakdown, got %+v", b)
	}
}

func TestPayoutRateIsConfigurable(t *testing.T) {
	a := NewAggregator(0.60)
	a.now = func() time.Time { return testNow }

	b := a.Revenue(weekSnapshot(), models.FilterWeek)
	if b.CleanerPayout != 108 {
		t.Errorf("CleanerPayout at 60%% = %v, want 108", b.CleanerPayout)
	}
	if b.Profit != 72 {
		t.Errorf("Profit at 60%% = %v, want 72", b.Profit)
	}
}
