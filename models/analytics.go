package models

import "time"

// TimeFilter selects the window analytics are computed over.
type TimeFilter string

const (
	FilterDay     TimeFilter = "day"
	FilterWeek    TimeFilter = "week"
	FilterMonth   TimeFilter = "month"
	FilterQuarter TimeFilter = "quarter"
	FilterYear    TimeFilter = "year"
	FilterAll     TimeFilter = "all"
)

// AnalyticsMetrics is the dashboard summary for one company and window.
type AnalyticsMetrics struct {
	TotalRevenue       float64 `json:"totalRevenue"`
	TotalJobs          int     `json:"totalJobs"`
	TotalQuotes        int     `json:"totalQuotes"`
	ApprovedJobs       int     `json:"approvedJobs"`
	PaidJobs           int     `json:"paidJobs"`
	PendingJobs        int     `json:"pendingJobs"`
	CompletedJobs      int     `json:"completedJobs"`
	AppointmentsBooked int     `json:"appointmentsBooked"`

	AverageJobValue float64 `json:"averageJobValue"`
	ConversionRate  float64 `json:"conversionRate"`

	TotalPaidToCleaners float64 `json:"totalPaidToCleaners"`
	TotalProfit         float64 `json:"totalProfit"`
}

// TimeSeriesPoint is one chart bucket. Buckets are contiguous: windows
// with no activity still produce a zero-valued point.
type TimeSeriesPoint struct {
	Label     string    `json:"label"`
	Bucket    time.Time `json:"bucket"`
	Revenue   float64   `json:"revenue"`
	Jobs      int       `json:"jobs"`
	Quotes    int       `json:"quotes"`
	Approved  int       `json:"approved"`
	Completed int       `json:"completed"`
}

// MonthlyMetrics is a calendar-month rollup across full history.
type MonthlyMetrics struct {
	Month     string  `json:"month"` // e.g. "Jan 2026"
	Revenue   float64 `json:"revenue"`
	Jobs      int     `json:"jobs"`
	Quotes    int     `json:"quotes"`
	Approved  int     `json:"approved"`
	Completed int     `json:"completed"`
	PaidCount int     `json:"paidCount"`
}

// RevenueBreakdown splits revenue into collected and outstanding parts
// and derives the cleaner payout from the collected portion only.
type RevenueBreakdown struct {
	PaidRevenue    float64 `json:"paidRevenue"`
	PendingRevenue float64 `json:"pendingRevenue"`
	CleanerPayout  float64 `json:"cleanerPayout"`
	Profit         float64 `json:"profit"`

	AverageJobValue float64 `json:"averageJobValue"`
	HighestJobValue float64 `json:"highestJobValue"`
	LowestJobValue  float64 `json:"lowestJobValue"`
}
