package models

import "time"

// JobStatus tracks a job through its lifecycle.
type JobStatus string

const (
	JobStatusPending     JobStatus = "pending"
	JobStatusConfirmed   JobStatus = "confirmed"
	JobStatusAssigned    JobStatus = "assigned"
	JobStatusInProgress  JobStatus = "in-progress"
	JobStatusCompleted   JobStatus = "completed"
	JobStatusCancelled   JobStatus = "cancelled"
	JobStatusRescheduled JobStatus = "rescheduled"
)

// PaymentStatus tracks the payment attached to a job.
type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusPaid     PaymentStatus = "paid"
	PaymentStatusFailed   PaymentStatus = "failed"
	PaymentStatusRefunded PaymentStatus = "refunded"
)

// PaymentInfo records the payment state of a job.
type PaymentInfo struct {
	Status   PaymentStatus `bson:"status" json:"status"`
	IntentID string        `bson:"intentId,omitempty" json:"intentId,omitempty"` // Stripe PaymentIntent ID
	Method   string        `bson:"method,omitempty" json:"method,omitempty"`     // e.g. "card", "cash"
	PaidAt   *time.Time    `bson:"paidAt,omitempty" json:"paidAt,omitempty"`
}

// JobPricing stores the breakdown computed at booking time so historical
// jobs keep the price they were sold at.
type JobPricing struct {
	Breakdown  PricingBreakdown `bson:"breakdown" json:"breakdown"`
	FinalPrice float64          `bson:"finalPrice" json:"finalPrice"`
}

// Job is a confirmed cleaning appointment.
type Job struct {
	ID        string `bson:"id" json:"id"`
	CompanyID string `bson:"companyId" json:"companyId"`
	ClientID  string `bson:"clientId" json:"clientId"`
	CleanerID string `bson:"cleanerId,omitempty" json:"cleanerId,omitempty"`

	Service  ServiceDetails `bson:"service" json:"service"`
	Extras   Extras         `bson:"extras" json:"extras"`
	Schedule Schedule       `bson:"schedule" json:"schedule"`
	Address  Address        `bson:"address" json:"address"`

	Pricing JobPricing  `bson:"pricing" json:"pricing"`
	Payment PaymentInfo `bson:"payment" json:"payment"`
	Status  JobStatus   `bson:"status" json:"status"`

	EstimatedDuration   string `bson:"estimatedDuration,omitempty" json:"estimatedDuration,omitempty"`
	ParkingInstructions string `bson:"parkingInstructions,omitempty" json:"parkingInstructions,omitempty"`
	SpecialInstructions string `bson:"specialInstructions,omitempty" json:"specialInstructions,omitempty"`

	// Cloudinary public IDs of photos taken by the cleaner.
	BeforePhotos []string `bson:"beforePhotos,omitempty" json:"beforePhotos,omitempty"`
	AfterPhotos  []string `bson:"afterPhotos,omitempty" json:"afterPhotos,omitempty"`
	CleanerNotes string   `bson:"cleanerNotes,omitempty" json:"cleanerNotes,omitempty"`

	CreatedAt   time.Time  `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time  `bson:"updatedAt" json:"updatedAt"`
	CompletedAt *time.Time `bson:"completedAt,omitempty" json:"completedAt,omitempty"`
}

// ScheduledStart combines the schedule's date and "HH:MM" time into a
// single timestamp. A malformed or empty time component yields midnight.
func (j *Job) ScheduledStart() time.Time {
	return CombineDateTime(j.Schedule.Date, j.Schedule.Time)
}

// CombineDateTime merges a calendar date with an "HH:MM" 24-hour clock
// string. Malformed clock strings fall back to midnight.
func CombineDateTime(date time.Time, clock string) time.Time {
	t, err := time.Parse("15:04", clock)
	if err != nil {
		return time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	}
	return time.Date(date.Year(), date.Month(), date.Day(), t.Hour(), t.Minute(), 0, 0, date.Location())
}
