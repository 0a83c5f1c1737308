package models

import "time"

// Cleaner is a field worker who accepts and performs jobs.
type Cleaner struct {
	ID        string `bson:"id" json:"id"`
	CompanyID string `bson:"companyId" json:"companyId"`
	FirstName string `bson:"firstName" json:"firstName"`
	LastName  string `bson:"lastName" json:"lastName"`
	Email     string `bson:"email" json:"email"`
	Phone     string `bson:"phone" json:"phone"`

	PasswordHash string `bson:"passwordHash" json:"-"`
	TokenHash    string `bson:"tokenHash,omitempty" json:"-"`
	FCMToken     string `bson:"fcmToken,omitempty" json:"-"`

	// Per-cleaner payout override. Zero means the company default applies.
	PayoutRate float64 `bson:"payoutRate,omitempty" json:"payoutRate,omitempty"`
	Active     bool    `bson:"active" json:"active"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}
