package models

import "time"

// QuoteStatus tracks what became of a quote request.
type QuoteStatus string

const (
	QuoteStatusOpen      QuoteStatus = "open"
	QuoteStatusConverted QuoteStatus = "converted"
	QuoteStatusExpired   QuoteStatus = "expired"
)

// Quote is a priced service request that has not been booked yet.
type Quote struct {
	ID        string         `bson:"id" json:"id"`
	CompanyID string         `bson:"companyId" json:"companyId"`
	Contact   ContactInfo    `bson:"contact" json:"contact"`
	Service   ServiceDetails `bson:"service" json:"service"`
	Extras    Extras         `bson:"extras" json:"extras"`
	Frequency Frequency      `bson:"frequency" json:"frequency"`

	Pricing PricingBreakdown `bson:"pricing" json:"pricing"`
	Status  QuoteStatus      `bson:"status" json:"status"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}
