package models

import "time"

// Client is a customer record owned by a company.
type Client struct {
	ID        string      `bson:"id" json:"id"`
	CompanyID string      `bson:"companyId" json:"companyId"`
	Contact   ContactInfo `bson:"contact" json:"contact"`
	Address   Address     `bson:"address" json:"address"`
	Notes     string      `bson:"notes,omitempty" json:"notes,omitempty"`
	FCMToken  string      `bson:"fcmToken,omitempty" json:"-"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}
