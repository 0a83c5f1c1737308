package models

import "time"

// Admin is a dashboard user. Every admin belongs to exactly one company,
// and all records an admin can see are scoped by that company ID.
type Admin struct {
	ID        string `bson:"id" json:"id"`
	CompanyID string `bson:"companyId" json:"companyId"`
	Name      string `bson:"name" json:"name"`
	Email     string `bson:"email" json:"email"`

	PasswordHash string `bson:"passwordHash" json:"-"`
	TokenHash    string `bson:"tokenHash,omitempty" json:"-"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}
