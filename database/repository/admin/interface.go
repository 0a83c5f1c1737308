package adminRepo

import "tidyops/models"

// Repository defines persistence operations for admin accounts.
type Repository interface {
	Create(admin *models.Admin) error
	Update(admin *models.Admin) error
	GetByID(id string) (*models.Admin, error)
	// GetByEmail returns (nil, nil) when no admin matches.
	GetByEmail(email string) (*models.Admin, error)
	SetTokenHash(id, tokenHash string) error
	// CompanyIDs lists every distinct company with at least one admin.
	CompanyIDs() ([]string, error)
}
