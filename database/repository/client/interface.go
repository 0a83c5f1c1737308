package clientRepo

import "tidyops/models"

// Repository defines persistence operations for client records.
type Repository interface {
	Create(client *models.Client) error
	Update(client *models.Client) error
	Delete(id string) error
	GetByID(id string) (*models.Client, error)
	// GetByEmail returns (nil, nil) when no client matches.
	GetByEmail(companyID, email string) (*models.Client, error)
	GetByCompany(companyID string) ([]models.Client, error)
}
