package quoteRepo

import "tidyops/models"

// Repository defines persistence operations for quotes.
type Repository interface {
	Create(quote *models.Quote) error
	GetByID(id string) (*models.Quote, error)
	GetByCompany(companyID string) ([]models.Quote, error)
	UpdateStatus(id string, status models.QuoteStatus) error
	Delete(id string) error
}
