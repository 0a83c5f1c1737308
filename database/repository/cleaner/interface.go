package cleanerRepo

import "tidyops/models"

// Repository defines persistence operations for cleaners.
type Repository interface {
	Create(cleaner *models.Cleaner) error
	Update(cleaner *models.Cleaner) error
	Delete(id string) error
	GetByID(id string) (*models.Cleaner, error)
	// GetByEmail returns (nil, nil) when no cleaner matches.
	GetByEmail(email string) (*models.Cleaner, error)
	GetByCompany(companyID string) ([]models.Cleaner, error)
	SetTokenHash(id, tokenHash string) error
	SetFCMToken(id, fcmToken string) error
}
