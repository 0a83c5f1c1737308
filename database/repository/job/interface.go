package jobRepo

import "tidyops/models"

// Repository defines persistence operations for jobs.
type Repository interface {
	Create(job *models.Job) error
	Update(job *models.Job) error
	Delete(id string) error
	GetByID(id string) (*models.Job, error)
	GetByCompany(companyID string) ([]models.Job, error)
	GetByCleaner(cleanerID string, statuses []models.JobStatus) ([]models.Job, error)

	UpdateStatus(id string, status models.JobStatus) error
	UpdatePayment(id string, payment models.PaymentInfo) error
	Assign(id, cleanerID string) error
	AppendPhotos(id string, field string, publicIDs []string) error
}
