package admin

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"tidyops/models"

	"go.uber.org/zap"
)

type fakeJobRepo struct {
	jobs map[string]*models.Job
}

func newFakeJobRepo(jobs ...*models.Job) *fakeJobRepo {
	r := &fakeJobRepo{jobs: make(map[string]*models.Job)}
	for _, j := range jobs {
		r.jobs[j.ID] = j
	}
	return r
}

func (r *fakeJobRepo) Create(job *models.Job) error { r.jobs[job.ID] = job; return nil }
func (r *fakeJobRepo) Update(job *models.Job) error {
	if _, ok := r.jobs[job.ID]; !ok {
		return fmt.Errorf("job with id %s not found", job.ID)
	}
	r.jobs[job.ID] = job
	return nil
}
func (r *fakeJobRepo) Delete(id string) error { delete(r.jobs, id); return nil }

func (r *fakeJobRepo) GetByID(id string) (*models.Job, error) {
	job, ok := r.jobs[id]
	if !ok {
		return nil, fmt.Errorf("job with id %s not found", id)
	}
	copied := *job
	return &copied, nil
}

func (r *fakeJobRepo) GetByCompany(string) ([]models.Job, error) { return nil, nil }
func (r *fakeJobRepo) GetByCleaner(string, []models.JobStatus) ([]models.Job, error) {
	return nil, nil
}

func (r *fakeJobRepo) UpdateStatus(id string, status models.JobStatus) error {
	job, ok := r.jobs[id]
	if !ok {
		return fmt.Errorf("job with id %s not found", id)
	}
	job.Status = status
	return nil
}

func (r *fakeJobRepo) UpdatePayment(id string, payment models.PaymentInfo) error {
	job, ok := r.jobs[id]
	if !ok {
		return fmt.Errorf("job with id %s not found", id)
	}
	job.Payment = payment
	return nil
}

func (r *fakeJobRepo) Assign(id, cleanerID string) error {
	job, ok := r.jobs[id]
	if !ok {
		return fmt.Errorf("job with id %s not found", id)
	}
	job.CleanerID = cleanerID
	return nil
}

func (r *fakeJobRepo) AppendPhotos(string, string, []string) error { return nil }

type fakeCleanerRepo struct {
	cleaners map[string]*models.Cleaner
}

func (r *fakeCleanerRepo) Create(*models.Cleaner) error        { return nil }
func (r *fakeCleanerRepo) Update(*models.Cleaner) error        { return nil }
func (r *fakeCleanerRepo) Delete(string) error                 { return nil }
func (r *fakeCleanerRepo) SetTokenHash(string, string) error   { return nil }
func (r *fakeCleanerRepo) SetFCMToken(string, string) error    { return nil }
func (r *fakeCleanerRepo) GetByEmail(string) (*models.Cleaner, error) {
	return nil, nil
}
func (r *fakeCleanerRepo) GetByCompany(string) ([]models.Cleaner, error) { return nil, nil }

func (r *fakeCleanerRepo) GetByID(id string) (*models.Cleaner, error) {
	cleaner, ok := r.cleaners[id]
	if !ok {
		return nil, fmt.Errorf("cleaner with id %s not found", id)
	}
	return cleaner, nil
}

type fakePayments struct{}

func (fakePayments) CreateDepositIntent(*models.Job) (string, error) { return "pi_test", nil }

func (fakePayments) RefundStatus(job *models.Job) models.PaymentStatus {
	if job.Payment.Status == models.PaymentStatusPaid {
		return models.PaymentStatusRefunded
	}
	return job.Payment.Status
}

func pendingJob(id string) *models.Job {
	return &models.Job{ID: id, CompanyID: "co-1", Status: models.JobStatusPending}
}

func testDispatcher(jobs *fakeJobRepo, cleaners *fakeCleanerRepo) *Dispatcher {
	return NewDispatcher(jobs, cleaners, nil, nil, fakePayments{}, zap.NewNop())
}

func TestApproveJob(t *testing.T) {
	repo := newFakeJobRepo(pendingJob("job-1"))
	d := testDispatcher(repo, &fakeCleanerRepo{})

	job, err := d.ApproveJob("co-1", "job-1")
	if err != nil {
		t.Fatalf("ApproveJob: %v", err)
	}
	if job.Status != models.JobStatusConfirmed {
		t.Errorf("status = %q, want confirmed", job.Status)
	}
}

func TestApproveJobScopedByCompany(t *testing.T) {
	d := testDispatcher(newFakeJobRepo(pendingJob("job-1")), &fakeCleanerRepo{})

	if _, err := d.ApproveJob("co-2", "job-1"); !errors.Is(err, ErrJobNotOwned) {
		t.Errorf("cross-company approve: err = %v, want ErrJobNotOwned", err)
	}
}

func TestAssignJob(t *testing.T) {
	repo := newFakeJobRepo(pendingJob("job-1"))
	cleaners := &fakeCleanerRepo{cleaners: map[string]*models.Cleaner{
		"cl-1": {ID: "cl-1", CompanyID: "co-1", Active: true},
	}}
	d := testDispatcher(repo, cleaners)

	job, err := d.AssignJob(context.Background(), "co-1", "job-1", "cl-1")
	if err != nil {
		t.Fatalf("AssignJob: %v", err)
	}
	if job.CleanerID != "cl-1" || job.Status != models.JobStatusConfirmed {
		t.Errorf("job = %+v, want cl-1 confirmed", job)
	}
	if repo.jobs["job-1"].CleanerID != "cl-1" {
		t.Errorf("stored CleanerID = %q, want cl-1", repo.jobs["job-1"].CleanerID)
	}
}

func TestAssignJobRejectsInactiveCleaner(t *testing.T) {
	cleaners := &fakeCleanerRepo{cleaners: map[string]*models.Cleaner{
		"cl-1": {ID: "cl-1", CompanyID: "co-1", Active: false},
	}}
	d := testDispatcher(newFakeJobRepo(pendingJob("job-1")), cleaners)

	if _, err := d.AssignJob(context.Background(), "co-1", "job-1", "cl-1"); !errors.Is(err, ErrCleanerUnavailable) {
		t.Errorf("err = %v, want ErrCleanerUnavailable", err)
	}
}

func TestAssignJobRejectsOtherCompanyCleaner(t *testing.T) {
	cleaners := &fakeCleanerRepo{cleaners: map[string]*models.Cleaner{
		"cl-1": {ID: "cl-1", CompanyID: "co-9", Active: true},
	}}
	d := testDispatcher(newFakeJobRepo(pendingJob("job-1")), cleaners)

	if _, err := d.AssignJob(context.Background(), "co-1", "job-1", "cl-1"); !errors.Is(err, ErrCleanerUnavailable) {
		t.Errorf("err = %v, want ErrCleanerUnavailable", err)
	}
}

func TestCancelPaidJobMarksRefunded(t *testing.T) {
	job := pendingJob("job-1")
	job.Status = models.JobStatusConfirmed
	job.Payment = models.PaymentInfo{Status: models.PaymentStatusPaid}
	repo := newFakeJobRepo(job)
	d := testDispatcher(repo, &fakeCleanerRepo{})

	cancelled, err := d.CancelJob("co-1", "job-1")
	if err != nil {
		t.Fatalf("CancelJob: %v", err)
	}
	if cancelled.Status != models.JobStatusCancelled {
		t.Errorf("status = %q, want cancelled", cancelled.Status)
	}
	if cancelled.Payment.Status != models.PaymentStatusRefunded {
		t.Errorf("payment = %q, want refunded", cancelled.Payment.Status)
	}
}

func TestCancelUnpaidJobKeepsPaymentPending(t *testing.T) {
	job := pendingJob("job-1")
	job.Payment = models.PaymentInfo{Status: models.PaymentStatusPending}
	d := testDispatcher(newFakeJobRepo(job), &fakeCleanerRepo{})

	cancelled, err := d.CancelJob("co-1", "job-1")
	if err != nil {
		t.Fatalf("CancelJob: %v", err)
	}
	if cancelled.Payment.Status != models.PaymentStatusPending {
		t.Errorf("payment = %q, want still pending", cancelled.Payment.Status)
	}
}

func TestCancelCompletedJobRejected(t *testing.T) {
	job := pendingJob("job-1")
	job.Status = models.JobStatusCompleted
	d := testDispatcher(newFakeJobRepo(job), &fakeCleanerRepo{})

	if _, err := d.CancelJob("co-1", "job-1"); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("err = %v, want ErrInvalidTransition", err)
	}
}

func TestRescheduleJob(t *testing.T) {
	job := pendingJob("job-1")
	job.Status = models.JobStatusConfirmed
	repo := newFakeJobRepo(job)
	d := testDispatcher(repo, &fakeCleanerRepo{})

	newDate := time.Date(2026, 10, 2, 0, 0, 0, 0, time.UTC)
	moved, err := d.RescheduleJob("co-1", "job-1", newDate, "14:30")
	if err != nil {
		t.Fatalf("RescheduleJob: %v", err)
	}
	if moved.Status != models.JobStatusRescheduled {
		t.Errorf("status = %q, want rescheduled", moved.Status)
	}
	stored := repo.jobs["job-1"]
	if !stored.Schedule.Date.Equal(newDate) || stored.Schedule.Time != "14:30" {
		t.Errorf("schedule = %v %q, want %v 14:30", stored.Schedule.Date, stored.Schedule.Time, newDate)
	}
}

func TestMarkJobPaid(t *testing.T) {
	job := pendingJob("job-1")
	job.Status = models.JobStatusCompleted
	repo := newFakeJobRepo(job)
	d := testDispatcher(repo, &fakeCleanerRepo{})

	paid, err := d.MarkJobPaid("co-1", "job-1", "cash")
	if err != nil {
		t.Fatalf("MarkJobPaid: %v", err)
	}
	if paid.Payment.Status != models.PaymentStatusPaid || paid.Payment.Method != "cash" {
		t.Errorf("payment = %+v, want paid via cash", paid.Payment)
	}
	if paid.Payment.PaidAt == nil {
		t.Error("PaidAt should be stamped")
	}
}

func TestMarkJobPaidIdempotent(t *testing.T) {
	paidAt := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	job := pendingJob("job-1")
	job.Payment = models.PaymentInfo{Status: models.PaymentStatusPaid, Method: "card", PaidAt: &paidAt}
	d := testDispatcher(newFakeJobRepo(job), &fakeCleanerRepo{})

	again, err := d.MarkJobPaid("co-1", "job-1", "cash")
	if err != nil {
		t.Fatalf("MarkJobPaid: %v", err)
	}
	if again.Payment.Method != "card" || !again.Payment.PaidAt.Equal(paidAt) {
		t.Errorf("payment = %+v, want original card payment untouched", again.Payment)
	}
}
