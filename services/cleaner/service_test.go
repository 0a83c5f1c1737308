package cleaner

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"tidyops/models"

	"go.uber.org/zap"
)

// fakeJobRepo is an in-memory Repository for exercising the job
// lifecycle without MongoDB.
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

func (r *fakeJobRepo) Create(job *models.Job) error {
	r.jobs[job.ID] = job
	return nil
}

func (r *fakeJobRepo) Update(job *models.Job) error {
	if _, ok := r.jobs[job.ID]; !ok {
		return fmt.Errorf("job with id %s not found", job.ID)
	}
	r.jobs[job.ID] = job
	return nil
}

func (r *fakeJobRepo) Delete(id string) error {
	delete(r.jobs, id)
	return nil
}

func (r *fakeJobRepo) GetByID(id string) (*models.Job, error) {
	job, ok := r.jobs[id]
	if !ok {
		return nil, fmt.Errorf("job with id %s not found", id)
	}
	copied := *job
	return &copied, nil
}

func (r *fakeJobRepo) GetByCompany(companyID string) ([]models.Job, error) {
	var out []models.Job
	for _, j := range r.jobs {
		if j.CompanyID == companyID {
			out = append(out, *j)
		}
	}
	return out, nil
}

func (r *fakeJobRepo) GetByCleaner(cleanerID string, statuses []models.JobStatus) ([]models.Job, error) {
	var out []models.Job
	for _, j := range r.jobs {
		if j.CleanerID != cleanerID {
			continue
		}
		if len(statuses) == 0 {
			out = append(out, *j)
			continue
		}
		for _, s := range statuses {
			if j.Status == s {
				out = append(out, *j)
				break
			}
		}
	}
	return out, nil
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

func (r *fakeJobRepo) AppendPhotos(id string, field string, publicIDs []string) error {
	job, ok := r.jobs[id]
	if !ok {
		return fmt.Errorf("job with id %s not found", id)
	}
	switch field {
	case "beforePhotos":
		job.BeforePhotos = append(job.BeforePhotos, publicIDs...)
	case "afterPhotos":
		job.AfterPhotos = append(job.AfterPhotos, publicIDs...)
	default:
		return fmt.Errorf("unknown photo field %q", field)
	}
	return nil
}

func offeredJob(id, cleanerID string) *models.Job {
	return &models.Job{
		ID:        id,
		CompanyID: "co-1",
		CleanerID: cleanerID,
		Status:    models.JobStatusConfirmed,
	}
}

func testService(repo *fakeJobRepo) *Service {
	return NewService(nil, repo, nil, zap.NewNop())
}

func TestAcceptJob(t *testing.T) {
	repo := newFakeJobRepo(offeredJob("job-1", "cl-1"))
	svc := testService(repo)

	job, err := svc.AcceptJob("cl-1", "job-1")
	if err != nil {
		t.Fatalf("AcceptJob: %v", err)
	}
	if job.Status != models.JobStatusAssigned {
		t.Errorf("status = %q, want assigned", job.Status)
	}
	if repo.jobs["job-1"].Status != models.JobStatusAssigned {
		t.Errorf("stored status = %q, want assigned", repo.jobs["job-1"].Status)
	}
}

func TestAcceptJobNotAssignedToCaller(t *testing.T) {
	svc := testService(newFakeJobRepo(offeredJob("job-1", "cl-1")))

	if _, err := svc.AcceptJob("cl-2", "job-1"); !errors.Is(err, ErrNotAssigned) {
		t.Errorf("err = %v, want ErrNotAssigned", err)
	}
}

func TestAcceptJobWrongState(t *testing.T) {
	job := offeredJob("job-1", "cl-1")
	job.Status = models.JobStatusCompleted
	svc := testService(newFakeJobRepo(job))

	if _, err := svc.AcceptJob("cl-1", "job-1"); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("err = %v, want ErrInvalidTransition", err)
	}
}

func TestDeclineJobReleasesToPool(t *testing.T) {
	repo := newFakeJobRepo(offeredJob("job-1", "cl-1"))
	svc := testService(repo)

	if err := svc.DeclineJob("cl-1", "job-1"); err != nil {
		t.Fatalf("DeclineJob: %v", err)
	}
	stored := repo.jobs["job-1"]
	if stored.CleanerID != "" {
		t.Errorf("CleanerID = %q, want cleared", stored.CleanerID)
	}
	if stored.Status != models.JobStatusPending {
		t.Errorf("status = %q, want pending", stored.Status)
	}
}

func TestJobLifecycleThroughCompletion(t *testing.T) {
	repo := newFakeJobRepo(offeredJob("job-1", "cl-1"))
	svc := testService(repo)

	if _, err := svc.AcceptJob("cl-1", "job-1"); err != nil {
		t.Fatalf("AcceptJob: %v", err)
	}
	if _, err := svc.StartJob("cl-1", "job-1"); err != nil {
		t.Fatalf("StartJob: %v", err)
	}

	job, err := svc.CompleteJob(context.Background(), "cl-1", "job-1", "left keys under mat")
	if err != nil {
		t.Fatalf("CompleteJob: %v", err)
	}
	if job.Status != models.JobStatusCompleted {
		t.Errorf("status = %q, want completed", job.Status)
	}
	if repo.jobs["job-1"].CleanerNotes != "left keys under mat" {
		t.Errorf("notes = %q, want recorded", repo.jobs["job-1"].CleanerNotes)
	}
}

func TestStartJobRequiresAcceptance(t *testing.T) {
	svc := testService(newFakeJobRepo(offeredJob("job-1", "cl-1")))

	if _, err := svc.StartJob("cl-1", "job-1"); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("starting an unaccepted job: err = %v, want ErrInvalidTransition", err)
	}
}

func TestAttachPhotos(t *testing.T) {
	job := offeredJob("job-1", "cl-1")
	job.Status = models.JobStatusInProgress
	repo := newFakeJobRepo(job)
	svc := testService(repo)

	if err := svc.AttachPhotos("cl-1", "job-1", "before", []string{"p1", "p2"}); err != nil {
		t.Fatalf("AttachPhotos before: %v", err)
	}
	if err := svc.AttachPhotos("cl-1", "job-1", "after", []string{"p3"}); err != nil {
		t.Fatalf("AttachPhotos after: %v", err)
	}
	stored := repo.jobs["job-1"]
	if len(stored.BeforePhotos) != 2 || len(stored.AfterPhotos) != 1 {
		t.Errorf("photos = %d/%d, want 2/1", len(stored.BeforePhotos), len(stored.AfterPhotos))
	}

	if err := svc.AttachPhotos("cl-1", "job-1", "during", []string{"p4"}); err == nil {
		t.Error("unknown phase should be rejected")
	}
}

func TestOfferedJobsFiltersByStatus(t *testing.T) {
	accepted := offeredJob("job-2", "cl-1")
	accepted.Status = models.JobStatusAssigned
	repo := newFakeJobRepo(offeredJob("job-1", "cl-1"), accepted, offeredJob("job-3", "cl-9"))
	svc := testService(repo)

	offered, err := svc.OfferedJobs("cl-1")
	if err != nil {
		t.Fatalf("OfferedJobs: %v", err)
	}
	if len(offered) != 1 || offered[0].ID != "job-1" {
		t.Errorf("offered = %+v, want only job-1", offered)
	}
}
