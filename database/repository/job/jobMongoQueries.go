// File: database/repository/job/jobMongoQueries.go
package jobRepo

import (
	"fmt"
	"time"

	"tidyops/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GetByCompany retrieves every job belonging to a company, newest first.
// The analytics aggregator treats the returned slice as an immutable
// snapshot.
func (r *MongoJobRepo) GetByCompany(companyID string) ([]models.Job, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{"companyId": companyID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve jobs for company %s: %w", companyID, err)
	}
	defer cursor.Close(ctx)

	var jobs []models.Job
	for cursor.Next(ctx) {
		var j models.Job
		if err := cursor.Decode(&j); err != nil {
			return nil, fmt.Errorf("failed to decode job: %w", err)
		}
		jobs = append(jobs, j)
	}
	return jobs, nil
}

// GetByCleaner retrieves a cleaner's jobs, optionally limited to a set of
// statuses, soonest scheduled first.
func (r *MongoJobRepo) GetByCleaner(cleanerID string, statuses []models.JobStatus) ([]models.Job, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	filter := bson.M{"cleanerId": cleanerID}
	if len(statuses) > 0 {
		filter["status"] = bson.M{"$in": statuses}
	}

	opts := options.Find().SetSort(bson.D{{Key: "schedule.date", Value: 1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve jobs for cleaner %s: %w", cleanerID, err)
	}
	defer cursor.Close(ctx)

	var jobs []models.Job
	for cursor.Next(ctx) {
		var j models.Job
		if err := cursor.Decode(&j); err != nil {
			return nil, fmt.Errorf("failed to decode job: %w", err)
		}
		jobs = append(jobs, j)
	}
	return jobs, nil
}

// UpdateStatus sets the lifecycle status of a job. Completing a job also
// stamps completedAt.
func (r *MongoJobRepo) UpdateStatus(id string, status models.JobStatus) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	set := bson.M{"status": status, "updatedAt": time.Now()}
	if status == models.JobStatusCompleted {
		set["completedAt"] = time.Now()
	}

	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("failed to update status for job %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("job with id %s not found", id)
	}
	return nil
}

// UpdatePayment sets the payment state of a job.
func (r *MongoJobRepo) UpdatePayment(id string, payment models.PaymentInfo) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{"payment": payment, "updatedAt": time.Now()}}
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to update payment for job %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("job with id %s not found", id)
	}
	return nil
}

// Assign attaches a cleaner to a job. An empty cleanerID releases the
// job back to the unassigned pool.
func (r *MongoJobRepo) Assign(id, cleanerID string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{"cleanerId": cleanerID, "updatedAt": time.Now()}}
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to assign job %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("job with id %s not found", id)
	}
	return nil
}

// AppendPhotos adds Cloudinary public IDs to the named photo array
// ("beforePhotos" or "afterPhotos").
func (r *MongoJobRepo) AppendPhotos(id string, field string, publicIDs []string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	update := bson.M{
		"$push": bson.M{field: bson.M{"$each": publicIDs}},
		"$set":  bson.M{"updatedAt": time.Now()},
	}
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to append photos to job %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("job with id %s not found", id)
	}
	return nil
}
