package jobRepo

import (
	"context"
	"fmt"
	"time"

	"tidyops/database"
	"tidyops/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoJobRepo implements Repository using MongoDB.
type MongoJobRepo struct {
	coll *mongo.Collection
}

// NewMongoJobRepo creates a new instance of Repository using MongoDB.
func NewMongoJobRepo() Repository {
	repo := &MongoJobRepo{coll: database.Collection("jobs")}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create job indexes: %v\n", err)
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// ensureIndexes creates indexes for fields frequently used in queries.
func (r *MongoJobRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "companyId", Value: 1}, {Key: "createdAt", Value: -1}}},
		{Keys: bson.D{{Key: "cleanerId", Value: 1}, {Key: "status", Value: 1}}},
		{Keys: bson.D{{Key: "status", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts a new job document.
func (r *MongoJobRepo) Create(job *models.Job) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	job.CreatedAt = now
	job.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, job); err != nil {
		return fmt.Errorf("failed to create job: %w", err)
	}
	return nil
}

// Update replaces the mutable fields of an existing job document.
func (r *MongoJobRepo) Update(job *models.Job) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	job.UpdatedAt = time.Now()
	filter := bson.M{"id": job.ID}
	update := bson.M{"$set": job}

	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update job with id %s: %w", job.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("job with id %s not found", job.ID)
	}
	return nil
}

// Delete removes a job document by its ID.
func (r *MongoJobRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete job with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("job with id %s not found", id)
	}
	return nil
}

// GetByID retrieves a job by its unique ID.
func (r *MongoJobRepo) GetByID(id string) (*models.Job, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var job models.Job
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&job); err != nil {
		return nil, fmt.Errorf("failed to fetch job with id %s: %w", id, err)
	}
	return &job, nil
}
