package cleanerRepo

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

// MongoCleanerRepo implements Repository using MongoDB.
type MongoCleanerRepo struct {
	coll *mongo.Collection
}

// NewMongoCleanerRepo creates a new instance of Repository using MongoDB.
func NewMongoCleanerRepo() Repository {
	repo := &MongoCleanerRepo{coll: database.Collection("cleaners")}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create cleaner indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoCleanerRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "companyId", Value: 1}}},
	}

	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts a new cleaner document.
func (r *MongoCleanerRepo) Create(cleaner *models.Cleaner) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	cleaner.CreatedAt = now
	cleaner.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, cleaner); err != nil {
		return fmt.Errorf("failed to create cleaner: %w", err)
	}
	return nil
}

// Update modifies an existing cleaner document.
func (r *MongoCleanerRepo) Update(cleaner *models.Cleaner) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	cleaner.UpdatedAt = time.Now()
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": cleaner.ID}, bson.M{"$set": cleaner})
	if err != nil {
		return fmt.Errorf("failed to update cleaner with id %s: %w", cleaner.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("cleaner with id %s not found", cleaner.ID)
	}
	return nil
}

// Delete removes a cleaner document by its ID.
func (r *MongoCleanerRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete cleaner with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("cleaner with id %s not found", id)
	}
	return nil
}

// GetByID retrieves a cleaner by its unique ID.
func (r *MongoCleanerRepo) GetByID(id string) (*models.Cleaner, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var cleaner models.Cleaner
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&cleaner); err != nil {
		return nil, fmt.Errorf("failed to fetch cleaner with id %s: %w", id, err)
	}
	return &cleaner, nil
}

// GetByEmail retrieves a cleaner by email address.
func (r *MongoCleanerRepo) GetByEmail(email string) (*models.Cleaner, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var cleaner models.Cleaner
	err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&cleaner)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch cleaner with email %s: %w", email, err)
	}
	return &cleaner, nil
}

// GetByCompany retrieves every cleaner belonging to a company.
func (r *MongoCleanerRepo) GetByCompany(companyID string) ([]models.Cleaner, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"companyId": companyID})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve cleaners for company %s: %w", companyID, err)
	}
	defer cursor.Close(ctx)

	var cleaners []models.Cleaner
	for cursor.Next(ctx) {
		var c models.Cleaner
		if err := cursor.Decode(&c); err != nil {
			return nil, fmt.Errorf("failed to decode cleaner: %w", err)
		}
		cleaners = append(cleaners, c)
	}
	return cleaners, nil
}

// SetTokenHash stores the hash of the cleaner's active auth token.
func (r *MongoCleanerRepo) SetTokenHash(id, tokenHash string) error {
	return r.setField(id, "tokenHash", tokenHash)
}

// SetFCMToken stores the cleaner's push notification token.
func (r *MongoCleanerRepo) SetFCMToken(id, fcmToken string) error {
	return r.setField(id, "fcmToken", fcmToken)
}

func (r *MongoCleanerRepo) setField(id, field string, value interface{}) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{field: value, "updatedAt": time.Now()}}
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to update cleaner with id %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("cleaner with id %s not found", id)
	}
	return nil
}
