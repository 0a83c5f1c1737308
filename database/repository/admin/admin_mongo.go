package adminRepo

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

// MongoAdminRepo implements Repository using MongoDB.
type MongoAdminRepo struct {
	coll *mongo.Collection
}

// NewMongoAdminRepo creates a new instance of Repository using MongoDB.
func NewMongoAdminRepo() Repository {
	repo := &MongoAdminRepo{coll: database.Collection("admins")}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create admin indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoAdminRepo) ensureIndexes() error {
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

// Create inserts a new admin document.
func (r *MongoAdminRepo) Create(admin *models.Admin) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	admin.CreatedAt = now
	admin.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, admin); err != nil {
		return fmt.Errorf("failed to create admin: %w", err)
	}
	return nil
}

// Update modifies an existing admin document.
func (r *MongoAdminRepo) Update(admin *models.Admin) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	admin.UpdatedAt = time.Now()
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": admin.ID}, bson.M{"$set": admin})
	if err != nil {
		return fmt.Errorf("failed to update admin with id %s: %w", admin.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("admin with id %s not found", admin.ID)
	}
	return nil
}

// GetByID retrieves an admin by its unique ID.
func (r *MongoAdminRepo) GetByID(id string) (*models.Admin, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var admin models.Admin
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&admin); err != nil {
		return nil, fmt.Errorf("failed to fetch admin with id %s: %w", id, err)
	}
	return &admin, nil
}

// GetByEmail retrieves an admin by email address.
func (r *MongoAdminRepo) GetByEmail(email string) (*models.Admin, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var admin models.Admin
	err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&admin)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch admin with email %s: %w", email, err)
	}
	return &admin, nil
}

// SetTokenHash stores the hash of the admin's active auth token.
func (r *MongoAdminRepo) SetTokenHash(id, tokenHash string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{"tokenHash": tokenHash, "updatedAt": time.Now()}}
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to update admin with id %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("admin with id %s not found", id)
	}
	return nil
}

// CompanyIDs lists every distinct company ID. The analytics refresher
// uses this to know which dashboards to keep warm.
func (r *MongoAdminRepo) CompanyIDs() ([]string, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	values, err := r.coll.Distinct(ctx, "companyId", bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to list company ids: %w", err)
	}

	ids := make([]string, 0, len(values))
	for _, v := range values {
		if s, ok := v.(string); ok && s != "" {
			ids = append(ids, s)
		}
	}
	return ids, nil
}
