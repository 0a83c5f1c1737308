package quoteRepo

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

// MongoQuoteRepo implements Repository using MongoDB.
type MongoQuoteRepo struct {
	coll *mongo.Collection
}

// NewMongoQuoteRepo creates a new instance of Repository using MongoDB.
func NewMongoQuoteRepo() Repository {
	repo := &MongoQuoteRepo{coll: database.Collection("quotes")}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create quote indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoQuoteRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "companyId", Value: 1}, {Key: "createdAt", Value: -1}}},
	}

	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts a new quote document.
func (r *MongoQuoteRepo) Create(quote *models.Quote) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	quote.CreatedAt = time.Now()
	if _, err := r.coll.InsertOne(ctx, quote); err != nil {
		return fmt.Errorf("failed to create quote: %w", err)
	}
	return nil
}

// GetByID retrieves a quote by its unique ID.
func (r *MongoQuoteRepo) GetByID(id string) (*models.Quote, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var quote models.Quote
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&quote); err != nil {
		return nil, fmt.Errorf("failed to fetch quote with id %s: %w", id, err)
	}
	return &quote, nil
}

// GetByCompany retrieves every quote belonging to a company, newest first.
func (r *MongoQuoteRepo) GetByCompany(companyID string) ([]models.Quote, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{"companyId": companyID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve quotes for company %s: %w", companyID, err)
	}
	defer cursor.Close(ctx)

	var quotes []models.Quote
	for cursor.Next(ctx) {
		var q models.Quote
		if err := cursor.Decode(&q); err != nil {
			return nil, fmt.Errorf("failed to decode quote: %w", err)
		}
		quotes = append(quotes, q)
	}
	return quotes, nil
}

// UpdateStatus records what became of a quote.
func (r *MongoQuoteRepo) UpdateStatus(id string, status models.QuoteStatus) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": bson.M{"status": status}})
	if err != nil {
		return fmt.Errorf("failed to update quote %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("quote with id %s not found", id)
	}
	return nil
}

// Delete removes a quote document by its ID.
func (r *MongoQuoteRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete quote with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("quote with id %s not found", id)
	}
	return nil
}
