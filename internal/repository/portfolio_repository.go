package repository

import (
	"career-service/internal/models"
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

type PortfolioRepository struct {
	collection *mongo.Collection
}

func NewPortfolioRepository(db *mongo.Database) *PortfolioRepository {
	return &PortfolioRepository{
		collection: db.Collection("portfolios"),
	}
}

func (r *PortfolioRepository) FindByUserID(ctx context.Context, userID string) (*models.Portfolio, error) {
	var portfolio models.Portfolio
	err := r.collection.FindOne(ctx, bson.M{"userId": userID}).Decode(&portfolio)
	if err != nil {
		return nil, err
	}
	return &portfolio, nil
}

// Upsert writes the portfolio fields merge-style: the document is
// created on first save, createdAt is set only then.
func (r *PortfolioRepository) Upsert(ctx context.Context, userID string, portfolio *models.Portfolio) (*models.Portfolio, error) {
	currentTime := int(time.Now().Unix())

	filter := bson.M{"userId": userID}
	update := bson.M{
		"$set": bson.M{
			"name":               portfolio.Name,
			"summary":            portfolio.Summary,
			"skills":             portfolio.Skills,
			"experience":         portfolio.Experience,
			"activities":         portfolio.Activities,
			"metadata.updatedAt": currentTime,
		},
		"$setOnInsert": bson.M{
			"userId":             userID,
			"metadata.createdAt": currentTime,
		},
	}

	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var updated models.Portfolio
	err := r.collection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&updated)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert portfolio: %w", err)
	}
	return &updated, nil
}

func (r *PortfolioRepository) Delete(ctx context.Context, userID string) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"userId": userID})
	if err != nil {
		return fmt.Errorf("failed to delete portfolio: %w", err)
	}
	if result.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *PortfolioRepository) CreateIndexes(ctx context.Context) error {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "userId", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}

	_, err := r.collection.Indexes().CreateMany(ctx, indexes)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}
