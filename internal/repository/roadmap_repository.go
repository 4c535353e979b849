package repository

import (
	"career-service/internal/models"
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

type RoadmapRepository struct {
	collection *mongo.Collection
}

func NewRoadmapRepository(db *mongo.Database) *RoadmapRepository {
	return &RoadmapRepository{
		collection: db.Collection("roadmaps"),
	}
}

func (r *RoadmapRepository) FindByMajor(ctx context.Context, major models.Major) (*models.Roadmap, error) {
	var roadmap models.Roadmap
	err := r.collection.FindOne(ctx, bson.M{"_id": models.RoadmapDocID(major)}).Decode(&roadmap)
	if err != nil {
		return nil, err
	}
	return &roadmap, nil
}

// UpsertSteps replaces the full step list for a major, merge-style:
// the document is created when absent.
func (r *RoadmapRepository) UpsertSteps(ctx context.Context, major models.Major, steps []models.RoadmapStep) (*models.Roadmap, error) {
	filter := bson.M{"_id": models.RoadmapDocID(major)}
	update := bson.M{
		"$set": bson.M{
			"major": major,
			"steps": steps,
		},
	}

	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var roadmap models.Roadmap
	err := r.collection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&roadmap)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert roadmap: %w", err)
	}
	return &roadmap, nil
}

func (r *RoadmapRepository) Delete(ctx context.Context, major models.Major) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": models.RoadmapDocID(major)})
	if err != nil {
		return fmt.Errorf("failed to delete roadmap: %w", err)
	}
	if result.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
