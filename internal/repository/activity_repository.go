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

// maxCatalogFetch caps admin catalog listings.
const maxCatalogFetch = 200

type ActivityRepository struct {
	collection *mongo.Collection
}

func NewActivityRepository(db *mongo.Database) *ActivityRepository {
	return &ActivityRepository{
		collection: db.Collection("activities"),
	}
}

func (r *ActivityRepository) New(ctx context.Context, activity *models.Activity) (*models.Activity, error) {
	if activity.ID.IsZero() {
		activity.ID = bson.NewObjectID()
	}
	if activity.CreatedAt.IsZero() {
		activity.CreatedAt = time.Now()
	}

	_, err := r.collection.InsertOne(ctx, activity)
	if err != nil {
		return nil, fmt.Errorf("failed to insert activity: %w", err)
	}
	return activity, nil
}

func (r *ActivityRepository) FindByID(ctx context.Context, id bson.ObjectID) (*models.Activity, error) {
	var activity models.Activity
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&activity)
	if err != nil {
		return nil, err
	}
	return &activity, nil
}

func (r *ActivityRepository) Update(ctx context.Context, id bson.ObjectID, activity *models.Activity) (*models.Activity, error) {
	activity.UpdatedAt = time.Now()

	filter := bson.M{"_id": id}
	update := bson.M{"$set": activity}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated models.Activity
	err := r.collection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&updated)
	if err != nil {
		return nil, fmt.Errorf("failed to update activity: %w", err)
	}
	return &updated, nil
}

func (r *ActivityRepository) Delete(ctx context.Context, id bson.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete activity: %w", err)
	}
	if result.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// FindForMajor is the eligibility filter at the store boundary:
// activities targeting the major, optionally narrowed to one category,
// newest first. Requires the category+createdAt composite index.
func (r *ActivityRepository) FindForMajor(ctx context.Context, major models.Major, category models.ActivityCategory) ([]models.Activity, error) {
	filter := bson.M{"targetMajors": string(major)}
	if category != "" && category != models.CategoryAll {
		filter["category"] = category
	}

	opts := options.Find()
	opts.SetSort(bson.M{"createdAt": -1})

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to find activities: %w", err)
	}
	defer cursor.Close(ctx)

	var activities []models.Activity
	if err = cursor.All(ctx, &activities); err != nil {
		return nil, fmt.Errorf("failed to decode activities: %w", err)
	}
	return activities, nil
}

// FindCatalog lists the admin catalog: optional category filter,
// createdAt descending, capped.
func (r *ActivityRepository) FindCatalog(ctx context.Context, category models.ActivityCategory) ([]models.Activity, error) {
	filter := bson.M{}
	if category != "" && category != models.CategoryAll {
		filter["category"] = category
	}

	opts := options.Find()
	opts.SetSort(bson.M{"createdAt": -1})
	opts.SetLimit(maxCatalogFetch)

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list activities: %w", err)
	}
	defer cursor.Close(ctx)

	var activities []models.Activity
	if err = cursor.All(ctx, &activities); err != nil {
		return nil, fmt.Errorf("failed to decode activities: %w", err)
	}
	return activities, nil
}

func (r *ActivityRepository) FindByIDs(ctx context.Context, ids []bson.ObjectID) ([]models.Activity, error) {
	if len(ids) == 0 {
		return []models.Activity{}, nil
	}

	filter := bson.M{"_id": bson.M{"$in": ids}}

	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to find activities by ids: %w", err)
	}
	defer cursor.Close(ctx)

	var activities []models.Activity
	if err = cursor.All(ctx, &activities); err != nil {
		return nil, fmt.Errorf("failed to decode activities: %w", err)
	}
	return activities, nil
}

func (r *ActivityRepository) CreateIndexes(ctx context.Context) error {
	indexes := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "targetMajors", Value: 1}, {Key: "createdAt", Value: -1}},
		},
		// Composite index backing the admin category listing.
		{
			Keys: bson.D{{Key: "category", Value: 1}, {Key: "createdAt", Value: -1}},
		},
		{
			Keys: bson.D{{Key: "createdAt", Value: -1}},
		},
		{
			Keys: bson.D{{Key: "applicationDeadline", Value: 1}},
		},
	}

	_, err := r.collection.Indexes().CreateMany(ctx, indexes)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}
