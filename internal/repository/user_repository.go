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

type UserRepository struct {
	collection *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{
		collection: db.Collection("users"),
	}
}

func (r *UserRepository) New(ctx context.Context, profile *models.UserProfile) (*models.UserProfile, error) {
	if profile.ID.IsZero() {
		profile.ID = bson.NewObjectID()
	}
	if profile.Role == "" {
		profile.Role = models.RoleUser
	}
	if profile.Competencies == nil {
		profile.Competencies = []string{}
	}

	currentTime := int(time.Now().Unix())
	if profile.Metadata.CreatedAt == 0 {
		profile.Metadata.CreatedAt = currentTime
	}
	profile.Metadata.UpdatedAt = currentTime

	_, err := r.collection.InsertOne(ctx, profile)
	if err != nil {
		return nil, fmt.Errorf("failed to insert profile: %w", err)
	}
	return profile, nil
}

func (r *UserRepository) FindByUserID(ctx context.Context, userID string) (*models.UserProfile, error) {
	var profile models.UserProfile
	err := r.collection.FindOne(ctx, bson.M{"userId": userID}).Decode(&profile)
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// MergeFields applies a partial update, last write wins. Returns the
// document after the update.
func (r *UserRepository) MergeFields(ctx context.Context, userID string, fields bson.M) (*models.UserProfile, error) {
	fields["metadata.updatedAt"] = int(time.Now().Unix())

	filter := bson.M{"userId": userID}
	update := bson.M{"$set": fields}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated models.UserProfile
	err := r.collection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&updated)
	if err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}

	return &updated, nil
}

func (r *UserRepository) SetCompetencies(ctx context.Context, userID string, competencies []string) (*models.UserProfile, error) {
	return r.MergeFields(ctx, userID, bson.M{"competencies": competencies})
}

func (r *UserRepository) PushCompletedActivity(ctx context.Context, userID string, activity models.MyActivity) (*models.UserProfile, error) {
	filter := bson.M{"userId": userID}
	update := bson.M{
		"$push": bson.M{"completedActivities": activity},
		"$set":  bson.M{"metadata.updatedAt": int(time.Now().Unix())},
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated models.UserProfile
	err := r.collection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&updated)
	if err != nil {
		return nil, fmt.Errorf("failed to add completed activity: %w", err)
	}
	return &updated, nil
}

func (r *UserRepository) PullCompletedActivity(ctx context.Context, userID, activityID string) (*models.UserProfile, error) {
	filter := bson.M{"userId": userID}
	update := bson.M{
		"$pull": bson.M{"completedActivities": bson.M{"id": activityID}},
		"$set":  bson.M{"metadata.updatedAt": int(time.Now().Unix())},
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated models.UserProfile
	err := r.collection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&updated)
	if err != nil {
		return nil, fmt.Errorf("failed to remove completed activity: %w", err)
	}
	return &updated, nil
}

func (r *UserRepository) SetLikedActivityIDs(ctx context.Context, userID string, likedIDs []string) error {
	filter := bson.M{"userId": userID}
	update := bson.M{
		"$set": bson.M{
			"likedActivityIds":   likedIDs,
			"metadata.updatedAt": int(time.Now().Unix()),
		},
	}

	result, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update liked activities: %w", err)
	}
	if result.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *UserRepository) Delete(ctx context.Context, userID string) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"userId": userID})
	if err != nil {
		return fmt.Errorf("failed to delete profile: %w", err)
	}
	if result.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *UserRepository) CreateIndexes(ctx context.Context) error {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "userId", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "email", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "major", Value: 1}, {Key: "grade", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "metadata.createdAt", Value: -1}},
		},
	}

	_, err := r.collection.Indexes().CreateMany(ctx, indexes)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}
