package repository

import (
	"context"
	"time"

	"teamsync/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ActivityRepository defines the interface for activity record operations.
type ActivityRepository interface {
	Create(ctx context.Context, activity *models.Activity) error
	FindByTeamID(ctx context.Context, teamID primitive.ObjectID, limit int) ([]models.Activity, error)
	DeleteAllByTeamID(ctx context.Context, teamID primitive.ObjectID) error
}

// activityRepository implements ActivityRepository using MongoDB.
type activityRepository struct {
	collection *mongo.Collection
}

// NewActivityRepository creates a new ActivityRepository.
func NewActivityRepository(db *mongo.Database) ActivityRepository {
	return &activityRepository{
		collection: db.Collection("activities"),
	}
}

// Create inserts a new activity record into the database.
func (r *activityRepository) Create(ctx context.Context, activity *models.Activity) error {
	activity.ID = primitive.NewObjectID()
	if activity.CreatedAt.IsZero() {
		activity.CreatedAt = time.Now()
	}

	_, err := r.collection.InsertOne(ctx, activity)
	return err
}

// FindByTeamID returns the most recent activity records for a team.
func (r *activityRepository) FindByTeamID(ctx context.Context, teamID primitive.ObjectID, limit int) ([]models.Activity, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(int64(limit))

	cursor, err := r.collection.Find(ctx, bson.M{"teamId": teamID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var activities []models.Activity
	if err := cursor.All(ctx, &activities); err != nil {
		return nil, err
	}

	if activities == nil {
		activities = []models.Activity{}
	}

	return activities, nil
}

// DeleteAllByTeamID removes all activity records of a team (used when deleting a team).
func (r *activityRepository) DeleteAllByTeamID(ctx context.Context, teamID primitive.ObjectID) error {
	_, err := r.collection.DeleteMany(ctx, bson.M{"teamId": teamID})
	return err
}
