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

// MessageRepository defines the interface for chat message data operations.
// Messages are append-only.
type MessageRepository interface {
	Create(ctx context.Context, message *models.Message) error
	FindByTeamID(ctx context.Context, teamID primitive.ObjectID, limit int, before *time.Time) ([]models.Message, error)
	DeleteAllByTeamID(ctx context.Context, teamID primitive.ObjectID) error
}

// messageRepository implements MessageRepository using MongoDB.
type messageRepository struct {
	collection *mongo.Collection
}

// NewMessageRepository creates a new MessageRepository.
func NewMessageRepository(db *mongo.Database) MessageRepository {
	return &messageRepository{
		collection: db.Collection("messages"),
	}
}

// Create inserts a new message into the database.
func (r *messageRepository) Create(ctx context.Context, message *models.Message) error {
	message.ID = primitive.NewObjectID()
	message.CreatedAt = time.Now()

	_, err := r.collection.InsertOne(ctx, message)
	return err
}

// FindByTeamID returns a page of team messages, newest first. A non-nil
// before cursor returns messages older than that instant.
func (r *messageRepository) FindByTeamID(ctx context.Context, teamID primitive.ObjectID, limit int, before *time.Time) ([]models.Message, error) {
	filter := bson.M{"teamId": teamID}
	if before != nil {
		filter["createdAt"] = bson.M{"$lt": *before}
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(int64(limit))

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var messages []models.Message
	if err := cursor.All(ctx, &messages); err != nil {
		return nil, err
	}

	if messages == nil {
		messages = []models.Message{}
	}

	return messages, nil
}

// DeleteAllByTeamID removes all messages of a team (used when deleting a team).
func (r *messageRepository) DeleteAllByTeamID(ctx context.Context, teamID primitive.ObjectID) error {
	_, err := r.collection.DeleteMany(ctx, bson.M{"teamId": teamID})
	return err
}
