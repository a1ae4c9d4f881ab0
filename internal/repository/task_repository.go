package repository

import (
	"context"
	"errors"
	"time"

	apperrors "teamsync/internal/errors"
	"teamsync/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// TaskRepository defines the interface for task data operations.
type TaskRepository interface {
	Create(ctx context.Context, task *models.Task) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Task, error)
	FindByProjectID(ctx context.Context, projectID primitive.ObjectID) ([]models.Task, error)
	MaxPosition(ctx context.Context, projectID primitive.ObjectID, status models.TaskStatus) (float64, bool, error)
	Update(ctx context.Context, id primitive.ObjectID, set bson.M) (*models.Task, error)
	Move(ctx context.Context, id primitive.ObjectID, fromStatus models.TaskStatus, fromPosition float64, toStatus models.TaskStatus, toPosition float64) error
	Delete(ctx context.Context, id, teamID primitive.ObjectID) error
	DeleteAllByProjectID(ctx context.Context, projectID primitive.ObjectID) error
	DeleteAllByTeamID(ctx context.Context, teamID primitive.ObjectID) error
}

// taskRepository implements TaskRepository using MongoDB.
type taskRepository struct {
	collection *mongo.Collection
}

// NewTaskRepository creates a new TaskRepository.
func NewTaskRepository(db *mongo.Database) TaskRepository {
	return &taskRepository{
		collection: db.Collection("tasks"),
	}
}

// Create inserts a new task into the database.
func (r *taskRepository) Create(ctx context.Context, task *models.Task) error {
	task.ID = primitive.NewObjectID()
	task.CreatedAt = time.Now()
	task.UpdatedAt = task.CreatedAt

	_, err := r.collection.InsertOne(ctx, task)
	return err
}

// FindByID retrieves a task by ID.
func (r *taskRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Task, error) {
	var task models.Task
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&task)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrTaskNotFound
		}
		return nil, err
	}

	return &task, nil
}

// FindByProjectID returns all tasks of a project ordered by column position.
func (r *taskRepository) FindByProjectID(ctx context.Context, projectID primitive.ObjectID) ([]models.Task, error) {
	opts := options.Find().SetSort(bson.D{
		{Key: "status", Value: 1},
		{Key: "position", Value: 1},
	})

	cursor, err := r.collection.Find(ctx, bson.M{"projectId": projectID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var tasks []models.Task
	if err := cursor.All(ctx, &tasks); err != nil {
		return nil, err
	}

	if tasks == nil {
		tasks = []models.Task{}
	}

	return tasks, nil
}

// MaxPosition returns the highest position in a column, and whether the
// column has any tasks at all.
func (r *taskRepository) MaxPosition(ctx context.Context, projectID primitive.ObjectID, status models.TaskStatus) (float64, bool, error) {
	filter := bson.M{
		"projectId": projectID,
		"status":    status,
	}
	opts := options.FindOne().SetSort(bson.D{{Key: "position", Value: -1}})

	var task models.Task
	err := r.collection.FindOne(ctx, filter, opts).Decode(&task)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return 0, false, nil
		}
		return 0, false, err
	}

	return task.Position, true, nil
}

// Update applies a prepared $set document to a task.
func (r *taskRepository) Update(ctx context.Context, id primitive.ObjectID, set bson.M) (*models.Task, error) {
	set["updatedAt"] = time.Now()

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return nil, err
	}

	if result.MatchedCount == 0 {
		return nil, apperrors.ErrTaskNotFound
	}

	return r.FindByID(ctx, id)
}

// Move repositions a task. The filter includes the status and position the
// caller read, so a task moved concurrently by someone else fails the match
// and surfaces as ErrTaskPositionConflict instead of clobbering their move.
func (r *taskRepository) Move(ctx context.Context, id primitive.ObjectID, fromStatus models.TaskStatus, fromPosition float64, toStatus models.TaskStatus, toPosition float64) error {
	filter := bson.M{
		"_id":      id,
		"status":   fromStatus,
		"position": fromPosition,
	}

	update := bson.M{
		"$set": bson.M{
			"status":    toStatus,
			"position":  toPosition,
			"updatedAt": time.Now(),
		},
	}

	result, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}

	if result.MatchedCount == 0 {
		// Distinguish a vanished task from a concurrent move.
		if _, err := r.FindByID(ctx, id); err != nil {
			return err
		}
		return apperrors.ErrTaskPositionConflict
	}

	return nil
}

// Delete removes a task.
func (r *taskRepository) Delete(ctx context.Context, id, teamID primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id, "teamId": teamID})
	if err != nil {
		return err
	}

	if result.DeletedCount == 0 {
		return apperrors.ErrTaskNotFound
	}

	return nil
}

// DeleteAllByProjectID removes all tasks of a project (used when deleting a project).
func (r *taskRepository) DeleteAllByProjectID(ctx context.Context, projectID primitive.ObjectID) error {
	_, err := r.collection.DeleteMany(ctx, bson.M{"projectId": projectID})
	return err
}

// DeleteAllByTeamID removes all tasks of a team (used when deleting a team).
func (r *taskRepository) DeleteAllByTeamID(ctx context.Context, teamID primitive.ObjectID) error {
	_, err := r.collection.DeleteMany(ctx, bson.M{"teamId": teamID})
	return err
}
