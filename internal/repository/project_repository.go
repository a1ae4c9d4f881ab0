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

// ProjectRepository defines the interface for project data operations.
type ProjectRepository interface {
	Create(ctx context.Context, project *models.Project) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Project, error)
	FindByTeamID(ctx context.Context, teamID primitive.ObjectID) ([]models.Project, error)
	Update(ctx context.Context, id, teamID primitive.ObjectID, update *models.UpdateProjectRequest) (*models.Project, error)
	Delete(ctx context.Context, id, teamID primitive.ObjectID) error
	DeleteAllByTeamID(ctx context.Context, teamID primitive.ObjectID) error
}

// projectRepository implements ProjectRepository using MongoDB.
type projectRepository struct {
	collection *mongo.Collection
}

// NewProjectRepository creates a new ProjectRepository.
func NewProjectRepository(db *mongo.Database) ProjectRepository {
	return &projectRepository{
		collection: db.Collection("projects"),
	}
}

// Create inserts a new project into the database.
func (r *projectRepository) Create(ctx context.Context, project *models.Project) error {
	project.ID = primitive.NewObjectID()
	project.CreatedAt = time.Now()
	project.UpdatedAt = time.Now()

	_, err := r.collection.InsertOne(ctx, project)
	return err
}

// FindByID retrieves a project by ID.
func (r *projectRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Project, error) {
	var project models.Project
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&project)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrProjectNotFound
		}
		return nil, err
	}

	return &project, nil
}

// FindByTeamID returns all projects of a team, newest first.
func (r *projectRepository) FindByTeamID(ctx context.Context, teamID primitive.ObjectID) ([]models.Project, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := r.collection.Find(ctx, bson.M{"teamId": teamID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var projects []models.Project
	if err := cursor.All(ctx, &projects); err != nil {
		return nil, err
	}

	if projects == nil {
		projects = []models.Project{}
	}

	return projects, nil
}

// Update updates a project's editable fields. The teamId filter keeps the
// write scoped to the caller's team.
func (r *projectRepository) Update(ctx context.Context, id, teamID primitive.ObjectID, update *models.UpdateProjectRequest) (*models.Project, error) {
	updateDoc := bson.M{"updatedAt": time.Now()}

	if update.Name != nil {
		updateDoc["name"] = *update.Name
	}
	if update.Description != nil {
		updateDoc["description"] = *update.Description
	}

	filter := bson.M{"_id": id, "teamId": teamID}

	result, err := r.collection.UpdateOne(ctx, filter, bson.M{"$set": updateDoc})
	if err != nil {
		return nil, err
	}

	if result.MatchedCount == 0 {
		return nil, apperrors.ErrProjectNotFound
	}

	return r.FindByID(ctx, id)
}

// Delete removes a project.
func (r *projectRepository) Delete(ctx context.Context, id, teamID primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id, "teamId": teamID})
	if err != nil {
		return err
	}

	if result.DeletedCount == 0 {
		return apperrors.ErrProjectNotFound
	}

	return nil
}

// DeleteAllByTeamID removes all projects of a team (used when deleting a team).
func (r *projectRepository) DeleteAllByTeamID(ctx context.Context, teamID primitive.ObjectID) error {
	_, err := r.collection.DeleteMany(ctx, bson.M{"teamId": teamID})
	return err
}
