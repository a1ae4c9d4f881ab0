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
)

// TeamRepository defines the interface for team data operations.
type TeamRepository interface {
	Create(ctx context.Context, team *models.Team) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Team, error)
	FindByAdminID(ctx context.Context, adminID primitive.ObjectID) ([]models.Team, error)
	Update(ctx context.Context, id primitive.ObjectID, update *models.UpdateTeamRequest) (*models.Team, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// teamRepository implements TeamRepository using MongoDB.
type teamRepository struct {
	collection *mongo.Collection
}

// NewTeamRepository creates a new TeamRepository.
func NewTeamRepository(db *mongo.Database) TeamRepository {
	return &teamRepository{
		collection: db.Collection("teams"),
	}
}

// Create inserts a new team into the database.
func (r *teamRepository) Create(ctx context.Context, team *models.Team) error {
	team.ID = primitive.NewObjectID()
	team.CreatedAt = time.Now()
	team.UpdatedAt = time.Now()

	_, err := r.collection.InsertOne(ctx, team)
	return err
}

// FindByID retrieves a team by ID.
func (r *teamRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Team, error) {
	var team models.Team
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&team)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, err
	}

	return &team, nil
}

// FindByAdminID returns teams created by a user.
func (r *teamRepository) FindByAdminID(ctx context.Context, adminID primitive.ObjectID) ([]models.Team, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"adminId": adminID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var teams []models.Team
	if err := cursor.All(ctx, &teams); err != nil {
		return nil, err
	}

	if teams == nil {
		teams = []models.Team{}
	}

	return teams, nil
}

// Update updates a team's editable fields.
func (r *teamRepository) Update(ctx context.Context, id primitive.ObjectID, update *models.UpdateTeamRequest) (*models.Team, error) {
	updateDoc := bson.M{"updatedAt": time.Now()}

	if update.Name != nil {
		updateDoc["name"] = *update.Name
	}
	if update.Description != nil {
		updateDoc["description"] = *update.Description
	}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": updateDoc})
	if err != nil {
		return nil, err
	}

	if result.MatchedCount == 0 {
		return nil, apperrors.ErrTeamNotFound
	}

	return r.FindByID(ctx, id)
}

// Delete removes a team.
func (r *teamRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}

	if result.DeletedCount == 0 {
		return apperrors.ErrTeamNotFound
	}

	return nil
}
