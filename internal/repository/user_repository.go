// Package repository provides data access operations for the application.
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

// UserRepository defines the interface for user data operations
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindBySubject(ctx context.Context, subjectID string) (*models.User, error)
	LinkSubject(ctx context.Context, id primitive.ObjectID, subjectID string) error
	UpdateName(ctx context.Context, id primitive.ObjectID, name string) error
	SetTeam(ctx context.Context, id primitive.ObjectID, teamID *primitive.ObjectID, role models.Role) error
}

// userRepository implements UserRepository using MongoDB
type userRepository struct {
	collection *mongo.Collection
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *mongo.Database) UserRepository {
	return &userRepository{
		collection: db.Collection("users"),
	}
}

// Create inserts a new user into the database
func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	existing, _ := r.FindByEmail(ctx, user.Email)
	if existing != nil {
		return apperrors.ErrUserAlreadyExists
	}

	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now

	result, err := r.collection.InsertOne(ctx, user)
	if err != nil {
		return err
	}

	user.ID = result.InsertedID.(primitive.ObjectID)
	return nil
}

// FindByID finds a user by their ID
func (r *userRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	var user models.User

	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}

	return &user, nil
}

// FindByEmail finds a user by their email
func (r *userRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User

	err := r.collection.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}

	return &user, nil
}

// FindBySubject finds a user by their identity provider subject.
func (r *userRepository) FindBySubject(ctx context.Context, subjectID string) (*models.User, error) {
	var user models.User

	err := r.collection.FindOne(ctx, bson.M{"subjectId": subjectID}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}

	return &user, nil
}

// LinkSubject attaches an identity provider subject to an existing user.
func (r *userRepository) LinkSubject(ctx context.Context, id primitive.ObjectID, subjectID string) error {
	update := bson.M{
		"$set": bson.M{
			"subjectId": subjectID,
			"updatedAt": time.Now(),
		},
	}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return err
	}

	if result.MatchedCount == 0 {
		return apperrors.ErrUserNotFound
	}

	return nil
}

// UpdateName updates a user's display name.
func (r *userRepository) UpdateName(ctx context.Context, id primitive.ObjectID, name string) error {
	update := bson.M{
		"$set": bson.M{
			"name":      name,
			"updatedAt": time.Now(),
		},
	}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return err
	}

	if result.MatchedCount == 0 {
		return apperrors.ErrUserNotFound
	}

	return nil
}

// SetTeam updates a user's team affiliation and role. A nil teamID clears
// the affiliation.
func (r *userRepository) SetTeam(ctx context.Context, id primitive.ObjectID, teamID *primitive.ObjectID, role models.Role) error {
	set := bson.M{
		"role":      role,
		"updatedAt": time.Now(),
	}
	update := bson.M{"$set": set}

	if teamID != nil {
		set["teamId"] = *teamID
	} else {
		update["$unset"] = bson.M{"teamId": ""}
	}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return err
	}

	if result.MatchedCount == 0 {
		return apperrors.ErrUserNotFound
	}

	return nil
}
