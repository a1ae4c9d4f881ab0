package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	apperrors "teamsync/internal/errors"
	"teamsync/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// managerIndexName is the partial unique index that caps each team at one
// accepted manager. Duplicate-key errors naming it mean a concurrent
// assignment won.
const managerIndexName = "one_manager_per_team"

// MembershipRepository defines the interface for membership data operations.
type MembershipRepository interface {
	Create(ctx context.Context, membership *models.Membership) error
	FindByTeamID(ctx context.Context, teamID primitive.ObjectID) ([]models.Membership, error)
	FindByTeamAndUser(ctx context.Context, teamID, userID primitive.ObjectID) (*models.Membership, error)
	FindManager(ctx context.Context, teamID primitive.ObjectID) (*models.Membership, error)
	UpdateRole(ctx context.Context, teamID, userID primitive.ObjectID, role models.Role) error
	Delete(ctx context.Context, teamID, userID primitive.ObjectID) error
	DeleteAllByTeamID(ctx context.Context, teamID primitive.ObjectID) error
}

// membershipRepository implements MembershipRepository using MongoDB.
type membershipRepository struct {
	collection *mongo.Collection
}

// NewMembershipRepository creates a new MembershipRepository.
func NewMembershipRepository(db *mongo.Database) MembershipRepository {
	return &membershipRepository{
		collection: db.Collection("memberships"),
	}
}

// Create inserts a new membership into the database.
func (r *membershipRepository) Create(ctx context.Context, membership *models.Membership) error {
	membership.ID = primitive.NewObjectID()
	membership.JoinedAt = time.Now()

	_, err := r.collection.InsertOne(ctx, membership)
	if err != nil {
		return translateDuplicate(err)
	}
	return nil
}

// FindByTeamID returns all memberships of a team.
func (r *membershipRepository) FindByTeamID(ctx context.Context, teamID primitive.ObjectID) ([]models.Membership, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"teamId": teamID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var memberships []models.Membership
	if err := cursor.All(ctx, &memberships); err != nil {
		return nil, err
	}

	if memberships == nil {
		memberships = []models.Membership{}
	}

	return memberships, nil
}

// FindByTeamAndUser returns a membership by team and user ID.
func (r *membershipRepository) FindByTeamAndUser(ctx context.Context, teamID, userID primitive.ObjectID) (*models.Membership, error) {
	filter := bson.M{
		"teamId": teamID,
		"userId": userID,
	}

	var membership models.Membership
	err := r.collection.FindOne(ctx, filter).Decode(&membership)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrMemberNotFound
		}
		return nil, err
	}

	return &membership, nil
}

// FindManager returns the team's accepted manager, if any.
func (r *membershipRepository) FindManager(ctx context.Context, teamID primitive.ObjectID) (*models.Membership, error) {
	filter := bson.M{
		"teamId": teamID,
		"role":   models.RoleManager,
		"status": models.StatusAccepted,
	}

	var membership models.Membership
	err := r.collection.FindOne(ctx, filter).Decode(&membership)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrMemberNotFound
		}
		return nil, err
	}

	return &membership, nil
}

// UpdateRole updates a membership's role. Promotion to MANAGER races against
// the partial unique index, so a concurrent winner surfaces as
// ErrManagerAlreadyAssigned rather than a second manager.
func (r *membershipRepository) UpdateRole(ctx context.Context, teamID, userID primitive.ObjectID, role models.Role) error {
	filter := bson.M{
		"teamId": teamID,
		"userId": userID,
	}

	update := bson.M{
		"$set": bson.M{"role": role},
	}

	result, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return translateDuplicate(err)
	}

	if result.MatchedCount == 0 {
		return apperrors.ErrMemberNotFound
	}

	return nil
}

// Delete removes a membership.
func (r *membershipRepository) Delete(ctx context.Context, teamID, userID primitive.ObjectID) error {
	filter := bson.M{
		"teamId": teamID,
		"userId": userID,
	}

	result, err := r.collection.DeleteOne(ctx, filter)
	if err != nil {
		return err
	}

	if result.DeletedCount == 0 {
		return apperrors.ErrMemberNotFound
	}

	return nil
}

// DeleteAllByTeamID removes all memberships of a team (used when deleting a team).
func (r *membershipRepository) DeleteAllByTeamID(ctx context.Context, teamID primitive.ObjectID) error {
	_, err := r.collection.DeleteMany(ctx, bson.M{"teamId": teamID})
	return err
}

// translateDuplicate maps duplicate-key write errors onto domain errors.
func translateDuplicate(err error) error {
	if !mongo.IsDuplicateKeyError(err) {
		return err
	}
	if strings.Contains(err.Error(), managerIndexName) {
		return apperrors.ErrManagerAlreadyAssigned
	}
	return apperrors.ErrAlreadyMember
}
