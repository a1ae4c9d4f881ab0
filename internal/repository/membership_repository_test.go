package repository

import (
	"context"
	"testing"

	apperrors "teamsync/internal/errors"
	"teamsync/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ensureMembershipIndexes creates the unique indexes the repository relies
// on for duplicate detection, matching the production migration.
func ensureMembershipIndexes(t *testing.T, tdb *TestDB) {
	t.Helper()

	ctx := context.Background()
	coll := tdb.Database.Collection("memberships")

	_, err := coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "teamId", Value: 1},
				{Key: "userId", Value: 1},
			},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "teamId", Value: 1}},
			Options: options.Index().
				SetName(managerIndexName).
				SetUnique(true).
				SetPartialFilterExpression(bson.D{
					{Key: "role", Value: "MANAGER"},
					{Key: "status", Value: "ACCEPTED"},
				}),
		},
	})
	require.NoError(t, err, "Failed to create membership indexes")
}

func TestMembershipRepository_Create(t *testing.T) {
	tdb := SetupTestDB(t)
	defer tdb.Cleanup(t)

	ensureMembershipIndexes(t, tdb)
	repo := NewMembershipRepository(tdb.Database)
	ctx := context.Background()

	t.Run("successfully creates membership", func(t *testing.T) {
		tdb.ClearCollection(t, "memberships")

		membership := &models.Membership{
			TeamID: primitive.NewObjectID(),
			UserID: primitive.NewObjectID(),
			Role:   models.RoleMember,
			Status: models.StatusAccepted,
		}

		err := repo.Create(ctx, membership)

		require.NoError(t, err)
		assert.False(t, membership.ID.IsZero())
		assert.NotZero(t, membership.JoinedAt)
	})

	t.Run("rejects duplicate membership", func(t *testing.T) {
		tdb.ClearCollection(t, "memberships")

		teamID := primitive.NewObjectID()
		userID := primitive.NewObjectID()

		first := &models.Membership{
			TeamID: teamID,
			UserID: userID,
			Role:   models.RoleMember,
			Status: models.StatusAccepted,
		}
		require.NoError(t, repo.Create(ctx, first))

		second := &models.Membership{
			TeamID: teamID,
			UserID: userID,
			Role:   models.RoleMember,
			Status: models.StatusAccepted,
		}
		err := repo.Create(ctx, second)

		assert.Equal(t, apperrors.ErrAlreadyMember, err)
	})

	t.Run("rejects second accepted manager in same team", func(t *testing.T) {
		tdb.ClearCollection(t, "memberships")

		teamID := primitive.NewObjectID()

		first := &models.Membership{
			TeamID: teamID,
			UserID: primitive.NewObjectID(),
			Role:   models.RoleManager,
			Status: models.StatusAccepted,
		}
		require.NoError(t, repo.Create(ctx, first))

		second := &models.Membership{
			TeamID: teamID,
			UserID: primitive.NewObjectID(),
			Role:   models.RoleManager,
			Status: models.StatusAccepted,
		}
		err := repo.Create(ctx, second)

		assert.Equal(t, apperrors.ErrManagerAlreadyAssigned, err)
	})

	t.Run("allows managers in different teams", func(t *testing.T) {
		tdb.ClearCollection(t, "memberships")

		for i := 0; i < 2; i++ {
			membership := &models.Membership{
				TeamID: primitive.NewObjectID(),
				UserID: primitive.NewObjectID(),
				Role:   models.RoleManager,
				Status: models.StatusAccepted,
			}
			require.NoError(t, repo.Create(ctx, membership))
		}
	})
}

func TestMembershipRepository_FindByTeamID(t *testing.T) {
	tdb := SetupTestDB(t)
	defer tdb.Cleanup(t)

	repo := NewMembershipRepository(tdb.Database)
	ctx := context.Background()

	t.Run("returns all memberships of team", func(t *testing.T) {
		tdb.ClearCollection(t, "memberships")

		teamID := primitive.NewObjectID()

		for i := 0; i < 3; i++ {
			membership := &models.Membership{
				TeamID: teamID,
				UserID: primitive.NewObjectID(),
				Role:   models.RoleMember,
				Status: models.StatusAccepted,
			}
			require.NoError(t, repo.Create(ctx, membership))
		}

		other := &models.Membership{
			TeamID: primitive.NewObjectID(),
			UserID: primitive.NewObjectID(),
			Role:   models.RoleMember,
			Status: models.StatusAccepted,
		}
		require.NoError(t, repo.Create(ctx, other))

		memberships, err := repo.FindByTeamID(ctx, teamID)

		require.NoError(t, err)
		assert.Len(t, memberships, 3)
	})

	t.Run("returns empty slice when no memberships", func(t *testing.T) {
		tdb.ClearCollection(t, "memberships")

		memberships, err := repo.FindByTeamID(ctx, primitive.NewObjectID())

		require.NoError(t, err)
		assert.NotNil(t, memberships)
		assert.Len(t, memberships, 0)
	})
}

func TestMembershipRepository_FindByTeamAndUser(t *testing.T) {
	tdb := SetupTestDB(t)
	defer tdb.Cleanup(t)

	repo := NewMembershipRepository(tdb.Database)
	ctx := context.Background()

	t.Run("finds membership by team and user", func(t *testing.T) {
		tdb.ClearCollection(t, "memberships")

		teamID := primitive.NewObjectID()
		userID := primitive.NewObjectID()

		membership := &models.Membership{
			TeamID: teamID,
			UserID: userID,
			Role:   models.RoleAdmin,
			Status: models.StatusAccepted,
		}
		require.NoError(t, repo.Create(ctx, membership))

		found, err := repo.FindByTeamAndUser(ctx, teamID, userID)

		require.NoError(t, err)
		assert.Equal(t, teamID, found.TeamID)
		assert.Equal(t, userID, found.UserID)
		assert.Equal(t, models.RoleAdmin, found.Role)
	})

	t.Run("returns error when membership not found", func(t *testing.T) {
		tdb.ClearCollection(t, "memberships")

		found, err := repo.FindByTeamAndUser(ctx, primitive.NewObjectID(), primitive.NewObjectID())

		assert.Nil(t, found)
		assert.Equal(t, apperrors.ErrMemberNotFound, err)
	})
}

func TestMembershipRepository_FindManager(t *testing.T) {
	tdb := SetupTestDB(t)
	defer tdb.Cleanup(t)

	repo := NewMembershipRepository(tdb.Database)
	ctx := context.Background()

	t.Run("finds accepted manager", func(t *testing.T) {
		tdb.ClearCollection(t, "memberships")

		teamID := primitive.NewObjectID()
		managerID := primitive.NewObjectID()

		manager := &models.Membership{
			TeamID: teamID,
			UserID: managerID,
			Role:   models.RoleManager,
			Status: models.StatusAccepted,
		}
		require.NoError(t, repo.Create(ctx, manager))

		member := &models.Membership{
			TeamID: teamID,
			UserID: primitive.NewObjectID(),
			Role:   models.RoleMember,
			Status: models.StatusAccepted,
		}
		require.NoError(t, repo.Create(ctx, member))

		found, err := repo.FindManager(ctx, teamID)

		require.NoError(t, err)
		assert.Equal(t, managerID, found.UserID)
	})

	t.Run("returns error when team has no manager", func(t *testing.T) {
		tdb.ClearCollection(t, "memberships")

		found, err := repo.FindManager(ctx, primitive.NewObjectID())

		assert.Nil(t, found)
		assert.Equal(t, apperrors.ErrMemberNotFound, err)
	})
}

func TestMembershipRepository_UpdateRole(t *testing.T) {
	tdb := SetupTestDB(t)
	defer tdb.Cleanup(t)

	ensureMembershipIndexes(t, tdb)
	repo := NewMembershipRepository(tdb.Database)
	ctx := context.Background()

	t.Run("updates membership role", func(t *testing.T) {
		tdb.ClearCollection(t, "memberships")

		teamID := primitive.NewObjectID()
		userID := primitive.NewObjectID()

		membership := &models.Membership{
			TeamID: teamID,
			UserID: userID,
			Role:   models.RoleMember,
			Status: models.StatusAccepted,
		}
		require.NoError(t, repo.Create(ctx, membership))

		err := repo.UpdateRole(ctx, teamID, userID, models.RoleManager)

		require.NoError(t, err)

		found, err := repo.FindByTeamAndUser(ctx, teamID, userID)
		require.NoError(t, err)
		assert.Equal(t, models.RoleManager, found.Role)
	})

	t.Run("rejects promotion when team already has a manager", func(t *testing.T) {
		tdb.ClearCollection(t, "memberships")

		teamID := primitive.NewObjectID()
		userID := primitive.NewObjectID()

		manager := &models.Membership{
			TeamID: teamID,
			UserID: primitive.NewObjectID(),
			Role:   models.RoleManager,
			Status: models.StatusAccepted,
		}
		require.NoError(t, repo.Create(ctx, manager))

		membership := &models.Membership{
			TeamID: teamID,
			UserID: userID,
			Role:   models.RoleMember,
			Status: models.StatusAccepted,
		}
		require.NoError(t, repo.Create(ctx, membership))

		err := repo.UpdateRole(ctx, teamID, userID, models.RoleManager)

		assert.Equal(t, apperrors.ErrManagerAlreadyAssigned, err)
	})

	t.Run("returns error for non-existent membership", func(t *testing.T) {
		tdb.ClearCollection(t, "memberships")

		err := repo.UpdateRole(ctx, primitive.NewObjectID(), primitive.NewObjectID(), models.RoleManager)

		assert.Equal(t, apperrors.ErrMemberNotFound, err)
	})
}

func TestMembershipRepository_Delete(t *testing.T) {
	tdb := SetupTestDB(t)
	defer tdb.Cleanup(t)

	repo := NewMembershipRepository(tdb.Database)
	ctx := context.Background()

	t.Run("deletes membership", func(t *testing.T) {
		tdb.ClearCollection(t, "memberships")

		teamID := primitive.NewObjectID()
		userID := primitive.NewObjectID()

		membership := &models.Membership{
			TeamID: teamID,
			UserID: userID,
			Role:   models.RoleMember,
			Status: models.StatusAccepted,
		}
		require.NoError(t, repo.Create(ctx, membership))

		err := repo.Delete(ctx, teamID, userID)

		require.NoError(t, err)

		found, err := repo.FindByTeamAndUser(ctx, teamID, userID)
		assert.Nil(t, found)
		assert.Equal(t, apperrors.ErrMemberNotFound, err)
	})

	t.Run("returns error for non-existent membership", func(t *testing.T) {
		tdb.ClearCollection(t, "memberships")

		err := repo.Delete(ctx, primitive.NewObjectID(), primitive.NewObjectID())

		assert.Equal(t, apperrors.ErrMemberNotFound, err)
	})
}

func TestMembershipRepository_DeleteAllByTeamID(t *testing.T) {
	tdb := SetupTestDB(t)
	defer tdb.Cleanup(t)

	repo := NewMembershipRepository(tdb.Database)
	ctx := context.Background()

	t.Run("deletes all memberships of team", func(t *testing.T) {
		tdb.ClearCollection(t, "memberships")

		teamID := primitive.NewObjectID()
		otherTeamID := primitive.NewObjectID()

		for i := 0; i < 3; i++ {
			membership := &models.Membership{
				TeamID: teamID,
				UserID: primitive.NewObjectID(),
				Role:   models.RoleMember,
				Status: models.StatusAccepted,
			}
			require.NoError(t, repo.Create(ctx, membership))
		}

		other := &models.Membership{
			TeamID: otherTeamID,
			UserID: primitive.NewObjectID(),
			Role:   models.RoleMember,
			Status: models.StatusAccepted,
		}
		require.NoError(t, repo.Create(ctx, other))

		err := repo.DeleteAllByTeamID(ctx, teamID)

		require.NoError(t, err)

		memberships, err := repo.FindByTeamID(ctx, teamID)
		require.NoError(t, err)
		assert.Len(t, memberships, 0)

		otherMemberships, err := repo.FindByTeamID(ctx, otherTeamID)
		require.NoError(t, err)
		assert.Len(t, otherMemberships, 1)
	})
}
