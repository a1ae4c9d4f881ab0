package repository

import (
	"context"
	"testing"

	apperrors "teamsync/internal/errors"
	"teamsync/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestUserRepository_Create(t *testing.T) {
	tdb := SetupTestDB(t)
	defer tdb.Cleanup(t)

	repo := NewUserRepository(tdb.Database)
	ctx := context.Background()

	t.Run("successfully creates user", func(t *testing.T) {
		tdb.ClearCollection(t, "users")

		user := &models.User{
			SubjectID: "subject-1",
			Email:     "alice@example.com",
			Name:      "Alice",
			Role:      models.RoleMember,
		}

		err := repo.Create(ctx, user)

		require.NoError(t, err)
		assert.False(t, user.ID.IsZero())
		assert.NotZero(t, user.CreatedAt)
	})

	t.Run("rejects duplicate email", func(t *testing.T) {
		tdb.ClearCollection(t, "users")

		first := &models.User{Email: "bob@example.com", Name: "Bob", Role: models.RoleMember}
		require.NoError(t, repo.Create(ctx, first))

		second := &models.User{Email: "bob@example.com", Name: "Robert", Role: models.RoleMember}
		err := repo.Create(ctx, second)

		assert.Equal(t, apperrors.ErrUserAlreadyExists, err)
	})
}

func TestUserRepository_FindBySubject(t *testing.T) {
	tdb := SetupTestDB(t)
	defer tdb.Cleanup(t)

	repo := NewUserRepository(tdb.Database)
	ctx := context.Background()

	t.Run("finds user by subject", func(t *testing.T) {
		tdb.ClearCollection(t, "users")

		user := &models.User{
			SubjectID: "subject-42",
			Email:     "carol@example.com",
			Name:      "Carol",
			Role:      models.RoleMember,
		}
		require.NoError(t, repo.Create(ctx, user))

		found, err := repo.FindBySubject(ctx, "subject-42")

		require.NoError(t, err)
		assert.Equal(t, user.ID, found.ID)
		assert.Equal(t, "carol@example.com", found.Email)
	})

	t.Run("returns error when subject unknown", func(t *testing.T) {
		tdb.ClearCollection(t, "users")

		found, err := repo.FindBySubject(ctx, "missing")

		assert.Nil(t, found)
		assert.Equal(t, apperrors.ErrUserNotFound, err)
	})
}

func TestUserRepository_LinkSubject(t *testing.T) {
	tdb := SetupTestDB(t)
	defer tdb.Cleanup(t)

	repo := NewUserRepository(tdb.Database)
	ctx := context.Background()

	t.Run("links subject to existing user", func(t *testing.T) {
		tdb.ClearCollection(t, "users")

		user := &models.User{Email: "dave@example.com", Name: "Dave", Role: models.RoleMember}
		require.NoError(t, repo.Create(ctx, user))

		err := repo.LinkSubject(ctx, user.ID, "subject-99")

		require.NoError(t, err)

		found, err := repo.FindBySubject(ctx, "subject-99")
		require.NoError(t, err)
		assert.Equal(t, user.ID, found.ID)
	})

	t.Run("returns error for non-existent user", func(t *testing.T) {
		err := repo.LinkSubject(ctx, primitive.NewObjectID(), "subject-x")

		assert.Equal(t, apperrors.ErrUserNotFound, err)
	})
}

func TestUserRepository_UpdateName(t *testing.T) {
	tdb := SetupTestDB(t)
	defer tdb.Cleanup(t)

	repo := NewUserRepository(tdb.Database)
	ctx := context.Background()

	t.Run("updates display name", func(t *testing.T) {
		tdb.ClearCollection(t, "users")

		user := &models.User{Email: "erin@example.com", Name: "Erin", Role: models.RoleMember}
		require.NoError(t, repo.Create(ctx, user))

		err := repo.UpdateName(ctx, user.ID, "Erin Updated")

		require.NoError(t, err)

		found, err := repo.FindByID(ctx, user.ID)
		require.NoError(t, err)
		assert.Equal(t, "Erin Updated", found.Name)
	})
}

func TestUserRepository_SetTeam(t *testing.T) {
	tdb := SetupTestDB(t)
	defer tdb.Cleanup(t)

	repo := NewUserRepository(tdb.Database)
	ctx := context.Background()

	t.Run("sets team and role", func(t *testing.T) {
		tdb.ClearCollection(t, "users")

		user := &models.User{Email: "frank@example.com", Name: "Frank", Role: models.RoleMember}
		require.NoError(t, repo.Create(ctx, user))

		teamID := primitive.NewObjectID()
		err := repo.SetTeam(ctx, user.ID, &teamID, models.RoleAdmin)

		require.NoError(t, err)

		found, err := repo.FindByID(ctx, user.ID)
		require.NoError(t, err)
		require.NotNil(t, found.TeamID)
		assert.Equal(t, teamID, *found.TeamID)
		assert.Equal(t, models.RoleAdmin, found.Role)
	})

	t.Run("clears team affiliation with nil team", func(t *testing.T) {
		tdb.ClearCollection(t, "users")

		teamID := primitive.NewObjectID()
		user := &models.User{
			Email:  "grace@example.com",
			Name:   "Grace",
			Role:   models.RoleManager,
			TeamID: &teamID,
		}
		require.NoError(t, repo.Create(ctx, user))

		err := repo.SetTeam(ctx, user.ID, nil, models.RoleMember)

		require.NoError(t, err)

		found, err := repo.FindByID(ctx, user.ID)
		require.NoError(t, err)
		assert.Nil(t, found.TeamID)
		assert.Equal(t, models.RoleMember, found.Role)
	})
}
