package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"teamsync/internal/authz"
	apperrors "teamsync/internal/errors"
	"teamsync/internal/models"
	"teamsync/internal/repository/mocks"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// teamContextRouter wires a fake authenticated user ahead of the TeamContext
// middleware and exposes the resolved context as JSON.
func teamContextRouter(user *models.User, teams *mocks.MockTeamRepository, actions ...authz.Action) *gin.Engine {
	router := gin.New()

	setUser := func(c *gin.Context) {
		c.Set(UserKey, user)
		c.Next()
	}

	handlers := []gin.HandlerFunc{setUser, TeamContext(teams)}
	for _, action := range actions {
		handlers = append(handlers, RequireRole(action))
	}
	handlers = append(handlers, func(c *gin.Context) {
		tc, _ := GetTeamContext(c)
		c.JSON(http.StatusOK, gin.H{"teamId": tc.TeamID.Hex(), "role": tc.Role})
	})

	router.GET("/teams/:teamId/whoami", handlers...)
	router.GET("/whoami", handlers...)
	return router
}

func TestTeamContext(t *testing.T) {
	teamID := primitive.NewObjectID()
	adminID := primitive.NewObjectID()

	team := &models.Team{ID: teamID, Name: "Team", AdminID: adminID}

	teams := &mocks.MockTeamRepository{
		FindByIDFunc: func(ctx context.Context, id primitive.ObjectID) (*models.Team, error) {
			if id == teamID {
				return team, nil
			}
			return nil, apperrors.ErrTeamNotFound
		},
	}

	t.Run("member fast path uses stored role", func(t *testing.T) {
		user := &models.User{
			ID:     primitive.NewObjectID(),
			Role:   models.RoleManager,
			TeamID: &teamID,
		}
		router := teamContextRouter(user, teams)

		req := httptest.NewRequest(http.MethodGet, "/teams/"+teamID.Hex()+"/whoami", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), string(models.RoleManager))
	})

	t.Run("falls back to user's own team without path param", func(t *testing.T) {
		user := &models.User{
			ID:     primitive.NewObjectID(),
			Role:   models.RoleMember,
			TeamID: &teamID,
		}
		router := teamContextRouter(user, teams)

		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), teamID.Hex())
	})

	t.Run("creator gets admin override", func(t *testing.T) {
		otherTeam := primitive.NewObjectID()
		user := &models.User{
			ID:     adminID,
			Role:   models.RoleMember,
			TeamID: &otherTeam,
		}
		router := teamContextRouter(user, teams)

		req := httptest.NewRequest(http.MethodGet, "/teams/"+teamID.Hex()+"/whoami", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), string(models.RoleAdmin))
	})

	t.Run("outsider is forbidden", func(t *testing.T) {
		user := &models.User{
			ID:   primitive.NewObjectID(),
			Role: models.RoleMember,
		}
		router := teamContextRouter(user, teams)

		req := httptest.NewRequest(http.MethodGet, "/teams/"+teamID.Hex()+"/whoami", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Contains(t, w.Body.String(), apperrors.CodeNotAMember)
	})

	t.Run("unknown team is not found", func(t *testing.T) {
		user := &models.User{ID: primitive.NewObjectID(), Role: models.RoleMember}
		router := teamContextRouter(user, teams)

		req := httptest.NewRequest(http.MethodGet, "/teams/"+primitive.NewObjectID().Hex()+"/whoami", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), apperrors.CodeTeamNotFound)
	})

	t.Run("no target team is a bad request", func(t *testing.T) {
		user := &models.User{ID: primitive.NewObjectID(), Role: models.RoleMember}
		router := teamContextRouter(user, teams)

		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("invalid team id format is a bad request", func(t *testing.T) {
		user := &models.User{ID: primitive.NewObjectID(), Role: models.RoleMember}
		router := teamContextRouter(user, teams)

		req := httptest.NewRequest(http.MethodGet, "/teams/not-an-id/whoami", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestRequireRole(t *testing.T) {
	teamID := primitive.NewObjectID()

	t.Run("allows permitted role", func(t *testing.T) {
		user := &models.User{
			ID:     primitive.NewObjectID(),
			Role:   models.RoleAdmin,
			TeamID: &teamID,
		}
		router := teamContextRouter(user, &mocks.MockTeamRepository{}, authz.ActionTeamDelete)

		req := httptest.NewRequest(http.MethodGet, "/teams/"+teamID.Hex()+"/whoami", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("rejects forbidden role", func(t *testing.T) {
		user := &models.User{
			ID:     primitive.NewObjectID(),
			Role:   models.RoleMember,
			TeamID: &teamID,
		}
		router := teamContextRouter(user, &mocks.MockTeamRepository{}, authz.ActionTeamDelete)

		req := httptest.NewRequest(http.MethodGet, "/teams/"+teamID.Hex()+"/whoami", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Contains(t, w.Body.String(), apperrors.CodeRoleForbidden)
	})
}
