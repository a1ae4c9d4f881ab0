package middleware

import (
	"errors"

	"teamsync/internal/authz"
	apperrors "teamsync/internal/errors"
	"teamsync/internal/models"
	"teamsync/internal/repository"
	"teamsync/pkg/response"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Context keys for storing team data
const (
	TeamContextKey = "teamContext"
)

// TeamContext returns a middleware that resolves the caller's effective role
// for the target team. The target is the :teamId path parameter, falling
// back to the caller's own team. The context is recomputed per request and
// never cached.
func TeamContext(teams repository.TeamRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := GetUser(c)
		if !ok {
			response.Unauthorized(c, apperrors.CodeTokenMissing, "user not authenticated")
			c.Abort()
			return
		}

		teamID, err := targetTeamID(c, user)
		if err != nil {
			if errors.Is(err, apperrors.ErrMissingTeam) {
				response.BadRequest(c, err.Error())
			} else {
				response.BadRequest(c, "invalid team id format")
			}
			c.Abort()
			return
		}

		// Fast path: the caller's stored affiliation matches the target,
		// so their stored role is authoritative.
		if user.TeamID != nil && *user.TeamID == teamID {
			c.Set(TeamContextKey, &models.TeamContext{TeamID: teamID, Role: user.Role})
			c.Next()
			return
		}

		team, err := teams.FindByID(c.Request.Context(), teamID)
		if err != nil {
			if errors.Is(err, apperrors.ErrTeamNotFound) {
				response.NotFound(c, apperrors.CodeTeamNotFound, err.Error())
			} else {
				response.InternalError(c)
			}
			c.Abort()
			return
		}

		// The creator keeps admin authority over their team even when
		// their own affiliation points elsewhere.
		if team.AdminID == user.ID {
			c.Set(TeamContextKey, &models.TeamContext{TeamID: teamID, Role: models.RoleAdmin})
			c.Next()
			return
		}

		response.Forbidden(c, apperrors.CodeNotAMember, apperrors.ErrForbidden.Error())
		c.Abort()
	}
}

// RequireRole returns a middleware that checks the resolved team role
// against the policy table for an action.
func RequireRole(action authz.Action) gin.HandlerFunc {
	return func(c *gin.Context) {
		tc, ok := GetTeamContext(c)
		if !ok {
			response.InternalError(c)
			c.Abort()
			return
		}

		if !authz.Allows(tc.Role, action) {
			response.Forbidden(c, apperrors.CodeRoleForbidden, "insufficient permissions")
			c.Abort()
			return
		}

		c.Next()
	}
}

// GetTeamContext retrieves the resolved team context from the request.
func GetTeamContext(c *gin.Context) (*models.TeamContext, bool) {
	value, exists := c.Get(TeamContextKey)
	if !exists {
		return nil, false
	}
	tc, ok := value.(*models.TeamContext)
	return tc, ok
}

// targetTeamID picks the team a request addresses: the path parameter when
// present, otherwise the caller's own team.
func targetTeamID(c *gin.Context, user *models.User) (primitive.ObjectID, error) {
	if param := c.Param("teamId"); param != "" {
		return primitive.ObjectIDFromHex(param)
	}
	if user.TeamID != nil {
		return *user.TeamID, nil
	}
	return primitive.NilObjectID, apperrors.ErrMissingTeam
}
