// Package middleware provides HTTP middleware for the API.
package middleware

import (
	"errors"
	"strings"

	apperrors "teamsync/internal/errors"
	"teamsync/internal/identity"
	"teamsync/internal/models"
	"teamsync/pkg/response"

	"github.com/gin-gonic/gin"
)

// Context keys for storing user data
const (
	UserKey = "user"
)

// Auth returns a middleware that resolves the bearer credential into a user.
// Unknown principals with valid credentials are provisioned on first contact.
func Auth(resolver *identity.Resolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, apperrors.CodeTokenMissing, "missing authorization header")
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Unauthorized(c, apperrors.CodeTokenInvalid, "invalid authorization header format")
			c.Abort()
			return
		}

		user, err := resolver.Resolve(c.Request.Context(), parts[1])
		if err != nil {
			if errors.Is(err, apperrors.ErrMissingCredential) || errors.Is(err, apperrors.ErrInvalidCredential) {
				response.Unauthorized(c, apperrors.Code(err), err.Error())
			} else {
				response.InternalError(c)
			}
			c.Abort()
			return
		}

		c.Set(UserKey, user)

		c.Next()
	}
}

// GetUser retrieves the resolved user from the context.
func GetUser(c *gin.Context) (*models.User, bool) {
	value, exists := c.Get(UserKey)
	if !exists {
		return nil, false
	}
	user, ok := value.(*models.User)
	return user, ok
}
