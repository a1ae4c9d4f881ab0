// Package handler contains HTTP request handlers.
package handler

import (
	"errors"
	"log"
	"net/http"

	apperrors "teamsync/internal/errors"
	"teamsync/pkg/response"

	"github.com/gin-gonic/gin"
)

// serviceError maps an application error to the HTTP response that carries
// it. Unknown errors are logged and answered with a 500 so internals never
// leak to clients.
func serviceError(c *gin.Context, err error) {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, apperrors.ErrTeamNotFound),
		errors.Is(err, apperrors.ErrProjectNotFound),
		errors.Is(err, apperrors.ErrTaskNotFound),
		errors.Is(err, apperrors.ErrMemberNotFound),
		errors.Is(err, apperrors.ErrUserNotFound),
		errors.Is(err, apperrors.ErrMessageNotFound):
		status = http.StatusNotFound

	case errors.Is(err, apperrors.ErrForbidden),
		errors.Is(err, apperrors.ErrNotTaskCreator),
		errors.Is(err, apperrors.ErrNotAssignee),
		errors.Is(err, apperrors.ErrCannotRemoveAdmin),
		errors.Is(err, apperrors.ErrCannotChangeAdminRole):
		status = http.StatusForbidden

	case errors.Is(err, apperrors.ErrAlreadyMember),
		errors.Is(err, apperrors.ErrAlreadyInTeam),
		errors.Is(err, apperrors.ErrTaskPositionConflict):
		status = http.StatusConflict

	// Invariant violations answer 400 with a reason code so clients can
	// distinguish them from plain conflicts.
	case errors.Is(err, apperrors.ErrManagerAlreadyAssigned),
		errors.Is(err, apperrors.ErrCannotRemoveLastManager),
		errors.Is(err, apperrors.ErrAssigneeNotInTeam),
		errors.Is(err, apperrors.ErrInvalidRole),
		errors.Is(err, apperrors.ErrMissingTeam):
		status = http.StatusBadRequest

	case errors.Is(err, apperrors.ErrMissingCredential),
		errors.Is(err, apperrors.ErrInvalidCredential):
		status = http.StatusUnauthorized

	default:
		log.Printf("Unhandled service error: %v", err)
		response.InternalError(c)
		return
	}

	response.Error(c, status, apperrors.Code(err), err.Error())
}
