package authz

import (
	apperrors "teamsync/internal/errors"
	"teamsync/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TaskPatch describes which field groups a task update touches. The handler
// fills it from the request body; authorization depends on the groups, not
// the values.
type TaskPatch struct {
	Details    bool // title, description, priority, due date
	Status     bool
	Assignment bool
}

// CanEditTaskDetails reports whether a user may edit a task's descriptive
// fields. Only the creator can; there is no admin override.
func CanEditTaskDetails(userID primitive.ObjectID, task *models.Task) bool {
	return task.CreatedBy == userID
}

// CanTransitionStatus reports whether a user may change a task's status.
// Only the current assignee can move a task between columns.
func CanTransitionStatus(userID primitive.ObjectID, task *models.Task) bool {
	return task.AssignedTo != nil && *task.AssignedTo == userID
}

// AuthorizeTaskUpdate checks every field group in a patch against the
// caller's role and relationship to the task. The whole update is rejected
// if any group fails.
func AuthorizeTaskUpdate(role models.Role, userID primitive.ObjectID, task *models.Task, patch TaskPatch) error {
	if patch.Details && !CanEditTaskDetails(userID, task) {
		return apperrors.ErrNotTaskCreator
	}
	if patch.Status && !CanTransitionStatus(userID, task) {
		return apperrors.ErrNotAssignee
	}
	if patch.Assignment && !Allows(role, ActionTaskReassign) {
		return apperrors.ErrForbidden
	}
	return nil
}
