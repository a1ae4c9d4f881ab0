// Package errors provides custom error types for the application.
package errors

import "errors"

// Identity errors
var (
	ErrMissingCredential = errors.New("authentication credential is missing")
	ErrInvalidCredential = errors.New("authentication credential is invalid or expired")
	ErrUserNotFound      = errors.New("user not found")
	ErrUserAlreadyExists = errors.New("user with this email already exists")
)

// Team errors
var (
	ErrMissingTeam   = errors.New("no team specified and user has no team")
	ErrTeamNotFound  = errors.New("team not found")
	ErrForbidden     = errors.New("you do not have access to this team")
	ErrAlreadyInTeam = errors.New("user already belongs to a team")
	ErrInvalidRole   = errors.New("invalid role, must be MANAGER or MEMBER")
)

// Membership errors
var (
	ErrMemberNotFound          = errors.New("team member not found")
	ErrAlreadyMember           = errors.New("user is already a member of this team")
	ErrManagerAlreadyAssigned  = errors.New("team already has a manager")
	ErrCannotRemoveAdmin       = errors.New("cannot remove the team admin")
	ErrCannotChangeAdminRole   = errors.New("cannot change the team admin's role")
	ErrCannotRemoveLastManager = errors.New("reassign the manager role before removing the manager")
)

// Project errors
var (
	ErrProjectNotFound = errors.New("project not found")
)

// Task errors
var (
	ErrTaskNotFound         = errors.New("task not found")
	ErrNotTaskCreator       = errors.New("only the task creator can edit task details")
	ErrNotAssignee          = errors.New("only the assignee can change task status")
	ErrTaskPositionConflict = errors.New("task was moved by someone else, refresh and retry")
	ErrAssigneeNotInTeam    = errors.New("assignee is not a member of this team")
)

// Message errors
var (
	ErrMessageNotFound = errors.New("message not found")
)
