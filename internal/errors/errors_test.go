package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIdentityErrors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{"ErrMissingCredential", ErrMissingCredential, "authentication credential is missing"},
		{"ErrInvalidCredential", ErrInvalidCredential, "authentication credential is invalid or expired"},
		{"ErrUserNotFound", ErrUserNotFound, "user not found"},
		{"ErrUserAlreadyExists", ErrUserAlreadyExists, "user with this email already exists"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotNil(t, tt.err)
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestTeamErrors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{"ErrMissingTeam", ErrMissingTeam, "no team specified and user has no team"},
		{"ErrTeamNotFound", ErrTeamNotFound, "team not found"},
		{"ErrForbidden", ErrForbidden, "you do not have access to this team"},
		{"ErrAlreadyInTeam", ErrAlreadyInTeam, "user already belongs to a team"},
		{"ErrInvalidRole", ErrInvalidRole, "invalid role, must be MANAGER or MEMBER"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotNil(t, tt.err)
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestMembershipErrors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{"ErrMemberNotFound", ErrMemberNotFound, "team member not found"},
		{"ErrAlreadyMember", ErrAlreadyMember, "user is already a member of this team"},
		{"ErrManagerAlreadyAssigned", ErrManagerAlreadyAssigned, "team already has a manager"},
		{"ErrCannotRemoveAdmin", ErrCannotRemoveAdmin, "cannot remove the team admin"},
		{"ErrCannotChangeAdminRole", ErrCannotChangeAdminRole, "cannot change the team admin's role"},
		{"ErrCannotRemoveLastManager", ErrCannotRemoveLastManager, "reassign the manager role before removing the manager"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotNil(t, tt.err)
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestTaskErrors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{"ErrTaskNotFound", ErrTaskNotFound, "task not found"},
		{"ErrNotTaskCreator", ErrNotTaskCreator, "only the task creator can edit task details"},
		{"ErrNotAssignee", ErrNotAssignee, "only the assignee can change task status"},
		{"ErrTaskPositionConflict", ErrTaskPositionConflict, "task was moved by someone else, refresh and retry"},
		{"ErrAssigneeNotInTeam", ErrAssigneeNotInTeam, "assignee is not a member of this team"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotNil(t, tt.err)
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestErrorsIsComparison(t *testing.T) {
	// Test that errors.Is works correctly with our sentinel errors
	tests := []struct {
		name   string
		target error
		err    error
		want   bool
	}{
		{"same error", ErrTeamNotFound, ErrTeamNotFound, true},
		{"different error", ErrTeamNotFound, ErrTaskNotFound, false},
		{"fmt wrapped error", ErrManagerAlreadyAssigned, fmt.Errorf("invite: %w", ErrManagerAlreadyAssigned), true},
		{"rebuilt message is not the sentinel", ErrUserNotFound, errors.New("user not found"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := errors.Is(tt.err, tt.target)
			assert.Equal(t, tt.want, result)
		})
	}
}

func TestCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"missing credential", ErrMissingCredential, CodeTokenMissing},
		{"not task creator", ErrNotTaskCreator, CodeNotOwner},
		{"manager exists", ErrManagerAlreadyAssigned, CodeManagerExists},
		{"last manager", ErrCannotRemoveLastManager, CodeLastManager},
		{"admin role immutable", ErrCannotChangeAdminRole, CodeAdminImmutable},
		{"admin not removable", ErrCannotRemoveAdmin, CodeAdminImmutable},
		{"position conflict", ErrTaskPositionConflict, CodePositionConflict},
		{"wrapped sentinel still maps", fmt.Errorf("move: %w", ErrTaskPositionConflict), CodePositionConflict},
		{"unknown error", errors.New("disk full"), ""},
		{"nil error", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Code(tt.err))
		})
	}
}

func TestAllErrorsAreUnique(t *testing.T) {
	allErrors := []error{
		// Identity errors
		ErrMissingCredential,
		ErrInvalidCredential,
		ErrUserNotFound,
		ErrUserAlreadyExists,
		// Team errors
		ErrMissingTeam,
		ErrTeamNotFound,
		ErrForbidden,
		ErrAlreadyInTeam,
		ErrInvalidRole,
		// Membership errors
		ErrMemberNotFound,
		ErrAlreadyMember,
		ErrManagerAlreadyAssigned,
		ErrCannotRemoveAdmin,
		ErrCannotChangeAdminRole,
		ErrCannotRemoveLastManager,
		// Project errors
		ErrProjectNotFound,
		// Task errors
		ErrTaskNotFound,
		ErrNotTaskCreator,
		ErrNotAssignee,
		ErrTaskPositionConflict,
		ErrAssigneeNotInTeam,
		// Message errors
		ErrMessageNotFound,
	}

	// Check that all error messages are unique
	seen := make(map[string]bool)
	for _, err := range allErrors {
		msg := err.Error()
		if seen[msg] {
			t.Errorf("duplicate error message found: %s", msg)
		}
		seen[msg] = true
	}
}
