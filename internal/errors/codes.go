package errors

import "errors"

// Reason codes returned in API error responses so clients can branch without
// parsing messages.
const (
	CodeTokenMissing      = "TOKEN_MISSING"
	CodeTokenInvalid      = "TOKEN_INVALID"
	CodeNoTeam            = "NO_TEAM"
	CodeTeamNotFound      = "TEAM_NOT_FOUND"
	CodeNotAMember        = "NOT_A_MEMBER"
	CodeRoleForbidden     = "ROLE_FORBIDDEN"
	CodeNotOwner          = "NOT_OWNER"
	CodeNotAssignee       = "NOT_ASSIGNEE"
	CodeManagerExists     = "MANAGER_EXISTS"
	CodeLastManager       = "LAST_MANAGER"
	CodeAlreadyMember     = "ALREADY_MEMBER"
	CodeAlreadyInTeam     = "ALREADY_IN_TEAM"
	CodeAdminImmutable    = "ADMIN_IMMUTABLE"
	CodeNotFound          = "NOT_FOUND"
	CodePositionConflict  = "POSITION_CONFLICT"
	CodeAssigneeNotInTeam = "ASSIGNEE_NOT_IN_TEAM"
	CodeInvalidRole       = "INVALID_ROLE"
)

var errorCodes = map[error]string{
	ErrMissingCredential:       CodeTokenMissing,
	ErrInvalidCredential:       CodeTokenInvalid,
	ErrMissingTeam:             CodeNoTeam,
	ErrTeamNotFound:            CodeTeamNotFound,
	ErrForbidden:               CodeNotAMember,
	ErrAlreadyInTeam:           CodeAlreadyInTeam,
	ErrInvalidRole:             CodeInvalidRole,
	ErrMemberNotFound:          CodeNotFound,
	ErrAlreadyMember:           CodeAlreadyMember,
	ErrManagerAlreadyAssigned:  CodeManagerExists,
	ErrCannotRemoveLastManager: CodeLastManager,
	ErrCannotRemoveAdmin:       CodeAdminImmutable,
	ErrCannotChangeAdminRole:   CodeAdminImmutable,
	ErrProjectNotFound:         CodeNotFound,
	ErrTaskNotFound:            CodeNotFound,
	ErrNotTaskCreator:          CodeNotOwner,
	ErrNotAssignee:             CodeNotAssignee,
	ErrTaskPositionConflict:    CodePositionConflict,
	ErrAssigneeNotInTeam:       CodeAssigneeNotInTeam,
	ErrUserNotFound:            CodeNotFound,
	ErrMessageNotFound:         CodeNotFound,
}

// Code returns the reason code for a known application error, or the empty
// string for anything else.
func Code(err error) string {
	for sentinel, code := range errorCodes {
		if errors.Is(err, sentinel) {
			return code
		}
	}
	return ""
}
