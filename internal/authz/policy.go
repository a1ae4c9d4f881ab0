// Package authz decides what a resolved team role may do. Role checks are
// pure table lookups over the request's team context; ownership checks
// compare the caller against fields of the target resource.
package authz

import "teamsync/internal/models"

// Action identifies an operation subject to role policy.
type Action string

// Action constants define the authorization actions.
const (
	ActionTeamView         = Action("team:view")
	ActionTeamUpdate       = Action("team:update")
	ActionTeamDelete       = Action("team:delete")
	ActionMemberInvite     = Action("member:invite")
	ActionMemberRemove     = Action("member:remove")
	ActionMemberAssignRole = Action("member:assign_role")
	ActionActivityView     = Action("activity:view")
	ActionProjectView      = Action("project:view")
	ActionProjectCreate    = Action("project:create")
	ActionProjectUpdate    = Action("project:update")
	ActionProjectDelete    = Action("project:delete")
	ActionTaskView         = Action("task:view")
	ActionTaskCreate       = Action("task:create")
	ActionTaskDelete       = Action("task:delete")
	ActionTaskReassign     = Action("task:reassign")
	ActionChatView         = Action("chat:view")
	ActionChatPost         = Action("chat:post")
)

// rolePermissions maps actions to the roles that can perform them.
var rolePermissions = map[Action][]models.Role{
	ActionTeamView:         {models.RoleAdmin, models.RoleManager, models.RoleMember},
	ActionTeamUpdate:       {models.RoleAdmin, models.RoleManager},
	ActionTeamDelete:       {models.RoleAdmin},
	ActionMemberInvite:     {models.RoleAdmin},
	ActionMemberRemove:     {models.RoleAdmin},
	ActionMemberAssignRole: {models.RoleAdmin},
	ActionActivityView:     {models.RoleAdmin, models.RoleManager},
	ActionProjectView:      {models.RoleAdmin, models.RoleManager, models.RoleMember},
	ActionProjectCreate:    {models.RoleAdmin, models.RoleManager},
	ActionProjectUpdate:    {models.RoleAdmin, models.RoleManager},
	ActionProjectDelete:    {models.RoleAdmin},
	ActionTaskView:         {models.RoleAdmin, models.RoleManager, models.RoleMember},
	ActionTaskCreate:       {models.RoleAdmin, models.RoleManager},
	ActionTaskDelete:       {models.RoleAdmin},
	ActionTaskReassign:     {models.RoleAdmin, models.RoleManager},
	ActionChatView:         {models.RoleAdmin, models.RoleManager, models.RoleMember},
	ActionChatPost:         {models.RoleAdmin, models.RoleManager, models.RoleMember},
}

// Allows reports whether a role can perform an action.
func Allows(role models.Role, action Action) bool {
	allowedRoles, exists := rolePermissions[action]
	if !exists {
		return false
	}

	for _, allowed := range allowedRoles {
		if role == allowed {
			return true
		}
	}

	return false
}
