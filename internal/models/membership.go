package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MembershipStatus is the lifecycle state of a team membership.
type MembershipStatus string

// Membership status constants.
const (
	StatusInvited  MembershipStatus = "INVITED"
	StatusAccepted MembershipStatus = "ACCEPTED"
)

// Membership is a user's role grant within a team. A partial unique index on
// {teamId} for ACCEPTED MANAGER rows enforces the single-manager invariant at
// write time rather than as a separate read-then-write check.
type Membership struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty" example:"507f1f77bcf86cd799439011"`
	TeamID    primitive.ObjectID `json:"teamId" bson:"teamId" example:"507f1f77bcf86cd799439012"`
	UserID    primitive.ObjectID `json:"userId" bson:"userId" example:"507f1f77bcf86cd799439013"`
	Role      Role               `json:"role" bson:"role" example:"MEMBER"`
	Status    MembershipStatus   `json:"status" bson:"status" example:"ACCEPTED"`
	InvitedBy primitive.ObjectID `json:"invitedBy" bson:"invitedBy,omitempty"`
	JoinedAt  time.Time          `json:"joinedAt" bson:"joinedAt"`
}

// MemberWithUser is a membership with expanded user information.
type MemberWithUser struct {
	ID       primitive.ObjectID `json:"id"`
	TeamID   primitive.ObjectID `json:"teamId"`
	UserID   primitive.ObjectID `json:"userId"`
	User     *UserSummary       `json:"user,omitempty"`
	Role     Role               `json:"role" example:"MEMBER"`
	Status   MembershipStatus   `json:"status" example:"ACCEPTED"`
	JoinedAt time.Time          `json:"joinedAt"`
}

// InviteMemberRequest is the payload for inviting a user into a team.
type InviteMemberRequest struct {
	Email string `json:"email" binding:"required,email" example:"new.member@example.com"`
	Role  Role   `json:"role" binding:"omitempty,oneof=MANAGER MEMBER" example:"MEMBER"`
}

// AssignRoleRequest is the payload for changing a member's team role.
type AssignRoleRequest struct {
	Role Role `json:"role" binding:"required,oneof=MANAGER MEMBER" example:"MANAGER"`
}

// MemberListResponse is the response for listing team members.
type MemberListResponse struct {
	Items []MemberWithUser `json:"items"`
}
