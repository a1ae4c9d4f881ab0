// Package models defines data structures for the application.
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Role is a user's role within their team.
type Role string

// Role constants.
const (
	RoleAdmin   Role = "ADMIN"
	RoleManager Role = "MANAGER"
	RoleMember  Role = "MEMBER"
)

// User represents a principal in the system. A user is provisioned
// automatically the first time a verified credential is seen; SubjectID is the
// identity provider's stable subject and never changes once set.
type User struct {
	ID        primitive.ObjectID  `json:"id" bson:"_id,omitempty" example:"507f1f77bcf86cd799439011"`
	SubjectID string              `json:"-" bson:"subjectId,omitempty"`
	Email     string              `json:"email" bson:"email" example:"user@example.com"`
	Name      string              `json:"name" bson:"name" example:"John Doe"`
	Role      Role                `json:"role" bson:"role" example:"MEMBER"`
	TeamID    *primitive.ObjectID `json:"teamId,omitempty" bson:"teamId,omitempty"`
	CreatedAt time.Time           `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time           `json:"updatedAt" bson:"updatedAt"`
}

// UserSummary is a minimal user representation for embedding in responses.
type UserSummary struct {
	ID    primitive.ObjectID `json:"id" example:"507f1f77bcf86cd799439013"`
	Email string             `json:"email" example:"user@example.com"`
	Name  string             `json:"name" example:"John Doe"`
}

// TeamContext is the request-scoped resolution of a user's authority with
// respect to one target team. It is recomputed on every request and never
// persisted or cached.
type TeamContext struct {
	TeamID primitive.ObjectID
	Role   Role
}
