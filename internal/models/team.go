package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Team represents a team in the system. AdminID is the creator and is
// immutable; the creator retains authority over the team even when their own
// teamId pointer references a different team.
type Team struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty" example:"507f1f77bcf86cd799439011"`
	Name        string             `json:"name" bson:"name" example:"Engineering Team"`
	Description string             `json:"description" bson:"description" example:"Product engineering workspace"`
	AdminID     primitive.ObjectID `json:"adminId" bson:"adminId" example:"507f1f77bcf86cd799439012"`
	CreatedAt   time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// CreateTeamRequest is the payload for creating a team.
type CreateTeamRequest struct {
	Name        string `json:"name" binding:"required,min=2,max=100" example:"Engineering Team"`
	Description string `json:"description" binding:"omitempty,max=500" example:"Product engineering workspace"`
}

// UpdateTeamRequest is the payload for updating a team.
type UpdateTeamRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=2,max=100" example:"Updated Team Name"`
	Description *string `json:"description" binding:"omitempty,max=500" example:"Updated description"`
}

// TeamListResponse is the response for listing teams.
type TeamListResponse struct {
	Items []Team `json:"items"`
}
