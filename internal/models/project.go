package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Project represents a project owned by a team. AdminID is denormalized from
// the owning team's admin so admin-scoped listings avoid a join.
type Project struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty" example:"507f1f77bcf86cd799439011"`
	Name        string             `json:"name" bson:"name" example:"Website Redesign"`
	Description string             `json:"description" bson:"description" example:"Q3 marketing site refresh"`
	TeamID      primitive.ObjectID `json:"teamId" bson:"teamId" example:"507f1f77bcf86cd799439012"`
	AdminID     primitive.ObjectID `json:"adminId" bson:"adminId" example:"507f1f77bcf86cd799439013"`
	CreatedAt   time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// CreateProjectRequest is the payload for creating a project.
type CreateProjectRequest struct {
	Name        string `json:"name" binding:"required,min=2,max=100" example:"Website Redesign"`
	Description string `json:"description" binding:"omitempty,max=500" example:"Q3 marketing site refresh"`
}

// UpdateProjectRequest is the payload for updating a project.
type UpdateProjectRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=2,max=100" example:"Updated Project"`
	Description *string `json:"description" binding:"omitempty,max=500" example:"Updated description"`
}

// ProjectListResponse is the response for listing projects.
type ProjectListResponse struct {
	Items []Project `json:"items"`
}
