package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TaskStatus is a task's board column.
type TaskStatus string

// Task status constants.
const (
	StatusTodo       TaskStatus = "TODO"
	StatusInProgress TaskStatus = "IN_PROGRESS"
	StatusDone       TaskStatus = "DONE"
)

// TaskPriority is a task's urgency level.
type TaskPriority string

// Task priority constants.
const (
	PriorityLow    TaskPriority = "LOW"
	PriorityMedium TaskPriority = "MEDIUM"
	PriorityHigh   TaskPriority = "HIGH"
)

// Task represents a unit of work on a project board. Position orders tasks
// within a status column; new positions are averaged between neighbors so a
// move touches only the moved document.
type Task struct {
	ID          primitive.ObjectID  `json:"id" bson:"_id,omitempty" example:"507f1f77bcf86cd799439011"`
	Title       string              `json:"title" bson:"title" example:"Implement login page"`
	Description string              `json:"description" bson:"description" example:"Build the login form with validation"`
	ProjectID   primitive.ObjectID  `json:"projectId" bson:"projectId" example:"507f1f77bcf86cd799439012"`
	TeamID      primitive.ObjectID  `json:"teamId" bson:"teamId" example:"507f1f77bcf86cd799439013"`
	Status      TaskStatus          `json:"status" bson:"status" example:"TODO"`
	Priority    TaskPriority        `json:"priority" bson:"priority" example:"MEDIUM"`
	Position    float64             `json:"position" bson:"position" example:"1000"`
	CreatedBy   primitive.ObjectID  `json:"createdBy" bson:"createdBy" example:"507f1f77bcf86cd799439014"`
	AssignedTo  *primitive.ObjectID `json:"assignedTo,omitempty" bson:"assignedTo,omitempty"`
	DueDate     *time.Time          `json:"dueDate,omitempty" bson:"dueDate,omitempty"`
	CreatedAt   time.Time           `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time           `json:"updatedAt" bson:"updatedAt"`
}

// CreateTaskRequest is the payload for creating a task.
type CreateTaskRequest struct {
	Title       string       `json:"title" binding:"required,min=1,max=200" example:"Implement login page"`
	Description string       `json:"description" binding:"omitempty,max=2000" example:"Build the login form"`
	Priority    TaskPriority `json:"priority" binding:"omitempty,oneof=LOW MEDIUM HIGH" example:"MEDIUM"`
	AssignedTo  *string      `json:"assignedTo" binding:"omitempty,objectid" example:"507f1f77bcf86cd799439014"`
	DueDate     *time.Time   `json:"dueDate" binding:"omitempty" example:"2026-10-01T00:00:00Z"`
}

// UpdateTaskRequest is the payload for updating a task. Each field is
// optional; which fields may be set depends on the caller's relationship to
// the task, so the handler reports to the service which groups are present.
type UpdateTaskRequest struct {
	Title       *string       `json:"title" binding:"omitempty,min=1,max=200" example:"Updated title"`
	Description *string       `json:"description" binding:"omitempty,max=2000" example:"Updated description"`
	Priority    *TaskPriority `json:"priority" binding:"omitempty,oneof=LOW MEDIUM HIGH" example:"HIGH"`
	Status      *TaskStatus   `json:"status" binding:"omitempty,oneof=TODO IN_PROGRESS DONE" example:"IN_PROGRESS"`
	AssignedTo  *string       `json:"assignedTo" binding:"omitempty,objectid" example:"507f1f77bcf86cd799439014"`
	DueDate     *time.Time    `json:"dueDate" binding:"omitempty"`
}

// MoveTaskRequest is the payload for repositioning a task on the board.
// BeforeTaskID and AfterTaskID name the desired neighbors in the target
// column; both empty means the column is empty or the task goes last.
type MoveTaskRequest struct {
	Status       TaskStatus `json:"status" binding:"required,oneof=TODO IN_PROGRESS DONE" example:"IN_PROGRESS"`
	BeforeTaskID *string    `json:"beforeTaskId" binding:"omitempty,objectid" example:"507f1f77bcf86cd799439015"`
	AfterTaskID  *string    `json:"afterTaskId" binding:"omitempty,objectid" example:"507f1f77bcf86cd799439016"`
}

// TaskListResponse is the response for listing tasks.
type TaskListResponse struct {
	Items []Task `json:"items"`
}
