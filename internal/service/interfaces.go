// Package service contains business logic for the application.
package service

import (
	"context"
	"time"

	"teamsync/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TeamServicer defines the interface for team operations.
type TeamServicer interface {
	CreateTeam(ctx context.Context, user *models.User, req *models.CreateTeamRequest) (*models.Team, error)
	ListTeams(ctx context.Context, user *models.User) (*models.TeamListResponse, error)
	GetTeam(ctx context.Context, teamID primitive.ObjectID) (*models.Team, error)
	UpdateTeam(ctx context.Context, teamID primitive.ObjectID, req *models.UpdateTeamRequest) (*models.Team, error)
	DeleteTeam(ctx context.Context, teamID, actorID primitive.ObjectID) error
}

// MemberServicer defines the interface for team member operations.
type MemberServicer interface {
	ListMembers(ctx context.Context, teamID primitive.ObjectID) (*models.MemberListResponse, error)
	InviteMember(ctx context.Context, teamID, actorID primitive.ObjectID, req *models.InviteMemberRequest) (*models.MemberWithUser, error)
	AssignRole(ctx context.Context, teamID, targetUserID, actorID primitive.ObjectID, req *models.AssignRoleRequest) error
	RemoveMember(ctx context.Context, teamID, targetUserID, actorID primitive.ObjectID) error
}

// ProjectServicer defines the interface for project operations.
type ProjectServicer interface {
	ListProjects(ctx context.Context, teamID primitive.ObjectID) (*models.ProjectListResponse, error)
	CreateProject(ctx context.Context, teamID, actorID primitive.ObjectID, req *models.CreateProjectRequest) (*models.Project, error)
	GetProject(ctx context.Context, projectID, teamID primitive.ObjectID) (*models.Project, error)
	UpdateProject(ctx context.Context, projectID, teamID primitive.ObjectID, req *models.UpdateProjectRequest) (*models.Project, error)
	DeleteProject(ctx context.Context, projectID, teamID, actorID primitive.ObjectID) error
}

// TaskServicer defines the interface for task operations.
type TaskServicer interface {
	ListTasks(ctx context.Context, projectID, teamID primitive.ObjectID) (*models.TaskListResponse, error)
	CreateTask(ctx context.Context, projectID, teamID, actorID primitive.ObjectID, req *models.CreateTaskRequest) (*models.Task, error)
	GetTask(ctx context.Context, taskID, teamID primitive.ObjectID) (*models.Task, error)
	UpdateTask(ctx context.Context, taskID, teamID, actorID primitive.ObjectID, role models.Role, req *models.UpdateTaskRequest) (*models.Task, error)
	MoveTask(ctx context.Context, taskID, teamID, actorID primitive.ObjectID, req *models.MoveTaskRequest) (*models.Task, error)
	DeleteTask(ctx context.Context, taskID, teamID, actorID primitive.ObjectID) error
}

// MessageServicer defines the interface for team chat operations.
type MessageServicer interface {
	ListMessages(ctx context.Context, teamID primitive.ObjectID, limit int, before *time.Time) (*models.MessageListResponse, error)
	PostMessage(ctx context.Context, teamID primitive.ObjectID, sender *models.User, req *models.CreateMessageRequest) (*models.Message, error)
	AttachmentUploadURL(ctx context.Context, teamID primitive.ObjectID, filename, contentType string) (*models.AttachmentUploadResponse, error)
	AttachmentDownloadURL(ctx context.Context, teamID primitive.ObjectID, key string) (*models.AttachmentDownloadResponse, error)
}

// ActivityServicer defines the interface for activity feed operations.
type ActivityServicer interface {
	ListActivities(ctx context.Context, teamID primitive.ObjectID, limit int) (*models.ActivityListResponse, error)
}

// Ensure concrete types implement interfaces
var (
	_ TeamServicer     = (*TeamService)(nil)
	_ MemberServicer   = (*MemberService)(nil)
	_ ProjectServicer  = (*ProjectService)(nil)
	_ TaskServicer     = (*TaskService)(nil)
	_ MessageServicer  = (*MessageService)(nil)
	_ ActivityServicer = (*ActivityService)(nil)
)
