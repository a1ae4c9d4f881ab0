// Package mocks provides hand-written service mocks for handler tests.
package mocks

import (
	"context"
	"time"

	"teamsync/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MockTeamService is a mock implementation of service.TeamServicer.
type MockTeamService struct {
	CreateTeamFunc func(ctx context.Context, user *models.User, req *models.CreateTeamRequest) (*models.Team, error)
	ListTeamsFunc  func(ctx context.Context, user *models.User) (*models.TeamListResponse, error)
	GetTeamFunc    func(ctx context.Context, teamID primitive.ObjectID) (*models.Team, error)
	UpdateTeamFunc func(ctx context.Context, teamID primitive.ObjectID, req *models.UpdateTeamRequest) (*models.Team, error)
	DeleteTeamFunc func(ctx context.Context, teamID, actorID primitive.ObjectID) error
}

func (m *MockTeamService) CreateTeam(ctx context.Context, user *models.User, req *models.CreateTeamRequest) (*models.Team, error) {
	if m.CreateTeamFunc != nil {
		return m.CreateTeamFunc(ctx, user, req)
	}
	return nil, nil
}

func (m *MockTeamService) ListTeams(ctx context.Context, user *models.User) (*models.TeamListResponse, error) {
	if m.ListTeamsFunc != nil {
		return m.ListTeamsFunc(ctx, user)
	}
	return nil, nil
}

func (m *MockTeamService) GetTeam(ctx context.Context, teamID primitive.ObjectID) (*models.Team, error) {
	if m.GetTeamFunc != nil {
		return m.GetTeamFunc(ctx, teamID)
	}
	return nil, nil
}

func (m *MockTeamService) UpdateTeam(ctx context.Context, teamID primitive.ObjectID, req *models.UpdateTeamRequest) (*models.Team, error) {
	if m.UpdateTeamFunc != nil {
		return m.UpdateTeamFunc(ctx, teamID, req)
	}
	return nil, nil
}

func (m *MockTeamService) DeleteTeam(ctx context.Context, teamID, actorID primitive.ObjectID) error {
	if m.DeleteTeamFunc != nil {
		return m.DeleteTeamFunc(ctx, teamID, actorID)
	}
	return nil
}

// MockMemberService is a mock implementation of service.MemberServicer.
type MockMemberService struct {
	ListMembersFunc  func(ctx context.Context, teamID primitive.ObjectID) (*models.MemberListResponse, error)
	InviteMemberFunc func(ctx context.Context, teamID, actorID primitive.ObjectID, req *models.InviteMemberRequest) (*models.MemberWithUser, error)
	AssignRoleFunc   func(ctx context.Context, teamID, targetUserID, actorID primitive.ObjectID, req *models.AssignRoleRequest) error
	RemoveMemberFunc func(ctx context.Context, teamID, targetUserID, actorID primitive.ObjectID) error
}

func (m *MockMemberService) ListMembers(ctx context.Context, teamID primitive.ObjectID) (*models.MemberListResponse, error) {
	if m.ListMembersFunc != nil {
		return m.ListMembersFunc(ctx, teamID)
	}
	return nil, nil
}

func (m *MockMemberService) InviteMember(ctx context.Context, teamID, actorID primitive.ObjectID, req *models.InviteMemberRequest) (*models.MemberWithUser, error) {
	if m.InviteMemberFunc != nil {
		return m.InviteMemberFunc(ctx, teamID, actorID, req)
	}
	return nil, nil
}

func (m *MockMemberService) AssignRole(ctx context.Context, teamID, targetUserID, actorID primitive.ObjectID, req *models.AssignRoleRequest) error {
	if m.AssignRoleFunc != nil {
		return m.AssignRoleFunc(ctx, teamID, targetUserID, actorID, req)
	}
	return nil
}

func (m *MockMemberService) RemoveMember(ctx context.Context, teamID, targetUserID, actorID primitive.ObjectID) error {
	if m.RemoveMemberFunc != nil {
		return m.RemoveMemberFunc(ctx, teamID, targetUserID, actorID)
	}
	return nil
}

// MockProjectService is a mock implementation of service.ProjectServicer.
type MockProjectService struct {
	ListProjectsFunc  func(ctx context.Context, teamID primitive.ObjectID) (*models.ProjectListResponse, error)
	CreateProjectFunc func(ctx context.Context, teamID, actorID primitive.ObjectID, req *models.CreateProjectRequest) (*models.Project, error)
	GetProjectFunc    func(ctx context.Context, projectID, teamID primitive.ObjectID) (*models.Project, error)
	UpdateProjectFunc func(ctx context.Context, projectID, teamID primitive.ObjectID, req *models.UpdateProjectRequest) (*models.Project, error)
	DeleteProjectFunc func(ctx context.Context, projectID, teamID, actorID primitive.ObjectID) error
}

func (m *MockProjectService) ListProjects(ctx context.Context, teamID primitive.ObjectID) (*models.ProjectListResponse, error) {
	if m.ListProjectsFunc != nil {
		return m.ListProjectsFunc(ctx, teamID)
	}
	return nil, nil
}

func (m *MockProjectService) CreateProject(ctx context.Context, teamID, actorID primitive.ObjectID, req *models.CreateProjectRequest) (*models.Project, error) {
	if m.CreateProjectFunc != nil {
		return m.CreateProjectFunc(ctx, teamID, actorID, req)
	}
	return nil, nil
}

func (m *MockProjectService) GetProject(ctx context.Context, projectID, teamID primitive.ObjectID) (*models.Project, error) {
	if m.GetProjectFunc != nil {
		return m.GetProjectFunc(ctx, projectID, teamID)
	}
	return nil, nil
}

func (m *MockProjectService) UpdateProject(ctx context.Context, projectID, teamID primitive.ObjectID, req *models.UpdateProjectRequest) (*models.Project, error) {
	if m.UpdateProjectFunc != nil {
		return m.UpdateProjectFunc(ctx, projectID, teamID, req)
	}
	return nil, nil
}

func (m *MockProjectService) DeleteProject(ctx context.Context, projectID, teamID, actorID primitive.ObjectID) error {
	if m.DeleteProjectFunc != nil {
		return m.DeleteProjectFunc(ctx, projectID, teamID, actorID)
	}
	return nil
}

// MockTaskService is a mock implementation of service.TaskServicer.
type MockTaskService struct {
	ListTasksFunc  func(ctx context.Context, projectID, teamID primitive.ObjectID) (*models.TaskListResponse, error)
	CreateTaskFunc func(ctx context.Context, projectID, teamID, actorID primitive.ObjectID, req *models.CreateTaskRequest) (*models.Task, error)
	GetTaskFunc    func(ctx context.Context, taskID, teamID primitive.ObjectID) (*models.Task, error)
	UpdateTaskFunc func(ctx context.Context, taskID, teamID, actorID primitive.ObjectID, role models.Role, req *models.UpdateTaskRequest) (*models.Task, error)
	MoveTaskFunc   func(ctx context.Context, taskID, teamID, actorID primitive.ObjectID, req *models.MoveTaskRequest) (*models.Task, error)
	DeleteTaskFunc func(ctx context.Context, taskID, teamID, actorID primitive.ObjectID) error
}

func (m *MockTaskService) ListTasks(ctx context.Context, projectID, teamID primitive.ObjectID) (*models.TaskListResponse, error) {
	if m.ListTasksFunc != nil {
		return m.ListTasksFunc(ctx, projectID, teamID)
	}
	return nil, nil
}

func (m *MockTaskService) CreateTask(ctx context.Context, projectID, teamID, actorID primitive.ObjectID, req *models.CreateTaskRequest) (*models.Task, error) {
	if m.CreateTaskFunc != nil {
		return m.CreateTaskFunc(ctx, projectID, teamID, actorID, req)
	}
	return nil, nil
}

func (m *MockTaskService) GetTask(ctx context.Context, taskID, teamID primitive.ObjectID) (*models.Task, error) {
	if m.GetTaskFunc != nil {
		return m.GetTaskFunc(ctx, taskID, teamID)
	}
	return nil, nil
}

func (m *MockTaskService) UpdateTask(ctx context.Context, taskID, teamID, actorID primitive.ObjectID, role models.Role, req *models.UpdateTaskRequest) (*models.Task, error) {
	if m.UpdateTaskFunc != nil {
		return m.UpdateTaskFunc(ctx, taskID, teamID, actorID, role, req)
	}
	return nil, nil
}

func (m *MockTaskService) MoveTask(ctx context.Context, taskID, teamID, actorID primitive.ObjectID, req *models.MoveTaskRequest) (*models.Task, error) {
	if m.MoveTaskFunc != nil {
		return m.MoveTaskFunc(ctx, taskID, teamID, actorID, req)
	}
	return nil, nil
}

func (m *MockTaskService) DeleteTask(ctx context.Context, taskID, teamID, actorID primitive.ObjectID) error {
	if m.DeleteTaskFunc != nil {
		return m.DeleteTaskFunc(ctx, taskID, teamID, actorID)
	}
	return nil
}

// MockMessageService is a mock implementation of service.MessageServicer.
type MockMessageService struct {
	ListMessagesFunc          func(ctx context.Context, teamID primitive.ObjectID, limit int, before *time.Time) (*models.MessageListResponse, error)
	PostMessageFunc           func(ctx context.Context, teamID primitive.ObjectID, sender *models.User, req *models.CreateMessageRequest) (*models.Message, error)
	AttachmentUploadURLFunc   func(ctx context.Context, teamID primitive.ObjectID, filename, contentType string) (*models.AttachmentUploadResponse, error)
	AttachmentDownloadURLFunc func(ctx context.Context, teamID primitive.ObjectID, key string) (*models.AttachmentDownloadResponse, error)
}

func (m *MockMessageService) ListMessages(ctx context.Context, teamID primitive.ObjectID, limit int, before *time.Time) (*models.MessageListResponse, error) {
	if m.ListMessagesFunc != nil {
		return m.ListMessagesFunc(ctx, teamID, limit, before)
	}
	return nil, nil
}

func (m *MockMessageService) PostMessage(ctx context.Context, teamID primitive.ObjectID, sender *models.User, req *models.CreateMessageRequest) (*models.Message, error) {
	if m.PostMessageFunc != nil {
		return m.PostMessageFunc(ctx, teamID, sender, req)
	}
	return nil, nil
}

func (m *MockMessageService) AttachmentUploadURL(ctx context.Context, teamID primitive.ObjectID, filename, contentType string) (*models.AttachmentUploadResponse, error) {
	if m.AttachmentUploadURLFunc != nil {
		return m.AttachmentUploadURLFunc(ctx, teamID, filename, contentType)
	}
	return nil, nil
}

func (m *MockMessageService) AttachmentDownloadURL(ctx context.Context, teamID primitive.ObjectID, key string) (*models.AttachmentDownloadResponse, error) {
	if m.AttachmentDownloadURLFunc != nil {
		return m.AttachmentDownloadURLFunc(ctx, teamID, key)
	}
	return nil, nil
}

// MockActivityService is a mock implementation of service.ActivityServicer.
type MockActivityService struct {
	ListActivitiesFunc func(ctx context.Context, teamID primitive.ObjectID, limit int) (*models.ActivityListResponse, error)
}

func (m *MockActivityService) ListActivities(ctx context.Context, teamID primitive.ObjectID, limit int) (*models.ActivityListResponse, error) {
	if m.ListActivitiesFunc != nil {
		return m.ListActivitiesFunc(ctx, teamID, limit)
	}
	return nil, nil
}
