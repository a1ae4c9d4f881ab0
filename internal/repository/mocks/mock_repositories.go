// Package mocks provides mock implementations of repository interfaces for testing.
package mocks

import (
	"context"
	"time"

	"teamsync/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MockUserRepository is a mock implementation of repository.UserRepository.
type MockUserRepository struct {
	CreateFunc        func(ctx context.Context, user *models.User) error
	FindByIDFunc      func(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	FindByEmailFunc   func(ctx context.Context, email string) (*models.User, error)
	FindBySubjectFunc func(ctx context.Context, subjectID string) (*models.User, error)
	LinkSubjectFunc   func(ctx context.Context, id primitive.ObjectID, subjectID string) error
	UpdateNameFunc    func(ctx context.Context, id primitive.ObjectID, name string) error
	SetTeamFunc       func(ctx context.Context, id primitive.ObjectID, teamID *primitive.ObjectID, role models.Role) error
}

func (m *MockUserRepository) Create(ctx context.Context, user *models.User) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, user)
	}
	return nil
}

func (m *MockUserRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(ctx, email)
	}
	return nil, nil
}

func (m *MockUserRepository) FindBySubject(ctx context.Context, subjectID string) (*models.User, error) {
	if m.FindBySubjectFunc != nil {
		return m.FindBySubjectFunc(ctx, subjectID)
	}
	return nil, nil
}

func (m *MockUserRepository) LinkSubject(ctx context.Context, id primitive.ObjectID, subjectID string) error {
	if m.LinkSubjectFunc != nil {
		return m.LinkSubjectFunc(ctx, id, subjectID)
	}
	return nil
}

func (m *MockUserRepository) UpdateName(ctx context.Context, id primitive.ObjectID, name string) error {
	if m.UpdateNameFunc != nil {
		return m.UpdateNameFunc(ctx, id, name)
	}
	return nil
}

func (m *MockUserRepository) SetTeam(ctx context.Context, id primitive.ObjectID, teamID *primitive.ObjectID, role models.Role) error {
	if m.SetTeamFunc != nil {
		return m.SetTeamFunc(ctx, id, teamID, role)
	}
	return nil
}

// MockTeamRepository is a mock implementation of repository.TeamRepository.
type MockTeamRepository struct {
	CreateFunc        func(ctx context.Context, team *models.Team) error
	FindByIDFunc      func(ctx context.Context, id primitive.ObjectID) (*models.Team, error)
	FindByAdminIDFunc func(ctx context.Context, adminID primitive.ObjectID) ([]models.Team, error)
	UpdateFunc        func(ctx context.Context, id primitive.ObjectID, update *models.UpdateTeamRequest) (*models.Team, error)
	DeleteFunc        func(ctx context.Context, id primitive.ObjectID) error
}

func (m *MockTeamRepository) Create(ctx context.Context, team *models.Team) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, team)
	}
	return nil
}

func (m *MockTeamRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Team, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockTeamRepository) FindByAdminID(ctx context.Context, adminID primitive.ObjectID) ([]models.Team, error) {
	if m.FindByAdminIDFunc != nil {
		return m.FindByAdminIDFunc(ctx, adminID)
	}
	return nil, nil
}

func (m *MockTeamRepository) Update(ctx context.Context, id primitive.ObjectID, update *models.UpdateTeamRequest) (*models.Team, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, id, update)
	}
	return nil, nil
}

func (m *MockTeamRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

// MockMembershipRepository is a mock implementation of repository.MembershipRepository.
type MockMembershipRepository struct {
	CreateFunc            func(ctx context.Context, membership *models.Membership) error
	FindByTeamIDFunc      func(ctx context.Context, teamID primitive.ObjectID) ([]models.Membership, error)
	FindByTeamAndUserFunc func(ctx context.Context, teamID, userID primitive.ObjectID) (*models.Membership, error)
	FindManagerFunc       func(ctx context.Context, teamID primitive.ObjectID) (*models.Membership, error)
	UpdateRoleFunc        func(ctx context.Context, teamID, userID primitive.ObjectID, role models.Role) error
	DeleteFunc            func(ctx context.Context, teamID, userID primitive.ObjectID) error
	DeleteAllByTeamIDFunc func(ctx context.Context, teamID primitive.ObjectID) error
}

func (m *MockMembershipRepository) Create(ctx context.Context, membership *models.Membership) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, membership)
	}
	return nil
}

func (m *MockMembershipRepository) FindByTeamID(ctx context.Context, teamID primitive.ObjectID) ([]models.Membership, error) {
	if m.FindByTeamIDFunc != nil {
		return m.FindByTeamIDFunc(ctx, teamID)
	}
	return nil, nil
}

func (m *MockMembershipRepository) FindByTeamAndUser(ctx context.Context, teamID, userID primitive.ObjectID) (*models.Membership, error) {
	if m.FindByTeamAndUserFunc != nil {
		return m.FindByTeamAndUserFunc(ctx, teamID, userID)
	}
	return nil, nil
}

func (m *MockMembershipRepository) FindManager(ctx context.Context, teamID primitive.ObjectID) (*models.Membership, error) {
	if m.FindManagerFunc != nil {
		return m.FindManagerFunc(ctx, teamID)
	}
	return nil, nil
}

func (m *MockMembershipRepository) UpdateRole(ctx context.Context, teamID, userID primitive.ObjectID, role models.Role) error {
	if m.UpdateRoleFunc != nil {
		return m.UpdateRoleFunc(ctx, teamID, userID, role)
	}
	return nil
}

func (m *MockMembershipRepository) Delete(ctx context.Context, teamID, userID primitive.ObjectID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, teamID, userID)
	}
	return nil
}

func (m *MockMembershipRepository) DeleteAllByTeamID(ctx context.Context, teamID primitive.ObjectID) error {
	if m.DeleteAllByTeamIDFunc != nil {
		return m.DeleteAllByTeamIDFunc(ctx, teamID)
	}
	return nil
}

// MockProjectRepository is a mock implementation of repository.ProjectRepository.
type MockProjectRepository struct {
	CreateFunc            func(ctx context.Context, project *models.Project) error
	FindByIDFunc          func(ctx context.Context, id primitive.ObjectID) (*models.Project, error)
	FindByTeamIDFunc      func(ctx context.Context, teamID primitive.ObjectID) ([]models.Project, error)
	UpdateFunc            func(ctx context.Context, id, teamID primitive.ObjectID, update *models.UpdateProjectRequest) (*models.Project, error)
	DeleteFunc            func(ctx context.Context, id, teamID primitive.ObjectID) error
	DeleteAllByTeamIDFunc func(ctx context.Context, teamID primitive.ObjectID) error
}

func (m *MockProjectRepository) Create(ctx context.Context, project *models.Project) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, project)
	}
	return nil
}

func (m *MockProjectRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Project, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockProjectRepository) FindByTeamID(ctx context.Context, teamID primitive.ObjectID) ([]models.Project, error) {
	if m.FindByTeamIDFunc != nil {
		return m.FindByTeamIDFunc(ctx, teamID)
	}
	return nil, nil
}

func (m *MockProjectRepository) Update(ctx context.Context, id, teamID primitive.ObjectID, update *models.UpdateProjectRequest) (*models.Project, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, id, teamID, update)
	}
	return nil, nil
}

func (m *MockProjectRepository) Delete(ctx context.Context, id, teamID primitive.ObjectID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id, teamID)
	}
	return nil
}

func (m *MockProjectRepository) DeleteAllByTeamID(ctx context.Context, teamID primitive.ObjectID) error {
	if m.DeleteAllByTeamIDFunc != nil {
		return m.DeleteAllByTeamIDFunc(ctx, teamID)
	}
	return nil
}

// MockTaskRepository is a mock implementation of repository.TaskRepository.
type MockTaskRepository struct {
	CreateFunc               func(ctx context.Context, task *models.Task) error
	FindByIDFunc             func(ctx context.Context, id primitive.ObjectID) (*models.Task, error)
	FindByProjectIDFunc      func(ctx context.Context, projectID primitive.ObjectID) ([]models.Task, error)
	MaxPositionFunc          func(ctx context.Context, projectID primitive.ObjectID, status models.TaskStatus) (float64, bool, error)
	UpdateFunc               func(ctx context.Context, id primitive.ObjectID, set bson.M) (*models.Task, error)
	MoveFunc                 func(ctx context.Context, id primitive.ObjectID, fromStatus models.TaskStatus, fromPosition float64, toStatus models.TaskStatus, toPosition float64) error
	DeleteFunc               func(ctx context.Context, id, teamID primitive.ObjectID) error
	DeleteAllByProjectIDFunc func(ctx context.Context, projectID primitive.ObjectID) error
	DeleteAllByTeamIDFunc    func(ctx context.Context, teamID primitive.ObjectID) error
}

func (m *MockTaskRepository) Create(ctx context.Context, task *models.Task) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, task)
	}
	return nil
}

func (m *MockTaskRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Task, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockTaskRepository) FindByProjectID(ctx context.Context, projectID primitive.ObjectID) ([]models.Task, error) {
	if m.FindByProjectIDFunc != nil {
		return m.FindByProjectIDFunc(ctx, projectID)
	}
	return nil, nil
}

func (m *MockTaskRepository) MaxPosition(ctx context.Context, projectID primitive.ObjectID, status models.TaskStatus) (float64, bool, error) {
	if m.MaxPositionFunc != nil {
		return m.MaxPositionFunc(ctx, projectID, status)
	}
	return 0, false, nil
}

func (m *MockTaskRepository) Update(ctx context.Context, id primitive.ObjectID, set bson.M) (*models.Task, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, id, set)
	}
	return nil, nil
}

func (m *MockTaskRepository) Move(ctx context.Context, id primitive.ObjectID, fromStatus models.TaskStatus, fromPosition float64, toStatus models.TaskStatus, toPosition float64) error {
	if m.MoveFunc != nil {
		return m.MoveFunc(ctx, id, fromStatus, fromPosition, toStatus, toPosition)
	}
	return nil
}

func (m *MockTaskRepository) Delete(ctx context.Context, id, teamID primitive.ObjectID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id, teamID)
	}
	return nil
}

func (m *MockTaskRepository) DeleteAllByProjectID(ctx context.Context, projectID primitive.ObjectID) error {
	if m.DeleteAllByProjectIDFunc != nil {
		return m.DeleteAllByProjectIDFunc(ctx, projectID)
	}
	return nil
}

func (m *MockTaskRepository) DeleteAllByTeamID(ctx context.Context, teamID primitive.ObjectID) error {
	if m.DeleteAllByTeamIDFunc != nil {
		return m.DeleteAllByTeamIDFunc(ctx, teamID)
	}
	return nil
}

// MockMessageRepository is a mock implementation of repository.MessageRepository.
type MockMessageRepository struct {
	CreateFunc            func(ctx context.Context, message *models.Message) error
	FindByTeamIDFunc      func(ctx context.Context, teamID primitive.ObjectID, limit int, before *time.Time) ([]models.Message, error)
	DeleteAllByTeamIDFunc func(ctx context.Context, teamID primitive.ObjectID) error
}

func (m *MockMessageRepository) Create(ctx context.Context, message *models.Message) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, message)
	}
	return nil
}

func (m *MockMessageRepository) FindByTeamID(ctx context.Context, teamID primitive.ObjectID, limit int, before *time.Time) ([]models.Message, error) {
	if m.FindByTeamIDFunc != nil {
		return m.FindByTeamIDFunc(ctx, teamID, limit, before)
	}
	return nil, nil
}

func (m *MockMessageRepository) DeleteAllByTeamID(ctx context.Context, teamID primitive.ObjectID) error {
	if m.DeleteAllByTeamIDFunc != nil {
		return m.DeleteAllByTeamIDFunc(ctx, teamID)
	}
	return nil
}

// MockActivityRepository is a mock implementation of repository.ActivityRepository.
type MockActivityRepository struct {
	CreateFunc            func(ctx context.Context, activity *models.Activity) error
	FindByTeamIDFunc      func(ctx context.Context, teamID primitive.ObjectID, limit int) ([]models.Activity, error)
	DeleteAllByTeamIDFunc func(ctx context.Context, teamID primitive.ObjectID) error
}

func (m *MockActivityRepository) Create(ctx context.Context, activity *models.Activity) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, activity)
	}
	return nil
}

func (m *MockActivityRepository) FindByTeamID(ctx context.Context, teamID primitive.ObjectID, limit int) ([]models.Activity, error) {
	if m.FindByTeamIDFunc != nil {
		return m.FindByTeamIDFunc(ctx, teamID, limit)
	}
	return nil, nil
}

func (m *MockActivityRepository) DeleteAllByTeamID(ctx context.Context, teamID primitive.ObjectID) error {
	if m.DeleteAllByTeamIDFunc != nil {
		return m.DeleteAllByTeamIDFunc(ctx, teamID)
	}
	return nil
}
