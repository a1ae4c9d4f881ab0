// Package fixtures provides test data builders for unit and integration tests.
package fixtures

import (
	"fmt"
	"time"

	"teamsync/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ===== User Fixtures =====

// UserBuilder provides fluent API for building test users.
type UserBuilder struct {
	user models.User
}

// NewUser creates a new UserBuilder with sensible defaults.
func NewUser() *UserBuilder {
	id := primitive.NewObjectID()
	return &UserBuilder{
		user: models.User{
			ID:        id,
			SubjectID: "test|" + id.Hex(),
			Name:      "Test User",
			Email:     fmt.Sprintf("test-%s@example.com", id.Hex()[:8]),
			Role:      models.RoleMember,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
	}
}

func (b *UserBuilder) WithID(id primitive.ObjectID) *UserBuilder {
	b.user.ID = id
	return b
}

func (b *UserBuilder) WithSubject(subjectID string) *UserBuilder {
	b.user.SubjectID = subjectID
	return b
}

func (b *UserBuilder) WithName(name string) *UserBuilder {
	b.user.Name = name
	return b
}

func (b *UserBuilder) WithEmail(email string) *UserBuilder {
	b.user.Email = email
	return b
}

func (b *UserBuilder) WithTeam(teamID primitive.ObjectID, role models.Role) *UserBuilder {
	b.user.TeamID = &teamID
	b.user.Role = role
	return b
}

func (b *UserBuilder) Build() models.User {
	return b.user
}

func (b *UserBuilder) BuildPtr() *models.User {
	return &b.user
}

// ===== Team Fixtures =====

// TeamBuilder provides fluent API for building test teams.
type TeamBuilder struct {
	team models.Team
}

// NewTeam creates a new TeamBuilder with sensible defaults.
func NewTeam() *TeamBuilder {
	return &TeamBuilder{
		team: models.Team{
			ID:          primitive.NewObjectID(),
			Name:        "Test Team",
			Description: "A test team",
			AdminID:     primitive.NewObjectID(),
			CreatedAt:   time.Now(),
			UpdatedAt:   time.Now(),
		},
	}
}

func (b *TeamBuilder) WithID(id primitive.ObjectID) *TeamBuilder {
	b.team.ID = id
	return b
}

func (b *TeamBuilder) WithName(name string) *TeamBuilder {
	b.team.Name = name
	return b
}

func (b *TeamBuilder) WithAdminID(adminID primitive.ObjectID) *TeamBuilder {
	b.team.AdminID = adminID
	return b
}

func (b *TeamBuilder) Build() models.Team {
	return b.team
}

func (b *TeamBuilder) BuildPtr() *models.Team {
	return &b.team
}

// ===== Membership Fixtures =====

// MembershipBuilder provides fluent API for building test memberships.
type MembershipBuilder struct {
	membership models.Membership
}

// NewMembership creates a new MembershipBuilder with sensible defaults.
func NewMembership() *MembershipBuilder {
	return &MembershipBuilder{
		membership: models.Membership{
			ID:       primitive.NewObjectID(),
			TeamID:   primitive.NewObjectID(),
			UserID:   primitive.NewObjectID(),
			Role:     models.RoleMember,
			Status:   models.StatusAccepted,
			JoinedAt: time.Now(),
		},
	}
}

func (b *MembershipBuilder) WithTeamID(teamID primitive.ObjectID) *MembershipBuilder {
	b.membership.TeamID = teamID
	return b
}

func (b *MembershipBuilder) WithUserID(userID primitive.ObjectID) *MembershipBuilder {
	b.membership.UserID = userID
	return b
}

func (b *MembershipBuilder) WithInvitedBy(userID primitive.ObjectID) *MembershipBuilder {
	b.membership.InvitedBy = userID
	return b
}

func (b *MembershipBuilder) AsAdmin() *MembershipBuilder {
	b.membership.Role = models.RoleAdmin
	return b
}

func (b *MembershipBuilder) AsManager() *MembershipBuilder {
	b.membership.Role = models.RoleManager
	return b
}

func (b *MembershipBuilder) AsMember() *MembershipBuilder {
	b.membership.Role = models.RoleMember
	return b
}

func (b *MembershipBuilder) Build() models.Membership {
	return b.membership
}

func (b *MembershipBuilder) BuildPtr() *models.Membership {
	return &b.membership
}

// ===== Project Fixtures =====

// ProjectBuilder provides fluent API for building test projects.
type ProjectBuilder struct {
	project models.Project
}

// NewProject creates a new ProjectBuilder with sensible defaults.
func NewProject() *ProjectBuilder {
	return &ProjectBuilder{
		project: models.Project{
			ID:          primitive.NewObjectID(),
			Name:        "Test Project",
			Description: "A test project",
			TeamID:      primitive.NewObjectID(),
			AdminID:     primitive.NewObjectID(),
			CreatedAt:   time.Now(),
			UpdatedAt:   time.Now(),
		},
	}
}

func (b *ProjectBuilder) WithID(id primitive.ObjectID) *ProjectBuilder {
	b.project.ID = id
	return b
}

func (b *ProjectBuilder) WithName(name string) *ProjectBuilder {
	b.project.Name = name
	return b
}

func (b *ProjectBuilder) WithTeamID(teamID primitive.ObjectID) *ProjectBuilder {
	b.project.TeamID = teamID
	return b
}

func (b *ProjectBuilder) WithAdminID(adminID primitive.ObjectID) *ProjectBuilder {
	b.project.AdminID = adminID
	return b
}

func (b *ProjectBuilder) Build() models.Project {
	return b.project
}

func (b *ProjectBuilder) BuildPtr() *models.Project {
	return &b.project
}

// ===== Task Fixtures =====

// TaskBuilder provides fluent API for building test tasks.
type TaskBuilder struct {
	task models.Task
}

// NewTask creates a new TaskBuilder with sensible defaults.
func NewTask() *TaskBuilder {
	return &TaskBuilder{
		task: models.Task{
			ID:        primitive.NewObjectID(),
			Title:     "Test Task",
			ProjectID: primitive.NewObjectID(),
			TeamID:    primitive.NewObjectID(),
			Status:    models.StatusTodo,
			Priority:  models.PriorityMedium,
			Position:  1000,
			CreatedBy: primitive.NewObjectID(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
	}
}

func (b *TaskBuilder) WithID(id primitive.ObjectID) *TaskBuilder {
	b.task.ID = id
	return b
}

func (b *TaskBuilder) WithTitle(title string) *TaskBuilder {
	b.task.Title = title
	return b
}

func (b *TaskBuilder) WithProject(projectID, teamID primitive.ObjectID) *TaskBuilder {
	b.task.ProjectID = projectID
	b.task.TeamID = teamID
	return b
}

func (b *TaskBuilder) WithStatus(status models.TaskStatus) *TaskBuilder {
	b.task.Status = status
	return b
}

func (b *TaskBuilder) WithPosition(position float64) *TaskBuilder {
	b.task.Position = position
	return b
}

func (b *TaskBuilder) WithCreatedBy(userID primitive.ObjectID) *TaskBuilder {
	b.task.CreatedBy = userID
	return b
}

func (b *TaskBuilder) WithAssignee(userID primitive.ObjectID) *TaskBuilder {
	b.task.AssignedTo = &userID
	return b
}

func (b *TaskBuilder) Build() models.Task {
	return b.task
}

func (b *TaskBuilder) BuildPtr() *models.Task {
	return &b.task
}

// ===== Message Fixtures =====

// MessageBuilder provides fluent API for building test messages.
type MessageBuilder struct {
	message models.Message
}

// NewMessage creates a new MessageBuilder with sensible defaults.
func NewMessage() *MessageBuilder {
	return &MessageBuilder{
		message: models.Message{
			ID:         primitive.NewObjectID(),
			TeamID:     primitive.NewObjectID(),
			SenderID:   primitive.NewObjectID(),
			SenderName: "Test User",
			Content:    "hello",
			CreatedAt:  time.Now(),
		},
	}
}

func (b *MessageBuilder) WithTeamID(teamID primitive.ObjectID) *MessageBuilder {
	b.message.TeamID = teamID
	return b
}

func (b *MessageBuilder) WithSender(userID primitive.ObjectID, name string) *MessageBuilder {
	b.message.SenderID = userID
	b.message.SenderName = name
	return b
}

func (b *MessageBuilder) WithContent(content string) *MessageBuilder {
	b.message.Content = content
	return b
}

func (b *MessageBuilder) WithAttachment(key string) *MessageBuilder {
	b.message.AttachmentKey = key
	return b
}

func (b *MessageBuilder) WithCreatedAt(ts time.Time) *MessageBuilder {
	b.message.CreatedAt = ts
	return b
}

func (b *MessageBuilder) Build() models.Message {
	return b.message
}

func (b *MessageBuilder) BuildPtr() *models.Message {
	return &b.message
}
