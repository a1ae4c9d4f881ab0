package service

import (
	"context"
	"fmt"
	"time"

	"teamsync/internal/authz"
	apperrors "teamsync/internal/errors"
	"teamsync/internal/models"
	"teamsync/internal/queue"
	"teamsync/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// positionStep is the gap left between neighboring tasks so later inserts
// can average between them without rewriting the column.
const positionStep = 1000

// TaskService handles business logic for task operations.
type TaskService struct {
	taskRepo       repository.TaskRepository
	projectRepo    repository.ProjectRepository
	membershipRepo repository.MembershipRepository
	recorder       *queue.Recorder
}

// NewTaskService creates a new TaskService.
func NewTaskService(
	taskRepo repository.TaskRepository,
	projectRepo repository.ProjectRepository,
	membershipRepo repository.MembershipRepository,
	recorder *queue.Recorder,
) *TaskService {
	return &TaskService{
		taskRepo:       taskRepo,
		projectRepo:    projectRepo,
		membershipRepo: membershipRepo,
		recorder:       recorder,
	}
}

// ListTasks returns a project's tasks ordered by column and position.
func (s *TaskService) ListTasks(ctx context.Context, projectID, teamID primitive.ObjectID) (*models.TaskListResponse, error) {
	if _, err := s.projectInTeam(ctx, projectID, teamID); err != nil {
		return nil, err
	}

	tasks, err := s.taskRepo.FindByProjectID(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if tasks == nil {
		tasks = []models.Task{}
	}
	return &models.TaskListResponse{Items: tasks}, nil
}

// CreateTask creates a task in the TODO column, placed after the column's
// current last task.
func (s *TaskService) CreateTask(ctx context.Context, projectID, teamID, actorID primitive.ObjectID, req *models.CreateTaskRequest) (*models.Task, error) {
	if _, err := s.projectInTeam(ctx, projectID, teamID); err != nil {
		return nil, err
	}

	priority := req.Priority
	if priority == "" {
		priority = models.PriorityMedium
	}

	var assignedTo *primitive.ObjectID
	if req.AssignedTo != nil {
		id, err := s.assigneeInTeam(ctx, teamID, *req.AssignedTo)
		if err != nil {
			return nil, err
		}
		assignedTo = id
	}

	max, found, err := s.taskRepo.MaxPosition(ctx, projectID, models.StatusTodo)
	if err != nil {
		return nil, err
	}
	position := float64(positionStep)
	if found {
		position = max + positionStep
	}

	task := &models.Task{
		Title:       req.Title,
		Description: req.Description,
		ProjectID:   projectID,
		TeamID:      teamID,
		Status:      models.StatusTodo,
		Priority:    priority,
		Position:    position,
		CreatedBy:   actorID,
		AssignedTo:  assignedTo,
		DueDate:     req.DueDate,
	}
	if err := s.taskRepo.Create(ctx, task); err != nil {
		return nil, err
	}

	s.recorder.Record(teamID, actorID, models.ActivityTaskCreated, fmt.Sprintf("created task %q", task.Title))
	if assignedTo != nil {
		s.recorder.Record(teamID, actorID, models.ActivityTaskAssigned, fmt.Sprintf("assigned task %q", task.Title))
	}
	return task, nil
}

// GetTask retrieves a task, scoped to the team.
func (s *TaskService) GetTask(ctx context.Context, taskID, teamID primitive.ObjectID) (*models.Task, error) {
	task, err := s.taskRepo.FindByID(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if task.TeamID != teamID {
		return nil, apperrors.ErrTaskNotFound
	}
	return task, nil
}

// UpdateTask applies a partial update after checking each field group
// against the caller: descriptive fields belong to the creator, status to
// the assignee, and reassignment to admins and the manager. The whole
// update is rejected if any group fails.
func (s *TaskService) UpdateTask(ctx context.Context, taskID, teamID, actorID primitive.ObjectID, role models.Role, req *models.UpdateTaskRequest) (*models.Task, error) {
	task, err := s.GetTask(ctx, taskID, teamID)
	if err != nil {
		return nil, err
	}

	patch := authz.TaskPatch{
		Details:    req.Title != nil || req.Description != nil || req.Priority != nil || req.DueDate != nil,
		Status:     req.Status != nil,
		Assignment: req.AssignedTo != nil,
	}
	if err := authz.AuthorizeTaskUpdate(role, actorID, task, patch); err != nil {
		return nil, err
	}

	set := bson.M{"updatedAt": time.Now()}
	if req.Title != nil {
		set["title"] = *req.Title
	}
	if req.Description != nil {
		set["description"] = *req.Description
	}
	if req.Priority != nil {
		set["priority"] = *req.Priority
	}
	if req.DueDate != nil {
		set["dueDate"] = *req.DueDate
	}
	if req.Status != nil {
		set["status"] = *req.Status
	}
	if req.AssignedTo != nil {
		id, err := s.assigneeInTeam(ctx, teamID, *req.AssignedTo)
		if err != nil {
			return nil, err
		}
		set["assignedTo"] = *id
	}

	updated, err := s.taskRepo.Update(ctx, taskID, set)
	if err != nil {
		return nil, err
	}

	if patch.Assignment {
		s.recorder.Record(teamID, actorID, models.ActivityTaskAssigned, fmt.Sprintf("assigned task %q", updated.Title))
	}
	return updated, nil
}

// MoveTask repositions a task on the board. The new position is the average
// of the named neighbors, so a move touches only the moved task. The write
// is conditional on the position the caller last saw; a concurrent move
// surfaces as a conflict rather than a silent overwrite.
func (s *TaskService) MoveTask(ctx context.Context, taskID, teamID, actorID primitive.ObjectID, req *models.MoveTaskRequest) (*models.Task, error) {
	task, err := s.GetTask(ctx, taskID, teamID)
	if err != nil {
		return nil, err
	}

	if req.Status != task.Status && !authz.CanTransitionStatus(actorID, task) {
		return nil, apperrors.ErrNotAssignee
	}

	position, err := s.resolvePosition(ctx, task, req)
	if err != nil {
		return nil, err
	}

	if err := s.taskRepo.Move(ctx, taskID, task.Status, task.Position, req.Status, position); err != nil {
		return nil, err
	}

	if req.Status != task.Status {
		s.recorder.Record(teamID, actorID, models.ActivityTaskMoved, fmt.Sprintf("moved task %q to %s", task.Title, req.Status))
	}

	task.Status = req.Status
	task.Position = position
	return task, nil
}

// DeleteTask removes a task.
func (s *TaskService) DeleteTask(ctx context.Context, taskID, teamID, actorID primitive.ObjectID) error {
	task, err := s.GetTask(ctx, taskID, teamID)
	if err != nil {
		return err
	}

	if err := s.taskRepo.Delete(ctx, taskID, teamID); err != nil {
		return err
	}

	s.recorder.Record(teamID, actorID, models.ActivityTaskDeleted, fmt.Sprintf("deleted task %q", task.Title))
	return nil
}

// resolvePosition computes the moved task's new position from its desired
// neighbors in the target column. Neighbors that are no longer where the
// caller believed them to be mean the board changed underneath them.
func (s *TaskService) resolvePosition(ctx context.Context, task *models.Task, req *models.MoveTaskRequest) (float64, error) {
	before, err := s.neighbor(ctx, task, req.Status, req.BeforeTaskID)
	if err != nil {
		return 0, err
	}
	after, err := s.neighbor(ctx, task, req.Status, req.AfterTaskID)
	if err != nil {
		return 0, err
	}

	switch {
	case before != nil && after != nil:
		return (before.Position + after.Position) / 2, nil
	case before != nil:
		return before.Position + positionStep, nil
	case after != nil:
		return after.Position - positionStep, nil
	}

	// No neighbors named: append to the end of the column.
	max, found, err := s.taskRepo.MaxPosition(ctx, task.ProjectID, req.Status)
	if err != nil {
		return 0, err
	}
	if !found {
		return positionStep, nil
	}
	return max + positionStep, nil
}

// neighbor loads a named neighbor and verifies it still sits in the target
// column of the same project.
func (s *TaskService) neighbor(ctx context.Context, task *models.Task, status models.TaskStatus, rawID *string) (*models.Task, error) {
	if rawID == nil {
		return nil, nil
	}
	id, err := primitive.ObjectIDFromHex(*rawID)
	if err != nil {
		return nil, apperrors.ErrTaskNotFound
	}

	n, err := s.taskRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if n.ProjectID != task.ProjectID || n.Status != status {
		return nil, apperrors.ErrTaskPositionConflict
	}
	return n, nil
}

// projectInTeam loads a project and verifies it belongs to the team.
func (s *TaskService) projectInTeam(ctx context.Context, projectID, teamID primitive.ObjectID) (*models.Project, error) {
	project, err := s.projectRepo.FindByID(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if project.TeamID != teamID {
		return nil, apperrors.ErrProjectNotFound
	}
	return project, nil
}

// assigneeInTeam verifies the proposed assignee holds an accepted membership
// in the team.
func (s *TaskService) assigneeInTeam(ctx context.Context, teamID primitive.ObjectID, rawID string) (*primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(rawID)
	if err != nil {
		return nil, apperrors.ErrAssigneeNotInTeam
	}

	membership, err := s.membershipRepo.FindByTeamAndUser(ctx, teamID, id)
	if err == apperrors.ErrMemberNotFound {
		return nil, apperrors.ErrAssigneeNotInTeam
	}
	if err != nil {
		return nil, err
	}
	if membership.Status != models.StatusAccepted {
		return nil, apperrors.ErrAssigneeNotInTeam
	}
	return &id, nil
}
