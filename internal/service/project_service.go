package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"teamsync/internal/cache"
	apperrors "teamsync/internal/errors"
	"teamsync/internal/models"
	"teamsync/internal/queue"
	"teamsync/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// projectListTTL bounds how stale a cached project listing can get.
const projectListTTL = 5 * time.Minute

// ProjectService handles business logic for project operations.
type ProjectService struct {
	projectRepo repository.ProjectRepository
	taskRepo    repository.TaskRepository
	teamRepo    repository.TeamRepository
	cache       cache.Cache
	recorder    *queue.Recorder
}

// NewProjectService creates a new ProjectService.
func NewProjectService(
	projectRepo repository.ProjectRepository,
	taskRepo repository.TaskRepository,
	teamRepo repository.TeamRepository,
	cache cache.Cache,
	recorder *queue.Recorder,
) *ProjectService {
	return &ProjectService{
		projectRepo: projectRepo,
		taskRepo:    taskRepo,
		teamRepo:    teamRepo,
		cache:       cache,
		recorder:    recorder,
	}
}

// ListProjects returns a team's projects, newest first. Listings are cached;
// every write path invalidates the team's entry.
func (s *ProjectService) ListProjects(ctx context.Context, teamID primitive.ObjectID) (*models.ProjectListResponse, error) {
	key := cache.ProjectListKey(teamID.Hex())

	var cached models.ProjectListResponse
	hit, err := s.cache.Get(ctx, key, &cached)
	if err != nil {
		log.Printf("Project cache read failed for team %s: %v", teamID.Hex(), err)
	}
	if hit {
		return &cached, nil
	}

	projects, err := s.projectRepo.FindByTeamID(ctx, teamID)
	if err != nil {
		return nil, err
	}
	if projects == nil {
		projects = []models.Project{}
	}

	resp := &models.ProjectListResponse{Items: projects}
	if err := s.cache.Set(ctx, key, resp, projectListTTL); err != nil {
		log.Printf("Project cache write failed for team %s: %v", teamID.Hex(), err)
	}
	return resp, nil
}

// CreateProject creates a project under a team.
func (s *ProjectService) CreateProject(ctx context.Context, teamID, actorID primitive.ObjectID, req *models.CreateProjectRequest) (*models.Project, error) {
	team, err := s.teamRepo.FindByID(ctx, teamID)
	if err != nil {
		return nil, err
	}

	project := &models.Project{
		Name:        req.Name,
		Description: req.Description,
		TeamID:      teamID,
		AdminID:     team.AdminID,
	}
	if err := s.projectRepo.Create(ctx, project); err != nil {
		return nil, err
	}

	s.invalidateListing(ctx, teamID)
	s.recorder.Record(teamID, actorID, models.ActivityProjectCreated, fmt.Sprintf("created project %q", project.Name))
	return project, nil
}

// GetProject retrieves a project, scoped to the team.
func (s *ProjectService) GetProject(ctx context.Context, projectID, teamID primitive.ObjectID) (*models.Project, error) {
	project, err := s.projectRepo.FindByID(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if project.TeamID != teamID {
		return nil, apperrors.ErrProjectNotFound
	}
	return project, nil
}

// UpdateProject updates a project's name and description.
func (s *ProjectService) UpdateProject(ctx context.Context, projectID, teamID primitive.ObjectID, req *models.UpdateProjectRequest) (*models.Project, error) {
	project, err := s.projectRepo.Update(ctx, projectID, teamID, req)
	if err != nil {
		return nil, err
	}
	s.invalidateListing(ctx, teamID)
	return project, nil
}

// DeleteProject removes a project and all of its tasks.
func (s *ProjectService) DeleteProject(ctx context.Context, projectID, teamID, actorID primitive.ObjectID) error {
	project, err := s.GetProject(ctx, projectID, teamID)
	if err != nil {
		return err
	}

	if err := s.taskRepo.DeleteAllByProjectID(ctx, projectID); err != nil {
		return err
	}
	if err := s.projectRepo.Delete(ctx, projectID, teamID); err != nil {
		return err
	}

	s.invalidateListing(ctx, teamID)
	s.recorder.Record(teamID, actorID, models.ActivityProjectDeleted, fmt.Sprintf("deleted project %q", project.Name))
	return nil
}

func (s *ProjectService) invalidateListing(ctx context.Context, teamID primitive.ObjectID) {
	if err := s.cache.Delete(ctx, cache.ProjectListKey(teamID.Hex())); err != nil {
		log.Printf("Project cache invalidation failed for team %s: %v", teamID.Hex(), err)
	}
}
