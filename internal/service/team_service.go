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

// TeamService handles business logic for team operations.
type TeamService struct {
	teamRepo       repository.TeamRepository
	userRepo       repository.UserRepository
	membershipRepo repository.MembershipRepository
	projectRepo    repository.ProjectRepository
	taskRepo       repository.TaskRepository
	messageRepo    repository.MessageRepository
	activityRepo   repository.ActivityRepository
	cache          cache.Cache
	recorder       *queue.Recorder
}

// NewTeamService creates a new TeamService.
func NewTeamService(
	teamRepo repository.TeamRepository,
	userRepo repository.UserRepository,
	membershipRepo repository.MembershipRepository,
	projectRepo repository.ProjectRepository,
	taskRepo repository.TaskRepository,
	messageRepo repository.MessageRepository,
	activityRepo repository.ActivityRepository,
	cache cache.Cache,
	recorder *queue.Recorder,
) *TeamService {
	return &TeamService{
		teamRepo:       teamRepo,
		userRepo:       userRepo,
		membershipRepo: membershipRepo,
		projectRepo:    projectRepo,
		taskRepo:       taskRepo,
		messageRepo:    messageRepo,
		activityRepo:   activityRepo,
		cache:          cache,
		recorder:       recorder,
	}
}

// CreateTeam creates a new team with the creator as its admin. The creator's
// affiliation moves to the new team, so users already in a team must leave
// (or be removed) before creating one.
func (s *TeamService) CreateTeam(ctx context.Context, user *models.User, req *models.CreateTeamRequest) (*models.Team, error) {
	if user.TeamID != nil {
		return nil, apperrors.ErrAlreadyInTeam
	}

	team := &models.Team{
		Name:        req.Name,
		Description: req.Description,
		AdminID:     user.ID,
	}
	if err := s.teamRepo.Create(ctx, team); err != nil {
		return nil, err
	}

	membership := &models.Membership{
		TeamID:    team.ID,
		UserID:    user.ID,
		Role:      models.RoleAdmin,
		Status:    models.StatusAccepted,
		InvitedBy: user.ID,
		JoinedAt:  time.Now(),
	}
	if err := s.membershipRepo.Create(ctx, membership); err != nil {
		// Rollback team creation on failure
		_ = s.teamRepo.Delete(ctx, team.ID)
		return nil, err
	}

	if err := s.userRepo.SetTeam(ctx, user.ID, &team.ID, models.RoleAdmin); err != nil {
		_ = s.membershipRepo.Delete(ctx, team.ID, user.ID)
		_ = s.teamRepo.Delete(ctx, team.ID)
		return nil, err
	}

	s.recorder.Record(team.ID, user.ID, models.ActivityTeamCreated, fmt.Sprintf("created team %q", team.Name))
	return team, nil
}

// ListTeams returns the teams a user administers plus the team they belong
// to, if different.
func (s *TeamService) ListTeams(ctx context.Context, user *models.User) (*models.TeamListResponse, error) {
	teams, err := s.teamRepo.FindByAdminID(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	if user.TeamID != nil {
		seen := false
		for _, t := range teams {
			if t.ID == *user.TeamID {
				seen = true
				break
			}
		}
		if !seen {
			own, err := s.teamRepo.FindByID(ctx, *user.TeamID)
			if err == nil {
				teams = append(teams, *own)
			} else if err != apperrors.ErrTeamNotFound {
				return nil, err
			}
		}
	}

	if teams == nil {
		teams = []models.Team{}
	}
	return &models.TeamListResponse{Items: teams}, nil
}

// GetTeam retrieves a team by ID.
func (s *TeamService) GetTeam(ctx context.Context, teamID primitive.ObjectID) (*models.Team, error) {
	return s.teamRepo.FindByID(ctx, teamID)
}

// UpdateTeam updates a team's name and description.
func (s *TeamService) UpdateTeam(ctx context.Context, teamID primitive.ObjectID, req *models.UpdateTeamRequest) (*models.Team, error) {
	return s.teamRepo.Update(ctx, teamID, req)
}

// DeleteTeam deletes a team and everything scoped to it: tasks, projects,
// messages, activity records, and memberships. Every member's affiliation is
// cleared so they can be invited elsewhere or create their own team.
func (s *TeamService) DeleteTeam(ctx context.Context, teamID, actorID primitive.ObjectID) error {
	if _, err := s.teamRepo.FindByID(ctx, teamID); err != nil {
		return err
	}

	memberships, err := s.membershipRepo.FindByTeamID(ctx, teamID)
	if err != nil {
		return err
	}
	for _, m := range memberships {
		if err := s.userRepo.SetTeam(ctx, m.UserID, nil, models.RoleMember); err != nil {
			log.Printf("Failed to clear team for user %s: %v", m.UserID.Hex(), err)
		}
	}

	if err := s.taskRepo.DeleteAllByTeamID(ctx, teamID); err != nil {
		return err
	}
	if err := s.projectRepo.DeleteAllByTeamID(ctx, teamID); err != nil {
		return err
	}
	if err := s.messageRepo.DeleteAllByTeamID(ctx, teamID); err != nil {
		return err
	}
	if err := s.activityRepo.DeleteAllByTeamID(ctx, teamID); err != nil {
		return err
	}
	if err := s.membershipRepo.DeleteAllByTeamID(ctx, teamID); err != nil {
		return err
	}

	if err := s.cache.Delete(ctx, cache.ProjectListKey(teamID.Hex())); err != nil {
		log.Printf("Failed to invalidate project cache for team %s: %v", teamID.Hex(), err)
	}

	return s.teamRepo.Delete(ctx, teamID)
}
