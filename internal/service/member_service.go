package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	apperrors "teamsync/internal/errors"
	"teamsync/internal/models"
	"teamsync/internal/queue"
	"teamsync/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MemberService handles business logic for team membership operations.
type MemberService struct {
	membershipRepo repository.MembershipRepository
	userRepo       repository.UserRepository
	teamRepo       repository.TeamRepository
	recorder       *queue.Recorder
}

// NewMemberService creates a new MemberService.
func NewMemberService(
	membershipRepo repository.MembershipRepository,
	userRepo repository.UserRepository,
	teamRepo repository.TeamRepository,
	recorder *queue.Recorder,
) *MemberService {
	return &MemberService{
		membershipRepo: membershipRepo,
		userRepo:       userRepo,
		teamRepo:       teamRepo,
		recorder:       recorder,
	}
}

// ListMembers returns a team's members with expanded user information.
// Memberships whose user row has gone missing are skipped rather than
// failing the whole listing.
func (s *MemberService) ListMembers(ctx context.Context, teamID primitive.ObjectID) (*models.MemberListResponse, error) {
	memberships, err := s.membershipRepo.FindByTeamID(ctx, teamID)
	if err != nil {
		return nil, err
	}

	items := make([]models.MemberWithUser, 0, len(memberships))
	for _, m := range memberships {
		member := models.MemberWithUser{
			ID:       m.ID,
			TeamID:   m.TeamID,
			UserID:   m.UserID,
			Role:     m.Role,
			Status:   m.Status,
			JoinedAt: m.JoinedAt,
		}
		user, err := s.userRepo.FindByID(ctx, m.UserID)
		if err == apperrors.ErrUserNotFound {
			continue
		}
		if err != nil {
			return nil, err
		}
		member.User = &models.UserSummary{
			ID:    user.ID,
			Email: user.Email,
			Name:  user.Name,
		}
		items = append(items, member)
	}

	return &models.MemberListResponse{Items: items}, nil
}

// InviteMember adds a user to the team by email, provisioning the user if no
// account exists yet. Invitations are accepted immediately; a user can belong
// to at most one team, and a team holds at most one manager, which the
// membership collection's unique indexes enforce.
func (s *MemberService) InviteMember(ctx context.Context, teamID, actorID primitive.ObjectID, req *models.InviteMemberRequest) (*models.MemberWithUser, error) {
	role := req.Role
	if role == "" {
		role = models.RoleMember
	}
	if role != models.RoleManager && role != models.RoleMember {
		return nil, apperrors.ErrInvalidRole
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err == apperrors.ErrUserNotFound {
		user = &models.User{
			Email: email,
			Name:  displayNameFromEmail(email),
			Role:  models.RoleMember,
		}
		if err := s.userRepo.Create(ctx, user); err != nil {
			return nil, err
		}
	} else if err != nil {
		return nil, err
	}

	if user.TeamID != nil {
		if *user.TeamID == teamID {
			return nil, apperrors.ErrAlreadyMember
		}
		return nil, apperrors.ErrAlreadyInTeam
	}

	membership := &models.Membership{
		TeamID:    teamID,
		UserID:    user.ID,
		Role:      role,
		Status:    models.StatusAccepted,
		InvitedBy: actorID,
		JoinedAt:  time.Now(),
	}
	if err := s.membershipRepo.Create(ctx, membership); err != nil {
		return nil, err
	}

	if err := s.userRepo.SetTeam(ctx, user.ID, &teamID, role); err != nil {
		_ = s.membershipRepo.Delete(ctx, teamID, user.ID)
		return nil, err
	}

	s.recorder.Record(teamID, actorID, models.ActivityMemberInvited, fmt.Sprintf("invited %s as %s", email, role))

	return &models.MemberWithUser{
		ID:     membership.ID,
		TeamID: teamID,
		UserID: user.ID,
		User: &models.UserSummary{
			ID:    user.ID,
			Email: user.Email,
			Name:  user.Name,
		},
		Role:     role,
		Status:   membership.Status,
		JoinedAt: membership.JoinedAt,
	}, nil
}

// AssignRole changes a member's role between MANAGER and MEMBER. The team
// admin's role cannot be changed. Promoting a second manager fails against
// the unique manager index.
func (s *MemberService) AssignRole(ctx context.Context, teamID, targetUserID, actorID primitive.ObjectID, req *models.AssignRoleRequest) error {
	if req.Role != models.RoleManager && req.Role != models.RoleMember {
		return apperrors.ErrInvalidRole
	}

	team, err := s.teamRepo.FindByID(ctx, teamID)
	if err != nil {
		return err
	}
	if team.AdminID == targetUserID {
		return apperrors.ErrCannotChangeAdminRole
	}

	membership, err := s.membershipRepo.FindByTeamAndUser(ctx, teamID, targetUserID)
	if err != nil {
		return err
	}
	if membership.Role == req.Role {
		return nil
	}

	if err := s.membershipRepo.UpdateRole(ctx, teamID, targetUserID, req.Role); err != nil {
		return err
	}
	if err := s.userRepo.SetTeam(ctx, targetUserID, &teamID, req.Role); err != nil {
		// Rollback role change on failure
		_ = s.membershipRepo.UpdateRole(ctx, teamID, targetUserID, membership.Role)
		return err
	}

	s.recorder.Record(teamID, actorID, models.ActivityRoleChanged, fmt.Sprintf("changed a member's role to %s", req.Role))
	return nil
}

// RemoveMember removes a user from the team and clears their affiliation.
// The team admin cannot be removed; deleting the team is the only way out
// for its creator.
func (s *MemberService) RemoveMember(ctx context.Context, teamID, targetUserID, actorID primitive.ObjectID) error {
	team, err := s.teamRepo.FindByID(ctx, teamID)
	if err != nil {
		return err
	}
	if team.AdminID == targetUserID {
		return apperrors.ErrCannotRemoveAdmin
	}

	if _, err := s.membershipRepo.FindByTeamAndUser(ctx, teamID, targetUserID); err != nil {
		return err
	}

	// The single manager must hand the role off before leaving; removing
	// them outright would strand the team without one.
	if manager, err := s.membershipRepo.FindManager(ctx, teamID); err == nil && manager != nil && manager.UserID == targetUserID {
		return apperrors.ErrCannotRemoveLastManager
	} else if err != nil && !errors.Is(err, apperrors.ErrMemberNotFound) {
		return err
	}

	if err := s.membershipRepo.Delete(ctx, teamID, targetUserID); err != nil {
		return err
	}
	if err := s.userRepo.SetTeam(ctx, targetUserID, nil, models.RoleMember); err != nil {
		return err
	}

	s.recorder.Record(teamID, actorID, models.ActivityMemberRemoved, "removed a member from the team")
	return nil
}

// displayNameFromEmail derives a provisional display name for users created
// through an invitation, before they ever sign in.
func displayNameFromEmail(email string) string {
	if local, _, found := strings.Cut(email, "@"); found && local != "" {
		return local
	}
	return email
}
