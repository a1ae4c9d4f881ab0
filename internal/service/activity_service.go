package service

import (
	"context"

	"teamsync/internal/models"
	"teamsync/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	defaultActivityLimit = 50
	maxActivityLimit     = 200
)

// ActivityService handles the team activity feed.
type ActivityService struct {
	activityRepo repository.ActivityRepository
}

// NewActivityService creates a new ActivityService.
func NewActivityService(activityRepo repository.ActivityRepository) *ActivityService {
	return &ActivityService{activityRepo: activityRepo}
}

// ListActivities returns a team's most recent activity records, newest
// first. Records are written asynchronously, so very recent actions may lag
// the feed by a moment.
func (s *ActivityService) ListActivities(ctx context.Context, teamID primitive.ObjectID, limit int) (*models.ActivityListResponse, error) {
	if limit < 1 {
		limit = defaultActivityLimit
	}
	if limit > maxActivityLimit {
		limit = maxActivityLimit
	}

	activities, err := s.activityRepo.FindByTeamID(ctx, teamID, limit)
	if err != nil {
		return nil, err
	}
	if activities == nil {
		activities = []models.Activity{}
	}
	return &models.ActivityListResponse{Items: activities}, nil
}
