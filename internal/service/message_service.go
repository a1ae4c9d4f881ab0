package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	apperrors "teamsync/internal/errors"
	"teamsync/internal/models"
	"teamsync/internal/queue"
	"teamsync/internal/realtime"
	"teamsync/internal/repository"
	"teamsync/internal/storage"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	defaultMessageLimit = 50
	maxMessageLimit     = 100

	attachmentURLExpiry = 15 * time.Minute
)

// MessageService handles business logic for team chat.
type MessageService struct {
	messageRepo repository.MessageRepository
	storage     storage.Storage
	broadcaster realtime.Broadcaster
	recorder    *queue.Recorder
}

// NewMessageService creates a new MessageService. The broadcaster is
// required: posting without one is a wiring error, caught here rather than
// on the first message.
func NewMessageService(
	messageRepo repository.MessageRepository,
	storage storage.Storage,
	broadcaster realtime.Broadcaster,
	recorder *queue.Recorder,
) *MessageService {
	if broadcaster == nil {
		panic("message service requires a broadcaster")
	}
	return &MessageService{
		messageRepo: messageRepo,
		storage:     storage,
		broadcaster: broadcaster,
		recorder:    recorder,
	}
}

// ListMessages returns a team's messages, newest first. The before cursor
// pages backwards through history.
func (s *MessageService) ListMessages(ctx context.Context, teamID primitive.ObjectID, limit int, before *time.Time) (*models.MessageListResponse, error) {
	if limit < 1 {
		limit = defaultMessageLimit
	}
	if limit > maxMessageLimit {
		limit = maxMessageLimit
	}

	messages, err := s.messageRepo.FindByTeamID(ctx, teamID, limit, before)
	if err != nil {
		return nil, err
	}
	if messages == nil {
		messages = []models.Message{}
	}
	return &models.MessageListResponse{Items: messages}, nil
}

// PostMessage persists a chat message and fans it out to the team's room.
// Delivery is best effort; the message is durable once persisted and clients
// that missed the broadcast pick it up from history.
func (s *MessageService) PostMessage(ctx context.Context, teamID primitive.ObjectID, sender *models.User, req *models.CreateMessageRequest) (*models.Message, error) {
	if req.AttachmentKey != "" && !keyBelongsToTeam(req.AttachmentKey, teamID) {
		return nil, apperrors.ErrForbidden
	}

	message := &models.Message{
		TeamID:        teamID,
		SenderID:      sender.ID,
		SenderName:    sender.Name,
		Content:       req.Content,
		AttachmentKey: req.AttachmentKey,
	}
	if err := s.messageRepo.Create(ctx, message); err != nil {
		return nil, err
	}

	s.broadcaster.Broadcast(realtime.RoomName(teamID), realtime.Event{
		Name:    realtime.EventNewMessage,
		Payload: message,
	})
	s.recorder.Record(teamID, sender.ID, models.ActivityMessagePosted, "posted a message")
	return message, nil
}

// AttachmentUploadURL returns a presigned PUT URL for a new attachment. The
// object key is namespaced under the team so download requests can be
// checked against the requester's team.
func (s *MessageService) AttachmentUploadURL(ctx context.Context, teamID primitive.ObjectID, filename, contentType string) (*models.AttachmentUploadResponse, error) {
	key := fmt.Sprintf("attachments/%s/%s_%s", teamID.Hex(), primitive.NewObjectID().Hex(), sanitizeFilename(filename))

	url, err := s.storage.GetPresignedPutURL(ctx, key, contentType, attachmentURLExpiry)
	if err != nil {
		return nil, err
	}
	return &models.AttachmentUploadResponse{UploadURL: url, Key: key}, nil
}

// AttachmentDownloadURL returns a presigned GET URL for an attachment owned
// by the team.
func (s *MessageService) AttachmentDownloadURL(ctx context.Context, teamID primitive.ObjectID, key string) (*models.AttachmentDownloadResponse, error) {
	if !keyBelongsToTeam(key, teamID) {
		return nil, apperrors.ErrForbidden
	}

	url, err := s.storage.GetPresignedURL(ctx, key, attachmentURLExpiry)
	if err != nil {
		return nil, err
	}
	return &models.AttachmentDownloadResponse{DownloadURL: url}, nil
}

func keyBelongsToTeam(key string, teamID primitive.ObjectID) bool {
	return strings.HasPrefix(key, "attachments/"+teamID.Hex()+"/")
}

// sanitizeFilename strips path separators so client-supplied names cannot
// escape the team's prefix.
func sanitizeFilename(name string) string {
	name = strings.ReplaceAll(name, "/", "_")
	name = strings.ReplaceAll(name, "\\", "_")
	if name == "" {
		name = "attachment"
	}
	return name
}
