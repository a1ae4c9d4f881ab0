package handler

import (
	"strconv"
	"time"

	apperrors "teamsync/internal/errors"
	"teamsync/internal/middleware"
	"teamsync/internal/models"
	"teamsync/internal/service"
	"teamsync/pkg/response"

	"github.com/gin-gonic/gin"
)

// MessageHandler handles HTTP requests for team chat.
type MessageHandler struct {
	service service.MessageServicer
}

// NewMessageHandler creates a new MessageHandler.
func NewMessageHandler(service service.MessageServicer) *MessageHandler {
	return &MessageHandler{service: service}
}

// ListMessages godoc
// @Summary      List chat messages
// @Description  List the team's messages, newest first. The before cursor pages backwards through history.
// @Tags         chat
// @Produce      json
// @Param        teamId  path      string  true   "Team ID"
// @Param        limit   query     int     false  "Page size (default 50, max 100)"
// @Param        before  query     string  false  "RFC3339 timestamp cursor"
// @Success      200     {object}  response.Response{data=models.MessageListResponse}
// @Failure      400     {object}  response.Response
// @Failure      403     {object}  response.Response
// @Security     BearerAuth
// @Router       /teams/{teamId}/messages [get]
func (h *MessageHandler) ListMessages(c *gin.Context) {
	tc, ok := middleware.GetTeamContext(c)
	if !ok {
		response.InternalError(c)
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	var before *time.Time
	if raw := c.Query("before"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			response.BadRequest(c, "before must be an RFC3339 timestamp")
			return
		}
		before = &parsed
	}

	result, err := h.service.ListMessages(c.Request.Context(), tc.TeamID, limit, before)
	if err != nil {
		serviceError(c, err)
		return
	}

	response.Success(c, result)
}

// PostMessage godoc
// @Summary      Post a chat message
// @Description  Post a message to the team room. Connected clients receive it as a chat:new-message event.
// @Tags         chat
// @Accept       json
// @Produce      json
// @Param        teamId  path      string                       true  "Team ID"
// @Param        body    body      models.CreateMessageRequest  true  "Message"
// @Success      201     {object}  response.Response{data=models.Message}
// @Failure      400     {object}  response.Response
// @Failure      403     {object}  response.Response
// @Security     BearerAuth
// @Router       /teams/{teamId}/messages [post]
func (h *MessageHandler) PostMessage(c *gin.Context) {
	user, ok := middleware.GetUser(c)
	if !ok {
		response.Unauthorized(c, apperrors.CodeTokenMissing, "user not authenticated")
		return
	}
	tc, ok := middleware.GetTeamContext(c)
	if !ok {
		response.InternalError(c)
		return
	}

	var req models.CreateMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	message, err := h.service.PostMessage(c.Request.Context(), tc.TeamID, user, &req)
	if err != nil {
		serviceError(c, err)
		return
	}

	response.Created(c, message)
}

// RequestAttachmentUpload godoc
// @Summary      Request an attachment upload URL
// @Description  Returns a presigned PUT URL and the object key to reference when posting the message.
// @Tags         chat
// @Accept       json
// @Produce      json
// @Param        teamId  path      string                          true  "Team ID"
// @Param        body    body      models.AttachmentUploadRequest  true  "File details"
// @Success      200     {object}  response.Response{data=models.AttachmentUploadResponse}
// @Failure      400     {object}  response.Response
// @Failure      403     {object}  response.Response
// @Security     BearerAuth
// @Router       /teams/{teamId}/attachments [post]
func (h *MessageHandler) RequestAttachmentUpload(c *gin.Context) {
	tc, ok := middleware.GetTeamContext(c)
	if !ok {
		response.InternalError(c)
		return
	}

	var req models.AttachmentUploadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.service.AttachmentUploadURL(c.Request.Context(), tc.TeamID, req.Filename, req.ContentType)
	if err != nil {
		serviceError(c, err)
		return
	}

	response.Success(c, result)
}

// GetAttachmentDownload godoc
// @Summary      Get an attachment download URL
// @Description  Returns a presigned GET URL for an attachment owned by the team.
// @Tags         chat
// @Produce      json
// @Param        teamId  path      string  true  "Team ID"
// @Param        key     query     string  true  "Attachment object key"
// @Success      200     {object}  response.Response{data=models.AttachmentDownloadResponse}
// @Failure      400     {object}  response.Response
// @Failure      403     {object}  response.Response
// @Security     BearerAuth
// @Router       /teams/{teamId}/attachments/url [get]
func (h *MessageHandler) GetAttachmentDownload(c *gin.Context) {
	tc, ok := middleware.GetTeamContext(c)
	if !ok {
		response.InternalError(c)
		return
	}

	key := c.Query("key")
	if key == "" {
		response.BadRequest(c, "key is required")
		return
	}

	result, err := h.service.AttachmentDownloadURL(c.Request.Context(), tc.TeamID, key)
	if err != nil {
		serviceError(c, err)
		return
	}

	response.Success(c, result)
}
