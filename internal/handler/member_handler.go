package handler

import (
	apperrors "teamsync/internal/errors"
	"teamsync/internal/middleware"
	"teamsync/internal/models"
	"teamsync/internal/service"
	"teamsync/pkg/response"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MemberHandler handles HTTP requests for team membership operations.
type MemberHandler struct {
	service service.MemberServicer
}

// NewMemberHandler creates a new MemberHandler.
func NewMemberHandler(service service.MemberServicer) *MemberHandler {
	return &MemberHandler{service: service}
}

// ListMembers godoc
// @Summary      List team members
// @Tags         members
// @Produce      json
// @Param        teamId  path      string  true  "Team ID"
// @Success      200     {object}  response.Response{data=models.MemberListResponse}
// @Failure      401     {object}  response.Response
// @Failure      403     {object}  response.Response
// @Security     BearerAuth
// @Router       /teams/{teamId}/members [get]
func (h *MemberHandler) ListMembers(c *gin.Context) {
	tc, ok := middleware.GetTeamContext(c)
	if !ok {
		response.InternalError(c)
		return
	}

	result, err := h.service.ListMembers(c.Request.Context(), tc.TeamID)
	if err != nil {
		serviceError(c, err)
		return
	}

	response.Success(c, result)
}

// InviteMember godoc
// @Summary      Invite a user to the team
// @Description  Invite a user by email. Unknown emails are provisioned. Admin and manager only.
// @Tags         members
// @Accept       json
// @Produce      json
// @Param        teamId  path      string                      true  "Team ID"
// @Param        body    body      models.InviteMemberRequest  true  "Invitation details"
// @Success      201     {object}  response.Response{data=models.MemberWithUser}
// @Failure      400     {object}  response.Response
// @Failure      403     {object}  response.Response
// @Failure      409     {object}  response.Response
// @Security     BearerAuth
// @Router       /teams/{teamId}/members [post]
func (h *MemberHandler) InviteMember(c *gin.Context) {
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

	var req models.InviteMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	member, err := h.service.InviteMember(c.Request.Context(), tc.TeamID, user.ID, &req)
	if err != nil {
		serviceError(c, err)
		return
	}

	response.Created(c, member)
}

// AssignRole godoc
// @Summary      Change a member's role
// @Description  Switch a member between MANAGER and MEMBER. Admin only; a team holds at most one manager.
// @Tags         members
// @Accept       json
// @Produce      json
// @Param        teamId  path      string                    true  "Team ID"
// @Param        userId  path      string                    true  "Target user ID"
// @Param        body    body      models.AssignRoleRequest  true  "New role"
// @Success      204     "No Content"
// @Failure      400     {object}  response.Response
// @Failure      403     {object}  response.Response
// @Failure      404     {object}  response.Response
// @Failure      409     {object}  response.Response
// @Security     BearerAuth
// @Router       /teams/{teamId}/members/{userId}/role [put]
func (h *MemberHandler) AssignRole(c *gin.Context) {
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

	targetID, err := primitive.ObjectIDFromHex(c.Param("userId"))
	if err != nil {
		response.BadRequest(c, "invalid user id format")
		return
	}

	var req models.AssignRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := h.service.AssignRole(c.Request.Context(), tc.TeamID, targetID, user.ID, &req); err != nil {
		serviceError(c, err)
		return
	}

	response.NoContent(c)
}

// RemoveMember godoc
// @Summary      Remove a member from the team
// @Description  Remove a member and clear their team affiliation. Admin only; the admin cannot be removed.
// @Tags         members
// @Param        teamId  path  string  true  "Team ID"
// @Param        userId  path  string  true  "Target user ID"
// @Success      204     "No Content"
// @Failure      400     {object}  response.Response
// @Failure      403     {object}  response.Response
// @Failure      404     {object}  response.Response
// @Security     BearerAuth
// @Router       /teams/{teamId}/members/{userId} [delete]
func (h *MemberHandler) RemoveMember(c *gin.Context) {
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

	targetID, err := primitive.ObjectIDFromHex(c.Param("userId"))
	if err != nil {
		response.BadRequest(c, "invalid user id format")
		return
	}

	if err := h.service.RemoveMember(c.Request.Context(), tc.TeamID, targetID, user.ID); err != nil {
		serviceError(c, err)
		return
	}

	response.NoContent(c)
}
