package handler

import (
	apperrors "teamsync/internal/errors"
	"teamsync/internal/middleware"
	"teamsync/internal/models"
	"teamsync/internal/service"
	"teamsync/pkg/response"

	"github.com/gin-gonic/gin"
)

// TeamHandler handles HTTP requests for team operations.
type TeamHandler struct {
	service service.TeamServicer
}

// NewTeamHandler creates a new TeamHandler.
func NewTeamHandler(service service.TeamServicer) *TeamHandler {
	return &TeamHandler{service: service}
}

// CreateTeam godoc
// @Summary      Create a new team
// @Description  Create a new team. The authenticated user becomes its admin.
// @Tags         teams
// @Accept       json
// @Produce      json
// @Param        body  body      models.CreateTeamRequest  true  "Team details"
// @Success      201   {object}  response.Response{data=models.Team}
// @Failure      400   {object}  response.Response
// @Failure      401   {object}  response.Response
// @Failure      409   {object}  response.Response
// @Failure      500   {object}  response.Response
// @Security     BearerAuth
// @Router       /teams [post]
func (h *TeamHandler) CreateTeam(c *gin.Context) {
	user, ok := middleware.GetUser(c)
	if !ok {
		response.Unauthorized(c, apperrors.CodeTokenMissing, "user not authenticated")
		return
	}

	var req models.CreateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	team, err := h.service.CreateTeam(c.Request.Context(), user, &req)
	if err != nil {
		serviceError(c, err)
		return
	}

	response.Created(c, team)
}

// ListTeams godoc
// @Summary      List the caller's teams
// @Description  Retrieve the teams the caller administers or belongs to
// @Tags         teams
// @Produce      json
// @Success      200  {object}  response.Response{data=models.TeamListResponse}
// @Failure      401  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Security     BearerAuth
// @Router       /teams [get]
func (h *TeamHandler) ListTeams(c *gin.Context) {
	user, ok := middleware.GetUser(c)
	if !ok {
		response.Unauthorized(c, apperrors.CodeTokenMissing, "user not authenticated")
		return
	}

	result, err := h.service.ListTeams(c.Request.Context(), user)
	if err != nil {
		serviceError(c, err)
		return
	}

	response.Success(c, result)
}

// GetTeam godoc
// @Summary      Get team details
// @Tags         teams
// @Produce      json
// @Param        teamId  path      string  true  "Team ID"
// @Success      200     {object}  response.Response{data=models.Team}
// @Failure      401     {object}  response.Response
// @Failure      403     {object}  response.Response
// @Failure      404     {object}  response.Response
// @Security     BearerAuth
// @Router       /teams/{teamId} [get]
func (h *TeamHandler) GetTeam(c *gin.Context) {
	tc, ok := middleware.GetTeamContext(c)
	if !ok {
		response.InternalError(c)
		return
	}

	team, err := h.service.GetTeam(c.Request.Context(), tc.TeamID)
	if err != nil {
		serviceError(c, err)
		return
	}

	response.Success(c, team)
}

// UpdateTeam godoc
// @Summary      Update team details
// @Description  Update a team's name or description. Admin only.
// @Tags         teams
// @Accept       json
// @Produce      json
// @Param        teamId  path      string                    true  "Team ID"
// @Param        body    body      models.UpdateTeamRequest  true  "Fields to update"
// @Success      200     {object}  response.Response{data=models.Team}
// @Failure      400     {object}  response.Response
// @Failure      403     {object}  response.Response
// @Failure      404     {object}  response.Response
// @Security     BearerAuth
// @Router       /teams/{teamId} [put]
func (h *TeamHandler) UpdateTeam(c *gin.Context) {
	tc, ok := middleware.GetTeamContext(c)
	if !ok {
		response.InternalError(c)
		return
	}

	var req models.UpdateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	team, err := h.service.UpdateTeam(c.Request.Context(), tc.TeamID, &req)
	if err != nil {
		serviceError(c, err)
		return
	}

	response.Success(c, team)
}

// DeleteTeam godoc
// @Summary      Delete a team
// @Description  Delete a team and everything scoped to it. Admin only.
// @Tags         teams
// @Param        teamId  path  string  true  "Team ID"
// @Success      204     "No Content"
// @Failure      403     {object}  response.Response
// @Failure      404     {object}  response.Response
// @Security     BearerAuth
// @Router       /teams/{teamId} [delete]
func (h *TeamHandler) DeleteTeam(c *gin.Context) {
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

	if err := h.service.DeleteTeam(c.Request.Context(), tc.TeamID, user.ID); err != nil {
		serviceError(c, err)
		return
	}

	response.NoContent(c)
}
