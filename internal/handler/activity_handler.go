package handler

import (
	"strconv"

	"teamsync/internal/middleware"
	"teamsync/internal/service"
	"teamsync/pkg/response"

	"github.com/gin-gonic/gin"
)

// ActivityHandler handles HTTP requests for the team activity feed.
type ActivityHandler struct {
	service service.ActivityServicer
}

// NewActivityHandler creates a new ActivityHandler.
func NewActivityHandler(service service.ActivityServicer) *ActivityHandler {
	return &ActivityHandler{service: service}
}

// ListActivities godoc
// @Summary      List team activity
// @Description  List the team's most recent activity records, newest first. Admin and manager only.
// @Tags         activity
// @Produce      json
// @Param        teamId  path      string  true   "Team ID"
// @Param        limit   query     int     false  "Page size (default 50, max 200)"
// @Success      200     {object}  response.Response{data=models.ActivityListResponse}
// @Failure      401     {object}  response.Response
// @Failure      403     {object}  response.Response
// @Security     BearerAuth
// @Router       /teams/{teamId}/activity [get]
func (h *ActivityHandler) ListActivities(c *gin.Context) {
	tc, ok := middleware.GetTeamContext(c)
	if !ok {
		response.InternalError(c)
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	result, err := h.service.ListActivities(c.Request.Context(), tc.TeamID, limit)
	if err != nil {
		serviceError(c, err)
		return
	}

	response.Success(c, result)
}
