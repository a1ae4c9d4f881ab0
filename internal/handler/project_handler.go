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

// ProjectHandler handles HTTP requests for project operations.
type ProjectHandler struct {
	service service.ProjectServicer
}

// NewProjectHandler creates a new ProjectHandler.
func NewProjectHandler(service service.ProjectServicer) *ProjectHandler {
	return &ProjectHandler{service: service}
}

// ListProjects godoc
// @Summary      List team projects
// @Tags         projects
// @Produce      json
// @Param        teamId  path      string  true  "Team ID"
// @Success      200     {object}  response.Response{data=models.ProjectListResponse}
// @Failure      401     {object}  response.Response
// @Failure      403     {object}  response.Response
// @Security     BearerAuth
// @Router       /teams/{teamId}/projects [get]
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	tc, ok := middleware.GetTeamContext(c)
	if !ok {
		response.InternalError(c)
		return
	}

	result, err := h.service.ListProjects(c.Request.Context(), tc.TeamID)
	if err != nil {
		serviceError(c, err)
		return
	}

	response.Success(c, result)
}

// CreateProject godoc
// @Summary      Create a project
// @Description  Create a project under the team. Admin and manager only.
// @Tags         projects
// @Accept       json
// @Produce      json
// @Param        teamId  path      string                       true  "Team ID"
// @Param        body    body      models.CreateProjectRequest  true  "Project details"
// @Success      201     {object}  response.Response{data=models.Project}
// @Failure      400     {object}  response.Response
// @Failure      403     {object}  response.Response
// @Security     BearerAuth
// @Router       /teams/{teamId}/projects [post]
func (h *ProjectHandler) CreateProject(c *gin.Context) {
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

	var req models.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	project, err := h.service.CreateProject(c.Request.Context(), tc.TeamID, user.ID, &req)
	if err != nil {
		serviceError(c, err)
		return
	}

	response.Created(c, project)
}

// GetProject godoc
// @Summary      Get project details
// @Tags         projects
// @Produce      json
// @Param        teamId     path      string  true  "Team ID"
// @Param        projectId  path      string  true  "Project ID"
// @Success      200        {object}  response.Response{data=models.Project}
// @Failure      404        {object}  response.Response
// @Security     BearerAuth
// @Router       /teams/{teamId}/projects/{projectId} [get]
func (h *ProjectHandler) GetProject(c *gin.Context) {
	tc, ok := middleware.GetTeamContext(c)
	if !ok {
		response.InternalError(c)
		return
	}

	projectID, err := primitive.ObjectIDFromHex(c.Param("projectId"))
	if err != nil {
		response.BadRequest(c, "invalid project id format")
		return
	}

	project, err := h.service.GetProject(c.Request.Context(), projectID, tc.TeamID)
	if err != nil {
		serviceError(c, err)
		return
	}

	response.Success(c, project)
}

// UpdateProject godoc
// @Summary      Update a project
// @Description  Update a project's name or description. Admin and manager only.
// @Tags         projects
// @Accept       json
// @Produce      json
// @Param        teamId     path      string                       true  "Team ID"
// @Param        projectId  path      string                       true  "Project ID"
// @Param        body       body      models.UpdateProjectRequest  true  "Fields to update"
// @Success      200        {object}  response.Response{data=models.Project}
// @Failure      400        {object}  response.Response
// @Failure      403        {object}  response.Response
// @Failure      404        {object}  response.Response
// @Security     BearerAuth
// @Router       /teams/{teamId}/projects/{projectId} [put]
func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	tc, ok := middleware.GetTeamContext(c)
	if !ok {
		response.InternalError(c)
		return
	}

	projectID, err := primitive.ObjectIDFromHex(c.Param("projectId"))
	if err != nil {
		response.BadRequest(c, "invalid project id format")
		return
	}

	var req models.UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	project, err := h.service.UpdateProject(c.Request.Context(), projectID, tc.TeamID, &req)
	if err != nil {
		serviceError(c, err)
		return
	}

	response.Success(c, project)
}

// DeleteProject godoc
// @Summary      Delete a project
// @Description  Delete a project and its tasks. Admin only.
// @Tags         projects
// @Param        teamId     path  string  true  "Team ID"
// @Param        projectId  path  string  true  "Project ID"
// @Success      204        "No Content"
// @Failure      403        {object}  response.Response
// @Failure      404        {object}  response.Response
// @Security     BearerAuth
// @Router       /teams/{teamId}/projects/{projectId} [delete]
func (h *ProjectHandler) DeleteProject(c *gin.Context) {
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

	projectID, err := primitive.ObjectIDFromHex(c.Param("projectId"))
	if err != nil {
		response.BadRequest(c, "invalid project id format")
		return
	}

	if err := h.service.DeleteProject(c.Request.Context(), projectID, tc.TeamID, user.ID); err != nil {
		serviceError(c, err)
		return
	}

	response.NoContent(c)
}
