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

// TaskHandler handles HTTP requests for task operations.
type TaskHandler struct {
	service service.TaskServicer
}

// NewTaskHandler creates a new TaskHandler.
func NewTaskHandler(service service.TaskServicer) *TaskHandler {
	return &TaskHandler{service: service}
}

// ListTasks godoc
// @Summary      List project tasks
// @Description  List a project's tasks ordered by column and position.
// @Tags         tasks
// @Produce      json
// @Param        teamId     path      string  true  "Team ID"
// @Param        projectId  path      string  true  "Project ID"
// @Success      200        {object}  response.Response{data=models.TaskListResponse}
// @Failure      404        {object}  response.Response
// @Security     BearerAuth
// @Router       /teams/{teamId}/projects/{projectId}/tasks [get]
func (h *TaskHandler) ListTasks(c *gin.Context) {
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

	result, err := h.service.ListTasks(c.Request.Context(), projectID, tc.TeamID)
	if err != nil {
		serviceError(c, err)
		return
	}

	response.Success(c, result)
}

// CreateTask godoc
// @Summary      Create a task
// @Description  Create a task in the project's TODO column.
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Param        teamId     path      string                    true  "Team ID"
// @Param        projectId  path      string                    true  "Project ID"
// @Param        body       body      models.CreateTaskRequest  true  "Task details"
// @Success      201        {object}  response.Response{data=models.Task}
// @Failure      400        {object}  response.Response
// @Failure      404        {object}  response.Response
// @Security     BearerAuth
// @Router       /teams/{teamId}/projects/{projectId}/tasks [post]
func (h *TaskHandler) CreateTask(c *gin.Context) {
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

	var req models.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	task, err := h.service.CreateTask(c.Request.Context(), projectID, tc.TeamID, user.ID, &req)
	if err != nil {
		serviceError(c, err)
		return
	}

	response.Created(c, task)
}

// GetTask godoc
// @Summary      Get task details
// @Tags         tasks
// @Produce      json
// @Param        teamId  path      string  true  "Team ID"
// @Param        taskId  path      string  true  "Task ID"
// @Success      200     {object}  response.Response{data=models.Task}
// @Failure      404     {object}  response.Response
// @Security     BearerAuth
// @Router       /teams/{teamId}/tasks/{taskId} [get]
func (h *TaskHandler) GetTask(c *gin.Context) {
	tc, ok := middleware.GetTeamContext(c)
	if !ok {
		response.InternalError(c)
		return
	}

	taskID, err := primitive.ObjectIDFromHex(c.Param("taskId"))
	if err != nil {
		response.BadRequest(c, "invalid task id format")
		return
	}

	task, err := h.service.GetTask(c.Request.Context(), taskID, tc.TeamID)
	if err != nil {
		serviceError(c, err)
		return
	}

	response.Success(c, task)
}

// UpdateTask godoc
// @Summary      Update a task
// @Description  Update task fields. Details belong to the creator, status to the assignee, reassignment to admin and manager.
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Param        teamId  path      string                    true  "Team ID"
// @Param        taskId  path      string                    true  "Task ID"
// @Param        body    body      models.UpdateTaskRequest  true  "Fields to update"
// @Success      200     {object}  response.Response{data=models.Task}
// @Failure      400     {object}  response.Response
// @Failure      403     {object}  response.Response
// @Failure      404     {object}  response.Response
// @Security     BearerAuth
// @Router       /teams/{teamId}/tasks/{taskId} [put]
func (h *TaskHandler) UpdateTask(c *gin.Context) {
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

	taskID, err := primitive.ObjectIDFromHex(c.Param("taskId"))
	if err != nil {
		response.BadRequest(c, "invalid task id format")
		return
	}

	var req models.UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	task, err := h.service.UpdateTask(c.Request.Context(), taskID, tc.TeamID, user.ID, tc.Role, &req)
	if err != nil {
		serviceError(c, err)
		return
	}

	response.Success(c, task)
}

// MoveTask godoc
// @Summary      Move a task on the board
// @Description  Reposition a task between its named neighbors. A column change requires being the assignee. Conflicts with concurrent moves return 409.
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Param        teamId  path      string                  true  "Team ID"
// @Param        taskId  path      string                  true  "Task ID"
// @Param        body    body      models.MoveTaskRequest  true  "Target position"
// @Success      200     {object}  response.Response{data=models.Task}
// @Failure      400     {object}  response.Response
// @Failure      403     {object}  response.Response
// @Failure      409     {object}  response.Response
// @Security     BearerAuth
// @Router       /teams/{teamId}/tasks/{taskId}/move [put]
func (h *TaskHandler) MoveTask(c *gin.Context) {
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

	taskID, err := primitive.ObjectIDFromHex(c.Param("taskId"))
	if err != nil {
		response.BadRequest(c, "invalid task id format")
		return
	}

	var req models.MoveTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	task, err := h.service.MoveTask(c.Request.Context(), taskID, tc.TeamID, user.ID, &req)
	if err != nil {
		serviceError(c, err)
		return
	}

	response.Success(c, task)
}

// DeleteTask godoc
// @Summary      Delete a task
// @Description  Delete a task. Admin only.
// @Tags         tasks
// @Param        teamId  path  string  true  "Team ID"
// @Param        taskId  path  string  true  "Task ID"
// @Success      204     "No Content"
// @Failure      403     {object}  response.Response
// @Failure      404     {object}  response.Response
// @Security     BearerAuth
// @Router       /teams/{teamId}/tasks/{taskId} [delete]
func (h *TaskHandler) DeleteTask(c *gin.Context) {
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

	taskID, err := primitive.ObjectIDFromHex(c.Param("taskId"))
	if err != nil {
		response.BadRequest(c, "invalid task id format")
		return
	}

	if err := h.service.DeleteTask(c.Request.Context(), taskID, tc.TeamID, user.ID); err != nil {
		serviceError(c, err)
		return
	}

	response.NoContent(c)
}
