// Package router sets up HTTP routes for the API.
package router

import (
	"net/http"

	_ "teamsync/swagger" // Import generated swagger docs

	"teamsync/internal/authz"
	"teamsync/internal/handler"
	"teamsync/internal/identity"
	"teamsync/internal/middleware"
	"teamsync/internal/realtime"
	"teamsync/internal/repository"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Config holds all dependencies needed to set up routes.
type Config struct {
	TeamHandler     *handler.TeamHandler
	MemberHandler   *handler.MemberHandler
	ProjectHandler  *handler.ProjectHandler
	TaskHandler     *handler.TaskHandler
	MessageHandler  *handler.MessageHandler
	ActivityHandler *handler.ActivityHandler
	Gateway         *realtime.Gateway
	Resolver        *identity.Resolver
	TeamRepo        repository.TeamRepository
}

// Setup creates and configures the HTTP handler: the Gin engine for the
// REST surface, with the websocket gateway mounted beside it. The upgrade
// hijacks the raw connection, which gin's response writer refuses once it
// has written headers, so /ws must bypass the engine.
func Setup(cfg *Config) http.Handler {
	r := gin.Default()

	// Global middleware
	r.Use(middleware.CORS())

	// Swagger docs at /docs
	r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API v1
	v1 := r.Group("/api/v1")
	v1.Use(middleware.Auth(cfg.Resolver))
	{
		teams := v1.Group("/teams")
		{
			teams.POST("", cfg.TeamHandler.CreateTeam)
			teams.GET("", cfg.TeamHandler.ListTeams)

			// Everything below resolves the caller's effective role for the
			// target team before the policy check.
			teamWithID := teams.Group("/:teamId")
			teamWithID.Use(middleware.TeamContext(cfg.TeamRepo))
			{
				teamWithID.GET("", middleware.RequireRole(authz.ActionTeamView), cfg.TeamHandler.GetTeam)
				teamWithID.PUT("", middleware.RequireRole(authz.ActionTeamUpdate), cfg.TeamHandler.UpdateTeam)
				teamWithID.DELETE("", middleware.RequireRole(authz.ActionTeamDelete), cfg.TeamHandler.DeleteTeam)

				members := teamWithID.Group("/members")
				{
					members.GET("", middleware.RequireRole(authz.ActionTeamView), cfg.MemberHandler.ListMembers)
					members.POST("", middleware.RequireRole(authz.ActionMemberInvite), cfg.MemberHandler.InviteMember)
					members.DELETE("/:userId", middleware.RequireRole(authz.ActionMemberRemove), cfg.MemberHandler.RemoveMember)
					members.PUT("/:userId/role", middleware.RequireRole(authz.ActionMemberAssignRole), cfg.MemberHandler.AssignRole)
				}

				projects := teamWithID.Group("/projects")
				{
					projects.GET("", middleware.RequireRole(authz.ActionProjectView), cfg.ProjectHandler.ListProjects)
					projects.POST("", middleware.RequireRole(authz.ActionProjectCreate), cfg.ProjectHandler.CreateProject)
					projects.GET("/:projectId", middleware.RequireRole(authz.ActionProjectView), cfg.ProjectHandler.GetProject)
					projects.PUT("/:projectId", middleware.RequireRole(authz.ActionProjectUpdate), cfg.ProjectHandler.UpdateProject)
					projects.DELETE("/:projectId", middleware.RequireRole(authz.ActionProjectDelete), cfg.ProjectHandler.DeleteProject)

					projects.GET("/:projectId/tasks", middleware.RequireRole(authz.ActionTaskView), cfg.TaskHandler.ListTasks)
					projects.POST("/:projectId/tasks", middleware.RequireRole(authz.ActionTaskCreate), cfg.TaskHandler.CreateTask)
				}

				// Task updates and moves pass the role check here; ownership
				// rules (creator, assignee) are enforced in the service.
				tasks := teamWithID.Group("/tasks")
				{
					tasks.GET("/:taskId", middleware.RequireRole(authz.ActionTaskView), cfg.TaskHandler.GetTask)
					tasks.PUT("/:taskId", middleware.RequireRole(authz.ActionTaskView), cfg.TaskHandler.UpdateTask)
					tasks.PUT("/:taskId/move", middleware.RequireRole(authz.ActionTaskView), cfg.TaskHandler.MoveTask)
					tasks.DELETE("/:taskId", middleware.RequireRole(authz.ActionTaskDelete), cfg.TaskHandler.DeleteTask)
				}

				messages := teamWithID.Group("/messages")
				{
					messages.GET("", middleware.RequireRole(authz.ActionChatView), cfg.MessageHandler.ListMessages)
					messages.POST("", middleware.RequireRole(authz.ActionChatPost), cfg.MessageHandler.PostMessage)
				}

				attachments := teamWithID.Group("/attachments")
				{
					attachments.POST("", middleware.RequireRole(authz.ActionChatPost), cfg.MessageHandler.RequestAttachmentUpload)
					attachments.GET("/url", middleware.RequireRole(authz.ActionChatView), cfg.MessageHandler.GetAttachmentDownload)
				}

				teamWithID.GET("/activity", middleware.RequireRole(authz.ActionActivityView), cfg.ActivityHandler.ListActivities)
			}
		}
	}

	mux := http.NewServeMux()
	mux.Handle("/ws", cfg.Gateway)
	mux.Handle("/", r)
	return mux
}
