package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"teamsync/internal/cache"
	"teamsync/internal/config"
	"teamsync/internal/database"
	"teamsync/internal/handler"
	"teamsync/internal/identity"
	"teamsync/internal/queue"
	"teamsync/internal/realtime"
	"teamsync/internal/repository"
	"teamsync/internal/router"
	"teamsync/internal/service"
	"teamsync/internal/storage"
	"teamsync/internal/validator"
	"teamsync/pkg/token"

	"github.com/gin-gonic/gin"
)

// @title           TeamSync API
// @version         1.0
// @description     Team collaboration backend: teams, projects, task boards and chat.

// @contact.name    API Support
// @contact.email   support@example.com

// @host            localhost:8080
// @BasePath        /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Enter your bearer token in the format: Bearer {token}

func main() {
	// Load configuration
	cfg := config.Load()
	log.Println("Configuration loaded")

	// Register custom validators
	validator.RegisterCustomValidators()

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Database
	mongoDB := database.NewMongoDB(cfg.MongoURI, cfg.MongoDatabase)
	defer mongoDB.Close()

	// Redis Cache
	redisCache := cache.NewRedis(cfg.RedisURI)
	defer redisCache.Close()

	// S3 Storage
	s3Client := storage.NewS3Client(cfg.S3Endpoint, cfg.S3AccessKey, cfg.S3SecretKey, cfg.S3Bucket, cfg.S3UseSSL)

	// Identity
	verifier := token.NewJWTVerifier(cfg.JWTSecret, cfg.JWTExpiry)

	// Repository layer
	userRepo := repository.NewUserRepository(mongoDB.Database)
	teamRepo := repository.NewTeamRepository(mongoDB.Database)
	membershipRepo := repository.NewMembershipRepository(mongoDB.Database)
	projectRepo := repository.NewProjectRepository(mongoDB.Database)
	taskRepo := repository.NewTaskRepository(mongoDB.Database)
	messageRepo := repository.NewMessageRepository(mongoDB.Database)
	activityRepo := repository.NewActivityRepository(mongoDB.Database)

	resolver := identity.NewResolver(verifier, userRepo)

	// Activity pipeline: recorded off the request path, persisted by workers.
	activityQueue := queue.NewMemoryQueue(cfg.ActivityQueueSize)
	recorder := queue.NewRecorder(activityQueue)
	activityProcessor := queue.NewProcessor(activityQueue, activityRepo, cfg.ActivityWorkers)

	// Realtime hub and websocket gateway
	hub := realtime.NewHub()
	gateway := realtime.NewGateway(hub, resolver)

	// Service layer
	teamService := service.NewTeamService(teamRepo, userRepo, membershipRepo, projectRepo, taskRepo, messageRepo, activityRepo, redisCache, recorder)
	memberService := service.NewMemberService(membershipRepo, userRepo, teamRepo, recorder)
	projectService := service.NewProjectService(projectRepo, taskRepo, teamRepo, redisCache, recorder)
	taskService := service.NewTaskService(taskRepo, projectRepo, membershipRepo, recorder)
	messageService := service.NewMessageService(messageRepo, s3Client, hub, recorder)
	activityService := service.NewActivityService(activityRepo)

	// Router
	r := router.Setup(&router.Config{
		TeamHandler:     handler.NewTeamHandler(teamService),
		MemberHandler:   handler.NewMemberHandler(memberService),
		ProjectHandler:  handler.NewProjectHandler(projectService),
		TaskHandler:     handler.NewTaskHandler(taskService),
		MessageHandler:  handler.NewMessageHandler(messageService),
		ActivityHandler: handler.NewActivityHandler(activityService),
		Gateway:         gateway,
		Resolver:        resolver,
		TeamRepo:        teamRepo,
	})

	// Create context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Start activity processor
	activityProcessor.Start(ctx)

	// Create HTTP server for graceful shutdown support
	addr := fmt.Sprintf(":%s", cfg.ServerPort)
	srv := &http.Server{
		Addr:    addr,
		Handler: r,
	}

	// Start server in goroutine
	go func() {
		log.Printf("Server starting on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh
	log.Println("Shutdown signal received")

	// Graceful shutdown with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	// Shutdown HTTP server first (drain connections)
	log.Println("Shutting down HTTP server...")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("HTTP server shutdown error: %v", err)
	}

	// Cancel context to signal processor shutdown
	cancel()

	// Stop activity processor (waits for workers)
	log.Println("Stopping activity processor...")
	activityProcessor.Stop()

	log.Println("Server shutdown complete")
}
