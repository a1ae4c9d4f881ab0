//go:build api

// Package testserver provides a fully wired test server for API integration tests.
package testserver

import (
	"context"
	"net/http"
	"time"

	"teamsync/internal/cache"
	"teamsync/internal/handler"
	"teamsync/internal/identity"
	"teamsync/internal/queue"
	"teamsync/internal/realtime"
	"teamsync/internal/repository"
	"teamsync/internal/router"
	"teamsync/internal/service"
	"teamsync/internal/storage"
	"teamsync/pkg/token"
	"teamsync/test/api/testdb"

	"github.com/gin-gonic/gin"
)

const (
	// TestJWTSecret is the JWT secret used in tests.
	TestJWTSecret = "test-secret-key-for-api-tests"
	// TestJWTExpiry is the token expiry time used in tests.
	TestJWTExpiry = time.Hour
	// TestDBName is the database name used in tests.
	TestDBName = "test_api"
)

// TestServer holds all dependencies for API integration tests.
type TestServer struct {
	// Router is the full HTTP handler, REST routes and websocket gateway
	// included, for making requests against.
	Router http.Handler

	// Containers
	MongoDB *testdb.MongoContainer
	Redis   *testdb.RedisContainer
	MinIO   *testdb.MinIOContainer

	// Repositories (for direct database access in tests)
	UserRepo       repository.UserRepository
	TeamRepo       repository.TeamRepository
	MembershipRepo repository.MembershipRepository
	ProjectRepo    repository.ProjectRepository
	TaskRepo       repository.TaskRepository
	MessageRepo    repository.MessageRepository
	ActivityRepo   repository.ActivityRepository

	// Services (for direct service access in tests)
	TeamService     service.TeamServicer
	MemberService   service.MemberServicer
	ProjectService  service.ProjectServicer
	TaskService     service.TaskServicer
	MessageService  service.MessageServicer
	ActivityService service.ActivityServicer

	// Identity
	Verifier *token.JWTVerifier
	Resolver *identity.Resolver

	// Realtime
	Hub *realtime.Hub

	// Activity pipeline
	ActivityQueue     *queue.MemoryQueue
	ActivityProcessor *queue.Processor
}

// New creates a new test server with all dependencies wired up.
func New(ctx context.Context) (*TestServer, error) {
	gin.SetMode(gin.TestMode)

	// Start containers
	mongoDB, err := testdb.SetupMongoDB(ctx, TestDBName)
	if err != nil {
		return nil, err
	}

	redisContainer, err := testdb.SetupRedis(ctx)
	if err != nil {
		_ = mongoDB.Cleanup(ctx)
		return nil, err
	}

	minioContainer, err := testdb.SetupMinIO(ctx)
	if err != nil {
		_ = mongoDB.Cleanup(ctx)
		_ = redisContainer.Cleanup(ctx)
		return nil, err
	}

	// Create cache (uses real Redis)
	redisCache := cache.NewRedis(redisContainer.URI)

	// Create storage (uses real MinIO)
	s3Client := storage.NewS3Client(
		minioContainer.Endpoint,
		minioContainer.AccessKey,
		minioContainer.SecretKey,
		minioContainer.Bucket,
		false, // useSSL
	)

	// Identity
	verifier := token.NewJWTVerifier(TestJWTSecret, TestJWTExpiry)

	// Repository layer
	userRepo := repository.NewUserRepository(mongoDB.Database)
	teamRepo := repository.NewTeamRepository(mongoDB.Database)
	membershipRepo := repository.NewMembershipRepository(mongoDB.Database)
	projectRepo := repository.NewProjectRepository(mongoDB.Database)
	taskRepo := repository.NewTaskRepository(mongoDB.Database)
	messageRepo := repository.NewMessageRepository(mongoDB.Database)
	activityRepo := repository.NewActivityRepository(mongoDB.Database)

	resolver := identity.NewResolver(verifier, userRepo)

	// Activity pipeline
	activityQueue := queue.NewMemoryQueue(100)
	recorder := queue.NewRecorder(activityQueue)
	activityProcessor := queue.NewProcessor(activityQueue, activityRepo, 2)

	// Realtime
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

	return &TestServer{
		Router:            r,
		MongoDB:           mongoDB,
		Redis:             redisContainer,
		MinIO:             minioContainer,
		UserRepo:          userRepo,
		TeamRepo:          teamRepo,
		MembershipRepo:    membershipRepo,
		ProjectRepo:       projectRepo,
		TaskRepo:          taskRepo,
		MessageRepo:       messageRepo,
		ActivityRepo:      activityRepo,
		TeamService:       teamService,
		MemberService:     memberService,
		ProjectService:    projectService,
		TaskService:       taskService,
		MessageService:    messageService,
		ActivityService:   activityService,
		Verifier:          verifier,
		Resolver:          resolver,
		Hub:               hub,
		ActivityQueue:     activityQueue,
		ActivityProcessor: activityProcessor,
	}, nil
}

// Cleanup terminates all containers.
func (ts *TestServer) Cleanup(ctx context.Context) {
	if ts.MinIO != nil {
		_ = ts.MinIO.Cleanup(ctx)
	}
	if ts.Redis != nil {
		_ = ts.Redis.Cleanup(ctx)
	}
	if ts.MongoDB != nil {
		_ = ts.MongoDB.Cleanup(ctx)
	}
}

// StartActivityProcessor starts the activity processor.
func (ts *TestServer) StartActivityProcessor(ctx context.Context) {
	ts.ActivityProcessor.Start(ctx)
}

// StopActivityProcessor stops the activity processor and resets the queue so
// it can be used by subsequent tests.
func (ts *TestServer) StopActivityProcessor() {
	ts.ActivityProcessor.Stop()
	ts.ActivityQueue.Reset()
	ts.ActivityProcessor = queue.NewProcessor(ts.ActivityQueue, ts.ActivityRepo, 2)
}
