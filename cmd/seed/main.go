package main

import (
	"context"
	"log"
	"time"

	"teamsync/internal/config"
	"teamsync/internal/database"
	"teamsync/internal/models"
	"teamsync/pkg/token"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// SeedUser represents a user document for seeding.
type SeedUser struct {
	ID        primitive.ObjectID  `bson:"_id,omitempty"`
	SubjectID string              `bson:"subjectId"`
	Email     string              `bson:"email"`
	Name      string              `bson:"name"`
	Role      models.Role         `bson:"role"`
	TeamID    *primitive.ObjectID `bson:"teamId,omitempty"`
	CreatedAt time.Time           `bson:"createdAt"`
	UpdatedAt time.Time           `bson:"updatedAt"`
}

// SeedTask represents a task document for seeding.
type SeedTask struct {
	ID          primitive.ObjectID  `bson:"_id,omitempty"`
	Title       string              `bson:"title"`
	Description string              `bson:"description"`
	ProjectID   primitive.ObjectID  `bson:"projectId"`
	TeamID      primitive.ObjectID  `bson:"teamId"`
	Status      models.TaskStatus   `bson:"status"`
	Priority    models.TaskPriority `bson:"priority"`
	Position    float64             `bson:"position"`
	CreatedBy   primitive.ObjectID  `bson:"createdBy"`
	AssignedTo  *primitive.ObjectID `bson:"assignedTo,omitempty"`
	CreatedAt   time.Time           `bson:"createdAt"`
	UpdatedAt   time.Time           `bson:"updatedAt"`
}

func main() {
	log.Println("Starting seed...")

	// Load config
	cfg := config.Load()

	// Connect to MongoDB
	mongoDB := database.NewMongoDB(cfg.MongoURI, cfg.MongoDatabase)
	defer mongoDB.Close()

	ctx := context.Background()
	db := mongoDB.Database

	clearCollections(ctx, db)

	now := time.Now()
	teamID := primitive.NewObjectID()

	// Seed users: an admin, a manager, a member and one unaffiliated user.
	users := []SeedUser{
		{ID: primitive.NewObjectID(), SubjectID: "seed|alice", Email: "alice@example.com", Name: "Alice Johnson", Role: models.RoleAdmin, TeamID: &teamID, CreatedAt: now, UpdatedAt: now},
		{ID: primitive.NewObjectID(), SubjectID: "seed|bob", Email: "bob@example.com", Name: "Bob Smith", Role: models.RoleManager, TeamID: &teamID, CreatedAt: now, UpdatedAt: now},
		{ID: primitive.NewObjectID(), SubjectID: "seed|carol", Email: "carol@example.com", Name: "Carol Davis", Role: models.RoleMember, TeamID: &teamID, CreatedAt: now, UpdatedAt: now},
		{ID: primitive.NewObjectID(), SubjectID: "seed|dave", Email: "dave@example.com", Name: "Dave Wilson", Role: models.RoleMember, CreatedAt: now, UpdatedAt: now},
	}
	insertAll(ctx, db, "users", toDocs(users))
	log.Printf("Seeded %d users", len(users))

	alice, bob, carol := users[0], users[1], users[2]

	// Seed the team and memberships
	insertAll(ctx, db, "teams", []interface{}{models.Team{
		ID:          teamID,
		Name:        "Engineering Team",
		Description: "Product engineering workspace",
		AdminID:     alice.ID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}})

	memberships := []models.Membership{
		{TeamID: teamID, UserID: alice.ID, Role: models.RoleAdmin, Status: models.StatusAccepted, InvitedBy: alice.ID, JoinedAt: now},
		{TeamID: teamID, UserID: bob.ID, Role: models.RoleManager, Status: models.StatusAccepted, InvitedBy: alice.ID, JoinedAt: now},
		{TeamID: teamID, UserID: carol.ID, Role: models.RoleMember, Status: models.StatusAccepted, InvitedBy: alice.ID, JoinedAt: now},
	}
	insertAll(ctx, db, "memberships", toDocs(memberships))
	log.Printf("Seeded %d memberships", len(memberships))

	// Seed a project with a small board
	projectID := primitive.NewObjectID()
	insertAll(ctx, db, "projects", []interface{}{models.Project{
		ID:          projectID,
		Name:        "Website Redesign",
		Description: "Q3 marketing site refresh",
		TeamID:      teamID,
		AdminID:     alice.ID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}})

	tasks := []SeedTask{
		{Title: "Draft landing page copy", Description: "First pass on the hero and pricing sections", ProjectID: projectID, TeamID: teamID, Status: models.StatusTodo, Priority: models.PriorityHigh, Position: 1000, CreatedBy: bob.ID, AssignedTo: &carol.ID, CreatedAt: now, UpdatedAt: now},
		{Title: "Set up staging environment", ProjectID: projectID, TeamID: teamID, Status: models.StatusTodo, Priority: models.PriorityMedium, Position: 2000, CreatedBy: bob.ID, CreatedAt: now, UpdatedAt: now},
		{Title: "Migrate blog posts", Description: "Port the old CMS content", ProjectID: projectID, TeamID: teamID, Status: models.StatusInProgress, Priority: models.PriorityLow, Position: 1000, CreatedBy: carol.ID, AssignedTo: &carol.ID, CreatedAt: now, UpdatedAt: now},
		{Title: "Pick a font pairing", ProjectID: projectID, TeamID: teamID, Status: models.StatusDone, Priority: models.PriorityLow, Position: 1000, CreatedBy: alice.ID, AssignedTo: &bob.ID, CreatedAt: now, UpdatedAt: now},
	}
	insertAll(ctx, db, "tasks", toDocs(tasks))
	log.Printf("Seeded %d tasks", len(tasks))

	// Seed a short chat history
	messages := []models.Message{
		{TeamID: teamID, SenderID: bob.ID, SenderName: bob.Name, Content: "Welcome to the team chat!", CreatedAt: now.Add(-2 * time.Hour)},
		{TeamID: teamID, SenderID: carol.ID, SenderName: carol.Name, Content: "Thanks! Starting on the landing page copy today.", CreatedAt: now.Add(-90 * time.Minute)},
		{TeamID: teamID, SenderID: alice.ID, SenderName: alice.Name, Content: "Kickoff call tomorrow at 10.", CreatedAt: now.Add(-time.Hour)},
	}
	insertAll(ctx, db, "messages", toDocs(messages))
	log.Printf("Seeded %d messages", len(messages))

	// Print bearer tokens so the seeded users are usable right away.
	verifier := token.NewJWTVerifier(cfg.JWTSecret, cfg.JWTExpiry)
	for _, u := range users {
		signed, err := verifier.Issue(token.Identity{Subject: u.SubjectID, Email: u.Email, Name: u.Name})
		if err != nil {
			log.Fatalf("Failed to issue token for %s: %v", u.Email, err)
		}
		log.Printf("Token for %s:\n  %s", u.Email, signed)
	}

	log.Println("Seed completed successfully!")
}

func clearCollections(ctx context.Context, db *mongo.Database) {
	for _, name := range []string{"users", "teams", "memberships", "projects", "tasks", "messages", "activities"} {
		if _, err := db.Collection(name).DeleteMany(ctx, bson.M{}); err != nil {
			log.Fatalf("Failed to clear %s: %v", name, err)
		}
	}
}

func insertAll(ctx context.Context, db *mongo.Database, collection string, docs []interface{}) {
	if _, err := db.Collection(collection).InsertMany(ctx, docs); err != nil {
		log.Fatalf("Failed to seed %s: %v", collection, err)
	}
}

func toDocs[T any](items []T) []interface{} {
	docs := make([]interface{}, len(items))
	for i, item := range items {
		docs[i] = item
	}
	return docs
}
