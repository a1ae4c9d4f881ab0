package main

import (
	"context"
	"log"
	"time"

	"teamsync/internal/config"
	"teamsync/internal/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func main() {
	log.Println("Starting migration...")

	cfg := config.Load()

	mongoDB := database.NewMongoDB(cfg.MongoURI, cfg.MongoDatabase)
	defer mongoDB.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	createIndexes(ctx, mongoDB.Database)

	log.Println("Migration completed successfully!")
}

func createIndexes(ctx context.Context, db *mongo.Database) {
	// Users indexes
	createIndex(ctx, db, "users", bson.D{{Key: "email", Value: 1}}, &options.IndexOptions{
		Unique: ptrBool(true),
	})
	createIndex(ctx, db, "users", bson.D{{Key: "subjectId", Value: 1}}, &options.IndexOptions{
		Unique: ptrBool(true),
		Sparse: ptrBool(true),
	})
	createIndex(ctx, db, "users", bson.D{{Key: "teamId", Value: 1}}, nil)

	// Teams indexes
	createIndex(ctx, db, "teams", bson.D{{Key: "adminId", Value: 1}}, nil)

	// Memberships indexes
	createIndex(ctx, db, "memberships", bson.D{
		{Key: "teamId", Value: 1},
		{Key: "userId", Value: 1},
	}, &options.IndexOptions{
		Unique: ptrBool(true),
	})
	createIndex(ctx, db, "memberships", bson.D{{Key: "userId", Value: 1}}, nil)
	// At most one accepted manager per team; the partial filter keeps the
	// constraint off ADMIN and MEMBER rows.
	createIndex(ctx, db, "memberships", bson.D{{Key: "teamId", Value: 1}}, &options.IndexOptions{
		Name:   ptrString("one_manager_per_team"),
		Unique: ptrBool(true),
		PartialFilterExpression: bson.D{
			{Key: "role", Value: "MANAGER"},
			{Key: "status", Value: "ACCEPTED"},
		},
	})

	// Projects indexes
	createIndex(ctx, db, "projects", bson.D{{Key: "teamId", Value: 1}}, nil)
	createIndex(ctx, db, "projects", bson.D{{Key: "adminId", Value: 1}}, nil)

	// Tasks indexes
	createIndex(ctx, db, "tasks", bson.D{
		{Key: "projectId", Value: 1},
		{Key: "status", Value: 1},
		{Key: "position", Value: 1},
	}, nil)
	createIndex(ctx, db, "tasks", bson.D{{Key: "teamId", Value: 1}}, nil)
	createIndex(ctx, db, "tasks", bson.D{{Key: "assignedTo", Value: 1}}, nil)

	// Messages indexes
	createIndex(ctx, db, "messages", bson.D{
		{Key: "teamId", Value: 1},
		{Key: "createdAt", Value: -1},
	}, nil)

	// Activities indexes
	createIndex(ctx, db, "activities", bson.D{
		{Key: "teamId", Value: 1},
		{Key: "createdAt", Value: -1},
	}, nil)
}

func createIndex(ctx context.Context, db *mongo.Database, collection string, keys bson.D, opts *options.IndexOptions) {
	indexModel := mongo.IndexModel{
		Keys:    keys,
		Options: opts,
	}

	name, err := db.Collection(collection).Indexes().CreateOne(ctx, indexModel)
	if err != nil {
		log.Printf("Warning: Failed to create index on %s: %v", collection, err)
		return
	}

	log.Printf("Created index %s on %s", name, collection)
}

func ptrBool(b bool) *bool {
	return &b
}

func ptrString(s string) *string {
	return &s
}
