package bootstrap

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// EnsureIndexes creates the indexes the repositories rely on. Creating an
// index that already exists is a no-op for MongoDB.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	// one account per email, lookups on login are by lowercased email
	if _, err := db.Collection("users").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("uniq_email"),
	}); err != nil {
		return fmt.Errorf("users index: %w", err)
	}

	if _, err := db.Collection("events").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "position", Value: 1},
			{Key: "_id", Value: 1},
		},
		Options: options.Index().SetName("position_id"),
	}); err != nil {
		return fmt.Errorf("events index: %w", err)
	}

	if _, err := db.Collection("messages").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "createdAt", Value: -1}},
		Options: options.Index().SetName("created_desc"),
	}); err != nil {
		return fmt.Errorf("messages index: %w", err)
	}

	if _, err := db.Collection("storageCleanup").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "attempts", Value: 1},
			{Key: "createdAt", Value: 1},
		},
		Options: options.Index().SetName("attempts_created"),
	}); err != nil {
		return fmt.Errorf("storageCleanup index: %w", err)
	}
	return nil
}
