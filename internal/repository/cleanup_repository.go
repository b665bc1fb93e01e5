package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"dj-site/internal/models"
)

type MongoCleanupRepository struct {
	tasks *mongo.Collection
}

func NewMongoCleanupRepository(db *mongo.Database) *MongoCleanupRepository {
	return &MongoCleanupRepository{tasks: db.Collection(CollStorageCleanup)}
}

func (r *MongoCleanupRepository) Add(ctx context.Context, t *models.CleanupTask) error {
	t.ID = bson.NewObjectID()
	if _, err := r.tasks.InsertOne(ctx, t); err != nil {
		return fmt.Errorf("insert cleanup task: %w", err)
	}
	return nil
}

func (r *MongoCleanupRepository) Pending(ctx context.Context, limit int) ([]models.CleanupTask, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "attempts", Value: 1}, {Key: "createdAt", Value: 1}}).
		SetLimit(int64(limit))
	cursor, err := r.tasks.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, fmt.Errorf("find cleanup tasks: %w", err)
	}
	defer cursor.Close(ctx)

	tasks := []models.CleanupTask{}
	if err := cursor.All(ctx, &tasks); err != nil {
		return nil, fmt.Errorf("decode cleanup tasks: %w", err)
	}
	return tasks, nil
}

func (r *MongoCleanupRepository) Remove(ctx context.Context, id bson.ObjectID) error {
	if _, err := r.tasks.DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		return fmt.Errorf("delete cleanup task: %w", err)
	}
	return nil
}

func (r *MongoCleanupRepository) MarkFailed(ctx context.Context, id bson.ObjectID, reason string) error {
	_, err := r.tasks.UpdateOne(
		ctx,
		bson.M{"_id": id},
		bson.M{
			"$inc": bson.M{"attempts": 1},
			"$set": bson.M{"lastError": reason},
		},
	)
	if err != nil {
		return fmt.Errorf("mark cleanup task: %w", err)
	}
	return nil
}
