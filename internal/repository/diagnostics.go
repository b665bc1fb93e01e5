package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

type MongoDiagnostics struct {
	db *mongo.Database
}

func NewMongoDiagnostics(db *mongo.Database) *MongoDiagnostics {
	return &MongoDiagnostics{db: db}
}

func (d *MongoDiagnostics) CollectionNames(ctx context.Context) ([]string, error) {
	names, err := d.db.ListCollectionNames(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("list collections: %w", err)
	}
	return names, nil
}
