package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"dj-site/internal/models"
)

type MongoEventRepository struct {
	events   *mongo.Collection
	counters *mongo.Collection
}

func NewMongoEventRepository(db *mongo.Database) *MongoEventRepository {
	return &MongoEventRepository{
		events:   db.Collection(CollEvents),
		counters: db.Collection(CollCounters),
	}
}

// nextPosition hands out increasing positions from a counter document, so
// concurrent inserts never share one.
func (r *MongoEventRepository) nextPosition(ctx context.Context) (int64, error) {
	var out struct {
		Seq int64 `bson:"seq"`
	}
	err := r.counters.FindOneAndUpdate(
		ctx,
		bson.M{"_id": CollEvents},
		bson.M{"$inc": bson.M{"seq": int64(1)}},
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	).Decode(&out)
	if err != nil {
		return 0, fmt.Errorf("next event position: %w", err)
	}
	return out.Seq, nil
}

func (r *MongoEventRepository) Insert(ctx context.Context, e *models.Event) error {
	pos, err := r.nextPosition(ctx)
	if err != nil {
		return err
	}
	e.ID = bson.NewObjectID()
	e.Position = pos
	if _, err := r.events.InsertOne(ctx, e); err != nil {
		return fmt.Errorf("insert event: %w", err)
	}
	return nil
}

func (r *MongoEventRepository) List(ctx context.Context) ([]models.Event, error) {
	opts := options.Find().SetSort(bson.D{
		{Key: "position", Value: 1},
		{Key: "_id", Value: 1},
	})
	cursor, err := r.events.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, fmt.Errorf("find events: %w", err)
	}
	defer cursor.Close(ctx)

	events := []models.Event{}
	if err := cursor.All(ctx, &events); err != nil {
		return nil, fmt.Errorf("decode events: %w", err)
	}
	return events, nil
}

func (r *MongoEventRepository) FindByID(ctx context.Context, id bson.ObjectID) (*models.Event, error) {
	var event models.Event
	err := r.events.FindOne(ctx, bson.M{"_id": id}).Decode(&event)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find event: %w", err)
	}
	return &event, nil
}

func patchToSet(patch models.EventPatch, now time.Time) bson.M {
	set := bson.M{"updatedAt": now}
	if patch.Name != nil {
		set["name"] = *patch.Name
	}
	if patch.Address != nil {
		set["address"] = *patch.Address
	}
	if patch.Date != nil {
		set["date"] = *patch.Date
	}
	if patch.StartTime != nil {
		set["startTime"] = *patch.StartTime
	}
	if patch.EndTime != nil {
		set["endTime"] = *patch.EndTime
	}
	if patch.Concept != nil {
		set["concept"] = *patch.Concept
	}
	if patch.Image != nil {
		set["image"] = *patch.Image
	}
	if patch.Type != nil {
		set["type"] = string(*patch.Type)
	}
	return set
}

func (r *MongoEventRepository) Update(ctx context.Context, id bson.ObjectID, patch models.EventPatch, now time.Time) (*models.Event, error) {
	var event models.Event
	err := r.events.FindOneAndUpdate(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": patchToSet(patch, now)},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&event)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("update event: %w", err)
	}
	return &event, nil
}

func (r *MongoEventRepository) Delete(ctx context.Context, id bson.ObjectID) error {
	res, err := r.events.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete event: %w", err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoEventRepository) Reorder(ctx context.Context, ids []bson.ObjectID) error {
	if len(ids) == 0 {
		return nil
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "position", Value: 1}, {Key: "_id", Value: 1}}).
		SetProjection(bson.M{"_id": 1})
	cursor, err := r.events.Find(ctx, bson.D{}, opts)
	if err != nil {
		return fmt.Errorf("find event order: %w", err)
	}
	var docs []struct {
		ID bson.ObjectID `bson:"_id"`
	}
	if err := cursor.All(ctx, &docs); err != nil {
		return fmt.Errorf("decode event order: %w", err)
	}
	current := make([]bson.ObjectID, len(docs))
	for i, d := range docs {
		current[i] = d.ID
	}
	order, err := FullOrder(current, ids)
	if err != nil {
		return err
	}

	writes := make([]mongo.WriteModel, 0, len(order))
	for i, id := range order {
		writes = append(writes, mongo.NewUpdateOneModel().
			SetFilter(bson.M{"_id": id}).
			SetUpdate(bson.M{"$set": bson.M{"position": int64(i + 1)}}))
	}
	if _, err := r.events.BulkWrite(ctx, writes, options.BulkWrite().SetOrdered(false)); err != nil {
		return fmt.Errorf("reorder events: %w", err)
	}
	// keep new events behind the reordered ones
	_, err = r.counters.UpdateOne(
		ctx,
		bson.M{"_id": CollEvents},
		bson.M{"$max": bson.M{"seq": int64(len(order))}},
		options.UpdateOne().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("bump event counter: %w", err)
	}
	return nil
}
