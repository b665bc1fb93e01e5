package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// CleanupTask is an outbox entry for a stored object that must be removed
// but could not be at the time its owning record changed.
type CleanupTask struct {
	ID        bson.ObjectID `bson:"_id,omitempty" json:"_id"`
	Path      string        `bson:"path" json:"path"`
	Reason    string        `bson:"reason" json:"reason"`
	Attempts  int           `bson:"attempts" json:"attempts"`
	LastError string        `bson:"lastError,omitempty" json:"lastError,omitempty"`
	CreatedAt time.Time     `bson:"createdAt" json:"createdAt"`
}
