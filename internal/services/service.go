// Package services holds the site's use cases. Each service owns one
// aggregate, talks to repositories through their interfaces and bounds every
// call with a timeout.
package services

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

const DefaultTimeout = 10 * time.Second

func withTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		d = DefaultTimeout
	}
	return context.WithTimeout(ctx, d)
}

// parseID maps a malformed hex id to not-found: such a document cannot exist.
func parseID(hex, resource string) (bson.ObjectID, error) {
	id, err := bson.ObjectIDFromHex(hex)
	if err != nil {
		return bson.NilObjectID, &NotFoundError{Resource: resource}
	}
	return id, nil
}
