package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type MessageStatus string

const (
	MessageStatusNew  MessageStatus = "new"
	MessageStatusRead MessageStatus = "read"
)

func (s MessageStatus) Valid() bool {
	return s == MessageStatusNew || s == MessageStatusRead
}

// Message is a contact-form submission.
type Message struct {
	ID        bson.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name      string        `bson:"name" json:"name"`
	Email     string        `bson:"email" json:"email"`
	Message   string        `bson:"message" json:"message"`
	Status    MessageStatus `bson:"status" json:"status"`
	CreatedAt time.Time     `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time     `bson:"updatedAt" json:"updatedAt"`
}
