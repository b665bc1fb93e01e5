package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type EventType string

const (
	EventTypeNiceText    EventType = "niceText"
	EventTypeRunningText EventType = "runningText"
)

func (t EventType) Valid() bool {
	return t == EventTypeNiceText || t == EventTypeRunningText
}

type Event struct {
	ID        bson.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name      string        `bson:"name" json:"name"`
	Address   string        `bson:"address" json:"address"`
	Date      string        `bson:"date" json:"date"`
	StartTime string        `bson:"startTime" json:"startTime"`
	EndTime   string        `bson:"endTime" json:"endTime"`
	Concept   string        `bson:"concept" json:"concept"`
	Image     string        `bson:"image" json:"image"`
	Type      EventType     `bson:"type" json:"type"`

	// Position orders events on the page. Documents written before the
	// field existed decode as 0 and sort first, in _id order.
	Position int64 `bson:"position" json:"position"`

	CreatedAt time.Time  `bson:"createdAt" json:"createdAt"`
	UpdatedAt *time.Time `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}

// EventPatch holds the fields of an update; nil means "leave unchanged".
type EventPatch struct {
	Name      *string
	Address   *string
	Date      *string
	StartTime *string
	EndTime   *string
	Concept   *string
	Image     *string
	Type      *EventType
}

func (p EventPatch) Empty() bool {
	return p.Name == nil && p.Address == nil && p.Date == nil && p.StartTime == nil &&
		p.EndTime == nil && p.Concept == nil && p.Image == nil && p.Type == nil
}

// Apply copies the set fields onto e.
func (p EventPatch) Apply(e *Event) {
	if p.Name != nil {
		e.Name = *p.Name
	}
	if p.Address != nil {
		e.Address = *p.Address
	}
	if p.Date != nil {
		e.Date = *p.Date
	}
	if p.StartTime != nil {
		e.StartTime = *p.StartTime
	}
	if p.EndTime != nil {
		e.EndTime = *p.EndTime
	}
	if p.Concept != nil {
		e.Concept = *p.Concept
	}
	if p.Image != nil {
		e.Image = *p.Image
	}
	if p.Type != nil {
		e.Type = *p.Type
	}
}
