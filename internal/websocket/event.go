package websocket

import (
	"encoding/json"
	"fmt"
	"time"
)

// EventType represents what happened to the entity
type EventType string

const (
	EventTypeUnlocked EventType = "unlocked"
	EventTypeEarned   EventType = "earned"
	EventTypeRecorded EventType = "recorded"
)

// EntityType represents the type of entity the event is about
type EntityType string

const (
	EntityTypeMilestone EntityType = "milestone"
	EntityTypeBadge     EntityType = "badge"
	EntityTypeSnapshot  EntityType = "snapshot"
)

// Event represents a WebSocket event message sent to clients
// Format: { type, entity, payload, timestamp }
type Event struct {
	Type      string      `json:"type"`      // Combined type e.g. "milestone.unlocked"
	Entity    EntityType  `json:"entity"`    // Entity type e.g. "milestone"
	Payload   interface{} `json:"payload"`   // Full entity data
	Timestamp time.Time   `json:"timestamp"` // Event timestamp
}

// NewEvent creates a new event with the given type, entity, and payload
func NewEvent(eventType EventType, entityType EntityType, payload interface{}) Event {
	return Event{
		Type:      fmt.Sprintf("%s.%s", entityType, eventType),
		Entity:    entityType,
		Payload:   payload,
		Timestamp: time.Now().UTC(),
	}
}

// ToJSON serializes the event to JSON bytes
func (e Event) ToJSON() ([]byte, error) {
	return json.Marshal(e)
}

// MilestoneUnlocked creates a milestone.unlocked event
func MilestoneUnlocked(payload interface{}) Event {
	return NewEvent(EventTypeUnlocked, EntityTypeMilestone, payload)
}

// BadgeEarned creates a badge.earned event
func BadgeEarned(payload interface{}) Event {
	return NewEvent(EventTypeEarned, EntityTypeBadge, payload)
}

// SnapshotRecorded creates a snapshot.recorded event
func SnapshotRecorded(payload interface{}) Event {
	return NewEvent(EventTypeRecorded, EntityTypeSnapshot, payload)
}
