package websocket

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventConstructors(t *testing.T) {
	tests := []struct {
		name     string
		event    Event
		expected string
		entity   EntityType
	}{
		{"milestone", MilestoneUnlocked(nil), "milestone.unlocked", EntityTypeMilestone},
		{"badge", BadgeEarned(nil), "badge.earned", EntityTypeBadge},
		{"snapshot", SnapshotRecorded(nil), "snapshot.recorded", EntityTypeSnapshot},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.event.Type)
			assert.Equal(t, tt.entity, tt.event.Entity)
			assert.Equal(t, time.UTC, tt.event.Timestamp.Location())
		})
	}
}

func TestEvent_JSON_Serialization(t *testing.T) {
	fixedTime := time.Date(2025, 1, 15, 10, 30, 0, 0, time.UTC)
	evt := Event{
		Type:      "milestone.unlocked",
		Entity:    EntityTypeMilestone,
		Payload:   map[string]interface{}{"type": "low_debt", "name": "Debt Free Warrior"},
		Timestamp: fixedTime,
	}

	data, err := evt.ToJSON()
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, "milestone.unlocked", decoded["type"])
	assert.Equal(t, "milestone", decoded["entity"])
	assert.Equal(t, "2025-01-15T10:30:00Z", decoded["timestamp"])
	payload, ok := decoded["payload"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "Debt Free Warrior", payload["name"])
}
