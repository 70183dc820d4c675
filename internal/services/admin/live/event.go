// Package live pushes users-view refresh events to open browsers over
// websockets, optionally relayed between admin instances through Redis.
package live

import (
	"encoding/json"
	"fmt"
	"time"
)

// EventRefresh asks every open users view to re-fetch its list.
const EventRefresh = "refresh"

// Event is the payload sent to browsers and across instances.
type Event struct {
	Type string `json:"type"`
	// Origin identifies the admin instance that produced the event.
	Origin string `json:"origin,omitempty"`
	At     int64  `json:"at"`
}

// RefreshEvent returns a refresh event stamped with now.
func RefreshEvent(now time.Time) Event {
	return Event{Type: EventRefresh, At: now.UTC().UnixMilli()}
}

// Broadcaster delivers events to local clients.
type Broadcaster interface {
	Broadcast(event Event)
}

func encodeEvent(event Event) ([]byte, error) {
	payload, err := json.Marshal(event)
	if err != nil {
		return nil, fmt.Errorf("encode live event: %w", err)
	}
	return payload, nil
}

func decodeEvent(payload []byte) (Event, error) {
	var event Event
	if err := json.Unmarshal(payload, &event); err != nil {
		return Event{}, fmt.Errorf("decode live event: %w", err)
	}
	if event.Type == "" {
		return Event{}, fmt.Errorf("decode live event: type is required")
	}
	return event, nil
}
