// Package realtime manages websocket sessions and team room broadcasts.
package realtime

// Event is the wire frame exchanged with realtime clients.
type Event struct {
	Name    string      `json:"event"`
	Payload interface{} `json:"payload,omitempty"`
}

// Client-initiated event names.
const (
	EventJoinRoom  = "join-team-room"
	EventLeaveRoom = "leave-team-room"
)

// Server-initiated event names.
const (
	EventReady      = "ready"
	EventJoined     = "joined"
	EventLeft       = "left"
	EventError      = "error"
	EventNewMessage = "chat:new-message"
)

// Broadcaster is the producer-facing surface of the hub. Services publish
// through it without knowing about sessions.
type Broadcaster interface {
	Broadcast(room string, event Event)
}
