package realtime

import (
	"log"
	"sync"

	"teamsync/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// sessionBuffer is the per-session outbound queue size. A session that
// cannot drain this many events is considered stuck.
const sessionBuffer = 32

// RoomName returns the room identifier for a team.
func RoomName(teamID primitive.ObjectID) string {
	return "team:" + teamID.Hex()
}

// session is one connected client. Identity and role are snapshotted at
// connect time; a role change takes effect on the next connection.
type session struct {
	userID primitive.ObjectID
	role   models.Role
	teamID *primitive.ObjectID
	out    chan Event
}

// Hub tracks which sessions are in which rooms and fans events out to them.
type Hub struct {
	mu    sync.RWMutex
	rooms map[string]map[*session]struct{}
}

// NewHub creates a new Hub.
func NewHub() *Hub {
	return &Hub{
		rooms: make(map[string]map[*session]struct{}),
	}
}

// Broadcast sends an event to every session in a room. Sends never block:
// a session with a full buffer misses the event rather than stalling the
// producer.
func (h *Hub) Broadcast(room string, event Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for s := range h.rooms[room] {
		select {
		case s.out <- event:
		default:
			log.Printf("Dropping %s event for slow session %s in %s", event.Name, s.userID.Hex(), room)
		}
	}
}

// RoomSize returns the number of sessions in a room.
func (h *Hub) RoomSize(room string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.rooms[room])
}

func (h *Hub) join(room string, s *session) {
	h.mu.Lock()
	defer h.mu.Unlock()

	members, ok := h.rooms[room]
	if !ok {
		members = make(map[*session]struct{})
		h.rooms[room] = members
	}
	members[s] = struct{}{}
}

func (h *Hub) leave(room string, s *session) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.removeLocked(room, s)
}

// remove drops a session from every room it joined.
func (h *Hub) remove(s *session) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for room := range h.rooms {
		h.removeLocked(room, s)
	}
}

func (h *Hub) removeLocked(room string, s *session) {
	members, ok := h.rooms[room]
	if !ok {
		return
	}
	delete(members, s)
	if len(members) == 0 {
		delete(h.rooms, room)
	}
}

// Ensure Hub implements Broadcaster interface
var _ Broadcaster = (*Hub)(nil)
