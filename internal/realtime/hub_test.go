package realtime

import (
	"testing"

	"teamsync/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func newTestSession(role models.Role, teamID *primitive.ObjectID) *session {
	return &session{
		userID: primitive.NewObjectID(),
		role:   role,
		teamID: teamID,
		out:    make(chan Event, sessionBuffer),
	}
}

func TestRoomName(t *testing.T) {
	teamID := primitive.NewObjectID()
	assert.Equal(t, "team:"+teamID.Hex(), RoomName(teamID))
}

func TestHub_Broadcast(t *testing.T) {
	t.Run("delivers to every session in the room", func(t *testing.T) {
		hub := NewHub()
		teamID := primitive.NewObjectID()
		room := RoomName(teamID)

		a := newTestSession(models.RoleMember, &teamID)
		b := newTestSession(models.RoleMember, &teamID)
		hub.join(room, a)
		hub.join(room, b)

		hub.Broadcast(room, Event{Name: EventNewMessage, Payload: "hello"})

		for _, s := range []*session{a, b} {
			select {
			case event := <-s.out:
				assert.Equal(t, EventNewMessage, event.Name)
				assert.Equal(t, "hello", event.Payload)
			default:
				t.Fatal("session did not receive event")
			}
		}
	})

	t.Run("does not leak across rooms", func(t *testing.T) {
		hub := NewHub()
		teamA := primitive.NewObjectID()
		teamB := primitive.NewObjectID()

		inA := newTestSession(models.RoleMember, &teamA)
		inB := newTestSession(models.RoleMember, &teamB)
		hub.join(RoomName(teamA), inA)
		hub.join(RoomName(teamB), inB)

		hub.Broadcast(RoomName(teamA), Event{Name: EventNewMessage})

		select {
		case <-inA.out:
		default:
			t.Fatal("room member did not receive event")
		}

		select {
		case <-inB.out:
			t.Fatal("event leaked into another room")
		default:
		}
	})

	t.Run("drops events for stuck sessions", func(t *testing.T) {
		hub := NewHub()
		teamID := primitive.NewObjectID()
		room := RoomName(teamID)

		stuck := newTestSession(models.RoleMember, &teamID)
		hub.join(room, stuck)

		for i := 0; i < sessionBuffer+5; i++ {
			hub.Broadcast(room, Event{Name: EventNewMessage})
		}

		// The buffer absorbed what it could; the rest were dropped and
		// the broadcast never blocked.
		assert.Equal(t, sessionBuffer, len(stuck.out))
	})

	t.Run("broadcast to empty room is a no-op", func(t *testing.T) {
		hub := NewHub()
		hub.Broadcast(RoomName(primitive.NewObjectID()), Event{Name: EventNewMessage})
	})
}

func TestHub_Membership(t *testing.T) {
	t.Run("leave removes a session from one room", func(t *testing.T) {
		hub := NewHub()
		teamID := primitive.NewObjectID()
		room := RoomName(teamID)

		s := newTestSession(models.RoleMember, &teamID)
		hub.join(room, s)
		require.Equal(t, 1, hub.RoomSize(room))

		hub.leave(room, s)
		assert.Equal(t, 0, hub.RoomSize(room))

		hub.Broadcast(room, Event{Name: EventNewMessage})
		select {
		case <-s.out:
			t.Fatal("received event after leaving")
		default:
		}
	})

	t.Run("join is idempotent", func(t *testing.T) {
		hub := NewHub()
		teamID := primitive.NewObjectID()
		room := RoomName(teamID)

		s := newTestSession(models.RoleMember, &teamID)
		hub.join(room, s)
		hub.join(room, s)

		assert.Equal(t, 1, hub.RoomSize(room))

		hub.Broadcast(room, Event{Name: EventNewMessage})
		assert.Equal(t, 1, len(s.out), "duplicate join must not duplicate delivery")
	})

	t.Run("remove clears a session from all rooms", func(t *testing.T) {
		hub := NewHub()
		teamA := primitive.NewObjectID()
		teamB := primitive.NewObjectID()

		admin := newTestSession(models.RoleAdmin, nil)
		hub.join(RoomName(teamA), admin)
		hub.join(RoomName(teamB), admin)

		hub.remove(admin)

		assert.Equal(t, 0, hub.RoomSize(RoomName(teamA)))
		assert.Equal(t, 0, hub.RoomSize(RoomName(teamB)))
	})
}

func TestSession_MayJoin(t *testing.T) {
	teamID := primitive.NewObjectID()
	otherTeam := primitive.NewObjectID()

	t.Run("member joins own team room", func(t *testing.T) {
		s := newTestSession(models.RoleMember, &teamID)
		assert.True(t, s.mayJoin(teamID))
	})

	t.Run("member cannot join other rooms", func(t *testing.T) {
		s := newTestSession(models.RoleMember, &teamID)
		assert.False(t, s.mayJoin(otherTeam))
	})

	t.Run("member without team cannot join", func(t *testing.T) {
		s := newTestSession(models.RoleMember, nil)
		assert.False(t, s.mayJoin(teamID))
	})

	t.Run("admin joins any room", func(t *testing.T) {
		s := newTestSession(models.RoleAdmin, &teamID)
		assert.True(t, s.mayJoin(otherTeam))
	})
}
