package realtime

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strings"
	"time"

	"teamsync/internal/identity"
	"teamsync/internal/models"
	"teamsync/pkg/response"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const writeTimeout = 5 * time.Second

// clientFrame is the shape of frames a client sends.
type clientFrame struct {
	Event   string `json:"event"`
	Payload struct {
		TeamID string `json:"teamId"`
	} `json:"payload"`
}

// Gateway upgrades HTTP requests into realtime sessions. The credential is
// checked before the upgrade; unknown principals are rejected rather than
// provisioned. It serves plain net/http: the hijack that backs the upgrade
// must reach the server's own ResponseWriter, not a framework wrapper that
// buffers the handshake.
type Gateway struct {
	hub      *Hub
	resolver *identity.Resolver
}

// NewGateway creates a new Gateway.
func NewGateway(hub *Hub, resolver *identity.Resolver) *Gateway {
	return &Gateway{
		hub:      hub,
		resolver: resolver,
	}
}

// ServeHTTP serves the websocket endpoint.
func (g *Gateway) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	user, err := g.resolver.Identify(r.Context(), wsCredential(r))
	if err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(response.Response{
			Success: false,
			Error:   "invalid or missing credential",
			Code:    "TOKEN_INVALID",
		})
		return
	}

	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		OriginPatterns: []string{"*"},
	})
	if err != nil {
		log.Printf("Websocket accept failed: %v", err)
		return
	}

	s := &session{
		userID: user.ID,
		role:   user.Role,
		teamID: user.TeamID,
		out:    make(chan Event, sessionBuffer),
	}

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()
	defer g.hub.remove(s)

	// An affiliated principal listens on their team's room from the start;
	// explicit join frames only matter for admins entering other rooms.
	if s.teamID != nil {
		g.hub.join(RoomName(*s.teamID), s)
	}

	go g.writeLoop(ctx, conn, s)

	writeCtx, cancelWrite := context.WithTimeout(ctx, writeTimeout)
	_ = wsjson.Write(writeCtx, conn, Event{Name: EventReady})
	cancelWrite()

	g.readLoop(ctx, conn, s)
	_ = conn.Close(websocket.StatusNormalClosure, "closed")
}

// writeLoop drains the session's outbound queue onto the wire.
func (g *Gateway) writeLoop(ctx context.Context, conn *websocket.Conn, s *session) {
	for {
		select {
		case <-ctx.Done():
			return
		case event := <-s.out:
			writeCtx, cancel := context.WithTimeout(ctx, writeTimeout)
			err := wsjson.Write(writeCtx, conn, event)
			cancel()
			if err != nil {
				_ = conn.Close(websocket.StatusNormalClosure, "write_failed")
				return
			}
		}
	}
}

// readLoop handles room membership frames until the client disconnects.
func (g *Gateway) readLoop(ctx context.Context, conn *websocket.Conn, s *session) {
	for {
		var frame clientFrame
		if err := wsjson.Read(ctx, conn, &frame); err != nil {
			return
		}

		switch frame.Event {
		case EventJoinRoom:
			g.handleJoin(s, frame.Payload.TeamID)
		case EventLeaveRoom:
			g.handleLeave(s, frame.Payload.TeamID)
		default:
			s.send(Event{Name: EventError, Payload: map[string]string{"reason": "unknown event"}})
		}
	}
}

func (g *Gateway) handleJoin(s *session, rawTeamID string) {
	teamID, err := primitive.ObjectIDFromHex(rawTeamID)
	if err != nil {
		s.send(Event{Name: EventError, Payload: map[string]string{"reason": "invalid team id"}})
		return
	}

	if !s.mayJoin(teamID) {
		s.send(Event{Name: EventError, Payload: map[string]string{"reason": "not a member of this team"}})
		return
	}

	room := RoomName(teamID)
	g.hub.join(room, s)
	s.send(Event{Name: EventJoined, Payload: map[string]string{"teamId": teamID.Hex()}})
	log.Printf("User %s joined %s", s.userID.Hex(), room)
}

func (g *Gateway) handleLeave(s *session, rawTeamID string) {
	teamID, err := primitive.ObjectIDFromHex(rawTeamID)
	if err != nil {
		s.send(Event{Name: EventError, Payload: map[string]string{"reason": "invalid team id"}})
		return
	}

	g.hub.leave(RoomName(teamID), s)
	s.send(Event{Name: EventLeft, Payload: map[string]string{"teamId": teamID.Hex()}})
}

// mayJoin reports whether the session can enter a team's room: members of
// the team, plus admins, who may join any room.
func (s *session) mayJoin(teamID primitive.ObjectID) bool {
	if s.role == models.RoleAdmin {
		return true
	}
	return s.teamID != nil && *s.teamID == teamID
}

// send queues an event for the session, dropping it if the client is stuck.
func (s *session) send(event Event) {
	select {
	case s.out <- event:
	default:
	}
}

// wsCredential extracts the bearer credential from the Authorization header
// or, for browser websocket clients that cannot set headers, the token
// query parameter.
func wsCredential(r *http.Request) string {
	if header := r.Header.Get("Authorization"); header != "" {
		parts := strings.Split(header, " ")
		if len(parts) == 2 && parts[0] == "Bearer" {
			return parts[1]
		}
		return ""
	}
	return r.URL.Query().Get("token")
}
