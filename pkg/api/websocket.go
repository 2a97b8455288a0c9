package api

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/coder/websocket"
	"github.com/gin-gonic/gin"

	"github.com/scribe-research/scribe/pkg/bus"
)

// wsWriteTimeout bounds a single WebSocket send.
const wsWriteTimeout = 10 * time.Second

// wsClientMessage is the client → server message shape.
type wsClientMessage struct {
	Action      string `json:"action"`                  // "subscribe", "unsubscribe", "catchup", "ping"
	MissionID   string `json:"mission_id,omitempty"`
	LastEventID *int   `json:"last_event_id,omitempty"` // for catchup
}

// handleWebSocket upgrades the connection and serves mission event streams.
// One subscription per mission per connection; clients deduplicate on
// log_id across catchup and live delivery.
func (s *Server) handleWebSocket(c *gin.Context) {
	conn, err := websocket.Accept(c.Writer, c.Request, &websocket.AcceptOptions{
		OriginPatterns: []string{"*"},
	})
	if err != nil {
		slog.Warn("WebSocket upgrade failed", "error", err)
		return
	}
	defer conn.Close(websocket.StatusNormalClosure, "")

	ctx, cancel := context.WithCancel(c.Request.Context())
	defer cancel()

	subs := make(map[string]*bus.Subscription)
	defer func() {
		for _, sub := range subs {
			sub.Close()
		}
	}()

	s.sendWS(ctx, conn, map[string]string{"type": "connection.established"})

	for {
		_, data, err := conn.Read(ctx)
		if err != nil {
			return
		}
		var msg wsClientMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			slog.Warn("Invalid WebSocket message", "error", err)
			continue
		}
		s.handleWSMessage(ctx, conn, subs, &msg)
	}
}

func (s *Server) handleWSMessage(ctx context.Context, conn *websocket.Conn, subs map[string]*bus.Subscription, msg *wsClientMessage) {
	switch msg.Action {
	case "subscribe":
		if msg.MissionID == "" {
			s.sendWS(ctx, conn, map[string]string{"type": "error", "message": "mission_id is required for subscribe"})
			return
		}
		if _, ok := subs[msg.MissionID]; ok {
			return
		}
		sub := s.bus.Subscribe(msg.MissionID)
		subs[msg.MissionID] = sub
		s.sendWS(ctx, conn, map[string]string{"type": "subscription.confirmed", "mission_id": msg.MissionID})

		// Catch up on persisted durable events, then stream live.
		s.sendCatchup(ctx, conn, msg.MissionID, 0)
		go s.streamSubscription(ctx, conn, sub)

	case "unsubscribe":
		if sub, ok := subs[msg.MissionID]; ok {
			sub.Close()
			delete(subs, msg.MissionID)
		}

	case "catchup":
		if msg.MissionID != "" && msg.LastEventID != nil {
			s.sendCatchup(ctx, conn, msg.MissionID, *msg.LastEventID)
		}

	case "ping":
		s.sendWS(ctx, conn, map[string]string{"type": "pong"})
	}
}

// streamSubscription forwards live envelopes until the subscription or
// connection closes.
func (s *Server) streamSubscription(ctx context.Context, conn *websocket.Conn, sub *bus.Subscription) {
	for {
		select {
		case <-ctx.Done():
			return
		case env, ok := <-sub.C:
			if !ok {
				return
			}
			s.sendWS(ctx, conn, env)
		}
	}
}

// sendCatchup replays persisted durable events after sinceID.
func (s *Server) sendCatchup(ctx context.Context, conn *websocket.Conn, missionID string, sinceID int) {
	events, err := s.events.GetEventsSince(ctx, bus.MissionChannel(missionID), sinceID)
	if err != nil {
		slog.Warn("Catchup query failed", "mission_id", missionID, "error", err)
		return
	}
	for _, evt := range events {
		payload := evt.Payload
		payload["db_event_id"] = evt.ID
		s.sendWS(ctx, conn, payload)
	}
}

func (s *Server) sendWS(ctx context.Context, conn *websocket.Conn, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		slog.Error("Failed to marshal WebSocket payload", "error", err)
		return
	}
	writeCtx, cancel := context.WithTimeout(ctx, wsWriteTimeout)
	defer cancel()
	if err := conn.Write(writeCtx, websocket.MessageText, data); err != nil {
		slog.Warn("Failed to send to WebSocket client", "error", err)
	}
}
