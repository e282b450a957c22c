package handlers

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/meditrip/backend/internal/auth"
	"github.com/meditrip/backend/internal/config"
	"github.com/meditrip/backend/internal/events"
	"go.uber.org/zap"
)

// WSHub fans wallet and purchase events out to connected clients.
type WSHub struct {
	cfg         *config.Config
	subscriber  events.Subscriber
	log         *zap.Logger
	mu          sync.RWMutex
	connections map[uuid.UUID][]*websocket.Conn
}

func NewWSHub(cfg *config.Config, subscriber events.Subscriber, log *zap.Logger) *WSHub {
	return &WSHub{
		cfg:         cfg,
		subscriber:  subscriber,
		log:         log,
		connections: make(map[uuid.UUID][]*websocket.Conn),
	}
}

func (h *WSHub) Start(ctx context.Context) {
	_ = h.subscriber.Subscribe(ctx, events.StreamWallet, h.broadcast)
	_ = h.subscriber.Subscribe(ctx, events.StreamPurchase, h.broadcast)
}

func (h *WSHub) broadcast(event events.Event) {
	// Events carry a profile/patient id; deliver to that profile's
	// connections only, falling back to broadcast when absent.
	if target, ok := event.Payload["profile_id"].(string); ok {
		if id, err := uuid.Parse(target); err == nil {
			h.SendToProfile(id, event)
			return
		}
	}
	if target, ok := event.Payload["patient_id"].(string); ok {
		if id, err := uuid.Parse(target); err == nil {
			h.SendToProfile(id, event)
			return
		}
	}

	data, err := json.Marshal(event)
	if err != nil {
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, conns := range h.connections {
		for _, conn := range conns {
			_ = conn.WriteMessage(websocket.TextMessage, data)
		}
	}
}

func (h *WSHub) SendToProfile(profileID uuid.UUID, event events.Event) {
	data, err := json.Marshal(event)
	if err != nil {
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, conn := range h.connections[profileID] {
		_ = conn.WriteMessage(websocket.TextMessage, data)
	}
}

// WSUpgradeMiddleware checks for websocket upgrade
func WSUpgradeMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	}
}

func (h *WSHub) HandleWS(conn *websocket.Conn) {
	tokenStr := conn.Query("token")
	if tokenStr == "" {
		_ = conn.WriteMessage(websocket.TextMessage, []byte(`{"error":"missing token"}`))
		conn.Close()
		return
	}

	claims, err := auth.ParseJWT(h.cfg.JWTSecret, tokenStr)
	if err != nil {
		_ = conn.WriteMessage(websocket.TextMessage, []byte(`{"error":"invalid token"}`))
		conn.Close()
		return
	}

	profileID := claims.ProfileID

	h.mu.Lock()
	h.connections[profileID] = append(h.connections[profileID], conn)
	h.mu.Unlock()

	defer func() {
		h.mu.Lock()
		conns := h.connections[profileID]
		for i, c := range conns {
			if c == conn {
				h.connections[profileID] = append(conns[:i], conns[i+1:]...)
				break
			}
		}
		if len(h.connections[profileID]) == 0 {
			delete(h.connections, profileID)
		}
		h.mu.Unlock()
		conn.Close()
	}()

	// Read loop (keep alive / pings)
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}
