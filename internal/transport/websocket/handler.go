package websocket

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"

	"github.com/iamasit07/gomoku/backend/internal/domain"
	"github.com/iamasit07/gomoku/backend/internal/service/game"
	"github.com/iamasit07/gomoku/backend/pkg/uid"
)

const (
	pongWait   = 60 * time.Second
	pingPeriod = 30 * time.Second
)

// Handler manages WebSocket dependencies
type Handler struct {
	ConnManager      *ConnectionManager
	SessionManager   *game.SessionManager
	DefaultBoardSize int
	Upgrader         websocket.Upgrader
}

// NewHandler builds the live-play handler. An empty allowedOrigins accepts
// every origin.
func NewHandler(cm *ConnectionManager, sm *game.SessionManager, defaultBoardSize int, allowedOrigins []string) *Handler {
	return &Handler{
		ConnManager:      cm,
		SessionManager:   sm,
		DefaultBoardSize: defaultBoardSize,
		Upgrader: websocket.Upgrader{
			CheckOrigin:     originChecker(allowedOrigins),
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}
}

func originChecker(allowed []string) func(r *http.Request) bool {
	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if origin == "" || len(allowed) == 0 {
			return true
		}
		for _, o := range allowed {
			if o == origin {
				return true
			}
		}
		return false
	}
}

// HandleWebSocket is the HTTP handler that upgrades the connection
func (h *Handler) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := h.Upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Warn().Str("component", "ws").Err(err).Msg("upgrade failed")
		return
	}

	h.handleConnection(r.Context(), conn)
}

func (h *Handler) handleConnection(ctx context.Context, conn *websocket.Conn) {
	connID := uid.GenerateConnID()
	h.ConnManager.AddConnection(connID, conn)
	logger := log.With().Str("component", "ws").Str("conn_id", connID).Logger()
	logger.Info().Msg("connection opened")

	conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(pingPeriod)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
					return
				}
			}
		}
	}()

	defer func() {
		close(done)
		h.SessionManager.RemoveByConnID(connID)
		h.ConnManager.RemoveConnection(connID)
		logger.Info().Msg("connection closed")
	}()

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				logger.Warn().Err(err).Msg("disconnected unexpectedly")
			}
			return
		}

		var msg domain.ClientMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			h.sendError(connID, "invalid message format")
			continue
		}

		h.processMessage(ctx, connID, msg)
	}
}

// processMessage routes specific actions
func (h *Handler) processMessage(ctx context.Context, connID string, msg domain.ClientMessage) {
	var err error

	switch msg.Type {
	case "start_game":
		size := msg.BoardSize
		if size == 0 {
			size = h.DefaultBoardSize
		}
		humanFirst := true
		if msg.HumanFirst != nil {
			humanFirst = *msg.HumanFirst
		}
		_, err = h.SessionManager.StartGame(ctx, connID, msg.Difficulty, size, humanFirst, h.ConnManager)

	case "make_move":
		err = h.SessionManager.HandleMove(ctx, connID, msg.Row, msg.Col, h.ConnManager)

	case "resign":
		err = h.SessionManager.Resign(connID, h.ConnManager)

	default:
		h.sendError(connID, "unknown message type: "+msg.Type)
		return
	}

	if err != nil {
		h.sendError(connID, err.Error())
	}
}

func (h *Handler) sendError(connID, message string) {
	h.ConnManager.SendMessage(connID, domain.ServerMessage{Type: "error", Message: message})
}
