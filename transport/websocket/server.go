package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/rocketscienceinc/gridclash-backend/internal/gateway"
)

const (
	pongWait     = 60 * time.Second
	pingInterval = 30 * time.Second
)

type eventSubmitter interface {
	Submit(ctx context.Context, event gateway.Event) error
}

type Server struct {
	logger   *slog.Logger
	hub      *Hub
	gateway  eventSubmitter
	upgrader websocket.Upgrader
}

func New(logger *slog.Logger, hub *Hub, gateway eventSubmitter) *Server {
	return &Server{
		logger:  logger.With("component", "websocket"),
		hub:     hub,
		gateway: gateway,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(_ *http.Request) bool {
				return true
			},
		},
	}
}

// Start - starts the WebSocket server and stops it when ctx is done.
func (that *Server) Start(ctx context.Context, port string) error {
	mux := http.NewServeMux()
	mux.Handle("/ws", that.Handler(ctx))

	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			that.logger.Error("failed to shutdown server", "error", err)
		}
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// Handler - upgrades requests and serves each connection until it closes.
func (that *Server) Handler(ctx context.Context) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, req *http.Request) {
		log := that.logger.With("method", "upgradeConnection")

		conn, err := that.upgrader.Upgrade(writer, req, nil)
		if err != nil {
			log.Error("failed to upgrade connection", "error", err)
			return
		}

		defer conn.Close()

		connID := uuid.NewString()
		c := that.hub.add(connID, conn)

		log.Info("WebSocket connection established", "connID", connID)

		stopPing := make(chan struct{})
		go that.keepAlive(c, stopPing)

		that.handleMessages(ctx, connID, conn)

		close(stopPing)
		that.hub.remove(connID)

		if err = that.gateway.Submit(ctx, gateway.Event{Name: gateway.EventDisconnect, ConnID: connID}); err != nil {
			log.Error("failed to submit disconnect", "connID", connID, "error", err)
		}
	})
}

// handleMessages - reads messages until the connection fails.
func (that *Server) handleMessages(ctx context.Context, connID string, conn *websocket.Conn) {
	log := that.logger.With("method", "handleMessages", "connID", connID)

	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Error("error reading message", "error", err)
			}
			return
		}

		event, err := decodeEvent(connID, data)
		if err != nil {
			log.Warn("failed to decode message", "error", err)
			that.hub.Emit(connID, gateway.EventError, err.Error())
			continue
		}

		if err = that.gateway.Submit(ctx, event); err != nil {
			log.Error("failed to submit event", "error", err)
			return
		}
	}
}

func (that *Server) keepAlive(c *client, stop <-chan struct{}) {
	ticker := time.NewTicker(pingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			if err := c.ping(); err != nil {
				return
			}
		}
	}
}

var (
	ErrBadMessage    = errors.New("invalid message")
	ErrUnknownAction = errors.New("unknown action")
)

func decodeEvent(connID string, data []byte) (gateway.Event, error) {
	var message Message
	if err := json.Unmarshal(data, &message); err != nil {
		return gateway.Event{}, ErrBadMessage
	}

	switch message.Action {
	case gateway.EventJoin:
		return gateway.Event{Name: gateway.EventJoin, ConnID: connID}, nil
	case gateway.EventMove:
		var move string
		if err := json.Unmarshal(message.Payload, &move); err != nil {
			return gateway.Event{}, fmt.Errorf("%w: move payload must be a string", ErrBadMessage)
		}

		return gateway.Event{Name: gateway.EventMove, ConnID: connID, Payload: move}, nil
	default:
		return gateway.Event{}, fmt.Errorf("%w: %q", ErrUnknownAction, message.Action)
	}
}
