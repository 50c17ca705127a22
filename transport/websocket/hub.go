package websocket

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const writeTimeout = 10 * time.Second

type client struct {
	conn *websocket.Conn

	// gorilla connections allow one concurrent writer
	writeMu sync.Mutex
}

func (that *client) write(data []byte) error {
	that.writeMu.Lock()
	defer that.writeMu.Unlock()

	if err := that.conn.SetWriteDeadline(time.Now().Add(writeTimeout)); err != nil {
		return fmt.Errorf("failed to set write deadline: %w", err)
	}

	return that.conn.WriteMessage(websocket.TextMessage, data)
}

func (that *client) ping() error {
	that.writeMu.Lock()
	defer that.writeMu.Unlock()

	return that.conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeTimeout))
}

// Hub - the registry of open connections. It delivers gateway events.
type Hub struct {
	logger *slog.Logger

	mu      sync.RWMutex
	clients map[string]*client
}

func NewHub(logger *slog.Logger) *Hub {
	return &Hub{
		logger:  logger.With("component", "hub"),
		clients: make(map[string]*client),
	}
}

func (that *Hub) add(connID string, conn *websocket.Conn) *client {
	c := &client{conn: conn}

	that.mu.Lock()
	that.clients[connID] = c
	that.mu.Unlock()

	return c
}

func (that *Hub) remove(connID string) {
	that.mu.Lock()
	delete(that.clients, connID)
	that.mu.Unlock()
}

func (that *Hub) Len() int {
	that.mu.RLock()
	defer that.mu.RUnlock()

	return len(that.clients)
}

// Emit - sends an event to one connection. Unknown connections are ignored.
func (that *Hub) Emit(connID, event string, payload any) {
	log := that.logger.With("method", "Emit", "connID", connID, "event", event)

	that.mu.RLock()
	c, ok := that.clients[connID]
	that.mu.RUnlock()

	if !ok {
		log.Warn("connection not found")
		return
	}

	data, err := newMessage(event, payload)
	if err != nil {
		log.Error("failed to marshal message", "error", err)
		return
	}

	if err = c.write(data); err != nil {
		log.Error("failed to send message", "error", err)
	}
}

// Broadcast - sends an event to every connection, one after another, so each
// connection sees events in the order they were emitted.
func (that *Hub) Broadcast(event string, payload any) {
	log := that.logger.With("method", "Broadcast", "event", event)

	data, err := newMessage(event, payload)
	if err != nil {
		log.Error("failed to marshal message", "error", err)
		return
	}

	that.mu.RLock()
	targets := make(map[string]*client, len(that.clients))
	for connID, c := range that.clients {
		targets[connID] = c
	}
	that.mu.RUnlock()

	for connID, c := range targets {
		if err = c.write(data); err != nil {
			log.Error("failed to send message", "connID", connID, "error", err)
		}
	}
}
