// Package gateway turns connection events into game session calls and fans the
// results out to connections.
package gateway

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/gridclash-backend/internal/apperror"
	"github.com/rocketscienceinc/gridclash-backend/internal/entity"
)

// Emitter - delivers events to connections.
type Emitter interface {
	Emit(connID, event string, payload any)
	Broadcast(event string, payload any)
}

type gameSession interface {
	AddPlayer(connID string) (entity.Side, bool)
	RemovePlayer(connID string)
	SideOf(connID string) entity.Side
	PlayersReady() bool
	StartGame() error
	MoveCharacter(ctx context.Context, connID, encodedMove string) error
	Winner() entity.Side
	GameState() entity.GameState
	History() []entity.HistoryEntry
}

type Gateway struct {
	logger  *slog.Logger
	session gameSession
	emitter Emitter

	events chan Event
}

// New - a negative queueSize is treated as 0.
func New(logger *slog.Logger, session gameSession, emitter Emitter, queueSize int) *Gateway {
	return &Gateway{
		logger:  logger.With("component", "gateway"),
		session: session,
		emitter: emitter,

		events: make(chan Event, max(queueSize, 0)),
	}
}

// Submit - queues an event for Run. It blocks while the queue is full.
func (that *Gateway) Submit(ctx context.Context, event Event) error {
	select {
	case that.events <- event:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("failed to submit %s event: %w", event.Name, ctx.Err())
	}
}

// Run - handles queued events one at a time until ctx is done.
func (that *Gateway) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case event := <-that.events:
			that.Handle(ctx, event)
		}
	}
}

func (that *Gateway) Handle(ctx context.Context, event Event) {
	switch event.Name {
	case EventJoin:
		that.handleJoin(event.ConnID)
	case EventMove:
		that.handleMove(ctx, event.ConnID, event.Payload)
	case EventDisconnect:
		that.handleDisconnect(event.ConnID)
	default:
		that.logger.Warn("unknown event", "event", event.Name, "connID", event.ConnID)
	}
}

func (that *Gateway) handleJoin(connID string) {
	log := that.logger.With("method", "handleJoin", "connID", connID)

	if side := that.session.SideOf(connID); side != entity.NoSide {
		if that.session.PlayersReady() && that.session.Winner() != entity.NoSide {
			log.Info("rematch requested", "side", side)
			that.startGame(log)
			return
		}

		that.emitter.Emit(connID, EventPlayer, side)
		if !that.session.PlayersReady() {
			that.emitter.Emit(connID, EventWaiting, waitingText)
		}

		return
	}

	side, ok := that.session.AddPlayer(connID)
	if !ok {
		log.Info("game is full")
		that.emitter.Emit(connID, EventError, apperror.ErrGameFull.Error())
		that.emitter.Emit(connID, EventPlayer, nil)
		return
	}

	log.Info("player joined", "side", side)
	that.emitter.Emit(connID, EventPlayer, side)

	if that.session.PlayersReady() {
		that.startGame(log)
		return
	}

	that.emitter.Emit(connID, EventWaiting, waitingText)
}

func (that *Gateway) startGame(log *slog.Logger) {
	if err := that.session.StartGame(); err != nil {
		log.Error("failed to start game", "error", err)
		return
	}

	log.Info("game started")
	that.broadcastState()
	that.broadcastHistory()
}

// handleMove - the state and history are broadcast even when the move is rejected.
func (that *Gateway) handleMove(ctx context.Context, connID, encodedMove string) {
	log := that.logger.With("method", "handleMove", "connID", connID, "move", encodedMove)

	if !that.session.PlayersReady() {
		that.emitter.Emit(connID, EventError, apperror.ErrGameNotReady.Error())
		return
	}

	if err := that.session.MoveCharacter(ctx, connID, encodedMove); err != nil {
		log.Info("move rejected", "error", err)
		that.emitter.Emit(connID, EventError, apperror.Message(err))
	} else {
		log.Info("move applied")
	}

	that.broadcastState()
	that.broadcastHistory()
}

func (that *Gateway) handleDisconnect(connID string) {
	that.logger.Info("player disconnected", "connID", connID, "side", that.session.SideOf(connID))

	that.session.RemovePlayer(connID)
	that.broadcastState()
}

func (that *Gateway) broadcastState() {
	that.emitter.Broadcast(EventGameState, that.session.GameState())
}

func (that *Gateway) broadcastHistory() {
	that.emitter.Broadcast(EventGameHistory, that.session.History())
}
