package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rocketscienceinc/gridclash-backend/internal/apperror"
	"github.com/rocketscienceinc/gridclash-backend/internal/board"
	"github.com/rocketscienceinc/gridclash-backend/internal/entity"
	"github.com/rocketscienceinc/gridclash-backend/internal/notation"
	"github.com/rocketscienceinc/gridclash-backend/internal/rules"
)

type matchRepo interface {
	CreateOrUpdate(ctx context.Context, match *entity.Match) error
}

// GameSession - one two-player game: seats, board and move history.
// All methods are safe for concurrent use; each one runs to completion under a single lock.
type GameSession struct {
	logger    *slog.Logger
	matchRepo matchRepo
	now       func() time.Time

	mu        sync.Mutex
	seats     map[entity.Side]string
	board     *board.Board
	history   []entity.HistoryEntry
	matchID   string
	startedAt time.Time
}

// NewGameSession - matchRepo may be nil, then finished games are not archived.
func NewGameSession(logger *slog.Logger, matchRepo matchRepo) *GameSession {
	return &GameSession{
		logger:    logger.With("component", "game_session"),
		matchRepo: matchRepo,
		now:       time.Now,

		seats: make(map[entity.Side]string, len(entity.Sides)),
		board: board.New(),
	}
}

// AddPlayer - seats connID on the first free side, A before B.
func (that *GameSession) AddPlayer(connID string) (entity.Side, bool) {
	that.mu.Lock()
	defer that.mu.Unlock()

	for _, side := range entity.Sides {
		if that.seats[side] == "" {
			that.seats[side] = connID
			return side, true
		}
	}

	return entity.NoSide, false
}

// RemovePlayer - frees the seat of connID. The board and history are kept.
func (that *GameSession) RemovePlayer(connID string) {
	that.mu.Lock()
	defer that.mu.Unlock()

	for _, side := range entity.Sides {
		if that.seats[side] == connID {
			delete(that.seats, side)
			return
		}
	}
}

func (that *GameSession) PlayersReady() bool {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.playersReady()
}

// SideOf - the side connID is seated on, or NoSide.
func (that *GameSession) SideOf(connID string) entity.Side {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.sideOf(connID)
}

// StartGame - resets the board and clears the history. Both seats must be taken.
func (that *GameSession) StartGame() error {
	that.mu.Lock()
	defer that.mu.Unlock()

	if !that.playersReady() {
		return apperror.ErrGameNotReady
	}

	that.board.Reset()
	that.history = nil
	that.matchID = uuid.NewString()
	that.startedAt = that.now()

	that.logger.Info("game started", "matchID", that.matchID)

	return nil
}

// MoveCharacter - validates and applies an encoded move sent by connID.
// History grows only when the move succeeds. A winning move archives the match.
func (that *GameSession) MoveCharacter(ctx context.Context, connID, encodedMove string) error {
	finished, err := that.moveCharacter(connID, encodedMove)
	if err != nil {
		return err
	}

	if finished != nil {
		that.archive(ctx, finished)
	}

	return nil
}

func (that *GameSession) moveCharacter(connID, encodedMove string) (*entity.Match, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	move, err := notation.Parse(encodedMove)
	if err != nil {
		return nil, fmt.Errorf("failed to parse move %q: %w", encodedMove, err)
	}

	if that.board.Winner() != entity.NoSide {
		return nil, apperror.ErrGameFinished
	}

	if move.Side != that.board.CurrentTurn() {
		return nil, apperror.ErrNotYourTurn
	}

	if that.seats[move.Side] != connID {
		return nil, apperror.ErrWrongPlayer
	}

	if err = rules.ValidateMove(move.Kind, move.Direction); err != nil {
		return nil, fmt.Errorf("invalid move %q: %w", encodedMove, err)
	}

	removed, err := that.board.ApplyMove(move.Side, move.Kind, move.Direction)
	if err != nil {
		return nil, fmt.Errorf("failed to apply move %q: %w", encodedMove, err)
	}

	that.history = append(that.history, entity.HistoryEntry{
		Move:          encodedMove,
		RemovedPieces: removed,
	})

	winner := that.board.Winner()
	if winner == entity.NoSide {
		return nil, nil
	}

	that.logger.Info("game finished", "matchID", that.matchID, "winner", winner)

	return that.finishedMatch(winner), nil
}

func (that *GameSession) Winner() entity.Side {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.board.Winner()
}

func (that *GameSession) GameState() entity.GameState {
	that.mu.Lock()
	defer that.mu.Unlock()

	return entity.GameState{
		Winner:      that.board.Winner(),
		Board:       that.board.Snapshot(),
		CurrentTurn: that.board.CurrentTurn(),
	}
}

func (that *GameSession) History() []entity.HistoryEntry {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.historyCopy()
}

// MatchID - id of the current or last game, empty before the first start.
func (that *GameSession) MatchID() string {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.matchID
}

func (that *GameSession) playersReady() bool {
	return that.seats[entity.SideA] != "" && that.seats[entity.SideB] != ""
}

func (that *GameSession) sideOf(connID string) entity.Side {
	for _, side := range entity.Sides {
		if that.seats[side] == connID {
			return side
		}
	}

	return entity.NoSide
}

func (that *GameSession) historyCopy() []entity.HistoryEntry {
	history := make([]entity.HistoryEntry, len(that.history))
	for i, entry := range that.history {
		history[i] = entity.HistoryEntry{
			Move:          entry.Move,
			RemovedPieces: append([]entity.Piece{}, entry.RemovedPieces...),
		}
	}

	return history
}

func (that *GameSession) finishedMatch(winner entity.Side) *entity.Match {
	match := &entity.Match{
		ID:         that.matchID,
		Winner:     winner,
		History:    that.historyCopy(),
		StartedAt:  that.startedAt,
		FinishedAt: that.now(),
	}

	for _, side := range entity.Sides {
		match.Players = append(match.Players, &entity.Player{ID: that.seats[side], Side: side})
	}

	return match
}

// archive - stores a finished match. Failures are only logged.
func (that *GameSession) archive(ctx context.Context, match *entity.Match) {
	log := that.logger.With("method", "archive", "matchID", match.ID)

	if that.matchRepo == nil {
		return
	}

	if err := that.matchRepo.CreateOrUpdate(ctx, match); err != nil {
		log.Error("failed to archive match", "error", err)
		return
	}

	log.Info("match archived", "winner", match.Winner)
}
