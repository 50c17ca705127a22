package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rocketscienceinc/gridclash-backend/internal/entity"
	"github.com/rocketscienceinc/gridclash-backend/internal/repository"
)

type gameSession interface {
	GameState() entity.GameState
	History() []entity.HistoryEntry
	MatchID() string
}

type matchRepo interface {
	GetByID(ctx context.Context, id string) (*entity.Match, error)
}

type Handlers struct {
	logger    *slog.Logger
	session   gameSession
	matchRepo matchRepo
}

func NewHandlers(logger *slog.Logger, session gameSession, matchRepo matchRepo) *Handlers {
	return &Handlers{
		logger:    logger.With("component", "rest"),
		session:   session,
		matchRepo: matchRepo,
	}
}

// GameResponse - the live game as seen by connected players.
type GameResponse struct {
	MatchID string                `json:"match_id,omitempty"`
	State   entity.GameState      `json:"state"`
	History []entity.HistoryEntry `json:"history"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (that *Handlers) Ping(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("pong")); err != nil {
		that.logger.Error("failed to write response", "method", "Ping", "error", err)
	}
}

func (that *Handlers) Game(w http.ResponseWriter, _ *http.Request) {
	that.writeJSON(w, http.StatusOK, GameResponse{
		MatchID: that.session.MatchID(),
		State:   that.session.GameState(),
		History: that.session.History(),
	})
}

func (that *Handlers) Match(w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "Match")

	id := chi.URLParam(r, "id")

	match, err := that.matchRepo.GetByID(r.Context(), id)
	if errors.Is(err, repository.ErrMatchNotFound) {
		that.writeJSON(w, http.StatusNotFound, errorResponse{Error: err.Error()})
		return
	}

	if err != nil {
		log.Error("failed to get match", "matchID", id, "error", err)
		that.writeJSON(w, http.StatusInternalServerError, errorResponse{Error: http.StatusText(http.StatusInternalServerError)})
		return
	}

	that.writeJSON(w, http.StatusOK, match)
}

func (that *Handlers) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		that.logger.Error("failed to write response", "error", err)
	}
}
