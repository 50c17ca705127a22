package entity

import (
	"encoding/json"
	"time"
)

// HistoryEntry - a successful move and the pieces it captured.
type HistoryEntry struct {
	Move          string  `json:"move"`
	RemovedPieces []Piece `json:"removedPieces"`
}

// GameState - the view of a session broadcast to every connection.
type GameState struct {
	Winner      Side       `json:"winner"`
	Board       [][]*Piece `json:"board"`
	CurrentTurn Side       `json:"currentTurn"`
}

func (that GameState) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Winner      *Side      `json:"winner"`
		Board       [][]*Piece `json:"board"`
		CurrentTurn *Side      `json:"currentTurn"`
	}{
		Winner:      sideOrNull(that.Winner),
		Board:       that.Board,
		CurrentTurn: sideOrNull(that.CurrentTurn),
	})
}

func sideOrNull(side Side) *Side {
	if side == NoSide {
		return nil
	}
	return &side
}

// Player - a connection seated on a side.
type Player struct {
	ID   string `json:"id"`
	Side Side   `json:"side,omitempty"`
}

// Match - archive record of a finished game.
type Match struct {
	ID         string         `json:"id"`
	Players    []*Player      `json:"players"`
	Winner     Side           `json:"winner"`
	History    []HistoryEntry `json:"history"`
	StartedAt  time.Time      `json:"started_at"`
	FinishedAt time.Time      `json:"finished_at"`
}
