package board

import (
	"errors"
	"fmt"

	"github.com/rocketscienceinc/gridclash-backend/internal/apperror"
	"github.com/rocketscienceinc/gridclash-backend/internal/entity"
	"github.com/rocketscienceinc/gridclash-backend/internal/rules"
)

const (
	homeRowA = rules.BoardSize - 1
	homeRowB = 0
)

// Board - the grid and whose turn it is. A zero Board has no pieces and no turn.
// Board is not safe for concurrent use.
type Board struct {
	grid        [rules.BoardSize][rules.BoardSize]entity.Piece
	currentTurn entity.Side
}

var ErrInvalidSetup = errors.New("invalid board setup")

func New() *Board {
	return &Board{}
}

// NewWithPieces - a board holding only pieces, with turn to move. Every position must be
// on the grid and each (owner, kind) pair may appear once.
func NewWithPieces(turn entity.Side, pieces map[entity.Position]entity.Piece) (*Board, error) {
	if !turn.IsValid() {
		return nil, fmt.Errorf("%w: turn %q", ErrInvalidSetup, turn)
	}

	b := &Board{currentTurn: turn}
	seen := make(map[entity.Piece]struct{}, len(pieces))

	for pos, piece := range pieces {
		if !rules.InBounds(pos) {
			return nil, fmt.Errorf("%w: %+v is off the grid", ErrInvalidSetup, pos)
		}

		if !piece.Owner.IsValid() || !piece.Kind.IsValid() {
			return nil, fmt.Errorf("%w: unknown piece %+v", ErrInvalidSetup, piece)
		}

		if _, ok := seen[piece]; ok {
			return nil, fmt.Errorf("%w: duplicate piece %s-%s", ErrInvalidSetup, piece.Owner, piece.Kind)
		}

		seen[piece] = struct{}{}
		b.set(pos, piece)
	}

	return b, nil
}

// Reset - places both sides on their home rows and gives the turn to side A.
func (that *Board) Reset() {
	that.grid = [rules.BoardSize][rules.BoardSize]entity.Piece{}

	for col, kind := range entity.HomeRowOrder {
		that.grid[homeRowA][col] = entity.Piece{Owner: entity.SideA, Kind: kind}
		that.grid[homeRowB][col] = entity.Piece{Owner: entity.SideB, Kind: kind}
	}

	that.currentTurn = entity.SideA
}

func (that *Board) CurrentTurn() entity.Side {
	return that.currentTurn
}

// ApplyMove - moves the (side, kind) piece along its path, capturing every enemy
// piece on the path. Nothing changes when an error is returned.
func (that *Board) ApplyMove(side entity.Side, kind entity.PieceKind, direction entity.Direction) ([]entity.Piece, error) {
	origin, ok := that.FindPiece(side, kind)
	if !ok {
		return nil, apperror.ErrPieceNotFound
	}

	path := rules.TracePath(side, kind, origin, direction)
	if len(path) == 0 {
		return nil, apperror.ErrWrongMovePiece
	}

	destination := path[len(path)-1]
	if !rules.InBounds(destination) {
		return nil, apperror.ErrOutOfBounds
	}

	for _, pos := range path {
		if that.at(pos).Owner == side {
			return nil, apperror.ErrFriendlyBlock
		}
	}

	removed := make([]entity.Piece, 0, len(path))
	for _, pos := range path {
		if piece := that.at(pos); !piece.IsEmpty() {
			removed = append(removed, piece)
			that.set(pos, entity.Piece{})
		}
	}

	mover := that.at(origin)
	that.set(origin, entity.Piece{})
	that.set(destination, mover)

	that.currentTurn = side.Opponent()

	return removed, nil
}

// FindPiece - position of the (side, kind) piece, scanning in row-major order.
func (that *Board) FindPiece(side entity.Side, kind entity.PieceKind) (entity.Position, bool) {
	for row := range that.grid {
		for col, piece := range that.grid[row] {
			if piece.Owner == side && piece.Kind == kind {
				return entity.Position{Row: row, Col: col}, true
			}
		}
	}

	return entity.Position{}, false
}

func (that *Board) PieceAt(pos entity.Position) (entity.Piece, bool) {
	if !rules.InBounds(pos) {
		return entity.Piece{}, false
	}

	piece := that.at(pos)

	return piece, !piece.IsEmpty()
}

func (that *Board) PieceCount(side entity.Side) int {
	count := 0
	for row := range that.grid {
		for _, piece := range that.grid[row] {
			if piece.Owner == side {
				count++
			}
		}
	}

	return count
}

// Winner - the side whose opponent has no pieces left, or NoSide.
func (that *Board) Winner() entity.Side {
	switch {
	case that.currentTurn == entity.NoSide:
		return entity.NoSide
	case that.PieceCount(entity.SideA) == 0:
		return entity.SideB
	case that.PieceCount(entity.SideB) == 0:
		return entity.SideA
	default:
		return entity.NoSide
	}
}

// Snapshot - a detached copy of the grid, nil for empty cells.
func (that *Board) Snapshot() [][]*entity.Piece {
	snapshot := make([][]*entity.Piece, rules.BoardSize)

	for row := range that.grid {
		snapshot[row] = make([]*entity.Piece, rules.BoardSize)

		for col, piece := range that.grid[row] {
			if !piece.IsEmpty() {
				snapshot[row][col] = &piece
			}
		}
	}

	return snapshot
}

func (that *Board) at(pos entity.Position) entity.Piece {
	return that.grid[pos.Row][pos.Col]
}

func (that *Board) set(pos entity.Position, piece entity.Piece) {
	that.grid[pos.Row][pos.Col] = piece
}
