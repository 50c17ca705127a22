// Package rules holds the movement capabilities of each piece kind.
package rules

import (
	"fmt"
	"slices"

	"github.com/rocketscienceinc/gridclash-backend/internal/apperror"
	"github.com/rocketscienceinc/gridclash-backend/internal/entity"
)

const BoardSize = 5

var (
	orthogonal = []entity.Direction{entity.Left, entity.Right, entity.Forward, entity.Backward}
	diagonal   = []entity.Direction{entity.ForwardLeft, entity.ForwardRight, entity.BackLeft, entity.BackRight}
)

// LegalDirections - directions a kind may move in. Unknown kinds have none.
func LegalDirections(kind entity.PieceKind) []entity.Direction {
	switch {
	case kind.IsPawn(), kind == entity.Hero1:
		return slices.Clone(orthogonal)
	case kind == entity.Hero2:
		return slices.Clone(diagonal)
	default:
		return nil
	}
}

// ValidateMove - checks that direction belongs to the kind's legal directions.
func ValidateMove(kind entity.PieceKind, direction entity.Direction) error {
	if !kind.IsValid() {
		return fmt.Errorf("%w: unknown kind %q", apperror.ErrPieceNotFound, kind)
	}

	if !slices.Contains(LegalDirections(kind), direction) {
		return apperror.ErrWrongMovePiece
	}

	return nil
}

// TracePath - the cells a move crosses, in order, ending at the destination.
// Side A moves toward row 0 and side B toward the last row, so lateral directions are
// mirrored too. Diagonals cross two cells for any kind; legality is ValidateMove's job.
// H2 has no orthogonal path.
func TracePath(side entity.Side, kind entity.PieceKind, origin entity.Position, direction entity.Direction) []entity.Position {
	diff := 1
	if side == entity.SideB {
		diff = -1
	}

	step := func(rows, cols int) entity.Position {
		return entity.Position{Row: origin.Row + rows*diff, Col: origin.Col + cols*diff}
	}

	if direction.IsDiagonal() {
		switch direction {
		case entity.ForwardLeft:
			return []entity.Position{step(-1, 0), step(-1, -1)}
		case entity.ForwardRight:
			return []entity.Position{step(-1, 0), step(-1, 1)}
		case entity.BackLeft:
			return []entity.Position{step(1, 0), step(1, -1)}
		default:
			return []entity.Position{step(1, 0), step(1, 1)}
		}
	}

	var rows, cols int

	switch direction {
	case entity.Left:
		cols = -1
	case entity.Right:
		cols = 1
	case entity.Forward:
		rows = -1
	case entity.Backward:
		rows = 1
	default:
		return nil
	}

	switch {
	case kind.IsPawn():
		return []entity.Position{step(rows, cols)}
	case kind == entity.Hero1:
		return []entity.Position{step(rows, cols), step(2*rows, 2*cols)}
	default:
		return nil
	}
}

func InBounds(pos entity.Position) bool {
	return pos.Row >= 0 && pos.Row < BoardSize && pos.Col >= 0 && pos.Col < BoardSize
}
