package rules

import (
	"testing"

	"github.com/rocketscienceinc/gridclash-backend/internal/apperror"
	"github.com/rocketscienceinc/gridclash-backend/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLegalDirections(t *testing.T) {
	for _, kind := range []entity.PieceKind{entity.Pawn1, entity.Pawn2, entity.Pawn3, entity.Hero1} {
		assert.ElementsMatch(t, []entity.Direction{"L", "R", "F", "B"}, LegalDirections(kind), "kind %s", kind)
	}

	assert.ElementsMatch(t, []entity.Direction{"FL", "FR", "BL", "BR"}, LegalDirections(entity.Hero2))
	assert.Empty(t, LegalDirections("X9"))
}

func TestValidateMove(t *testing.T) {
	t.Run("Legal direction", func(t *testing.T) {
		require.NoError(t, ValidateMove(entity.Hero1, entity.Forward))
		require.NoError(t, ValidateMove(entity.Hero2, entity.BackRight))
	})

	t.Run("Diagonal for a pawn", func(t *testing.T) {
		err := ValidateMove(entity.Pawn3, entity.ForwardLeft)

		require.ErrorIs(t, err, apperror.ErrWrongMovePiece)
	})

	t.Run("Orthogonal for H2", func(t *testing.T) {
		err := ValidateMove(entity.Hero2, entity.Left)

		require.ErrorIs(t, err, apperror.ErrWrongMovePiece)
	})

	t.Run("Unknown kind", func(t *testing.T) {
		err := ValidateMove("Q1", entity.Left)

		require.ErrorIs(t, err, apperror.ErrPieceNotFound)
	})
}

func TestTracePath(t *testing.T) {
	origin := entity.Position{Row: 2, Col: 2}

	t.Run("Pawn steps one cell", func(t *testing.T) {
		// Given: a pawn of side A in the center
		// When: it moves forward and left
		forward := TracePath(entity.SideA, entity.Pawn1, origin, entity.Forward)
		left := TracePath(entity.SideA, entity.Pawn1, origin, entity.Left)

		// Then: forward is toward row 0 and left toward column 0
		assert.Equal(t, []entity.Position{{Row: 1, Col: 2}}, forward)
		assert.Equal(t, []entity.Position{{Row: 2, Col: 1}}, left)
	})

	t.Run("Side B is mirrored", func(t *testing.T) {
		forward := TracePath(entity.SideB, entity.Pawn2, origin, entity.Forward)
		right := TracePath(entity.SideB, entity.Pawn2, origin, entity.Right)

		assert.Equal(t, []entity.Position{{Row: 3, Col: 2}}, forward)
		assert.Equal(t, []entity.Position{{Row: 2, Col: 1}}, right)
	})

	t.Run("H1 crosses two cells", func(t *testing.T) {
		path := TracePath(entity.SideA, entity.Hero1, origin, entity.Backward)

		assert.Equal(t, []entity.Position{{Row: 3, Col: 2}, {Row: 4, Col: 2}}, path)
	})

	t.Run("H2 goes forward then sideways", func(t *testing.T) {
		pathA := TracePath(entity.SideA, entity.Hero2, origin, entity.ForwardRight)
		pathB := TracePath(entity.SideB, entity.Hero2, origin, entity.BackLeft)

		assert.Equal(t, []entity.Position{{Row: 1, Col: 2}, {Row: 1, Col: 3}}, pathA)
		assert.Equal(t, []entity.Position{{Row: 1, Col: 2}, {Row: 1, Col: 3}}, pathB)
	})

	t.Run("Diagonal path does not depend on the kind", func(t *testing.T) {
		// Given: side A's H1 in the center
		// When: the path is traced for a diagonal
		path := TracePath(entity.SideA, entity.Hero1, origin, entity.ForwardLeft)

		// Then: it matches the H2 path for the same direction
		assert.Equal(t, []entity.Position{{Row: 1, Col: 2}, {Row: 1, Col: 1}}, path)
		assert.Equal(t, TracePath(entity.SideA, entity.Hero2, origin, entity.ForwardLeft), path)
	})

	t.Run("H2 has no orthogonal path", func(t *testing.T) {
		assert.Empty(t, TracePath(entity.SideA, entity.Hero2, origin, entity.Left))
	})
}

func TestInBounds(t *testing.T) {
	assert.True(t, InBounds(entity.Position{Row: 0, Col: 0}))
	assert.True(t, InBounds(entity.Position{Row: 4, Col: 4}))
	assert.False(t, InBounds(entity.Position{Row: -1, Col: 0}))
	assert.False(t, InBounds(entity.Position{Row: 0, Col: 5}))
}
