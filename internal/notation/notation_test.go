package notation

import (
	"testing"

	"github.com/rocketscienceinc/gridclash-backend/internal/apperror"
	"github.com/rocketscienceinc/gridclash-backend/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Run("Valid move", func(t *testing.T) {
		// When: a well formed move is parsed
		move, err := Parse("A-P2:F")

		// Then: every field is filled
		require.NoError(t, err)
		assert.Equal(t, entity.Move{Side: entity.SideA, Kind: entity.Pawn2, Direction: entity.Forward}, move)
	})

	t.Run("Diagonal move of side B", func(t *testing.T) {
		move, err := Parse("B-H2:BL")

		require.NoError(t, err)
		assert.Equal(t, entity.Move{Side: entity.SideB, Kind: entity.Hero2, Direction: entity.BackLeft}, move)
	})

	t.Run("Malformed input is rejected without a partial move", func(t *testing.T) {
		inputs := []string{
			"",
			"C-P1:F",
			"a-P1:F",
			"A-P4:F",
			"A-h1:F",
			"A-P1:X",
			"A-P1:FF",
			"A-P1-F",
			" A-P1:F",
			"A-P1:F ",
			"A-P1:F\n",
			"AA-P1:F",
		}

		for _, input := range inputs {
			// When: the input is parsed
			move, err := Parse(input)

			// Then: a format error and the zero move are returned
			require.ErrorIs(t, err, apperror.ErrMoveFormat, "input %q", input)
			assert.Equal(t, entity.Move{}, move, "input %q", input)
		}
	})
}

func TestEncode(t *testing.T) {
	for _, kind := range entity.HomeRowOrder {
		for _, direction := range []entity.Direction{entity.Left, entity.ForwardRight} {
			move := entity.Move{Side: entity.SideB, Kind: kind, Direction: direction}

			parsed, err := Parse(Encode(move))

			require.NoError(t, err)
			assert.Equal(t, move, parsed)
		}
	}
}
