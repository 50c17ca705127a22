// Package notation converts between move text such as "A-P2:F" and entity.Move.
package notation

import (
	"regexp"

	"github.com/rocketscienceinc/gridclash-backend/internal/apperror"
	"github.com/rocketscienceinc/gridclash-backend/internal/entity"
)

var (
	movePattern   = regexp.MustCompile(`^(A|B)-(P1|P2|P3|H1|H2):(L|R|F|B|FL|FR|BL|BR)$`)
	playerPattern = regexp.MustCompile(`^[A-Z]$`)
)

// Parse - decodes a move. Every input yields either a complete move or one of the
// apperror format errors, checked in the order: whole text, player, character, command.
func Parse(text string) (entity.Move, error) {
	match := movePattern.FindStringSubmatch(text)
	if match == nil {
		return entity.Move{}, apperror.ErrMoveFormat
	}

	side, kind, direction := entity.Side(match[1]), entity.PieceKind(match[2]), entity.Direction(match[3])

	if !playerPattern.MatchString(match[1]) || !side.IsValid() {
		return entity.Move{}, apperror.ErrPlayerFormat
	}

	if !kind.IsValid() {
		return entity.Move{}, apperror.ErrCharacterFormat
	}

	if !direction.IsValid() {
		return entity.Move{}, apperror.ErrMoveCommand
	}

	return entity.Move{Side: side, Kind: kind, Direction: direction}, nil
}

// Encode - the inverse of Parse.
func Encode(move entity.Move) string {
	return string(move.Side) + "-" + string(move.Kind) + ":" + string(move.Direction)
}
