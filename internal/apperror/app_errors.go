package apperror

import "errors"

// Move text format errors.
var (
	ErrMoveFormat      = errors.New("Invalid move format. Expected format: '<player>-<character>:<move>'")  //nolint: stylecheck // sent to clients as is
	ErrPlayerFormat    = errors.New("Invalid player identifier. It should be a single uppercase letter.")   //nolint: stylecheck // sent to clients as is
	ErrCharacterFormat = errors.New("Invalid character name. It should be P1-P3, H1, or H2.")               //nolint: stylecheck // sent to clients as is
	ErrMoveCommand     = errors.New("Invalid move command. Valid commands are L, R, F, B, FL, FR, BL, BR.") //nolint: stylecheck // sent to clients as is
)

// Move legality errors.
var (
	ErrWrongMovePiece = errors.New("Invalid move for the given piece.")  //nolint: stylecheck // sent to clients as is
	ErrFriendlyBlock  = errors.New("Path is blocked by your own piece.") //nolint: stylecheck // sent to clients as is
	ErrPieceNotFound  = errors.New("Piece not found")                    //nolint: stylecheck // sent to clients as is
	ErrOutOfBounds    = errors.New("Out of bounds")                      //nolint: stylecheck // sent to clients as is
	ErrNotYourTurn    = errors.New("Not your turn")                      //nolint: stylecheck // sent to clients as is
	ErrWrongPlayer    = errors.New("Invalid player")                     //nolint: stylecheck // sent to clients as is
)

// Session errors.
var (
	ErrGameFull     = errors.New("Game is full")             //nolint: stylecheck // sent to clients as is
	ErrGameNotReady = errors.New("Game is not ready")        //nolint: stylecheck // sent to clients as is
	ErrGameFinished = errors.New("Game is already finished") //nolint: stylecheck // sent to clients as is
)

var userErrors = []error{
	ErrMoveFormat,
	ErrPlayerFormat,
	ErrCharacterFormat,
	ErrMoveCommand,
	ErrWrongMovePiece,
	ErrFriendlyBlock,
	ErrPieceNotFound,
	ErrOutOfBounds,
	ErrNotYourTurn,
	ErrWrongPlayer,
	ErrGameFull,
	ErrGameNotReady,
	ErrGameFinished,
}

// Message - returns the client facing text for err: the text of the first known
// sentinel in its chain, or a generic text for anything else.
func Message(err error) string {
	for _, known := range userErrors {
		if errors.Is(err, known) {
			return known.Error()
		}
	}

	return "Internal server error"
}
