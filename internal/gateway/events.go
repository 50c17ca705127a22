package gateway

// Inbound events.
const (
	EventJoin       = "join"
	EventMove       = "move"
	EventDisconnect = "disconnect"
)

// Outbound events.
const (
	EventPlayer      = "player"
	EventWaiting     = "waiting"
	EventError       = "error"
	EventGameState   = "gameState"
	EventGameHistory = "gameHistory"
)

const waitingText = "Waiting for other player to join"

// Event - something a connection did. Payload holds the move text for EventMove.
type Event struct {
	Name    string
	ConnID  string
	Payload string
}
