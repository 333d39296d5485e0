package room

import "github.com/rocketscienceinc/tictactoe-rooms/internal/entity"

// Outbound event kinds. Every state-mutating operation produces at most
// one gameState broadcast, so each connection observes a total order of
// room states.
const (
	EventWelcome      = "welcome"
	EventGameState    = "gameState"
	EventPlayerUpdate = "playerUpdate"
	EventMove         = "move"
	EventReset        = "reset"
)

type welcomeEvent struct {
	Type     string `json:"type"`
	PlayerID string `json:"playerId"`
}

type gameStateEvent struct {
	Type string       `json:"type"`
	Room *entity.Room `json:"room"`
}

type playerUpdateEvent struct {
	Type    string           `json:"type"`
	Players []*entity.Player `json:"players"`
}

type moveEvent struct {
	Type   string       `json:"type"`
	Index  int          `json:"index"`
	Symbol string       `json:"symbol"`
	Room   *entity.Room `json:"room"`
}

type resetEvent struct {
	Type string       `json:"type"`
	Room *entity.Room `json:"room"`
}
