package websocket

// Message is the inbound envelope: a type discriminator plus the payload
// fields of that kind, flat in one object.
type Message struct {
	Type       string `json:"type"`
	PlayerName string `json:"playerName,omitempty"`
	Index      *int   `json:"index,omitempty"`
}

const (
	actionJoin  = "join"
	actionMove  = "move"
	actionReset = "reset"
)

const defaultPlayerName = "Anonymous"
