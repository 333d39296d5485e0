package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-rooms/internal/apperror"
)

const (
	StatusWaiting = "waiting"
	StatusPlaying = "playing"
	StatusWon     = "won"
	StatusDraw    = "draw"
)

// Room is the authoritative record of one game session. The roster is
// ordered by admission; insertion order decides default symbol precedence.
type Room struct {
	ID          string            `json:"id"`
	Board       [BoardSize]string `json:"board"`
	Turn        string            `json:"turn"`
	Status      string            `json:"status"`
	Winner      string            `json:"winner,omitempty"`
	Players     []*Player         `json:"players"`
	NextStarter string            `json:"nextStarter"`
}

func NewRoom(id string) *Room {
	return &Room{
		ID:          id,
		Turn:        SymbolX,
		Status:      StatusWaiting,
		NextStarter: SymbolO,
	}
}

// FindPlayer - looks a player up by stable client id.
func (that *Room) FindPlayer(clientID string) *Player {
	for _, player := range that.Players {
		if player.ID == clientID {
			return player
		}
	}

	return nil
}

// Admit - finds or creates the player record for clientID and marks it
// connected. Admission never fails; the second return reports whether a
// new record was created.
func (that *Room) Admit(clientID string) (*Player, bool) {
	if player := that.FindPlayer(clientID); player != nil {
		player.Connected = true
		player.DisconnectedAt = nil

		return player, false
	}

	player := &Player{
		ID:        clientID,
		Name:      fmt.Sprintf("Player %d", len(that.Players)+1),
		Connected: true,
	}
	that.Players = append(that.Players, player)

	return player, true
}

// ConnectedPlayers - the roster filtered to connected seats, in roster order.
func (that *Room) ConnectedPlayers() []*Player {
	connected := make([]*Player, 0, len(that.Players))
	for _, player := range that.Players {
		if player.Connected {
			connected = append(connected, player)
		}
	}

	return connected
}

// AssignSymbols - wholesale symbol re-derivation: clear everything, then X
// to the first connected player and O to the second. Idempotent for a
// fixed roster, so it can run after every roster change regardless of how
// connects and disconnects interleaved.
func (that *Room) AssignSymbols() {
	for _, player := range that.Players {
		player.Symbol = EmptyCell
	}

	connected := that.ConnectedPlayers()
	if len(connected) > 0 {
		connected[0].Symbol = SymbolX
	}
	if len(connected) > 1 {
		connected[1].Symbol = SymbolO
	}
}

// DeriveStatus - recomputes status from the connected-player count. A
// terminal status survives until a reset; waiting always wins under two
// connected players.
func (that *Room) DeriveStatus() {
	if len(that.ConnectedPlayers()) < 2 {
		that.Status = StatusWaiting
		return
	}

	if that.IsFinished() {
		return
	}

	that.Status = StatusPlaying
}

// ApplyMove - validates and applies one move for the player identified by
// clientID. Every rejection is a sentinel from apperror and leaves the
// room untouched. An accepted move ends in exactly one of: win, draw, or
// a turn flip.
func (that *Room) ApplyMove(clientID string, cell int) error {
	player := that.FindPlayer(clientID)
	if player == nil {
		return fmt.Errorf("%w: %s", apperror.ErrUnknownPlayer, clientID)
	}

	if !player.Connected {
		return fmt.Errorf("%w: %s", apperror.ErrPlayerDisconnected, clientID)
	}

	if that.Status != StatusPlaying {
		return fmt.Errorf("%w: status %s", apperror.ErrRoomNotPlaying, that.Status)
	}

	if player.Symbol != that.Turn {
		return apperror.ErrNotYourTurn
	}

	if cell < 0 || cell >= len(that.Board) {
		return fmt.Errorf("%w: cell %d", apperror.ErrInvalidCell, cell)
	}

	if that.Board[cell] != EmptyCell {
		return fmt.Errorf("%w: cell %d", apperror.ErrCellOccupied, cell)
	}

	that.Board[cell] = player.Symbol

	switch {
	case DetermineWinner(that.Board) != EmptyCell:
		that.Winner = player.Symbol
		that.Status = StatusWon
		that.NextStarter = OpponentOf(that.Turn)
	case IsDraw(that.Board):
		that.Status = StatusDraw
		that.NextStarter = OpponentOf(that.Turn)
	default:
		that.Turn = OpponentOf(that.Turn)
	}

	return nil
}

// Reset - starts a fresh game on the same roster. With alternate set and
// two connected players, the side that did not end the previous game
// opens this one; otherwise X opens. NextStarter is left alone here, it
// only changes when a game concludes.
func (that *Room) Reset(alternate bool) {
	that.Board = [BoardSize]string{}
	that.Winner = EmptyCell
	that.Status = StatusWaiting

	if alternate && len(that.ConnectedPlayers()) >= 2 {
		that.Turn = that.NextStarter
	} else {
		that.Turn = SymbolX
	}

	that.DeriveStatus()
}

func (that *Room) IsFinished() bool {
	return that.Status == StatusWon || that.Status == StatusDraw
}
