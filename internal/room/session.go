package room

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/rocketscienceinc/tictactoe-rooms/internal/entity"
	"github.com/rocketscienceinc/tictactoe-rooms/internal/metrics"
)

const archiveTimeout = 5 * time.Second

// sendBuffer bounds the outbound queue per connection. A consumer that
// falls this far behind starts losing events; the next gameState snapshot
// resynchronizes it.
const sendBuffer = 32

// Conn is the delivery endpoint for one attached connection. Send may
// block on the transport: the session feeds every connection from its own
// buffered queue, so a stalled peer never holds up room mutations or
// delivery to the others.
type Conn interface {
	Send(data []byte)
}

// subscriber is one attached connection plus its outbound queue. A single
// goroutine drains the queue, which keeps the per-connection event order
// identical to the order of room mutations.
type subscriber struct {
	clientID string
	queue    chan []byte
}

// ResultArchive - records concluded games. Implementations are optional;
// a nil archive disables recording.
type ResultArchive interface {
	RecordResult(ctx context.Context, roomID, winner string, board [entity.BoardSize]string) error
}

// Session owns one Room and the set of connections attached to it. Every
// mutation runs under the session mutex from start to finish, so inbound
// events for a room are applied strictly in arrival order and no two
// handlers interleave mid-mutation.
type Session struct {
	logger  *slog.Logger
	archive ResultArchive

	grace time.Duration
	now   func() time.Time

	mu    sync.Mutex
	room  *entity.Room
	conns map[Conn]*subscriber
}

func newSession(logger *slog.Logger, roomID string, grace time.Duration, archive ResultArchive) *Session {
	return &Session{
		logger:  logger.With("component", "session", "room", roomID),
		archive: archive,
		grace:   grace,
		now:     time.Now,
		room:    entity.NewRoom(roomID),
		conns:   make(map[Conn]*subscriber),
	}
}

// drainQueue - feeds one connection until its queue is closed.
func drainQueue(conn Conn, queue chan []byte) {
	for data := range queue {
		conn.Send(data)
	}
}

// Connect - attaches a connection and admits the player behind it. The
// welcome and the current game state go to the new connection only; the
// roster update is broadcast to everyone.
func (that *Session) Connect(conn Conn, clientID string) {
	that.mu.Lock()
	defer that.mu.Unlock()

	sub := &subscriber{
		clientID: clientID,
		queue:    make(chan []byte, sendBuffer),
	}
	that.conns[conn] = sub
	go drainQueue(conn, sub.queue)

	player, isNew := that.room.Admit(clientID)
	that.room.AssignSymbols()
	that.room.DeriveStatus()

	if isNew {
		that.logger.Info("player joined", "player", clientID, "name", player.Name)
	} else {
		that.logger.Info("player reconnected", "player", clientID)
	}

	that.send(conn, welcomeEvent{Type: EventWelcome, PlayerID: player.ID})
	that.send(conn, gameStateEvent{Type: EventGameState, Room: that.room})
	that.broadcast(playerUpdateEvent{Type: EventPlayerUpdate, Players: that.room.Players})
}

// Rename - sets the display name for an admitted player.
func (that *Session) Rename(clientID, name string) {
	that.mu.Lock()
	defer that.mu.Unlock()

	player := that.room.FindPlayer(clientID)
	if player == nil {
		return
	}

	player.Name = name
	that.broadcast(playerUpdateEvent{Type: EventPlayerUpdate, Players: that.room.Players})
}

// Move - applies one move. Illegal moves are dropped without a broadcast:
// a transient client bug must never corrupt room state for the opponent.
func (that *Session) Move(ctx context.Context, clientID string, cell int) {
	that.mu.Lock()
	defer that.mu.Unlock()

	player := that.room.FindPlayer(clientID)

	if err := that.room.ApplyMove(clientID, cell); err != nil {
		metrics.MovesRejected.Inc()
		that.logger.Debug("move rejected", "player", clientID, "cell", cell, "error", err)
		return
	}

	metrics.MovesApplied.Inc()

	that.broadcast(moveEvent{Type: EventMove, Index: cell, Symbol: player.Symbol, Room: that.room})
	that.broadcast(gameStateEvent{Type: EventGameState, Room: that.room})

	if that.room.IsFinished() {
		that.recordResult(ctx)
	}
}

// Reset - starts the next game, handing the opening move to whichever
// side the previous game designated.
func (that *Session) Reset() {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.room.Reset(true)

	that.broadcast(resetEvent{Type: EventReset, Room: that.room})
	that.broadcast(gameStateEvent{Type: EventGameState, Room: that.room})
}

// Disconnect - detaches a connection and marks its player as gone. The
// seat stays reserved for the grace period; a one-shot timer prunes it if
// the player does not come back.
func (that *Session) Disconnect(conn Conn, clientID string) {
	that.mu.Lock()
	defer that.mu.Unlock()

	sub, ok := that.conns[conn]
	if !ok {
		return
	}

	delete(that.conns, conn)
	close(sub.queue)

	// Another connection for the same client id (a second tab) keeps the
	// player attached; the seat only empties when the last one goes.
	for _, other := range that.conns {
		if other.clientID == clientID {
			return
		}
	}

	player := that.room.FindPlayer(clientID)
	if player == nil {
		return
	}

	disconnectedAt := that.now()
	player.Connected = false
	player.DisconnectedAt = &disconnectedAt

	that.room.DeriveStatus()

	that.logger.Info("player disconnected", "player", clientID)

	that.broadcast(playerUpdateEvent{Type: EventPlayerUpdate, Players: that.room.Players})
	that.broadcast(gameStateEvent{Type: EventGameState, Room: that.room})

	time.AfterFunc(that.grace, that.pruneExpired)
}

// pruneExpired - drops every seat whose disconnect timestamp has aged past
// the grace window. A player who reconnected in time had the timestamp
// cleared on admission, which makes a stale timer firing after the
// reconnect a no-op; correctness does not depend on timer cancellation.
func (that *Session) pruneExpired() {
	that.mu.Lock()
	defer that.mu.Unlock()

	now := that.now()

	kept := that.room.Players[:0]
	pruned := 0
	for _, player := range that.room.Players {
		if player.DisconnectedAt != nil && now.Sub(*player.DisconnectedAt) >= that.grace {
			pruned++
			continue
		}
		kept = append(kept, player)
	}

	if pruned == 0 {
		return
	}

	that.room.Players = kept
	that.room.AssignSymbols()
	that.room.DeriveStatus()

	metrics.PlayersPruned.Add(float64(pruned))
	that.logger.Info("pruned expired players", "count", pruned)

	that.broadcast(playerUpdateEvent{Type: EventPlayerUpdate, Players: that.room.Players})
	that.broadcast(gameStateEvent{Type: EventGameState, Room: that.room})

	// Nobody left to alternate from: start the session over.
	if len(that.room.Players) == 0 {
		that.room.Reset(false)
		that.broadcast(resetEvent{Type: EventReset, Room: that.room})
	}
}

// broadcast - serializes the event once and queues it for every attached
// connection. Queueing never blocks; one stalled consumer cannot delay
// the others or the mutation that produced the event.
func (that *Session) broadcast(event any) {
	data, err := json.Marshal(event)
	if err != nil {
		that.logger.Error("failed to marshal event", "error", err)
		return
	}

	for _, sub := range that.conns {
		that.enqueue(sub, data)
	}
}

func (that *Session) send(conn Conn, event any) {
	sub, ok := that.conns[conn]
	if !ok {
		return
	}

	data, err := json.Marshal(event)
	if err != nil {
		that.logger.Error("failed to marshal event", "error", err)
		return
	}

	that.enqueue(sub, data)
}

func (that *Session) enqueue(sub *subscriber, data []byte) {
	select {
	case sub.queue <- data:
	default:
		that.logger.Debug("dropping event for slow connection", "client", sub.clientID)
	}
}

func (that *Session) recordResult(ctx context.Context) {
	winner := that.room.Winner
	if that.room.Status == entity.StatusDraw {
		metrics.GamesCompleted.WithLabelValues("draw").Inc()
	} else {
		metrics.GamesCompleted.WithLabelValues("won").Inc()
	}

	if that.archive == nil {
		return
	}

	roomID := that.room.ID
	board := that.room.Board
	logger := that.logger

	// Recording is I/O and must stay off a mutation path.
	go func() {
		ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), archiveTimeout)
		defer cancel()

		if err := that.archive.RecordResult(ctx, roomID, winner, board); err != nil {
			logger.Error("failed to archive game result", "error", err)
		}
	}()
}
