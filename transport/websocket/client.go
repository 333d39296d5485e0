package websocket

import (
	"log/slog"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/rocketscienceinc/tictactoe-rooms/internal/room"
)

// client is one attached connection. The session's per-connection queue
// is the only caller of Send, and the mutex keeps that true for gorilla,
// which allows a single concurrent writer.
type client struct {
	logger   *slog.Logger
	conn     *websocket.Conn
	session  *room.Session
	clientID string

	writeMu sync.Mutex
}

var _ room.Conn = (*client)(nil)

// Send - best-effort delivery of one serialized event. A write failure is
// logged and swallowed; the read loop will notice the dead connection and
// run the disconnect path.
func (that *client) Send(data []byte) {
	that.writeMu.Lock()
	defer that.writeMu.Unlock()

	_ = that.conn.SetWriteDeadline(time.Now().Add(writeWait))

	if err := that.conn.WriteMessage(websocket.TextMessage, data); err != nil {
		that.logger.Debug("failed to deliver event", "error", err)
	}
}
