package room

import (
	"log/slog"
	"sync"
	"time"

	"github.com/rocketscienceinc/tictactoe-rooms/internal/metrics"
)

// Registry is the process-wide map from room identifier to its session.
// Rooms are created lazily on first reference and never torn down: an
// abandoned room simply stops receiving events.
type Registry struct {
	logger  *slog.Logger
	grace   time.Duration
	archive ResultArchive

	mu       sync.Mutex
	sessions map[string]*Session
}

func NewRegistry(logger *slog.Logger, grace time.Duration, archive ResultArchive) *Registry {
	return &Registry{
		logger:   logger,
		grace:    grace,
		archive:  archive,
		sessions: make(map[string]*Session),
	}
}

// GetOrCreate - returns the session for roomID, creating it on first
// reference. Creation is serialized so two connections racing on the same
// fresh identifier always land in one room.
func (that *Registry) GetOrCreate(roomID string) *Session {
	that.mu.Lock()
	defer that.mu.Unlock()

	session, ok := that.sessions[roomID]
	if !ok {
		session = newSession(that.logger, roomID, that.grace, that.archive)
		that.sessions[roomID] = session

		metrics.RoomsCreated.Inc()
		that.logger.Info("room created", "room", roomID)
	}

	return session
}
