package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"

	"github.com/rocketscienceinc/tictactoe-rooms/internal/metrics"
	"github.com/rocketscienceinc/tictactoe-rooms/internal/room"
	"github.com/rocketscienceinc/tictactoe-rooms/pkg/identity"
)

const (
	readTimeout  = 10 * time.Second
	writeTimeout = 10 * time.Second
	idleTimeout  = 30 * time.Second

	writeWait = 10 * time.Second
)

var ErrMissingIndex = errors.New("move message has no index")

type sessionRegistry interface {
	GetOrCreate(roomID string) *room.Session
}

type Server struct {
	logger *slog.Logger
	rooms  sessionRegistry

	upgrader websocket.Upgrader
	handlers map[string]func(ctx context.Context, client *client, msg *Message) error
}

func New(logger *slog.Logger, rooms sessionRegistry) *Server {
	server := &Server{
		logger: logger,
		rooms:  rooms,

		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(_ *http.Request) bool {
				return true
			},
		},

		handlers: make(map[string]func(context.Context, *client, *Message) error),
	}

	server.handlers[actionJoin] = server.handleJoin
	server.handlers[actionMove] = server.handleMove
	server.handlers[actionReset] = server.handleReset

	return server
}

// Start - starts the WebSocket server. The room identifier is carried in
// the connection path, the stable client identifier in the clientId query
// parameter.
func (that *Server) Start(ctx context.Context, port string) error {
	router := chi.NewRouter()
	router.Get("/ws/{roomID}", func(w http.ResponseWriter, r *http.Request) {
		that.serveConnection(ctx, w, r)
	})

	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      router,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), writeWait)
		defer cancel()

		_ = srv.Shutdown(shutdownCtx) //nolint: contextcheck // detached on purpose
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// serveConnection - upgrades the request, admits the player into the room
// session, and pumps inbound messages until the connection closes.
func (that *Server) serveConnection(ctx context.Context, w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "serveConnection")

	roomID := chi.URLParam(r, "roomID")

	clientID := r.URL.Query().Get("clientId")
	if clientID == "" {
		clientID = identity.NewClientID()
		log.Info("no client id supplied, generated one", "client", clientID)
	}

	conn, err := that.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Error("failed to upgrade connection", "error", err)
		return
	}
	defer conn.Close()

	metrics.ActiveConnections.Inc()
	defer metrics.ActiveConnections.Dec()

	session := that.rooms.GetOrCreate(roomID)

	c := &client{
		logger:   that.logger.With("component", "client", "room", roomID, "client", clientID),
		conn:     conn,
		session:  session,
		clientID: clientID,
	}

	session.Connect(c, clientID)
	defer session.Disconnect(c, clientID)

	log.Info("WebSocket connection established", "room", roomID, "client", clientID)

	that.readMessages(ctx, c)
}

// readMessages - processes inbound messages in arrival order. A malformed
// payload is logged and dropped; the connection stays open.
func (that *Server) readMessages(ctx context.Context, c *client) {
	log := that.logger.With("method", "readMessages", "client", c.clientID)

	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.Error("error reading message", "error", err)
			}
			return
		}

		var msg Message
		if err = json.Unmarshal(data, &msg); err != nil {
			log.Error("failed to unmarshal message", "error", err)
			continue
		}

		handler, ok := that.handlers[msg.Type]
		if !ok {
			log.Error("unknown message type", "type", msg.Type)
			continue
		}

		if err = handler(ctx, c, &msg); err != nil {
			log.Error("error processing message", "type", msg.Type, "error", err)
		}
	}
}
