package websocket

import (
	"context"
	"fmt"
)

func (that *Server) handleJoin(_ context.Context, c *client, msg *Message) error {
	name := msg.PlayerName
	if name == "" {
		name = defaultPlayerName
	}

	c.session.Rename(c.clientID, name)

	return nil
}

func (that *Server) handleMove(ctx context.Context, c *client, msg *Message) error {
	if msg.Index == nil {
		return fmt.Errorf("%w: client %s", ErrMissingIndex, c.clientID)
	}

	c.session.Move(ctx, c.clientID, *msg.Index)

	return nil
}

func (that *Server) handleReset(_ context.Context, c *client, _ *Message) error {
	c.session.Reset()

	return nil
}
